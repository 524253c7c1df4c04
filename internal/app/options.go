package service

import (
	"github.com/okian/contestdash/internal/config"
	"github.com/okian/contestdash/internal/domain/scoring"
	"github.com/okian/contestdash/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReader sets the workbook reader.
func WithReader(r ContestReader) Option {
	return func(s *Service) {
		s.reader = r
	}
}

// WithWriter sets the workbook writer used by exports.
func WithWriter(w SheetWriter) Option {
	return func(s *Service) {
		s.writer = w
	}
}

// WithDataPath sets the workbook path and the contest sheet (empty for the
// first sheet).
func WithDataPath(path, historySheet string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
		s.historySheet = historySheet
	}
}

// WithExportSheets sets the names of the derived sheets.
func WithExportSheets(latest, highRatings string) Option {
	return func(s *Service) {
		if latest != "" {
			s.latestSheet = latest
		}
		if highRatings != "" {
			s.highRatingsSheet = highRatings
		}
	}
}

// WithHighRatingMin sets the default lower bound of the high-ratings table.
func WithHighRatingMin(min float64) Option {
	return func(s *Service) {
		s.highRatingMin = min
	}
}

// WithAggregation sets the initial rating and the recent window used to
// build credentials.
func WithAggregation(initialRating float64, recentWindow int) Option {
	return func(s *Service) {
		s.initialRating = initialRating
		if recentWindow > 0 {
			s.recentWindow = recentWindow
		}
	}
}

// WithPolicy sets the trust score policy.
func WithPolicy(p scoring.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithTierThresholds sets the presentation bands.
func WithTierThresholds(th scoring.TierThresholds) Option {
	return func(s *Service) {
		s.tiers = th
	}
}

// WithScorer replaces the trust scorer; WithPolicy is then ignored.
func WithScorer(sc scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// ConfigOptions translates the process configuration into service options.
func ConfigOptions(cfg *config.Config) []Option {
	return []Option{
		WithDataPath(cfg.DataPath, cfg.HistorySheet),
		WithExportSheets(cfg.LatestSheet, cfg.HighRatingsSheet),
		WithHighRatingMin(cfg.HighRatingMin),
		WithAggregation(cfg.InitialRating, cfg.RecentWindow),
		WithPolicy(cfg.ScoringPolicy()),
		WithTierThresholds(cfg.TierThresholds()),
	}
}
