// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keys are flat and match the koanf struct tags.
// - Provide New() to build a Config with defaults; Load layers file and env on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"github.com/okian/contestdash/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects text or json output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath is the contest workbook (.xlsx).
	DataPath string `koanf:"data_path"`
	// HistorySheet holds the contest rows; empty selects the first sheet.
	HistorySheet string `koanf:"history_sheet"`
	// LatestSheet and HighRatingsSheet are the export targets.
	LatestSheet      string `koanf:"latest_sheet"`
	HighRatingsSheet string `koanf:"high_ratings_sheet"`
	// HighRatingMin is the default strict lower bound for the high-ratings table.
	HighRatingMin float64 `koanf:"high_rating_min"`

	// MaxLatestLimit caps GET /latest?limit.
	MaxLatestLimit int `koanf:"max_latest_limit"`

	// InitialRating is the rating before a user's first contest.
	InitialRating float64 `koanf:"initial_rating"`
	// RecentWindow is the number of trailing contests in the recent average.
	RecentWindow int `koanf:"recent_window"`

	// Trust score policy.
	ParticipationWeight float64 `koanf:"participation_weight"`
	ContestThreshold    int     `koanf:"contest_threshold"`
	IntegrityWeight     float64 `koanf:"integrity_weight"`
	PenaltyDivisor      float64 `koanf:"penalty_divisor"`
	MomentumWeight      float64 `koanf:"momentum_weight"`
	MomentumGap         float64 `koanf:"momentum_gap"`
	MomentumFactor      float64 `koanf:"momentum_factor"`
	DeviationWeight     float64 `koanf:"deviation_weight"`
	DeviationGap        float64 `koanf:"deviation_gap"`
	DeviationFactor     float64 `koanf:"deviation_factor"`
	ClampSubScores      bool    `koanf:"clamp_sub_scores"`

	// Tier bounds (inclusive) for the presentation bands.
	TierHigh   float64 `koanf:"tier_high"`
	TierMedium float64 `koanf:"tier_medium"`
}

// New creates a Config populated with defaults.
func New() *Config {
	p := scoring.DefaultPolicy()
	th := scoring.DefaultTierThresholds()

	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		DataPath:         "contest_details.xlsx",
		LatestSheet:      "Latest Ratings",
		HighRatingsSheet: "2 star and above",
		HighRatingMin:    1400,
		MaxLatestLimit:   500,
		InitialRating:    1000,
		RecentWindow:     5,

		ParticipationWeight: p.ParticipationWeight,
		ContestThreshold:    p.ContestThreshold,
		IntegrityWeight:     p.IntegrityWeight,
		PenaltyDivisor:      p.PenaltyDivisor,
		MomentumWeight:      p.MomentumWeight,
		MomentumGap:         p.MomentumGap,
		MomentumFactor:      p.MomentumFactor,
		DeviationWeight:     p.DeviationWeight,
		DeviationGap:        p.DeviationGap,
		DeviationFactor:     p.DeviationFactor,
		ClampSubScores:      p.ClampSubScores,

		TierHigh:   th.High,
		TierMedium: th.Medium,
	}
}

// ScoringPolicy returns the trust score policy described by the config.
func (c *Config) ScoringPolicy() scoring.Policy {
	return scoring.Policy{
		ParticipationWeight: c.ParticipationWeight,
		ContestThreshold:    c.ContestThreshold,
		IntegrityWeight:     c.IntegrityWeight,
		PenaltyDivisor:      c.PenaltyDivisor,
		MomentumWeight:      c.MomentumWeight,
		MomentumGap:         c.MomentumGap,
		MomentumFactor:      c.MomentumFactor,
		DeviationWeight:     c.DeviationWeight,
		DeviationGap:        c.DeviationGap,
		DeviationFactor:     c.DeviationFactor,
		ClampSubScores:      c.ClampSubScores,
	}
}

// TierThresholds returns the configured presentation bands.
func (c *Config) TierThresholds() scoring.TierThresholds {
	return scoring.TierThresholds{High: c.TierHigh, Medium: c.TierMedium}
}
