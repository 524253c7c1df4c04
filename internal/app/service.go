// Package service wires the workbook, the dataset store and the trust
// scorer into the operations the HTTP API and the export CLI expose.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/contestdash/internal/adapters/repository"
	"github.com/okian/contestdash/internal/domain/aggregate"
	"github.com/okian/contestdash/internal/domain/model"
	"github.com/okian/contestdash/internal/domain/scoring"
	"github.com/okian/contestdash/pkg/logger"
	"github.com/okian/contestdash/pkg/metrics"
)

// ContestReader loads contest rows from a workbook.
type ContestReader interface {
	ReadContests(ctx context.Context, path, sheet string) ([]model.ContestRecord, error)
}

// SheetWriter writes derived sheets back to a workbook.
type SheetWriter interface {
	WriteLatest(ctx context.Context, path, sheet string, entries []model.LatestEntry) error
	WriteHighRatings(ctx context.Context, path, sheet string, entries []model.LatestEntry) error
}

// TrustReport is the trust score of one user with its presentation tier.
type TrustReport struct {
	UserID      string            `json:"user_id"`
	Credentials model.Credentials `json:"credentials"`
	Score       scoring.Result    `json:"score"`
	Tier        scoring.Tier      `json:"tier"`
	Color       string            `json:"color"`
}

// Report bundles the summary statistics and the trust score of one user.
type Report struct {
	Summary model.Summary `json:"summary"`
	Trust   TrustReport   `json:"trust"`
}

// Service implements the dashboard operations.
type Service struct {
	mu    sync.RWMutex
	store repository.Store

	reader ContestReader
	writer SheetWriter
	scorer scoring.Scorer

	// Configuration
	dataPath         string
	historySheet     string
	latestSheet      string
	highRatingsSheet string
	highRatingMin    float64
	initialRating    float64
	recentWindow     int
	policy           scoring.Policy
	tiers            scoring.TierThresholds

	// State
	started  bool
	loadedAt time.Time

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath:         "contest_details.xlsx",
		latestSheet:      "Latest Ratings",
		highRatingsSheet: "2 star and above",
		highRatingMin:    1400,
		initialRating:    1000,
		recentWindow:     5,
		policy:           scoring.DefaultPolicy(),
		tiers:            scoring.DefaultTierThresholds(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.scorer == nil {
		s.scorer = scoring.NewTrustScorer(scoring.WithPolicy(s.policy))
	}
	return s
}

// Start loads the workbook. It is a no-op once started.
func (s *Service) Start(ctx context.Context) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if started {
		return nil
	}

	s.log().Info(ctx, "starting contest dashboard service...", logger.String("data_path", s.dataPath))

	return s.Reload(ctx)
}

// Reload re-reads the workbook and swaps the dataset. On failure the
// previous dataset stays in place.
func (s *Service) Reload(ctx context.Context) error {
	if s.reader == nil {
		return ErrNoReader
	}
	start := time.Now()
	records, err := s.reader.ReadContests(ctx, s.dataPath, s.historySheet)
	if err != nil {
		metrics.RecordDatasetLoadError()
		s.log().Error(ctx, "workbook load failed", logger.String("data_path", s.dataPath), logger.Error(err))
		return fmt.Errorf("load %s: %w", s.dataPath, err)
	}
	store := repository.NewMemoryStore(records)
	elapsed := time.Since(start)

	s.mu.Lock()
	s.store = store
	s.started = true
	s.loadedAt = time.Now()
	loadedAt := s.loadedAt
	s.mu.Unlock()

	metrics.RecordDatasetLoad(float64(elapsed.Milliseconds()), store.Records(ctx), store.Count(ctx), loadedAt.Unix())
	s.log().Info(ctx, "contest workbook loaded",
		logger.Int("records", store.Records(ctx)),
		logger.Int("users", store.Count(ctx)),
		logger.Duration("elapsed", elapsed),
	)
	return nil
}

func (s *Service) log() logger.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logger.Get()
}

func (s *Service) dataset() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Resolve maps a query to a user id and returns the matching history. An
// all-digit query is a roll number: the history holds every row under that
// roll number and the reported id is the smallest user id among them.
// Anything else is a user id.
func (s *Service) Resolve(ctx context.Context, query string) (string, []model.ContestRecord, error) {
	store, err := s.dataset()
	if err != nil {
		return "", nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil, ErrEmptyQuery
	}

	if isDigits(query) {
		rollNo, err := strconv.Atoi(query)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s", ErrEmptyQuery, query)
		}
		userID, err := store.ResolveRollNo(ctx, rollNo)
		if err != nil {
			return "", nil, fmt.Errorf("roll no %d: %w", rollNo, err)
		}
		history, err := store.RollHistory(ctx, rollNo)
		if err != nil {
			return "", nil, fmt.Errorf("roll no %d: %w", rollNo, err)
		}
		return userID, history, nil
	}

	history, err := store.History(ctx, query)
	if err != nil {
		return "", nil, fmt.Errorf("user %q: %w", query, err)
	}
	return query, history, nil
}

// Summary returns the statistics block for a user.
func (s *Service) Summary(ctx context.Context, query string) (model.Summary, error) {
	userID, history, err := s.Resolve(ctx, query)
	if err != nil {
		return model.Summary{}, err
	}
	summary, err := aggregate.Summarize(history,
		aggregate.WithInitialRating(s.initialRating),
		aggregate.WithRecentWindow(s.recentWindow),
	)
	if err != nil {
		return model.Summary{}, err
	}
	summary.UserID = userID
	return summary, nil
}

// TrustScore computes the trust score for a user.
func (s *Service) TrustScore(ctx context.Context, query string) (TrustReport, error) {
	summary, err := s.Summary(ctx, query)
	if err != nil {
		return TrustReport{}, err
	}
	return s.Score(ctx, summary.UserID, summary.Credentials)
}

// Score validates credentials and scores them.
func (s *Service) Score(ctx context.Context, userID string, c model.Credentials) (TrustReport, error) {
	if err := scoring.Validate(c); err != nil {
		metrics.RecordInvalidCredentials()
		s.log().Warn(ctx, "rejected credentials", logger.String("user_id", userID), logger.Error(err))
		return TrustReport{}, err
	}

	result := s.scorer.Score(c)
	tier := s.tiers.Classify(result.Total)
	metrics.RecordTrustScore(result.Total, tier.String())

	s.log().Debug(ctx, "trust score computed",
		logger.String("user_id", userID),
		logger.Float64("total", result.Total),
		logger.String("tier", tier.String()),
	)

	return TrustReport{
		UserID:      userID,
		Credentials: c,
		Score:       result,
		Tier:        tier,
		Color:       tier.Color(),
	}, nil
}

// Report returns the summary and the trust score for a user.
func (s *Service) Report(ctx context.Context, query string) (Report, error) {
	summary, err := s.Summary(ctx, query)
	if err != nil {
		return Report{}, err
	}
	trust, err := s.Score(ctx, summary.UserID, summary.Credentials)
	if err != nil {
		return Report{}, err
	}
	return Report{Summary: summary, Trust: trust}, nil
}

// Insights returns the chart series for a user.
func (s *Service) Insights(ctx context.Context, query string) (model.Insights, error) {
	store, err := s.dataset()
	if err != nil {
		return model.Insights{}, err
	}
	userID, history, err := s.Resolve(ctx, query)
	if err != nil {
		return model.Insights{}, err
	}
	in := aggregate.Insights(history, store.ContestAverages(ctx))
	in.UserID = userID
	return in, nil
}

// Latest returns up to limit latest-rating rows; limit <= 0 returns all.
func (s *Service) Latest(ctx context.Context, limit int) ([]model.LatestEntry, error) {
	store, err := s.dataset()
	if err != nil {
		return nil, err
	}
	entries := store.Latest(ctx)
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// HighRatings returns latest entries rated strictly above minRating.
func (s *Service) HighRatings(ctx context.Context, minRating float64) ([]model.LatestEntry, error) {
	store, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return store.HighRatings(ctx, minRating), nil
}

// DefaultHighRatingMin is the configured lower bound for HighRatings.
func (s *Service) DefaultHighRatingMin() float64 {
	return s.highRatingMin
}

// ExportLatest writes the latest-ratings sheet into the workbook.
func (s *Service) ExportLatest(ctx context.Context) (int, error) {
	entries, err := s.Latest(ctx, 0)
	if err != nil {
		return 0, err
	}
	if s.writer == nil {
		return 0, ErrNoWriter
	}
	if err := s.writer.WriteLatest(ctx, s.dataPath, s.latestSheet, entries); err != nil {
		return 0, fmt.Errorf("export %q: %w", s.latestSheet, err)
	}
	metrics.RecordExport(s.latestSheet)
	s.log().Info(ctx, "latest ratings saved",
		logger.String("sheet", s.latestSheet),
		logger.String("file", s.dataPath),
		logger.Int("rows", len(entries)),
	)
	return len(entries), nil
}

// ExportHighRatings writes the high-ratings sheet into the workbook.
func (s *Service) ExportHighRatings(ctx context.Context, minRating float64) (int, error) {
	entries, err := s.HighRatings(ctx, minRating)
	if err != nil {
		return 0, err
	}
	if s.writer == nil {
		return 0, ErrNoWriter
	}
	if err := s.writer.WriteHighRatings(ctx, s.dataPath, s.highRatingsSheet, entries); err != nil {
		return 0, fmt.Errorf("export %q: %w", s.highRatingsSheet, err)
	}
	metrics.RecordExport(s.highRatingsSheet)
	s.log().Info(ctx, "high ratings saved",
		logger.String("sheet", s.highRatingsSheet),
		logger.Float64("min_rating", minRating),
		logger.Int("rows", len(entries)),
	)
	return len(entries), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":  s.started,
		"dataPath": s.dataPath,
	}
	if s.store != nil {
		stats["records"] = s.store.Records(ctx)
		stats["users"] = s.store.Count(ctx)
		stats["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

// IsNotFound reports whether err means the queried user does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
