// Package aggregate reduces a user's contest history to the statistics and
// credentials the dashboard and the trust scorer consume.
package aggregate

import (
	"math"

	"github.com/okian/contestdash/internal/domain/division"
	"github.com/okian/contestdash/internal/domain/model"
)

// Default aggregation constants.
const (
	defaultInitialRating = 1000
	defaultRecentWindow  = 5
)

type options struct {
	initialRating float64
	recentWindow  int
}

// Option applies a configuration option to Summarize.
type Option func(*options)

// WithInitialRating sets the rating a user starts from before the first
// contest. The first increment is measured against it.
func WithInitialRating(r float64) Option {
	return func(o *options) {
		o.initialRating = r
	}
}

// WithRecentWindow sets how many trailing increments form the recent average.
func WithRecentWindow(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.recentWindow = n
		}
	}
}

// Increments returns the per-contest rating changes, the first one taken
// against initial.
func Increments(history []model.ContestRecord, initial float64) []float64 {
	inc := make([]float64, len(history))
	prev := initial
	for i, r := range history {
		inc[i] = r.Rating - prev
		prev = r.Rating
	}
	return inc
}

// Summarize reduces a history, in contest order, to a Summary. The
// Summary's Credentials satisfy N >= 1 and P <= N.
func Summarize(history []model.ContestRecord, opts ...Option) (model.Summary, error) {
	o := options{initialRating: defaultInitialRating, recentWindow: defaultRecentWindow}
	for _, opt := range opts {
		opt(&o)
	}

	if len(history) == 0 {
		return model.Summary{}, ErrEmptyHistory
	}

	var (
		ratingSum float64
		rankSum   int
		highest   = math.Inf(-1)
		flagged   int
	)
	for _, r := range history {
		ratingSum += r.Rating
		rankSum += r.Rank
		if r.Rating > highest {
			highest = r.Rating
		}
		if r.Flagged() {
			flagged++
		}
	}

	n := len(history)
	inc := Increments(history, o.initialRating)
	overall := mean(inc)
	recent := mean(inc[max(0, n-o.recentWindow):])
	avgRating := ratingSum / float64(n)
	last := history[n-1]
	stars, _ := division.Stars(last.Color)

	return model.Summary{
		UserID:               last.UserID,
		RollNo:               last.RollNo,
		HighestRating:        highest,
		ContestsParticipated: n,
		Plagiarisms:          flagged,
		AverageIncrement:     int(overall),
		AverageRating:        int(avgRating),
		AverageRank:          rankSum / n,
		LatestRating:         last.Rating,
		LatestRank:           last.Rank,
		LatestContest:        last.Name,
		Stars:                stars,
		Credentials: model.Credentials{
			N:  n,
			P:  flagged,
			OA: overall,
			PA: recent,
			C:  last.Rating,
			A:  avgRating,
		},
	}, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
