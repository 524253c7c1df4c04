// Package repository holds the loaded contest dataset and answers lookups
// against it.
package repository

import (
	"context"

	"github.com/okian/contestdash/internal/domain/model"
)

// Store provides read access to the contest dataset.
type Store interface {
	// History returns a user's contests in workbook order.
	// Returns ErrNotFound if the user is unknown.
	History(ctx context.Context, userID string) ([]model.ContestRecord, error)

	// ResolveRollNo returns the smallest user id registered under rollNo.
	// Returns ErrNotFound if no row carries that roll number.
	ResolveRollNo(ctx context.Context, rollNo int) (string, error)

	// RollHistory returns every row carrying rollNo, across user ids, in
	// workbook order. Returns ErrNotFound if there is none.
	RollHistory(ctx context.Context, rollNo int) ([]model.ContestRecord, error)

	// Latest returns every user's most recent contest, ordered by roll number.
	Latest(ctx context.Context) []model.LatestEntry

	// HighRatings returns latest entries rated strictly above minRating,
	// ordered by rating ascending.
	HighRatings(ctx context.Context, minRating float64) []model.LatestEntry

	// ContestAverages returns contest-wide means keyed by contest code.
	ContestAverages(ctx context.Context) map[string]model.ContestAverage

	// Count returns the number of distinct users.
	Count(ctx context.Context) int

	// Records returns the number of rows loaded.
	Records(ctx context.Context) int
}
