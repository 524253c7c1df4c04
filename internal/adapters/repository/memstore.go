package repository

import (
	"context"
	"sort"
	"time"

	"github.com/okian/contestdash/internal/domain/division"
	"github.com/okian/contestdash/internal/domain/model"
	"github.com/okian/contestdash/pkg/metrics"
)

// MemoryStore is an immutable, indexed snapshot of the contest workbook.
// All derived views are computed once at construction, so reads need no
// locking.
type MemoryStore struct {
	byUser   map[string][]model.ContestRecord
	byRollNo map[int]string // roll number -> smallest user id
	byRoll   map[int][]model.ContestRecord
	latest   []model.LatestEntry
	averages map[string]model.ContestAverage
	records  int
}

// NewMemoryStore indexes records. Row order within a user is preserved.
func NewMemoryStore(records []model.ContestRecord) *MemoryStore {
	s := &MemoryStore{
		byUser:   make(map[string][]model.ContestRecord),
		byRollNo: make(map[int]string),
		byRoll:   make(map[int][]model.ContestRecord),
		averages: make(map[string]model.ContestAverage),
		records:  len(records),
	}

	type sums struct {
		rating float64
		rank   int
		n      int
	}
	perCode := make(map[string]*sums)

	for _, r := range records {
		s.byUser[r.UserID] = append(s.byUser[r.UserID], r)
		s.byRoll[r.RollNo] = append(s.byRoll[r.RollNo], r)

		if cur, ok := s.byRollNo[r.RollNo]; !ok || r.UserID < cur {
			s.byRollNo[r.RollNo] = r.UserID
		}

		acc, ok := perCode[r.Code]
		if !ok {
			acc = &sums{}
			perCode[r.Code] = acc
		}
		acc.rating += r.Rating
		acc.rank += r.Rank
		acc.n++
	}

	for code, acc := range perCode {
		s.averages[code] = model.ContestAverage{
			Code:          code,
			AverageRating: acc.rating / float64(acc.n),
			AverageRank:   float64(acc.rank) / float64(acc.n),
			Participants:  acc.n,
		}
	}

	s.latest = buildLatest(records)
	return s
}

// buildLatest keeps the last row per user once rows are stably ordered by
// contest code, orders by roll number and numbers the rows as college ranks.
func buildLatest(records []model.ContestRecord) []model.LatestEntry {
	sorted := make([]model.ContestRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareCodes(sorted[i].Code, sorted[j].Code) < 0
	})

	last := make(map[string]model.ContestRecord, len(sorted))
	for _, r := range sorted {
		last[r.UserID] = r
	}

	out := make([]model.LatestEntry, 0, len(last))
	for _, r := range last {
		stars, _ := division.Stars(r.Color)
		out = append(out, model.LatestEntry{
			UserID: r.UserID,
			RollNo: r.RollNo,
			Code:   r.Code,
			Name:   r.Name,
			Rating: r.Rating,
			Rank:   r.Rank,
			Color:  r.Color,
			Stars:  stars,
			Reason: r.Reason,
		})
	}

	// The college rank is the 1-based row of the sheet, which is ordered
	// by roll number.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RollNo != out[j].RollNo {
			return out[i].RollNo < out[j].RollNo
		}
		return out[i].UserID < out[j].UserID
	})
	for i := range out {
		out[i].CollegeRank = i + 1
	}
	return out
}

// History implements Store.
func (s *MemoryStore) History(_ context.Context, userID string) ([]model.ContestRecord, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	h, ok := s.byUser[userID]
	if !ok {
		metrics.RecordLookupMiss()
		return nil, ErrNotFound
	}
	out := make([]model.ContestRecord, len(h))
	copy(out, h)
	return out, nil
}

// ResolveRollNo implements Store.
func (s *MemoryStore) ResolveRollNo(_ context.Context, rollNo int) (string, error) {
	id, ok := s.byRollNo[rollNo]
	if !ok {
		metrics.RecordLookupMiss()
		return "", ErrNotFound
	}
	return id, nil
}

// RollHistory implements Store.
func (s *MemoryStore) RollHistory(_ context.Context, rollNo int) ([]model.ContestRecord, error) {
	h, ok := s.byRoll[rollNo]
	if !ok {
		metrics.RecordLookupMiss()
		return nil, ErrNotFound
	}
	out := make([]model.ContestRecord, len(h))
	copy(out, h)
	return out, nil
}

// Latest implements Store.
func (s *MemoryStore) Latest(_ context.Context) []model.LatestEntry {
	out := make([]model.LatestEntry, len(s.latest))
	copy(out, s.latest)
	return out
}

// HighRatings implements Store.
func (s *MemoryStore) HighRatings(_ context.Context, minRating float64) []model.LatestEntry {
	out := make([]model.LatestEntry, 0, len(s.latest))
	for _, e := range s.latest {
		if e.Rating > minRating {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating < out[j].Rating
	})
	return out
}

// ContestAverages implements Store.
func (s *MemoryStore) ContestAverages(_ context.Context) map[string]model.ContestAverage {
	out := make(map[string]model.ContestAverage, len(s.averages))
	for k, v := range s.averages {
		out[k] = v
	}
	return out
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.byUser)
}

// Records implements Store.
func (s *MemoryStore) Records(_ context.Context) int {
	return s.records
}
