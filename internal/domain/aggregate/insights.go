package aggregate

import (
	"github.com/okian/contestdash/internal/domain/division"
	"github.com/okian/contestdash/internal/domain/model"
)

// Insights builds the chart series for a user's history against the
// contest-wide averages keyed by contest code. Codes missing from averages
// fall back to the user's own value.
func Insights(history []model.ContestRecord, averages map[string]model.ContestAverage) model.Insights {
	out := model.Insights{
		Ratings:   make([]model.SeriesPoint, 0, len(history)),
		Ranks:     make([]model.SeriesPoint, 0, len(history)),
		Divisions: make(map[string]int),
	}
	if len(history) > 0 {
		out.UserID = history[0].UserID
	}

	for _, r := range history {
		avg, ok := averages[r.Code]
		if !ok {
			avg = model.ContestAverage{Code: r.Code, AverageRating: r.Rating, AverageRank: float64(r.Rank)}
		}
		out.Ratings = append(out.Ratings, model.SeriesPoint{Code: r.Code, User: r.Rating, Average: avg.AverageRating})
		out.Ranks = append(out.Ranks, model.SeriesPoint{Code: r.Code, User: float64(r.Rank), Average: avg.AverageRank})

		label, ok := division.Label(r.Color)
		if !ok {
			label = "Unrated"
		}
		out.Divisions[label]++
	}
	return out
}
