// Package scoring computes the composite trust score from a user's
// contest credentials.
package scoring

import (
	"math"
	"strconv"

	"github.com/okian/contestdash/internal/domain/model"
)

// Credentials is the scorer input.
type Credentials = model.Credentials

// Result holds the four sub-scores and their rounded total.
type Result struct {
	Participation float64 `json:"score1"`
	Integrity     float64 `json:"score2"`
	Momentum      float64 `json:"score3"`
	Deviation     float64 `json:"score4"`
	Total         float64 `json:"total_score"`
}

// Scorer computes a trust score from credentials.
type Scorer interface {
	Score(c Credentials) Result
}

// TrustScorer implements Scorer using a fixed Policy.
// It holds no mutable state and is safe for concurrent use.
type TrustScorer struct {
	policy Policy
}

// NewTrustScorer creates a scorer bound to DefaultPolicy unless overridden.
func NewTrustScorer(opts ...Option) *TrustScorer {
	s := &TrustScorer{policy: DefaultPolicy()}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Policy returns the policy the scorer was built with.
func (s *TrustScorer) Policy() Policy {
	return s.policy
}

// Score computes the four sub-scores and the total. Each sub-score is
// rounded to two decimals before summation and the sum is rounded again.
// Input is not validated here; see Validate.
func (s *TrustScorer) Score(c Credentials) Result {
	p := s.policy

	r := Result{
		Participation: round2(s.participation(c.N)),
		Integrity:     round2(p.IntegrityWeight - p.IntegrityWeight/p.PenaltyDivisor*float64(c.P)),
		Momentum:      round2(s.momentum(c.OA, c.PA)),
		Deviation:     round2(s.deviation(c.C, c.A)),
	}

	if p.ClampSubScores {
		r.Participation = clamp(r.Participation, p.ParticipationWeight)
		r.Integrity = clamp(r.Integrity, p.IntegrityWeight)
		r.Momentum = clamp(r.Momentum, p.MomentumWeight)
		r.Deviation = clamp(r.Deviation, p.DeviationWeight)
	}

	r.Total = round2(r.Participation + r.Integrity + r.Momentum + r.Deviation)
	return r
}

func (s *TrustScorer) participation(n int) float64 {
	p := s.policy
	if n < p.ContestThreshold {
		return p.ParticipationWeight - float64(p.ContestThreshold-n)
	}
	return p.ParticipationWeight
}

// momentum penalizes a recent average increment that outruns the overall
// one by more than MomentumGap, scaled by the recent increment itself.
func (s *TrustScorer) momentum(overall, recent float64) float64 {
	p := s.policy
	if recent-overall > p.MomentumGap {
		return p.MomentumWeight - recent*p.MomentumFactor
	}
	return p.MomentumWeight
}

func (s *TrustScorer) deviation(current, average float64) float64 {
	p := s.policy
	difference := current - average
	if difference > p.DeviationGap {
		return p.DeviationWeight - difference*p.DeviationFactor
	}
	return p.DeviationWeight
}

// round2 rounds the exact binary value of x to two decimals, ties to even.
// Scaling by 100 first would round values such as 11.635 the wrong way.
func round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}

func clamp(x, hi float64) float64 {
	return math.Max(0, math.Min(hi, x))
}
