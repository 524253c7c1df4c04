package scoring

// Default policy constants. With every sub-score at its weight the total is 100.
const (
	defaultParticipationWeight = 20
	defaultIntegrityWeight     = 50
	defaultMomentumWeight      = 15
	defaultDeviationWeight     = 15

	defaultContestThreshold = 15
	defaultPenaltyDivisor   = 3
	defaultMomentumGap      = 5
	defaultMomentumFactor   = 0.15
	defaultDeviationGap     = 150
	defaultDeviationFactor  = 0.02
)

// Policy holds the weights, thresholds and factors of the trust score.
type Policy struct {
	// ParticipationWeight is awarded in full from ContestThreshold contests
	// on; each missing contest costs one point.
	ParticipationWeight float64
	ContestThreshold    int

	// IntegrityWeight loses IntegrityWeight/PenaltyDivisor per flagged contest.
	IntegrityWeight float64
	PenaltyDivisor  float64

	// MomentumWeight loses recent*MomentumFactor once the recent average
	// increment exceeds the overall one by more than MomentumGap.
	MomentumWeight float64
	MomentumGap    float64
	MomentumFactor float64

	// DeviationWeight loses (current-average)*DeviationFactor once the
	// current rating exceeds the average by more than DeviationGap.
	DeviationWeight float64
	DeviationGap    float64
	DeviationFactor float64

	// ClampSubScores bounds each sub-score to [0, weight]. Off by default:
	// the reference arithmetic lets sub-scores go negative.
	ClampSubScores bool
}

// DefaultPolicy returns the reference scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		ParticipationWeight: defaultParticipationWeight,
		ContestThreshold:    defaultContestThreshold,
		IntegrityWeight:     defaultIntegrityWeight,
		PenaltyDivisor:      defaultPenaltyDivisor,
		MomentumWeight:      defaultMomentumWeight,
		MomentumGap:         defaultMomentumGap,
		MomentumFactor:      defaultMomentumFactor,
		DeviationWeight:     defaultDeviationWeight,
		DeviationGap:        defaultDeviationGap,
		DeviationFactor:     defaultDeviationFactor,
	}
}

// MaxTotal is the sum of the four weights.
func (p Policy) MaxTotal() float64 {
	return p.ParticipationWeight + p.IntegrityWeight + p.MomentumWeight + p.DeviationWeight
}

// Option applies a configuration option to the TrustScorer.
type Option func(*TrustScorer)

// WithPolicy replaces the whole policy. A policy with a non-positive
// PenaltyDivisor is ignored.
func WithPolicy(p Policy) Option {
	return func(s *TrustScorer) {
		if p.PenaltyDivisor > 0 {
			s.policy = p
		}
	}
}

// WithClamping toggles clamping of sub-scores to [0, weight].
func WithClamping(enabled bool) Option {
	return func(s *TrustScorer) {
		s.policy.ClampSubScores = enabled
	}
}
