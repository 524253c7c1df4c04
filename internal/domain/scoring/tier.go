package scoring

import "encoding/json"

// Tier is the presentation band of a trust total.
type Tier int

// Tiers, from best to worst.
const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// Default tier bounds.
const (
	defaultHighThreshold   = 90
	defaultMediumThreshold = 70
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// Color is the display colour the dashboard uses for the tier.
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return "green"
	case TierMedium:
		return "orange"
	default:
		return "red"
	}
}

// MarshalJSON encodes the tier by name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// TierThresholds are the inclusive lower bounds of the High and Medium tiers.
type TierThresholds struct {
	High   float64
	Medium float64
}

// DefaultTierThresholds returns 90 for High and 70 for Medium.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{High: defaultHighThreshold, Medium: defaultMediumThreshold}
}

// Classify maps a total to its tier.
func (th TierThresholds) Classify(total float64) Tier {
	switch {
	case total >= th.High:
		return TierHigh
	case total >= th.Medium:
		return TierMedium
	default:
		return TierLow
	}
}

// Classify maps a total to its tier using the default thresholds.
func Classify(total float64) Tier {
	return DefaultTierThresholds().Classify(total)
}
