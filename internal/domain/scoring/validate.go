package scoring

import (
	"fmt"
	"math"
)

// Validate checks the credential invariants the aggregator must uphold
// before scoring: N >= 1, 0 <= P <= N and finite reals.
func Validate(c Credentials) error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: N must be >= 1, got %d", ErrInvalidCredentials, c.N)
	case c.P < 0:
		return fmt.Errorf("%w: P must be >= 0, got %d", ErrInvalidCredentials, c.P)
	case c.P > c.N:
		return fmt.Errorf("%w: P (%d) exceeds N (%d)", ErrInvalidCredentials, c.P, c.N)
	}

	for name, v := range map[string]float64{"OA": c.OA, "PA": c.PA, "C": c.C, "A": c.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidCredentials, name)
		}
	}
	return nil
}
