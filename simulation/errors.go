package simulation

import (
	"errors"
	"fmt"
)

// ErrNonConvergence is returned when the final-size solver exhausts its
// iteration cap before the bracket shrinks to tolerance. The caller
// decides the fallback; the model never returns an unstable value.
var ErrNonConvergence = errors.New("final-size solver did not converge")

// InvalidInputError identifies which parameter violated its constraint.
type InvalidInputError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %s", e.Param, e.Value, e.Reason)
}
