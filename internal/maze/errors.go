package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports generation parameters outside their
	// accepted ranges. No maze is produced.
	ErrInvalidParameter = errors.New("maze: invalid parameter")

	// ErrGenerationExhausted reports that no attempt produced a distinct,
	// reachable start/goal pair.
	ErrGenerationExhausted = errors.New("maze: generation exhausted")

	// ErrNotLatticeNeighbors reports a WallBetween call on cells that are not
	// two steps apart on one axis.
	ErrNotLatticeNeighbors = errors.New("maze: cells are not lattice neighbors")
)

// ParamError describes a single rejected generation parameter.
type ParamError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("maze: invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidParameter) match any ParamError.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}
