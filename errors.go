package vectors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVector is returned when a vector is constructed without coordinates.
	ErrEmptyVector = errors.New("vector must have at least one coordinate")

	// ErrZeroVectorNormalize is returned when normalizing the zero vector.
	ErrZeroVectorNormalize = errors.New("cannot normalize the zero vector")

	// ErrZeroVectorAngle is returned when computing an angle with the zero vector.
	ErrZeroVectorAngle = errors.New("cannot compute angle with the zero vector")

	// ErrNoUniqueParallelComponent is returned when projecting onto the zero vector.
	ErrNoUniqueParallelComponent = errors.New("no unique parallel component with a zero vector")

	// ErrNoUniqueOrthogonalComponent is returned when decomposing against the zero vector.
	ErrNoUniqueOrthogonalComponent = errors.New("no unique orthogonal component with a zero vector")

	// ErrCrossProductDimension is returned when a cross product operand has more than three dimensions.
	ErrCrossProductDimension = errors.New("cross product valid only in three dimensions")
)

// DimensionError indicates an operand whose dimension exceeds what an operation supports.
//
// The kind of failure can be matched via errors.Is against the wrapped sentinel.
type DimensionError struct {
	Op        string
	Dimension int
	Max       int
	kind      error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v (got dimension %d, max %d)", e.Op, e.kind, e.Dimension, e.Max)
}

func (e *DimensionError) Unwrap() error { return e.kind }

// translateError re-signals err as to when it is of kind from.
// Errors of any other kind pass through unchanged.
func translateError(err, from, to error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, from) {
		return to
	}

	return err
}
