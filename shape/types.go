package shape

import (
	"errors"
	"fmt"
)

// DefaultTolerance is the epsilon recommended for containment and
// tolerance-equality queries when the caller has no better bound:
// the single-precision machine epsilon.
const DefaultTolerance = 1.19209e-07

// Sentinel errors for shape construction and queries.
var (
	// ErrInvalidShape indicates construction failed: wrong vertex count,
	// duplicated vertices, or a degenerate configuration with exactly-zero
	// area or volume (collinear or coplanar points).
	ErrInvalidShape = errors.New("shape: invalid shape configuration")

	// ErrNegativeTolerance indicates a negative tolerance was passed to a
	// containment or comparison method.
	ErrNegativeTolerance = errors.New("shape: tolerance must be non-negative")

	// ErrCoplanarPoints indicates the circumsphere solver was invoked on
	// four coplanar points, which admit no unique circumsphere.
	ErrCoplanarPoints = errors.New("shape: four coplanar points have no unique circumsphere")
)

// shapeErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func shapeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkTolerance validates that tol is non-negative before any computation.
func checkTolerance(op string, tol float64) error {
	if tol < 0 {
		return shapeErrorf(op, ErrNegativeTolerance)
	}
	return nil
}
