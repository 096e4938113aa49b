package shape

import (
	"math"

	"github.com/katalvlaran/geomkit/vec"
)

// Circle2D is a planar circle: a center point and a non-negative radius.
type Circle2D struct {
	Center vec.Vec2
	Radius float64
}

// NewCircle2D creates a circle from a center and radius. The radius is not
// validated; a negative radius is the caller's responsibility.
func NewCircle2D(center vec.Vec2, radius float64) Circle2D {
	return Circle2D{Center: center, Radius: radius}
}

// Circle2DFromPoints solves for the unique circle through three points using
// the perpendicular-bisector determinant form. Returns ErrInvalidShape when
// the points are collinear (zero determinant), since no unique circle exists.
// Complexity: O(1).
func Circle2DFromPoints(a, b, c vec.Vec2) (Circle2D, error) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return Circle2D{}, shapeErrorf("Circle2DFromPoints", ErrInvalidShape)
	}
	ux := (a.LengthSq()*(b.Y-c.Y) + b.LengthSq()*(c.Y-a.Y) + c.LengthSq()*(a.Y-b.Y)) / d
	uy := (a.LengthSq()*(c.X-b.X) + b.LengthSq()*(a.X-c.X) + c.LengthSq()*(b.X-a.X)) / d
	center := vec.Vec2{X: ux, Y: uy}

	return Circle2D{Center: center, Radius: center.Distance(a)}, nil
}

// Area returns πr².
func (c Circle2D) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns 2πr.
func (c Circle2D) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Contains reports whether p lies within the circle expanded by tol.
// Returns ErrNegativeTolerance if tol < 0.
func (c Circle2D) Contains(p vec.Vec2, tol float64) (bool, error) {
	if err := checkTolerance("Circle2D.Contains", tol); err != nil {
		return false, err
	}

	return c.Center.Distance(p) <= c.Radius+tol, nil
}

// Eq reports exact structural equality.
func (c Circle2D) Eq(other Circle2D) bool {
	return c.Center.Eq(other.Center) && c.Radius == other.Radius
}

// EqualWithin reports whether both center and radius agree within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (c Circle2D) EqualWithin(other Circle2D, tol float64) (bool, error) {
	if err := checkTolerance("Circle2D.EqualWithin", tol); err != nil {
		return false, err
	}

	return c.Center.EqualWithin(other.Center, tol) && math.Abs(c.Radius-other.Radius) <= tol, nil
}

// Circle3D is a circle embedded in 3D space: a center, a non-negative
// radius, and the unit normal of the plane carrying the circle.
type Circle3D struct {
	Center vec.Vec3
	Normal vec.Vec3
	Radius float64
}

// NewCircle3D creates a circle from a center, normal and radius. Neither the
// radius sign nor the normal length is validated.
func NewCircle3D(center, normal vec.Vec3, radius float64) Circle3D {
	return Circle3D{Center: center, Normal: normal, Radius: radius}
}

// Circle3DFromPoints solves for the unique circle through three points in
// 3D space. The circumcenter is recovered from the closed-form
//
//	center = a + (|ac|²·(n × ab) + |ab|²·(ac × n)) / (2|n|²), n = ab × ac
//
// and the normal follows the winding order a→b→c. Returns ErrInvalidShape
// when the points are collinear (zero cross product). Complexity: O(1).
func Circle3DFromPoints(a, b, c vec.Vec3) (Circle3D, error) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)
	nLenSq := n.LengthSq()
	if nLenSq == 0 {
		return Circle3D{}, shapeErrorf("Circle3DFromPoints", ErrInvalidShape)
	}
	offset := n.Cross(ab).Scale(ac.LengthSq()).
		Add(ac.Cross(n).Scale(ab.LengthSq())).
		Scale(1 / (2 * nLenSq))
	center := a.Add(offset)

	return Circle3D{
		Center: center,
		Normal: n.Normalize(),
		Radius: center.Distance(a),
	}, nil
}

// Circumference returns 2πr.
func (c Circle3D) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Area returns πr².
func (c Circle3D) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Eq reports exact structural equality.
func (c Circle3D) Eq(other Circle3D) bool {
	return c.Center.Eq(other.Center) && c.Normal.Eq(other.Normal) && c.Radius == other.Radius
}

// EqualWithin reports whether center, normal and radius agree within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (c Circle3D) EqualWithin(other Circle3D, tol float64) (bool, error) {
	if err := checkTolerance("Circle3D.EqualWithin", tol); err != nil {
		return false, err
	}

	return c.Center.EqualWithin(other.Center, tol) &&
		c.Normal.EqualWithin(other.Normal, tol) &&
		math.Abs(c.Radius-other.Radius) <= tol, nil
}
