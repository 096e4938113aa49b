package shape

import (
	"math"

	"github.com/katalvlaran/geomkit/vec"
)

// Triangle2D is a planar triangle over exactly three distinct,
// non-collinear vertices. Vertex order (A, B, C) is semantically
// significant: it determines the sign of SignedArea and the orientation
// reported by Normal. The zero value is not a valid triangle; use
// NewTriangle2D.
type Triangle2D struct {
	a, b, c vec.Vec2
}

// NewTriangle2D constructs a validated planar triangle.
// Returns ErrInvalidShape if any two vertices are exactly equal or the
// three points are collinear (exactly-zero edge cross product — near-zero
// is deliberately accepted). Complexity: O(1).
func NewTriangle2D(a, b, c vec.Vec2) (Triangle2D, error) {
	if a.Eq(b) || a.Eq(c) || b.Eq(c) {
		return Triangle2D{}, shapeErrorf("NewTriangle2D", ErrInvalidShape)
	}
	if b.Sub(a).Cross(c.Sub(a)) == 0 {
		return Triangle2D{}, shapeErrorf("NewTriangle2D", ErrInvalidShape)
	}

	return Triangle2D{a: a, b: b, c: c}, nil
}

// NewTriangle2DFromPoints constructs a triangle from a slice that must hold
// exactly three points; any other length is ErrInvalidShape.
func NewTriangle2DFromPoints(pts []vec.Vec2) (Triangle2D, error) {
	if len(pts) != 3 {
		return Triangle2D{}, shapeErrorf("NewTriangle2DFromPoints", ErrInvalidShape)
	}

	return NewTriangle2D(pts[0], pts[1], pts[2])
}

// A returns the first vertex.
func (t Triangle2D) A() vec.Vec2 { return t.a }

// B returns the second vertex.
func (t Triangle2D) B() vec.Vec2 { return t.b }

// C returns the third vertex.
func (t Triangle2D) C() vec.Vec2 { return t.c }

// Vertices returns the vertices in construction order.
func (t Triangle2D) Vertices() [3]vec.Vec2 {
	return [3]vec.Vec2{t.a, t.b, t.c}
}

// SignedArea returns cross(B−A, C−A)/2: positive iff A→B→C winds
// counter-clockwise. Never zero for a constructed triangle.
func (t Triangle2D) SignedArea() float64 {
	return t.b.Sub(t.a).Cross(t.c.Sub(t.a)) / 2
}

// Area returns |SignedArea|.
func (t Triangle2D) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Normal returns the out-of-plane unit vector (0,0,+1) for a
// counter-clockwise triangle and (0,0,−1) for a clockwise one — a 3D vector
// for the triangle embedded at z=0.
func (t Triangle2D) Normal() vec.Vec3 {
	if t.SignedArea() > 0 {
		return vec.Vec3{Z: 1}
	}

	return vec.Vec3{Z: -1}
}

// Centroid returns the vertex average (A+B+C)/3.
func (t Triangle2D) Centroid() vec.Vec2 {
	return t.a.Add(t.b).Add(t.c).Scale(1.0 / 3.0)
}

// EdgeLengths returns the lengths of edges AB, BC and CA.
func (t Triangle2D) EdgeLengths() [3]float64 {
	return [3]float64{
		t.a.Distance(t.b),
		t.b.Distance(t.c),
		t.c.Distance(t.a),
	}
}

// Perimeter returns the total edge length.
func (t Triangle2D) Perimeter() float64 {
	l := t.EdgeLengths()

	return l[0] + l[1] + l[2]
}

// CircumCircle returns the unique circle through the three vertices,
// delegating to the three-point circle solver. A constructed triangle is
// never collinear, so the solver's degeneracy error does not occur here.
func (t Triangle2D) CircumCircle() (Circle2D, error) {
	return Circle2DFromPoints(t.a, t.b, t.c)
}

// InCircle returns the inscribed circle. The center is the side-length-
// weighted vertex average (a·A + b·B + c·C)/(a+b+c) with a = |BC|, b = |CA|,
// c = |AB|; the radius follows the Heron-derived closed form
//
//	r = √((−a+b+c)(a+b−c)(a−b+c)/(a+b+c)) / 2.
//
// For near-degenerate triangles the radicand can round below zero and the
// radius propagates as NaN; this is intentional and not clamped.
func (t Triangle2D) InCircle() Circle2D {
	la := t.b.Distance(t.c)
	lb := t.c.Distance(t.a)
	lc := t.a.Distance(t.b)
	perimeter := la + lb + lc

	center := t.a.Scale(la).Add(t.b.Scale(lb)).Add(t.c.Scale(lc)).Scale(1 / perimeter)
	radius := math.Sqrt((-la+lb+lc)*(la+lb-lc)*(la-lb+lc)/perimeter) / 2

	return Circle2D{Center: center, Radius: radius}
}

// Contains reports whether p lies in the triangle expanded by tol.
// Returns ErrNegativeTolerance if tol < 0.
//
// The test runs in three stages:
//  1. a cheap reject when p is outside the tol-expanded vertex extents on
//     every axis simultaneously (a deliberately weak conjunction, not a
//     true bounding-box test);
//  2. an exact-vertex hit when p is within tol of any vertex;
//  3. signed barycentric sub-areas normalized by 2·SignedArea — correct for
//     both windings — rejecting when any coordinate undershoots −tol and
//     accepting when 1 − Σs ≥ −tol.
func (t Triangle2D) Contains(p vec.Vec2, tol float64) (bool, error) {
	if err := checkTolerance("Triangle2D.Contains", tol); err != nil {
		return false, err
	}

	minX := math.Min(t.a.X, math.Min(t.b.X, t.c.X))
	maxX := math.Max(t.a.X, math.Max(t.b.X, t.c.X))
	minY := math.Min(t.a.Y, math.Min(t.b.Y, t.c.Y))
	maxY := math.Max(t.a.Y, math.Max(t.b.Y, t.c.Y))
	outX := p.X < minX-tol || p.X > maxX+tol
	outY := p.Y < minY-tol || p.Y > maxY+tol
	if outX && outY {
		return false, nil
	}

	for _, v := range t.Vertices() {
		if p.Distance(v) <= tol {
			return true, nil
		}
	}

	denom := 2 * t.SignedArea()
	sa := t.b.Sub(p).Cross(t.c.Sub(p)) / denom
	sb := t.c.Sub(p).Cross(t.a.Sub(p)) / denom
	sc := t.a.Sub(p).Cross(t.b.Sub(p)) / denom
	if sa < -tol || sb < -tol || sc < -tol {
		return false, nil
	}

	return 1-(sa+sb+sc) >= -tol, nil
}

// Eq reports exact structural equality: same vertices in the same order.
func (t Triangle2D) Eq(other Triangle2D) bool {
	return t.a.Eq(other.a) && t.b.Eq(other.b) && t.c.Eq(other.c)
}

// EqualWithin reports whether corresponding vertices agree within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (t Triangle2D) EqualWithin(other Triangle2D, tol float64) (bool, error) {
	if err := checkTolerance("Triangle2D.EqualWithin", tol); err != nil {
		return false, err
	}

	return t.a.EqualWithin(other.a, tol) &&
		t.b.EqualWithin(other.b, tol) &&
		t.c.EqualWithin(other.c, tol), nil
}
