package shape

import (
	"math"

	"github.com/katalvlaran/geomkit/vec"
)

// Triangle3D is a triangle embedded in 3D space over exactly three
// distinct, non-collinear vertices. Vertex order determines the winding
// and therefore the direction of Normal; callers control orientation by
// ordering the vertices. The zero value is not a valid triangle; use
// NewTriangle3D.
type Triangle3D struct {
	a, b, c vec.Vec3
}

// NewTriangle3D constructs a validated 3D triangle.
// Returns ErrInvalidShape if any two vertices are exactly equal or the
// three points are collinear (exactly-zero cross-product magnitude —
// near-zero is deliberately accepted). Complexity: O(1).
func NewTriangle3D(a, b, c vec.Vec3) (Triangle3D, error) {
	if a.Eq(b) || a.Eq(c) || b.Eq(c) {
		return Triangle3D{}, shapeErrorf("NewTriangle3D", ErrInvalidShape)
	}
	if b.Sub(a).Cross(c.Sub(a)).Length() == 0 {
		return Triangle3D{}, shapeErrorf("NewTriangle3D", ErrInvalidShape)
	}

	return Triangle3D{a: a, b: b, c: c}, nil
}

// NewTriangle3DFromPoints constructs a triangle from a slice that must hold
// exactly three points; any other length is ErrInvalidShape.
func NewTriangle3DFromPoints(pts []vec.Vec3) (Triangle3D, error) {
	if len(pts) != 3 {
		return Triangle3D{}, shapeErrorf("NewTriangle3DFromPoints", ErrInvalidShape)
	}

	return NewTriangle3D(pts[0], pts[1], pts[2])
}

// A returns the first vertex.
func (t Triangle3D) A() vec.Vec3 { return t.a }

// B returns the second vertex.
func (t Triangle3D) B() vec.Vec3 { return t.b }

// C returns the third vertex.
func (t Triangle3D) C() vec.Vec3 { return t.c }

// Vertices returns the vertices in construction order.
func (t Triangle3D) Vertices() [3]vec.Vec3 {
	return [3]vec.Vec3{t.a, t.b, t.c}
}

// Area returns |cross(B−A, C−A)|/2, always non-negative: a triangle in 3D
// space has no inherent orientation without a reference normal.
func (t Triangle3D) Area() float64 {
	return t.b.Sub(t.a).Cross(t.c.Sub(t.a)).Length() / 2
}

// Normal returns the unit vector of cross(B−A, C−A); its direction depends
// on the vertex winding order.
func (t Triangle3D) Normal() vec.Vec3 {
	return t.b.Sub(t.a).Cross(t.c.Sub(t.a)).Normalize()
}

// Plane returns the supporting plane of the triangle, oriented per the
// triangle's own normal: Normal·p = Normal·A.
func (t Triangle3D) Plane() Plane {
	n := t.Normal()

	return Plane{Normal: n, D: n.Dot(t.a)}
}

// Centroid returns the vertex average (A+B+C)/3.
func (t Triangle3D) Centroid() vec.Vec3 {
	return t.a.Add(t.b).Add(t.c).Scale(1.0 / 3.0)
}

// EdgeLengths returns the lengths of edges AB, BC and CA.
func (t Triangle3D) EdgeLengths() [3]float64 {
	return [3]float64{
		t.a.Distance(t.b),
		t.b.Distance(t.c),
		t.c.Distance(t.a),
	}
}

// Perimeter returns the total edge length.
func (t Triangle3D) Perimeter() float64 {
	l := t.EdgeLengths()

	return l[0] + l[1] + l[2]
}

// CircumCircle returns the unique circle through the three vertices,
// delegating to the three-point circle solver. A constructed triangle is
// never collinear, so the solver's degeneracy error does not occur here.
func (t Triangle3D) CircumCircle() (Circle3D, error) {
	return Circle3DFromPoints(t.a, t.b, t.c)
}

// InCircle returns the inscribed circle, carried on the triangle's plane
// with the triangle's normal. Center and radius follow the same
// side-length-weighted closed form as Triangle2D.InCircle, including the
// unguarded NaN propagation near degeneracy.
func (t Triangle3D) InCircle() Circle3D {
	la := t.b.Distance(t.c)
	lb := t.c.Distance(t.a)
	lc := t.a.Distance(t.b)
	perimeter := la + lb + lc

	center := t.a.Scale(la).Add(t.b.Scale(lb)).Add(t.c.Scale(lc)).Scale(1 / perimeter)
	radius := math.Sqrt((-la+lb+lc)*(la+lb-lc)*(la-lb+lc)/perimeter) / 2

	return Circle3D{Center: center, Normal: t.Normal(), Radius: radius}
}

// Contains reports whether p lies in the triangle expanded by tol.
// Returns ErrNegativeTolerance if tol < 0.
//
// Same three-stage test as Triangle2D.Contains, but the barycentric
// sub-areas use cross-product magnitudes normalized by 2·Area. Coplanarity
// of p is therefore NOT separately enforced: a point off the triangle's
// plane whose projection satisfies the barycentric bound may still report
// true. This is a known approximation, not a guaranteed in-plane test;
// conjoin with Plane().Contains when coplanarity matters.
func (t Triangle3D) Contains(p vec.Vec3, tol float64) (bool, error) {
	if err := checkTolerance("Triangle3D.Contains", tol); err != nil {
		return false, err
	}

	minX := math.Min(t.a.X, math.Min(t.b.X, t.c.X))
	maxX := math.Max(t.a.X, math.Max(t.b.X, t.c.X))
	minY := math.Min(t.a.Y, math.Min(t.b.Y, t.c.Y))
	maxY := math.Max(t.a.Y, math.Max(t.b.Y, t.c.Y))
	minZ := math.Min(t.a.Z, math.Min(t.b.Z, t.c.Z))
	maxZ := math.Max(t.a.Z, math.Max(t.b.Z, t.c.Z))
	outX := p.X < minX-tol || p.X > maxX+tol
	outY := p.Y < minY-tol || p.Y > maxY+tol
	outZ := p.Z < minZ-tol || p.Z > maxZ+tol
	if outX && outY && outZ {
		return false, nil
	}

	for _, v := range t.Vertices() {
		if p.Distance(v) <= tol {
			return true, nil
		}
	}

	denom := 2 * t.Area()
	sa := t.b.Sub(p).Cross(t.c.Sub(p)).Length() / denom
	sb := t.c.Sub(p).Cross(t.a.Sub(p)).Length() / denom
	sc := t.a.Sub(p).Cross(t.b.Sub(p)).Length() / denom
	if sa < -tol || sb < -tol || sc < -tol {
		return false, nil
	}

	return 1-(sa+sb+sc) >= -tol, nil
}

// Eq reports exact structural equality: same vertices in the same order.
func (t Triangle3D) Eq(other Triangle3D) bool {
	return t.a.Eq(other.a) && t.b.Eq(other.b) && t.c.Eq(other.c)
}

// EqualWithin reports whether corresponding vertices agree within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (t Triangle3D) EqualWithin(other Triangle3D, tol float64) (bool, error) {
	if err := checkTolerance("Triangle3D.EqualWithin", tol); err != nil {
		return false, err
	}

	return t.a.EqualWithin(other.a, tol) &&
		t.b.EqualWithin(other.b, tol) &&
		t.c.EqualWithin(other.c, tol), nil
}
