package shape

import (
	"math"

	"github.com/katalvlaran/geomkit/vec"
)

// Tetrahedron is a solid over exactly four distinct, non-coplanar vertices.
// Vertex order (A, B, C, D) is semantically significant: it determines the
// sign of SignedVolume. The zero value is not a valid tetrahedron; use
// NewTetrahedron.
type Tetrahedron struct {
	a, b, c, d vec.Vec3
}

// NewTetrahedron constructs a validated tetrahedron.
// Returns ErrInvalidShape if any of the six vertex pairs is exactly equal
// or the four points are coplanar (exactly-zero signed volume — near-zero
// is deliberately accepted). Complexity: O(1).
func NewTetrahedron(a, b, c, d vec.Vec3) (Tetrahedron, error) {
	pts := [4]vec.Vec3{a, b, c, d}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if pts[i].Eq(pts[j]) {
				return Tetrahedron{}, shapeErrorf("NewTetrahedron", ErrInvalidShape)
			}
		}
	}

	t := Tetrahedron{a: a, b: b, c: c, d: d}
	if t.SignedVolume() == 0 {
		return Tetrahedron{}, shapeErrorf("NewTetrahedron", ErrInvalidShape)
	}

	return t, nil
}

// NewTetrahedronFromPoints constructs a tetrahedron from a slice that must
// hold exactly four points; any other length is ErrInvalidShape.
func NewTetrahedronFromPoints(pts []vec.Vec3) (Tetrahedron, error) {
	if len(pts) != 4 {
		return Tetrahedron{}, shapeErrorf("NewTetrahedronFromPoints", ErrInvalidShape)
	}

	return NewTetrahedron(pts[0], pts[1], pts[2], pts[3])
}

// A returns the first vertex.
func (t Tetrahedron) A() vec.Vec3 { return t.a }

// B returns the second vertex.
func (t Tetrahedron) B() vec.Vec3 { return t.b }

// C returns the third vertex.
func (t Tetrahedron) C() vec.Vec3 { return t.c }

// D returns the fourth vertex.
func (t Tetrahedron) D() vec.Vec3 { return t.d }

// Vertices returns the vertices in construction order.
func (t Tetrahedron) Vertices() [4]vec.Vec3 {
	return [4]vec.Vec3{t.a, t.b, t.c, t.d}
}

// SignedVolume returns the scalar triple product dot(A−D, cross(B−D, C−D))/6.
// The sign encodes orientation: positive when A, B, C form a counter-
// clockwise circuit viewed from the side opposite D. Never zero for a
// constructed tetrahedron.
func (t Tetrahedron) SignedVolume() float64 {
	return t.a.Sub(t.d).Dot(t.b.Sub(t.d).Cross(t.c.Sub(t.d))) / 6
}

// Volume returns |SignedVolume|.
func (t Tetrahedron) Volume() float64 {
	return math.Abs(t.SignedVolume())
}

// Centroid returns the vertex average (A+B+C+D)/4.
func (t Tetrahedron) Centroid() vec.Vec3 {
	return t.a.Add(t.b).Add(t.c).Add(t.d).Scale(0.25)
}

// EdgeLengths returns the lengths of the six edges in the order
// AB, AC, AD, BC, BD, CD.
func (t Tetrahedron) EdgeLengths() [6]float64 {
	return [6]float64{
		t.a.Distance(t.b),
		t.a.Distance(t.c),
		t.a.Distance(t.d),
		t.b.Distance(t.c),
		t.b.Distance(t.d),
		t.c.Distance(t.d),
	}
}

// Faces returns the four triangular faces, one opposite each vertex in
// order: (B,C,D) opposite A, (A,C,D) opposite B, (A,B,D) opposite C, and
// (A,B,C) opposite D. A valid tetrahedron has no collinear vertex triple,
// so every face is a valid triangle.
func (t Tetrahedron) Faces() [4]Triangle3D {
	return [4]Triangle3D{
		{a: t.b, b: t.c, c: t.d},
		{a: t.a, b: t.c, c: t.d},
		{a: t.a, b: t.b, c: t.d},
		{a: t.a, b: t.b, c: t.c},
	}
}

// CircumSphere returns the unique sphere through the four vertices,
// delegating to the four-point determinant solver. A constructed
// tetrahedron is never coplanar, so the solver's ErrCoplanarPoints does not
// occur here. Recomputed on every call, never cached.
func (t Tetrahedron) CircumSphere() (Sphere, error) {
	return SphereFromPoints(t.a, t.b, t.c, t.d)
}

// InSphere returns the inscribed sphere: the center is the face-area-
// weighted vertex average (Sa·A + Sb·B + Sc·C + Sd·D)/ΣS with Sa the area
// of the face opposite A, and the radius is 3·Volume/ΣS — the 3D analog of
// Triangle2D.InCircle.
func (t Tetrahedron) InSphere() Sphere {
	faces := t.Faces()
	sa := faces[0].Area()
	sb := faces[1].Area()
	sc := faces[2].Area()
	sd := faces[3].Area()
	total := sa + sb + sc + sd

	center := t.a.Scale(sa).Add(t.b.Scale(sb)).Add(t.c.Scale(sc)).Add(t.d.Scale(sd)).Scale(1 / total)

	return Sphere{center: center, radius: 3 * t.Volume() / total}
}

// Contains reports whether p lies in the tetrahedron expanded by tol.
// Returns ErrNegativeTolerance if tol < 0.
//
// The test runs in three stages:
//  1. a cheap reject when p is outside the tol-expanded vertex extents on
//     every axis simultaneously (the same deliberately weak conjunction as
//     the triangle tests);
//  2. an exact-vertex hit when p is within tol of any vertex;
//  3. barycentric decomposition: the 3×3 system J·(s,u,w) = P−A, with J's
//     columns the edge vectors B−A, C−A, D−A, solved by the inlined
//     Cramer's-rule cofactors. Inside iff s, u, w ≥ −tol and
//     1 − s − u − w ≥ −tol.
func (t Tetrahedron) Contains(p vec.Vec3, tol float64) (bool, error) {
	if err := checkTolerance("Tetrahedron.Contains", tol); err != nil {
		return false, err
	}

	minX := math.Min(math.Min(t.a.X, t.b.X), math.Min(t.c.X, t.d.X))
	maxX := math.Max(math.Max(t.a.X, t.b.X), math.Max(t.c.X, t.d.X))
	minY := math.Min(math.Min(t.a.Y, t.b.Y), math.Min(t.c.Y, t.d.Y))
	maxY := math.Max(math.Max(t.a.Y, t.b.Y), math.Max(t.c.Y, t.d.Y))
	minZ := math.Min(math.Min(t.a.Z, t.b.Z), math.Min(t.c.Z, t.d.Z))
	maxZ := math.Max(math.Max(t.a.Z, t.b.Z), math.Max(t.c.Z, t.d.Z))
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

	e1 := t.b.Sub(t.a)
	e2 := t.c.Sub(t.a)
	e3 := t.d.Sub(t.a)
	r := p.Sub(t.a)

	// det(J) = e1·(e2×e3), six times the signed volume taken from A.
	det := e1.Dot(e2.Cross(e3))
	s := r.Dot(e2.Cross(e3)) / det
	u := e1.Dot(r.Cross(e3)) / det
	w := e1.Dot(e2.Cross(r)) / det
	if s < -tol || u < -tol || w < -tol {
		return false, nil
	}

	return 1-s-u-w >= -tol, nil
}

// Eq reports exact structural equality: same vertices in the same order.
func (t Tetrahedron) Eq(other Tetrahedron) bool {
	return t.a.Eq(other.a) && t.b.Eq(other.b) && t.c.Eq(other.c) && t.d.Eq(other.d)
}

// EqualWithin reports whether corresponding vertices agree within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (t Tetrahedron) EqualWithin(other Tetrahedron, tol float64) (bool, error) {
	if err := checkTolerance("Tetrahedron.EqualWithin", tol); err != nil {
		return false, err
	}

	return t.a.EqualWithin(other.a, tol) &&
		t.b.EqualWithin(other.b, tol) &&
		t.c.EqualWithin(other.c, tol) &&
		t.d.EqualWithin(other.d, tol), nil
}
