package shape

import (
	"math"

	"github.com/katalvlaran/geomkit/mat"
	"github.com/katalvlaran/geomkit/vec"
)

// Sphere is a center point and a radius.
//
// Construction from center+radius is unchecked: a negative radius is
// accepted structurally and derived measures stay mathematically consistent
// with its sign, but are geometrically meaningless. Validity is the
// caller's responsibility.
type Sphere struct {
	center vec.Vec3
	radius float64
}

// NewSphere creates a sphere from a center and radius, unchecked.
func NewSphere(center vec.Vec3, radius float64) Sphere {
	return Sphere{center: center, radius: radius}
}

// SphereFromPoints solves for the unique sphere through four points using
// the classical circumsphere determinant system. With sq_i = x_i²+y_i²+z_i²,
// five 4×4 determinants are taken over per-point rows:
//
//	a  = det |x y z 1|        — homogeneous normalizer
//	dx = det |sq y z 1|       — sq substituted into the x column
//	dy = det |x sq z 1|       — sq substituted into the y column
//	dz = det |x y sq 1|       — sq substituted into the z column
//	c  = det |sq x y z|
//
// giving center = (dx/a, dy/a, dz/a)/2 and radius = √(center·center − c/a).
// The column arrangement is load-bearing: permuting a column flips the sign
// of its determinant and corrupts the recovered center and radius.
//
// Returns ErrCoplanarPoints when a == 0: four coplanar points admit no
// unique circumsphere. Near-coplanar inputs are not guarded; the division
// by a tiny a produces correspondingly large results.
func SphereFromPoints(p1, p2, p3, p4 vec.Vec3) (Sphere, error) {
	pts := [4]vec.Vec3{p1, p2, p3, p4}
	var sq [4]float64
	for i, p := range pts {
		sq[i] = p.LengthSq()
	}

	var ma, mx, my, mz, mc mat.Mat4
	for i, p := range pts {
		ma[i] = [4]float64{p.X, p.Y, p.Z, 1}
		mx[i] = [4]float64{sq[i], p.Y, p.Z, 1}
		my[i] = [4]float64{p.X, sq[i], p.Z, 1}
		mz[i] = [4]float64{p.X, p.Y, sq[i], 1}
		mc[i] = [4]float64{sq[i], p.X, p.Y, p.Z}
	}

	a := ma.Det()
	if a == 0 {
		return Sphere{}, shapeErrorf("SphereFromPoints", ErrCoplanarPoints)
	}

	center := vec.Vec3{
		X: mx.Det() / a,
		Y: my.Det() / a,
		Z: mz.Det() / a,
	}.Scale(0.5)
	radius := math.Sqrt(center.LengthSq() - mc.Det()/a)

	return Sphere{center: center, radius: radius}, nil
}

// Center returns the sphere's center point.
func (s Sphere) Center() vec.Vec3 {
	return s.center
}

// Radius returns the sphere's radius.
func (s Sphere) Radius() float64 {
	return s.radius
}

// Diameter returns 2r.
func (s Sphere) Diameter() float64 {
	return 2 * s.radius
}

// Circumference returns the great-circle circumference 2πr.
func (s Sphere) Circumference() float64 {
	return 2 * math.Pi * s.radius
}

// SurfaceArea returns 4πr².
func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

// Volume returns 4πr³/3.
func (s Sphere) Volume() float64 {
	return 4 * math.Pi * s.radius * s.radius * s.radius / 3
}

// Contains reports whether p lies within the sphere expanded by tol:
// distance(p, center) ≤ radius + tol. Returns ErrNegativeTolerance if
// tol < 0.
func (s Sphere) Contains(p vec.Vec3, tol float64) (bool, error) {
	if err := checkTolerance("Sphere.Contains", tol); err != nil {
		return false, err
	}

	return s.center.Distance(p) <= s.radius+tol, nil
}

// Eq reports exact structural equality of center and radius.
func (s Sphere) Eq(other Sphere) bool {
	return s.center.Eq(other.center) && s.radius == other.radius
}

// EqualWithin reports whether center and radius agree within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (s Sphere) EqualWithin(other Sphere, tol float64) (bool, error) {
	if err := checkTolerance("Sphere.EqualWithin", tol); err != nil {
		return false, err
	}

	return s.center.EqualWithin(other.center, tol) &&
		math.Abs(s.radius-other.radius) <= tol, nil
}
