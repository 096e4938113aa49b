package shape

import (
	"math"

	"github.com/katalvlaran/geomkit/vec"
)

// Plane is the set of points p satisfying Normal·p = D. The normal need not
// be unit length; signed distances are normalized by |Normal|.
type Plane struct {
	Normal vec.Vec3
	D      float64
}

// NewPlane creates a plane from a normal vector and its offset D = Normal·p0
// for any point p0 on the plane.
func NewPlane(normal vec.Vec3, d float64) Plane {
	return Plane{Normal: normal, D: d}
}

// DistanceTo returns the signed distance from p to the plane: positive on
// the side the normal points into, negative on the other.
func (pl Plane) DistanceTo(p vec.Vec3) float64 {
	return (pl.Normal.Dot(p) - pl.D) / pl.Normal.Length()
}

// Contains reports whether p lies on the plane within tol.
// Returns ErrNegativeTolerance if tol < 0.
func (pl Plane) Contains(p vec.Vec3, tol float64) (bool, error) {
	if err := checkTolerance("Plane.Contains", tol); err != nil {
		return false, err
	}

	return math.Abs(pl.DistanceTo(p)) <= tol, nil
}

// Eq reports exact structural equality.
func (pl Plane) Eq(other Plane) bool {
	return pl.Normal.Eq(other.Normal) && pl.D == other.D
}
