package shape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geomkit/shape"
	"github.com/katalvlaran/geomkit/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liftedTriangle3D returns a validated right triangle carried on the z=5
// plane: A=(0,0,5), B=(2,0,5), C=(0,2,5).
func liftedTriangle3D(t *testing.T) shape.Triangle3D {
	t.Helper()
	tri, err := shape.NewTriangle3D(
		vec.NewVec3(0, 0, 5), vec.NewVec3(2, 0, 5), vec.NewVec3(0, 2, 5))
	require.NoError(t, err, "the lifted right triangle is valid")

	return tri
}

// TestNewTriangle3D_Collinear ensures exactly-collinear 3D points are
// rejected with ErrInvalidShape.
func TestNewTriangle3D_Collinear(t *testing.T) {
	_, err := shape.NewTriangle3D(
		vec.NewVec3(0, 0, 0), vec.NewVec3(1, 1, 1), vec.NewVec3(2, 2, 2))
	assert.ErrorIs(t, err, shape.ErrInvalidShape, "collinear points must error")
}

// TestNewTriangle3D_DuplicateVertex ensures repeated vertices are rejected.
func TestNewTriangle3D_DuplicateVertex(t *testing.T) {
	a := vec.NewVec3(1, 2, 3)
	b := vec.NewVec3(4, 5, 6)

	_, err := shape.NewTriangle3D(a, a, b)
	assert.ErrorIs(t, err, shape.ErrInvalidShape, "repeated vertex must error")
}

// TestNewTriangle3DFromPoints_Count ensures any count other than three is
// ErrInvalidShape.
func TestNewTriangle3DFromPoints_Count(t *testing.T) {
	_, err := shape.NewTriangle3DFromPoints([]vec.Vec3{{X: 1}})
	assert.ErrorIs(t, err, shape.ErrInvalidShape, "one point must error")
}

// TestTriangle3D_AreaNormal verifies the area and the winding-dependent
// unit normal of the lifted triangle.
func TestTriangle3D_AreaNormal(t *testing.T) {
	tri := liftedTriangle3D(t)

	assert.InDelta(t, 2.0, tri.Area(), 1e-12, "legs 2 and 2 give area 2")
	assert.Equal(t, vec.Vec3{Z: 1}, tri.Normal(), "CCW-in-plane winding points +z")

	reversed, err := shape.NewTriangle3D(tri.A(), tri.C(), tri.B())
	require.NoError(t, err)
	assert.Equal(t, vec.Vec3{Z: -1}, reversed.Normal(), "reversed winding flips the normal")
	assert.InDelta(t, tri.Area(), reversed.Area(), 1e-12, "area is winding-independent")
}

// TestTriangle3D_Plane checks the supporting plane: the triangle's normal
// and offset, containing all three vertices.
func TestTriangle3D_Plane(t *testing.T) {
	tri := liftedTriangle3D(t)

	pl := tri.Plane()
	assert.Equal(t, vec.Vec3{Z: 1}, pl.Normal, "plane carries the triangle normal")
	assert.InDelta(t, 5.0, pl.D, 1e-12, "offset is Normal·A")

	for _, v := range tri.Vertices() {
		ok, err := pl.Contains(v, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok, "vertex %v lies on the supporting plane", v)
	}
	assert.InDelta(t, 2.0, pl.DistanceTo(vec.NewVec3(0, 0, 7)), 1e-12,
		"signed distance along the normal")
}

// TestTriangle3D_CircumCircle verifies the 3D circumcircle of the lifted
// right triangle: center at the hypotenuse midpoint, in-plane normal.
func TestTriangle3D_CircumCircle(t *testing.T) {
	tri := liftedTriangle3D(t)

	circ, err := tri.CircumCircle()
	require.NoError(t, err, "a valid triangle always has a circumcircle")
	assert.InDelta(t, 1.0, circ.Center.X, 1e-12, "center x")
	assert.InDelta(t, 1.0, circ.Center.Y, 1e-12, "center y")
	assert.InDelta(t, 5.0, circ.Center.Z, 1e-12, "center stays on the carrying plane")
	assert.InDelta(t, math.Sqrt2, circ.Radius, 1e-12, "radius is half the hypotenuse")
	assert.InDelta(t, 1.0, circ.Normal.Z, 1e-12, "circle normal follows the winding")
}

// TestTriangle3D_InCircle verifies the lifted incircle: equidistant from
// both legs, carried with the triangle's normal.
func TestTriangle3D_InCircle(t *testing.T) {
	tri := liftedTriangle3D(t)

	in := tri.InCircle()
	r := 2 - math.Sqrt2 // inradius of the 2-2-2√2 right triangle
	assert.InDelta(t, r, in.Radius, 1e-12, "inradius")
	assert.InDelta(t, r, in.Center.X, 1e-12, "incenter x equals the inradius")
	assert.InDelta(t, r, in.Center.Y, 1e-12, "incenter y equals the inradius")
	assert.InDelta(t, 5.0, in.Center.Z, 1e-12, "incenter stays on the carrying plane")
	assert.Equal(t, tri.Normal(), in.Normal, "incircle carries the triangle normal")
}

// TestTriangle3D_Contains_Vertices ensures every vertex is contained at
// zero tolerance.
func TestTriangle3D_Contains_Vertices(t *testing.T) {
	tri := liftedTriangle3D(t)

	for _, v := range tri.Vertices() {
		ok, err := tri.Contains(v, 0)
		require.NoError(t, err)
		assert.True(t, ok, "vertex %v must be contained at tolerance 0", v)
	}
}

// TestTriangle3D_Contains_InsideOutside checks interior and exterior
// in-plane points.
func TestTriangle3D_Contains_InsideOutside(t *testing.T) {
	tri := liftedTriangle3D(t)

	ok, err := tri.Contains(tri.Centroid(), 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, "centroid is inside")

	ok, err = tri.Contains(vec.NewVec3(2, 2, 5), 1e-12)
	require.NoError(t, err)
	assert.False(t, ok, "in-plane point past the hypotenuse is outside")
}

// TestTriangle3D_Contains_OffPlaneApproximation documents the known
// approximation: the magnitude-based barycentric test does not enforce
// coplanarity, so a point hovering just off the plane above the interior
// still reports contained, while a far-off-plane point does not.
func TestTriangle3D_Contains_OffPlaneApproximation(t *testing.T) {
	tri := liftedTriangle3D(t)
	hover := tri.Centroid().Add(vec.NewVec3(0, 0, 1e-9))

	ok, err := tri.Contains(hover, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok, "a barely off-plane interior point passes the barycentric bound")

	far := tri.Centroid().Add(vec.NewVec3(0, 0, 10))
	ok, err = tri.Contains(far, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok, "a far off-plane point inflates the sub-areas past the bound")
}

// TestTriangle3D_Contains_NegativeTolerance ensures tol < 0 fails before
// any computation.
func TestTriangle3D_Contains_NegativeTolerance(t *testing.T) {
	tri := liftedTriangle3D(t)

	_, err := tri.Contains(vec.NewVec3(1, 1, 5), -0.5)
	assert.ErrorIs(t, err, shape.ErrNegativeTolerance, "negative tolerance must error")
}

// TestTriangle3D_Measures verifies centroid, edge lengths and perimeter.
func TestTriangle3D_Measures(t *testing.T) {
	tri := liftedTriangle3D(t)

	assert.Equal(t, vec.Vec3{X: 2.0 / 3.0, Y: 2.0 / 3.0, Z: 5}, tri.Centroid(),
		"centroid is the vertex average")
	l := tri.EdgeLengths()
	assert.Equal(t, 2.0, l[0], "edge AB")
	assert.InDelta(t, 2*math.Sqrt2, l[1], 1e-12, "edge BC is the hypotenuse")
	assert.Equal(t, 2.0, l[2], "edge CA")
	assert.InDelta(t, 4+2*math.Sqrt2, tri.Perimeter(), 1e-12, "perimeter")
}

// TestTriangle3D_Equality distinguishes exact from tolerance equality.
func TestTriangle3D_Equality(t *testing.T) {
	tri := liftedTriangle3D(t)

	jittered, err := shape.NewTriangle3D(
		vec.NewVec3(0, 0, 5+1e-9), vec.NewVec3(2, 0, 5), vec.NewVec3(0, 2, 5))
	require.NoError(t, err)

	assert.False(t, tri.Eq(jittered), "Eq is exact")
	ok, err := tri.EqualWithin(jittered, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok, "EqualWithin absorbs the jitter")
}
