package shape_test

import (
	"fmt"

	"github.com/katalvlaran/geomkit/shape"
	"github.com/katalvlaran/geomkit/vec"
)

// ExampleNewTriangle2D builds the 3-4-5 right triangle and reads off its
// signed area and circumcircle.
func ExampleNewTriangle2D() {
	tri, err := shape.NewTriangle2D(vec.NewVec2(0, 0), vec.NewVec2(3, 0), vec.NewVec2(0, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	circ, _ := tri.CircumCircle()
	fmt.Printf("signed area: %.1f\n", tri.SignedArea())
	fmt.Printf("circumcenter: (%.1f, %.1f), radius: %.1f\n",
		circ.Center.X, circ.Center.Y, circ.Radius)

	// Output:
	// signed area: 6.0
	// circumcenter: (1.5, 2.0), radius: 2.5
}

// ExampleSphereFromPoints solves the unique sphere through four
// non-coplanar points.
func ExampleSphereFromPoints() {
	s, err := shape.SphereFromPoints(
		vec.NewVec3(3, 2, 3), vec.NewVec3(-1, 2, 3), vec.NewVec3(1, 4, 3), vec.NewVec3(1, 2, 5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c := s.Center()
	fmt.Printf("center: (%.0f, %.0f, %.0f)\n", c.X, c.Y, c.Z)
	fmt.Printf("radius: %.0f\n", s.Radius())

	// Output:
	// center: (1, 2, 3)
	// radius: 2
}

// ExampleTetrahedron_Contains classifies a point against the unit corner
// tetrahedron with a small tolerance.
func ExampleTetrahedron_Contains() {
	tet, err := shape.NewTetrahedron(
		vec.NewVec3(1, 0, 0), vec.NewVec3(0, 1, 0), vec.NewVec3(0, 0, 1), vec.NewVec3(0, 0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inside, _ := tet.Contains(tet.Centroid(), shape.DefaultTolerance)
	outside, _ := tet.Contains(vec.NewVec3(1, 1, 1), shape.DefaultTolerance)
	fmt.Println("centroid contained:", inside)
	fmt.Println("(1,1,1) contained:", outside)

	// Output:
	// centroid contained: true
	// (1,1,1) contained: false
}
