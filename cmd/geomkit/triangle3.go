package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/geomkit/shape"
	"github.com/spf13/cobra"
)

var (
	triangle3Contains string
	triangle3Tol      float64
)

var triangle3Cmd = &cobra.Command{
	Use:   "triangle3 [x,y,z] [x,y,z] [x,y,z]",
	Short: "Measure a 3D triangle given its three vertices",
	Long: `Compute the measures of a triangle embedded in 3D space: area,
winding-dependent unit normal, supporting plane, circumcircle and incircle.
Optionally classify a point against the triangle with --contains.`,
	Args: cobra.ExactArgs(3),
	Run:  runTriangle3,
}

func init() {
	rootCmd.AddCommand(triangle3Cmd)

	triangle3Cmd.Flags().StringVar(&triangle3Contains, "contains", "",
		"point x,y,z to test for containment")
	triangle3Cmd.Flags().Float64Var(&triangle3Tol, "tol", shape.DefaultTolerance,
		"tolerance for the containment test")
}

func runTriangle3(cmd *cobra.Command, args []string) {
	pts, err := parseVec3s(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tri, err := shape.NewTriangle3DFromPoints(pts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("3D Triangle")
	fmt.Println("===========")
	fmt.Printf("Area:      %.6f\n", tri.Area())
	n := tri.Normal()
	fmt.Printf("Normal:    (%.6f, %.6f, %.6f)\n", n.X, n.Y, n.Z)
	c := tri.Centroid()
	fmt.Printf("Centroid:  (%.6f, %.6f, %.6f)\n", c.X, c.Y, c.Z)
	fmt.Printf("Perimeter: %.6f\n", tri.Perimeter())
	pl := tri.Plane()
	fmt.Printf("Plane:     normal (%.6f, %.6f, %.6f), offset %.6f\n",
		pl.Normal.X, pl.Normal.Y, pl.Normal.Z, pl.D)

	if circ, cerr := tri.CircumCircle(); cerr == nil {
		fmt.Printf("Circumcircle: center (%.6f, %.6f, %.6f), radius %.6f\n",
			circ.Center.X, circ.Center.Y, circ.Center.Z, circ.Radius)
	}
	in := tri.InCircle()
	fmt.Printf("Incircle:     center (%.6f, %.6f, %.6f), radius %.6f\n",
		in.Center.X, in.Center.Y, in.Center.Z, in.Radius)

	if triangle3Contains != "" {
		p, perr := parseVec3(triangle3Contains)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			os.Exit(1)
		}
		ok, cerr := tri.Contains(p, triangle3Tol)
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cerr)
			os.Exit(1)
		}
		fmt.Printf("Contains (%.6f, %.6f, %.6f): %t\n", p.X, p.Y, p.Z, ok)
	}
}
