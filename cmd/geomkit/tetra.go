package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/geomkit/shape"
	"github.com/spf13/cobra"
)

var (
	tetraContains string
	tetraTol      float64
)

var tetraCmd = &cobra.Command{
	Use:   "tetra [x,y,z] [x,y,z] [x,y,z] [x,y,z]",
	Short: "Measure a tetrahedron given its four vertices",
	Long: `Compute the measures of a tetrahedron: signed volume (the vertex
orientation decides the sign), centroid, face areas, circumsphere and
insphere. Optionally classify a point against the solid with --contains.`,
	Args: cobra.ExactArgs(4),
	Run:  runTetra,
}

func init() {
	rootCmd.AddCommand(tetraCmd)

	tetraCmd.Flags().StringVar(&tetraContains, "contains", "",
		"point x,y,z to test for containment")
	tetraCmd.Flags().Float64Var(&tetraTol, "tol", shape.DefaultTolerance,
		"tolerance for the containment test")
}

func runTetra(cmd *cobra.Command, args []string) {
	pts, err := parseVec3s(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tet, err := shape.NewTetrahedronFromPoints(pts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Tetrahedron")
	fmt.Println("===========")
	fmt.Printf("Signed volume: %.6f\n", tet.SignedVolume())
	fmt.Printf("Volume:        %.6f\n", tet.Volume())
	c := tet.Centroid()
	fmt.Printf("Centroid:      (%.6f, %.6f, %.6f)\n", c.X, c.Y, c.Z)

	fmt.Println("Face areas:")
	for i, face := range tet.Faces() {
		fmt.Printf("  opposite vertex %d: %.6f\n", i+1, face.Area())
	}

	if s, serr := tet.CircumSphere(); serr == nil {
		sc := s.Center()
		fmt.Printf("Circumsphere: center (%.6f, %.6f, %.6f), radius %.6f\n",
			sc.X, sc.Y, sc.Z, s.Radius())
	}
	in := tet.InSphere()
	ic := in.Center()
	fmt.Printf("Insphere:     center (%.6f, %.6f, %.6f), radius %.6f\n",
		ic.X, ic.Y, ic.Z, in.Radius())

	if tetraContains != "" {
		p, perr := parseVec3(tetraContains)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			os.Exit(1)
		}
		ok, cerr := tet.Contains(p, tetraTol)
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cerr)
			os.Exit(1)
		}
		fmt.Printf("Contains (%.6f, %.6f, %.6f): %t\n", p.X, p.Y, p.Z, ok)
	}
}
