package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/geomkit/shape"
	"github.com/spf13/cobra"
)

var sphereCmd = &cobra.Command{
	Use:   "sphere [x,y,z] [x,y,z] [x,y,z] [x,y,z]",
	Short: "Solve the sphere through four non-coplanar points",
	Long: `Solve the unique sphere passing through four points and print its
center, radius and derived measures. Coplanar points are rejected.`,
	Args: cobra.ExactArgs(4),
	Run:  runSphere,
}

func init() {
	rootCmd.AddCommand(sphereCmd)
}

func runSphere(cmd *cobra.Command, args []string) {
	pts, err := parseVec3s(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := shape.SphereFromPoints(pts[0], pts[1], pts[2], pts[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c := s.Center()
	fmt.Println("Sphere")
	fmt.Println("======")
	fmt.Printf("Center:        (%.6f, %.6f, %.6f)\n", c.X, c.Y, c.Z)
	fmt.Printf("Radius:        %.6f\n", s.Radius())
	fmt.Printf("Diameter:      %.6f\n", s.Diameter())
	fmt.Printf("Circumference: %.6f\n", s.Circumference())
	fmt.Printf("Surface area:  %.6f\n", s.SurfaceArea())
	fmt.Printf("Volume:        %.6f\n", s.Volume())
}
