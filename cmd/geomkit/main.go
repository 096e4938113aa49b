package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geomkit",
	Short: "Inspect triangles, tetrahedra and spheres from the command line",
	Long: `geomkit computes measures of simple geometric primitives given their
vertex coordinates: signed areas and volumes, centroids, circumscribed and
inscribed circles and spheres, and tolerance-aware point containment.

Points are given as comma-separated coordinates, e.g. 1,2 or 1,2,3.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
