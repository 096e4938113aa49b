package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/geomkit/vec"
)

// parseCoords splits a comma-separated coordinate list and requires exactly
// dim components.
func parseCoords(arg string, dim int) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != dim {
		return nil, fmt.Errorf("point %q: want %d coordinates, got %d", arg, dim, len(parts))
	}

	coords := make([]float64, dim)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: coordinate %d is not a number", arg, i+1)
		}
		coords[i] = v
	}

	return coords, nil
}

// parseVec2 parses "x,y" into a vec.Vec2.
func parseVec2(arg string) (vec.Vec2, error) {
	coords, err := parseCoords(arg, 2)
	if err != nil {
		return vec.Vec2{}, err
	}

	return vec.NewVec2(coords[0], coords[1]), nil
}

// parseVec3 parses "x,y,z" into a vec.Vec3.
func parseVec3(arg string) (vec.Vec3, error) {
	coords, err := parseCoords(arg, 3)
	if err != nil {
		return vec.Vec3{}, err
	}

	return vec.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseVec2s parses each argument as a 2D point.
func parseVec2s(args []string) ([]vec.Vec2, error) {
	pts := make([]vec.Vec2, len(args))
	for i, arg := range args {
		p, err := parseVec2(arg)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}

	return pts, nil
}

// parseVec3s parses each argument as a 3D point.
func parseVec3s(args []string) ([]vec.Vec3, error) {
	pts := make([]vec.Vec3, len(args))
	for i, arg := range args {
		p, err := parseVec3(arg)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}

	return pts, nil
}
