// Package vec provides the 2D and 3D point/vector value types and the
// arithmetic the geometry kernel is built on: subtraction, cross and dot
// products, length, distance, and both exact and tolerance-based equality.
//
// Vec2 and Vec3 are plain immutable values; every operation returns a new
// value and never mutates its receiver. The 2D cross product is the scalar
// z-component of the corresponding 3D product, which is what gives planar
// triangles their signed area and orientation.
//
// All operations are pure, allocation-free, and safe for concurrent use.
package vec
