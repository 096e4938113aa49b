package vec

import "math"

// Vec2 represents a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new 2D vector.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product, i.e. the z-component of the
// 3D cross product of the two vectors embedded at z=0. Its sign encodes
// orientation: positive when other lies counter-clockwise from v.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude, avoiding the square root.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return v.Scale(1.0 / length)
}

// Eq reports exact component-wise equality.
func (v Vec2) Eq(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
}

// EqualWithin reports whether every component of v is within tol of the
// corresponding component of other. tol must be non-negative; callers
// validate it before comparing.
func (v Vec2) EqualWithin(other Vec2, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol && math.Abs(v.Y-other.Y) <= tol
}

// Vec3 embeds the 2D point in 3D space at z=0.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}
