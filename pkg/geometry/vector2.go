package geometry

import "math"

// Vector2 represents a 2D point or vector in screen space (y grows downwards)
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return v.Mul(1.0 / length)
}

// Perp returns the vector rotated by 90 degrees: (-y, x)
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Midpoint returns the point halfway between v and other
func (v Vector2) Midpoint(other Vector2) Vector2 {
	return Vector2{X: (v.X + other.X) / 2, Y: (v.Y + other.Y) / 2}
}

// RotateAround rotates the point around pivot by degrees.
// Positive angles turn from +X towards +Y, which is clockwise on screen.
func (v Vector2) RotateAround(pivot Vector2, degrees float64) Vector2 {
	if degrees == 0 {
		return v
	}
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	d := v.Sub(pivot)
	return Vector2{
		X: pivot.X + cos*d.X - sin*d.Y,
		Y: pivot.Y + sin*d.X + cos*d.Y,
	}
}

// Bearing returns the angle in degrees of the direction from v to other,
// measured with atan2 in screen coordinates
func (v Vector2) Bearing(other Vector2) float64 {
	return math.Atan2(other.Y-v.Y, other.X-v.X) * 180 / math.Pi
}

// InTriangle reports whether p lies inside or on the triangle abc, for
// either winding
func InTriangle(p, a, b, c Vector2) bool {
	cross := func(o, u, v Vector2) float64 {
		return (u.X-o.X)*(v.Y-o.Y) - (u.Y-o.Y)*(v.X-o.X)
	}
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
