package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle in model coordinates
type Circle struct {
	Center Vector2
	Radius float64
}

// Circumcircle returns the circle through three points.
//
// Uses the 3-point determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func Circumcircle(p1, p2, p3 Vector2) (Circle, error) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return Circle{}, fmt.Errorf("points are collinear")
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	center := Vector2{
		X: (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D,
		Y: (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D,
	}

	return Circle{Center: center, Radius: center.Distance(p1)}, nil
}

// Circumcircle returns the circumscribed circle in model coordinates
func (t *Triangle) Circumcircle() (Circle, error) {
	return Circumcircle(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

// Incircle returns the inscribed circle in model coordinates. The center is
// the side-length weighted average of the vertices.
func (t *Triangle) Incircle() Circle {
	a, b, c := t.Sides.A, t.Sides.B, t.Sides.C
	p := a + b + c
	center := t.Vertices[0].Mul(a).
		Add(t.Vertices[1].Mul(b)).
		Add(t.Vertices[2].Mul(c)).
		Mul(1 / p)
	return Circle{Center: center, Radius: t.Inradius() * t.Scale}
}

// Circumradius returns a / (2 sin A) in side-length units
func (t *Triangle) Circumradius() float64 {
	sinA := math.Sin(t.Angles.A * math.Pi / 180)
	if sinA == 0 {
		return math.Inf(1)
	}
	return t.Sides.A / (2 * sinA)
}

// Inradius returns K / s in side-length units
func (t *Triangle) Inradius() float64 {
	return t.Area / (t.Perimeter / 2)
}
