package geometry

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ReferenceSpan is the on-screen length of the longest side at zoom 1
	ReferenceSpan = 180.0
	// BaseOffset places the base AB below the pivot at zoom 1. It scales with
	// zoom so that every vertex distance from the pivot scales uniformly.
	BaseOffset = 50.0
)

// Pivot is the fixed center of the drawing surface
var Pivot = Vector2{X: 350, Y: 175}

var (
	// ErrInvalidZoom is returned by Build for a non-positive or non-finite zoom
	ErrInvalidZoom = errors.New("zoom must be a positive number")
	// ErrOutOfRange is returned by Build when the sides are valid but the area,
	// perimeter or scale of the triangle cannot be represented as a float64.
	// It always wraps ErrInvalidInput.
	ErrOutOfRange = errors.New("triangle is too large or too small to compute")
)

// Triangle is a fully computed triangle. It is immutable; changing the sides
// or the zoom requires a new Build.
type Triangle struct {
	Sides    Sides
	Zoom     float64
	Scale    float64    // model units per side-length unit
	Vertices [3]Vector2 // A, B, C in model (screen) coordinates

	Angles    Angles
	Area      float64
	Perimeter float64
	AngleType AngleType
	SideType  SideType

	// RightAngled uses LooseRightAngleTolerance and is kept separate from
	// AngleType == Right
	RightAngled      bool
	Hypotenuse       float64 // only set when RightAngled
	RightAngleVertex Vertex  // only set when RightAngled
}

// Build validates the sides and constructs the triangle with side c as the
// base AB centered horizontally on Pivot. The apex C is placed with the law-of-cosines
// angle at A.
func Build(sides Sides, zoom float64) (*Triangle, error) {
	if err := sides.Check(); err != nil {
		return nil, err
	}
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) || zoom <= 0 {
		return nil, fmt.Errorf("zoom %v: %w", zoom, ErrInvalidZoom)
	}

	a, b, c := sides.A, sides.B, sides.C
	longest := sides.Max()
	scale := (ReferenceSpan / longest) * zoom
	// Screen lengths come from the sides relative to the longest so that the
	// placement stays finite even when scale itself does not.
	span := ReferenceSpan * zoom
	base, side := c/longest*span, b/longest*span

	baseY := Pivot.Y + BaseOffset*zoom
	vA := Vector2{X: Pivot.X - base/2, Y: baseY}
	vB := Vector2{X: Pivot.X + base/2, Y: baseY}

	angleA := lawOfCosines(a, b, c)
	vC := Vector2{
		X: vA.X + side*math.Cos(angleA),
		Y: vA.Y - side*math.Sin(angleA),
	}

	t := &Triangle{
		Sides:       sides,
		Zoom:        zoom,
		Scale:       scale,
		Vertices:    [3]Vector2{vA, vB, vC},
		Angles:      InteriorAngles(a, b, c),
		Area:        Area(a, b, c),
		Perimeter:   Perimeter(a, b, c),
		AngleType:   ClassifyByAngles(a, b, c),
		SideType:    ClassifySides(a, b, c),
		RightAngled: IsRightAngled(a, b, c),
	}

	if err := t.checkRange(); err != nil {
		return nil, err
	}

	if t.RightAngled {
		t.Hypotenuse = sides.Max()
		t.RightAngleVertex = closestToRightAngle(t.Angles)
	}

	return t, nil
}

// checkRange rejects triangles whose derived values left the float64 range
func (t *Triangle) checkRange() error {
	values := []float64{t.Scale, t.Area, t.Perimeter, t.Angles.A, t.Angles.B, t.Angles.C}
	for _, v := range t.Vertices {
		values = append(values, v.X, v.Y)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%g, %g, %g: %w: %w", t.Sides.A, t.Sides.B, t.Sides.C, ErrOutOfRange, ErrInvalidInput)
		}
	}
	if t.Area <= 0 {
		return fmt.Errorf("%g, %g, %g: area underflows: %w: %w", t.Sides.A, t.Sides.B, t.Sides.C, ErrOutOfRange, ErrInvalidInput)
	}
	return nil
}

// closestToRightAngle returns the vertex whose angle is nearest 90 degrees.
// Ties go to the earlier vertex in A, B, C order.
func closestToRightAngle(angles Angles) Vertex {
	best := VertexA
	bestDiff := math.Abs(angles.A - 90)
	for _, v := range []Vertex{VertexB, VertexC} {
		if diff := math.Abs(angles.At(v) - 90); diff < bestDiff {
			best, bestDiff = v, diff
		}
	}
	return best
}

// Vertex returns the model position of the given vertex
func (t *Triangle) Vertex(v Vertex) Vector2 {
	if i := v.Index(); i >= 0 {
		return t.Vertices[i]
	}
	return Vector2{}
}

// Label returns the combined classification, e.g. "Right, Scalene Triangle"
func (t *Triangle) Label() string {
	return fmt.Sprintf("%s, %s Triangle", t.AngleType, t.SideType)
}

// Centroid returns the average of the three vertices
func (t *Triangle) Centroid() Vector2 {
	return Vector2{
		X: (t.Vertices[0].X + t.Vertices[1].X + t.Vertices[2].X) / 3.0,
		Y: (t.Vertices[0].Y + t.Vertices[1].Y + t.Vertices[2].Y) / 3.0,
	}
}
