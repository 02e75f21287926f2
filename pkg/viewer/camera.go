package viewer

import (
	"github.com/philipparndt/gotri/pkg/geometry"
)

// Camera maps model coordinates to presentation coordinates by rotating
// around a fixed pivot. Rotation is never baked into model vertices.
type Camera struct {
	Pivot    geometry.Vector2
	Rotation float64 // degrees, unbounded
}

// NewCamera creates a camera around the default pivot with no rotation
func NewCamera(rotation float64) Camera {
	return Camera{Pivot: geometry.Pivot, Rotation: rotation}
}

// Project maps a model point to presentation coordinates
func (c Camera) Project(v geometry.Vector2) geometry.Vector2 {
	return ToPresentation(v, c.Pivot, c.Rotation)
}

// ProjectTriangle maps all three vertices of a triangle
func (c Camera) ProjectTriangle(t *geometry.Triangle) [3]geometry.Vector2 {
	var out [3]geometry.Vector2
	for i, v := range t.Vertices {
		out[i] = c.Project(v)
	}
	return out
}

// ToPresentation rotates vertex around pivot by rotationDegrees. A point at
// bearing φ from the pivot ends up at bearing φ+rotationDegrees, the same
// convention RotationFromPointer uses. Rotating by -rotationDegrees instead
// would turn the shape against the pointer while it is dragged.
func ToPresentation(vertex, pivot geometry.Vector2, rotationDegrees float64) geometry.Vector2 {
	return vertex.RotateAround(pivot, rotationDegrees)
}

// RotationFromPointer returns the absolute bearing in degrees from the pivot
// to the pointer
func RotationFromPointer(pivot, pointer geometry.Vector2) float64 {
	return pivot.Bearing(pointer)
}

// OutwardNormal returns the unit normal of edge p1-p2 that points away from
// interior. A zero-length edge yields the zero vector.
func OutwardNormal(p1, p2, interior geometry.Vector2) geometry.Vector2 {
	edge := p2.Sub(p1)
	if edge.Length() == 0 {
		return geometry.Vector2{}
	}
	normal := edge.Perp().Normalize()
	if normal.Dot(interior.Sub(p1.Midpoint(p2))) > 0 {
		normal = normal.Mul(-1)
	}
	return normal
}

// LabelAnchor returns the edge midpoint pushed offset units outwards
func LabelAnchor(p1, p2, interior geometry.Vector2, offset float64) geometry.Vector2 {
	return p1.Midpoint(p2).Add(OutwardNormal(p1, p2, interior).Mul(offset))
}
