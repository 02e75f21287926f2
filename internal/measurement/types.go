package measurement

import (
	"github.com/philipparndt/gotri/pkg/geometry"
)

// Tool interaction constants in presentation units
const (
	SnapThreshold    = 30.0
	MarkerRadius     = 20.0
	RightAngleWindow = 1.0 // degrees
)

// Tool is a draggable angle-measurement marker
type Tool struct {
	ID       int
	Position geometry.Vector2 // presentation coordinates
	Dragging bool
	Attached geometry.Vertex
}

// IsAttached reports whether the tool is snapped to a vertex
func (t Tool) IsAttached() bool {
	return t.Attached != geometry.VertexNone
}

// Contains reports whether pos lies on the tool marker
func (t Tool) Contains(pos geometry.Vector2) bool {
	return t.Position.Distance(pos) <= MarkerRadius
}

// DefaultTools returns the three tools parked along the top edge
func DefaultTools() []Tool {
	return []Tool{
		{ID: 1, Position: geometry.Vector2{X: 50, Y: 50}},
		{ID: 2, Position: geometry.Vector2{X: 100, Y: 50}},
		{ID: 3, Position: geometry.Vector2{X: 150, Y: 50}},
	}
}

// Snap returns the first presented vertex, in A, B, C order, lying strictly
// within SnapThreshold of pos. Without a match it returns pos and VertexNone.
func Snap(pos geometry.Vector2, presented [3]geometry.Vector2) (geometry.Vector2, geometry.Vertex) {
	for i, v := range geometry.Vertices {
		if pos.Distance(presented[i]) < SnapThreshold {
			return presented[i], v
		}
	}
	return pos, geometry.VertexNone
}
