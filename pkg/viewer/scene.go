package viewer

import (
	"github.com/philipparndt/gotri/pkg/geometry"
)

// Surface dimensions of the drawing area in presentation units
const (
	SurfaceWidth  = 700
	SurfaceHeight = 350
)

// LabelRole color-codes a side label
type LabelRole int

const (
	RoleOther LabelRole = iota
	RoleLongest
	RoleShortest
)

// VertexMarker is a rotated triangle corner
type VertexMarker struct {
	Vertex     geometry.Vertex
	Pos        geometry.Vector2
	RightAngle bool
	Label      string // "A" or "A (90°)"
}

// SideLabel describes the text painted next to one side
type SideLabel struct {
	Name   string // "a", "b" or "c"
	Value  float64
	Role   LabelRole
	Suffix string // "(hypotenuse)", "(longest)", "(shortest)" or ""
	Text   string
	Pos    geometry.Vector2 // anchor, already offset away from the body
}

// ToolMarker is an angle tool as painted
type ToolMarker struct {
	ID         int
	Pos        geometry.Vector2
	Dragging   bool
	Attached   geometry.Vertex
	HasAngle   bool // attached and a triangle exists
	Angle      float64
	AngleText  string // "90.0°"
	RightAngle bool   // |Angle-90| < 1
}

// Descriptor is the complete scene handed to a presenter each render
type Descriptor struct {
	Width, Height int

	HasTriangle      bool
	Vertices         [3]VertexMarker
	Sides            [3]SideLabel // a (BC), b (CA), c (AB)
	RightAngleVertex geometry.Vertex

	// Optional overlays in presentation coordinates
	Circumcircle *geometry.Circle
	Incircle     *geometry.Circle

	Tools []ToolMarker

	Status   string
	Zoom     float64
	Rotation float64
}

// Polygon returns the rotated triangle corners
func (d Descriptor) Polygon() []geometry.Vector2 {
	return []geometry.Vector2{d.Vertices[0].Pos, d.Vertices[1].Pos, d.Vertices[2].Pos}
}
