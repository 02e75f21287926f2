package app

import (
	"fmt"

	"github.com/philipparndt/gotri/internal/measurement"
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/viewer"
)

// sideEdges lists, for sides a, b and c, the vertex indices of the edge each
// side spans
var sideEdges = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

// BuildScene derives the presenter descriptor from a state
func BuildScene(s State, showCircles bool) viewer.Descriptor {
	d := viewer.Descriptor{
		Width:    viewer.SurfaceWidth,
		Height:   viewer.SurfaceHeight,
		Status:   s.Message(),
		Zoom:     s.Zoom,
		Rotation: s.Rotation,
	}

	t := s.Triangle
	presented, ok := s.Presented()
	if ok {
		d.HasTriangle = true
		if t.RightAngled {
			d.RightAngleVertex = t.RightAngleVertex
		}

		for i, v := range geometry.Vertices {
			right := t.RightAngled && t.RightAngleVertex == v
			d.Vertices[i] = viewer.VertexMarker{
				Vertex:     v,
				Pos:        presented[i],
				RightAngle: right,
				Label:      measurement.VertexText(v, right),
			}
		}

		interior := presented[0].Add(presented[1]).Add(presented[2]).Mul(1.0 / 3)
		for i, v := range geometry.Vertices {
			value := t.Sides.Opposite(v)
			role := measurement.SideRole(value, t.Sides)
			suffix := measurement.SideSuffix(role, t.RightAngled)
			name := sideName(v)

			p1, p2 := presented[sideEdges[i][0]], presented[sideEdges[i][1]]
			anchor := viewer.LabelAnchor(p1, p2, interior, measurement.LabelOffset)

			d.Sides[i] = viewer.SideLabel{
				Name:   name,
				Value:  value,
				Role:   role,
				Suffix: suffix,
				Text:   measurement.SideText(name, value, suffix),
				Pos:    anchor.Add(geometry.Vector2{Y: measurement.BaselineShift}),
			}
		}

		if showCircles {
			if circum, err := geometry.Circumcircle(presented[0], presented[1], presented[2]); err == nil {
				d.Circumcircle = &circum
			}
			in := t.Incircle()
			in.Center = s.Camera().Project(in.Center)
			d.Incircle = &in
		}
	}

	d.Tools = make([]viewer.ToolMarker, len(s.Tools))
	for i, tool := range s.Tools {
		marker := viewer.ToolMarker{
			ID:       tool.ID,
			Pos:      tool.Position,
			Dragging: tool.Dragging,
			Attached: tool.Attached,
		}
		if t != nil && tool.IsAttached() {
			marker.HasAngle = true
			marker.Angle = t.Angles.At(tool.Attached)
			marker.AngleText = measurement.AngleText(marker.Angle)
			marker.RightAngle = measurement.IsRightAngleReading(marker.Angle)
		}
		d.Tools[i] = marker
	}

	return d
}

func sideName(v geometry.Vertex) string {
	switch v {
	case geometry.VertexA:
		return "a"
	case geometry.VertexB:
		return "b"
	}
	return "c"
}

// DataCard returns the sidebar summary lines for the current triangle
func DataCard(s State) []string {
	t := s.Triangle
	if t == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("Sides: a = %v, b = %v, c = %v", t.Sides.A, t.Sides.B, t.Sides.C),
		fmt.Sprintf("Angles: A = %.1f°, B = %.1f°, C = %.1f°", t.Angles.A, t.Angles.B, t.Angles.C),
		fmt.Sprintf("Area: %.2f sq. units", t.Area),
		fmt.Sprintf("Perimeter: %.2f units", t.Perimeter),
		fmt.Sprintf("Rotation: %.1f°", s.Rotation),
	}
}
