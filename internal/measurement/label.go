package measurement

import (
	"fmt"
	"math"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/viewer"
)

// Label layout constants
const (
	LabelOffset   = 20.0
	BaselineShift = 5.0
)

// SideRole color-codes a side by comparing its value with the extremes.
// Longest wins when all sides are equal.
func SideRole(value float64, sides geometry.Sides) viewer.LabelRole {
	switch value {
	case sides.Max():
		return viewer.RoleLongest
	case sides.Min():
		return viewer.RoleShortest
	}
	return viewer.RoleOther
}

// SideSuffix returns the annotation appended to a side label
func SideSuffix(role viewer.LabelRole, rightAngled bool) string {
	switch role {
	case viewer.RoleLongest:
		if rightAngled {
			return "(hypotenuse)"
		}
		return "(longest)"
	case viewer.RoleShortest:
		return "(shortest)"
	}
	return ""
}

// SideText formats a side label such as "c = 5 (hypotenuse)"
func SideText(name string, value float64, suffix string) string {
	if suffix == "" {
		return fmt.Sprintf("%s = %v", name, value)
	}
	return fmt.Sprintf("%s = %v %s", name, value, suffix)
}

// VertexText returns the vertex caption, marking a right angle
func VertexText(v geometry.Vertex, rightAngle bool) string {
	if rightAngle {
		return v.String() + " (90°)"
	}
	return v.String()
}

// AngleText formats an angle readout with one decimal
func AngleText(degrees float64) string {
	return fmt.Sprintf("%.1f°", degrees)
}

// IsRightAngleReading reports whether a readout is close enough to 90° to be
// emphasized
func IsRightAngleReading(degrees float64) bool {
	return math.Abs(degrees-90) < RightAngleWindow
}

// Status returns the sidebar line for a tool
func (t Tool) Status() string {
	if t.IsAttached() {
		return "Attached to vertex " + t.Attached.String()
	}
	return "Drag to a vertex"
}
