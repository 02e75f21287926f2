package app

import (
	"errors"
	"math"
	"slices"

	"github.com/philipparndt/gotri/internal/measurement"
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/viewer"
)

// Zoom slider range
const (
	MinZoom  = 0.3
	MaxZoom  = 3.0
	ZoomStep = 0.1
)

// Status is the outcome of the latest submission
type Status int

const (
	StatusEmpty Status = iota
	StatusInvalidInput
	StatusDegenerate
	StatusNoTriangle
	StatusValid
)

// Inputs holds the raw side texts as entered
type Inputs struct {
	A, B, C string
}

// RotationDrag tracks a rotation gesture
type RotationDrag struct {
	Dragging bool
	Start    geometry.Vector2
}

// State is the complete session state. Transitions return a new State and
// never modify the receiver.
type State struct {
	Inputs   Inputs
	Triangle *geometry.Triangle
	Status   Status
	Zoom     float64
	Rotation float64 // degrees
	Drag     RotationDrag
	Tools    []measurement.Tool
}

// NewState returns the startup state: no triangle, zoom 1 and the three
// parked tools
func NewState() State {
	return State{
		Status: StatusEmpty,
		Zoom:   1,
		Tools:  measurement.DefaultTools(),
	}
}

// clone copies the state so that the tool slice is not shared
func (s State) clone() State {
	s.Tools = slices.Clone(s.Tools)
	return s
}

// Message returns the status line shown to the user
func (s State) Message() string {
	switch s.Status {
	case StatusInvalidInput:
		return "Please enter valid positive numbers for all sides."
	case StatusDegenerate:
		return "The triangle created by these sides will have an area of 0 sq. units."
	case StatusNoTriangle:
		return "No triangle can be formed using these side lengths."
	case StatusValid:
		if s.Triangle != nil {
			return "Triangle Type: " + s.Triangle.Label()
		}
	}
	return "Enter three side lengths to create a triangle"
}

// Camera returns the scene transform for the current rotation
func (s State) Camera() viewer.Camera {
	return viewer.NewCamera(s.Rotation)
}

// Presented returns the rotated triangle corners
func (s State) Presented() ([3]geometry.Vector2, bool) {
	if s.Triangle == nil {
		return [3]geometry.Vector2{}, false
	}
	return s.Camera().ProjectTriangle(s.Triangle), true
}

// Dragging reports whether any rotation or tool drag is active
func (s State) Dragging() bool {
	if s.Drag.Dragging {
		return true
	}
	for _, tool := range s.Tools {
		if tool.Dragging {
			return true
		}
	}
	return false
}

// ClampZoom limits z to the slider range
func ClampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Submit parses and validates the side texts and rebuilds the triangle.
// Rotation and tool attachments are preserved.
func (s State) Submit(a, b, c string) State {
	next := s.clone()
	next.Inputs = Inputs{A: a, B: b, C: c}

	sides, err := geometry.ParseSides(a, b, c)
	if err == nil {
		next.Triangle, err = geometry.Build(sides, next.Zoom)
	}
	if err != nil {
		next.Triangle = nil
		next.Drag = RotationDrag{}
		next.Status = statusFor(err)
		return next
	}

	next.Status = StatusValid
	next.reprojectTools()
	return next
}

func statusFor(err error) Status {
	switch {
	case errors.Is(err, geometry.ErrDegenerate):
		return StatusDegenerate
	case errors.Is(err, geometry.ErrNoTriangle):
		return StatusNoTriangle
	}
	return StatusInvalidInput
}

// SetZoom clamps z, stores it and rebuilds an existing triangle at the new
// scale. A NaN zoom is ignored.
func (s State) SetZoom(z float64) State {
	if math.IsNaN(z) {
		return s
	}
	next := s.clone()
	next.Zoom = ClampZoom(z)
	if next.Triangle == nil {
		return next
	}

	rebuilt, err := geometry.Build(next.Triangle.Sides, next.Zoom)
	if err != nil {
		return s
	}
	next.Triangle = rebuilt
	next.reprojectTools()
	return next
}

// reprojectTools moves attached, idle tools onto their vertex
func (s *State) reprojectTools() {
	presented, ok := s.Presented()
	if !ok {
		return
	}
	for i, tool := range s.Tools {
		if tool.IsAttached() && !tool.Dragging {
			s.Tools[i].Position = presented[tool.Attached.Index()]
		}
	}
}

// HitTest resolves what lies under pos: tools first, topmost (last drawn)
// first, then the rotated triangle body
func (s State) HitTest(pos geometry.Vector2) Target {
	for i := len(s.Tools) - 1; i >= 0; i-- {
		if s.Tools[i].Contains(pos) {
			return ToolTarget(s.Tools[i].ID)
		}
	}
	if p, ok := s.Presented(); ok && geometry.InTriangle(pos, p[0], p[1], p[2]) {
		return Target{Kind: TargetTriangle}
	}
	return Target{}
}
