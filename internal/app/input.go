package app

import (
	"github.com/philipparndt/gotri/internal/measurement"
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/viewer"
)

// TargetKind identifies what a pointer press landed on
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTriangle
	TargetTool
)

// Target is the element under the pointer. ToolID is set for TargetTool.
type Target struct {
	Kind   TargetKind
	ToolID int
}

// ToolTarget returns the target for the tool with the given id
func ToolTarget(id int) Target {
	return Target{Kind: TargetTool, ToolID: id}
}

// Event is a pointer event in surface coordinates
type Event interface {
	position() geometry.Vector2
}

// PointerDown is a primary button press over Target
type PointerDown struct {
	Pos    geometry.Vector2
	Target Target
}

// PointerMove is pointer movement
type PointerMove struct {
	Pos geometry.Vector2
}

// PointerUp is a button release anywhere
type PointerUp struct {
	Pos geometry.Vector2
}

func (e PointerDown) position() geometry.Vector2 { return e.Pos }
func (e PointerMove) position() geometry.Vector2 { return e.Pos }
func (e PointerUp) position() geometry.Vector2   { return e.Pos }

// Apply returns the state after handling one pointer event
func (s State) Apply(ev Event) State {
	switch e := ev.(type) {
	case PointerDown:
		return s.pointerDown(e)
	case PointerMove:
		return s.pointerMove(e)
	case PointerUp:
		return s.pointerUp()
	}
	return s
}

// pointerDown starts a tool drag or a rotation drag, never both
func (s State) pointerDown(e PointerDown) State {
	next := s.clone()
	switch e.Target.Kind {
	case TargetTool:
		for i := range next.Tools {
			if next.Tools[i].ID == e.Target.ToolID {
				next.Tools[i].Dragging = true
				break
			}
		}
	case TargetTriangle:
		if next.Triangle != nil {
			next.Drag = RotationDrag{Dragging: true, Start: e.Pos}
		}
	}
	return next
}

func (s State) pointerMove(e PointerMove) State {
	if !s.Dragging() {
		return s
	}
	next := s.clone()

	if next.Drag.Dragging && next.Triangle != nil {
		next.Rotation = viewer.RotationFromPointer(geometry.Pivot, e.Pos)
		next.reprojectTools()
	}

	presented, hasTriangle := next.Presented()
	for i, tool := range next.Tools {
		if !tool.Dragging {
			continue
		}
		next.Tools[i].Position = e.Pos
		if !hasTriangle {
			// Attachment is left as is until a triangle exists
			continue
		}
		next.Tools[i].Position, next.Tools[i].Attached = measurement.Snap(e.Pos, presented)
	}
	return next
}

// pointerUp ends every drag
func (s State) pointerUp() State {
	if !s.Dragging() {
		return s
	}
	next := s.clone()
	next.Drag.Dragging = false
	for i := range next.Tools {
		next.Tools[i].Dragging = false
	}
	return next
}
