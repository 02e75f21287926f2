package app

import (
	"math"
	"testing"
	"time"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

var (
	vertexA  = geometry.Vector2{X: 260, Y: 225}
	vertexB  = geometry.Vector2{X: 440, Y: 225}
	centroid = geometry.Vector2{X: 358, Y: 196}
)

func rightTriangle(t *testing.T) State {
	t.Helper()
	s := NewState().Submit("3", "4", "5")
	require.Equal(t, StatusValid, s.Status)
	require.NotNil(t, s.Triangle)
	return s
}

func dragTool(s State, id int, to geometry.Vector2) State {
	s = s.Apply(PointerDown{Pos: to, Target: ToolTarget(id)})
	s = s.Apply(PointerMove{Pos: to})
	return s.Apply(PointerUp{Pos: to})
}

func rotateTo(s State, pointer geometry.Vector2) State {
	s = s.Apply(PointerDown{Pos: centroid, Target: Target{Kind: TargetTriangle}})
	s = s.Apply(PointerMove{Pos: pointer})
	return s.Apply(PointerUp{Pos: pointer})
}

func assertVectorNear(t *testing.T, expected, actual geometry.Vector2) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, "x")
	assert.InDelta(t, expected.Y, actual.Y, tolerance, "y")
}

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Nil(t, s.Triangle)
	assert.Equal(t, StatusEmpty, s.Status)
	assert.Equal(t, "Enter three side lengths to create a triangle", s.Message())
	assert.Equal(t, 1.0, s.Zoom)
	assert.Equal(t, 0.0, s.Rotation)
	assert.Len(t, s.Tools, 3)
	assert.False(t, s.Dragging())
}

func TestSubmitStatuses(t *testing.T) {
	tests := []struct {
		name    string
		sides   [3]string
		status  Status
		message string
	}{
		{"right scalene", [3]string{"3", "4", "5"}, StatusValid, "Triangle Type: Right, Scalene Triangle"},
		{"equilateral", [3]string{" 2 ", "2", "2"}, StatusValid, "Triangle Type: Acute, Equilateral Triangle"},
		{"obtuse isosceles", [3]string{"2", "2", "3.5"}, StatusValid, "Triangle Type: Obtuse, Isosceles Triangle"},
		{"not a number", [3]string{"abc", "4", "5"}, StatusInvalidInput, "Please enter valid positive numbers for all sides."},
		{"empty", [3]string{"", "", ""}, StatusInvalidInput, "Please enter valid positive numbers for all sides."},
		{"zero", [3]string{"0", "4", "5"}, StatusInvalidInput, "Please enter valid positive numbers for all sides."},
		{"negative", [3]string{"3", "-4", "5"}, StatusInvalidInput, "Please enter valid positive numbers for all sides."},
		{"degenerate", [3]string{"1", "2", "3"}, StatusDegenerate, "The triangle created by these sides will have an area of 0 sq. units."},
		{"no triangle", [3]string{"1", "1", "5"}, StatusNoTriangle, "No triangle can be formed using these side lengths."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState().Submit(tt.sides[0], tt.sides[1], tt.sides[2])
			assert.Equal(t, tt.status, s.Status)
			assert.Equal(t, tt.message, s.Message())
			assert.Equal(t, tt.status == StatusValid, s.Triangle != nil)
			assert.Equal(t, Inputs{A: tt.sides[0], B: tt.sides[1], C: tt.sides[2]}, s.Inputs)
		})
	}
}

func TestSubmitFailureClearsTriangle(t *testing.T) {
	s := rightTriangle(t).Submit("1", "1", "5")
	assert.Nil(t, s.Triangle)
	_, ok := s.Presented()
	assert.False(t, ok)
}

func TestRotationDragFollowsPointer(t *testing.T) {
	s := rightTriangle(t)

	s = s.Apply(PointerDown{Pos: centroid, Target: Target{Kind: TargetTriangle}})
	assert.True(t, s.Drag.Dragging)
	assert.Equal(t, centroid, s.Drag.Start)

	s = s.Apply(PointerMove{Pos: geometry.Vector2{X: 350, Y: 275}})
	assert.InDelta(t, 90, s.Rotation, tolerance)

	s = s.Apply(PointerMove{Pos: geometry.Vector2{X: 250, Y: 175}})
	assert.InDelta(t, 180, s.Rotation, tolerance)

	s = s.Apply(PointerUp{})
	assert.False(t, s.Drag.Dragging)

	s = s.Apply(PointerMove{Pos: geometry.Vector2{X: 450, Y: 175}})
	assert.InDelta(t, 180, s.Rotation, tolerance)
}

func TestRotationNeedsTriangle(t *testing.T) {
	s := NewState().Apply(PointerDown{Pos: centroid, Target: Target{Kind: TargetTriangle}})
	assert.False(t, s.Drag.Dragging)
}

func TestToolDragNeverRotates(t *testing.T) {
	s := rightTriangle(t)
	far := geometry.Vector2{X: 600, Y: 300}

	s = s.Apply(PointerDown{Pos: geometry.Vector2{X: 50, Y: 50}, Target: ToolTarget(1)})
	assert.True(t, s.Tools[0].Dragging)
	assert.False(t, s.Drag.Dragging)

	s = s.Apply(PointerMove{Pos: far})
	assert.Equal(t, 0.0, s.Rotation)
	assert.Equal(t, far, s.Tools[0].Position)
	assert.Equal(t, geometry.VertexNone, s.Tools[0].Attached)

	s = s.Apply(PointerUp{Pos: far})
	assert.False(t, s.Dragging())
}

func TestToolSnapsToVertex(t *testing.T) {
	s := dragTool(rightTriangle(t), 1, geometry.Vector2{X: 265, Y: 220})
	assert.Equal(t, geometry.VertexA, s.Tools[0].Attached)
	assertVectorNear(t, vertexA, s.Tools[0].Position)

	s = dragTool(s, 1, geometry.Vector2{X: 500, Y: 300})
	assert.Equal(t, geometry.VertexNone, s.Tools[0].Attached)
}

func TestSnapFirstMatchWins(t *testing.T) {
	s := NewState().SetZoom(0.3).Submit("3", "4", "5")
	require.NotNil(t, s.Triangle)

	// Within 30 of A, B and C; C is nearest but A is scanned first
	s = dragTool(s, 2, geometry.Vector2{X: 350, Y: 190})
	assert.Equal(t, geometry.VertexA, s.Tools[1].Attached)
}

func TestToolWithoutTriangleKeepsAttachment(t *testing.T) {
	s := dragTool(rightTriangle(t), 1, vertexB)
	require.Equal(t, geometry.VertexB, s.Tools[0].Attached)

	s = s.Submit("1", "1", "5")
	far := geometry.Vector2{X: 600, Y: 300}
	s = dragTool(s, 1, far)
	assert.Equal(t, far, s.Tools[0].Position)
	assert.Equal(t, geometry.VertexB, s.Tools[0].Attached)

	scene := BuildScene(s, false)
	assert.False(t, scene.Tools[0].HasAngle)
}

func TestAttachedToolTracksRotation(t *testing.T) {
	s := dragTool(rightTriangle(t), 1, vertexA)
	s = rotateTo(s, geometry.Vector2{X: 350, Y: 275})

	expected := vertexA.RotateAround(geometry.Pivot, 90)
	assertVectorNear(t, geometry.Vector2{X: 300, Y: 85}, expected)
	assertVectorNear(t, expected, s.Tools[0].Position)
	assert.Equal(t, geometry.VertexA, s.Tools[0].Attached)
}

func TestSetZoom(t *testing.T) {
	s := dragTool(rightTriangle(t), 3, vertexB)
	s = rotateTo(s, geometry.Vector2{X: 350, Y: 275})

	zoomed := s.SetZoom(2)
	require.NotNil(t, zoomed.Triangle)
	assert.Equal(t, 2.0, zoomed.Zoom)
	assert.InDelta(t, 90, zoomed.Rotation, tolerance)
	assert.Equal(t, s.Triangle.Angles, zoomed.Triangle.Angles)
	assert.Equal(t, geometry.VertexB, zoomed.Tools[2].Attached)

	presented, _ := zoomed.Presented()
	assertVectorNear(t, presented[1], zoomed.Tools[2].Position)

	assert.Equal(t, MaxZoom, s.SetZoom(5).Zoom)
	assert.Equal(t, MinZoom, s.SetZoom(0.1).Zoom)
	assert.Equal(t, s.Zoom, s.SetZoom(math.NaN()).Zoom)
}

func TestSetZoomWithoutTriangle(t *testing.T) {
	s := NewState().SetZoom(1.5)
	assert.Equal(t, 1.5, s.Zoom)
	assert.Nil(t, s.Triangle)

	s = s.Submit("3", "4", "5")
	require.NotNil(t, s.Triangle)
	assert.Equal(t, 1.5, s.Triangle.Zoom)
}

func TestSubmitPreservesRotationAndAttachment(t *testing.T) {
	s := dragTool(rightTriangle(t), 1, vertexA)
	s = rotateTo(s, geometry.Vector2{X: 350, Y: 275})

	s = s.Submit("2", "2", "2")
	require.NotNil(t, s.Triangle)
	assert.InDelta(t, 90, s.Rotation, tolerance)
	assert.Equal(t, geometry.VertexA, s.Tools[0].Attached)

	presented, _ := s.Presented()
	assertVectorNear(t, presented[0], s.Tools[0].Position)
}

func TestApplyDoesNotModifyReceiver(t *testing.T) {
	s := rightTriangle(t)
	_ = s.Apply(PointerDown{Pos: geometry.Vector2{X: 50, Y: 50}, Target: ToolTarget(1)})
	assert.False(t, s.Tools[0].Dragging)
}

func TestHitTest(t *testing.T) {
	s := rightTriangle(t)
	assert.Equal(t, ToolTarget(1), s.HitTest(geometry.Vector2{X: 50, Y: 50}))
	assert.Equal(t, ToolTarget(3), s.HitTest(geometry.Vector2{X: 160, Y: 55}))
	assert.Equal(t, Target{Kind: TargetTriangle}, s.HitTest(centroid))
	assert.Equal(t, Target{}, s.HitTest(geometry.Vector2{X: 600, Y: 300}))

	// Stacked tools resolve to the one drawn last
	spot := geometry.Vector2{X: 600, Y: 300}
	s = dragTool(dragTool(s, 2, spot), 1, spot)
	assert.Equal(t, ToolTarget(2), s.HitTest(spot))
}

func TestBuildSceneEmpty(t *testing.T) {
	d := BuildScene(NewState(), true)
	assert.False(t, d.HasTriangle)
	assert.Equal(t, viewer.SurfaceWidth, d.Width)
	assert.Equal(t, viewer.SurfaceHeight, d.Height)
	assert.Equal(t, "Enter three side lengths to create a triangle", d.Status)
	assert.Nil(t, d.Circumcircle)
	assert.Len(t, d.Tools, 3)
}

func TestBuildSceneRightTriangle(t *testing.T) {
	s := dragTool(rightTriangle(t), 1, geometry.Vector2{X: 370, Y: 140})
	d := BuildScene(s, true)

	require.True(t, d.HasTriangle)
	assert.Equal(t, geometry.VertexC, d.RightAngleVertex)
	assert.Equal(t, "A", d.Vertices[0].Label)
	assert.Equal(t, "C (90°)", d.Vertices[2].Label)
	assert.True(t, d.Vertices[2].RightAngle)
	assertVectorNear(t, vertexA, d.Vertices[0].Pos)

	assert.Equal(t, "a = 3 (shortest)", d.Sides[0].Text)
	assert.Equal(t, viewer.RoleShortest, d.Sides[0].Role)
	assert.Equal(t, "b = 4", d.Sides[1].Text)
	assert.Equal(t, viewer.RoleOther, d.Sides[1].Role)
	assert.Equal(t, "c = 5 (hypotenuse)", d.Sides[2].Text)
	assert.Equal(t, viewer.RoleLongest, d.Sides[2].Role)
	// Base AB label sits below the base
	assertVectorNear(t, geometry.Vector2{X: 350, Y: 250}, d.Sides[2].Pos)

	tool := d.Tools[0]
	assert.Equal(t, geometry.VertexC, tool.Attached)
	assert.True(t, tool.HasAngle)
	assert.Equal(t, "90.0°", tool.AngleText)
	assert.True(t, tool.RightAngle)
	assert.False(t, d.Tools[1].HasAngle)

	require.NotNil(t, d.Circumcircle)
	require.NotNil(t, d.Incircle)
	// Hypotenuse is a diameter of the circumcircle
	assertVectorNear(t, geometry.Vector2{X: 350, Y: 225}, d.Circumcircle.Center)
	assert.InDelta(t, 90, d.Circumcircle.Radius, tolerance)
	// Inradius of 3-4-5 is 1, scaled by 36
	assert.InDelta(t, 36, d.Incircle.Radius, tolerance)
}

func TestBuildSceneLongestWhenNotRight(t *testing.T) {
	d := BuildScene(NewState().Submit("2", "3", "4"), false)
	assert.Equal(t, "c = 4 (longest)", d.Sides[2].Text)
	assert.Equal(t, geometry.VertexNone, d.RightAngleVertex)
	assert.Nil(t, d.Circumcircle)
}

func TestDataCard(t *testing.T) {
	assert.Nil(t, DataCard(NewState()))

	lines := DataCard(rightTriangle(t))
	assert.Contains(t, lines, "Sides: a = 3, b = 4, c = 5")
	assert.Contains(t, lines, "Area: 6.00 sq. units")
	assert.Contains(t, lines, "Perimeter: 12.00 units")
	assert.Contains(t, lines, "Rotation: 0.0°")
}

func TestSubmitExtremeMagnitudes(t *testing.T) {
	s := NewState().Submit("1e150", "1e150", "1e150")
	require.Equal(t, StatusValid, s.Status)
	assert.Equal(t, "Triangle Type: Acute, Equilateral Triangle", s.Message())
	presented, ok := s.Presented()
	require.True(t, ok)
	for _, p := range presented {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "vertex %v", p)
	}

	for _, side := range []string{"1e200", "1e-200"} {
		s = NewState().Submit(side, side, side)
		assert.Equal(t, StatusInvalidInput, s.Status, side)
		assert.Nil(t, s.Triangle, side)
	}
}

func TestRenderExtremeScenesFinishes(t *testing.T) {
	states := []State{
		NewState().Submit("1e150", "1e150", "1e150"),
		NewState().Submit("1e-150", "1e-150", "1e-150").SetZoom(MaxZoom),
		NewState().Submit("1e-8", "1", "1").SetZoom(MinZoom),
		NewState().Submit("1e200", "1e200", "1e200"),
	}

	done := make(chan error, 1)
	go func() {
		for _, s := range states {
			s = s.Apply(PointerDown{Pos: geometry.Vector2{X: 50, Y: 50}, Target: ToolTarget(1)})
			s = s.Apply(PointerMove{Pos: vertexA})
			s = s.Apply(PointerUp{Pos: vertexA})
			if _, err := viewer.RenderImage(BuildScene(s, true)); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(20 * time.Second):
		t.Fatal("rendering extreme scenes did not finish")
	}
}
