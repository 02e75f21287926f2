package app

import (
	"testing"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*Controller, *Dispatcher) {
	t.Helper()
	surface := NewDispatcher()
	c := New(surface)
	c.Submit("3", "4", "5")
	require.NotNil(t, c.State().Triangle)
	return c, surface
}

func TestControllerSubscribesOnlyWhileDragging(t *testing.T) {
	c, surface := newController(t)
	assert.Equal(t, 0, surface.Subscribers())

	c.PointerDown(centroid)
	assert.True(t, c.Subscribed())
	assert.Equal(t, 2, surface.Subscribers())

	surface.PointerMove(geometry.Vector2{X: 350, Y: 275})
	assert.InDelta(t, 90, c.State().Rotation, tolerance)

	surface.PointerUp(geometry.Vector2{X: 350, Y: 275})
	assert.False(t, c.Subscribed())
	assert.Equal(t, 0, surface.Subscribers())

	// Movement after release no longer reaches the controller
	surface.PointerMove(geometry.Vector2{X: 450, Y: 175})
	assert.InDelta(t, 90, c.State().Rotation, tolerance)
}

func TestControllerPressOnEmptySpaceDoesNotSubscribe(t *testing.T) {
	c, surface := newController(t)
	c.PointerDown(geometry.Vector2{X: 650, Y: 20})
	assert.False(t, c.State().Dragging())
	assert.Equal(t, 0, surface.Subscribers())
}

func TestControllerToolDrag(t *testing.T) {
	c, surface := newController(t)

	c.PointerDown(geometry.Vector2{X: 100, Y: 50})
	require.True(t, c.State().Tools[1].Dragging)

	surface.PointerMove(geometry.Vector2{X: 438, Y: 228})
	surface.PointerUp(geometry.Vector2{X: 438, Y: 228})

	tool := c.State().Tools[1]
	assert.False(t, tool.Dragging)
	assert.Equal(t, geometry.VertexB, tool.Attached)
	assertVectorNear(t, vertexB, tool.Position)
	assert.Equal(t, 0.0, c.State().Rotation)
	assert.Equal(t, 0, surface.Subscribers())
}

func TestControllerCloseRemovesSubscriptions(t *testing.T) {
	c, surface := newController(t)
	c.PointerDown(centroid)
	require.Equal(t, 2, surface.Subscribers())

	c.Close()
	assert.Equal(t, 0, surface.Subscribers())
	assert.False(t, c.Subscribed())
}

func TestControllerNotifiesListeners(t *testing.T) {
	c, _ := newController(t)

	var seen []Status
	c.OnChange(func(s State) { seen = append(seen, s.Status) })

	c.Submit("1", "2", "3")
	c.SetZoom(2)
	assert.Equal(t, []Status{StatusDegenerate, StatusDegenerate}, seen)
}

func TestControllerSetRotationAndMoveTool(t *testing.T) {
	c, _ := newController(t)
	c.MoveTool(1, vertexA)
	c.SetRotation(90)

	assertVectorNear(t, geometry.Vector2{X: 300, Y: 85}, c.State().Tools[0].Position)
	assert.False(t, c.State().Dragging())
}

func TestPointerRouter(t *testing.T) {
	c, surface := newController(t)
	router := PointerRouter{Controller: c, Surface: surface}

	router.PointerDown(centroid)
	router.PointerMove(geometry.Vector2{X: 250, Y: 175})
	router.PointerUp(geometry.Vector2{})

	assert.InDelta(t, 180, c.State().Rotation, tolerance)
	assert.Equal(t, 0, surface.Subscribers())
}

func TestDispatcherHandleRemove(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	first := d.OnPointerMove(func(geometry.Vector2) { calls = append(calls, "first") })
	d.OnPointerMove(func(geometry.Vector2) { calls = append(calls, "second") })

	d.PointerMove(geometry.Vector2{})
	assert.Equal(t, []string{"first", "second"}, calls)

	first.Remove()
	first.Remove()
	calls = nil
	d.PointerMove(geometry.Vector2{})
	assert.Equal(t, []string{"second"}, calls)
	assert.Equal(t, 1, d.Subscribers())
}
