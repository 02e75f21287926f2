package app

import (
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/viewer"
)

// Controller owns the session state and the pointer subscriptions of an
// active drag. It is not safe for concurrent use.
type Controller struct {
	state       State
	surface     Surface
	moveHandle  Handle
	upHandle    Handle
	showCircles bool
	listeners   []func(State)
}

// New creates a controller in the startup state listening on surface
func New(surface Surface) *Controller {
	return &Controller{
		state:   NewState(),
		surface: surface,
	}
}

// State returns the current session state
func (c *Controller) State() State {
	return c.state
}

// OnChange registers a callback invoked after every state change
func (c *Controller) OnChange(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

// SetShowCircles toggles the circumcircle and incircle overlays
func (c *Controller) SetShowCircles(show bool) {
	c.showCircles = show
	c.notify()
}

// ShowCircles reports whether the circle overlays are enabled
func (c *Controller) ShowCircles() bool {
	return c.showCircles
}

// Submit validates the three side texts and rebuilds the triangle
func (c *Controller) Submit(sideA, sideB, sideC string) {
	c.set(c.state.Submit(sideA, sideB, sideC))
}

// SetZoom rebuilds the triangle at a new zoom level
func (c *Controller) SetZoom(z float64) {
	c.set(c.state.SetZoom(z))
}

// SetRotation places the triangle at an absolute rotation in degrees
func (c *Controller) SetRotation(degrees float64) {
	next := c.state.clone()
	next.Rotation = degrees
	next.reprojectTools()
	c.set(next)
}

// MoveTool drops a tool at pos as if it had been dragged there
func (c *Controller) MoveTool(id int, pos geometry.Vector2) {
	next := c.state.Apply(PointerDown{Pos: pos, Target: ToolTarget(id)})
	next = next.Apply(PointerMove{Pos: pos})
	c.set(next.Apply(PointerUp{Pos: pos}))
}

// AttachTool places a tool on a vertex of the current triangle. It does
// nothing without a triangle.
func (c *Controller) AttachTool(id int, v geometry.Vertex) {
	presented, ok := c.state.Presented()
	if !ok || v.Index() < 0 {
		return
	}
	next := c.state.clone()
	for i := range next.Tools {
		if next.Tools[i].ID == id {
			next.Tools[i].Attached = v
			next.Tools[i].Position = presented[v.Index()]
		}
	}
	c.set(next)
}

// HitTest resolves the target under pos
func (c *Controller) HitTest(pos geometry.Vector2) Target {
	return c.state.HitTest(pos)
}

// PointerDown starts a drag on whatever lies under pos and subscribes to
// movement and release for its duration
func (c *Controller) PointerDown(pos geometry.Vector2) {
	c.set(c.state.Apply(PointerDown{Pos: pos, Target: c.HitTest(pos)}))
	if c.state.Dragging() {
		c.subscribe()
	}
}

func (c *Controller) pointerMove(pos geometry.Vector2) {
	c.set(c.state.Apply(PointerMove{Pos: pos}))
}

func (c *Controller) pointerUp(pos geometry.Vector2) {
	c.set(c.state.Apply(PointerUp{Pos: pos}))
	if !c.state.Dragging() {
		c.unsubscribe()
	}
}

// Subscribed reports whether drag subscriptions are registered
func (c *Controller) Subscribed() bool {
	return c.moveHandle != nil
}

func (c *Controller) subscribe() {
	if c.surface == nil || c.moveHandle != nil {
		return
	}
	c.moveHandle = c.surface.OnPointerMove(c.pointerMove)
	c.upHandle = c.surface.OnPointerUp(c.pointerUp)
}

func (c *Controller) unsubscribe() {
	if c.moveHandle != nil {
		c.moveHandle.Remove()
		c.moveHandle = nil
	}
	if c.upHandle != nil {
		c.upHandle.Remove()
		c.upHandle = nil
	}
}

// Close drops any active drag subscriptions
func (c *Controller) Close() {
	c.unsubscribe()
}

// Scene builds the descriptor for the current state
func (c *Controller) Scene() viewer.Descriptor {
	return BuildScene(c.state, c.showCircles)
}

func (c *Controller) set(next State) {
	c.state = next
	c.notify()
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn(c.state)
	}
}

// PointerRouter feeds presenter pointer events into a controller: presses go
// straight to the controller, movement and release through the surface it
// subscribes on
type PointerRouter struct {
	Controller *Controller
	Surface    *Dispatcher
}

var _ viewer.PointerHandler = PointerRouter{}

// PointerDown implements viewer.PointerHandler
func (r PointerRouter) PointerDown(pos geometry.Vector2) {
	r.Controller.PointerDown(pos)
}

// PointerMove implements viewer.PointerHandler
func (r PointerRouter) PointerMove(pos geometry.Vector2) {
	r.Surface.PointerMove(pos)
}

// PointerUp implements viewer.PointerHandler
func (r PointerRouter) PointerUp(pos geometry.Vector2) {
	r.Surface.PointerUp(pos)
}
