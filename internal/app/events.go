package app

import (
	"slices"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// Handle removes a registered pointer callback
type Handle interface {
	Remove()
}

// Surface delivers pointer movement and release to subscribers
type Surface interface {
	OnPointerMove(fn func(geometry.Vector2)) Handle
	OnPointerUp(fn func(geometry.Vector2)) Handle
}

type pointerKind int

const (
	kindMove pointerKind = iota
	kindUp
)

type pointerHandler struct {
	id uint32
	fn func(geometry.Vector2)
}

// Dispatcher is an in-process Surface. Callbacks run synchronously in
// registration order.
type Dispatcher struct {
	move   []pointerHandler
	up     []pointerHandler
	nextID uint32
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// dispatcherHandle removes one callback from its dispatcher
type dispatcherHandle struct {
	id   uint32
	d    *Dispatcher
	kind pointerKind
}

// Remove unregisters the callback. Removing twice is a no-op.
func (h dispatcherHandle) Remove() {
	if h.d == nil {
		return
	}
	switch h.kind {
	case kindMove:
		h.d.move = removeHandler(h.d.move, h.id)
	case kindUp:
		h.d.up = removeHandler(h.d.up, h.id)
	}
}

func removeHandler(s []pointerHandler, id uint32) []pointerHandler {
	return slices.DeleteFunc(s, func(h pointerHandler) bool { return h.id == id })
}

// OnPointerMove registers a callback for pointer movement
func (d *Dispatcher) OnPointerMove(fn func(geometry.Vector2)) Handle {
	d.nextID++
	d.move = append(d.move, pointerHandler{id: d.nextID, fn: fn})
	return dispatcherHandle{id: d.nextID, d: d, kind: kindMove}
}

// OnPointerUp registers a callback for pointer release
func (d *Dispatcher) OnPointerUp(fn func(geometry.Vector2)) Handle {
	d.nextID++
	d.up = append(d.up, pointerHandler{id: d.nextID, fn: fn})
	return dispatcherHandle{id: d.nextID, d: d, kind: kindUp}
}

// PointerMove delivers a move to every subscriber
func (d *Dispatcher) PointerMove(pos geometry.Vector2) {
	// Handlers may unsubscribe while running
	for _, h := range slices.Clone(d.move) {
		h.fn(pos)
	}
}

// PointerUp delivers a release to every subscriber
func (d *Dispatcher) PointerUp(pos geometry.Vector2) {
	for _, h := range slices.Clone(d.up) {
		h.fn(pos)
	}
}

// Subscribers returns the number of registered callbacks
func (d *Dispatcher) Subscribers() int {
	return len(d.move) + len(d.up)
}
