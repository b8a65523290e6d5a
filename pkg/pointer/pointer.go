// Package pointer is the program-wide pointer hub. Sliders subscribe to
// motion and release events for as long as they are mounted, so a drag that
// leaves the slider's own rows still tracks and still ends on release.
package pointer

import tea "github.com/charmbracelet/bubbletea"

// Event is a pointer position in screen cells.
type Event struct {
	X int
	Y int
}

// Func handles one event and may return a command for the update loop.
type Func func(Event) tea.Cmd

type kind uint8

const (
	kindMove kind = iota
	kindUp
)

type handler struct {
	id uint32
	fn Func
}

// Hub fans motion and release events out to subscribers.
type Hub struct {
	moves  []handler
	ups    []handler
	nextID uint32
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Handle removes one subscription.
type Handle struct {
	id   uint32
	hub  *Hub
	kind kind
}

// Remove unregisters the handler. Removing twice is a no-op.
func (h Handle) Remove() {
	if h.hub == nil {
		return
	}
	switch h.kind {
	case kindMove:
		h.hub.moves = removeHandler(h.hub.moves, h.id)
	case kindUp:
		h.hub.ups = removeHandler(h.hub.ups, h.id)
	}
}

func removeHandler(s []handler, id uint32) []handler {
	for i, h := range s {
		if h.id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// OnMove subscribes fn to pointer motion.
func (h *Hub) OnMove(fn Func) Handle {
	h.nextID++
	h.moves = append(h.moves, handler{id: h.nextID, fn: fn})
	return Handle{id: h.nextID, hub: h, kind: kindMove}
}

// OnUp subscribes fn to button release.
func (h *Hub) OnUp(fn Func) Handle {
	h.nextID++
	h.ups = append(h.ups, handler{id: h.nextID, fn: fn})
	return Handle{id: h.nextID, hub: h, kind: kindUp}
}

// Move dispatches a motion event to every subscriber.
func (h *Hub) Move(ev Event) tea.Cmd {
	return dispatch(h.moves, ev)
}

// Up dispatches a release event to every subscriber.
func (h *Hub) Up(ev Event) tea.Cmd {
	return dispatch(h.ups, ev)
}

// Subscribers returns the number of live move and up handlers.
func (h *Hub) Subscribers() (moves, ups int) {
	return len(h.moves), len(h.ups)
}

func dispatch(hs []handler, ev Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, h := range hs {
		if cmd := h.fn(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
