package ebitenhost

import "github.com/phanxgames/press"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
)

// syntheticEvent is a single injected input event. Pointer events use client
// coordinates and drive pointer 0, exactly like the mouse.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	key     string
}

// InjectPress queues a left-button press at the given coordinates. The event
// is consumed on the next Update.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectKey queues a keydown and keyup of key ("Enter", " " or "Tab") at the
// focused element. Consumes two frames.
func (h *Host) InjectKey(key string) {
	h.injectQueue = append(h.injectQueue,
		syntheticEvent{kind: syntheticKey, key: key, pressed: true},
		syntheticEvent{kind: syntheticKey, key: key},
	)
}

// Pending returns the number of injected events not yet consumed.
func (h *Host) Pending() int { return len(h.injectQueue) }

// processInjectedInput pops one event from the queue and feeds it through the
// same path as real input. Returns true if an event was consumed.
func (h *Host) processInjectedInput(mods press.KeyModifiers) bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		h.fireKey(evt.key, evt.pressed, mods)
	default:
		h.processPointer(0, press.PointerMouse, evt.x, evt.y, evt.pressed, mods)
	}
	return true
}
