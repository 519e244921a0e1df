package dom

import "github.com/phanxgames/press"

type listenerEntry struct {
	handle    press.ListenerHandle
	eventType string
	fn        press.Listener
	opts      press.ListenerOptions
	removed   bool
}

// listenerSet holds the registrations of one target in registration order.
type listenerSet struct {
	entries []*listenerEntry
}

func (s *listenerSet) add(h press.ListenerHandle, eventType string, fn press.Listener, opts press.ListenerOptions) {
	s.entries = append(s.entries, &listenerEntry{handle: h, eventType: eventType, fn: fn, opts: opts})
}

func (s *listenerSet) remove(h press.ListenerHandle) {
	for i, e := range s.entries {
		if e.handle == h {
			e.removed = true
			copy(s.entries[i:], s.entries[i+1:])
			s.entries[len(s.entries)-1] = nil
			s.entries = s.entries[:len(s.entries)-1]
			return
		}
	}
}

func (s *listenerSet) count() int {
	return len(s.entries)
}

func (s *listenerSet) countType(eventType string) int {
	n := 0
	for _, e := range s.entries {
		if e.eventType == eventType {
			n++
		}
	}
	return n
}

// phase selects which registrations run at a target.
type phase uint8

const (
	phaseCapture phase = iota
	phaseTarget
	phaseBubble
)

// invoke runs the matching listeners. The set is snapshotted first; entries
// removed by an earlier listener in the same pass are skipped.
func (s *listenerSet) invoke(ev press.Event, ph phase) {
	b := ev.Base()
	var snapshot []*listenerEntry
	for _, e := range s.entries {
		if e.eventType != b.Type {
			continue
		}
		if ph == phaseCapture && !e.opts.Capture {
			continue
		}
		if ph == phaseBubble && e.opts.Capture {
			continue
		}
		snapshot = append(snapshot, e)
	}
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if e.opts.Once {
			s.remove(e.handle)
		}
		e.fn(ev)
	}
}

// target is implemented by Element, Document and Window.
type target interface {
	press.EventTarget
	listeners() *listenerSet
	parentTarget() target
}

// Events that do not bubble.
var nonBubbling = map[string]bool{
	press.MouseEnter: true,
	press.MouseLeave: true,
	press.Scroll:     true,
	"focus":          true,
	"blur":           true,
	"pointerenter":   true,
	"pointerleave":   true,
}

// dispatch delivers ev along the propagation path of t: capture from the
// window down, the target itself, then bubbling back up. It reports whether
// the default action is still allowed.
func dispatch(t target, node press.Node, ev press.Event) bool {
	b := ev.Base()
	b.Target = node

	var path []target
	for p := t; p != nil; p = p.parentTarget() {
		path = append(path, p)
	}

	for i := len(path) - 1; i > 0; i-- {
		b.CurrentTarget = path[i]
		path[i].listeners().invoke(ev, phaseCapture)
		if b.PropagationStopped() {
			return !b.DefaultPrevented()
		}
	}

	b.CurrentTarget = path[0]
	path[0].listeners().invoke(ev, phaseTarget)
	if b.PropagationStopped() || nonBubbling[b.Type] {
		return !b.DefaultPrevented()
	}

	for i := 1; i < len(path); i++ {
		b.CurrentTarget = path[i]
		path[i].listeners().invoke(ev, phaseBubble)
		if b.PropagationStopped() {
			break
		}
	}
	return !b.DefaultPrevented()
}
