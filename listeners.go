package press

// GlobalHandle identifies a registration in GlobalListeners.
type GlobalHandle uint32

type globalRegistration struct {
	id        GlobalHandle
	eventType string
	target    EventTarget
	fn        Listener // wrapped callback actually attached to target
	opts      ListenerOptions
	handle    ListenerHandle
}

// GlobalListeners tracks listeners attached to targets outside the tracked
// element (document, window) so they can be torn down together.
// The zero value is ready to use.
type GlobalListeners struct {
	entries []globalRegistration
	nextID  GlobalHandle
}

// NewGlobalListeners returns an empty registry.
func NewGlobalListeners() *GlobalListeners {
	return &GlobalListeners{}
}

// Add attaches fn to target and records the registration. With opts.Once the
// registration forgets itself before fn runs for the first time.
func (g *GlobalListeners) Add(target EventTarget, eventType string, fn Listener, opts ListenerOptions) GlobalHandle {
	g.nextID++
	id := g.nextID

	wrapped := fn
	if opts.Once {
		wrapped = func(e Event) {
			g.Remove(id)
			fn(e)
		}
	}

	h := target.AddEventListener(eventType, wrapped, opts)
	g.entries = append(g.entries, globalRegistration{
		id:        id,
		eventType: eventType,
		target:    target,
		fn:        wrapped,
		opts:      opts,
		handle:    h,
	})
	return id
}

// Remove detaches and forgets a registration. Unknown handles are ignored.
func (g *GlobalListeners) Remove(id GlobalHandle) {
	for i := range g.entries {
		if g.entries[i].id == id {
			reg := g.entries[i]
			copy(g.entries[i:], g.entries[i+1:])
			g.entries[len(g.entries)-1] = globalRegistration{}
			g.entries = g.entries[:len(g.entries)-1]
			reg.target.RemoveEventListener(reg.handle)
			return
		}
	}
}

// RemoveAll detaches every registration. Safe to call when empty.
func (g *GlobalListeners) RemoveAll() {
	entries := g.entries
	g.entries = nil
	for _, reg := range entries {
		reg.target.RemoveEventListener(reg.handle)
	}
}

// Len returns the number of live registrations.
func (g *GlobalListeners) Len() int {
	return len(g.entries)
}
