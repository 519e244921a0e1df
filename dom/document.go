package dom

import "github.com/phanxgames/press"

// Document is an in-memory element tree implementing press.Document. Like a
// browser document it is single-threaded.
type Document struct {
	// PointerEvents selects unified pointer events. Trackers choose their
	// protocol when attached, so set it before attaching any.
	PointerEvents bool

	// OnNavigate is called when an activated anchor with an href is not
	// default-prevented.
	OnNavigate func(href string, el *Element)

	root       *Element
	body       *Element
	window     *Window
	active     *Element
	ls         listenerSet
	nextHandle press.ListenerHandle
}

// NewDocument creates a document with <html> and <body> elements and pointer
// event support.
func NewDocument() *Document {
	d := &Document{PointerEvents: true}
	d.window = &Window{doc: d}
	d.root = d.CreateElement("html")
	d.body = d.CreateElement("body")
	d.root.AddChild(d.body)
	return d
}

// NewLegacyDocument creates a document that only delivers mouse and touch
// events.
func NewLegacyDocument() *Document {
	d := NewDocument()
	d.PointerEvents = false
	return d
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return newElement(d, tag)
}

// Body returns the <body> element.
func (d *Document) Body() *Element { return d.body }

// Root returns the <html> element.
func (d *Document) Root() *Element { return d.root }

// DocumentElement implements press.Document.
func (d *Document) DocumentElement() press.Element { return d.root }

// Window implements press.Document.
func (d *Document) Window() press.EventTarget { return d.window }

// Win returns the concrete window.
func (d *Document) Win() *Window { return d.window }

// SupportsPointerEvents implements press.Document.
func (d *Document) SupportsPointerEvents() bool { return d.PointerEvents }

// ActiveElement implements press.Document. Like a browser it reports the body
// when nothing else is focused.
func (d *Document) ActiveElement() press.Element {
	return d.Focused()
}

// Focused returns the focused element, or the body.
func (d *Document) Focused() *Element {
	if d.active != nil && d.active.IsConnected() {
		return d.active
	}
	return d.body
}

// Blur clears focus.
func (d *Document) Blur() { d.active = nil }

// Contains implements press.Node.
func (d *Document) Contains(other press.Node) bool {
	switch o := other.(type) {
	case *Document:
		return o == d
	case *Element:
		return o != nil && o.doc == d && o.IsConnected()
	}
	return false
}

// AddEventListener implements press.EventTarget.
func (d *Document) AddEventListener(eventType string, fn press.Listener, opts press.ListenerOptions) press.ListenerHandle {
	h := d.newHandle()
	d.ls.add(h, eventType, fn, opts)
	return h
}

// RemoveEventListener implements press.EventTarget.
func (d *Document) RemoveEventListener(h press.ListenerHandle) {
	d.ls.remove(h)
}

// Dispatch dispatches ev at the document itself.
func (d *Document) Dispatch(ev press.Event) bool {
	return dispatch(d, d, ev)
}

// ListenerCount returns the number of listeners on the document.
func (d *Document) ListenerCount() int { return d.ls.count() }

// ListenerCountFor returns the number of document listeners for eventType.
func (d *Document) ListenerCountFor(eventType string) int { return d.ls.countType(eventType) }

// ElementByID returns the connected element whose id attribute is id.
func (d *Document) ElementByID(id string) *Element {
	var found *Element
	d.root.walk(func(e *Element) bool {
		if v, ok := e.attrs["id"]; ok && v == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// ElementFromPoint returns the topmost connected element whose rectangle
// contains (x, y), in reverse document order. Elements with an empty rect or
// a hidden attribute are skipped, and so are their subtrees when hidden.
func (d *Document) ElementFromPoint(x, y float64) *Element {
	var hit *Element
	d.root.walk(func(e *Element) bool {
		if _, hidden := e.attrs["hidden"]; hidden {
			return false
		}
		if !e.Rect.Empty() && e.Rect.Contains(x, y) {
			hit = e
		}
		return true
	})
	return hit
}

// FocusNext moves focus to the next focusable element in document order,
// wrapping around, and returns it. Returns nil if nothing is focusable.
func (d *Document) FocusNext() *Element {
	var focusable []*Element
	d.root.walk(func(e *Element) bool {
		if _, hidden := e.attrs["hidden"]; hidden {
			return false
		}
		if e.focusable() {
			focusable = append(focusable, e)
		}
		return true
	})
	if len(focusable) == 0 {
		return nil
	}
	next := focusable[0]
	for i, e := range focusable {
		if e == d.active {
			next = focusable[(i+1)%len(focusable)]
			break
		}
	}
	next.Focus(false)
	return next
}

// listeners and parentTarget implement target.
func (d *Document) listeners() *listenerSet { return &d.ls }
func (d *Document) parentTarget() target    { return d.window }

func (d *Document) newHandle() press.ListenerHandle {
	d.nextHandle++
	return d.nextHandle
}

// Window is the root-level target above the document.
type Window struct {
	doc *Document
	ls  listenerSet
	// ScrollY is bumped by Scroll.
	ScrollY float64
}

// AddEventListener implements press.EventTarget.
func (w *Window) AddEventListener(eventType string, fn press.Listener, opts press.ListenerOptions) press.ListenerHandle {
	h := w.doc.newHandle()
	w.ls.add(h, eventType, fn, opts)
	return h
}

// RemoveEventListener implements press.EventTarget.
func (w *Window) RemoveEventListener(h press.ListenerHandle) {
	w.ls.remove(h)
}

// Scroll scrolls the viewport by dy and dispatches a scroll event whose target
// is the document, as browsers do for viewport scrolling.
func (w *Window) Scroll(dy float64) {
	w.ScrollY += dy
	w.doc.Dispatch(&press.BaseEvent{Type: press.Scroll, IsTrusted: true})
}

// ListenerCount returns the number of listeners on the window.
func (w *Window) ListenerCount() int { return w.ls.count() }

func (w *Window) listeners() *listenerSet { return &w.ls }
func (w *Window) parentTarget() target    { return nil }
