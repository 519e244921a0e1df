package dom

import (
	"strings"

	"github.com/phanxgames/press"
)

// Element is a node in a Document. It implements press.Element.
type Element struct {
	// Rect is the element's bounding rectangle in client coordinates.
	Rect press.Rect
	// ContentEditable marks the element as editable text.
	ContentEditable bool

	tag      string
	doc      *Document
	parent   *Element
	children []*Element
	attrs    map[string]string
	style    map[string]string
	ls       listenerSet

	// FocusCount and ScrolledIntoView record focus calls, for tests.
	FocusCount       int
	ScrolledIntoView int
}

func newElement(doc *Document, tag string) *Element {
	return &Element{
		tag:   strings.ToUpper(tag),
		doc:   doc,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// --- Hierarchy ---

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// AddChild appends child to e's children, removing it from any previous
// parent first. Adding an element to itself or to one of its descendants
// does nothing.
func (e *Element) AddChild(child *Element) {
	if child == nil || child.Contains(e) {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. It does nothing if child is not a child
// of e.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			child.parent = nil
			return
		}
	}
}

// IsConnected reports whether e is attached to its document's tree.
func (e *Element) IsConnected() bool {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return e.doc != nil && n == e.doc.root
}

// Contains implements press.Node.
func (e *Element) Contains(other press.Node) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	for n := o; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// walk visits e and its descendants in document order. Returning false from
// fn skips the element's subtree.
func (e *Element) walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.walk(fn)
	}
}

// --- Attributes and style ---

// TagName implements press.Element.
func (e *Element) TagName() string { return e.tag }

// Attribute implements press.Element.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute implements press.Element.
func (e *Element) SetAttribute(name, value string) { e.attrs[name] = value }

// RemoveAttribute implements press.Element.
func (e *Element) RemoveAttribute(name string) { delete(e.attrs, name) }

// IsContentEditable implements press.Element.
func (e *Element) IsContentEditable() bool {
	if e.ContentEditable {
		return true
	}
	v, ok := e.attrs["contenteditable"]
	return ok && (v == "" || v == "true")
}

// Style implements press.Element.
func (e *Element) Style(property string) string { return e.style[property] }

// SetStyle implements press.Element. An empty value removes the property.
func (e *Element) SetStyle(property, value string) {
	if value == "" {
		delete(e.style, property)
		return
	}
	e.style[property] = value
}

// BoundingClientRect implements press.Element.
// A detached element reports an empty rect.
func (e *Element) BoundingClientRect() press.Rect {
	if !e.IsConnected() {
		return press.Rect{}
	}
	return e.Rect
}

// Closest implements press.Element.
func (e *Element) Closest(name, value string) (press.Element, bool) {
	for n := e; n != nil; n = n.parent {
		if v, ok := n.attrs[name]; ok && v == value {
			return n, true
		}
	}
	return nil, false
}

// OwnerDocument implements press.Element.
func (e *Element) OwnerDocument() press.Document {
	if e.doc == nil {
		return nil
	}
	return e.doc
}

// --- Focus and activation ---

// Focus implements press.Element.
func (e *Element) Focus(preventScroll bool) {
	if e.doc == nil {
		return
	}
	e.doc.active = e
	e.FocusCount++
	if !preventScroll {
		e.ScrolledIntoView++
	}
}

// Click implements press.Element: it dispatches an untrusted click with
// detail 0 and, for anchors, follows the href unless prevented.
func (e *Element) Click() {
	if _, disabled := e.attrs["disabled"]; disabled && e.isFormControl() {
		return
	}
	ev := &press.MouseEvent{BaseEvent: press.BaseEvent{Type: press.Click}}
	e.DispatchActivation(ev)
}

// DispatchActivation dispatches a click event at e and runs the anchor
// default action if it is not prevented.
func (e *Element) DispatchActivation(ev *press.MouseEvent) bool {
	allowed := e.Dispatch(ev)
	if !allowed || e.doc == nil || e.doc.OnNavigate == nil {
		return allowed
	}
	for n := e; n != nil; n = n.parent {
		if n.tag == "A" {
			if href, ok := n.attrs["href"]; ok {
				e.doc.OnNavigate(href, n)
			}
			break
		}
	}
	return allowed
}

func (e *Element) isFormControl() bool {
	switch e.tag {
	case "BUTTON", "INPUT", "SELECT", "TEXTAREA":
		return true
	}
	return false
}

func (e *Element) focusable() bool {
	if v, ok := e.attrs["tabindex"]; ok {
		return !strings.HasPrefix(v, "-")
	}
	if _, disabled := e.attrs["disabled"]; disabled && e.isFormControl() {
		return false
	}
	switch e.tag {
	case "BUTTON", "INPUT", "SELECT", "TEXTAREA":
		return true
	case "A":
		_, ok := e.attrs["href"]
		return ok
	}
	return false
}

// --- Events ---

// AddEventListener implements press.EventTarget.
func (e *Element) AddEventListener(eventType string, fn press.Listener, opts press.ListenerOptions) press.ListenerHandle {
	var h press.ListenerHandle
	if e.doc != nil {
		h = e.doc.newHandle()
	}
	e.ls.add(h, eventType, fn, opts)
	return h
}

// RemoveEventListener implements press.EventTarget.
func (e *Element) RemoveEventListener(h press.ListenerHandle) {
	e.ls.remove(h)
}

// Dispatch dispatches ev at e, through the document and window when e is
// connected. It reports whether the default action is still allowed.
func (e *Element) Dispatch(ev press.Event) bool {
	return dispatch(e, e, ev)
}

// ListenerCount returns the number of listeners registered on e.
func (e *Element) ListenerCount() int { return e.ls.count() }

func (e *Element) listeners() *listenerSet { return &e.ls }

func (e *Element) parentTarget() target {
	if e.parent != nil {
		return e.parent
	}
	if e.doc != nil && e == e.doc.root {
		return e.doc
	}
	return nil
}
