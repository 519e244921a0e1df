package press

// DOM event type names the tracker listens for.
const (
	PointerDown   = "pointerdown"
	PointerMove   = "pointermove"
	PointerUp     = "pointerup"
	PointerCancel = "pointercancel"
	MouseDown     = "mousedown"
	MouseUp       = "mouseup"
	MouseEnter    = "mouseenter"
	MouseLeave    = "mouseleave"
	TouchStart    = "touchstart"
	TouchMove     = "touchmove"
	TouchEnd      = "touchend"
	TouchCancel   = "touchcancel"
	KeyDown       = "keydown"
	KeyUp         = "keyup"
	Click         = "click"
	DragStart     = "dragstart"
	Scroll        = "scroll"
)

// ListenerHandle identifies one listener registration on an EventTarget.
// The zero value never identifies a live registration.
type ListenerHandle uint64

// ListenerOptions mirror the DOM addEventListener options.
type ListenerOptions struct {
	Capture bool
	Once    bool
}

// Listener receives dispatched events.
type Listener func(Event)

// EventTarget is anything listeners can be attached to: elements, the document
// and the window.
type EventTarget interface {
	AddEventListener(eventType string, fn Listener, opts ListenerOptions) ListenerHandle
	// RemoveEventListener detaches a registration. Unknown handles are ignored.
	RemoveEventListener(h ListenerHandle)
}

// Node is an EventTarget that is part of a document tree.
type Node interface {
	EventTarget
	// Contains reports whether other is this node or one of its descendants.
	Contains(other Node) bool
}

// Element is the view of a platform element the tracker needs.
type Element interface {
	Node
	// TagName returns the upper-case tag name ("DIV", "A", "TEXTAREA").
	TagName() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	IsContentEditable() bool
	BoundingClientRect() Rect
	// Focus moves focus to the element. With preventScroll the viewport is not
	// scrolled to reveal it.
	Focus(preventScroll bool)
	// Click runs the element's activation behavior, dispatching a click event.
	Click()
	// Closest returns the nearest inclusive ancestor whose attribute name has
	// the given value.
	Closest(name, value string) (Element, bool)
	Style(property string) string
	SetStyle(property, value string)
	OwnerDocument() Document
}

// Document is the root of an element tree.
type Document interface {
	Node
	DocumentElement() Element
	// Window is the root-level target above the document. Scroll events from
	// anywhere in the page are visible to its capture listeners.
	Window() EventTarget
	// SupportsPointerEvents reports whether the platform delivers unified
	// pointer events.
	SupportsPointerEvents() bool
	ActiveElement() Element
}

// Event is implemented by every dispatched event type.
type Event interface {
	Base() *BaseEvent
}

// BaseEvent holds the fields shared by every event.
type BaseEvent struct {
	Type string
	// Target is the node the event was dispatched at.
	Target Node
	// CurrentTarget is the target whose listener is running.
	CurrentTarget EventTarget
	Modifiers     KeyModifiers
	IsTrusted     bool

	defaultPrevented   bool
	propagationStopped bool
}

// Base returns e itself; it lets every event type satisfy Event.
func (e *BaseEvent) Base() *BaseEvent { return e }

// PreventDefault cancels the platform's default action for the event.
func (e *BaseEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *BaseEvent) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching further targets.
func (e *BaseEvent) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *BaseEvent) PropagationStopped() bool { return e.propagationStopped }

// MouseEvent carries mouse and click data.
type MouseEvent struct {
	BaseEvent
	Button           int // 0 is the primary button
	Detail           int // click count; 0 for virtual clicks
	ClientX, ClientY float64
	// PointerType is set when the platform delivers clicks as pointer events.
	PointerType PointerType
	// MozInputSource is Firefox's non-standard input source; only meaningful
	// when HasMozInputSource is set. 0 means unknown (screen readers).
	MozInputSource    int
	HasMozInputSource bool
}

// ContactPoint returns the event position as a zero-size contact.
func (e *MouseEvent) ContactPoint() ContactPoint {
	return ContactPoint{ClientX: e.ClientX, ClientY: e.ClientY}
}

// PointerEvent carries unified pointer data.
type PointerEvent struct {
	MouseEvent
	PointerID     int
	Width, Height float64
	Pressure      float64
}

// ContactPoint returns the event position padded by the contact size.
func (e *PointerEvent) ContactPoint() ContactPoint {
	return ContactPoint{ClientX: e.ClientX, ClientY: e.ClientY, Width: e.Width, Height: e.Height}
}

// KeyboardEvent carries key data.
type KeyboardEvent struct {
	BaseEvent
	Key    string // "Enter", " ", "Spacebar", "a", ...
	Code   string // physical key, e.g. "Space"
	Repeat bool
}

// Touch is one contact in a TouchEvent.
type Touch struct {
	Identifier       int
	ClientX, ClientY float64
	RadiusX, RadiusY float64
}

// ContactPoint returns the touch position padded by its radius.
func (t Touch) ContactPoint() ContactPoint {
	return ContactPoint{ClientX: t.ClientX, ClientY: t.ClientY, RadiusX: t.RadiusX, RadiusY: t.RadiusY}
}

// TouchEvent carries legacy touch data.
type TouchEvent struct {
	BaseEvent
	// TargetTouches are the contacts that started on the target and are still
	// on the surface.
	TargetTouches []Touch
	// ChangedTouches are the contacts that changed in this event.
	ChangedTouches []Touch
}

func touchByID(touches []Touch, id int) (Touch, bool) {
	for _, t := range touches {
		if t.Identifier == id {
			return t, true
		}
	}
	return Touch{}, false
}
