package press

// PointerType identifies the kind of input that drove a press interaction.
type PointerType uint8

const (
	PointerNone     PointerType = iota // no interaction in flight
	PointerMouse                       // mouse or trackpad
	PointerPen                         // stylus
	PointerTouch                       // finger on a touch surface
	PointerKeyboard                    // Enter or Space on a focused element
	PointerVirtual                     // assistive technology or element.Click()
)

var pointerTypeNames = [...]string{
	PointerNone:     "",
	PointerMouse:    "mouse",
	PointerPen:      "pen",
	PointerTouch:    "touch",
	PointerKeyboard: "keyboard",
	PointerVirtual:  "virtual",
}

// String returns the DOM spelling of the pointer type ("mouse", "touch", ...).
func (p PointerType) String() string {
	if int(p) < len(pointerTypeNames) {
		return pointerTypeNames[p]
	}
	return ""
}

// ParsePointerType maps a DOM pointerType string to a PointerType.
// Unknown or empty strings map to PointerNone.
func ParsePointerType(s string) PointerType {
	for i, name := range pointerTypeNames {
		if name != "" && name == s {
			return PointerType(i)
		}
	}
	return PointerNone
}

// EventType identifies a press lifecycle event.
type EventType uint8

const (
	EventPressStart EventType = iota // a press began over the target
	EventPressEnd                    // a press ended, over the target or not
	EventPressUp                     // the pointer or key was released over the target
	EventPress                       // a press completed over the target
)

// String returns the lifecycle name ("pressstart", "pressend", ...).
func (t EventType) String() string {
	switch t {
	case EventPressStart:
		return "pressstart"
	case EventPressEnd:
		return "pressend"
	case EventPressUp:
		return "pressup"
	case EventPress:
		return "press"
	}
	return "unknown"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Rect is an axis-aligned rectangle in client coordinates. The origin is at the
// top-left, with Y increasing downward.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect returns the rectangle with top-left corner (x, y) and the given size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 && r.Height() <= 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right &&
		y >= r.Top && y <= r.Bottom
}

// PressEvent is delivered to press hooks. A new value is built for every
// emission.
type PressEvent struct {
	Type        EventType
	PointerType PointerType
	Target      Element
	Modifiers   KeyModifiers
}

// ShiftKey reports whether Shift was held.
func (e PressEvent) ShiftKey() bool { return e.Modifiers&ModShift != 0 }

// CtrlKey reports whether Control was held.
func (e PressEvent) CtrlKey() bool { return e.Modifiers&ModCtrl != 0 }

// MetaKey reports whether Meta was held.
func (e PressEvent) MetaKey() bool { return e.Modifiers&ModMeta != 0 }

// AltKey reports whether Alt was held.
func (e PressEvent) AltKey() bool { return e.Modifiers&ModAlt != 0 }

// Hooks are the callbacks a Tracker fires. Any field may be nil.
type Hooks struct {
	// OnPressStart fires when a press interaction starts.
	OnPressStart func(PressEvent)
	// OnPressEnd fires when a press ends, either over the target or when the
	// pointer leaves it.
	OnPressEnd func(PressEvent)
	// OnPress fires when a press is released over the target.
	OnPress func(PressEvent)
	// OnPressUp fires when a press is released over the target, whether or
	// not it started there.
	OnPressUp func(PressEvent)
	// OnPressChange fires with true on press start and false on press end.
	OnPressChange func(pressed bool)
}

// ChainHooks returns Hooks that call each of the given hooks in order.
func ChainHooks(hooks ...Hooks) Hooks {
	var out Hooks
	for _, h := range hooks {
		out.OnPressStart = chainEvent(out.OnPressStart, h.OnPressStart)
		out.OnPressEnd = chainEvent(out.OnPressEnd, h.OnPressEnd)
		out.OnPress = chainEvent(out.OnPress, h.OnPress)
		out.OnPressUp = chainEvent(out.OnPressUp, h.OnPressUp)
		out.OnPressChange = chainChange(out.OnPressChange, h.OnPressChange)
	}
	return out
}

func chainEvent(a, b func(PressEvent)) func(PressEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e PressEvent) {
		a(e)
		b(e)
	}
}

func chainChange(a, b func(bool)) func(bool) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(pressed bool) {
		a(pressed)
		b(pressed)
	}
}

// Parameters configure a Tracker. The tracker reads the latest value on every
// event, so changes take effect at the next handler.
type Parameters struct {
	// IsPressed is a controlled pressed state, e.g. while an overlay the target
	// opened is visible. Reserved; the tracker does not interpret it.
	IsPressed bool
	// IsDisabled suppresses every press event.
	IsDisabled bool
	// PreventFocusOnPress keeps the target from receiving focus on press.
	PreventFocusOnPress bool
	// ShouldCancelOnPointerExit cancels the press when the pointer leaves the
	// target. When false, returning over the target fires OnPressStart again.
	ShouldCancelOnPointerExit bool
	// AllowTextSelectionOnPress leaves document text selection enabled while
	// pressed.
	AllowTextSelectionOnPress bool
}
