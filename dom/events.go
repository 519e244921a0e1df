package dom

import "github.com/phanxgames/press"

// Contact sizes reported by physical devices.
const (
	MouseContactSize = 1.0
	TouchContactSize = 20.0
	activePressure   = 0.5
)

// NewPointerEvent builds a trusted pointer event the way a browser would
// report it for a physical device: a mouse is a 1x1 contact, a touch or pen a
// TouchContactSize square, and pressure is 0.5 while a button is held.
func NewPointerEvent(eventType string, pointerID int, pt press.PointerType, x, y float64) *press.PointerEvent {
	size := MouseContactSize
	if pt == press.PointerTouch || pt == press.PointerPen {
		size = TouchContactSize
	}
	var pressure float64
	if eventType == press.PointerDown || eventType == press.PointerMove {
		pressure = activePressure
	}
	return &press.PointerEvent{
		MouseEvent: press.MouseEvent{
			BaseEvent:   press.BaseEvent{Type: eventType, IsTrusted: true},
			ClientX:     x,
			ClientY:     y,
			PointerType: pt,
		},
		PointerID: pointerID,
		Width:     size,
		Height:    size,
		Pressure:  pressure,
	}
}

// NewMouseEvent builds a trusted primary-button mouse event. Clicks from a
// physical device carry detail 1.
func NewMouseEvent(eventType string, x, y float64) *press.MouseEvent {
	ev := &press.MouseEvent{
		BaseEvent: press.BaseEvent{Type: eventType, IsTrusted: true},
		ClientX:   x,
		ClientY:   y,
	}
	if eventType == press.Click || eventType == press.MouseDown || eventType == press.MouseUp {
		ev.Detail = 1
	}
	return ev
}

// NewKeyEvent builds a trusted keyboard event. The physical code is derived
// from key for Enter and Space.
func NewKeyEvent(eventType, key string) *press.KeyboardEvent {
	code := key
	switch key {
	case " ", "Spacebar":
		code = "Space"
	case "Enter":
		code = "Enter"
	}
	return &press.KeyboardEvent{
		BaseEvent: press.BaseEvent{Type: eventType, IsTrusted: true},
		Key:       key,
		Code:      code,
	}
}

// NewTouch returns a touch contact with the default radius.
func NewTouch(id int, x, y float64) press.Touch {
	return press.Touch{Identifier: id, ClientX: x, ClientY: y, RadiusX: TouchContactSize / 2, RadiusY: TouchContactSize / 2}
}

// NewTouchEvent builds a trusted touch event. For touchstart and touchmove the
// changed touches are also the target touches.
func NewTouchEvent(eventType string, changed ...press.Touch) *press.TouchEvent {
	ev := &press.TouchEvent{
		BaseEvent:      press.BaseEvent{Type: eventType, IsTrusted: true},
		ChangedTouches: changed,
	}
	if eventType == press.TouchStart || eventType == press.TouchMove {
		ev.TargetTouches = changed
	}
	return ev
}
