package relay

import (
	"errors"
	"fmt"

	"github.com/phanxgames/press"
	"github.com/phanxgames/press/dom"
)

// Client frame types besides DOM event names.
const (
	TypeLayout = "layout"
	TypeTrack  = "track"
	TypePing   = "ping"
)

// Server frame kinds.
const (
	KindPress  = "press"
	KindChange = "change"
	KindError  = "error"
	KindPong   = "pong"
	KindAck    = "ack"
)

// ErrUnknownTarget is returned when a frame names an element id the document
// does not have.
var ErrUnknownTarget = errors.New("relay: unknown target")

// ErrUnknownType is returned for frames whose type is not understood.
var ErrUnknownType = errors.New("relay: unknown frame type")

// ErrInvalidLayout is returned for layout frames that cannot be applied.
var ErrInvalidLayout = errors.New("relay: invalid layout")

// ClientFrame is a message from the browser. Type is either a DOM event name
// or one of TypeLayout, TypeTrack and TypePing.
type ClientFrame struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`

	// Mouse and pointer fields.
	ClientX     float64 `json:"clientX,omitempty"`
	ClientY     float64 `json:"clientY,omitempty"`
	Button      int     `json:"button,omitempty"`
	Detail      int     `json:"detail,omitempty"`
	PointerID   int     `json:"pointerId,omitempty"`
	PointerType string  `json:"pointerType,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Pressure    float64 `json:"pressure,omitempty"`
	// MozInputSource is only sent by Firefox.
	MozInputSource *int `json:"mozInputSource,omitempty"`

	// Keyboard fields.
	Key    string `json:"key,omitempty"`
	Code   string `json:"code,omitempty"`
	Repeat bool   `json:"repeat,omitempty"`

	// Touch fields.
	Touches       []TouchFrame `json:"touches,omitempty"`
	TargetTouches []TouchFrame `json:"targetTouches,omitempty"`

	ShiftKey bool `json:"shiftKey,omitempty"`
	CtrlKey  bool `json:"ctrlKey,omitempty"`
	AltKey   bool `json:"altKey,omitempty"`
	MetaKey  bool `json:"metaKey,omitempty"`
	// Trusted defaults to true: events relayed from a browser are real input.
	Trusted *bool `json:"isTrusted,omitempty"`

	// Layout payload.
	Elements []ElementFrame `json:"elements,omitempty"`
	// Track payload.
	Params *ParamsFrame `json:"params,omitempty"`
}

// TouchFrame is one touch contact.
type TouchFrame struct {
	ID      int     `json:"identifier"`
	ClientX float64 `json:"clientX"`
	ClientY float64 `json:"clientY"`
	RadiusX float64 `json:"radiusX,omitempty"`
	RadiusY float64 `json:"radiusY,omitempty"`
}

// ElementFrame mirrors one browser element into the document.
type ElementFrame struct {
	ID     string            `json:"id"`
	Tag    string            `json:"tag,omitempty"`
	Parent string            `json:"parent,omitempty"`
	Rect   [4]float64        `json:"rect"` // x, y, width, height
	Attrs  map[string]string `json:"attrs,omitempty"`
}

// ParamsFrame carries tracker parameters for a track frame.
type ParamsFrame struct {
	IsDisabled                bool `json:"isDisabled,omitempty"`
	PreventFocusOnPress       bool `json:"preventFocusOnPress,omitempty"`
	ShouldCancelOnPointerExit bool `json:"shouldCancelOnPointerExit,omitempty"`
	AllowTextSelectionOnPress bool `json:"allowTextSelectionOnPress,omitempty"`
}

func (p ParamsFrame) parameters() press.Parameters {
	return press.Parameters{
		IsDisabled:                p.IsDisabled,
		PreventFocusOnPress:       p.PreventFocusOnPress,
		ShouldCancelOnPointerExit: p.ShouldCancelOnPointerExit,
		AllowTextSelectionOnPress: p.AllowTextSelectionOnPress,
	}
}

// ServerFrame is a message to the browser.
type ServerFrame struct {
	Kind    string      `json:"kind"`
	Event   *EventFrame `json:"event,omitempty"`
	Target  string      `json:"target,omitempty"`
	Pressed *bool       `json:"pressed,omitempty"`
	Message string      `json:"message,omitempty"`
}

// EventFrame is a press lifecycle emission.
type EventFrame struct {
	Type        string `json:"type"`
	PointerType string `json:"pointerType"`
	Target      string `json:"target"`
	Modifiers   uint8  `json:"modifiers"`
}

func newEventFrame(e press.PressEvent) *EventFrame {
	return &EventFrame{
		Type:        e.Type.String(),
		PointerType: e.PointerType.String(),
		Target:      elementID(e.Target),
		Modifiers:   uint8(e.Modifiers),
	}
}

func elementID(el press.Element) string {
	if el == nil {
		return ""
	}
	id, _ := el.Attribute("id")
	return id
}

func (f *ClientFrame) modifiers() press.KeyModifiers {
	var m press.KeyModifiers
	if f.ShiftKey {
		m |= press.ModShift
	}
	if f.CtrlKey {
		m |= press.ModCtrl
	}
	if f.AltKey {
		m |= press.ModAlt
	}
	if f.MetaKey {
		m |= press.ModMeta
	}
	return m
}

func (f *ClientFrame) base() press.BaseEvent {
	trusted := true
	if f.Trusted != nil {
		trusted = *f.Trusted
	}
	return press.BaseEvent{Type: f.Type, Modifiers: f.modifiers(), IsTrusted: trusted}
}

func (f *ClientFrame) mouse() press.MouseEvent {
	ev := press.MouseEvent{
		BaseEvent:   f.base(),
		Button:      f.Button,
		Detail:      f.Detail,
		ClientX:     f.ClientX,
		ClientY:     f.ClientY,
		PointerType: press.ParsePointerType(f.PointerType),
	}
	if f.MozInputSource != nil {
		ev.HasMozInputSource = true
		ev.MozInputSource = *f.MozInputSource
	}
	return ev
}

func touches(in []TouchFrame) []press.Touch {
	out := make([]press.Touch, len(in))
	for i, t := range in {
		out[i] = press.Touch{Identifier: t.ID, ClientX: t.ClientX, ClientY: t.ClientY, RadiusX: t.RadiusX, RadiusY: t.RadiusY}
	}
	return out
}

// Event decodes f into the matching event struct.
func (f *ClientFrame) Event() (press.Event, error) {
	switch f.Type {
	case press.PointerDown, press.PointerMove, press.PointerUp, press.PointerCancel:
		return &press.PointerEvent{
			MouseEvent: f.mouse(),
			PointerID:  f.PointerID,
			Width:      f.Width,
			Height:     f.Height,
			Pressure:   f.Pressure,
		}, nil
	case press.MouseDown, press.MouseUp, press.MouseEnter, press.MouseLeave, press.Click, press.DragStart:
		ev := f.mouse()
		return &ev, nil
	case press.KeyDown, press.KeyUp:
		return &press.KeyboardEvent{BaseEvent: f.base(), Key: f.Key, Code: f.Code, Repeat: f.Repeat}, nil
	case press.TouchStart, press.TouchMove, press.TouchEnd, press.TouchCancel:
		ev := &press.TouchEvent{BaseEvent: f.base(), ChangedTouches: touches(f.Touches)}
		switch {
		case f.TargetTouches != nil:
			ev.TargetTouches = touches(f.TargetTouches)
		case f.Type == press.TouchStart || f.Type == press.TouchMove:
			ev.TargetTouches = ev.ChangedTouches
		}
		return ev, nil
	case press.Scroll:
		b := f.base()
		return &b, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, f.Type)
}

// applyLayout creates or updates the elements named in the frame. Parents
// must precede their children; an empty parent means the body. An element
// may not be moved inside itself.
func applyLayout(doc *dom.Document, elements []ElementFrame) error {
	for _, ef := range elements {
		if ef.ID == "" {
			return fmt.Errorf("%w: element without id", ErrInvalidLayout)
		}
		el := doc.ElementByID(ef.ID)
		if el == nil {
			tag := ef.Tag
			if tag == "" {
				tag = "div"
			}
			el = doc.CreateElement(tag)
			el.SetAttribute("id", ef.ID)
		}

		parent := doc.Body()
		if ef.Parent != "" {
			parent = doc.ElementByID(ef.Parent)
			if parent == nil {
				return fmt.Errorf("%w %q (parent of %q)", ErrUnknownTarget, ef.Parent, ef.ID)
			}
		}
		if el.Contains(parent) {
			return fmt.Errorf("%w: %q cannot be placed inside %q", ErrInvalidLayout, ef.ID, ef.Parent)
		}
		if el.Parent() != parent {
			parent.AddChild(el)
		}

		el.Rect = press.NewRect(ef.Rect[0], ef.Rect[1], ef.Rect[2], ef.Rect[3])
		for k, v := range ef.Attrs {
			el.SetAttribute(k, v)
		}
	}
	return nil
}
