// Package widget builds accessible buttons on top of press trackers.
package widget

import (
	"strings"

	"github.com/phanxgames/press"
)

// ButtonOptions configure a Button. Zero values mean "not set".
type ButtonOptions struct {
	Disabled bool
	// Type is the type attribute for <button> and <input>; default "button".
	Type string
	// Href, Target and Rel apply to <a> elements. Href is withheld while
	// disabled.
	Href   string
	Target string
	Rel    string
	// Press holds the remaining tracker parameters. IsDisabled is taken from
	// Disabled.
	Press press.Parameters
}

// attribute order for deterministic writes.
var buttonAttributes = []string{"type", "disabled", "role", "tabindex", "href", "target", "rel", "aria-disabled"}

// attributesFor returns the attributes a button element of tag should carry.
// Attributes missing from the map must be absent on the element.
func attributesFor(tag string, o ButtonOptions) map[string]string {
	attrs := make(map[string]string)
	typ := o.Type
	if typ == "" {
		typ = "button"
	}

	if tag == "button" {
		attrs["type"] = typ
		if o.Disabled {
			attrs["disabled"] = ""
		}
		return attrs
	}

	attrs["role"] = "button"
	if !o.Disabled {
		attrs["tabindex"] = "0"
	}
	switch tag {
	case "a":
		if !o.Disabled && o.Href != "" {
			attrs["href"] = o.Href
		}
		if o.Target != "" {
			attrs["target"] = o.Target
		}
		if o.Rel != "" {
			attrs["rel"] = o.Rel
		}
	case "input":
		attrs["type"] = typ
		if o.Disabled {
			attrs["disabled"] = ""
		}
	}
	if o.Disabled && tag != "input" {
		attrs["aria-disabled"] = "true"
	}
	return attrs
}

type pressHandler struct {
	id uint32
	fn func(press.PressEvent)
}

// CallbackHandle allows removing a registered press callback.
type CallbackHandle struct {
	id  uint32
	btn *Button
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.btn == nil {
		return
	}
	for i, p := range h.btn.handlers {
		if p.id == h.id {
			h.btn.handlers = append(h.btn.handlers[:i], h.btn.handlers[i+1:]...)
			return
		}
	}
}

// Button turns any element into an accessible button: it writes the ARIA
// attributes for the element's tag and fires OnPress callbacks from a
// press.Tracker.
type Button struct {
	el       press.Element
	tag      string
	opts     ButtonOptions
	applied  map[string]string
	tracker  *press.Tracker
	pressed  bool
	handlers []pressHandler
	nextID   uint32
}

// NewButton decorates el and starts tracking presses on it. Extra hooks run
// after the button's own.
func NewButton(el press.Element, opts ButtonOptions, hooks ...press.Hooks) *Button {
	b := &Button{
		el:      el,
		tag:     strings.ToLower(el.TagName()),
		applied: make(map[string]string),
	}
	own := press.Hooks{
		OnPress:       b.firePress,
		OnPressChange: func(p bool) { b.pressed = p },
	}
	b.tracker = press.NewTracker(press.ChainHooks(append([]press.Hooks{own}, hooks...)...))
	b.Update(opts)
	b.tracker.Attach(el)
	return b
}

// Element returns the decorated element.
func (b *Button) Element() press.Element { return b.el }

// Tracker returns the underlying press tracker.
func (b *Button) Tracker() *press.Tracker { return b.tracker }

// Options returns the current options.
func (b *Button) Options() ButtonOptions { return b.opts }

// Pressed reports whether the button is currently pressed.
func (b *Button) Pressed() bool { return b.pressed }

// OnPress registers fn to run when a press completes over the button.
func (b *Button) OnPress(fn func(press.PressEvent)) CallbackHandle {
	b.nextID++
	b.handlers = append(b.handlers, pressHandler{id: b.nextID, fn: fn})
	return CallbackHandle{id: b.nextID, btn: b}
}

// Update applies new options. Only attributes whose value changed are
// written.
func (b *Button) Update(opts ButtonOptions) {
	b.opts = opts
	next := attributesFor(b.tag, opts)
	for _, name := range buttonAttributes {
		nv, want := next[name]
		ov, had := b.applied[name]
		switch {
		case want && (!had || nv != ov):
			b.el.SetAttribute(name, nv)
		case !want && had:
			b.el.RemoveAttribute(name)
		}
	}
	b.applied = next

	params := opts.Press
	params.IsDisabled = opts.Disabled
	b.tracker.SetParameters(params)
}

// Destroy stops tracking. Attributes are left in place.
func (b *Button) Destroy() {
	b.tracker.Destroy()
	b.pressed = false
	b.handlers = nil
}

func (b *Button) firePress(e press.PressEvent) {
	for _, h := range b.handlers {
		h.fn(e)
	}
}
