package widget

import (
	"strconv"

	"github.com/phanxgames/press"
)

// ToggleButton is a Button whose presses flip a selected state, mirrored to
// aria-pressed.
type ToggleButton struct {
	*Button
	selected bool
	onChange func(selected bool)
}

// NewToggleButton decorates el as a toggle button with the given initial
// state.
func NewToggleButton(el press.Element, opts ButtonOptions, selected bool, hooks ...press.Hooks) *ToggleButton {
	t := &ToggleButton{}
	t.Button = NewButton(el, opts, hooks...)
	t.Button.OnPress(func(press.PressEvent) { t.SetSelected(!t.selected) })
	t.selected = selected
	t.el.SetAttribute("aria-pressed", strconv.FormatBool(selected))
	return t
}

// Selected reports the toggle state.
func (t *ToggleButton) Selected() bool { return t.selected }

// SetSelected changes the toggle state. OnChange fires only on a change.
func (t *ToggleButton) SetSelected(selected bool) {
	if selected == t.selected {
		return
	}
	t.selected = selected
	t.el.SetAttribute("aria-pressed", strconv.FormatBool(selected))
	if t.onChange != nil {
		t.onChange(selected)
	}
}

// OnChange sets the callback run after the selected state changes.
func (t *ToggleButton) OnChange(fn func(selected bool)) {
	t.onChange = fn
}
