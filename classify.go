package press

// IsPressKey reports whether the key event is Enter or Space. "Spacebar" is
// the legacy spelling some browsers still send.
func IsPressKey(e *KeyboardEvent) bool {
	return e.Key == "Enter" || e.Key == " " || e.Key == "Spacebar" || e.Code == "Space"
}

// IsValidKeyboardEvent reports whether a key event should drive a press on its
// target. Text inputs keep their keys, native links handle Enter themselves
// (unless repurposed as a button, where only Space is taken), and role="link"
// elements only respond to Enter.
func IsValidKeyboardEvent(e *KeyboardEvent) bool {
	if !IsPressKey(e) {
		return false
	}
	el, ok := e.Target.(Element)
	if !ok || el == nil {
		return false
	}
	tag := el.TagName()
	if tag == "INPUT" || tag == "TEXTAREA" || el.IsContentEditable() {
		return false
	}
	role, _ := el.Attribute("role")
	if IsAnchorLink(el) && !(role == "button" && e.Key != "Enter") {
		return false
	}
	return !(role == "link" && e.Key != "Enter")
}

// IsAnchorLink reports whether el is an <a> with an href.
func IsAnchorLink(el Element) bool {
	if el.TagName() != "A" {
		return false
	}
	_, ok := el.Attribute("href")
	return ok
}

// IsVirtualClick reports whether a click came from a keyboard, assistive
// technology or element.Click() rather than a pointing device. Such clicks
// carry detail 0 and no pointer type; Firefox with JAWS/NVDA instead reports
// a trusted event with mozInputSource 0.
func IsVirtualClick(e *MouseEvent) bool {
	if e.HasMozInputSource && e.MozInputSource == 0 && e.IsTrusted {
		return true
	}
	return e.Detail == 0 && e.PointerType == PointerNone
}

// IsVirtualPointerEvent reports whether a pointer event was synthesized by a
// screen reader. A zero-size contact is always virtual; Android TalkBack
// sends a 1x1 contact with zero pressure and zero detail. Pressure alone is
// not enough because Safari always reports 0.
func IsVirtualPointerEvent(e *PointerEvent) bool {
	return (e.Width == 0 && e.Height == 0) ||
		(e.Width == 1 && e.Height == 1 && e.Pressure == 0 && e.Detail == 0)
}

// shouldPreventDefault reports whether the default action of a down event on
// target may be cancelled. Cancelling inside a draggable element would stop
// the drag.
func shouldPreventDefault(target Node) bool {
	el, ok := target.(Element)
	if !ok || el == nil {
		return true
	}
	_, inDraggable := el.Closest("draggable", "true")
	return !inDraggable
}

// shouldPreventDefaultKeyboard keeps Enter working on submit controls.
func shouldPreventDefaultKeyboard(target Node) bool {
	el, ok := target.(Element)
	if !ok || el == nil {
		return true
	}
	tag := el.TagName()
	if tag != "INPUT" && tag != "BUTTON" {
		return true
	}
	typ, _ := el.Attribute("type")
	return typ != "submit"
}

// currentTargetContainsTarget filters out events that bubbled to the tracked
// element from somewhere it does not contain, such as a portal.
func currentTargetContainsTarget(e *BaseEvent) bool {
	ct, ok := e.CurrentTarget.(Node)
	if !ok || ct == nil || e.Target == nil {
		return false
	}
	return ct.Contains(e.Target)
}
