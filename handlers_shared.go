package press

// Handlers wired for both protocols: keyboard and click.

func (t *Tracker) onKeyDown(ev Event) {
	e, ok := ev.(*KeyboardEvent)
	if !ok || !IsValidKeyboardEvent(e) || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	if shouldPreventDefaultKeyboard(e.Target) {
		e.PreventDefault()
	}
	e.StopPropagation()

	// A repeating key may have gone down on another element before focus
	// moved here; only the first keydown starts a press.
	if t.state.isPressed || e.Repeat {
		return
	}
	t.state.target = t.node
	t.state.isPressed = true
	t.state.isOverTarget = true
	t.state.pointerType = PointerKeyboard

	// Focus may move before the key is released, so listen on the document.
	t.global.Add(t.doc, KeyUp, t.onGlobalKeyUp, ListenerOptions{})
	t.triggerPressStart(t.node, e.Modifiers, PointerKeyboard)
}

func (t *Tracker) onKeyUp(ev Event) {
	e, ok := ev.(*KeyboardEvent)
	if !ok || e.Repeat || !IsValidKeyboardEvent(e) || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	t.triggerPressUp(t.pressTarget(), e.Modifiers, PointerKeyboard)
}

func (t *Tracker) onGlobalKeyUp(ev Event) {
	e, ok := ev.(*KeyboardEvent)
	if !ok || !t.state.isPressed || !IsValidKeyboardEvent(e) {
		return
	}
	if shouldPreventDefaultKeyboard(e.Target) {
		e.PreventDefault()
	}
	e.StopPropagation()
	if t.targetLost(e.Modifiers) {
		return
	}

	target := t.state.target
	contained := target.Contains(e.Target)

	t.state.isPressed = false
	t.state.isOverTarget = false
	t.state.pointerType = PointerNone
	t.triggerPressEnd(target, e.Modifiers, PointerKeyboard, contained)
	t.global.RemoveAll()

	// Links navigate through their click activation. The resulting click is
	// absorbed by onClick because the press already ended.
	role, _ := target.Attribute("role")
	if (contained && IsAnchorLink(target)) || role == "link" {
		target.Click()
	}
}

func (t *Tracker) onClick(ev Event) {
	var e *MouseEvent
	switch v := ev.(type) {
	case *MouseEvent:
		e = v
	case *PointerEvent:
		e = &v.MouseEvent
	default:
		return
	}
	if !currentTargetContainsTarget(&e.BaseEvent) || e.Button != 0 {
		return
	}
	e.StopPropagation()
	if t.params.IsDisabled {
		e.PreventDefault()
	}

	// Screen readers and element.Click() deliver a lone click with no down or
	// up events, so the whole lifecycle runs here.
	if !t.state.ignoreClickAfterPress && !t.state.ignoreEmulatedMouseEvents &&
		(t.state.pointerType == PointerVirtual || IsVirtualClick(e)) {
		t.focusTarget()
		t.triggerPressStart(t.node, e.Modifiers, PointerVirtual)
		t.triggerPressUp(t.node, e.Modifiers, PointerVirtual)
		t.triggerPressEnd(t.node, e.Modifiers, PointerVirtual, true)
		if !t.state.isPressed {
			t.state.pointerType = PointerNone
		}
	}

	t.state.ignoreEmulatedMouseEvents = false
	t.state.ignoreClickAfterPress = false
}

func (t *Tracker) onDragStart(ev Event) {
	e := ev.Base()
	if !currentTargetContainsTarget(e) {
		return
	}
	// Safari does not send pointercancel when a drag starts.
	t.cancel(e.Modifiers)
}
