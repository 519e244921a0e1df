package press

// Handlers for platforms with separate mouse and touch events.

func (t *Tracker) onMouseDownLegacy(ev Event) {
	e, ok := ev.(*MouseEvent)
	if !ok || e.Button != 0 || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	if shouldPreventDefault(e.Target) {
		e.PreventDefault()
	}
	e.StopPropagation()

	// Emulated mouse events follow a touch that was already handled.
	if t.state.ignoreEmulatedMouseEvents || t.state.isPressed {
		return
	}

	t.state.isPressed = true
	t.state.isOverTarget = true
	t.state.target = t.node
	t.state.pointerType = PointerMouse
	if IsVirtualClick(e) {
		t.state.pointerType = PointerVirtual
	}

	t.global.Add(t.doc, MouseUp, t.onGlobalMouseUp, ListenerOptions{})

	t.focusTarget()
	t.disableTextSelection()
	t.triggerPressStart(t.node, e.Modifiers, t.state.pointerType)
}

func (t *Tracker) onMouseEnter(ev Event) {
	e := ev.Base()
	if !currentTargetContainsTarget(e) {
		return
	}
	e.StopPropagation()
	if t.state.isPressed && !t.state.ignoreEmulatedMouseEvents {
		t.state.isOverTarget = true
		t.triggerPressStart(t.state.target, e.Modifiers, t.state.pointerType)
	}
}

func (t *Tracker) onMouseLeave(ev Event) {
	e := ev.Base()
	if !currentTargetContainsTarget(e) {
		return
	}
	e.StopPropagation()
	if t.state.isPressed && !t.state.ignoreEmulatedMouseEvents {
		t.state.isOverTarget = false
		t.triggerPressEnd(t.state.target, e.Modifiers, t.state.pointerType, false)
		if t.params.ShouldCancelOnPointerExit {
			t.cancel(e.Modifiers)
		}
	}
}

func (t *Tracker) onMouseUp(ev Event) {
	e, ok := ev.(*MouseEvent)
	if !ok || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	if !t.state.ignoreEmulatedMouseEvents && e.Button == 0 {
		t.triggerPressUp(t.node, e.Modifiers, t.pointerTypeOr(PointerMouse))
	}
}

func (t *Tracker) onGlobalMouseUp(ev Event) {
	e, ok := ev.(*MouseEvent)
	if !ok || e.Button != 0 {
		return
	}
	if t.state.ignoreEmulatedMouseEvents {
		t.state.ignoreEmulatedMouseEvents = false
		t.resetPress()
		return
	}
	if t.targetLost(e.Modifiers) {
		return
	}
	t.finishPointerPress(IsOverTarget(e.ContactPoint(), t.state.target), e.Modifiers)
}

func (t *Tracker) onTouchStart(ev Event) {
	e, ok := ev.(*TouchEvent)
	if !ok || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	e.StopPropagation()
	if len(e.TargetTouches) == 0 || t.state.isPressed {
		return
	}
	touch := e.TargetTouches[0]

	t.state.activePointerID = touch.Identifier
	t.state.hasActivePointer = true
	t.state.ignoreEmulatedMouseEvents = true
	t.state.isOverTarget = true
	t.state.isPressed = true
	t.state.target = t.node
	t.state.pointerType = PointerTouch

	// Touch does not report leaving the target when an ancestor scrolls.
	t.global.Add(t.doc.Window(), Scroll, t.onGlobalScroll, ListenerOptions{Capture: true})

	t.focusTarget()
	t.disableTextSelection()
	t.triggerPressStart(t.node, e.Modifiers, PointerTouch)
}

func (t *Tracker) onTouchMove(ev Event) {
	e, ok := ev.(*TouchEvent)
	if !ok || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	e.StopPropagation()
	if !t.state.isPressed || !t.state.hasActivePointer || t.targetLost(e.Modifiers) {
		return
	}
	touch, found := touchByID(e.ChangedTouches, t.state.activePointerID)
	t.updateOverTarget(found && IsOverTarget(touch.ContactPoint(), t.node), e.Modifiers)
}

func (t *Tracker) onTouchEnd(ev Event) {
	e, ok := ev.(*TouchEvent)
	if !ok || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}
	e.StopPropagation()
	if !t.state.isPressed || !t.state.hasActivePointer {
		return
	}
	if t.targetLost(e.Modifiers) {
		t.state.ignoreEmulatedMouseEvents = true
		return
	}
	touch, found := touchByID(e.ChangedTouches, t.state.activePointerID)
	if !found {
		return
	}
	if IsOverTarget(touch.ContactPoint(), t.node) {
		t.triggerPressUp(t.node, e.Modifiers, t.state.pointerType)
		t.triggerPressEnd(t.node, e.Modifiers, t.state.pointerType, true)
	} else if t.state.isOverTarget {
		t.triggerPressEnd(t.node, e.Modifiers, t.state.pointerType, false)
	}
	t.resetPress()
	t.state.ignoreEmulatedMouseEvents = true
}

func (t *Tracker) onTouchCancel(ev Event) {
	e := ev.Base()
	if !currentTargetContainsTarget(e) {
		return
	}
	e.StopPropagation()
	t.cancel(e.Modifiers)
}

// onGlobalScroll cancels a touch press when the target or one of its
// ancestors scrolls.
func (t *Tracker) onGlobalScroll(ev Event) {
	e := ev.Base()
	if !t.state.isPressed {
		return
	}
	if e.Target == nil || e.Target.Contains(t.state.target) {
		t.cancel(0)
	}
}
