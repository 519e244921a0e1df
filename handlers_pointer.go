package press

// Handlers for platforms with unified pointer events.

func (t *Tracker) onPointerDown(ev Event) {
	e, ok := ev.(*PointerEvent)
	if !ok || e.Button != 0 || !currentTargetContainsTarget(&e.BaseEvent) {
		return
	}

	// iOS VoiceOver sends pointer events with bogus coordinates and target.
	// Let onClick handle the interaction instead.
	if IsVirtualPointerEvent(e) {
		if !t.state.isPressed {
			t.state.pointerType = PointerVirtual
		}
		return
	}

	// Focus is handled here rather than by the browser, which behaves
	// inconsistently on mobile.
	if shouldPreventDefault(e.Target) {
		e.PreventDefault()
	}
	e.StopPropagation()

	if t.state.isPressed {
		return
	}
	pt := e.PointerType
	if pt == PointerNone {
		pt = PointerMouse
	}
	t.state.pointerType = pt
	t.state.isPressed = true
	t.state.isOverTarget = true
	t.state.activePointerID = e.PointerID
	t.state.hasActivePointer = true
	t.state.target = t.node

	// Listeners go in before the hooks run so a hook that cancels also
	// removes them.
	t.global.Add(t.doc, PointerMove, t.onGlobalPointerMove, ListenerOptions{})
	t.global.Add(t.doc, PointerUp, t.onGlobalPointerUp, ListenerOptions{})
	t.global.Add(t.doc, PointerCancel, t.onGlobalPointerCancel, ListenerOptions{})

	t.focusTarget()
	t.disableTextSelection()
	t.triggerPressStart(t.node, e.Modifiers, pt)
}

// onMouseDownPointer only suppresses the compatibility mousedown; on touch
// Windows devices it would otherwise trigger a second, asynchronous focus.
func (t *Tracker) onMouseDownPointer(ev Event) {
	e, ok := ev.(*MouseEvent)
	if !ok || !currentTargetContainsTarget(&e.BaseEvent) || e.Button != 0 {
		return
	}
	if shouldPreventDefault(e.Target) {
		e.PreventDefault()
	}
	e.StopPropagation()
}

func (t *Tracker) onPointerUp(ev Event) {
	e, ok := ev.(*PointerEvent)
	// iOS reports pointerup with a zero-size contact, so trust the type
	// recorded at pointerdown.
	if !ok || !currentTargetContainsTarget(&e.BaseEvent) || t.state.pointerType == PointerVirtual {
		return
	}
	// iOS Safari sometimes fires pointerup away from the target.
	if e.Button == 0 && IsOverTarget(e.ContactPoint(), t.node) {
		pt := e.PointerType
		if pt == PointerNone {
			pt = PointerMouse
		}
		t.triggerPressUp(t.node, e.Modifiers, t.pointerTypeOr(pt))
	}
}

// onGlobalPointerMove does its own hit testing because iOS Safari < 13.2
// does not implement pointerenter/pointerleave.
func (t *Tracker) onGlobalPointerMove(ev Event) {
	e, ok := ev.(*PointerEvent)
	if !ok || !t.state.hasActivePointer || e.PointerID != t.state.activePointerID {
		return
	}
	if t.targetLost(e.Modifiers) {
		return
	}
	t.updateOverTarget(IsOverTarget(e.ContactPoint(), t.state.target), e.Modifiers)
}

func (t *Tracker) onGlobalPointerUp(ev Event) {
	e, ok := ev.(*PointerEvent)
	if !ok || !t.state.isPressed || !t.state.hasActivePointer ||
		e.PointerID != t.state.activePointerID || e.Button != 0 {
		return
	}
	if t.targetLost(e.Modifiers) {
		return
	}
	t.finishPointerPress(IsOverTarget(e.ContactPoint(), t.state.target), e.Modifiers)
}

func (t *Tracker) onGlobalPointerCancel(ev Event) {
	t.cancel(ev.Base().Modifiers)
}

// updateOverTarget applies a hit-test result while pressed: leaving ends the
// press without completing it, returning starts it again.
func (t *Tracker) updateOverTarget(over bool, mods KeyModifiers) {
	if over {
		if !t.state.isOverTarget {
			t.state.isOverTarget = true
			t.triggerPressStart(t.state.target, mods, t.state.pointerType)
		}
		return
	}
	if t.state.isOverTarget {
		t.state.isOverTarget = false
		t.triggerPressEnd(t.state.target, mods, t.state.pointerType, false)
		if t.params.ShouldCancelOnPointerExit {
			t.cancel(mods)
		}
	}
}

// finishPointerPress resolves a press on release and returns to idle.
func (t *Tracker) finishPointerPress(over bool, mods KeyModifiers) {
	if over {
		t.triggerPressEnd(t.state.target, mods, t.state.pointerType, true)
	} else if t.state.isOverTarget {
		t.triggerPressEnd(t.state.target, mods, t.state.pointerType, false)
	}
	t.resetPress()
}
