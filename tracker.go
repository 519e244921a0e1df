package press

// userSelectProperty is the document style the tracker suppresses while a
// pointer press is in flight.
const userSelectProperty = "user-select"

type trackerState struct {
	isPressed                 bool
	isOverTarget              bool
	activePointerID           int
	hasActivePointer          bool
	pointerType               PointerType
	target                    Element
	didFirePressStart         bool
	ignoreEmulatedMouseEvents bool
	ignoreClickAfterPress     bool
	savedSelection            string
	selectionSaved            bool
}

// Tracker normalizes pointer, mouse, touch and keyboard events on one element
// into press lifecycle hooks. It is single-threaded: every method and handler
// must run on the goroutine that dispatches the element's events.
type Tracker struct {
	params  Parameters
	hooks   Hooks
	state   trackerState
	node    Element
	doc     Document
	adapter inputAdapter
	local   []ListenerHandle
	global  GlobalListeners
}

// NewTracker creates a detached tracker firing the given hooks.
func NewTracker(hooks Hooks) *Tracker {
	return &Tracker{hooks: hooks}
}

// Attach starts tracking el. It does nothing if the tracker is already
// attached or el has no owner document.
func (t *Tracker) Attach(el Element) {
	if t.node != nil || el == nil {
		return
	}
	doc := el.OwnerDocument()
	if doc == nil {
		return
	}

	t.node = el
	t.doc = doc
	t.adapter = selectAdapter(doc)
	for _, l := range t.adapter.listeners(t) {
		t.local = append(t.local, el.AddEventListener(l.eventType, l.fn, ListenerOptions{}))
	}
}

// Destroy stops tracking. An in-flight press is cancelled and every listener
// the tracker added is removed. It does nothing if the tracker is detached.
func (t *Tracker) Destroy() {
	if t.node == nil {
		return
	}
	t.cancel(0)

	for _, h := range t.local {
		t.node.RemoveEventListener(h)
	}
	t.global.RemoveAll()
	t.restoreTextSelection()

	t.local = nil
	t.node = nil
	t.doc = nil
	t.adapter = nil
	t.state = trackerState{}
}

// SetParameters replaces the parameters read by subsequent events.
func (t *Tracker) SetParameters(p Parameters) {
	t.params = p
}

// Parameters returns the current parameters.
func (t *Tracker) Parameters() Parameters {
	return t.params
}

// Cancel aborts any in-flight press. OnPress does not fire.
func (t *Tracker) Cancel() {
	t.cancel(0)
}

// IsAttached reports whether the tracker is tracking an element.
func (t *Tracker) IsAttached() bool {
	return t.node != nil
}

// IsPressed reports whether a press interaction is in flight.
func (t *Tracker) IsPressed() bool {
	return t.state.isPressed
}

// Adapter reports which event protocol the tracker is listening with.
func (t *Tracker) Adapter() AdapterKind {
	if t.adapter == nil {
		return AdapterNone
	}
	return t.adapter.kind()
}

// GlobalListenerCount returns the number of document and window listeners the
// tracker currently holds.
func (t *Tracker) GlobalListenerCount() int {
	return t.global.Len()
}

// --- Lifecycle primitives ---

func (t *Tracker) newEvent(typ EventType, target Element, mods KeyModifiers, pt PointerType) PressEvent {
	return PressEvent{Type: typ, PointerType: pt, Target: target, Modifiers: mods}
}

func (t *Tracker) triggerPressStart(target Element, mods KeyModifiers, pt PointerType) {
	if t.params.IsDisabled || t.state.didFirePressStart {
		return
	}
	t.state.didFirePressStart = true

	if t.hooks.OnPressStart != nil {
		t.hooks.OnPressStart(t.newEvent(EventPressStart, target, mods, pt))
	}
	if t.hooks.OnPressChange != nil {
		t.hooks.OnPressChange(true)
	}
}

func (t *Tracker) triggerPressEnd(target Element, mods KeyModifiers, pt PointerType, wasPressed bool) {
	if !t.state.didFirePressStart {
		return
	}
	t.state.ignoreClickAfterPress = true
	t.state.didFirePressStart = false

	if t.hooks.OnPressEnd != nil {
		t.hooks.OnPressEnd(t.newEvent(EventPressEnd, target, mods, pt))
	}
	if t.hooks.OnPressChange != nil {
		t.hooks.OnPressChange(false)
	}
	if wasPressed && !t.params.IsDisabled && t.hooks.OnPress != nil {
		t.hooks.OnPress(t.newEvent(EventPress, target, mods, pt))
	}
}

func (t *Tracker) triggerPressUp(target Element, mods KeyModifiers, pt PointerType) {
	if t.params.IsDisabled {
		return
	}
	if t.hooks.OnPressUp != nil {
		t.hooks.OnPressUp(t.newEvent(EventPressUp, target, mods, pt))
	}
}

func (t *Tracker) cancel(mods KeyModifiers) {
	if !t.state.isPressed {
		return
	}
	if t.state.isOverTarget {
		t.triggerPressEnd(t.state.target, mods, t.state.pointerType, false)
	}
	t.resetPress()
}

// targetLost cancels the press when its target is no longer in the document.
func (t *Tracker) targetLost(mods KeyModifiers) bool {
	if !t.state.isPressed || t.state.target == nil || t.doc.Contains(t.state.target) {
		return false
	}
	t.cancel(mods)
	return true
}

// resetPress returns the tracker to idle and releases every press resource.
func (t *Tracker) resetPress() {
	t.state.isPressed = false
	t.state.isOverTarget = false
	t.state.hasActivePointer = false
	t.state.activePointerID = 0
	t.state.pointerType = PointerNone
	t.global.RemoveAll()
	t.restoreTextSelection()
}

// pressTarget is the element press events report: the press target while one
// is recorded, the tracked element otherwise.
func (t *Tracker) pressTarget() Element {
	if t.state.target != nil {
		return t.state.target
	}
	return t.node
}

func (t *Tracker) pointerTypeOr(fallback PointerType) PointerType {
	if t.state.pointerType != PointerNone {
		return t.state.pointerType
	}
	return fallback
}

func (t *Tracker) focusTarget() {
	if !t.params.IsDisabled && !t.params.PreventFocusOnPress {
		t.node.Focus(true)
	}
}

// --- Text selection ---

func (t *Tracker) disableTextSelection() {
	if t.params.AllowTextSelectionOnPress || t.state.selectionSaved {
		return
	}
	root := t.doc.DocumentElement()
	if root == nil {
		return
	}
	t.state.savedSelection = root.Style(userSelectProperty)
	t.state.selectionSaved = true
	root.SetStyle(userSelectProperty, "none")
}

func (t *Tracker) restoreTextSelection() {
	if !t.state.selectionSaved {
		return
	}
	t.state.selectionSaved = false
	if t.doc == nil {
		return
	}
	if root := t.doc.DocumentElement(); root != nil {
		root.SetStyle(userSelectProperty, t.state.savedSelection)
	}
	t.state.savedSelection = ""
}
