// Package ebitenhost drives a dom.Document from ebiten input so press trackers
// can run inside a native game window.
package ebitenhost

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/press"
	"github.com/phanxgames/press/dom"
)

// maxPointers is the number of pointer slots: slot 0 is the mouse, slots 1-9
// are touches.
const maxPointers = 10

// ScrollStep is the number of pixels scrolled per wheel notch.
const ScrollStep = 40.0

// InputSource is the per-frame input state the host polls. EbitenSource reads
// it from ebiten; tests supply their own.
type InputSource interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
	IsKeyPressed(k ebiten.Key) bool
	Wheel() (x, y float64)
}

type ebitenSource struct{}

// EbitenSource returns an InputSource backed by ebiten's global input state.
// It must only be used from a running game's Update.
func EbitenSource() InputSource { return ebitenSource{} }

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }
func (ebitenSource) IsKeyPressed(k ebiten.Key) bool            { return ebiten.IsKeyPressed(k) }
func (ebitenSource) Wheel() (float64, float64)                 { return ebiten.Wheel() }

// pointerState tracks one pointer slot across frames.
type pointerState struct {
	down       bool
	lastX      float64
	lastY      float64
	hover      *dom.Element
	downTarget *dom.Element
	// touchTarget receives every touch event of a contact, as in browsers.
	touchTarget *dom.Element
	touchID     int
}

// Host converts polled input into DOM events on a document. It is
// single-threaded: call Update from the game loop only.
type Host struct {
	doc *dom.Document
	src InputSource
	log *slog.Logger

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	keysDown     map[ebiten.Key]bool

	injectQueue []syntheticEvent
	script      *Script
	frame       uint64
}

// NewHost returns a host dispatching src's input into doc.
func NewHost(doc *dom.Document, src InputSource) *Host {
	return &Host{
		doc:      doc,
		src:      src,
		log:      slog.New(slog.DiscardHandler),
		keysDown: make(map[ebiten.Key]bool),
	}
}

// SetLogger sets the logger used for dispatch tracing at debug level.
func (h *Host) SetLogger(l *slog.Logger) {
	if l != nil {
		h.log = l
	}
}

// Document returns the document the host dispatches into.
func (h *Host) Document() *dom.Document { return h.doc }

// Frame returns the number of Update calls so far.
func (h *Host) Frame() uint64 { return h.frame }

// Update polls input once and dispatches the resulting events. Injected input
// replaces the mouse for the frame it is consumed in.
func (h *Host) Update() {
	h.frame++
	if h.script != nil {
		h.script.step(h)
	}

	mods := h.readModifiers()
	if !h.processInjectedInput(mods) {
		h.processMousePointer(mods)
		h.processKeys(mods)
	}
	h.processTouchPointers(mods)
	h.processWheel()
}

// readModifiers reads the current keyboard modifier state.
func (h *Host) readModifiers() press.KeyModifiers {
	var mods press.KeyModifiers
	if h.src.IsKeyPressed(ebiten.KeyShift) || h.src.IsKeyPressed(ebiten.KeyShiftLeft) || h.src.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= press.ModShift
	}
	if h.src.IsKeyPressed(ebiten.KeyControl) || h.src.IsKeyPressed(ebiten.KeyControlLeft) || h.src.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= press.ModCtrl
	}
	if h.src.IsKeyPressed(ebiten.KeyAlt) || h.src.IsKeyPressed(ebiten.KeyAltLeft) || h.src.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= press.ModAlt
	}
	if h.src.IsKeyPressed(ebiten.KeyMeta) || h.src.IsKeyPressed(ebiten.KeyMetaLeft) || h.src.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= press.ModMeta
	}
	return mods
}

// processMousePointer handles the left mouse button (pointer 0).
func (h *Host) processMousePointer(mods press.KeyModifiers) {
	mx, my := h.src.CursorPosition()
	pressed := h.src.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	h.processPointer(0, press.PointerMouse, float64(mx), float64(my), pressed, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers(mods press.KeyModifiers) {
	touchIDs := h.src.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		h.pointers[slot].touchID = int(tid)

		tx, ty := h.src.TouchPosition(tid)
		h.processPointer(slot, press.PointerTouch, float64(tx), float64(ty), true, mods)
	}

	// Release slots whose touch ended this frame.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, press.PointerTouch, ps.lastX, ps.lastY, false, mods)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for one slot.
func (h *Host) processPointer(slot int, pt press.PointerType, x, y float64, pressed bool, mods press.KeyModifiers) {
	ps := &h.pointers[slot]
	target := h.doc.ElementFromPoint(x, y)
	moved := x != ps.lastX || y != ps.lastY

	// Touches have no hover; their enter/leave is implied by the contact.
	if pt != press.PointerTouch && target != ps.hover {
		h.fireHover(slot, pt, ps.hover, target, x, y, mods)
		ps.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.downTarget = target
		ps.lastX, ps.lastY = x, y
		h.fireDown(slot, pt, target, x, y, mods)
	case !pressed && ps.down:
		ps.down = false
		h.fireUp(slot, pt, target, x, y, mods)
		ps.downTarget = nil
		ps.touchTarget = nil
		ps.lastX, ps.lastY = x, y
	case moved:
		ps.lastX, ps.lastY = x, y
		h.fireMove(slot, pt, target, x, y, pressed, mods)
	}
}

// pointerID numbers pointers the way browsers do: the mouse is 1.
func pointerID(slot int) int { return slot + 1 }

func (h *Host) fireHover(slot int, pt press.PointerType, from, to *dom.Element, x, y float64, mods press.KeyModifiers) {
	leaveType, enterType := "pointerleave", "pointerenter"
	if !h.doc.PointerEvents {
		leaveType, enterType = press.MouseLeave, press.MouseEnter
	}
	for _, el := range exclusiveAncestors(from, to) {
		h.dispatch(el, h.mouseEvent(leaveType, slot, pt, x, y, mods))
	}
	entered := exclusiveAncestors(to, from)
	for i := len(entered) - 1; i >= 0; i-- {
		h.dispatch(entered[i], h.mouseEvent(enterType, slot, pt, x, y, mods))
	}
}

func (h *Host) fireDown(slot int, pt press.PointerType, target *dom.Element, x, y float64, mods press.KeyModifiers) {
	ps := &h.pointers[slot]
	if h.doc.PointerEvents {
		allowed := h.dispatch(target, h.pointerEvent(press.PointerDown, slot, pt, x, y, mods))
		// A cancelled pointerdown suppresses the compatibility mouse events.
		if allowed && pt == press.PointerMouse {
			h.dispatch(target, h.mouseEvent(press.MouseDown, slot, pt, x, y, mods))
		}
		return
	}
	if pt == press.PointerTouch {
		ps.touchTarget = target
		h.dispatch(target, h.touchEvent(press.TouchStart, slot, x, y, mods))
		return
	}
	h.dispatch(target, h.mouseEvent(press.MouseDown, slot, pt, x, y, mods))
}

func (h *Host) fireMove(slot int, pt press.PointerType, target *dom.Element, x, y float64, pressed bool, mods press.KeyModifiers) {
	if h.doc.PointerEvents {
		ev := h.pointerEvent(press.PointerMove, slot, pt, x, y, mods)
		if !pressed {
			ev.Pressure = 0
		}
		h.dispatch(target, ev)
		return
	}
	if pt == press.PointerTouch && pressed {
		h.dispatch(h.pointers[slot].touchTarget, h.touchEvent(press.TouchMove, slot, x, y, mods))
	}
}

func (h *Host) fireUp(slot int, pt press.PointerType, target *dom.Element, x, y float64, mods press.KeyModifiers) {
	ps := &h.pointers[slot]
	clickable := ps.downTarget != nil && ps.downTarget == target

	if h.doc.PointerEvents {
		allowed := h.dispatch(target, h.pointerEvent(press.PointerUp, slot, pt, x, y, mods))
		if allowed && pt == press.PointerMouse {
			h.dispatch(target, h.mouseEvent(press.MouseUp, slot, pt, x, y, mods))
		}
		if clickable {
			h.click(target, slot, pt, x, y, mods)
		}
		return
	}

	if pt == press.PointerTouch {
		touchTarget := ps.touchTarget
		h.dispatch(touchTarget, h.touchEvent(press.TouchEnd, slot, x, y, mods))
		// Browsers follow a tap with emulated mouse events and a click.
		if clickable && touchTarget == target {
			h.dispatch(target, h.mouseEvent(press.MouseDown, slot, press.PointerNone, x, y, mods))
			h.dispatch(target, h.mouseEvent(press.MouseUp, slot, press.PointerNone, x, y, mods))
			h.click(target, slot, press.PointerNone, x, y, mods)
		}
		return
	}

	h.dispatch(target, h.mouseEvent(press.MouseUp, slot, pt, x, y, mods))
	if clickable {
		h.click(target, slot, pt, x, y, mods)
	}
}

func (h *Host) click(target *dom.Element, slot int, pt press.PointerType, x, y float64, mods press.KeyModifiers) {
	ev := h.mouseEvent(press.Click, slot, pt, x, y, mods)
	ev.Detail = 1
	h.log.Debug("dispatch", "type", press.Click, "target", target.TagName(), "frame", h.frame)
	target.DispatchActivation(ev)
}

// dispatch sends ev to target, or to the document when nothing was hit.
func (h *Host) dispatch(target *dom.Element, ev press.Event) bool {
	typ := ev.Base().Type
	if target == nil {
		h.log.Debug("dispatch", "type", typ, "target", "#document", "frame", h.frame)
		return h.doc.Dispatch(ev)
	}
	h.log.Debug("dispatch", "type", typ, "target", target.TagName(), "frame", h.frame)
	return target.Dispatch(ev)
}

func (h *Host) pointerEvent(typ string, slot int, pt press.PointerType, x, y float64, mods press.KeyModifiers) *press.PointerEvent {
	ev := dom.NewPointerEvent(typ, pointerID(slot), pt, x, y)
	ev.Modifiers = mods
	if typ == press.PointerDown || typ == press.PointerUp {
		ev.Detail = 1
	}
	return ev
}

func (h *Host) mouseEvent(typ string, slot int, pt press.PointerType, x, y float64, mods press.KeyModifiers) *press.MouseEvent {
	ev := dom.NewMouseEvent(typ, x, y)
	ev.Modifiers = mods
	if h.doc.PointerEvents {
		ev.PointerType = pt
	}
	return ev
}

func (h *Host) touchEvent(typ string, slot int, x, y float64, mods press.KeyModifiers) *press.TouchEvent {
	ev := dom.NewTouchEvent(typ, dom.NewTouch(h.pointers[slot].touchID, x, y))
	ev.Modifiers = mods
	return ev
}

// exclusiveAncestors returns el and its ancestors that do not contain other,
// innermost first.
func exclusiveAncestors(el, other *dom.Element) []*dom.Element {
	var out []*dom.Element
	for n := el; n != nil; n = n.Parent() {
		if other != nil && n.Contains(other) {
			break
		}
		out = append(out, n)
	}
	return out
}

// --- Keyboard and wheel ---

// hostKeys maps the polled keys to their DOM key values.
var hostKeys = []struct {
	key ebiten.Key
	dom string
}{
	{ebiten.KeyEnter, "Enter"},
	{ebiten.KeyNumpadEnter, "Enter"},
	{ebiten.KeySpace, " "},
	{ebiten.KeyTab, "Tab"},
}

func (h *Host) processKeys(mods press.KeyModifiers) {
	for _, k := range hostKeys {
		pressed := h.src.IsKeyPressed(k.key)
		was := h.keysDown[k.key]
		if pressed == was {
			continue
		}
		h.keysDown[k.key] = pressed
		h.fireKey(k.dom, pressed, mods)
	}
}

// fireKey dispatches a keydown or keyup at the focused element. Tab moves
// focus instead.
func (h *Host) fireKey(key string, down bool, mods press.KeyModifiers) {
	if key == "Tab" {
		if down {
			h.doc.FocusNext()
		}
		return
	}
	typ := press.KeyUp
	if down {
		typ = press.KeyDown
	}
	ev := dom.NewKeyEvent(typ, key)
	ev.Modifiers = mods
	h.dispatch(h.doc.Focused(), ev)
}

func (h *Host) processWheel() {
	_, dy := h.src.Wheel()
	if dy != 0 {
		h.doc.Win().Scroll(-dy * ScrollStep)
	}
}
