package press_test

import (
	"strings"
	"testing"

	"github.com/phanxgames/press"
	"github.com/phanxgames/press/dom"
)

// recorder collects hook emissions as "type:pointer" strings.
type recorder struct {
	events  []string
	changes []bool
	targets []press.Element
}

func (r *recorder) hooks() press.Hooks {
	add := func(e press.PressEvent) {
		r.events = append(r.events, e.Type.String()+":"+e.PointerType.String())
		r.targets = append(r.targets, e.Target)
	}
	return press.Hooks{
		OnPressStart:  add,
		OnPressEnd:    add,
		OnPress:       add,
		OnPressUp:     add,
		OnPressChange: func(p bool) { r.changes = append(r.changes, p) },
	}
}

func (r *recorder) count(typ press.EventType) int {
	n := 0
	for _, e := range r.events {
		if strings.HasPrefix(e, typ.String()+":") {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
	r.changes = nil
	r.targets = nil
}

func (r *recorder) expect(t *testing.T, want ...string) {
	t.Helper()
	if len(r.events) != len(want) {
		t.Fatalf("events = %v, want %v", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s (all: %v)", i, r.events[i], want[i], r.events)
		}
	}
}

type fixture struct {
	doc     *dom.Document
	button  *dom.Element
	tracker *press.Tracker
	rec     *recorder
}

// newFixture attaches a tracker to a 100x50 button at the origin.
func newFixture(t *testing.T, doc *dom.Document) *fixture {
	t.Helper()
	btn := doc.CreateElement("button")
	btn.Rect = press.NewRect(0, 0, 100, 50)
	doc.Body().AddChild(btn)

	rec := &recorder{}
	tr := press.NewTracker(rec.hooks())
	tr.Attach(btn)
	if !tr.IsAttached() {
		t.Fatal("tracker did not attach")
	}
	return &fixture{doc: doc, button: btn, tracker: tr, rec: rec}
}

func (f *fixture) pointer(eventType string, pt press.PointerType, x, y float64, onElement bool) {
	e := dom.NewPointerEvent(eventType, 1, pt, x, y)
	if onElement {
		f.button.Dispatch(e)
	} else {
		f.doc.Dispatch(e)
	}
}

func TestAttachSelectsAdapter(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	if f.tracker.Adapter() != press.AdapterPointer {
		t.Errorf("Adapter = %v, want pointer", f.tracker.Adapter())
	}
	legacy := newFixture(t, dom.NewLegacyDocument())
	if legacy.tracker.Adapter() != press.AdapterLegacy {
		t.Errorf("Adapter = %v, want legacy", legacy.tracker.Adapter())
	}
	if f.button.ListenerCount() != 7 {
		t.Errorf("pointer adapter listeners = %d, want 7", f.button.ListenerCount())
	}
	if legacy.button.ListenerCount() != 12 {
		t.Errorf("legacy adapter listeners = %d, want 12", legacy.button.ListenerCount())
	}
}

func TestAttachTwiceIsNoOp(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	other := f.doc.CreateElement("div")
	f.tracker.Attach(other)
	if other.ListenerCount() != 0 {
		t.Error("second Attach should not register listeners")
	}
}

func TestPointerPressCompletes(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	if !f.tracker.IsPressed() {
		t.Fatal("tracker should be pressed after pointerdown")
	}
	if f.tracker.GlobalListenerCount() != 3 {
		t.Errorf("global listeners = %d, want 3", f.tracker.GlobalListenerCount())
	}
	if f.button.FocusCount != 1 || f.button.ScrolledIntoView != 0 {
		t.Errorf("focus = %d scrolled = %d, want focus without scroll", f.button.FocusCount, f.button.ScrolledIntoView)
	}

	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)

	f.rec.expect(t, "pressstart:mouse", "pressup:mouse", "pressend:mouse", "press:mouse")
	if len(f.rec.changes) != 2 || !f.rec.changes[0] || f.rec.changes[1] {
		t.Errorf("changes = %v, want [true false]", f.rec.changes)
	}
	for i, target := range f.rec.targets {
		if target != press.Element(f.button) {
			t.Errorf("event %d target is not the button", i)
		}
	}
	if f.tracker.IsPressed() || f.tracker.GlobalListenerCount() != 0 {
		t.Error("tracker should be idle with no global listeners after release")
	}
}

func TestPointerTypeDefaultsToMouse(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	e := dom.NewPointerEvent(press.PointerDown, 1, press.PointerNone, 10, 10)
	f.button.Dispatch(e)
	f.rec.expect(t, "pressstart:mouse")
}

func TestPointerDownPreventsDefault(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	e := dom.NewPointerEvent(press.PointerDown, 1, press.PointerMouse, 10, 10)
	if f.button.Dispatch(e) {
		t.Error("pointerdown default should be prevented")
	}

	f.tracker.Cancel()
	drag := f.doc.CreateElement("div")
	drag.SetAttribute("draggable", "true")
	drag.Rect = f.button.Rect
	f.button.AddChild(drag)
	e = dom.NewPointerEvent(press.PointerDown, 1, press.PointerMouse, 10, 10)
	if !drag.Dispatch(e) {
		t.Error("pointerdown inside a draggable should keep its default")
	}
}

func TestPointerExitWithoutCancel(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerTouch, 10, 10, true)
	f.pointer(press.PointerMove, press.PointerTouch, 300, 300, false)
	f.pointer(press.PointerMove, press.PointerTouch, 20, 20, true)
	f.pointer(press.PointerMove, press.PointerTouch, 20, 20, true)
	f.pointer(press.PointerUp, press.PointerTouch, 20, 20, true)

	f.rec.expect(t,
		"pressstart:touch",
		"pressend:touch",
		"pressstart:touch",
		"pressup:touch",
		"pressend:touch",
		"press:touch",
	)
}

func TestPointerReleaseOutsideDoesNotPress(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerMove, press.PointerMouse, 300, 300, false)
	f.pointer(press.PointerUp, press.PointerMouse, 300, 300, false)

	f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
	if f.rec.count(press.EventPress) != 0 {
		t.Error("press must not fire when released outside")
	}
}

func TestPointerReleaseOutsideWithoutMove(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerUp, press.PointerMouse, 300, 300, false)

	f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
}

func TestCancelOnPointerExit(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	f.tracker.SetParameters(press.Parameters{ShouldCancelOnPointerExit: true})

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerMove, press.PointerMouse, 300, 300, false)
	f.pointer(press.PointerMove, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)

	// Re-entry after a cancelling exit starts nothing; the release still
	// fires pressup because the pointer is over the element.
	f.rec.expect(t, "pressstart:mouse", "pressend:mouse", "pressup:mouse")
	if f.tracker.IsPressed() {
		t.Error("tracker should be idle after cancelling exit")
	}
	if f.tracker.GlobalListenerCount() != 0 {
		t.Errorf("global listeners = %d, want 0", f.tracker.GlobalListenerCount())
	}
}

func TestEdgeContactCountsAsOver(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	// A 20x20 touch contact centered 10px right of the edge just touches it.
	e := dom.NewPointerEvent(press.PointerUp, 1, press.PointerTouch, 110, 25)
	f.doc.Dispatch(e)

	if f.rec.count(press.EventPress) != 1 {
		t.Errorf("events = %v, want a press for an edge contact", f.rec.events)
	}
}

func TestSecondPointerDownIgnored(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	second := dom.NewPointerEvent(press.PointerDown, 7, press.PointerTouch, 20, 20)
	f.button.Dispatch(second)
	otherUp := dom.NewPointerEvent(press.PointerUp, 7, press.PointerTouch, 20, 20)
	f.doc.Dispatch(otherUp)

	if f.rec.count(press.EventPressStart) != 1 {
		t.Errorf("pressstart fired %d times, want 1", f.rec.count(press.EventPressStart))
	}
	if !f.tracker.IsPressed() {
		t.Error("release of another pointer should not end the press")
	}
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)
	if f.rec.count(press.EventPress) != 1 {
		t.Errorf("press fired %d times, want 1", f.rec.count(press.EventPress))
	}
}

func TestPointerCancel(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerTouch, 10, 10, true)
	f.doc.Dispatch(dom.NewPointerEvent(press.PointerCancel, 1, press.PointerTouch, 10, 10))

	f.rec.expect(t, "pressstart:touch", "pressend:touch")
	if f.tracker.IsPressed() {
		t.Error("pointercancel should end the press")
	}
}

func TestDragStartCancels(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.button.Dispatch(dom.NewMouseEvent(press.DragStart, 10, 10))

	f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
}

func TestClickAfterPointerPressIsAbsorbed(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)
	click := dom.NewMouseEvent(press.Click, 10, 10)
	click.PointerType = press.PointerMouse
	f.button.Dispatch(click)

	if f.rec.count(press.EventPress) != 1 {
		t.Errorf("press fired %d times, want 1", f.rec.count(press.EventPress))
	}

	// A later programmatic click runs its own lifecycle.
	f.rec.reset()
	f.button.Click()
	f.rec.expect(t, "pressstart:virtual", "pressup:virtual", "pressend:virtual", "press:virtual")
}

func TestVirtualClick(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.button.Click()
	f.rec.expect(t, "pressstart:virtual", "pressup:virtual", "pressend:virtual", "press:virtual")
	if f.button.FocusCount != 1 {
		t.Errorf("FocusCount = %d, want 1", f.button.FocusCount)
	}
}

func TestVirtualPointerDownDefersToClick(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	// VoiceOver sends a zero-size pointer sequence followed by a real click.
	down := dom.NewPointerEvent(press.PointerDown, 1, press.PointerMouse, 0, 0)
	down.Width, down.Height = 0, 0
	f.button.Dispatch(down)
	if f.tracker.IsPressed() {
		t.Fatal("virtual pointerdown should not start a press")
	}
	up := dom.NewPointerEvent(press.PointerUp, 1, press.PointerMouse, 0, 0)
	up.Width, up.Height = 0, 0
	f.button.Dispatch(up)

	click := dom.NewMouseEvent(press.Click, 0, 0)
	click.PointerType = press.PointerMouse
	f.button.Dispatch(click)

	f.rec.expect(t, "pressstart:virtual", "pressup:virtual", "pressend:virtual", "press:virtual")
}

func TestDisabledSuppressesEverything(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	f.tracker.SetParameters(press.Parameters{IsDisabled: true})

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)
	f.button.Click()
	f.button.Dispatch(dom.NewKeyEvent(press.KeyDown, "Enter"))
	f.button.Dispatch(dom.NewKeyEvent(press.KeyUp, "Enter"))

	if len(f.rec.events) != 0 || len(f.rec.changes) != 0 {
		t.Errorf("disabled tracker emitted %v %v", f.rec.events, f.rec.changes)
	}
	if f.button.FocusCount != 0 {
		t.Error("disabled tracker should not focus")
	}
}

func TestPreventFocusOnPress(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	f.tracker.SetParameters(press.Parameters{PreventFocusOnPress: true})

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	if f.button.FocusCount != 0 {
		t.Error("PreventFocusOnPress should keep focus away")
	}
}

func TestTextSelectionSuppressedAndRestored(t *testing.T) {
	doc := dom.NewDocument()
	doc.Root().SetStyle("user-select", "text")
	f := newFixture(t, doc)

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	if got := doc.Root().Style("user-select"); got != "none" {
		t.Errorf("user-select while pressed = %q, want none", got)
	}
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)
	if got := doc.Root().Style("user-select"); got != "text" {
		t.Errorf("user-select after press = %q, want text", got)
	}
}

func TestAllowTextSelection(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	f.tracker.SetParameters(press.Parameters{AllowTextSelectionOnPress: true})

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	if got := f.doc.Root().Style("user-select"); got != "" {
		t.Errorf("user-select = %q, want untouched", got)
	}
}

func TestDestroyMidPressCleansUp(t *testing.T) {
	doc := dom.NewDocument()
	doc.Root().SetStyle("user-select", "auto")
	f := newFixture(t, doc)

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	if doc.ListenerCount() != 3 {
		t.Fatalf("document listeners = %d, want 3", doc.ListenerCount())
	}

	f.tracker.Destroy()

	f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
	if doc.ListenerCount() != 0 || doc.Win().ListenerCount() != 0 {
		t.Errorf("listeners left: document=%d window=%d", doc.ListenerCount(), doc.Win().ListenerCount())
	}
	if f.button.ListenerCount() != 0 {
		t.Errorf("element listeners = %d, want 0", f.button.ListenerCount())
	}
	if f.tracker.GlobalListenerCount() != 0 {
		t.Errorf("registry length = %d, want 0", f.tracker.GlobalListenerCount())
	}
	if got := doc.Root().Style("user-select"); got != "auto" {
		t.Errorf("user-select = %q, want auto", got)
	}
	if f.tracker.IsAttached() || f.tracker.Adapter() != press.AdapterNone {
		t.Error("tracker should be detached")
	}

	// Late events are ignored.
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)
	if len(f.rec.events) != 2 {
		t.Errorf("events after Destroy = %v", f.rec.events)
	}
	f.tracker.Destroy()
}

func TestReattachAfterDestroy(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	f.tracker.Destroy()
	f.tracker.Attach(f.button)

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)
	if f.rec.count(press.EventPress) != 1 {
		t.Errorf("events = %v, want one press after reattach", f.rec.events)
	}
}

func TestCancelFromHook(t *testing.T) {
	doc := dom.NewDocument()
	btn := doc.CreateElement("button")
	btn.Rect = press.NewRect(0, 0, 100, 50)
	doc.Body().AddChild(btn)

	var tr *press.Tracker
	var ends int
	tr = press.NewTracker(press.Hooks{
		OnPressStart: func(press.PressEvent) { tr.Cancel() },
		OnPressEnd:   func(press.PressEvent) { ends++ },
	})
	tr.Attach(btn)

	btn.Dispatch(dom.NewPointerEvent(press.PointerDown, 1, press.PointerMouse, 10, 10))
	if ends != 1 {
		t.Errorf("pressend fired %d times, want 1", ends)
	}
	if tr.IsPressed() || tr.GlobalListenerCount() != 0 {
		t.Error("cancel from pressstart should leave the tracker idle")
	}
}

func TestParametersReadPerEvent(t *testing.T) {
	f := newFixture(t, dom.NewDocument())

	f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
	f.tracker.SetParameters(press.Parameters{IsDisabled: true})
	f.pointer(press.PointerUp, press.PointerMouse, 10, 10, true)

	// pressend still balances the pressstart; press and pressup are gated.
	f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
	if !f.tracker.Parameters().IsDisabled {
		t.Error("Parameters should return the last value set")
	}
}

func TestEventsFromOutsideTargetIgnored(t *testing.T) {
	f := newFixture(t, dom.NewDocument())
	other := f.doc.CreateElement("button")
	other.Rect = press.NewRect(0, 0, 100, 50)
	f.doc.Body().AddChild(other)

	other.Dispatch(dom.NewPointerEvent(press.PointerDown, 1, press.PointerMouse, 10, 10))
	other.Dispatch(dom.NewKeyEvent(press.KeyDown, "Enter"))
	if len(f.rec.events) != 0 {
		t.Errorf("events from a sibling reached the tracker: %v", f.rec.events)
	}
}

func TestDetachedTargetCancelsPress(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
	}{
		{"release", press.PointerUp},
		{"move", press.PointerMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := dom.NewDocument()
			doc.Root().SetStyle("user-select", "text")
			f := newFixture(t, doc)

			f.pointer(press.PointerDown, press.PointerMouse, 10, 10, true)
			doc.Body().RemoveChild(f.button)
			f.pointer(tt.eventType, press.PointerMouse, 10, 10, false)

			f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
			if f.tracker.IsPressed() || f.tracker.GlobalListenerCount() != 0 {
				t.Error("tracker should be idle with no global listeners")
			}
			if got := doc.Root().Style("user-select"); got != "text" {
				t.Errorf("user-select = %q, want text", got)
			}
		})
	}
}
