package press_test

import (
	"testing"

	"github.com/phanxgames/press"
	"github.com/phanxgames/press/dom"
)

func (f *fixture) touch(eventType string, id int, x, y float64) {
	f.button.Dispatch(dom.NewTouchEvent(eventType, dom.NewTouch(id, x, y)))
}

func TestLegacyMousePress(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.button.Dispatch(dom.NewMouseEvent(press.MouseDown, 10, 10))
	if f.doc.ListenerCountFor(press.MouseUp) != 1 {
		t.Fatalf("document mouseup listeners = %d, want 1", f.doc.ListenerCountFor(press.MouseUp))
	}
	f.button.Dispatch(dom.NewMouseEvent(press.MouseUp, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.Click, 10, 10))

	f.rec.expect(t, "pressstart:mouse", "pressup:mouse", "pressend:mouse", "press:mouse")
	if f.doc.ListenerCount() != 0 {
		t.Errorf("document listeners = %d, want 0", f.doc.ListenerCount())
	}
}

func TestLegacyMouseLeaveAndReenter(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.button.Dispatch(dom.NewMouseEvent(press.MouseDown, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseLeave, 300, 300))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseEnter, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseUp, 10, 10))

	f.rec.expect(t,
		"pressstart:mouse",
		"pressend:mouse",
		"pressstart:mouse",
		"pressup:mouse",
		"pressend:mouse",
		"press:mouse",
	)
}

func TestLegacyMouseLeaveCancels(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())
	f.tracker.SetParameters(press.Parameters{ShouldCancelOnPointerExit: true})

	f.button.Dispatch(dom.NewMouseEvent(press.MouseDown, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseLeave, 300, 300))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseEnter, 10, 10))
	f.doc.Dispatch(dom.NewMouseEvent(press.MouseUp, 300, 300))

	f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
	if f.tracker.IsPressed() || f.doc.ListenerCount() != 0 {
		t.Error("tracker should be idle with no document listeners")
	}
}

func TestLegacyTouchPressSuppressesEmulatedMouse(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.touch(press.TouchStart, 5, 10, 10)
	if f.doc.Win().ListenerCount() != 1 {
		t.Fatalf("window listeners = %d, want 1", f.doc.Win().ListenerCount())
	}
	f.touch(press.TouchEnd, 5, 10, 10)
	if f.doc.Win().ListenerCount() != 0 {
		t.Errorf("window listeners after touchend = %d, want 0", f.doc.Win().ListenerCount())
	}

	// Compatibility mouse events and click follow the touch.
	f.button.Dispatch(dom.NewMouseEvent(press.MouseDown, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseUp, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.Click, 10, 10))

	f.rec.expect(t, "pressstart:touch", "pressup:touch", "pressend:touch", "press:touch")
	if len(f.rec.changes) != 2 {
		t.Errorf("changes = %v, want two", f.rec.changes)
	}

	// The click cleared the suppression, so a real mouse press works again.
	f.rec.reset()
	f.button.Dispatch(dom.NewMouseEvent(press.MouseDown, 10, 10))
	f.button.Dispatch(dom.NewMouseEvent(press.MouseUp, 10, 10))
	if f.rec.count(press.EventPress) != 1 {
		t.Errorf("events = %v, want a mouse press", f.rec.events)
	}
}

func TestLegacyTouchMoveOff(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.touch(press.TouchStart, 1, 10, 10)
	f.touch(press.TouchMove, 1, 300, 300)
	f.touch(press.TouchEnd, 1, 300, 300)

	f.rec.expect(t, "pressstart:touch", "pressend:touch")
}

func TestLegacyTouchMoveBack(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.touch(press.TouchStart, 1, 10, 10)
	f.touch(press.TouchMove, 1, 300, 300)
	f.touch(press.TouchMove, 1, 50, 25)
	f.touch(press.TouchEnd, 1, 50, 25)

	f.rec.expect(t,
		"pressstart:touch",
		"pressend:touch",
		"pressstart:touch",
		"pressup:touch",
		"pressend:touch",
		"press:touch",
	)
}

func TestLegacyOtherTouchIgnored(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.touch(press.TouchStart, 1, 10, 10)
	f.touch(press.TouchStart, 2, 20, 20)
	f.touch(press.TouchEnd, 2, 20, 20)

	if !f.tracker.IsPressed() {
		t.Error("ending another touch should not end the press")
	}
	if f.rec.count(press.EventPressStart) != 1 {
		t.Errorf("pressstart fired %d times, want 1", f.rec.count(press.EventPressStart))
	}
}

func TestLegacyTouchCancel(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.touch(press.TouchStart, 1, 10, 10)
	f.touch(press.TouchCancel, 1, 10, 10)

	f.rec.expect(t, "pressstart:touch", "pressend:touch")
	if f.doc.Win().ListenerCount() != 0 {
		t.Errorf("window listeners = %d, want 0", f.doc.Win().ListenerCount())
	}
}

func TestLegacyScrollCancelsTouch(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.touch(press.TouchStart, 1, 10, 10)
	f.doc.Win().Scroll(40)

	f.rec.expect(t, "pressstart:touch", "pressend:touch")
	if f.tracker.IsPressed() {
		t.Error("viewport scroll should cancel the press")
	}
}

func TestLegacyUnrelatedScrollKeepsTouch(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())
	panel := f.doc.CreateElement("div")
	f.doc.Body().AddChild(panel)

	f.touch(press.TouchStart, 1, 10, 10)
	panel.Dispatch(&press.BaseEvent{Type: press.Scroll, IsTrusted: true})

	if !f.tracker.IsPressed() {
		t.Error("scrolling an unrelated element should not cancel")
	}
}

func TestLegacyVirtualClick(t *testing.T) {
	f := newFixture(t, dom.NewLegacyDocument())

	f.button.Click()
	f.rec.expect(t, "pressstart:virtual", "pressup:virtual", "pressend:virtual", "press:virtual")
}

func TestLegacyDestroyMidTouch(t *testing.T) {
	doc := dom.NewLegacyDocument()
	doc.Root().SetStyle("user-select", "contain")
	f := newFixture(t, doc)

	f.touch(press.TouchStart, 1, 10, 10)
	f.tracker.Destroy()

	if doc.Win().ListenerCount() != 0 || doc.ListenerCount() != 0 {
		t.Errorf("listeners left: window=%d document=%d", doc.Win().ListenerCount(), doc.ListenerCount())
	}
	if got := doc.Root().Style("user-select"); got != "contain" {
		t.Errorf("user-select = %q, want contain", got)
	}
	f.rec.expect(t, "pressstart:touch", "pressend:touch")
}

func TestLegacyDetachedTargetCancels(t *testing.T) {
	t.Run("mouse", func(t *testing.T) {
		f := newFixture(t, dom.NewLegacyDocument())

		f.button.Dispatch(dom.NewMouseEvent(press.MouseDown, 10, 10))
		f.doc.Body().RemoveChild(f.button)
		f.doc.Dispatch(dom.NewMouseEvent(press.MouseUp, 10, 10))

		f.rec.expect(t, "pressstart:mouse", "pressend:mouse")
		if f.tracker.IsPressed() || f.doc.ListenerCount() != 0 {
			t.Error("tracker should be idle with no document listeners")
		}
	})
	t.Run("touch", func(t *testing.T) {
		f := newFixture(t, dom.NewLegacyDocument())

		f.touch(press.TouchStart, 1, 10, 10)
		f.doc.Body().RemoveChild(f.button)
		f.touch(press.TouchEnd, 1, 10, 10)

		f.rec.expect(t, "pressstart:touch", "pressend:touch")
		if f.tracker.IsPressed() || f.doc.Win().ListenerCount() != 0 {
			t.Error("tracker should be idle with no window listeners")
		}
	})
}
