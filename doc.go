// Package press turns raw pointer, mouse, touch and keyboard events into one
// reliable press lifecycle for custom widgets.
//
// Browsers and native toolkits disagree about which events a tap or click
// produces: a single touch can fire pointer events, emulated mouse events and
// a click; screen readers synthesize clicks with no down or up at all; Enter
// on a link navigates natively. A [Tracker] listens to all of it on one
// element and reports
//
//	pressstart → (pressup | pressend)* → pressend → press
//
// through [Hooks], guaranteeing that OnPress fires at most once per
// interaction and only after a matching OnPressEnd.
//
// # Quick start
//
//	t := press.NewTracker(press.Hooks{
//		OnPress:       func(e press.PressEvent) { fmt.Println("pressed with", e.PointerType) },
//		OnPressChange: func(pressed bool) { button.SetHighlighted(pressed) },
//	})
//	t.SetParameters(press.Parameters{ShouldCancelOnPointerExit: true})
//	t.Attach(el)
//	defer t.Destroy()
//
// The tracker works against the small platform surface in platform.go
// ([Element], [Document], [EventTarget]). The dom subpackage provides an
// in-memory implementation; ebitenhost drives it from an Ebitengine window and
// relay feeds it from a browser over a websocket.
//
// # Resources
//
// While a press is in flight the tracker listens on the document (and window
// for touch scrolls) and disables text selection on the document element.
// Both are released on every path out of a press: release, cancellation,
// [Tracker.Cancel] and [Tracker.Destroy].
//
// # Threading
//
// Like the DOM it models, a tracker is single-threaded. Dispatch every event
// and call every method from the same goroutine.
package press
