package widget

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/press"
)

// Feedback animates a scale factor while a press is in flight: it shrinks
// toward PressedScale on press start and springs back to 1 on press end.
//
// There is no global animation manager; call Update each frame.
type Feedback struct {
	PressedScale float64
	Duration     float32
	Ease         ease.TweenFunc

	scale float64
	tween *gween.Tween
	Done  bool
}

// NewFeedback returns a Feedback at rest (scale 1).
func NewFeedback(pressedScale float64, duration float32) *Feedback {
	return &Feedback{
		PressedScale: pressedScale,
		Duration:     duration,
		Ease:         ease.OutQuad,
		scale:        1,
		Done:         true,
	}
}

// Hooks returns press hooks that drive the animation.
func (f *Feedback) Hooks() press.Hooks {
	return press.Hooks{OnPressChange: f.SetPressed}
}

// SetPressed retargets the animation from the current scale.
func (f *Feedback) SetPressed(pressed bool) {
	to := 1.0
	if pressed {
		to = f.PressedScale
	}
	fn := f.Ease
	if fn == nil {
		fn = ease.Linear
	}
	f.tween = gween.New(float32(f.scale), float32(to), f.Duration, fn)
	f.Done = false
}

// Update advances the animation by dt seconds.
func (f *Feedback) Update(dt float32) {
	if f.Done || f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.scale = float64(val)
	f.Done = finished
}

// Scale returns the current scale factor.
func (f *Feedback) Scale() float64 { return f.scale }

// ScaleRect scales r about its center by the current factor.
func (f *Feedback) ScaleRect(r press.Rect) press.Rect {
	cx := (r.Left + r.Right) / 2
	cy := (r.Top + r.Bottom) / 2
	hw := r.Width() / 2 * f.scale
	hh := r.Height() / 2 * f.scale
	return press.Rect{Left: cx - hw, Top: cy - hh, Right: cx + hw, Bottom: cy + hh}
}
