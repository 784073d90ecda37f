package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/geom"
)

// Animation draws a horizontal sprite strip driven by a FrameTimer.
type Animation struct {
	Sheet *ebiten.Image
	Timer FrameTimer
}

// NewAnimation creates an animation over sheet with `frames` frames, each
// held for `duration` ticks.
func NewAnimation(sheet *ebiten.Image, frames, duration int) *Animation {
	return &Animation{Sheet: sheet, Timer: NewFrameTimer(frames, duration)}
}

// Update advances the animation. Call once per game update.
func (a *Animation) Update() {
	if a == nil {
		return
	}
	a.Timer.Tick()
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.Timer.Reset()
}

// Size returns the frame width/height.
func (a *Animation) Size() (int, int) {
	if a == nil || a.Sheet == nil {
		return 0, 0
	}
	b := a.Sheet.Bounds()
	return b.Dx() / a.Timer.Frames, b.Dy()
}

// Draw draws the current frame with its top-left corner at dest. Pixel art
// is drawn with nearest filtering.
func (a *Animation) Draw(screen *ebiten.Image, dest geom.Point, flipX bool) {
	if a == nil || a.Sheet == nil {
		return
	}
	b := a.Sheet.Bounds()
	r := a.Timer.FrameRect(b.Dx(), b.Dy()).Add(b.Min)
	frame := a.Sheet.SubImage(r).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(r.Dx()), 0)
	}
	op.GeoM.Translate(float64(dest.X), float64(dest.Y))
	screen.DrawImage(frame, op)
}
