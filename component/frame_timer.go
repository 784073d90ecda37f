package component

import "image"

// FrameTimer steps through a horizontal strip of equally sized frames, each
// held for Duration ticks. It loops forever.
type FrameTimer struct {
	Frames   int
	Duration int

	timer int
}

func NewFrameTimer(frames, duration int) FrameTimer {
	if frames <= 0 {
		frames = 1
	}
	if duration <= 0 {
		duration = 1
	}
	return FrameTimer{Frames: frames, Duration: duration}
}

// Tick advances one game tick.
func (f *FrameTimer) Tick() {
	f.timer = (f.timer + 1) % (f.Frames * f.Duration)
}

func (f *FrameTimer) Reset() {
	f.timer = 0
}

// Frame returns the index of the frame being shown.
func (f FrameTimer) Frame() int {
	return f.timer / f.Duration
}

// FrameRect returns the current frame's pixel rectangle in a sheet of the
// given size. Frames split the width evenly and span the full height.
func (f FrameTimer) FrameRect(sheetW, sheetH int) image.Rectangle {
	w := sheetW / f.Frames
	x := f.Frame() * w
	return image.Rect(x, 0, x+w, sheetH)
}
