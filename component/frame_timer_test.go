package component

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimer(t *testing.T) {
	cases := []struct {
		name       string
		frames     int
		duration   int
		ticks      int
		wantFrame  int
		wantRectX0 int
	}{
		{"start", 3, 5, 0, 0, 0},
		{"held", 3, 5, 4, 0, 0},
		{"second", 3, 5, 5, 1, 16},
		{"last", 3, 5, 14, 2, 32},
		{"wraps", 3, 5, 15, 0, 0},
		{"single_frame", 1, 1, 7, 0, 0},
		{"clamped_inputs", 0, 0, 3, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ft := NewFrameTimer(c.frames, c.duration)
			for i := 0; i < c.ticks; i++ {
				ft.Tick()
			}
			assert.Equal(t, c.wantFrame, ft.Frame())
			w := 48 / ft.Frames
			assert.Equal(t, image.Rect(c.wantRectX0, 0, c.wantRectX0+w, 16), ft.FrameRect(48, 16))
		})
	}
}

func TestFrameTimerReset(t *testing.T) {
	ft := NewFrameTimer(4, 2)
	ft.Tick()
	ft.Tick()
	ft.Tick()
	assert.Equal(t, 1, ft.Frame())
	ft.Reset()
	assert.Equal(t, 0, ft.Frame())
}
