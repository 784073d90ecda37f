package obj

import (
	"math"

	"github.com/milk9111/platformer/geom"
)

// Camera follows a world point and keeps the view inside the level. It only
// computes an offset; drawing code subtracts it from world positions.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int

	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera for a screen of the given logical size.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		PosX:    float64(screenW) / 2,
		PosY:    float64(screenH) / 2,
		screenW: screenW,
		screenH: screenH,
		smooth:  0.15,
	}
}

// SetWorldBounds sets the world pixel dimensions for clamping.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = clamp(f, 0, 1)
}

// Update moves the camera toward target. Call once per tick.
func (c *Camera) Update(target geom.Vec) {
	if c.smooth <= 0 {
		c.PosX, c.PosY = target.X, target.Y
	} else {
		c.PosX += (target.X - c.PosX) * c.smooth
		c.PosY += (target.Y - c.PosY) * c.smooth
	}
	c.constrain()
}

// SnapTo centers the camera on target immediately, e.g. after a level load.
func (c *Camera) SnapTo(target geom.Vec) {
	c.PosX, c.PosY = target.X, target.Y
	c.constrain()
}

// Offset is the world-space top-left of the view, in whole pixels.
func (c *Camera) Offset() geom.Point {
	return geom.Point{
		X: int(math.Round(c.PosX - float64(c.screenW)/2)),
		Y: int(math.Round(c.PosY - float64(c.screenH)/2)),
	}
}

func (c *Camera) constrain() {
	c.PosX = constrainAxis(c.PosX, float64(c.screenW)/2, c.worldW)
	c.PosY = constrainAxis(c.PosY, float64(c.screenH)/2, c.worldH)
}

func constrainAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	lo, hi := half, world-half
	if hi < lo {
		// world smaller than view: center on world
		return world / 2
	}
	return clamp(pos, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
