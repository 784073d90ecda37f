package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/physics"
)

var (
	tileColor    = cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	actorColor   = cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
	contactColor = cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
)

// DebugDraw outlines every tile and the actor box, shifted by the camera
// offset. Tiles named in contact are drawn in the contact color.
func DebugDraw[T geom.Bounded](screen *ebiten.Image, off geom.Point, actor geom.Bounded, tiles []T, contact physics.Contact) {
	if screen == nil {
		return
	}
	for i, t := range tiles {
		c := tileColor
		if i == contact.TileX || i == contact.TileY {
			c = contactColor
		}
		strokeBB(screen, t.BoundingBox().BB(), off, c)
	}
	if actor != nil {
		strokeBB(screen, actor.BoundingBox().BB(), off, actorColor)
	}
}

func strokeBB(screen *ebiten.Image, bb cp.BB, off geom.Point, c cp.FColor) {
	x := float32(bb.L) - float32(off.X)
	y := float32(bb.B) - float32(off.Y)
	vector.StrokeRect(screen, x, y, float32(bb.R-bb.L), float32(bb.T-bb.B), 1, fcolorToRGBA(c), false)
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
