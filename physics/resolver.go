package physics

import "github.com/milk9111/platformer/geom"

// Actor is a movable entity driven by a Body.
type Actor interface {
	geom.Bounded
	Body() *Body
}

// Contact reports what blocked the actor during one Step. Tile indexes are
// -1 when the axis moved freely.
type Contact struct {
	X, Y         bool
	TileX, TileY int
}

// Step advances the actor by one frame against the static tiles.
//
// Each axis is integrated and resolved on its own: x first, then y. The first
// tile (in slice order) overlapping the moved box reverts that axis' move and
// zeroes its velocity. There is no sub-stepping, so a body moving further
// than a tile per frame can pass through it.
func Step[T geom.Bounded](actor Actor, tiles []T) Contact {
	body := actor.Body()
	c := Contact{TileX: -1, TileY: -1}

	body.Accelerate()

	prev := body.ApplyXVelocity()
	if i := firstOverlap(actor.BoundingBox(), tiles); i >= 0 {
		body.Position = prev
		body.Velocity.X = 0
		c.X, c.TileX = true, i
	}

	prev = body.ApplyYVelocity()
	if i := firstOverlap(actor.BoundingBox(), tiles); i >= 0 {
		body.Position = prev
		body.Velocity.Y = 0
		c.Y, c.TileY = true, i
	}

	return c
}

func firstOverlap[T geom.Bounded](box geom.Rect, tiles []T) int {
	for i := range tiles {
		if box.Overlaps(tiles[i].BoundingBox()) {
			return i
		}
	}
	return -1
}
