package physics

import (
	"time"

	"github.com/milk9111/platformer/geom"
)

// World pairs one actor with the static tiles it collides against. It is
// owned by a single loop and is not safe for concurrent use.
type World[T geom.Bounded] struct {
	Actor Actor
	Tiles []T

	// Frame counts completed steps.
	Frame int
	// LastDelta is the wall-clock delta handed to the last Update. It is
	// informational: integration is per frame, not per second.
	LastDelta time.Duration
}

// NewWorld creates a world for actor over tiles.
func NewWorld[T geom.Bounded](actor Actor, tiles []T) *World[T] {
	return &World[T]{Actor: actor, Tiles: tiles}
}

// Update runs one simulation step.
func (w *World[T]) Update(dt time.Duration) Contact {
	if w == nil || w.Actor == nil {
		return Contact{TileX: -1, TileY: -1}
	}
	w.LastDelta = dt
	c := Step(w.Actor, w.Tiles)
	w.Frame++
	return c
}
