package physics

import "github.com/milk9111/platformer/geom"

// Body is the kinematic state of the controllable actor.
type Body struct {
	Position     geom.Vec
	Velocity     geom.Vec
	Acceleration geom.Vec
}

// NewBody creates a body at rest at pos with a constant acceleration.
func NewBody(pos, accel geom.Vec) *Body {
	return &Body{Position: pos, Acceleration: accel}
}

// Accelerate adds the acceleration to the velocity. It runs once per frame.
func (b *Body) Accelerate() {
	b.Velocity = b.Velocity.Add(b.Acceleration)
}

// ApplyXVelocity moves the body along x only and returns the position it
// had before the move.
func (b *Body) ApplyXVelocity() geom.Vec {
	prev := b.Position
	b.Position = b.Position.Add(geom.XOnly(b.Velocity))
	return prev
}

// ApplyYVelocity moves the body along y only and returns the position it
// had before the move.
func (b *Body) ApplyYVelocity() geom.Vec {
	prev := b.Position
	b.Position = b.Position.Add(geom.YOnly(b.Velocity))
	return prev
}
