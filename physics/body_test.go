package physics

import (
	"testing"

	"github.com/milk9111/platformer/geom"
	"github.com/stretchr/testify/assert"
)

func TestBodyIntegration(t *testing.T) {
	t.Run("accelerate", func(t *testing.T) {
		b := NewBody(geom.Vec{}, geom.Vec{X: 0, Y: 0.5})
		b.Velocity = geom.Vec{X: 1, Y: -2}
		b.Accelerate()
		b.Accelerate()
		assert.Equal(t, geom.Vec{X: 1, Y: -1}, b.Velocity)
		assert.Equal(t, geom.Vec{}, b.Position, "accelerate must not move the body")
	})

	t.Run("x_step_returns_previous", func(t *testing.T) {
		b := NewBody(geom.Vec{X: 10, Y: 20}, geom.Vec{})
		b.Velocity = geom.Vec{X: 1.5, Y: 3}
		prev := b.ApplyXVelocity()
		assert.Equal(t, geom.Vec{X: 10, Y: 20}, prev)
		assert.Equal(t, geom.Vec{X: 11.5, Y: 20}, b.Position)
	})

	t.Run("y_step_returns_previous", func(t *testing.T) {
		b := NewBody(geom.Vec{X: 10, Y: 20}, geom.Vec{})
		b.Velocity = geom.Vec{X: 1.5, Y: -3}
		prev := b.ApplyYVelocity()
		assert.Equal(t, geom.Vec{X: 10, Y: 20}, prev)
		assert.Equal(t, geom.Vec{X: 10, Y: 17}, b.Position)
	})
}
