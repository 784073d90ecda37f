package physics

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/platformer/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testActor struct {
	body *Body
}

func (a *testActor) Body() *Body { return a.body }

func (a *testActor) BoundingBox() geom.Rect {
	return geom.Rect{X: a.body.Position.X, Y: a.body.Position.Y, W: 7, H: 16}
}

type testTile geom.Point

func (t testTile) BoundingBox() geom.Rect {
	return geom.Rect{X: float64(t.X), Y: float64(t.Y), W: 16, H: 16}
}

func newActor(pos, vel, accel geom.Vec) *testActor {
	b := NewBody(pos, accel)
	b.Velocity = vel
	return &testActor{body: b}
}

func TestStepWithoutTiles(t *testing.T) {
	start := geom.Vec{X: 3, Y: 4}
	vel := geom.Vec{X: 1.5, Y: -0.25}
	a := newActor(start, vel, geom.Vec{})

	const frames = 40
	for i := 0; i < frames; i++ {
		c := Step(a, []testTile(nil))
		require.False(t, c.X || c.Y)
	}

	assert.Equal(t, start.Add(vel.Mult(frames)), a.body.Position)
	assert.Equal(t, vel, a.body.Velocity)
}

func TestStepResolution(t *testing.T) {
	cases := []struct {
		name    string
		tiles   []testTile
		pos     geom.Vec
		vel     geom.Vec
		wantPos geom.Vec
		wantVel geom.Vec
		wantX   bool
		wantY   bool
	}{
		{
			name:    "blocked_on_x_still_falls",
			tiles:   []testTile{{X: 16, Y: 0}},
			pos:     geom.Vec{X: 9, Y: 0},
			vel:     geom.Vec{X: 1, Y: 0.5},
			wantPos: geom.Vec{X: 9, Y: 0.5},
			wantVel: geom.Vec{X: 0, Y: 0.5},
			wantX:   true,
		},
		{
			name:    "blocked_moving_left",
			tiles:   []testTile{{X: 0, Y: 0}},
			pos:     geom.Vec{X: 16, Y: 0},
			vel:     geom.Vec{X: -1, Y: 0},
			wantPos: geom.Vec{X: 16, Y: 0},
			wantVel: geom.Vec{},
			wantX:   true,
		},
		{
			name:    "blocked_on_y_slides_on_x",
			tiles:   []testTile{{X: 0, Y: 16}},
			pos:     geom.Vec{X: 2, Y: 0},
			vel:     geom.Vec{X: 1, Y: 2},
			wantPos: geom.Vec{X: 3, Y: 0},
			wantVel: geom.Vec{X: 1, Y: 0},
			wantY:   true,
		},
		{
			name:    "corner",
			tiles:   []testTile{{X: 16, Y: 0}, {X: 0, Y: 16}},
			pos:     geom.Vec{X: 9, Y: 0},
			vel:     geom.Vec{X: 1, Y: 1},
			wantPos: geom.Vec{X: 9, Y: 0},
			wantVel: geom.Vec{},
			wantX:   true,
			wantY:   true,
		},
		{
			name:    "ceiling",
			tiles:   []testTile{{X: 0, Y: 0}},
			pos:     geom.Vec{X: 4, Y: 16},
			vel:     geom.Vec{X: 0, Y: -3},
			wantPos: geom.Vec{X: 4, Y: 16},
			wantVel: geom.Vec{},
			wantY:   true,
		},
		{
			name:    "tunnels_through_thin_floor",
			tiles:   []testTile{{X: 0, Y: 16}},
			pos:     geom.Vec{X: 4, Y: 0},
			vel:     geom.Vec{X: 0, Y: 40},
			wantPos: geom.Vec{X: 4, Y: 40},
			wantVel: geom.Vec{X: 0, Y: 40},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := newActor(c.pos, c.vel, geom.Vec{})
			contact := Step(a, c.tiles)
			assert.Equal(t, c.wantPos, a.body.Position)
			assert.Equal(t, c.wantVel, a.body.Velocity)
			assert.Equal(t, c.wantX, contact.X)
			assert.Equal(t, c.wantY, contact.Y)
		})
	}
}

func TestStepRestsOnGround(t *testing.T) {
	tiles := []testTile{{X: 0, Y: 16}}
	a := newActor(geom.Vec{X: 4, Y: 0}, geom.Vec{}, geom.Vec{Y: 0.1})

	for i := 0; i < 120; i++ {
		c := Step(a, tiles)
		require.True(t, c.Y, "frame %d", i)
		require.Equal(t, 0.0, a.body.Velocity.Y, "frame %d", i)
		require.Equal(t, 0.0, a.body.Position.Y, "frame %d", i)
	}
}

func TestStepFirstTileWins(t *testing.T) {
	left := testTile{X: 0, Y: 16}
	right := testTile{X: 16, Y: 16}

	a := newActor(geom.Vec{X: 12, Y: 0}, geom.Vec{Y: 2}, geom.Vec{})
	c := Step(a, []testTile{left, right})
	assert.Equal(t, 0, c.TileY)

	b := newActor(geom.Vec{X: 12, Y: 0}, geom.Vec{Y: 2}, geom.Vec{})
	c = Step(b, []testTile{right, left})
	assert.Equal(t, 0, c.TileY)
	assert.Equal(t, a.body.Position, b.body.Position)

	d := newActor(geom.Vec{X: 12, Y: 0}, geom.Vec{Y: 2}, geom.Vec{})
	c = Step(d, []testTile{{X: 64, Y: 64}, right})
	assert.Equal(t, 1, c.TileY)
	assert.Equal(t, -1, c.TileX)
}

func TestStepDeterministic(t *testing.T) {
	tiles := []testTile{}
	for x := 0; x < 10; x++ {
		tiles = append(tiles, testTile{X: x * 16, Y: 64})
	}
	tiles = append(tiles, testTile{X: 96, Y: 48}, testTile{X: 0, Y: 48})

	run := func() *Body {
		a := newActor(geom.Vec{X: 20, Y: 0}, geom.Vec{X: 0.7, Y: -1.3}, geom.Vec{Y: 0.1})
		for i := 0; i < 500; i++ {
			if i%90 == 0 {
				a.body.Velocity.X = -a.body.Velocity.X + 0.3
			}
			Step(a, tiles)
		}
		return a.body
	}

	first, second := run(), run()
	require.Equal(t, math.Float64bits(first.Position.X), math.Float64bits(second.Position.X))
	require.Equal(t, math.Float64bits(first.Position.Y), math.Float64bits(second.Position.Y))
	require.Equal(t, math.Float64bits(first.Velocity.X), math.Float64bits(second.Velocity.X))
	require.Equal(t, math.Float64bits(first.Velocity.Y), math.Float64bits(second.Velocity.Y))
}

func TestWorldUpdateIgnoresDelta(t *testing.T) {
	tiles := []testTile{{X: 0, Y: 32}, {X: 16, Y: 32}}

	fast := NewWorld[testTile](newActor(geom.Vec{X: 1, Y: 0}, geom.Vec{X: 0.5}, geom.Vec{Y: 0.25}), tiles)
	slow := NewWorld[testTile](newActor(geom.Vec{X: 1, Y: 0}, geom.Vec{X: 0.5}, geom.Vec{Y: 0.25}), tiles)

	for i := 0; i < 30; i++ {
		fast.Update(time.Millisecond)
		slow.Update(100 * time.Millisecond)
	}

	assert.Equal(t, 30, fast.Frame)
	assert.Equal(t, 100*time.Millisecond, slow.LastDelta)
	assert.Equal(t, fast.Actor.Body().Position, slow.Actor.Body().Position)
	assert.Equal(t, fast.Actor.Body().Velocity, slow.Actor.Body().Velocity)
}
