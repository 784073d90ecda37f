package sim

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatLevel(t *testing.T, width int) *levels.Level {
	t.Helper()
	text := "p" + strings.Repeat(".", width-1) + "\n" + strings.Repeat("g", width)
	lvl, err := levels.ParseString(text)
	require.NoError(t, err)
	return lvl
}

func TestTimeline(t *testing.T) {
	tl := NewTimeline(
		TimedEvent{Frame: 5, KeyEvent: obj.KeyEvent{Key: obj.KeyRight, Pressed: false}},
		TimedEvent{Frame: 0, KeyEvent: obj.KeyEvent{Key: obj.KeyRight, Pressed: true}},
		TimedEvent{Frame: 2, KeyEvent: obj.KeyEvent{Key: obj.KeyUp, Pressed: true}},
	)

	got := map[int][]obj.KeyEvent{}
	for f := 0; f < 8; f++ {
		evs, err := tl.Poll(f, nil)
		require.NoError(t, err)
		if len(evs) > 0 {
			got[f] = evs
		}
	}
	assert.Equal(t, map[int][]obj.KeyEvent{
		0: {{Key: obj.KeyRight, Pressed: true}},
		2: {{Key: obj.KeyUp, Pressed: true}},
		5: {{Key: obj.KeyRight, Pressed: false}},
	}, got)
}

func TestRunWalkRightScript(t *testing.T) {
	src, err := LoadScriptSource("walk_right")
	require.NoError(t, err)

	res, err := Run(context.Background(), Scenario{
		Name:   "walk",
		Level:  flatLevel(t, 200),
		Avatar: prefabs.DefaultAvatarSpec(),
		Input:  src,
		Frames: 200,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 200, res.Frames)
	assert.Equal(t, geom.Vec{X: 120, Y: 0}, res.Position)
	assert.Equal(t, geom.Vec{}, res.Velocity)
	assert.Equal(t, 200, res.Landings)
	assert.Zero(t, res.Bonks)
	assert.NotEmpty(t, res.RunID)
}

func TestRunWithoutInputFallsToFloor(t *testing.T) {
	lvl, err := levels.ParseString("..p..\n.....\n.....\nggggg")
	require.NoError(t, err)

	res, err := Run(context.Background(), Scenario{Name: "drop", Level: lvl, Avatar: prefabs.DefaultAvatarSpec(), Frames: 120}, nil)
	require.NoError(t, err)
	assert.Equal(t, 32.0, res.Position.X)
	assert.InDelta(t, 32.0, res.Position.Y, 0.1001)
	assert.LessOrEqual(t, res.Position.Y, 32.0)
	assert.Positive(t, res.Landings)
}

func TestRunDeterministic(t *testing.T) {
	lvl, err := levels.Load("walled")
	require.NoError(t, err)

	scenario := func() Scenario {
		src, err := LoadScriptSource("hop")
		require.NoError(t, err)
		return Scenario{Name: "hop", Level: lvl, Avatar: prefabs.DefaultAvatarSpec(), Input: src, Frames: 900}
	}

	a, err := Run(context.Background(), scenario(), nil)
	require.NoError(t, err)
	b, err := Run(context.Background(), scenario(), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Position, b.Position)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Positive(t, a.Bonks, "hop bounces between walls")
}

func TestScriptErrors(t *testing.T) {
	_, err := NewScriptSource("broken", []byte("update := func(engine, state, frame) {"))
	require.Error(t, err)

	src, err := NewScriptSource("runtime", []byte(`update := func(engine, state, frame) { if frame == 3 { engine.nope() } }`))
	require.NoError(t, err)
	_, err = Run(context.Background(), Scenario{Name: "runtime", Level: flatLevel(t, 4), Avatar: prefabs.DefaultAvatarSpec(), Input: src, Frames: 10}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 3")

	_, err = LoadScriptSource("does_not_exist")
	require.Error(t, err)
}

func TestScriptEngine(t *testing.T) {
	src, err := NewScriptSource("engine", []byte(`
update := func(engine, state, frame) {
	if frame == 0 {
		engine.press("left")
		engine.press("bogus")
	}
	if frame == 1 && engine.held("left") {
		engine.release("left")
	}
}`))
	require.NoError(t, err)

	a := obj.NewAvatar(geom.Point{}, prefabs.DefaultAvatarSpec())
	evs, err := src.Poll(0, a)
	require.NoError(t, err)
	require.Equal(t, []obj.KeyEvent{{Key: obj.KeyLeft, Pressed: true}}, evs)
	for _, ev := range evs {
		a.Handle(ev)
	}

	evs, err = src.Poll(1, a)
	require.NoError(t, err)
	assert.Equal(t, []obj.KeyEvent{{Key: obj.KeyLeft, Pressed: false}}, evs)
}

func TestRunAll(t *testing.T) {
	var scenarios []Scenario
	for _, w := range []int{10, 20, 30} {
		scenarios = append(scenarios, Scenario{
			Name:   strings.Repeat("x", w/10),
			Level:  flatLevel(t, w),
			Avatar: prefabs.DefaultAvatarSpec(),
			Input:  NewTimeline(TimedEvent{KeyEvent: obj.KeyEvent{Key: obj.KeyRight, Pressed: true}}),
			Frames: w,
		})
	}

	results, err := RunAll(context.Background(), scenarios, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario)
		assert.Equal(t, scenarios[i].Frames, r.Frames)
	}

	scenarios = append(scenarios, Scenario{Name: "nolevel", Frames: 1})
	_, err = RunAll(context.Background(), scenarios, 0, nil)
	require.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Scenario{Name: "c", Level: flatLevel(t, 4), Avatar: prefabs.DefaultAvatarSpec(), Frames: 5}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFingerprintIsBitwise(t *testing.T) {
	a := physics.NewBody(geom.Vec{X: 1, Y: 2}, geom.Vec{})
	b := physics.NewBody(geom.Vec{X: 1, Y: 2}, geom.Vec{})
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b.Velocity.Y = math.Copysign(0, -1)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b), "negative zero is a different state")

	b.Velocity.Y = 0
	b.Position.X = math.Nextafter(1, 2)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
