package sim

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

// Scenario is one headless run: a level, an actor tuning, an input source
// and a frame budget.
type Scenario struct {
	Name   string
	Level  *levels.Level
	Avatar prefabs.AvatarSpec
	Input  InputSource
	Frames int
}

// Result summarises a finished run.
type Result struct {
	RunID    string
	Scenario string
	Frames   int
	Position geom.Vec
	Velocity geom.Vec
	// Landings counts frames where a downward move was blocked, Bonks
	// frames where an upward move or a horizontal move was blocked.
	Landings    int
	Bonks       int
	Fingerprint uint64
}

// Fields renders r as zap fields.
func (r Result) Fields() []zap.Field {
	return []zap.Field{
		zap.String("run_id", r.RunID),
		zap.String("scenario", r.Scenario),
		zap.Int("frames", r.Frames),
		zap.Float64("x", r.Position.X),
		zap.Float64("y", r.Position.Y),
		zap.Float64("vx", r.Velocity.X),
		zap.Float64("vy", r.Velocity.Y),
		zap.Int("landings", r.Landings),
		zap.Int("bonks", r.Bonks),
		zap.String("fingerprint", fmt.Sprintf("%016x", r.Fingerprint)),
	}
}

// Fingerprint hashes the exact bit patterns of a body's position and
// velocity. Equal fingerprints mean bit-identical state.
func Fingerprint(b *physics.Body) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(b.Position.X))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(b.Position.Y))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(b.Velocity.X))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(b.Velocity.Y))
	return xxhash.Sum64(buf[:])
}

// Run simulates sc to completion. Every step is handed the nominal
// common.FrameDelta, which the physics records but does not scale by.
func Run(ctx context.Context, sc Scenario, logger *zap.Logger) (Result, error) {
	if sc.Level == nil {
		return Result{}, fmt.Errorf("sim: scenario %q has no level", sc.Name)
	}
	if err := sc.Avatar.Validate(); err != nil {
		return Result{}, fmt.Errorf("sim: scenario %q: %w", sc.Name, err)
	}
	input := sc.Input
	if input == nil {
		input = NoInput{}
	}

	res := Result{RunID: uuid.NewString(), Scenario: sc.Name}
	logger = logging.OrNop(logger).With(zap.String("run_id", res.RunID), zap.String("scenario", sc.Name))
	logger.Debug("run started", zap.Int("tiles", len(sc.Level.Tiles)), zap.Stringer("start", sc.Level.Start))

	avatar := obj.NewAvatar(sc.Level.Start, sc.Avatar)
	world := physics.NewWorld(physics.Actor(avatar), sc.Level.Tiles)

	for frame := 0; frame < sc.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("sim: scenario %q stopped at frame %d: %w", sc.Name, frame, err)
		}

		events, err := input.Poll(frame, avatar)
		if err != nil {
			return res, err
		}
		for _, ev := range events {
			avatar.Handle(ev)
		}

		vy := avatar.Body().Velocity.Y + avatar.Body().Acceleration.Y
		c := world.Update(common.FrameDelta)
		if c.Y && vy > 0 {
			res.Landings++
		}
		if c.X || (c.Y && vy < 0) {
			res.Bonks++
			logger.Debug("bonk", zap.Int("frame", frame), zap.Bool("x", c.X), zap.Int("tile", max(c.TileX, c.TileY)))
		}
	}

	res.Frames = world.Frame
	res.Position = avatar.Body().Position
	res.Velocity = avatar.Body().Velocity
	res.Fingerprint = Fingerprint(avatar.Body())
	logger.Debug("run finished", res.Fields()...)
	return res, nil
}

// Stats reports wall-clock throughput for a run.
func Stats(frames int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}
