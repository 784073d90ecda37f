package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sfx"
	"go.uber.org/zap"
)

var backgroundColor = color.RGBA{R: 150, G: 191, B: 217, A: 255}

// Positions of the demo sprites drawn over the level.
var (
	explosionPos = geom.Point{X: 30, Y: 20}
	laserPos     = geom.Point{X: 40, Y: 20}
)

type Options struct {
	Level     string
	Debug     bool
	Mute      bool
	SheetPath string
	Watch     bool
}

type Game struct {
	opts   Options
	logger *zap.Logger

	input  *obj.Input
	level  *levels.Level
	avatar *obj.Avatar
	world  *physics.World[levels.Tile]
	camera *obj.Camera

	sheets    *assets.Sheets
	guy       *component.Animation
	explosion *component.Animation
	laser     *component.Animation

	sound   *sfx.Player
	watcher *prefabs.Watcher

	contact  physics.Contact
	grounded bool
	walled   bool
	facing   float64

	paused bool
	quit   bool
	ui     *ebitenui.UI
}

func NewGame(opts Options, logger *zap.Logger) (*Game, error) {
	sheets, err := assets.LoadSheets(opts.SheetPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:      opts,
		logger:    logger,
		input:     obj.NewInput(),
		camera:    obj.NewCamera(common.BaseWidth, common.BaseHeight),
		sheets:    sheets,
		explosion: component.NewAnimation(sheets.Explosion, assets.ExplosionFrames, 4),
		laser:     component.NewAnimation(sheets.Laser, assets.LaserFrames, 3),
		sound:     sfx.NewPlayer(opts.Mute, logger),
		facing:    1,
	}
	if err := g.loadWorld(); err != nil {
		return nil, err
	}
	g.ui = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("levels", "prefabs", "prefabs/scripts")
		if err != nil {
			// running outside the source tree; embedded copies still work
			logger.Debug("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadWorld (re)builds the level, avatar and world from disk or the embedded
// copies. On failure the current world is left untouched.
func (g *Game) loadWorld() error {
	lvl, err := levels.Load(g.opts.Level)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadAvatarSpec()
	if err != nil {
		return err
	}
	if !lvl.HasStart() {
		g.logger.Warn("level has no start marker, spawning at origin", zap.String("level", g.opts.Level))
	}

	g.level = lvl
	g.avatar = obj.NewAvatar(lvl.Start, *spec)
	g.world = physics.NewWorld(physics.Actor(g.avatar), lvl.Tiles)
	g.guy = component.NewAnimation(g.sheets.Guy, spec.Sprite.Frames, spec.Sprite.FrameDuration)
	g.contact = physics.Contact{TileX: -1, TileY: -1}
	g.grounded = false
	g.walled = false

	g.camera.SetWorldBounds(lvl.PixelSize())
	g.camera.SnapTo(g.avatar.Body().Position)

	g.logger.Info("level loaded",
		zap.String("level", g.opts.Level),
		zap.Int("tiles", len(lvl.Tiles)),
		zap.Stringer("start", lvl.Start),
	)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	events := g.input.Update()
	if g.quit || g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.input.DebugPressed {
		g.opts.Debug = !g.opts.Debug
	}

	g.reloadChanged()

	if g.paused {
		// keys let go while the menu is open must not keep the avatar moving
		g.avatar.HandleReleases(events)
		g.ui.Update()
		return nil
	}

	for _, ev := range events {
		g.avatar.Handle(ev)
		if ev.Pressed && ev.Key == obj.KeyUp {
			g.sound.Jump()
		}
	}

	vel := g.avatar.Body().Velocity
	vel.Y += g.avatar.Body().Acceleration.Y
	g.contact = g.world.Update(g.frameDelta())
	g.playContactSounds(vel)

	if v := g.avatar.Body().Velocity.X; v != 0 {
		g.facing = v
		g.guy.Update()
	} else {
		g.guy.Reset()
	}
	g.explosion.Update()
	g.laser.Update()
	g.camera.Update(g.avatar.Body().Position)

	return nil
}

// frameDelta is the wall-clock delta reported to the world. Movement does
// not scale with it.
func (g *Game) frameDelta() time.Duration {
	if tps := ebiten.ActualTPS(); tps > 0 {
		return time.Duration(float64(time.Second) / tps)
	}
	return common.FrameDelta
}

// playContactSounds plays a landing or bonk on the first frame of a contact.
// vel is the velocity the step moved with.
func (g *Game) playContactSounds(vel geom.Vec) {
	landed := g.contact.Y && vel.Y > 0
	if landed && !g.grounded {
		g.sound.Land()
	}
	g.grounded = landed

	if g.contact.Y && vel.Y < 0 {
		g.sound.Bonk()
	}
	if g.contact.X && !g.walled {
		g.sound.Bonk()
	}
	g.walled = g.contact.X
}

// reloadChanged drains pending file changes without blocking.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			if ch.Kind == prefabs.ChangeScript {
				continue
			}
			if ch.Kind == prefabs.ChangeLevel && !levels.IsPath(g.opts.Level, ch.Path) {
				g.logger.Debug("ignoring edit to another level", zap.String("path", ch.Path))
				continue
			}
			if err := g.loadWorld(); err != nil {
				g.logger.Warn("reload failed", zap.Stringer("kind", ch.Kind), zap.String("path", ch.Path), zap.Error(err))
				continue
			}
			g.logger.Info("reloaded", zap.Stringer("kind", ch.Kind), zap.String("path", ch.Path))
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	off := g.camera.Offset()

	for _, t := range g.level.Tiles {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.Position.X-off.X), float64(t.Position.Y-off.Y))
		screen.DrawImage(g.sheets.Ground, op)
	}

	pos := g.avatar.DisplayPosition()
	g.guy.Draw(screen, geom.Point{X: pos.X - off.X, Y: pos.Y - off.Y}, g.facing < 0)
	g.explosion.Draw(screen, explosionPos, false)
	g.laser.Draw(screen, laserPos, false)

	if g.opts.Debug {
		obj.DebugDraw(screen, off, g.avatar, g.level.Tiles, g.contact)
		b := g.avatar.Body()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f dt %s\npos %.2f,%.2f\nvel %.2f,%.2f",
			ebiten.ActualFPS(), g.world.LastDelta.Round(time.Millisecond),
			b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y))
	} else {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()))
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
