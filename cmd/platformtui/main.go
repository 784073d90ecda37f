package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

// Terminals report presses (and auto-repeats) but never releases, so a key
// counts as held until this many ticks pass without a repeat.
const holdTicks = 8

type tuiGame struct {
	screen tcell.Screen
	level  *levels.Level
	avatar *obj.Avatar
	world  *physics.World[levels.Tile]

	held     map[obj.Key]int
	lastTick time.Time
}

func newTUIGame(level *levels.Level, spec prefabs.AvatarSpec) (*tuiGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	avatar := obj.NewAvatar(level.Start, spec)
	return &tuiGame{
		screen:   screen,
		level:    level,
		avatar:   avatar,
		world:    physics.NewWorld(physics.Actor(avatar), level.Tiles),
		held:     make(map[obj.Key]int),
		lastTick: time.Now(),
	}, nil
}

func (g *tuiGame) press(k obj.Key) {
	if _, ok := g.held[k]; !ok {
		g.avatar.KeyDown(k)
	}
	g.held[k] = holdTicks
}

func (g *tuiGame) expireKeys() {
	for k, left := range g.held {
		if left <= 1 {
			delete(g.held, k)
			g.avatar.KeyUp(k)
			continue
		}
		g.held[k] = left - 1
	}
}

func (g *tuiGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.press(obj.KeyLeft)
		case tcell.KeyRight:
			g.press(obj.KeyRight)
		case tcell.KeyUp:
			g.press(obj.KeyUp)
		case tcell.KeyDown:
			g.press(obj.KeyDown)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.press(obj.KeyUp)
			case 'a':
				g.press(obj.KeyLeft)
			case 'd':
				g.press(obj.KeyRight)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *tuiGame) update() physics.Contact {
	now := time.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now

	g.expireKeys()
	return g.world.Update(dt)
}

func (g *tuiGame) draw() {
	g.screen.Clear()
	sw, sh := g.screen.Size()

	// keep the actor's column in view
	cell := g.avatar.DisplayPosition()
	ax, ay := cell.X/common.TileSize, cell.Y/common.TileSize
	offX := common.Clamp(ax-sw/2, 0, max(0, g.level.Width-sw))
	offY := common.Clamp(ay-(sh-1)/2, 0, max(0, g.level.Height-(sh-1)))

	ground := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, t := range g.level.Tiles {
		x := t.Position.X/common.TileSize - offX
		y := t.Position.Y/common.TileSize - offY
		if x >= 0 && x < sw && y >= 0 && y < sh-1 {
			g.screen.SetContent(x, y, '█', nil, ground)
		}
	}

	actor := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if x, y := ax-offX, ay-offY; x >= 0 && x < sw && y >= 0 && y < sh-1 {
		g.screen.SetContent(x, y, '@', nil, actor)
	}

	b := g.avatar.Body()
	status := fmt.Sprintf("frame %d  pos %.1f,%.1f  vel %.2f,%.2f  dt %s  (arrows/space, q quits)",
		g.world.Frame, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, g.world.LastDelta.Round(time.Millisecond))
	for i, r := range []rune(status) {
		if i >= sw {
			break
		}
		g.screen.SetContent(i, sh-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	g.screen.Show()
}

func (g *tuiGame) run() {
	ticker := time.NewTicker(common.FrameDelta)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}

func main() {
	levelName := flag.String("level", "level1", "level name in levels/")
	flag.Parse()

	// nothing is logged while the screen is active
	logger, err := logging.New(logging.Console, false)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	lvl, err := levels.Load(*levelName)
	if err != nil {
		logger.Fatal("load level", zap.String("level", *levelName), zap.Error(err))
	}
	spec, err := prefabs.LoadAvatarSpec()
	if err != nil {
		logger.Fatal("load avatar spec", zap.Error(err))
	}

	g, err := newTUIGame(lvl, *spec)
	if err != nil {
		logger.Fatal("init terminal", zap.Error(err))
	}
	g.run()
	g.screen.Fini()
	logger.Info("bye", zap.Int("frames", g.world.Frame))
}
