package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/logging"
	"go.uber.org/zap"
)

const (
	viewSize = 128
	scale    = 4
)

type demoGame struct {
	name string
	anim *component.Animation
	flip bool
}

func (g *demoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.flip = !g.flip
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.anim.Reset()
	}
	g.anim.Update()
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	fw, fh := g.anim.Size()
	g.anim.Draw(screen, geom.Point{X: (viewSize - fw) / 2, Y: (viewSize - fh) / 2}, g.flip)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %d/%d", g.name, g.anim.Timer.Frame()+1, g.anim.Timer.Frames))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// strip picks a built-in sheet by name, or loads path when given.
func strip(name, path string, frames int) (*ebiten.Image, int, error) {
	if path != "" {
		img, err := assets.LoadImage(path)
		return img, frames, err
	}
	sheets, err := assets.LoadSheets("")
	if err != nil {
		return nil, 0, err
	}
	switch name {
	case "guy":
		return sheets.Guy, assets.GuyFrames, nil
	case "explosion":
		return sheets.Explosion, assets.ExplosionFrames, nil
	case "laser":
		return sheets.Laser, assets.LaserFrames, nil
	case "ground":
		return sheets.Ground, 1, nil
	default:
		return nil, 0, fmt.Errorf("unknown sheet %q", name)
	}
}

func main() {
	name := flag.String("sheet", "guy", "built-in strip: guy, explosion, laser or ground")
	path := flag.String("file", "", "PNG strip to preview instead of a built-in one")
	frames := flag.Int("frames", 1, "frame count when previewing -file")
	duration := flag.Int("duration", 5, "ticks each frame is held")
	flag.Parse()

	logger, err := logging.New(logging.Console, false)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	sheet, n, err := strip(*name, *path, *frames)
	if err != nil {
		logger.Fatal("load strip", zap.Error(err))
	}

	label := *name
	if *path != "" {
		label = *path
	}
	g := &demoGame{name: label, anim: component.NewAnimation(sheet, n, *duration)}

	ebiten.SetWindowSize(viewSize*scale, viewSize*scale)
	ebiten.SetWindowTitle("Sprite Strip Preview")
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
