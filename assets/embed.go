package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"golang.org/x/image/colornames"
)

// Sheets holds the sprite strips the game draws.
type Sheets struct {
	Guy       *ebiten.Image
	Explosion *ebiten.Image
	Laser     *ebiten.Image
	Ground    *ebiten.Image
}

// Strip frame counts for the placeholder sheets.
const (
	GuyFrames       = 3
	ExplosionFrames = 6
	LaserFrames     = 4
)

// LoadSheets builds the placeholder art. guyPath, when set, replaces the
// actor strip with a PNG from disk.
func LoadSheets(guyPath string) (*Sheets, error) {
	s := &Sheets{
		Guy:       ebiten.NewImageFromImage(GuyStrip(7, 16)),
		Explosion: ebiten.NewImageFromImage(ExplosionStrip(8)),
		Laser:     ebiten.NewImageFromImage(LaserStrip(8)),
		Ground:    ebiten.NewImageFromImage(GroundTile(common.TileSize)),
	}
	if guyPath != "" {
		img, err := LoadImage(guyPath)
		if err != nil {
			return nil, err
		}
		s.Guy = img
	}
	return s, nil
}

// LoadImage decodes a PNG from disk.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// GuyStrip draws a GuyFrames-frame walk cycle for a w×h actor.
func GuyStrip(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w*GuyFrames, h))
	head := h / 3
	for f := 0; f < GuyFrames; f++ {
		x0 := f * w
		fillRect(img, x0+1, 0, w-2, head, colornames.Peachpuff)
		fillRect(img, x0, head, w, h/3, colornames.Crimson)
		// legs alternate per frame
		legY := head + h/3
		switch f {
		case 0:
			fillRect(img, x0+1, legY, 2, h-legY, colornames.Navy)
			fillRect(img, x0+w-3, legY, 2, h-legY, colornames.Navy)
		case 1:
			fillRect(img, x0+w/2-1, legY, 2, h-legY, colornames.Navy)
		default:
			fillRect(img, x0, legY, 2, h-legY, colornames.Navy)
			fillRect(img, x0+w-2, legY, 2, h-legY, colornames.Navy)
		}
	}
	return img
}

// ExplosionStrip draws a growing-then-fading burst of size×size frames.
func ExplosionStrip(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size*ExplosionFrames, size))
	palette := []color.RGBA{colornames.Yellow, colornames.Orange, colornames.Orangered}
	for f := 0; f < ExplosionFrames; f++ {
		r := f + 1
		if r > size/2 {
			r = size - r
		}
		c := size / 2
		fillRect(img, f*size+c-r, c-r, 2*r, 2*r, palette[f%len(palette)])
	}
	return img
}

// LaserStrip draws a flickering horizontal beam.
func LaserStrip(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size*LaserFrames, size))
	for f := 0; f < LaserFrames; f++ {
		c := colornames.Red
		if f%2 == 1 {
			c = colornames.Hotpink
		}
		fillRect(img, f*size, size/2-1, size, 2, c)
	}
	return img
}

// GroundTile draws a grass-topped dirt block.
func GroundTile(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, 0, 0, size, size, colornames.Saddlebrown)
	fillRect(img, 0, 0, size, size/4, colornames.Forestgreen)
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.Set(px, py, c)
		}
	}
}
