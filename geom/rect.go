package geom

import "github.com/jakecoffman/cp"

// Rect is a top-left anchored axis-aligned box. W and H are always positive.
type Rect struct {
	X, Y float64
	W, H float64
}

// Bounded is anything that occupies a box in the level.
type Bounded interface {
	BoundingBox() Rect
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and other share interior area. Boxes whose
// edges only touch do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Overlaps is the free-function form of Rect.Overlaps.
func Overlaps(a, b Rect) bool {
	return a.Overlaps(b)
}

// BB converts r to chipmunk bounds (y grows downward, so B is the top edge).
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}
