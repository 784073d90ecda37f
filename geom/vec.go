package geom

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Vec is a 2D float quantity used for positions, velocities and
// accelerations. It shares chipmunk's vector type so arithmetic comes for free.
type Vec = cp.Vector

// XOnly projects v onto the x axis.
func XOnly(v Vec) Vec {
	return Vec{X: v.X}
}

// YOnly projects v onto the y axis.
func YOnly(v Vec) Vec {
	return Vec{Y: v.Y}
}

// Point is an integer pixel position. Level cells and render-space
// positions use it; physics never does.
type Point struct {
	X, Y int
}

// Vec widens p to a float vector. The conversion is exact.
func (p Point) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Snap rounds v to the nearest pixel, halves away from zero.
func Snap(v Vec) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
