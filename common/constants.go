package common

import "time"

const (
	// TileSize is the edge of one level grid cell in pixels.
	TileSize = 16

	// BaseWidth and BaseHeight are the logical screen size in pixels.
	BaseWidth  = 240
	BaseHeight = 160

	// TPS is the nominal simulation rate. Physics advances one step per tick
	// regardless of the measured frame delta.
	TPS = 60
)

// FrameDelta is the nominal duration of one tick.
const FrameDelta = time.Second / TPS
