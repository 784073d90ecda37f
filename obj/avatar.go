package obj

import (
	"strings"

	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// Key is a logical direction key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "jump"
	case KeyDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseKey maps a key name ("left", "right", "jump"/"up", "down") to a Key.
func ParseKey(name string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	case "up", "jump":
		return KeyUp, true
	case "down":
		return KeyDown, true
	}
	return 0, false
}

// KeyEvent is a press or release of a logical key.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// InputState tracks which logical keys are held.
type InputState struct {
	Left, Right, Up, Down bool
}

func (s *InputState) set(k Key, held bool) {
	switch k {
	case KeyLeft:
		s.Left = held
	case KeyRight:
		s.Right = held
	case KeyUp:
		s.Up = held
	case KeyDown:
		s.Down = held
	}
}

// Avatar is the controllable actor.
type Avatar struct {
	body   *physics.Body
	width  float64
	height float64

	moveSpeed float64
	jumpSpeed float64
	fallSpeed float64

	Held InputState
}

func NewAvatar(start geom.Point, spec prefabs.AvatarSpec) *Avatar {
	return &Avatar{
		body:      physics.NewBody(start.Vec(), geom.Vec{X: 0, Y: spec.Gravity}),
		width:     spec.Width,
		height:    spec.Height,
		moveSpeed: spec.MoveSpeed,
		jumpSpeed: spec.JumpSpeed,
		fallSpeed: spec.FallSpeed,
	}
}

func (a *Avatar) Body() *physics.Body {
	return a.body
}

func (a *Avatar) BoundingBox() geom.Rect {
	return geom.Rect{X: a.body.Position.X, Y: a.body.Position.Y, W: a.width, H: a.height}
}

// DisplayPosition is the pixel the sprite is drawn at.
func (a *Avatar) DisplayPosition() geom.Point {
	return geom.Snap(a.body.Position)
}

// Handle applies a key event to the velocity immediately.
func (a *Avatar) Handle(ev KeyEvent) {
	if ev.Pressed {
		a.KeyDown(ev.Key)
	} else {
		a.KeyUp(ev.Key)
	}
}

// HandleReleases applies only the release events. Used while the
// simulation is frozen so held keys stay in sync with the keyboard without
// starting new motion.
func (a *Avatar) HandleReleases(events []KeyEvent) {
	for _, ev := range events {
		if !ev.Pressed {
			a.KeyUp(ev.Key)
		}
	}
}

func (a *Avatar) KeyDown(k Key) {
	a.Held.set(k, true)
	switch k {
	case KeyUp:
		a.body.Velocity.Y = -a.jumpSpeed
	case KeyDown:
		a.body.Velocity.Y = a.fallSpeed
	case KeyLeft:
		a.body.Velocity.X = -a.moveSpeed
	case KeyRight:
		a.body.Velocity.X = a.moveSpeed
	}
}

// KeyUp stops motion on the key's axis, or hands it to the opposite key if
// that one is still held.
func (a *Avatar) KeyUp(k Key) {
	a.Held.set(k, false)
	switch k {
	case KeyUp:
		a.body.Velocity.Y = 0
		if a.Held.Down {
			a.body.Velocity.Y = a.fallSpeed
		}
	case KeyDown:
		a.body.Velocity.Y = 0
		if a.Held.Up {
			a.body.Velocity.Y = -a.jumpSpeed
		}
	case KeyLeft:
		a.body.Velocity.X = 0
		if a.Held.Right {
			a.body.Velocity.X = a.moveSpeed
		}
	case KeyRight:
		a.body.Velocity.X = 0
		if a.Held.Left {
			a.body.Velocity.X = -a.moveSpeed
		}
	}
}
