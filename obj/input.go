package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[Key][]ebiten.Key{
	KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

var padBindings = map[Key]ebiten.StandardGamepadButton{
	KeyLeft:  ebiten.StandardGamepadButtonLeftLeft,
	KeyRight: ebiten.StandardGamepadButtonLeftRight,
	KeyUp:    ebiten.StandardGamepadButtonRightBottom,
	KeyDown:  ebiten.StandardGamepadButtonLeftBottom,
}

var keyOrder = []Key{KeyLeft, KeyRight, KeyUp, KeyDown}

// Input polls the keyboard and first gamepad once per tick and turns edges
// into key events.
type Input struct {
	// PausePressed is true on the frame Escape or Start was pressed.
	PausePressed bool
	// QuitPressed is true on the frame F12 was pressed.
	QuitPressed bool
	// DebugPressed toggles the collision overlay (F3).
	DebugPressed bool

	events []KeyEvent
}

func NewInput() *Input {
	return &Input{}
}

// Update polls devices and returns this tick's key events in a fixed order.
// The returned slice is reused by the next call.
func (i *Input) Update() []KeyEvent {
	i.events = i.events[:0]

	var gid ebiten.GamepadID
	hasPad := false
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid = ids[0]
		hasPad = ebiten.IsStandardGamepadLayoutAvailable(gid)
	}

	for _, k := range keyOrder {
		pressed, released := false, false
		for _, key := range keyBindings[k] {
			pressed = pressed || inpututil.IsKeyJustPressed(key)
			released = released || inpututil.IsKeyJustReleased(key)
		}
		if hasPad {
			btn := padBindings[k]
			pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(gid, btn)
			released = released || inpututil.IsStandardGamepadButtonJustReleased(gid, btn)
		}
		if pressed {
			i.events = append(i.events, KeyEvent{Key: k, Pressed: true})
		}
		if released {
			i.events = append(i.events, KeyEvent{Key: k, Pressed: false})
		}
	}

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if hasPad {
		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)

	return i.events
}
