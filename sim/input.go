package sim

import (
	"sort"

	"github.com/milk9111/platformer/obj"
)

// InputSource feeds key events to the avatar before each step. Events are
// applied in the returned order.
type InputSource interface {
	Poll(frame int, a *obj.Avatar) ([]obj.KeyEvent, error)
}

// NoInput never presses anything.
type NoInput struct{}

func (NoInput) Poll(int, *obj.Avatar) ([]obj.KeyEvent, error) {
	return nil, nil
}

// TimedEvent is a key event scheduled for a frame.
type TimedEvent struct {
	Frame int
	obj.KeyEvent
}

// Timeline replays a fixed schedule of key events.
type Timeline struct {
	events []TimedEvent
	next   int
}

func NewTimeline(events ...TimedEvent) *Timeline {
	sorted := append([]TimedEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })
	return &Timeline{events: sorted}
}

func (t *Timeline) Poll(frame int, _ *obj.Avatar) ([]obj.KeyEvent, error) {
	var out []obj.KeyEvent
	for t.next < len(t.events) && t.events[t.next].Frame <= frame {
		out = append(out, t.events[t.next].KeyEvent)
		t.next++
	}
	return out, nil
}
