package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/platformer/logging"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Tone builds a short sine blip at freq Hz, attenuated by volume (beep's
// base-2 exponent; 0 is unchanged, -1 is half as loud).
func Tone(freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Player plays the game's sound effects. A muted or failed player is a
// silent no-op.
type Player struct {
	logger *zap.Logger
	ok     bool
}

var speakerOnce sync.Once
var speakerErr error

// NewPlayer initialises the speaker once per process. Audio failures are
// logged and never fatal.
func NewPlayer(muted bool, logger *zap.Logger) *Player {
	p := &Player{logger: logging.OrNop(logger)}
	if muted {
		return p
	}
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		p.logger.Warn("audio unavailable, continuing without sound", zap.Error(speakerErr))
		return p
	}
	p.ok = true
	return p
}

func (p *Player) Enabled() bool {
	return p != nil && p.ok
}

func (p *Player) Jump() { p.play(660, 60*time.Millisecond, -1) }
func (p *Player) Land() { p.play(220, 40*time.Millisecond, -2) }
func (p *Player) Bonk() { p.play(110, 80*time.Millisecond, -1) }

func (p *Player) play(freq float64, d time.Duration, volume float64) {
	if !p.Enabled() {
		return
	}
	s, err := Tone(freq, d, volume)
	if err != nil {
		p.logger.Debug("tone failed", zap.Float64("freq", freq), zap.Error(err))
		return
	}
	speaker.Play(s)
}
