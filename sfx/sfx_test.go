package sfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneLength(t *testing.T) {
	s, err := Tone(440, 10*time.Millisecond, 0)
	require.NoError(t, err)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(10*time.Millisecond), total)
}

func TestToneRejectsBadFrequency(t *testing.T) {
	_, err := Tone(float64(sampleRate), time.Millisecond, 0)
	assert.Error(t, err)
}

func TestMutedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(true, nil)
	assert.False(t, p.Enabled())
	p.Jump()
	p.Land()
	p.Bonk()

	var nilPlayer *Player
	assert.False(t, nilPlayer.Enabled())
}
