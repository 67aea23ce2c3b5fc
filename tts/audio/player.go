package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays an assembled sample buffer through the system audio
// device. It is used for preview listening after a conversion; the WAV
// file on disk is the primary output either way.
type Player struct {
	ctx        *oto.Context
	sampleRate int
}

// NewPlayer initializes the audio device for mono 16-bit playback at the
// given sample rate.
func NewPlayer(sampleRate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("initialize audio device: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, sampleRate: sampleRate}, nil
}

// Play blocks until the whole buffer has been played.
func (p *Player) Play(samples []float32) error {
	if len(samples) == 0 {
		return ErrNoAudioProduced
	}

	// The PCM buffer must stay alive for the duration of playback.
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(pcm16(s))))
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}
