// Package audio plays short tones for gameplay events.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

type Cue int

const (
	CueSettle Cue = iota
	CueClear
	CueFourLines
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueSettle:
		return "settle"
	case CueClear:
		return "clear"
	case CueFourLines:
		return "four-lines"
	case CueGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(cue Cue)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[Cue]tone{
	CueSettle:    {freq: 220, duration: 30 * time.Millisecond},
	CueClear:     {freq: 660, duration: 80 * time.Millisecond},
	CueFourLines: {freq: 880, duration: 160 * time.Millisecond},
	CueGameOver:  {freq: 110, duration: 400 * time.Millisecond},
}

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues as sine tones on the default audio device.
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker initializes the audio device. Callers treat a failure as
// non-fatal and fall back to Silent.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: sampleRate}, nil
}

func (s *Speaker) Play(cue Cue) {
	t, ok := tones[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(s.rate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.rate.N(t.duration), sine))
}

func (s *Speaker) Close() {
	speaker.Close()
}

// Open returns a Speaker when enabled and Silent otherwise, or when the audio
// device cannot be initialized. The returned func releases the device.
func Open(enabled bool, logger log.FieldLogger) (Player, func()) {
	if !enabled {
		return Silent{}, func() {}
	}
	s, err := NewSpeaker()
	if err != nil {
		logger.WithError(err).Warn("sound disabled")
		return Silent{}, func() {}
	}
	return s, s.Close
}
