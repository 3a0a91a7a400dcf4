package audio_test

import (
	"testing"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	cues []audio.Cue
}

func (r *recorder) Play(cue audio.Cue) {
	r.cues = append(r.cues, cue)
}

type pushSystem struct {
	next []loop.Action
}

func (s *pushSystem) Execute(frame *loop.Frame) {
	for _, a := range s.next {
		frame.Commands.Push(a)
	}
	s.next = nil
}

func TestCueSystem(t *testing.T) {
	engine := tetris.NewSeeded(10, 20, 5)
	rec := &recorder{}
	push := &pushSystem{}

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(push)
	scheduler.Register(&audio.CueSystem{Player: rec})

	scheduler.Once(0)
	assert.Empty(t, rec.cues, "first frame is the baseline")

	push.next = []loop.Action{loop.ActionLeft, loop.ActionStep}
	scheduler.Once(0)
	assert.Empty(t, rec.cues, "moving is silent")

	push.next = []loop.Action{loop.ActionHardDrop}
	scheduler.Once(0)
	assert.Equal(t, []audio.Cue{audio.CueSettle}, rec.cues)

	push.next = []loop.Action{loop.ActionReset}
	scheduler.Once(0)
	assert.Len(t, rec.cues, 1, "reset is silent")

	for !engine.IsGameOver() {
		push.next = []loop.Action{loop.ActionHardDrop}
		scheduler.Once(0)
	}
	assert.Equal(t, audio.CueGameOver, rec.cues[len(rec.cues)-1])
	for _, cue := range rec.cues[1 : len(rec.cues)-1] {
		assert.Equal(t, audio.CueSettle, cue)
	}

	n := len(rec.cues)
	scheduler.Once(0)
	assert.Len(t, rec.cues, n, "game over plays once")
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "four-lines", audio.CueFourLines.String())
	assert.Equal(t, "Cue(9)", audio.Cue(9).String())
	audio.Silent{}.Play(audio.CueClear)
}

func TestOpenDisabled(t *testing.T) {
	logger, hook := test.NewNullLogger()

	player, closePlayer := audio.Open(false, logger)
	defer closePlayer()

	assert.Equal(t, audio.Silent{}, player)
	assert.Empty(t, hook.AllEntries())
}
