package line

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func newSession(input string, engine *tetris.Engine, out *bytes.Buffer) *Session {
	logger, _ := test.NewNullLogger()
	return &Session{
		In:     strings.NewReader(input),
		Out:    out,
		Engine: engine,
		Config: config.Default(),
		Logger: logger,
		Now:    fakeClock(time.Millisecond),
	}
}

func TestRenderer(t *testing.T) {
	engine := tetris.NewSeeded(10, 20, 5)
	var out bytes.Buffer

	NewRenderer(&out, false).Render(engine)

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Score: 0  Lines: 0", lines[0])
	assert.Equal(t, "┌"+strings.Repeat("─", 20)+"┐", lines[1])
	assert.Equal(t, "└"+strings.Repeat("─", 20)+"┘", lines[22])
	assert.Equal(t, "Controls:", lines[23])

	letter := engine.Active().Kind().String()
	assert.Contains(t, lines[2], letter+letter)
	assert.Equal(t, "│"+strings.Repeat(emptyGlyph, 10)+"│", lines[21])
}

func TestRendererClear(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, true).Render(tetris.NewSeeded(4, 4, 1))
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

func TestRendererGameOver(t *testing.T) {
	engine := tetris.NewSeeded(10, 20, 5)
	for !engine.IsGameOver() {
		engine.HardDrop()
	}
	var out bytes.Buffer

	NewRenderer(&out, false).Render(engine)

	assert.Contains(t, out.String(), "GAME OVER!")
	assert.NotContains(t, out.String(), "Controls:")
}

type failingWriter struct{}

var errClosed = errors.New("closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestSession(t *testing.T) {
	t.Run("hard drop then quit", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		var out bytes.Buffer

		require.NoError(t, newSession("x\nq\n", engine, &out).Run(context.Background()))

		assert.Equal(t, 1, engine.Stats().Pieces)
		assert.Contains(t, out.String(), prompt)
		assert.Contains(t, out.String(), "Thanks for playing! Final score: 0")
	})

	t.Run("invalid command", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		var out bytes.Buffer

		require.NoError(t, newSession("zz\nQ\n", engine, &out).Run(context.Background()))

		assert.Contains(t, out.String(), invalid)
		assert.Equal(t, 0, engine.Stats().Pieces)
	})

	t.Run("gravity from elapsed time", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		start := engine.Active()
		var out bytes.Buffer
		session := newSession("\n\n\nq\n", engine, &out)
		session.Now = fakeClock(time.Second)

		require.NoError(t, session.Run(context.Background()))

		assert.True(t, engine.Active().Equal(start.Translate(tetris.Coord{X: 0, Y: 3})))
	})

	t.Run("no gravity while typing fast", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		start := engine.Active()
		var out bytes.Buffer

		require.NoError(t, newSession("\n\nq\n", engine, &out).Run(context.Background()))

		assert.True(t, engine.Active().Equal(start))
	})

	t.Run("restart after game over", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		for !engine.IsGameOver() {
			engine.HardDrop()
		}
		var out bytes.Buffer

		require.NoError(t, newSession("\nr\nq\n", engine, &out).Run(context.Background()))

		assert.Contains(t, out.String(), restartPrompt)
		assert.False(t, engine.IsGameOver())
		assert.Equal(t, 0, engine.Score())
	})

	t.Run("quit after game over", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		for !engine.IsGameOver() {
			engine.HardDrop()
		}
		var out bytes.Buffer

		require.NoError(t, newSession("\nn\n", engine, &out).Run(context.Background()))

		assert.True(t, engine.IsGameOver())
		assert.Contains(t, out.String(), "Thanks for playing!")
	})

	t.Run("end of input", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		var out bytes.Buffer

		assert.NoError(t, newSession("a\n", engine, &out).Run(context.Background()))
	})

	t.Run("write error", func(t *testing.T) {
		session := newSession("x\n", tetris.NewSeeded(10, 20, 5), nil)
		session.Out = failingWriter{}

		err := session.Run(context.Background())
		assert.ErrorIs(t, err, errClosed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		engine := tetris.NewSeeded(10, 20, 5)
		var out bytes.Buffer
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, newSession("x\n", engine, &out).Run(ctx))
		assert.Equal(t, 0, engine.Stats().Pieces)
	})
}
