package config_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, 500*time.Millisecond, c.StepInterval)
}

func TestRegisterFlags(t *testing.T) {
	c := config.Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)

	err := fs.Parse([]string{"-width", "12", "-height", "24", "-step", "250ms", "-seed", "7", "-sound", "-log-level", "debug"})
	require.NoError(t, err)

	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 24, c.Height)
	assert.Equal(t, 250*time.Millisecond, c.StepInterval)
	assert.Equal(t, uint64(7), c.Seed)
	assert.True(t, c.Sound)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 16*time.Millisecond, c.FrameInterval, "unset flags keep defaults")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		errs   []string
	}{
		{"narrow", func(c *config.Config) { c.Width = 3 }, []string{"width 3"}},
		{"tall", func(c *config.Config) { c.Height = 65 }, []string{"height 65"}},
		{"zero step", func(c *config.Config) { c.StepInterval = 0 }, []string{"step interval"}},
		{"negative frame", func(c *config.Config) { c.FrameInterval = -time.Second }, []string{"frame interval"}},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }, []string{"log level"}},
		{"several", func(c *config.Config) {
			c.Width = 0
			c.Height = 0
		}, []string{"width 0", "height 0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.modify(&c)
			err := c.Validate()
			require.Error(t, err)
			for _, msg := range tt.errs {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestNewEngine(t *testing.T) {
	c := config.Default()
	c.Width, c.Height, c.Seed = 8, 16, 3

	a, b := c.NewEngine(), c.NewEngine()
	assert.Equal(t, 8, a.Width())
	assert.Equal(t, 16, a.Height())
	assert.Equal(t, a.Active().Kind(), b.Active().Kind(), "seeded engines agree")
}

func TestNewLogger(t *testing.T) {
	t.Run("fallback writer", func(t *testing.T) {
		var buf bytes.Buffer
		c := config.Default()
		c.LogLevel = "warn"

		logger, closer, err := c.NewLogger(&buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("hidden")
		logger.WithFields(c.Fields()).Warn("shown")

		assert.Equal(t, log.WarnLevel, logger.GetLevel())
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "width=10")
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blockfall.log")
		c := config.Default()
		c.LogFile = path

		logger, closer, err := c.NewLogger(nil)
		require.NoError(t, err)
		logger.Info("to file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})

	t.Run("bad level", func(t *testing.T) {
		c := config.Default()
		c.LogLevel = "nope"
		_, _, err := c.NewLogger(nil)
		assert.Error(t, err)
	})
}
