// Package config holds the session settings shared by every front-end:
// field size, pacing, seeding, sound and logging.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

const (
	MinFieldSize = 4
	MaxFieldSize = 64
)

type Config struct {
	Width         int
	Height        int
	StepInterval  time.Duration // gravity
	FrameInterval time.Duration // render cadence
	Seed          uint64        // 0 picks a time-based sequence
	Sound         bool
	LogLevel      string
	LogFile       string // empty discards logs in interactive shells
}

// Default returns the classic 10x20 field with a half second gravity tick at
// roughly 60 frames per second.
func Default() Config {
	return Config{
		Width:         10,
		Height:        20,
		StepInterval:  500 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		LogLevel:      "info",
	}
}

// RegisterFlags binds every field to a flag on fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Playfield width in cells.")
	fs.IntVar(&c.Height, "height", c.Height, "Playfield height in cells.")
	fs.DurationVar(&c.StepInterval, "step", c.StepInterval, "Gravity interval between automatic steps.")
	fs.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "Interval between rendered frames.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Piece sequence seed; 0 picks one from the clock.")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Play sound cues.")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (panic, fatal, error, warn, info, debug, trace).")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Append logs to this file.")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width < MinFieldSize || c.Width > MaxFieldSize {
		errs = append(errs, fmt.Errorf("width %d out of range [%d, %d]", c.Width, MinFieldSize, MaxFieldSize))
	}
	if c.Height < MinFieldSize || c.Height > MaxFieldSize {
		errs = append(errs, fmt.Errorf("height %d out of range [%d, %d]", c.Height, MinFieldSize, MaxFieldSize))
	}
	if c.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("step interval must be positive, got %s", c.StepInterval))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NewEngine creates an engine for the configured field, seeded when Seed is set.
func (c Config) NewEngine() *tetris.Engine {
	if c.Seed == 0 {
		return tetris.New(c.Width, c.Height)
	}
	return tetris.NewSeeded(c.Width, c.Height, c.Seed)
}
