package config

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func parseLevel(level string) (log.Level, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// NewLogger builds a logger writing to LogFile, or to fallback when no file
// is configured. The returned closer releases the file; it is a no-op otherwise.
func (c Config) NewLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if c.LogFile == "" {
		logger.SetOutput(fallback)
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Fields returns the settings as structured log fields.
func (c Config) Fields() log.Fields {
	return log.Fields{
		"width":  c.Width,
		"height": c.Height,
		"step":   c.StepInterval,
		"frame":  c.FrameInterval,
		"seed":   c.Seed,
		"sound":  c.Sound,
	}
}
