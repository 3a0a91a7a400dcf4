// Command blockfall plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/shell/line"
	"github.com/plus3/blockfall/shell/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	lineMode := flag.Bool("line", false, "Read one command per line instead of using the full-screen terminal.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := cfg.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	player, closePlayer := audio.Open(cfg.Sound, logger)
	defer closePlayer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := cfg.NewEngine()

	if *lineMode {
		session := &line.Session{
			In:     os.Stdin,
			Out:    os.Stdout,
			Engine: engine,
			Config: cfg,
			Player: player,
			Logger: logger,
			Clear:  true,
		}
		return session.Run(ctx)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	session := &term.Session{
		Screen: screen,
		Engine: engine,
		Config: cfg,
		Player: player,
		Logger: logger,
	}
	session.Run(ctx)
	return nil
}
