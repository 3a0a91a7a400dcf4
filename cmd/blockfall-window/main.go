// Command blockfall-window plays the game in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/shell/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the Dear ImGui statistics overlay.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	player, closePlayer := audio.Open(cfg.Sound, logger)
	defer closePlayer()

	game := window.NewGame(cfg.NewEngine(), cfg, player, logger)

	if *debug {
		width, height := window.ScreenSize(cfg.Width, cfg.Height)
		backend := debugui_ebiten.NewImguiBackend(window.Title, width, height)
		input := &debugui.InputState{}
		stats := debugui.NewPerformanceStats(game.Scheduler(), 120)

		game.Scheduler().Register(&debugui.System{
			Items:      []debugui.Item{stats.Item()},
			InputState: input,
		})
		game.SetOverlay(backend)
		game.CaptureKeyboard = func() bool { return input.WantCaptureKeyboard }
	}

	return game.Run()
}
