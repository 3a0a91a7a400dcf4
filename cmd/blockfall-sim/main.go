// Command blockfall-sim lets the bot play headless games for a fixed time and
// prints a report of scores and frame timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/bot"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-sim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the simulation should run for.")
	actionsPerFrame := flag.Int("actions-per-frame", 0, "Bot actions applied per frame; 0 applies a whole plan at once.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	engine := cfg.NewEngine()
	player := &bot.System{
		Planner:         bot.NewPlanner(),
		ActionsPerFrame: *actionsPerFrame,
		AutoReset:       true,
	}
	counter := &gameCounter{}

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(player)
	scheduler.Register(&loop.LogSystem{Logger: logger})
	scheduler.Register(counter)

	report := &Report{
		Duration:       *duration,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.WithFields(log.Fields{
		"duration": *duration,
		"width":    cfg.Width,
		"height":   cfg.Height,
	}).Info("simulation started")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = scheduler.GetStats().Frames
	report.UpdateTime.Finalize()
	report.Scores = player.Scores
	report.Pieces = counter.pieces + engine.Stats().Pieces
	report.Lines = counter.lines + engine.Stats().Lines
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.WithField("games", len(report.Scores)).Info("simulation finished")

	fmt.Println("--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}

// gameCounter accumulates the counters of finished games, which a reset
// zeroes on the engine.
type gameCounter struct {
	pieces int
	lines  int
}

func (c *gameCounter) Execute(frame *loop.Frame) {
	for _, a := range frame.Commands.Pending() {
		if a == loop.ActionReset {
			stats := frame.Engine.Stats()
			c.pieces += stats.Pieces
			c.lines += stats.Lines
			return
		}
	}
}
