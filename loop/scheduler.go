package loop

import (
	"context"
	"math"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats is a snapshot of frame and per-system timings.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type timing struct {
	name  string
	runs  int64
	min   time.Duration
	max   time.Duration
	last  time.Duration
	total time.Duration
}

func newTiming(system System) *timing {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &timing{name: t.Name(), min: math.MaxInt64}
}

func (t *timing) record(d time.Duration) {
	t.runs++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

func (t *timing) snapshot() SystemStats {
	s := SystemStats{
		Name:           t.name,
		ExecutionCount: t.runs,
		MinDuration:    t.min,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.runs > 0 {
		s.AvgDuration = t.total / time.Duration(t.runs)
	}
	return s
}

// Scheduler owns the engine for the duration of a session and executes
// systems in registration order, one frame at a time.
type Scheduler struct {
	engine  *tetris.Engine
	systems []System
	timings []*timing
	frames  int64
}

// NewScheduler creates a new scheduler driving the given engine.
func NewScheduler(engine *tetris.Engine) *Scheduler {
	return &Scheduler{engine: engine}
}

// Engine returns the engine driven by the scheduler.
func (s *Scheduler) Engine() *tetris.Engine {
	return s.engine
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.timings = append(s.timings, newTiming(system))
}

// Once runs every system with a frame of dt seconds, then flushes the frame's
// commands into the engine.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.engine)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	frame.Commands.Flush(s.engine)
	s.frames++
}

// Run calls Once on every tick of interval, passing the measured time since
// the previous tick, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.timings)),
	}
	for i, t := range s.timings {
		stats.Systems[i] = t.snapshot()
		stats.TotalExecutions += t.runs
	}
	return stats
}
