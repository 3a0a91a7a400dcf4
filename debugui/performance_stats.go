package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// frameHistory is a fixed ring of frame times in milliseconds.
type frameHistory struct {
	samples []float32
	index   int
}

func newFrameHistory(size int) *frameHistory {
	return &frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
}

func (h *frameHistory) average() float32 {
	var total float32
	for _, ms := range h.samples {
		total += ms
	}
	return total / float32(len(h.samples))
}

// PerformanceStats shows engine counters, frame times and per-system timings.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	history   *frameHistory
	timer     *FrameTimer
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   newFrameHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

// Item returns the stats window as an overlay item.
func (ps *PerformanceStats) Item() Item {
	return Item{Render: ps.Render}
}

func (ps *PerformanceStats) Render() {
	ps.history.push(ps.timer.GetDeltaTime() * 1000.0)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := ps.scheduler.Engine()
	stats := engine.Stats()
	imgui.Text(fmt.Sprintf("Score: %d", engine.Score()))
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces))
	imgui.Text(fmt.Sprintf("Lines: %d (last %d)", stats.Lines, stats.LastClear))
	imgui.Text(fmt.Sprintf("Settled fragments: %d", len(engine.Settled())))
	imgui.Text(fmt.Sprintf("Game over: %t", engine.IsGameOver()))

	avg := ps.history.average()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range ps.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
