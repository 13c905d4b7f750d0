package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/loop"
)

// PerformanceStats plots frame times and lists per-system timings for a scheduler.
type PerformanceStats struct {
	scheduler     *loop.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

// Record stores a frame time in the ring buffer.
func (ps *PerformanceStats) Record(dt time.Duration) {
	ps.frameHistory[ps.frameIndex] = float32(dt.Seconds() * 1000)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded history in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	ps.Record(ps.timer.Delta())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()
	avg := ps.AverageFrameTime()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
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

// Delta returns the time since the previous call.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
