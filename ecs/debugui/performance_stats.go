package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigil/ecs"
)

func NewPerformanceWindow(scheduler *ecs.Scheduler, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

func (ps *PerformanceWindow) Render(manager *ecs.ComponentManager) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	deltaTime := ps.timer.GetDeltaTime()
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := manager.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if ps.scheduler != nil {
		if imgui.TreeNodeStr("System Timings") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableSetupColumn("Last")
				imgui.TableHeadersRow()

				for _, sys := range ps.scheduler.Stats().Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(sys.Name)
					imgui.TableNextColumn()
					imgui.Text(sys.AvgDuration.Round(time.Microsecond).String())
					imgui.TableNextColumn()
					imgui.Text(sys.MaxDuration.Round(time.Microsecond).String())
					imgui.TableNextColumn()
					imgui.Text(sys.LastDuration.Round(time.Microsecond).String())
				}

				imgui.EndTable()
			}
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Type Index Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TypeStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, ti := range stats.TypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(ti.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", ti.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
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
