package debugui

import "github.com/plus3/sigil/ecs"

// SpawnDebugUI registers the ImguiSystem on the scheduler and creates one
// entity per debug window, each carrying an ImguiItem whose render closure
// drives that window. The scheduler may be nil; the performance window
// then omits system timings.
func SpawnDebugUI(manager *ecs.ComponentManager, scheduler *ecs.Scheduler) *EntityBrowserWindow {
	browser := NewEntityBrowserWindow(100)
	inspector := NewComponentInspectorWindow(browser)
	typeViewer := NewTypeIndexWindow()
	perf := NewPerformanceWindow(scheduler, 120)
	queries := NewQueryDebuggerWindow()

	if scheduler != nil {
		scheduler.Register(NewImguiSystem(manager))
	}

	spawnWindow(manager, func() { browser.Render(manager) })
	spawnWindow(manager, func() { inspector.Render(manager) })
	spawnWindow(manager, func() { typeViewer.Render(manager) })
	spawnWindow(manager, func() { perf.Render(manager) })
	spawnWindow(manager, func() { queries.Render(manager) })

	return browser
}

func spawnWindow(manager *ecs.ComponentManager, render func()) {
	manager.NewEntity().AddComponent(&ImguiItem{Render: render})
}
