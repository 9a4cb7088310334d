// Package debugui provides immediate-mode inspection windows for a live
// ComponentManager using Dear ImGui: an entity browser, a per-entity
// component inspector, a type-index viewer, a query debugger, and
// performance stats. Window render functions ride through the ECS as
// ImguiItem components and are deferred to the end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigil/ecs"
)

// TypeImguiItem tags entities that render ImGui widgets each frame.
var TypeImguiItem = ecs.NewComponentType("ImguiItem")

// ImguiItem is a component holding a Dear ImGui render function.
type ImguiItem struct {
	ecs.Owned
	Render func()
}

func (*ImguiItem) Type() ecs.ComponentType { return TypeImguiItem }

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Game input systems consult it to avoid fighting the UI over the mouse
// and keyboard.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem collects every ImguiItem and defers its render function to
// the end of the frame, after all gameplay systems have run. It also
// refreshes the ImguiInputState singleton.
type ImguiSystem struct {
	ecs.BaseSystem
	state *ecs.Singleton[ImguiInputState]
}

// NewImguiSystem creates the system and ensures the input-state singleton
// exists on the manager.
func NewImguiSystem(manager *ecs.ComponentManager) *ImguiSystem {
	s := &ImguiSystem{state: ecs.NewSingleton[ImguiInputState](manager)}
	s.SetRequiredComponents(TypeImguiItem)
	return s
}

// Update refreshes input capture state and queues every render function.
func (s *ImguiSystem) Update(frame *ecs.Frame) {
	if !s.Enabled() {
		return
	}

	state := s.state.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, e := range s.Entities() {
		item, ok := ecs.Get[*ImguiItem](e, TypeImguiItem)
		if ok && item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
