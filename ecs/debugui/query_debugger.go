package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigil/ecs"
)

func NewQueryDebuggerWindow() *QueryDebuggerWindow {
	return &QueryDebuggerWindow{
		selectedTypes: make(map[ecs.ComponentType]bool),
	}
}

// Render lets the user tick component types and shows how many entities
// the resulting signature query matches right now.
func (qd *QueryDebuggerWindow) Render(manager *ecs.ComponentManager) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedTypes = make(map[ecs.ComponentType]bool)
	}

	indexed := manager.IndexedTypes()
	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].String() < indexed[j].String()
	})

	for _, tag := range indexed {
		selected := qd.selectedTypes[tag]
		if imgui.Checkbox(tag.String(), &selected) {
			if selected {
				qd.selectedTypes[tag] = true
			} else {
				delete(qd.selectedTypes, tag)
			}
		}
	}

	imgui.Separator()

	if len(qd.selectedTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	signature := make([]ecs.ComponentType, 0, len(qd.selectedTypes))
	for tag := range qd.selectedTypes {
		signature = append(signature, tag)
	}

	matching := manager.EntitiesWith(signature...)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Matching Entity IDs") {
		const perRow = 10
		for i, e := range matching {
			if i%perRow != 0 {
				imgui.SameLine()
			}
			imgui.Text(fmt.Sprintf("%d", e.ID()))
			if i >= 199 {
				imgui.Text(fmt.Sprintf("... and %d more", len(matching)-200))
				break
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}
