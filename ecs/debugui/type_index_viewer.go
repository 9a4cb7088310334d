package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigil/ecs"
)

func NewTypeIndexWindow() *TypeIndexWindow {
	return &TypeIndexWindow{
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render shows one row per indexed component type with the number of
// entities currently holding that type.
func (tv *TypeIndexWindow) Render(manager *ecs.ComponentManager) {
	if !imgui.BeginV("Type Index Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := manager.CollectStats()
	breakdown := stats.TypeBreakdown

	maxEntityCount := 0
	for _, ti := range breakdown {
		if ti.EntityCount > maxEntityCount {
			maxEntityCount = ti.EntityCount
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("TypeIndexTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tv.sortColumn = int(spec.ColumnIndex())
			tv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		tv.sortBreakdown(breakdown)

		for _, ti := range breakdown {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", ti.Type))

			imgui.TableNextColumn()
			imgui.Text(ti.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", ti.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(ti.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("%d indexed types, %d entities", len(breakdown), stats.TotalEntityCount))

	imgui.End()
}

func (tv *TypeIndexWindow) sortBreakdown(breakdown []ecs.TypeIndexStats) {
	sort.Slice(breakdown, func(i, j int) bool {
		a, b := breakdown[i], breakdown[j]
		var less bool

		switch tv.sortColumn {
		case 0:
			less = a.Type < b.Type
		case 1:
			less = a.Name < b.Name
		case 2:
			less = a.EntityCount < b.EntityCount
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !tv.sortAscending {
			return !less
		}
		return less
	})
}
