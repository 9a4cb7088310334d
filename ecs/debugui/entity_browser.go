package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigil/ecs"
)

type entityInfo struct {
	ID             ecs.EntityID
	Active         bool
	ComponentTypes []string
	ComponentCount int
}

type entityBrowserCache struct {
	entities        []entityInfo
	lastEntityCount int
	sortColumn      int
	sortAscending   bool
}

func NewEntityBrowserWindow(maxEntitiesPerPage int) *EntityBrowserWindow {
	return &EntityBrowserWindow{
		cache: &entityBrowserCache{
			lastEntityCount: -1,
			sortColumn:      0,
			sortAscending:   true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserWindow) Render(manager *ecs.ComponentManager) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(manager)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterType = ecs.TypeInvalid
		eb.currentPage = 0
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Active")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredEntities := eb.getFilteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filteredEntities) {
			endIdx = len(filteredEntities)
		}

		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			if entity.Active {
				imgui.Text("yes")
			} else {
				imgui.Text("no")
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	filteredEntities := eb.getFilteredEntities()

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

func (eb *EntityBrowserWindow) rebuildCacheIfNeeded(manager *ecs.ComponentManager) {
	currentEntityCount := manager.EntityCount()
	if eb.cache.lastEntityCount != currentEntityCount {
		eb.cache.entities = nil
		eb.cache.lastEntityCount = currentEntityCount
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(manager)
	}
}

func (eb *EntityBrowserWindow) rebuildCache(manager *ecs.ComponentManager) {
	live := manager.Entities()
	eb.cache.entities = make([]entityInfo, 0, len(live))

	for _, e := range live {
		tags := e.ComponentTypes()
		componentTypes := make([]string, len(tags))
		for i, t := range tags {
			componentTypes[i] = t.String()
		}

		eb.cache.entities = append(eb.cache.entities, entityInfo{
			ID:             e.ID(),
			Active:         e.Active(),
			ComponentTypes: componentTypes,
			ComponentCount: len(componentTypes),
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowserWindow) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = !a.Active && b.Active
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserWindow) getFilteredEntities() []entityInfo {
	if eb.filterText == "" && eb.filterType == ecs.TypeInvalid {
		return eb.cache.entities
	}

	filtered := make([]entityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)
	filterTypeName := eb.filterType.String()

	for _, entity := range eb.cache.entities {
		if eb.filterType != ecs.TypeInvalid {
			found := false
			for _, name := range entity.ComponentTypes {
				if name == filterTypeName {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}

		if eb.filterText != "" {
			idStr := fmt.Sprintf("%d", entity.ID)
			componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

			if !strings.Contains(idStr, filterLower) &&
				!strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

// SelectedEntity reports which entity row is currently selected, or
// NilEntity when nothing is.
func (eb *EntityBrowserWindow) SelectedEntity() ecs.EntityID {
	return eb.selectedEntityId
}
