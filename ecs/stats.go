package ecs

import "sort"

// ManagerStats is a point-in-time snapshot of the manager's population,
// used by the debug UI and the stress report.
type ManagerStats struct {
	TotalEntityCount   int
	ComponentTypeCount int
	SingletonCount     int
	TypeBreakdown      []TypeIndexStats
	SingletonTypes     []string
}

// TypeIndexStats describes one component type's index.
type TypeIndexStats struct {
	Type        ComponentType
	Name        string
	EntityCount int
}

// CollectStats gathers a stats snapshot. The breakdown is sorted by type
// name so output is stable across calls.
func (m *ComponentManager) CollectStats() *ManagerStats {
	stats := &ManagerStats{
		TotalEntityCount:   m.EntityCount(),
		ComponentTypeCount: len(m.index),
		SingletonCount:     len(m.singletons),
	}

	stats.TypeBreakdown = make([]TypeIndexStats, 0, len(m.index))
	for tag, ti := range m.index {
		stats.TypeBreakdown = append(stats.TypeBreakdown, TypeIndexStats{
			Type:        tag,
			Name:        tag.String(),
			EntityCount: ti.size(),
		})
	}
	sort.Slice(stats.TypeBreakdown, func(i, j int) bool {
		return stats.TypeBreakdown[i].Name < stats.TypeBreakdown[j].Name
	})

	stats.SingletonTypes = make([]string, 0, len(m.singletonOrder))
	for _, t := range m.singletonOrder {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}
