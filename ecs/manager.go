package ecs

import "reflect"

// ComponentManager is the authoritative registry behind signature queries:
// it owns the entity id counter, the entity registry, and a reverse index
// from component type tag to the entities currently holding that type.
// The index is kept in lockstep with each entity's own component table by
// the Entity add/remove methods, within the same call.
//
// The manager is built for a single-threaded, frame-driven loop; it does
// no locking of its own.
type ComponentManager struct {
	nextID   EntityID
	registry *typeIndex
	index    map[ComponentType]*typeIndex

	singletons     map[reflect.Type]any
	singletonOrder []reflect.Type
}

// NewComponentManager creates an empty manager. Entity ids start at 1 and
// strictly ascend for the manager's lifetime.
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		registry:   newTypeIndex(TypeInvalid),
		index:      make(map[ComponentType]*typeIndex),
		singletons: make(map[reflect.Type]any),
	}
}

// NewEntity creates and registers a fresh entity with no components and
// the active flag set.
func (m *ComponentManager) NewEntity() *Entity {
	m.nextID++
	e := newEntity(m.nextID, m)
	m.registry.add(e)
	return e
}

// Entity returns the live entity with the given id. Destroyed ids
// report false forever.
func (m *ComponentManager) Entity(id EntityID) (*Entity, bool) {
	return m.registry.members.Get(id)
}

// EntityCount returns the number of live (not destroyed) entities.
func (m *ComponentManager) EntityCount() int {
	return m.registry.size()
}

// Entities returns a snapshot of every live entity in creation order.
// Intended for tooling; systems should query by signature instead.
func (m *ComponentManager) Entities() []*Entity {
	out := make([]*Entity, 0, m.registry.size())
	for _, id := range m.registry.ids {
		if e, ok := m.registry.members.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesWith returns every entity whose component table contains all of
// the given tags. The result order is unspecified but stable within a
// single call. With zero tags it matches nothing: a query with no declared
// signature is treated as a configuration error, not "all entities".
func (m *ComponentManager) EntitiesWith(types ...ComponentType) []*Entity {
	if len(types) == 0 {
		return nil
	}

	// Walk the smallest index and probe the rest, so the cost tracks the
	// rarest component instead of the whole entity population.
	smallest := m.index[types[0]]
	if smallest == nil {
		return nil
	}
	for _, t := range types[1:] {
		ti := m.index[t]
		if ti == nil {
			return nil
		}
		if ti.size() < smallest.size() {
			smallest = ti
		}
	}

	result := make([]*Entity, 0, smallest.size())
	for _, id := range smallest.ids {
		if !m.hasAll(id, types) {
			continue
		}
		if e, ok := m.registry.members.Get(id); ok {
			result = append(result, e)
		}
	}
	return result
}

func (m *ComponentManager) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		ti := m.index[t]
		if ti == nil || !ti.contains(id) {
			return false
		}
	}
	return true
}

// registerComponent records the entity under the tag's index. Called by
// Entity.AddComponent in the same mutation, so the two structures cannot
// diverge.
func (m *ComponentManager) registerComponent(e *Entity, tag ComponentType) {
	ti := m.index[tag]
	if ti == nil {
		ti = newTypeIndex(tag)
		m.index[tag] = ti
	}
	ti.add(e)
}

// unregisterComponent drops the entity from the tag's index. Called by
// Entity.RemoveComponent and Entity.Destroy.
func (m *ComponentManager) unregisterComponent(e *Entity, tag ComponentType) {
	if ti := m.index[tag]; ti != nil {
		ti.remove(e.id)
	}
}

// releaseEntity retires a destroyed entity's id from the registry.
func (m *ComponentManager) releaseEntity(e *Entity) {
	m.registry.remove(e.id)
}

// IndexedTypes returns the tags that have ever been indexed on this
// manager, for stats and debug tooling. Order is unspecified.
func (m *ComponentManager) IndexedTypes() []ComponentType {
	out := make([]ComponentType, 0, len(m.index))
	for t := range m.index {
		out = append(out, t)
	}
	return out
}

func (m *ComponentManager) getSingleton(t reflect.Type) (any, bool) {
	v, ok := m.singletons[t]
	return v, ok
}

func (m *ComponentManager) putSingleton(t reflect.Type, v any) {
	if _, ok := m.singletons[t]; !ok {
		m.singletonOrder = append(m.singletonOrder, t)
	}
	m.singletons[t] = v
}
