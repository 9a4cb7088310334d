package ecs

// EntityID uniquely identifies an entity for the lifetime of the process.
// Ids are assigned in ascending order by the ComponentManager and are
// never reused, including after the entity is destroyed.
type EntityID uint64

// NilEntity is the zero EntityID. It never identifies a live entity.
const NilEntity EntityID = 0

// Entity is a bare identity aggregating components. It holds no behavior
// of its own; systems mutate its components in place each frame.
type Entity struct {
	id        EntityID
	manager   *ComponentManager
	active    bool
	destroyed bool

	components map[ComponentType]Component
	order      []ComponentType
}

func newEntity(id EntityID, manager *ComponentManager) *Entity {
	return &Entity{
		id:         id,
		manager:    manager,
		active:     true,
		components: make(map[ComponentType]Component),
	}
}

// ID returns the entity's id.
func (e *Entity) ID() EntityID {
	return e.id
}

// Active reports the soft status flag. Deactivated entities stay fully
// queryable; how the flag is interpreted is a per-system policy.
func (e *Entity) Active() bool {
	return e.active
}

// Activate sets the active flag.
func (e *Entity) Activate() {
	if !e.destroyed {
		e.active = true
	}
}

// Deactivate clears the active flag without touching component storage.
func (e *Entity) Deactivate() {
	e.active = false
}

// Destroyed reports whether Destroy has been called on this entity.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// AddComponent attaches c under its type tag, silently replacing any
// component already stored under the same tag, and binds c's owner
// back-reference to this entity. Returns the entity for chaining.
// Adding to a destroyed entity is a no-op.
func (e *Entity) AddComponent(c Component) *Entity {
	if e.destroyed || c == nil || c.Type() == TypeInvalid {
		return e
	}

	tag := c.Type()
	if prev, ok := e.components[tag]; ok {
		prev.bindOwner(NilEntity)
	} else {
		e.order = append(e.order, tag)
	}

	e.components[tag] = c
	c.bindOwner(e.id)
	e.manager.registerComponent(e, tag)
	return e
}

// Component returns the component stored under tag t, or nil when absent.
func (e *Entity) Component(t ComponentType) Component {
	return e.components[t]
}

// HasComponent reports whether a component is stored under tag t.
func (e *Entity) HasComponent(t ComponentType) bool {
	_, ok := e.components[t]
	return ok
}

// HasComponents reports whether the entity has a component for every
// given tag. With no tags it reports true.
func (e *Entity) HasComponents(types ...ComponentType) bool {
	for _, t := range types {
		if _, ok := e.components[t]; !ok {
			return false
		}
	}
	return true
}

// RemoveComponent detaches the component stored under tag t, clearing its
// owner back-reference. Removing an absent tag is a no-op. Returns the
// entity for chaining.
func (e *Entity) RemoveComponent(t ComponentType) *Entity {
	c, ok := e.components[t]
	if !ok {
		return e
	}

	c.bindOwner(NilEntity)
	delete(e.components, t)
	e.dropOrder(t)
	e.manager.unregisterComponent(e, t)
	return e
}

// Components returns a snapshot of the attached components. The slice is
// in insertion order, but callers must not rely on ordering.
func (e *Entity) Components() []Component {
	out := make([]Component, 0, len(e.order))
	for _, t := range e.order {
		if c, ok := e.components[t]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// ComponentTypes returns the tags currently attached, in insertion order.
func (e *Entity) ComponentTypes() []ComponentType {
	out := make([]ComponentType, len(e.order))
	copy(out, e.order)
	return out
}

// Destroy detaches every component, deactivates the entity, and retires
// its id. The entity drops out of all queries immediately; further
// operations on it are no-ops.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}

	for t, c := range e.components {
		c.bindOwner(NilEntity)
		e.manager.unregisterComponent(e, t)
	}
	e.components = make(map[ComponentType]Component)
	e.order = nil
	e.active = false
	e.destroyed = true
	e.manager.releaseEntity(e)
}

func (e *Entity) dropOrder(t ComponentType) {
	for i, tag := range e.order {
		if tag == t {
			e.order = append(e.order[:i], e.order[i+1:]...)
			return
		}
	}
}
