package ecs

// Commands buffers structural changes requested during a frame so the
// index is not reshaped while systems iterate query snapshots. The
// Scheduler flushes the buffer after the last system runs.
type Commands struct {
	spawns   []spawnCommand
	destroys []EntityID
	adds     []addComponentCommand
	removes  []removeComponentCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []Component
}

type addComponentCommand struct {
	entity    EntityID
	component Component
}

type removeComponentCommand struct {
	entity EntityID
	tag    ComponentType
}

// Spawn queues creation of a new entity carrying the given components.
func (c *Commands) Spawn(components ...Component) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues destruction of an entity.
func (c *Commands) Destroy(entity EntityID) {
	c.destroys = append(c.destroys, entity)
}

// AddComponent queues attaching a component to an existing entity.
func (c *Commands) AddComponent(entity EntityID, component Component) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// RemoveComponent queues detaching the component stored under tag.
func (c *Commands) RemoveComponent(entity EntityID, tag ComponentType) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, tag: tag})
}

// Defer queues an arbitrary function to run after all structural changes
// have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies the buffered operations against the manager and resets
// the buffer. Destroys are applied first and win over later adds or
// removes queued for the same entity in the same frame.
func (c *Commands) Flush(m *ComponentManager) {
	destroyed := make(map[EntityID]bool)

	for _, id := range c.destroys {
		if e, ok := m.Entity(id); ok {
			e.Destroy()
		}
		destroyed[id] = true
	}

	for _, cmd := range c.removes {
		if destroyed[cmd.entity] {
			continue
		}
		if e, ok := m.Entity(cmd.entity); ok {
			e.RemoveComponent(cmd.tag)
		}
	}

	for _, cmd := range c.adds {
		if destroyed[cmd.entity] {
			continue
		}
		if e, ok := m.Entity(cmd.entity); ok {
			e.AddComponent(cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		e := m.NewEntity()
		for _, component := range cmd.components {
			e.AddComponent(component)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
