package ecs

import "sync"

// ComponentType is a stable tag identifying a component kind.
// Tags are allocated once per name by NewComponentType; the zero value
// is reserved and never matches an attached component.
type ComponentType uint32

// TypeInvalid is the zero ComponentType. No component carries it.
const TypeInvalid ComponentType = 0

var componentTypes = struct {
	mu     sync.Mutex
	byName map[string]ComponentType
	names  []string
}{
	byName: make(map[string]ComponentType),
	names:  []string{"InvalidComponentType"},
}

// NewComponentType allocates a tag for the given component kind name.
// Calling it again with the same name returns the same tag, so component
// packages can declare their tags in package-level vars independently.
func NewComponentType(name string) ComponentType {
	componentTypes.mu.Lock()
	defer componentTypes.mu.Unlock()

	if t, ok := componentTypes.byName[name]; ok {
		return t
	}

	t := ComponentType(len(componentTypes.names))
	componentTypes.byName[name] = t
	componentTypes.names = append(componentTypes.names, name)
	return t
}

// String returns the name the tag was registered under.
func (t ComponentType) String() string {
	componentTypes.mu.Lock()
	defer componentTypes.mu.Unlock()

	if int(t) >= len(componentTypes.names) {
		return "UnknownComponentType"
	}
	return componentTypes.names[t]
}

// Component is a typed data record attached to at most one entity per tag.
// Concrete components embed Owned (which supplies the owner back-reference
// and satisfies the unexported bind method) and implement Type.
type Component interface {
	Type() ComponentType

	// Owner returns the id of the owning entity, or NilEntity when detached.
	Owner() EntityID

	bindOwner(EntityID)
}

// Owned carries a component's back-reference to its owning entity.
// The reference is an id, never an ownership link: the entity's component
// table is the sole ownership path.
type Owned struct {
	owner EntityID
}

// Owner returns the id of the entity this component is attached to,
// or NilEntity when the component is detached.
func (o *Owned) Owner() EntityID {
	return o.owner
}

func (o *Owned) bindOwner(id EntityID) {
	o.owner = id
}

// Get returns the entity's component for tag t asserted to the concrete
// type T, or the zero value and false when absent or of another type.
func Get[T Component](e *Entity, t ComponentType) (T, bool) {
	c, ok := e.Component(t).(T)
	return c, ok
}
