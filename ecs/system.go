package ecs

// System is a unit of per-frame behavior, executed once per frame by the
// Scheduler in registration order.
type System interface {
	Update(frame *Frame)
}

// EntityProcessor is the per-entity extension point. Concrete systems
// embedding BaseSystem implement it to read and mutate component data;
// BaseSystem.Update dispatches it once per matching entity.
type EntityProcessor interface {
	ProcessEntity(e *Entity, dt float64)
}

// Initializer is the optional one-time setup hook, invoked by the
// Scheduler after the system is attached and before its first update.
type Initializer interface {
	Init()
}

// Finalizer is the optional teardown hook, invoked by Scheduler.Destroy.
type Finalizer interface {
	Destroy()
}

// BaseSystem provides the common system machinery: the required-component
// signature, the enabled flag, and the manager reference assigned at
// registration. Concrete systems embed it and implement ProcessEntity:
//
//	type MovementSystem struct {
//		ecs.BaseSystem
//	}
//
//	func NewMovementSystem() *MovementSystem {
//		s := &MovementSystem{}
//		s.SetRequiredComponents(TypePosition, TypeVelocity)
//		return s
//	}
//
//	func (s *MovementSystem) ProcessEntity(e *ecs.Entity, dt float64) { ... }
//
// The zero value is enabled and unattached.
type BaseSystem struct {
	manager   *ComponentManager
	required  []ComponentType
	disabled  bool
	processor EntityProcessor
}

func (s *BaseSystem) base() *BaseSystem { return s }

// Attach assigns the manager the system queries against. The Scheduler
// calls this at registration; call it directly only when driving a system
// without a scheduler.
func (s *BaseSystem) Attach(m *ComponentManager) {
	s.manager = m
}

// Manager returns the attached manager, or nil.
func (s *BaseSystem) Manager() *ComponentManager {
	return s.manager
}

// SetRequiredComponents declares the signature an entity must satisfy to
// be processed. Calling it again replaces the signature wholesale; it is
// configuration, not a per-frame operation.
func (s *BaseSystem) SetRequiredComponents(types ...ComponentType) {
	s.required = append(s.required[:0:0], types...)
}

// RequiredComponents returns a copy of the declared signature.
func (s *BaseSystem) RequiredComponents() []ComponentType {
	return append([]ComponentType(nil), s.required...)
}

// Enable resumes dispatch. Idempotent.
func (s *BaseSystem) Enable() {
	s.disabled = false
}

// Disable pauses the system: Update becomes a guaranteed no-op with zero
// query cost until Enable. Idempotent, and preserves all system state.
func (s *BaseSystem) Disable() {
	s.disabled = true
}

// Enabled reports whether Update dispatches.
func (s *BaseSystem) Enabled() bool {
	return !s.disabled
}

// Entities queries the manager for the declared signature. Without an
// attached manager it returns nothing, so Update degrades to a no-op.
func (s *BaseSystem) Entities() []*Entity {
	if s.manager == nil {
		return nil
	}
	return s.manager.EntitiesWith(s.required...)
}

// ProcessEntity is a no-op; concrete systems shadow it.
func (s *BaseSystem) ProcessEntity(e *Entity, dt float64) {}

// Init is a no-op; concrete systems shadow it for one-time setup.
func (s *BaseSystem) Init() {}

// Update queries matching entities and dispatches ProcessEntity once per
// entity in query order. The result set is a snapshot: components removed
// mid-frame by this or earlier systems are not re-filtered, so processors
// re-check presence where that matters.
func (s *BaseSystem) Update(frame *Frame) {
	if s.disabled {
		return
	}

	proc := s.processor
	if proc == nil {
		proc = s
	}
	for _, e := range s.Entities() {
		proc.ProcessEntity(e, frame.DeltaTime)
	}
}

// Destroy severs the manager reference. The system must not be updated
// afterward; Update degrades to a no-op if it is.
func (s *BaseSystem) Destroy() {
	s.manager = nil
}

// baseHolder is satisfied by anything embedding BaseSystem; the Scheduler
// uses it to attach the manager and wire the outer ProcessEntity.
type baseHolder interface {
	base() *BaseSystem
}
