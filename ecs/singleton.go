package ecs

import "reflect"

// Singleton provides access to a single data record held by the manager
// outside any entity. Use it for global game state, configuration, or
// other one-of-a-kind data that systems share.
type Singleton[T any] struct {
	manager *ComponentManager
	cached  *T
}

// NewSingleton returns an accessor for T's singleton on the given
// manager, creating it first if it does not exist. With an initializer
// the new singleton starts from that value, otherwise from the zero
// value. The singleton is guaranteed to exist after the call.
func NewSingleton[T any](manager *ComponentManager, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{manager: manager}
	if s.lookup() == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		manager.putSingleton(reflect.TypeFor[T](), &value)
	}
	return s
}

// Get returns a pointer to the singleton value, or nil when it has never
// been created on this manager.
func (s *Singleton[T]) Get() *T {
	if s.cached == nil {
		s.cached = s.lookup()
	}
	return s.cached
}

// Exists reports whether the singleton has been created.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) lookup() *T {
	if s.manager == nil {
		return nil
	}
	if v, ok := s.manager.getSingleton(reflect.TypeFor[T]()); ok {
		return v.(*T)
	}
	return nil
}
