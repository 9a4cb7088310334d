package ecs_test

import (
	"testing"

	"github.com/plus3/sigil/ecs"
)

func BenchmarkNewEntity(b *testing.B) {
	manager := ecs.NewComponentManager()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		manager.NewEntity()
	}
}

func BenchmarkAddComponent(b *testing.B) {
	manager := ecs.NewComponentManager()
	entities := make([]*ecs.Entity, b.N)
	for i := range entities {
		entities[i] = manager.NewEntity()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entities[i].AddComponent(&Position{X: 1, Y: 2})
	}
}

func BenchmarkComponentLookup(b *testing.B) {
	manager := ecs.NewComponentManager()
	e := manager.NewEntity().
		AddComponent(&Position{}).
		AddComponent(&Velocity{}).
		AddComponent(&Health{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Component(TypeVelocity)
	}
}

func BenchmarkEntitiesWithTwoTypes(b *testing.B) {
	manager := ecs.NewComponentManager()
	for i := 0; i < 10000; i++ {
		e := manager.NewEntity().AddComponent(&Position{})
		if i%10 == 0 {
			e.AddComponent(&Velocity{})
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = manager.EntitiesWith(TypePosition, TypeVelocity)
	}
}

func BenchmarkEntitiesWithRareType(b *testing.B) {
	manager := ecs.NewComponentManager()
	for i := 0; i < 10000; i++ {
		manager.NewEntity().AddComponent(&Position{})
	}
	manager.NewEntity().AddComponent(&Position{}).AddComponent(&PlayerController{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = manager.EntitiesWith(TypePosition, TypePlayer)
	}
}

func BenchmarkFrame(b *testing.B) {
	manager := ecs.NewComponentManager()
	scheduler := ecs.NewScheduler(manager)
	scheduler.Register(newMovementSystem())

	for i := 0; i < 1000; i++ {
		manager.NewEntity().
			AddComponent(&Position{}).
			AddComponent(&Velocity{DX: 1, DY: 1})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(0.016)
	}
}

func BenchmarkAddRemoveChurn(b *testing.B) {
	manager := ecs.NewComponentManager()
	e := manager.NewEntity().AddComponent(&Position{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.AddComponent(&Velocity{})
		e.RemoveComponent(TypeVelocity)
	}
}
