package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/sigil/ecs"
)

var (
	TypeTransform = ecs.NewComponentType("Transform")
	TypeSpeed     = ecs.NewComponentType("Speed")
	TypeHitpoints = ecs.NewComponentType("Hitpoints")
)

type Transform struct {
	ecs.Owned
	X, Y float32
}

func (*Transform) Type() ecs.ComponentType { return TypeTransform }

type Speed struct {
	ecs.Owned
	DX, DY float32
}

func (*Speed) Type() ecs.ComponentType { return TypeSpeed }

type Hitpoints struct {
	ecs.Owned
	Current, Max int
}

func (*Hitpoints) Type() ecs.ComponentType { return TypeHitpoints }

type PhysicsSystem struct {
	ecs.BaseSystem
}

func NewPhysicsSystem() *PhysicsSystem {
	s := &PhysicsSystem{}
	s.SetRequiredComponents(TypeTransform, TypeSpeed)
	return s
}

func (s *PhysicsSystem) ProcessEntity(e *ecs.Entity, dt float64) {
	tr, _ := ecs.Get[*Transform](e, TypeTransform)
	sp, _ := ecs.Get[*Speed](e, TypeSpeed)
	tr.X += sp.DX * float32(dt)
	tr.Y += sp.DY * float32(dt)
}

type HealingSystem struct {
	ecs.BaseSystem
	RegenRate float32
}

func NewHealingSystem(regenRate float32) *HealingSystem {
	s := &HealingSystem{RegenRate: regenRate}
	s.SetRequiredComponents(TypeHitpoints)
	return s
}

func (s *HealingSystem) ProcessEntity(e *ecs.Entity, dt float64) {
	hp, _ := ecs.Get[*Hitpoints](e, TypeHitpoints)
	if hp.Current < hp.Max {
		hp.Current += int(s.RegenRate * float32(dt))
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
	}
}

// ExampleScheduler demonstrates building a game loop with multiple
// systems. Systems run in registration order each frame, so an earlier
// system's in-place mutations are visible to every later one.
func ExampleScheduler() {
	manager := ecs.NewComponentManager()

	manager.NewEntity().
		AddComponent(&Transform{X: 0, Y: 0}).
		AddComponent(&Speed{DX: 10, DY: 5}).
		AddComponent(&Hitpoints{Current: 80, Max: 100})
	manager.NewEntity().
		AddComponent(&Transform{X: 100, Y: 100}).
		AddComponent(&Speed{DX: -5, DY: -5}).
		AddComponent(&Hitpoints{Current: 50, Max: 100})

	scheduler := ecs.NewScheduler(manager)
	scheduler.Register(NewPhysicsSystem())
	scheduler.Register(NewHealingSystem(10))

	scheduler.Once(1.0)

	fmt.Println("After one frame:")
	for _, e := range manager.EntitiesWith(TypeTransform, TypeHitpoints) {
		tr, _ := ecs.Get[*Transform](e, TypeTransform)
		hp, _ := ecs.Get[*Hitpoints](e, TypeHitpoints)
		fmt.Printf("Position: (%.0f, %.0f), Health: %d/%d\n",
			tr.X, tr.Y, hp.Current, hp.Max)
	}

	// Output:
	// After one frame:
	// Position: (10, 5), Health: 90/100
	// Position: (95, 95), Health: 60/100
}

// ExampleScheduler_Run demonstrates running a continuous game loop. Run
// blocks and executes frames at a fixed interval until the context is
// cancelled, measuring delta time between ticks.
func ExampleScheduler_Run() {
	manager := ecs.NewComponentManager()
	manager.NewEntity().AddComponent(&Transform{}).AddComponent(&Speed{DX: 1, DY: 1})

	scheduler := ecs.NewScheduler(manager)
	scheduler.Register(NewPhysicsSystem())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}

// ExampleBaseSystem_Disable demonstrates pausing a system: Update becomes
// a guaranteed no-op until Enable, with all system state preserved.
func ExampleBaseSystem_Disable() {
	manager := ecs.NewComponentManager()
	e := manager.NewEntity().
		AddComponent(&Transform{}).
		AddComponent(&Speed{DX: 1, DY: 0})

	scheduler := ecs.NewScheduler(manager)
	physics := NewPhysicsSystem()
	scheduler.Register(physics)

	physics.Disable()
	scheduler.Once(1.0)

	tr, _ := ecs.Get[*Transform](e, TypeTransform)
	fmt.Printf("paused: x=%.0f\n", tr.X)

	physics.Enable()
	scheduler.Once(1.0)
	fmt.Printf("resumed: x=%.0f\n", tr.X)

	// Output:
	// paused: x=0
	// resumed: x=1
}
