package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/sigil/ecs"
)

type movementSystem struct {
	ecs.BaseSystem
	executeCount int
}

func newMovementSystem() *movementSystem {
	s := &movementSystem{}
	s.SetRequiredComponents(TypePosition, TypeVelocity)
	return s
}

func (s *movementSystem) Update(frame *ecs.Frame) {
	s.executeCount++
	s.BaseSystem.Update(frame)
}

func (s *movementSystem) ProcessEntity(e *ecs.Entity, dt float64) {
	pos, _ := ecs.Get[*Position](e, TypePosition)
	vel, _ := ecs.Get[*Velocity](e, TypeVelocity)
	pos.X += vel.DX * float32(dt)
	pos.Y += vel.DY * float32(dt)
}

type healthTotalSystem struct {
	ecs.BaseSystem
	executeCount int
	totalHealth  int
}

func newHealthTotalSystem() *healthTotalSystem {
	s := &healthTotalSystem{}
	s.SetRequiredComponents(TypeHealth)
	return s
}

func (s *healthTotalSystem) Update(frame *ecs.Frame) {
	s.executeCount++
	s.totalHealth = 0
	s.BaseSystem.Update(frame)
}

func (s *healthTotalSystem) ProcessEntity(e *ecs.Entity, dt float64) {
	h, _ := ecs.Get[*Health](e, TypeHealth)
	s.totalHealth += h.Current
}

// signalWriter sets Signal.Value on every matching entity.
type signalWriter struct {
	ecs.BaseSystem
	value float64
}

func newSignalWriter(value float64) *signalWriter {
	s := &signalWriter{value: value}
	s.SetRequiredComponents(TypeSignal)
	return s
}

func (s *signalWriter) ProcessEntity(e *ecs.Entity, dt float64) {
	sig, _ := ecs.Get[*Signal](e, TypeSignal)
	sig.Value = s.value
}

// signalDoubler derives Signal.Doubled from whatever Value it observes.
type signalDoubler struct {
	ecs.BaseSystem
}

func newSignalDoubler() *signalDoubler {
	s := &signalDoubler{}
	s.SetRequiredComponents(TypeSignal)
	return s
}

func (s *signalDoubler) ProcessEntity(e *ecs.Entity, dt float64) {
	sig, _ := ecs.Get[*Signal](e, TypeSignal)
	sig.Doubled = sig.Value * 2
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		movement := newMovementSystem()
		health := newHealthTotalSystem()
		scheduler.Register(movement)
		scheduler.Register(health)

		manager.NewEntity().AddComponent(&Position{}).AddComponent(&Velocity{DX: 1, DY: 2})
		manager.NewEntity().AddComponent(&Health{Current: 100, Max: 100})

		scheduler.Once(1.0)

		if movement.executeCount != 1 {
			t.Errorf("expected movement system to execute once, got %d", movement.executeCount)
		}
		if health.executeCount != 1 {
			t.Errorf("expected health system to execute once, got %d", health.executeCount)
		}

		scheduler.Once(1.0)

		if movement.executeCount != 2 {
			t.Errorf("expected movement system to execute twice, got %d", movement.executeCount)
		}
		if health.executeCount != 2 {
			t.Errorf("expected health system to execute twice, got %d", health.executeCount)
		}
	})

	t.Run("custom state persistence", func(t *testing.T) {
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		manager.NewEntity().AddComponent(&Health{Current: 50, Max: 100})
		manager.NewEntity().AddComponent(&Health{Current: 75, Max: 100})

		health := newHealthTotalSystem()
		scheduler.Register(health)

		scheduler.Once(1.0)
		if health.totalHealth != 125 {
			t.Errorf("expected totalHealth=125, got %d", health.totalHealth)
		}

		manager.NewEntity().AddComponent(&Health{Current: 25, Max: 100})

		scheduler.Once(1.0)
		if health.totalHealth != 150 {
			t.Errorf("expected totalHealth=150, got %d", health.totalHealth)
		}
	})

	t.Run("delta time propagation", func(t *testing.T) {
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		e := manager.NewEntity().
			AddComponent(&Position{}).
			AddComponent(&Velocity{DX: 10, DY: 20})

		scheduler.Register(newMovementSystem())
		scheduler.Once(0.5)

		pos, _ := ecs.Get[*Position](e, TypePosition)
		if pos.X != 5.0 || pos.Y != 10.0 {
			t.Errorf("expected position (5, 10), got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("registration order is load-bearing", func(t *testing.T) {
		// Writer before doubler: the doubler sees this frame's value.
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		sig := &Signal{Value: 1}
		manager.NewEntity().AddComponent(sig)

		scheduler.Register(newSignalWriter(5))
		scheduler.Register(newSignalDoubler())
		scheduler.Once(1.0)

		if sig.Doubled != 10 {
			t.Errorf("expected Doubled=10 with writer first, got %v", sig.Doubled)
		}

		// Doubler before writer: the doubler sees last frame's value.
		manager2 := ecs.NewComponentManager()
		scheduler2 := ecs.NewScheduler(manager2)

		sig2 := &Signal{Value: 1}
		manager2.NewEntity().AddComponent(sig2)

		scheduler2.Register(newSignalDoubler())
		scheduler2.Register(newSignalWriter(5))
		scheduler2.Once(1.0)

		if sig2.Doubled != 2 {
			t.Errorf("expected Doubled=2 with doubler first, got %v", sig2.Doubled)
		}
		if sig2.Value != 5 {
			t.Errorf("expected Value=5 after the writer ran, got %v", sig2.Value)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		manager.NewEntity().AddComponent(&Position{}).AddComponent(&Velocity{DX: 1})
		movement := newMovementSystem()
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if movement.executeCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("commands integration", func(t *testing.T) {
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		spawner := &spawnOnceSystem{}
		scheduler.Register(spawner)
		scheduler.Once(1.0)

		if !spawner.executed {
			t.Error("expected spawn system to execute")
		}
		if len(manager.EntitiesWith(TypePosition)) != 1 {
			t.Error("expected spawned entity to be visible after command flush")
		}
	})

	t.Run("stats", func(t *testing.T) {
		manager := ecs.NewComponentManager()
		scheduler := ecs.NewScheduler(manager)

		scheduler.Register(newMovementSystem())
		scheduler.Register(newHealthTotalSystem())
		scheduler.Once(1.0)
		scheduler.Once(1.0)

		stats := scheduler.Stats()
		if stats.SystemCount != 2 {
			t.Errorf("expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.TotalExecutions != 4 {
			t.Errorf("expected 4 total executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "movementSystem" {
			t.Errorf("unexpected system name %q", stats.Systems[0].Name)
		}
		if stats.Systems[0].ExecutionCount != 2 {
			t.Errorf("expected 2 executions, got %d", stats.Systems[0].ExecutionCount)
		}
	})
}

type spawnOnceSystem struct {
	executed bool
}

func (s *spawnOnceSystem) Update(frame *ecs.Frame) {
	if s.executed {
		return
	}
	s.executed = true
	frame.Commands.Spawn(&Position{X: 1, Y: 2})
}
