package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives the frame pipeline: it runs every registered system
// strictly sequentially in registration order, so system N's in-place
// mutations are visible to system N+1 within the same frame. Ordering is
// caller-controlled and load-bearing.
type Scheduler struct {
	manager     *ComponentManager
	systems     []System
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler over the given manager.
func NewScheduler(manager *ComponentManager) *Scheduler {
	return &Scheduler{
		manager: manager,
		systems: make([]System, 0),
	}
}

// Register appends a system to the pipeline, attaches the manager, wires
// the system's own ProcessEntity as its dispatch target, and invokes its
// Init hook once, before its first update.
func (s *Scheduler) Register(system System) {
	if holder, ok := system.(baseHolder); ok {
		b := holder.base()
		b.manager = s.manager
		if proc, ok := system.(EntityProcessor); ok {
			b.processor = proc
		}
	}

	if init, ok := system.(Initializer); ok {
		init.Init()
	}

	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time,
// then flushes the frame's deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.manager)

	for i, system := range s.systems {
		start := time.Now()
		system.Update(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.manager)
}

// Run executes frames at the given interval until the context is
// cancelled. Delta time is the measured wall-clock gap between ticks,
// passed through without clamping.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Destroy tears the pipeline down: every system's Destroy hook runs and
// the registration list is cleared. The scheduler must not run afterward.
func (s *Scheduler) Destroy() {
	for _, system := range s.systems {
		if fin, ok := system.(Finalizer); ok {
			fin.Destroy()
		}
	}
	s.systems = s.systems[:0]
	s.systemStats = s.systemStats[:0]
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
