package ecs

// Frame carries one frame's context through the system pipeline: the
// elapsed time supplied by the driver (passed through unvalidated), the
// deferred-command buffer, and the manager being updated.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Manager   *ComponentManager
}

func newFrame(dt float64, manager *ComponentManager) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Manager:   manager,
	}
}
