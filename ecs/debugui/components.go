package debugui

import (
	"github.com/plus3/sigil/ecs"
)

type EntityBrowserWindow struct {
	cache              *entityBrowserCache
	selectedEntityId   ecs.EntityID
	filterText         string
	filterType         ecs.ComponentType
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorWindow struct {
	browser *EntityBrowserWindow
}

type TypeIndexWindow struct {
	sortColumn    int
	sortAscending bool
}

type PerformanceWindow struct {
	scheduler     *ecs.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

type QueryDebuggerWindow struct {
	selectedTypes map[ecs.ComponentType]bool
}
