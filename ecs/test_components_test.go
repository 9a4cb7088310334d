package ecs_test

import "github.com/plus3/sigil/ecs"

// Common test component types and their tags.
var (
	TypePosition   = ecs.NewComponentType("Position")
	TypeVelocity   = ecs.NewComponentType("Velocity")
	TypeName       = ecs.NewComponentType("Name")
	TypeHealth     = ecs.NewComponentType("Health")
	TypePlayer     = ecs.NewComponentType("PlayerController")
	TypeAI         = ecs.NewComponentType("AI")
	TypeSignal     = ecs.NewComponentType("Signal")
	TypeScore      = ecs.NewComponentType("Score")
	TypeInventory  = ecs.NewComponentType("Inventory")
	TypeMarkerOnly = ecs.NewComponentType("MarkerOnly")
)

type Position struct {
	ecs.Owned
	X, Y float32
}

func (*Position) Type() ecs.ComponentType { return TypePosition }

type Velocity struct {
	ecs.Owned
	DX, DY float32
}

func (*Velocity) Type() ecs.ComponentType { return TypeVelocity }

type Name struct {
	ecs.Owned
	Value string
}

func (*Name) Type() ecs.ComponentType { return TypeName }

type Health struct {
	ecs.Owned
	Current int
	Max     int
}

func (*Health) Type() ecs.ComponentType { return TypeHealth }

type PlayerController struct {
	ecs.Owned
}

func (*PlayerController) Type() ecs.ComponentType { return TypePlayer }

type AI struct {
	ecs.Owned
	State int
}

func (*AI) Type() ecs.ComponentType { return TypeAI }

// Signal is used by the frame-ordering tests: one system writes Value,
// a later system derives Doubled from it.
type Signal struct {
	ecs.Owned
	Value   float64
	Doubled float64
}

func (*Signal) Type() ecs.ComponentType { return TypeSignal }

type Score struct {
	ecs.Owned
	Points int
}

func (*Score) Type() ecs.ComponentType { return TypeScore }

type Inventory struct {
	ecs.Owned
	Items []string
}

func (*Inventory) Type() ecs.ComponentType { return TypeInventory }

type MarkerOnly struct {
	ecs.Owned
}

func (*MarkerOnly) Type() ecs.ComponentType { return TypeMarkerOnly }
