// Package ebiten bridges the Dear ImGui debug windows into an Ebiten game
// loop. The backend is stored as a manager singleton so systems and render
// code share the one instance.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call
// BeginFrame before running the scheduler and EndFrame after, then Draw
// from the game's Draw callback.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
