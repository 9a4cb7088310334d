package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sigil/ecs"
	"github.com/plus3/sigil/ecs/debugui"
	debugui_ebiten "github.com/plus3/sigil/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and drives the ECS frame loop with ImGui
// rendering layered on top.
type Game struct {
	manager      *ecs.ComponentManager
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// Begin the ImGui frame before any system queues render calls
	g.imguiBackend.Get().BeginFrame()

	g.scheduler.Once(1.0 / 60.0)

	g.imguiBackend.Get().EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create the Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	manager := ecs.NewComponentManager()

	// Register the backend as a singleton shared with game systems
	ecs.NewSingleton[debugui_ebiten.ImguiBackend](manager, debugui_ebiten.ImguiBackend{
		EbitenBackend: imguiBackend,
	})

	// A custom window alongside the stock debug windows
	manager.NewEntity().AddComponent(&debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	scheduler := ecs.NewScheduler(manager)
	debugui.SpawnDebugUI(manager, scheduler)

	game := &Game{
		manager:      manager,
		scheduler:    scheduler,
		imguiBackend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](manager),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
