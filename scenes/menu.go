package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/quietwood/assets"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	if ms.ecs == nil {
		return
	}
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) Dispose() {
	ms.ecs = nil
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	onStart := func() {
		ms.sceneChanger.ChangeScene(NewForestScene(ms.sceneChanger, assets.DefaultLevel))
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(onStart, ms.sceneChanger.Quit))

	ms.ecs.AddRenderer(cfg.LayerUI, systems.DrawMenu)
}
