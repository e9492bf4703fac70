package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/automoto/quietwood/tags"
	"github.com/automoto/quietwood/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// vignetteStrength is how dark the screen corners get.
const vignetteStrength = 0.45

// ForestScene is the playable level: the player, the parallax forest and the
// sleeping creature with its quest board.
type ForestScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	once         sync.Once

	questBoard *ui.QuestBoardUI
	// world is the render target the vignette pass reads from.
	world *ebiten.Image
}

// NewForestScene creates the scene for the level at levelPath. The level is
// loaded on the first Update.
func NewForestScene(sc SceneChanger, levelPath string) *ForestScene {
	return &ForestScene{sceneChanger: sc, levelPath: levelPath}
}

func (fs *ForestScene) Update() {
	fs.once.Do(func() {
		if err := fs.configure(); err != nil {
			log.Error("forest scene setup failed, returning to menu", "level", fs.levelPath, "err", err)
			fs.Dispose()
			fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger))
		}
	})
	if fs.ecs == nil {
		return
	}
	fs.ecs.Update()
}

func (fs *ForestScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	if assets.VignetteShader == nil {
		fs.ecs.Draw(screen)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if fs.world == nil || fs.world.Bounds().Dx() != w || fs.world.Bounds().Dy() != h {
		fs.world = ebiten.NewImage(w, h)
	}
	fs.world.Clear()
	fs.ecs.Draw(fs.world)

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = fs.world
	op.Uniforms = map[string]any{
		"Strength": float32(vignetteStrength),
	}
	screen.DrawRectShader(w, h, assets.VignetteShader, op)
}

// Dispose tears down the obstacles and the quest board. Safe to call twice.
func (fs *ForestScene) Dispose() {
	if fs.ecs == nil {
		return
	}

	var obstacles []*donburi.Entry
	tags.Obstacle.Each(fs.ecs.World, func(entry *donburi.Entry) {
		obstacles = append(obstacles, entry)
	})
	for _, entry := range obstacles {
		factory.DestroyObstacle(fs.ecs, entry)
	}
	factory.DestroyQuestBoard(fs.ecs)

	if fs.world != nil {
		fs.world.Deallocate()
		fs.world = nil
	}
	fs.questBoard = nil
	fs.ecs = nil
}

func (fs *ForestScene) backToMenu() {
	fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger))
}

func (fs *ForestScene) configure() error {
	e := ecs.NewECS(donburi.NewWorld())
	if err := buildForest(e, fs.levelPath); err != nil {
		return err
	}

	fs.questBoard = ui.NewQuestBoardUI(e)

	// Input is polled once, before anything reads it.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewMenuReturn(fs.backToMenu))
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateBackground)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateObjects)
	// Obstacles claim interact before the quest board sees it.
	e.AddSystem(systems.UpdateObstacles)
	e.AddSystem(systems.UpdateObstacleAnimations)
	e.AddSystem(systems.UpdateQuestBoard)
	e.AddSystem(fs.updateQuestBoardUI)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	e.AddRenderer(cfg.LayerWorld, systems.DrawLevel)
	e.AddRenderer(cfg.LayerWorld, systems.DrawAnimated)
	e.AddRenderer(cfg.LayerWorld, systems.DrawSprites)
	e.AddRenderer(cfg.LayerUI, systems.DrawHUD)
	e.AddRenderer(cfg.LayerUI, fs.drawQuestBoard)
	e.AddRenderer(cfg.LayerUI, systems.DrawDebug)

	fs.ecs = e
	return nil
}

func (fs *ForestScene) updateQuestBoardUI(e *ecs.ECS) {
	if fs.questBoard != nil {
		fs.questBoard.Update(e)
	}
}

func (fs *ForestScene) drawQuestBoard(e *ecs.ECS, screen *ebiten.Image) {
	if fs.questBoard != nil {
		fs.questBoard.Draw(e, screen)
	}
}

// buildForest loads the level and spawns everything in it.
func buildForest(e *ecs.ECS, levelPath string) error {
	// Create the level entity and load level data FIRST.
	level, err := factory.CreateLevel(e, levelPath)
	if err != nil {
		return err
	}
	levelData := components.Level.Get(level).CurrentLevel
	if len(levelData.PlayerSpawns) == 0 {
		return fmt.Errorf("level %s: %w", levelPath, assets.ErrNoPlayerSpawn)
	}

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(e, levelData.Width, levelData.Height, 16, 16)

	for _, solid := range levelData.Solids {
		factory.CreateWall(e, solid.X, solid.Y, solid.Width, solid.Height)
	}

	factory.CreateBackgroundLayers(e)

	spawn := levelData.PlayerSpawns[0]
	factory.CreatePlayer(e, spawn.X, spawn.Y)
	factory.CreateCamera(e, spawn.X, spawn.Y)
	systems.SnapCamera(e)

	created := 0
	for _, obstacle := range levelData.Obstacles {
		if factory.CreateObstacle(e, obstacle) != nil {
			created++
		}
	}
	if created == 0 {
		log.Warn("level has no interactable obstacles", "level", levelPath)
	}
	return nil
}
