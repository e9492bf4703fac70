package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. Dispose releases whatever the scene
// created and must be safe to call more than once.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Dispose()
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}
