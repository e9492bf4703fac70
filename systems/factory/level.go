package factory

import (
	"github.com/automoto/quietwood/archetypes"
	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named level and stores it on a new level entity.
func CreateLevel(ecs *ecs.ECS, levelPath string) (*donburi.Entry, error) {
	loaded, err := assets.LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{CurrentLevel: loaded})
	return level, nil
}
