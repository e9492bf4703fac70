package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// DefaultLevel is the level the forest scene loads.
const DefaultLevel = "levels/forest.tmx"

type PlayerSpawn struct {
	X float64
	Y float64
}

// SolidRect is a static collision rectangle.
type SolidRect struct {
	X, Y, Width, Height float64
}

// ObstacleSpawn places an interactable. X is the horizontal center and Y the
// bottom edge (feet) of the obstacle.
type ObstacleSpawn struct {
	X, Y float64
	Kind string
}

type Level struct {
	Name         string
	Width        int
	Height       int
	Solids       []SolidRect
	PlayerSpawns []PlayerSpawn
	Obstacles    []ObstacleSpawn
}

// LoadLevel parses a TMX level from the embedded level directory.
func LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   path.Base(levelPath),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case "Obstacles":
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if kind == "" {
					kind = o.Properties.GetString("kind")
				}
				level.Obstacles = append(level.Obstacles, ObstacleSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: kind,
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: %w", levelPath, ErrNoPlayerSpawn)
	}
	return level, nil
}
