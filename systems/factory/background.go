package factory

import (
	"github.com/automoto/quietwood/archetypes"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackgroundLayers spawns one entity per configured layer, back-to-front.
func CreateBackgroundLayers(ecs *ecs.ECS) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(cfg.Background.Layers))
	for i, layer := range cfg.Background.Layers {
		entry := archetypes.ParallaxLayer.SpawnOnLayer(ecs, cfg.LayerBackground)
		components.ParallaxLayer.SetValue(entry, components.ParallaxLayerData{
			Texture: layer.Texture,
			Mode:    layer.Mode,
			Speed:   layer.Speed,
			Z:       i,
		})
		entries = append(entries, entry)
	}
	return entries
}
