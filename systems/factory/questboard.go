package factory

import (
	"github.com/automoto/quietwood/archetypes"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateQuestBoard spawns the closed quest board panel.
func CreateQuestBoard(ecs *ecs.ECS) *donburi.Entry {
	board := archetypes.QuestBoard.SpawnOnLayer(ecs, cfg.LayerUI)
	components.QuestBoard.SetValue(board, components.QuestBoardData{
		Phase: components.QuestBoardClosed,
	})
	return board
}

// DestroyQuestBoard removes the panel if it exists. A pending close callback
// is dropped.
func DestroyQuestBoard(ecs *ecs.ECS) {
	entry, ok := components.QuestBoard.First(ecs.World)
	if !ok || !entry.Valid() {
		return
	}
	components.QuestBoard.Get(entry).OnClose = nil
	entry.Remove()
}
