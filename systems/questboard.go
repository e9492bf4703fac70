package systems

import (
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateQuestBoard returns the panel, creating it on first use.
func getOrCreateQuestBoard(e *ecs.ECS) *components.QuestBoardData {
	entry, ok := components.QuestBoard.First(e.World)
	if !ok {
		entry = factory.CreateQuestBoard(e)
	}
	return components.QuestBoard.Get(entry)
}

// QuestBoardState returns the panel if it has been created.
func QuestBoardState(e *ecs.ECS) (*components.QuestBoardData, bool) {
	entry, ok := components.QuestBoard.First(e.World)
	if !ok {
		return nil, false
	}
	return components.QuestBoard.Get(entry), true
}

func IsQuestBoardVisible(e *ecs.ECS) bool {
	board, ok := QuestBoardState(e)
	return ok && board.Visible
}

// OpenQuestBoard shows the panel and plays the open transition. onClose
// replaces any earlier callback. It returns false and changes nothing while
// the panel is visible.
func OpenQuestBoard(e *ecs.ECS, onClose func()) bool {
	board := getOrCreateQuestBoard(e)
	if board.Visible {
		return false
	}

	board.OnClose = onClose
	board.Visible = true
	board.Phase = components.QuestBoardOpening
	board.Progress = 0
	board.Tween = gween.New(0, 1, float32(cfg.QuestBoard.FadeInSeconds), ease.OutCubic)
	return true
}

// CloseQuestBoard starts the close transition from the current progress.
// The callback fires from UpdateQuestBoard once the transition ends, never
// from here. Closed or already closing panels are left alone.
func CloseQuestBoard(e *ecs.ECS) bool {
	board, ok := QuestBoardState(e)
	if !ok || !board.Visible || board.Phase == components.QuestBoardClosing {
		return false
	}

	board.Phase = components.QuestBoardClosing
	board.Tween = gween.New(board.Progress, 0, float32(cfg.QuestBoard.FadeOutSeconds), ease.InCubic)
	return true
}

// UpdateQuestBoard advances the transition by one tick and closes the panel
// on interact once it is fully open.
func UpdateQuestBoard(e *ecs.ECS) {
	board, ok := QuestBoardState(e)
	if !ok {
		return
	}

	if board.Tween != nil {
		value, finished := board.Tween.Update(1 / float32(cfg.C.TPS))
		board.Progress = value
		if finished {
			board.Tween = nil
			switch board.Phase {
			case components.QuestBoardOpening:
				board.Phase = components.QuestBoardOpen
				board.Progress = 1
			case components.QuestBoardClosing:
				finishClose(board)
			}
		}
	}

	if board.Phase == components.QuestBoardOpen && IsInteractPressed(getOrCreateInput(e)) {
		CloseQuestBoard(e)
	}
}

func finishClose(board *components.QuestBoardData) {
	board.Visible = false
	board.Phase = components.QuestBoardClosed
	board.Progress = 0

	onClose := board.OnClose
	board.OnClose = nil
	if onClose != nil {
		onClose()
	}
}

// QuestBoardTransform returns the scale and alpha the panel is drawn with.
func QuestBoardTransform(board *components.QuestBoardData) (scale, alpha float64) {
	p := float64(board.Progress)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	start := cfg.QuestBoard.StartScale
	return start + (1-start)*p, p
}
