package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// QuestBoardPhase tracks the panel's open/close transition.
type QuestBoardPhase int

const (
	QuestBoardClosed QuestBoardPhase = iota
	QuestBoardOpening
	QuestBoardOpen
	QuestBoardClosing
)

func (p QuestBoardPhase) String() string {
	switch p {
	case QuestBoardClosed:
		return "closed"
	case QuestBoardOpening:
		return "opening"
	case QuestBoardOpen:
		return "open"
	case QuestBoardClosing:
		return "closing"
	}
	return "unknown"
}

// QuestBoardData is the singleton puzzle panel. Progress runs from 0
// (hidden) to 1 (fully shown) and drives both scale and alpha.
type QuestBoardData struct {
	Visible  bool
	Phase    QuestBoardPhase
	Progress float32
	Tween    *gween.Tween
	OnClose  func()
}

var QuestBoard = donburi.NewComponentType[QuestBoardData]()
