package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

// Step is one played move with the record it was written as.
type Step struct {
	Move   xiangqi.Move
	Record string
}

type GameState struct {
	ID        string
	Pos       *xiangqi.Position
	History   []Step
	CreatedAt time.Time
	UpdatedAt time.Time
}

// snapshot 复制一份，History 不与管理器共享
func (g *GameState) snapshot() *GameState {
	cp := *g
	cp.History = append([]Step(nil), g.History...)
	return &cp
}
