package record

import (
	"errors"
	"fmt"

	"xiangqi/internal/notation"
	"xiangqi/internal/score"
	"xiangqi/internal/xiangqi"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrWrongSide   = errors.New("piece does not belong to side to move")
)

// Ply is one resolved move of a game.
type Ply struct {
	Index     int // 从 1 开始
	Record    string
	Move      xiangqi.Move
	Side      xiangqi.Side
	FENBefore string
	Hash      uint64 // 走子后的局面
	Material  int    // 走子后，红方为正
}

// StartPosition returns the position given by the FEN header, or the
// initial position.
func StartPosition(g *Game) (*xiangqi.Position, error) {
	fen := g.Header("FEN")
	if fen == "" {
		return xiangqi.NewInitialPosition(), nil
	}
	return xiangqi.DecodePosition(fen)
}

// Replay resolves every record of g in order. With strict set each move
// must also be legal; otherwise only the mover's colour is checked.
// On error the plies resolved so far are returned with it.
func Replay(g *Game, strict bool) ([]Ply, *xiangqi.Position, error) {
	pos, err := StartPosition(g)
	if err != nil {
		return nil, nil, err
	}
	plies := make([]Ply, 0, len(g.Moves))
	for i, rec := range g.Moves {
		m, err := notation.Resolve(rec, pos)
		if err != nil {
			return plies, pos, fmt.Errorf("ply %d: %w", i+1, err)
		}
		if strict && !pos.IsLegal(m) {
			return plies, pos, fmt.Errorf("ply %d %s (%s): %w", i+1, rec, m, ErrIllegalMove)
		}
		before := pos.Encode()
		side := pos.SideToMove
		next, ok := pos.ApplyMove(m)
		if !ok {
			return plies, pos, fmt.Errorf("ply %d %s (%s): %w", i+1, rec, m, ErrWrongSide)
		}
		pos = next
		plies = append(plies, Ply{
			Index:     i + 1,
			Record:    rec,
			Move:      m,
			Side:      side,
			FENBefore: before,
			Hash:      pos.Hash,
			Material:  score.Material(pos),
		})
	}
	return plies, pos, nil
}
