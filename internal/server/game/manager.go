package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame starts a game from fen, or from the initial position when fen is
// empty.
func (m *Manager) NewGame(fen string) (*GameState, error) {
	pos := xiangqi.NewInitialPosition()
	if fen != "" {
		var err error
		if pos, err = xiangqi.DecodePosition(fen); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       pos,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g.snapshot(), nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.snapshot(), nil
}

// Play applies a legal move given by squares.
func (m *Manager) Play(id string, mv xiangqi.Move) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := apply(g, mv); err != nil {
		return nil, err
	}
	return g.snapshot(), nil
}

// PlayRecord resolves record against the current position and plays it.
func (m *Manager) PlayRecord(id, record string) (*GameState, xiangqi.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, xiangqi.Move{}, ErrGameNotFound
	}
	mv, err := notation.Resolve(record, g.Pos)
	if err != nil {
		return nil, xiangqi.Move{}, err
	}
	if err := apply(g, mv); err != nil {
		return nil, mv, err
	}
	return g.snapshot(), mv, nil
}

// 调用方持有写锁
func apply(g *GameState, mv xiangqi.Move) error {
	if !g.Pos.IsLegal(mv) {
		return fmt.Errorf("%s: %w", mv, ErrIllegalMove)
	}
	rec, err := notation.Format(mv, g.Pos)
	if err != nil {
		return err
	}
	next, ok := g.Pos.ApplyMove(mv)
	if !ok {
		return fmt.Errorf("%s: %w", mv, ErrIllegalMove)
	}
	g.Pos = next
	g.History = append(g.History, Step{Move: mv, Record: rec})
	g.UpdatedAt = time.Now()
	return nil
}
