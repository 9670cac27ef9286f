package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"xiangqi/internal/notation"
	"xiangqi/internal/score"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler() *Handler {
	return &Handler{games: game.NewManager()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/parse":
		h.handleParse(w, r)
	case "/api/format":
		h.handleFormat(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 允许空 body
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}
	g, err := h.games.NewGame(req.FEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pos := g.Pos
	writeJSON(w, NewGameResponse{
		GameID:     g.ID,
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: movesToDTO(pos.GenerateLegalMoves(), pos),
		Material:   score.Material(pos),
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var (
		g   *game.GameState
		mv  xiangqi.Move
		err error
	)
	switch {
	case req.Record != "":
		g, mv, err = h.games.PlayRecord(req.GameID, req.Record)
	case req.Move != nil:
		mv = dtoToMove(*req.Move)
		g, err = h.games.Play(req.GameID, mv)
	default:
		http.Error(w, "missing move or record", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	pos := g.Pos
	legal := pos.GenerateLegalMoves()
	played := MoveDTO{From: mv.From, To: mv.To, ICCS: mv.String()}
	if n := len(g.History); n > 0 {
		played.Record = g.History[n-1].Record
	}
	writeJSON(w, PlayResponse{
		Played:     played,
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: movesToDTO(legal, pos),
		Status:     status(pos, legal),
		Material:   score.Material(pos),
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	pos := g.Pos
	legal := pos.GenerateLegalMoves()
	history := make([]MoveDTO, len(g.History))
	for i, s := range g.History {
		history[i] = MoveDTO{From: s.Move.From, To: s.Move.To, ICCS: s.Move.String(), Record: s.Record}
	}
	writeJSON(w, StateResponse{
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: movesToDTO(legal, pos),
		History:    history,
		Status:     status(pos, legal),
		Material:   score.Material(pos),
	})
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	pos, err := positionOrInitial(req.Position)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}
	mv, err := notation.Resolve(req.Record, pos)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ParseResponse{Move: MoveDTO{From: mv.From, To: mv.To, ICCS: mv.String(), Record: req.Record}})
}

func (h *Handler) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	pos, err := positionOrInitial(req.Position)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}
	rec, err := notation.Format(dtoToMove(req.Move), pos)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, FormatResponse{Record: rec})
}

func positionOrInitial(fen string) (*xiangqi.Position, error) {
	if fen == "" {
		return xiangqi.NewInitialPosition(), nil
	}
	return xiangqi.DecodePosition(fen)
}

// 无子可走即输：被将军为 checkmate，否则 stalemate
func status(pos *xiangqi.Position, legal []xiangqi.Move) string {
	if len(legal) > 0 {
		return "ongoing"
	}
	if pos.IsInCheck(pos.SideToMove) {
		return "checkmate"
	}
	return "stalemate"
}

func writeError(w http.ResponseWriter, err error) {
	var ne *notation.Error
	switch {
	case errors.As(err, &ne):
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: ne.Error(), Kind: ne.Kind.String(), Count: ne.Count}); err != nil {
			log.Println("writeError error:", err)
		}
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, game.ErrIllegalMove):
		http.Error(w, "illegal move", http.StatusBadRequest)
	default:
		log.Printf("request failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
