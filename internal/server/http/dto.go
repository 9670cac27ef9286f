package httpserver

import (
	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构，Record 为中文记谱
type MoveDTO struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	ICCS   string `json:"iccs,omitempty"`
	Record string `json:"record,omitempty"`
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{From: m.From, To: m.To}
}

// NewGame 请求，FEN 为空时从初始局面开始
type NewGameRequest struct {
	FEN string `json:"fen"`
}

type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`    // FEN 字符串
	ToMove     int       `json:"to_move"`     // 0=红(w),1=黑(b)
	LegalMoves []MoveDTO `json:"legal_moves"` // 当前所有可走棋
	Material   int       `json:"material"`
}

// Play 请求：Move 与 Record 二选一，Record 优先
type PlayRequest struct {
	GameID string   `json:"game_id"`
	Move   *MoveDTO `json:"move,omitempty"`
	Record string   `json:"record,omitempty"`
}

type PlayResponse struct {
	Played     MoveDTO   `json:"played"`
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"` // "ongoing" / "checkmate" / "stalemate"
	Material   int       `json:"material"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []MoveDTO `json:"history"`
	Status     string    `json:"status"`
	Material   int       `json:"material"`
}

// Parse：在给定局面上解析一条记谱
type ParseRequest struct {
	Position string `json:"position"`
	Record   string `json:"record"`
}

type ParseResponse struct {
	Move MoveDTO `json:"move"`
}

// Format：把坐标招法写成记谱
type FormatRequest struct {
	Position string  `json:"position"`
	Move     MoveDTO `json:"move"`
}

type FormatResponse struct {
	Record string `json:"record"`
}

// 记谱错误以 JSON 返回，Kind 形如 AMBIGUOUS
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Count int    `json:"count,omitempty"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func moveToDTO(m xiangqi.Move, pos *xiangqi.Position) MoveDTO {
	d := MoveDTO{From: m.From, To: m.To, ICCS: m.String()}
	if pos != nil {
		if rec, err := notation.Format(m, pos); err == nil {
			d.Record = rec
		}
	}
	return d
}

func movesToDTO(ms []xiangqi.Move, pos *xiangqi.Position) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m, pos)
	}
	return out
}
