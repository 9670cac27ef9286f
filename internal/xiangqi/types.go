package xiangqi

import "fmt"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceRook               // 车
	PieceKnight             // 马
	PieceCannon             // 炮
	PieceElephant           // 相 / 象
	PieceAdvisor            // 仕 / 士
	PieceKing               // 帅 / 将
	PiecePawn               // 兵 / 卒
)

func (pt PieceType) String() string {
	switch pt {
	case PieceRook:
		return "rook"
	case PieceKnight:
		return "knight"
	case PieceCannon:
		return "cannon"
	case PieceElephant:
		return "elephant"
	case PieceAdvisor:
		return "advisor"
	case PieceKing:
		return "king"
	case PiecePawn:
		return "pawn"
	default:
		return "none"
	}
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) String() string {
	if p == 0 {
		return "."
	}
	return string(pieceToChar(p))
}

type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// String 返回 ICCS 坐标，例如 h2e2
func (m Move) String() string {
	return SquareName(m.From) + SquareName(m.To)
}

// ParseMove 解析 ICCS 坐标 "h2e2"
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}
