package xiangqi

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界在第 4、5 行之间：0..4 为黑方半场，5..9 为红方半场
	RiverRow = 5
)

func Index(row, col int) int { return row*Cols + col }
func RowOf(sq int) int         { return sq / Cols }
func ColOf(sq int) int         { return sq % Cols }

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func Opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 前进方向：红向上(-1)，黑向下(+1)
func ForwardDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= Rows-3 && row <= Rows-1
	}
	return false
}

// SquareName 把格子编号转成 ICCS 坐标：列 a..i，行 0..9 从红方底线数起
func SquareName(sq int) string {
	if sq < 0 || sq >= NumSquares {
		return "??"
	}
	return string(rune('a'+ColOf(sq))) + string(rune('0'+(Rows-1-RowOf(sq))))
}

func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return -1, fmt.Errorf("invalid square %q", s)
	}
	col := int(s[0]) - 'a'
	rank := int(s[1]) - '0'
	if !OnBoard(Rows-1-rank, col) {
		return -1, fmt.Errorf("invalid square %q", s)
	}
	return Index(Rows-1-rank, col), nil
}

var letterToPieceType = map[rune]PieceType{
	'r': PieceRook,     // 车
	'n': PieceKnight,   // 马
	'b': PieceElephant, // 相 / 象
	'a': PieceAdvisor,  // 仕 / 士
	'k': PieceKing,     // 帅 / 将
	'c': PieceCannon,   // 炮
	'p': PiecePawn,     // 兵 / 卒
}

var pieceTypeToLetter = [...]rune{
	PieceRook:     'r',
	PieceKnight:   'n',
	PieceElephant: 'b',
	PieceAdvisor:  'a',
	PieceKing:     'k',
	PieceCannon:   'c',
	PiecePawn:     'p',
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	if int(pt) >= len(pieceTypeToLetter) || pieceTypeToLetter[pt] == 0 {
		return '.'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// 标准开局，第 0 行为黑方底线
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[Index(r, c)] = MakePiece(side, pt)
		}
	}
	return b
}

func NewInitialPosition() *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: Red, // 红先
	}
	pos.Hash = pos.CalculateHash()
	return pos
}
