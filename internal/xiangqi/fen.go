package xiangqi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// 标准 FEN：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示先后
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[Index(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// 部分软件用 h/e 表示马/象
var fenAliases = map[rune]PieceType{
	'h': PieceKnight,
	'e': PieceElephant,
}

func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(rows))
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			base := unicode.ToLower(ch)
			pt, ok := letterToPieceType[base]
			if !ok {
				pt, ok = fenAliases[base]
			}
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Squares[Index(r, c)] = MakePiece(side, pt)
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, r, c)
		}
	}
	stm := Red
	if len(parts) > 1 {
		switch parts[1] {
		case "w", "r":
			stm = Red
		case "b":
			stm = Black
		default:
			return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
		}
	}
	pos := &Position{
		Board:      b,
		SideToMove: stm,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}
