package notation

import (
	"slices"

	"xiangqi/internal/xiangqi"
)

// 同一纵线上 n 个兵（卒）时从前往后的称呼
var pawnOrdinals = [6][]Ordinal{
	2: {OrdFront, OrdBack},
	3: {OrdFront, OrdMiddle, OrdBack},
	4: {OrdFront, OrdSecond, OrdThird, OrdBack},
	5: {OrdFront, OrdSecond, OrdThird, OrdFourth, OrdFifth},
}

func ordinalRune(side xiangqi.Side, o Ordinal) rune {
	switch o {
	case OrdFront:
		return runeFront
	case OrdMiddle:
		return runeMiddle
	case OrdBack:
		return runeBack
	case OrdSecond, OrdThird, OrdFourth, OrdFifth:
		return Numeral(side, int(o-OrdFront)+1)
	}
	return 0
}

// Format writes the shortest record for m that Resolve maps back to m on
// the same board.
func Format(m xiangqi.Move, board BoardView) (string, error) {
	unformattable := fail(UnformattableMove, m.String())
	if m.From < 0 || m.From >= xiangqi.NumSquares || m.To < 0 || m.To >= xiangqi.NumSquares || m.From == m.To {
		return "", unformattable
	}
	pc, ok := board.PieceAt(m.From)
	if !ok {
		return "", unformattable
	}
	kind := pc.Type()
	if kind == xiangqi.PieceAdvisor || kind == xiangqi.PieceElephant {
		if rec, ok := specialRecord(pc, m); ok {
			return rec, nil
		}
		return "", unformattable
	}

	var out [4]rune
	if !formatSource(out[:2], m.From, pc, board) {
		return "", unformattable
	}
	if !formatMove(out[2:], m, pc) {
		return "", unformattable
	}
	return string(out[:]), nil
}

func formatSource(dst []rune, from int, pc xiangqi.Piece, board BoardView) bool {
	side, kind := pc.Side(), pc.Type()
	col := xiangqi.ColOf(from)
	all := board.SquaresOf(kind, side)
	same := frontFirst(onColumn(all, col))
	idx := slices.Index(same, from)
	if idx < 0 {
		return false
	}

	if len(same) == 1 {
		dst[0], dst[1] = Glyph(pc), ColumnNumeral(side, col)
		return true
	}

	if kind != xiangqi.PiecePawn {
		// 前/后 只能区分恰好两枚
		if len(same) != 2 || len(all) != 2 {
			return false
		}
		dst[0] = runeFront
		if idx == 1 {
			dst[0] = runeBack
		}
		dst[1] = Glyph(pc)
		return true
	}

	if len(same) >= len(pawnOrdinals) {
		return false
	}
	dst[0] = ordinalRune(side, pawnOrdinals[len(same)][idx])
	if len(stackedColumns(all)) == 1 {
		dst[1] = Glyph(pc)
	} else {
		dst[1] = ColumnNumeral(side, col)
	}
	return true
}

func formatMove(dst []rune, m xiangqi.Move, pc xiangqi.Piece) bool {
	side, kind := pc.Side(), pc.Type()
	fr, fc := xiangqi.RowOf(m.From), xiangqi.ColOf(m.From)
	tr, tc := xiangqi.RowOf(m.To), xiangqi.ColOf(m.To)
	dir := runeForward
	if (tr-fr)*xiangqi.ForwardDir(side) < 0 {
		dir = runeBackward
	}

	switch kind {
	case xiangqi.PieceRook, xiangqi.PieceCannon, xiangqi.PiecePawn, xiangqi.PieceKing:
		switch {
		case fr == tr:
			dst[0], dst[1] = runeHorizontal, ColumnNumeral(side, tc)
		case fc == tc:
			dst[0], dst[1] = dir, Numeral(side, abs(tr-fr))
		default:
			return false
		}
		return true
	case xiangqi.PieceKnight:
		if !slices.Contains(xiangqi.KnightLandings(m.From), m.To) {
			return false
		}
		dst[0], dst[1] = dir, ColumnNumeral(side, tc)
		return true
	}
	return false
}
