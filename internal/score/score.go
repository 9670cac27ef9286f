// Package score gives a static, red-positive estimate of a position. It is
// used to annotate replayed games; nothing here searches.
package score

import "xiangqi/internal/xiangqi"

// 基础子力估值，帅/将不计
var pieceValue = [...]int{
	xiangqi.PieceRook:     500,
	xiangqi.PieceCannon:   480,
	xiangqi.PieceKnight:   460,
	xiangqi.PieceElephant: 250,
	xiangqi.PieceAdvisor:  250,
	xiangqi.PiecePawn:     120,
	xiangqi.PieceKing:     0,
}

// value 是一类棋子的子力
func value(pt xiangqi.PieceType) int {
	if pt <= xiangqi.PieceNone || int(pt) >= len(pieceValue) {
		return 0
	}
	return pieceValue[pt]
}

// Material returns red material minus black material.
func Material(pos *xiangqi.Position) int {
	score := 0
	for _, pc := range pos.Board.Squares {
		if pc == 0 {
			continue
		}
		if pc.Side() == xiangqi.Red {
			score += value(pc.Type())
		} else {
			score -= value(pc.Type())
		}
	}
	return score
}

// Evaluate adds a small positional term to Material.
func Evaluate(pos *xiangqi.Position) int {
	score := Material(pos)
	for sq, pc := range pos.Board.Squares {
		if pc == 0 {
			continue
		}
		b := positionalBonus(pc.Type(), pc.Side(), xiangqi.RowOf(sq), xiangqi.ColOf(sq))
		if pc.Side() == xiangqi.Red {
			score += b
		} else {
			score -= b
		}
	}
	return score
}

// 位置加成，从该子一方的视角
func positionalBonus(pt xiangqi.PieceType, side xiangqi.Side, row, col int) int {
	midCol := xiangqi.Cols / 2
	advance := rankFromSide(side, row)
	centerBonus := 4 - abs(col-midCol)

	switch pt {
	case xiangqi.PiecePawn:
		b := advance * 3
		if crossed(side, row) {
			b += 15
			if col >= midCol-1 && col <= midCol+1 {
				b += 8
			}
		}
		// 老兵到底线，失去前进能力
		if advance == xiangqi.Rows-1 {
			b -= 8
		}
		return b + centerBonus*2
	case xiangqi.PieceRook:
		return centerBonus * 4
	case xiangqi.PieceCannon:
		return centerBonus * 3
	case xiangqi.PieceKnight:
		b := centerBonus * 5
		if advance >= 2 && advance <= 6 {
			b += 4
		}
		return b
	case xiangqi.PieceAdvisor, xiangqi.PieceElephant:
		if col >= midCol-2 && col <= midCol+2 {
			return 2
		}
		return 0
	case xiangqi.PieceKing:
		if col == midCol && advance == 0 {
			return 4
		}
		return 0
	}
	return 0
}

// 从己方底线数起的行数
func rankFromSide(side xiangqi.Side, row int) int {
	if side == xiangqi.Red {
		return xiangqi.Rows - 1 - row
	}
	return row
}

func crossed(side xiangqi.Side, row int) bool {
	return rankFromSide(side, row) >= xiangqi.Rows/2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
