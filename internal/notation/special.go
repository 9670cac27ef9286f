package notation

import (
	"fmt"
	"sync"

	"xiangqi/internal/xiangqi"
)

// Special is a precomputed advisor or elephant move. Their records are
// unambiguous from geometry alone: the file pair and direction fix the
// source square whatever else stands on the board.
type Special struct {
	Move   xiangqi.Move
	Piece  xiangqi.Piece
	Record string
}

type specialKey struct {
	kind     xiangqi.PieceType
	side     xiangqi.Side
	fromFile int
	dir      Direction
	toFile   int
}

type moveKey struct {
	piece    xiangqi.Piece
	from, to int
}

// 以己方底线为第 0 行的落点
type point struct{ rank, col int }

var (
	advisorPoints  = []point{{0, 3}, {0, 5}, {1, 4}, {2, 3}, {2, 5}}
	elephantPoints = []point{{0, 2}, {0, 6}, {2, 0}, {2, 4}, {2, 8}, {4, 2}, {4, 6}}
)

var (
	specialOnce    sync.Once
	specialByKey   map[specialKey]Special
	specialRecords map[moveKey]string
)

func initSpecial() {
	specialOnce.Do(func() {
		specialByKey = make(map[specialKey]Special, 48)
		specialRecords = make(map[moveKey]string, 48)
		for _, side := range []xiangqi.Side{xiangqi.Red, xiangqi.Black} {
			addDiagonals(side, xiangqi.PieceAdvisor, advisorPoints, 1)
			addDiagonals(side, xiangqi.PieceElephant, elephantPoints, 2)
		}
	})
}

func addDiagonals(side xiangqi.Side, kind xiangqi.PieceType, pts []point, step int) {
	pc := xiangqi.MakePiece(side, kind)
	for _, a := range pts {
		for _, b := range pts {
			if abs(a.rank-b.rank) != step || abs(a.col-b.col) != step {
				continue
			}
			dir := Backward
			if b.rank > a.rank {
				dir = Forward
			}
			from := xiangqi.Index(rowFromRank(side, a.rank), a.col)
			to := xiangqi.Index(rowFromRank(side, b.rank), b.col)
			k := specialKey{
				kind:     kind,
				side:     side,
				fromFile: FileNumber(side, a.col),
				dir:      dir,
				toFile:   FileNumber(side, b.col),
			}
			if _, dup := specialByKey[k]; dup {
				panic(fmt.Sprintf("notation: duplicate special move %v %v %d", side, kind, k.fromFile))
			}
			rec := string([]rune{
				Glyph(pc),
				Numeral(side, k.fromFile),
				directionRune(dir),
				Numeral(side, k.toFile),
			})
			specialByKey[k] = Special{Move: xiangqi.Move{From: from, To: to}, Piece: pc, Record: rec}
			specialRecords[moveKey{pc, from, to}] = rec
		}
	}
}

func rowFromRank(side xiangqi.Side, rank int) int {
	if side == xiangqi.Red {
		return xiangqi.Rows - 1 - rank
	}
	return rank
}

func directionRune(d Direction) rune {
	switch d {
	case Forward:
		return runeForward
	case Backward:
		return runeBackward
	case Horizontal:
		return runeHorizontal
	}
	return 0
}

// LookupSpecial reports the precomputed move for an advisor or elephant
// record written as glyph, file, direction, file.
func LookupSpecial(c Classified) (Special, bool) {
	s := c.Symbols
	if s[0].Class != ClassPiece {
		return Special{}, false
	}
	if s[0].Piece != xiangqi.PieceAdvisor && s[0].Piece != xiangqi.PieceElephant {
		return Special{}, false
	}
	if s[1].Class != ClassChineseNumeral && s[1].Class != ClassArabicNumeral {
		return Special{}, false
	}
	initSpecial()
	sp, ok := specialByKey[specialKey{
		kind:     s[0].Piece,
		side:     c.Side,
		fromFile: s[1].Value,
		dir:      s[2].Direction,
		toFile:   s[3].Value,
	}]
	return sp, ok
}

func specialRecord(pc xiangqi.Piece, m xiangqi.Move) (string, bool) {
	initSpecial()
	rec, ok := specialRecords[moveKey{pc, m.From, m.To}]
	return rec, ok
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
