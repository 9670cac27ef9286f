package notation

import "xiangqi/internal/xiangqi"

// resolveSource finds the square of the piece named by the piece selector.
func resolveSource(c Classified, board BoardView) (int, xiangqi.Piece, error) {
	sel := c.PieceSelector()
	if sel[0].Class == ClassPiece {
		return resolveDirect(c, board)
	}

	ord := sel[0].Ordinal
	if sel[1].Class == ClassPiece && sel[1].Piece != xiangqi.PiecePawn {
		if ord != OrdFront && ord != OrdBack {
			return 0, 0, failCount(NoCandidate, c.Record, 0)
		}
		return resolveFrontBack(c, board, sel[1].Piece, ord)
	}

	// 兵卒：先确定所在纵线，再按序数从前往后数
	col, err := pawnColumn(c, board)
	if err != nil {
		return 0, 0, err
	}
	pawns := frontFirst(onColumn(board.SquaresOf(xiangqi.PiecePawn, c.Side), col))
	idx, ok := ordinalIndex(ord, len(pawns))
	if !ok {
		return 0, 0, failCount(NoCandidate, c.Record, len(pawns))
	}
	return pawns[idx], xiangqi.MakePiece(c.Side, xiangqi.PiecePawn), nil
}

func resolveDirect(c Classified, board BoardView) (int, xiangqi.Piece, error) {
	kind := c.Symbols[0].Piece
	col := ColumnOf(c.Side, c.Symbols[1].Value)
	cands := onColumn(board.SquaresOf(kind, c.Side), col)
	switch len(cands) {
	case 0:
		return 0, 0, failCount(NoCandidate, c.Record, 0)
	case 1:
		return cands[0], xiangqi.MakePiece(c.Side, kind), nil
	default:
		return 0, 0, failCount(Ambiguous, c.Record, len(cands))
	}
}

// resolveFrontBack handles 前车, 后马 and the like. The two pieces need not
// share a column but must not share a row.
func resolveFrontBack(c Classified, board BoardView, kind xiangqi.PieceType, ord Ordinal) (int, xiangqi.Piece, error) {
	sqs := board.SquaresOf(kind, c.Side)
	switch {
	case len(sqs) < 2:
		return 0, 0, failCount(NoCandidate, c.Record, len(sqs))
	case len(sqs) > 2:
		return 0, 0, failCount(Ambiguous, c.Record, len(sqs))
	case xiangqi.RowOf(sqs[0]) == xiangqi.RowOf(sqs[1]):
		return 0, 0, failCount(Ambiguous, c.Record, 2)
	}
	// SquaresOf 由近及远，前者在后
	sq := sqs[1]
	if ord == OrdBack {
		sq = sqs[0]
	}
	return sq, xiangqi.MakePiece(c.Side, kind), nil
}

// pawnColumn returns the column an ordinal pawn record refers to: the
// written file, or the only column holding two or more pawns.
func pawnColumn(c Classified, board BoardView) (int, error) {
	pawns := board.SquaresOf(xiangqi.PiecePawn, c.Side)
	if c.Symbols[1].Class != ClassPiece {
		col := ColumnOf(c.Side, c.Symbols[1].Value)
		if n := len(onColumn(pawns, col)); n < 2 {
			return 0, failCount(NoCandidate, c.Record, n)
		}
		return col, nil
	}

	cols := stackedColumns(pawns)
	switch len(cols) {
	case 0:
		return 0, failCount(NoCandidate, c.Record, 0)
	case 1:
		return cols[0], nil
	default:
		total := 0
		for _, col := range cols {
			total += len(onColumn(pawns, col))
		}
		return 0, failCount(Ambiguous, c.Record, total)
	}
}

// stackedColumns lists, in ascending order, the columns holding at least
// two of the given squares.
func stackedColumns(sqs []int) []int {
	var count [xiangqi.Cols]int
	for _, sq := range sqs {
		count[xiangqi.ColOf(sq)]++
	}
	var cols []int
	for col, n := range count {
		if n >= 2 {
			cols = append(cols, col)
		}
	}
	return cols
}

func onColumn(sqs []int, col int) []int {
	var out []int
	for _, sq := range sqs {
		if xiangqi.ColOf(sq) == col {
			out = append(out, sq)
		}
	}
	return out
}

// frontFirst reverses a near-to-far list in place.
func frontFirst(sqs []int) []int {
	for i, j := 0, len(sqs)-1; i < j; i, j = i+1, j-1 {
		sqs[i], sqs[j] = sqs[j], sqs[i]
	}
	return sqs
}

// ordinalIndex maps an ordinal onto a front-first list of n pieces.
func ordinalIndex(ord Ordinal, n int) (int, bool) {
	if n < 2 {
		return 0, false
	}
	switch ord {
	case OrdFront:
		return 0, true
	case OrdBack:
		return n - 1, true
	case OrdMiddle:
		return 1, n == 3
	case OrdSecond, OrdThird, OrdFourth, OrdFifth:
		k := int(ord - OrdFront)
		return k, k < n
	}
	return 0, false
}
