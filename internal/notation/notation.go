// Package notation reads and writes traditional four-character xiangqi move
// records such as 炮二平五, 马8进7 or 前车进一.
//
// A record is resolved against a board snapshot into a source and a
// destination square; Format goes the other way and yields the shortest
// record that identifies the move. Neither function checks full legality.
package notation

import "xiangqi/internal/xiangqi"

// BoardView is the read-only board a record is resolved against.
// *xiangqi.Position satisfies it.
type BoardView interface {
	PieceAt(sq int) (xiangqi.Piece, bool)
	Turn() xiangqi.Side
	// SquaresOf lists the squares holding side's pieces of kind pt, from
	// side's own back rank towards the opponent, ties by ascending column.
	SquaresOf(pt xiangqi.PieceType, side xiangqi.Side) []int
}

// Resolve turns a record into the move it denotes on board.
func Resolve(record string, board BoardView) (xiangqi.Move, error) {
	c, err := Classify(record, board.Turn())
	if err != nil {
		return xiangqi.Move{}, err
	}
	if sp, ok := LookupSpecial(c); ok {
		pc, occupied := board.PieceAt(sp.Move.From)
		if !occupied || pc != sp.Piece {
			return xiangqi.Move{}, failCount(NoCandidate, record, 0)
		}
		return sp.Move, nil
	}

	from, pc, err := resolveSource(c, board)
	if err != nil {
		return xiangqi.Move{}, err
	}
	mv := c.MoveSelector()
	to, err := resolveTarget(from, pc, mv[0].Direction, mv[1])
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Record = record
		}
		return xiangqi.Move{}, err
	}
	return xiangqi.Move{From: from, To: to}, nil
}
