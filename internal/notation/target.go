package notation

import "xiangqi/internal/xiangqi"

// resolveTarget computes the destination of piece standing on from. The
// returned error carries no record; the caller fills it in.
func resolveTarget(from int, piece xiangqi.Piece, dir Direction, target Symbol) (int, error) {
	side := piece.Side()
	row, col := xiangqi.RowOf(from), xiangqi.ColOf(from)

	switch piece.Type() {
	case xiangqi.PieceRook, xiangqi.PieceCannon, xiangqi.PiecePawn, xiangqi.PieceKing:
		if dir == Horizontal {
			toCol := ColumnOf(side, target.Value)
			if toCol < 0 {
				return 0, fail(TargetOffBoard, "")
			}
			if toCol == col {
				return 0, fail(SameColumnHorizontalMove, "")
			}
			return xiangqi.Index(row, toCol), nil
		}
		step := xiangqi.ForwardDir(side)
		if dir == Backward {
			step = -step
		}
		toRow := row + step*target.Value
		if !xiangqi.OnBoard(toRow, col) {
			return 0, fail(TargetOffBoard, "")
		}
		return xiangqi.Index(toRow, col), nil

	case xiangqi.PieceKnight:
		if dir == Horizontal {
			return 0, fail(IllegalDirectionForPiece, "")
		}
		toCol := ColumnOf(side, target.Value)
		sign := xiangqi.ForwardDir(side)
		if dir == Backward {
			sign = -sign
		}
		for _, to := range xiangqi.KnightLandings(from) {
			if xiangqi.ColOf(to) == toCol && (xiangqi.RowOf(to)-row)*sign > 0 {
				return to, nil
			}
		}
		return 0, fail(IllegalKnightTarget, "")

	case xiangqi.PieceAdvisor, xiangqi.PieceElephant:
		return 0, fail(IllegalDirectionForPiece, "")
	}
	return 0, fail(IllegalDirectionForPiece, "")
}
