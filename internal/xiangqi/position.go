package xiangqi

// 两王同列且中间无子即“对脸”，非法
func (p *Position) kingsFace() bool {
	redKing, blackKing := p.kingSquare(Red), p.kingSquare(Black)
	if redKing == -1 || blackKing == -1 {
		return false
	}
	if ColOf(redKing) != ColOf(blackKing) {
		return false
	}
	col := ColOf(redKing)
	for r := RowOf(blackKing) + 1; r < RowOf(redKing); r++ {
		if p.Board.Squares[Index(r, col)] != 0 {
			return false
		}
	}
	return true
}

func (p *Position) kingSquare(side Side) int {
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc.Type() == PieceKing && pc.Side() == side {
			return sq
		}
	}
	return -1
}
