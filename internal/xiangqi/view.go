package xiangqi

// 以下三个只读查询让 *Position 满足记谱解析所需的棋盘视图。

func (p *Position) PieceAt(sq int) (Piece, bool) {
	if sq < 0 || sq >= NumSquares {
		return 0, false
	}
	pc := p.Board.Squares[sq]
	return pc, pc != 0
}

func (p *Position) Turn() Side {
	return p.SideToMove
}

// SquaresOf 返回 side 方所有 pt 类棋子的位置，从己方底线向对方底线排列；
// 同一行按列从小到大。
func (p *Position) SquaresOf(pt PieceType, side Side) []int {
	want := MakePiece(side, pt)
	if want == 0 {
		return nil
	}
	var out []int
	for i := 0; i < Rows; i++ {
		r := i
		if side == Red {
			r = Rows - 1 - i
		}
		for c := 0; c < Cols; c++ {
			sq := Index(r, c)
			if p.Board.Squares[sq] == want {
				out = append(out, sq)
			}
		}
	}
	return out
}
