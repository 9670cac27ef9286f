package xiangqi

// IsAttacked 判断 sq 这个格子是否被 bySide 这一方攻击。
// 采用走法模拟：只要对方任何一个棋子能“走到”这个位置，就说明该位置被攻击。
func (p *Position) IsAttacked(sq int, bySide Side) bool {
	for s := 0; s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}

		pt := pc.Type()
		// 象、士不能过河，攻击不到对方九宫
		if pt == PieceElephant || pt == PieceAdvisor {
			if crossedRiver(bySide, RowOf(sq)) {
				continue
			}
		}

		var moves []Move
		genPieceMoves(p, s, &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck 判断 side 这一方的王是否被将军
func (p *Position) IsInCheck(side Side) bool {
	kingSq := p.kingSquare(side)
	if kingSq == -1 {
		return false
	}
	return p.IsAttacked(kingSq, Opposite(side))
}
