package xiangqi

func genPawnMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	pc := p.Board.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()

	try := func(r, c int) {
		if !OnBoard(r, c) {
			return
		}
		to := Index(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	// 前一格
	try(row+ForwardDir(side), col)

	// 过河后可以左右一格
	if crossedRiver(side, row) {
		try(row, col-1)
		try(row, col+1)
	}
}
