package xiangqi

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// 车：横竖随便走
func genRookMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		for OnBoard(r, c) {
			to := Index(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子
		for OnBoard(r, c) {
			if p.Board.Squares[Index(r, c)] != 0 {
				r += d[0]
				c += d[1]
				break
			}
			*moves = append(*moves, Move{From: from, To: Index(r, c)})
			r += d[0]
			c += d[1]
		}

		// 吃子阶段：越过炮架，遇到第一子可吃
		for OnBoard(r, c) {
			to := Index(r, c)
			pc := p.Board.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字 + 塞象眼 + 不过河
func genElephantMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !OnBoard(r, c) {
			continue
		}
		if crossedRiver(side, r) {
			continue
		}
		if p.Board.Squares[Index(row+d[0], col+d[1])] != 0 {
			continue
		}
		dst := p.Board.Squares[Index(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: Index(r, c)})
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		dst := p.Board.Squares[Index(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: Index(r, c)})
		}
	}
}

// 将：九宫内上下左右一格（对脸由 GenerateLegalMoves 过滤）
func genKingMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		dst := p.Board.Squares[Index(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: Index(r, c)})
		}
	}
}
