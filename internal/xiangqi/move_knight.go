package xiangqi

// 马 8 种“日”字：终点 + 马腿
var knightLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func genKnightMoves(p *Position, from int, moves *[]Move) {
	row, col := RowOf(from), ColOf(from)
	side := p.Board.Squares[from].Side()
	for _, m := range knightLegMoves {
		r := row + m.Dr
		c := col + m.Dc
		if !OnBoard(r, c) {
			continue
		}
		if p.Board.Squares[Index(row+m.Br, col+m.Bc)] != 0 {
			continue // 蹩马腿
		}
		to := Index(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// KnightLandings 返回从 from 出发、不考虑马腿和占位时的全部落点
func KnightLandings(from int) []int {
	row, col := RowOf(from), ColOf(from)
	out := make([]int, 0, len(knightLegMoves))
	for _, m := range knightLegMoves {
		r, c := row+m.Dr, col+m.Dc
		if OnBoard(r, c) {
			out = append(out, Index(r, c))
		}
	}
	return out
}
