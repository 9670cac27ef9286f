package xiangqi

func genPieceMoves(p *Position, sq int, moves *[]Move) {
	switch p.Board.Squares[sq].Type() {
	case PieceRook:
		genRookMoves(p, sq, moves)
	case PieceCannon:
		genCannonMoves(p, sq, moves)
	case PieceKnight:
		genKnightMoves(p, sq, moves)
	case PieceElephant:
		genElephantMoves(p, sq, moves)
	case PieceAdvisor:
		genAdvisorMoves(p, sq, moves)
	case PieceKing:
		genKingMoves(p, sq, moves)
	case PiecePawn:
		genPawnMoves(p, sq, moves)
	}
}

// 伪合法（不考虑自己王被将军）
func (p *Position) generatePseudoMoves() []Move {
	var moves []Move
	for sq, pc := range p.Board.Squares {
		if pc == 0 || pc.Side() != p.SideToMove {
			continue
		}
		genPieceMoves(p, sq, &moves)
	}
	return moves
}

// GenerateLegalMoves 生成合法走法：走完后己方不能被将军，两王不能对脸。
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.generatePseudoMoves()
	out := make([]Move, 0, len(pseudo))
	side := p.SideToMove
	for _, mv := range pseudo {
		np, ok := p.ApplyMove(mv)
		if !ok {
			continue
		}
		if np.kingsFace() {
			continue
		}
		if np.IsInCheck(side) {
			continue
		}
		out = append(out, mv)
	}
	return out
}

// IsLegal 判断 m 是否在当前局面的合法走法之中
func (p *Position) IsLegal(m Move) bool {
	for _, lm := range p.GenerateLegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// 应用走子：这里默认传进来的就是合法招（由上层检查）
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	captured := p.Board.Squares[m.To]

	np := *p
	np.Board.Squares[m.To] = pc
	np.Board.Squares[m.From] = 0
	np.SideToMove = Opposite(p.SideToMove)

	// 增量 Zobrist：移除 from 的子、移除被吃子（若有）、加入 to 的子、切换走子方。
	h := p.EnsureHash()
	h ^= pieceHashKey(pc, m.From)
	if captured != 0 {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(pc, m.To)
	h ^= zobristSide
	np.Hash = h

	return &np, true
}
