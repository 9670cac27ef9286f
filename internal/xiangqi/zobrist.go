package xiangqi

import "sync"

// 每个 (棋子, 格子) 一个随机键；棋子下标为 Piece+7，覆盖 -7..7，中间的 0 空着
const pieceSlots = 2*int(PiecePawn) + 1

var (
	zobristOnce sync.Once
	zobristKeys [pieceSlots][NumSquares]uint64
	zobristSide uint64
)

// splitmix64：固定种子，各进程得到相同的键
type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func initZobrist() {
	zobristOnce.Do(func() {
		rng := splitMix64(0x9E3779B97F4A7C15)
		for slot := range zobristKeys {
			if slot == int(PiecePawn) {
				continue
			}
			for sq := range zobristKeys[slot] {
				zobristKeys[slot][sq] = rng.next()
			}
		}
		zobristSide = rng.next()
	})
}

func pieceHashKey(pc Piece, sq int) uint64 {
	slot := int(pc) + int(PiecePawn)
	if pc == 0 || slot < 0 || slot >= pieceSlots || sq < 0 || sq >= NumSquares {
		return 0
	}
	initZobrist()
	return zobristKeys[slot][sq]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (p *Position) CalculateHash() uint64 {
	var h uint64
	for sq, pc := range p.Board.Squares {
		h ^= pieceHashKey(pc, sq)
	}
	if p.SideToMove == Black {
		initZobrist()
		h ^= zobristSide
	}
	return h
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
