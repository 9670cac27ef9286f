package xiangqi

import (
	"strings"
	"testing"
)

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}

	fen := strings.ReplaceAll(initialBoardString, "\n", "/") + " w"
	decoded, err := DecodePosition(dotsToDigits(fen))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Hash != decoded.CalculateHash() {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash, decoded.CalculateHash())
	}
	if decoded.Hash != pos.Hash {
		t.Fatalf("decoded hash differs from initial: got=%d want=%d", decoded.Hash, pos.Hash)
	}
}

func TestApplyMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 40; ply++ {
		moves := pos.GenerateLegalMoves()
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		next, ok := pos.ApplyMove(mv)
		if !ok {
			t.Fatalf("apply move failed at ply %d: %+v", ply, mv)
		}
		got := next.Hash
		want := next.CalculateHash()
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%v", ply, got, want, mv)
		}
		pos = next
	}
}

func TestPieceKeysDistinct(t *testing.T) {
	seen := make(map[uint64]string)
	for _, side := range []Side{Red, Black} {
		for pt := PieceRook; pt <= PiecePawn; pt++ {
			pc := MakePiece(side, pt)
			for sq := 0; sq < NumSquares; sq++ {
				k := pieceHashKey(pc, sq)
				if k == 0 {
					t.Fatalf("zero key for %v on %s", pc, SquareName(sq))
				}
				name := pc.String() + SquareName(sq)
				if prev, dup := seen[k]; dup {
					t.Fatalf("key collision: %s and %s", prev, name)
				}
				seen[k] = name
			}
		}
	}
	if pieceHashKey(0, 0) != 0 || pieceHashKey(MakePiece(Red, PieceRook), NumSquares) != 0 {
		t.Fatalf("empty square or off-board square hashed")
	}

	red := NewInitialPosition()
	black := *red
	black.SideToMove = Black
	if red.CalculateHash()^black.CalculateHash() != zobristSide {
		t.Fatalf("side to move does not toggle exactly the side key")
	}
}

// 把初始局面字符串里的 '.' 压缩成 FEN 数字
func dotsToDigits(s string) string {
	var sb strings.Builder
	n := 0
	for _, ch := range s {
		if ch == '.' {
			n++
			continue
		}
		if n > 0 {
			sb.WriteByte(byte('0' + n))
			n = 0
		}
		sb.WriteRune(ch)
	}
	if n > 0 {
		sb.WriteByte(byte('0' + n))
	}
	return sb.String()
}
