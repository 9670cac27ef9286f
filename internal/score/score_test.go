package score

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestInitialPositionIsBalanced(t *testing.T) {
	pos := xiangqi.NewInitialPosition()
	if got := Material(pos); got != 0 {
		t.Fatalf("Material(initial) = %d, want 0", got)
	}
	if got := Evaluate(pos); got != 0 {
		t.Fatalf("Evaluate(initial) = %d, want 0", got)
	}
}

func TestMaterialAfterCapture(t *testing.T) {
	// 黑方少一匹马
	pos, err := xiangqi.DecodePosition("r1bakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR b")
	if err != nil {
		t.Fatalf("DecodePosition error: %v", err)
	}
	if got, want := Material(pos), value(xiangqi.PieceKnight); got != want {
		t.Fatalf("Material = %d, want %d", got, want)
	}
	if Evaluate(pos) <= 0 {
		t.Fatalf("Evaluate = %d, want red ahead", Evaluate(pos))
	}
}

func TestValueOutOfRange(t *testing.T) {
	if value(xiangqi.PieceNone) != 0 || value(xiangqi.PieceType(42)) != 0 {
		t.Fatalf("value accepted an unknown piece type")
	}
}
