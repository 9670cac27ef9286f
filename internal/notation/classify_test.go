package notation

import (
	"errors"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestClassifySides(t *testing.T) {
	tests := []struct {
		record string
		turn   xiangqi.Side
		want   xiangqi.Side
	}{
		{"炮二平五", xiangqi.Black, xiangqi.Red},
		{"马8进7", xiangqi.Red, xiangqi.Black},
		{"前车进一", xiangqi.Red, xiangqi.Red},
		{"前车进1", xiangqi.Black, xiangqi.Black},
		{"前卒平4", xiangqi.Red, xiangqi.Black},
		{"兵五平四", xiangqi.Black, xiangqi.Red},
		{"中兵进一", xiangqi.NoSide, xiangqi.Red},
	}
	for _, tc := range tests {
		c, err := Classify(tc.record, tc.turn)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", tc.record, err)
		}
		if c.Side != tc.want {
			t.Fatalf("Classify(%q, %v).Side = %v, want %v", tc.record, tc.turn, c.Side, tc.want)
		}
	}
}

func TestClassifySymbols(t *testing.T) {
	c, err := Classify("前七进１", xiangqi.Black)
	if err == nil {
		t.Fatalf("Classify mixed numerals = %+v, want error", c)
	}

	c, err = Classify("中七平八", xiangqi.Red)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	ps, ms := c.PieceSelector(), c.MoveSelector()
	if ps[0].Class != ClassOrdinal || ps[0].Ordinal != OrdMiddle {
		t.Fatalf("symbol 0 = %+v", ps[0])
	}
	if ps[1].Class != ClassChineseNumeral || ps[1].Value != 7 {
		t.Fatalf("symbol 1 = %+v", ps[1])
	}
	if ms[0].Class != ClassDirection || ms[0].Direction != Horizontal {
		t.Fatalf("symbol 2 = %+v", ms[0])
	}
	if ms[1].Value != 8 {
		t.Fatalf("symbol 3 = %+v", ms[1])
	}

	c, err = Classify("3卒进1", xiangqi.Black)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if c.Symbols[0].Ordinal != OrdThird || c.Symbols[1].Piece != xiangqi.PiecePawn {
		t.Fatalf("symbols = %+v", c.Symbols)
	}
}

func TestColumnTablesMirror(t *testing.T) {
	for n := 1; n <= 9; n++ {
		r, b := ColumnOf(xiangqi.Red, n), ColumnOf(xiangqi.Black, n)
		if r != xiangqi.Cols-1-b {
			t.Fatalf("file %d: red column %d, black column %d", n, r, b)
		}
		if FileNumber(xiangqi.Red, r) != n || FileNumber(xiangqi.Black, b) != n {
			t.Fatalf("file %d does not round trip", n)
		}
	}
	if ColumnOf(xiangqi.Red, 0) != -1 || ColumnOf(xiangqi.Black, 10) != -1 {
		t.Fatalf("out of range file accepted")
	}
	if got := ColumnNumeral(xiangqi.Red, 7); got != '二' {
		t.Fatalf("ColumnNumeral(red, 7) = %q", got)
	}
	if got := ColumnNumeral(xiangqi.Black, 7); got != '8' {
		t.Fatalf("ColumnNumeral(black, 7) = %q", got)
	}
}

func TestSpecialTable(t *testing.T) {
	initSpecial()
	if len(specialByKey) != 48 || len(specialRecords) != 48 {
		t.Fatalf("special table has %d keys and %d records, want 48", len(specialByKey), len(specialRecords))
	}
	for _, sp := range specialByKey {
		// 只放一枚棋子：查表结果与其余占位无关
		pos := &xiangqi.Position{SideToMove: sp.Piece.Side()}
		pos.Board.Squares[sp.Move.From] = sp.Piece
		got, err := Resolve(sp.Record, pos)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", sp.Record, err)
		}
		if got != sp.Move {
			t.Fatalf("Resolve(%q) = %s, want %s", sp.Record, got, sp.Move)
		}
		rec, err := Format(sp.Move, pos)
		if err != nil || rec != sp.Record {
			t.Fatalf("Format(%s) = %q, %v; want %q", sp.Move, rec, err, sp.Record)
		}

		empty := &xiangqi.Position{SideToMove: sp.Piece.Side()}
		if _, err := Resolve(sp.Record, empty); err == nil {
			t.Fatalf("Resolve(%q) on empty board succeeded", sp.Record)
		}
	}
}

func TestSpecialIgnoresOtherOccupancy(t *testing.T) {
	// 相眼 f1 有仕，落点 e2 有炮，另一只相在 c0
	pos := mustPosition(t, "4k4/9/9/9/9/9/9/4C4/5A3/2BK2B2 w")
	tests := []struct {
		record string
		want   string
	}{
		{"相三进五", "g0e2"},
		{"相七进五", "c0e2"},
	}
	for _, tc := range tests {
		got, err := Resolve(tc.record, pos)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", tc.record, err)
		}
		if got.String() != tc.want {
			t.Fatalf("Resolve(%q) = %s, want %s", tc.record, got, tc.want)
		}
	}

	// 查表命中，但源格 d0 上是帅
	if _, err := Resolve("仕六进五", pos); !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("Resolve(仕六进五) error = %v, want NoCandidate", err)
	}
}
