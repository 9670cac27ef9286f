package record

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"golang.org/x/text/encoding/simplifiedchinese"

	"xiangqi/internal/notation"
)

const sampleGame = `[Event "test"]
[Red "甲"]
[Black "乙"]
[Result "1-0"]

1. 炮二平五 马8进7 {屏风马}
2. 马二进三 车9平8
3. 车一平二 {
  多行注释
} 炮8进4
4. 兵三进一 卒7进1 1-0
`

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleGame))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []string{"炮二平五", "马8进7", "马二进三", "车9平8", "车一平二", "炮8进4", "兵三进一", "卒7进1"}
	if len(g.Moves) != len(want) {
		t.Fatalf("moves = %v, want %v", g.Moves, want)
	}
	for i := range want {
		if g.Moves[i] != want[i] {
			t.Fatalf("move %d = %q, want %q", i, g.Moves[i], want[i])
		}
	}
	if g.Header("Red") != "甲" || g.Header("Black") != "乙" {
		t.Fatalf("headers = %v", g.Headers)
	}
	if g.Result != "1-0" {
		t.Fatalf("result = %q", g.Result)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("炮二平五 {未结束")); !errors.Is(err, ErrUnterminatedComment) {
		t.Fatalf("Parse unterminated comment error = %v", err)
	}
	if _, err := Parse(strings.NewReader("[Red 甲]\n")); err == nil {
		t.Fatalf("Parse malformed header succeeded")
	}
}

func TestDecodeGB18030(t *testing.T) {
	encoded, err := simplifiedchinese.GB18030.NewEncoder().String(sampleGame)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	text, err := Decode([]byte(encoded))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if text != sampleGame {
		t.Fatalf("Decode mismatch:\n%s", text)
	}

	bom := append([]byte{0xEF, 0xBB, 0xBF}, sampleGame...)
	text, err = Decode(bom)
	if err != nil || text != sampleGame {
		t.Fatalf("Decode with BOM = %q, %v", text, err)
	}
}

func TestReplay(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleGame))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	plies, pos, err := Replay(g, true)
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if len(plies) != len(g.Moves) {
		t.Fatalf("plies = %d, want %d", len(plies), len(g.Moves))
	}
	if plies[0].Move.String() != "h2e2" || plies[1].Move.String() != "h9g7" {
		t.Fatalf("first plies = %s %s", plies[0].Move, plies[1].Move)
	}
	if pos.Hash != plies[len(plies)-1].Hash {
		t.Fatalf("final hash mismatch")
	}
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("incremental hash differs from full recompute")
	}
}

func TestReplayErrors(t *testing.T) {
	g := &Game{Headers: map[string]string{}, Moves: []string{"炮二平五", "炮二平五"}}
	plies, _, err := Replay(g, false)
	if !errors.Is(err, notation.ErrNoCandidate) && !errors.Is(err, ErrWrongSide) {
		t.Fatalf("Replay error = %v", err)
	}
	if len(plies) != 1 {
		t.Fatalf("plies = %d, want 1", len(plies))
	}

	// 车一进五 被自己的兵挡住：能解析，但不合法
	g = &Game{Headers: map[string]string{}, Moves: []string{"车一进五"}}
	if _, _, err := Replay(g, true); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("strict Replay error = %v, want ErrIllegalMove", err)
	}

	g = &Game{Headers: map[string]string{"FEN": "bad"}}
	if _, _, err := Replay(g, false); err == nil {
		t.Fatalf("Replay with bad FEN succeeded")
	}
}

func TestReadFileAndWriteParquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.pgn")
	if err := os.WriteFile(path, []byte(sampleGame), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	files, err := Collect(dir)
	if err != nil || len(files) != 1 {
		t.Fatalf("Collect = %v, %v", files, err)
	}
	g, err := ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	plies, _, err := Replay(g, true)
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}

	out := filepath.Join(dir, "plies.parquet")
	rows := make(chan PlyRow)
	done := make(chan error, 1)
	go func() { done <- WriteParquet(out, rows, 1) }()
	for _, row := range Rows(g, plies) {
		rows <- row
	}
	close(rows)
	if err := <-done; err != nil {
		t.Fatalf("WriteParquet error: %v", err)
	}

	fr, err := local.NewLocalFileReader(out)
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(PlyRow), 1)
	if err != nil {
		t.Fatalf("parquet reader: %v", err)
	}
	defer pr.ReadStop()
	n := int(pr.GetNumRows())
	if n != len(plies) {
		t.Fatalf("parquet rows = %d, want %d", n, len(plies))
	}
	got := make([]PlyRow, n)
	if err := pr.Read(&got); err != nil {
		t.Fatalf("parquet read: %v", err)
	}
	if got[0].Record != "炮二平五" || got[0].Move != "h2e2" || got[0].Game != path {
		t.Fatalf("first row = %+v", got[0])
	}
}

func TestWriteParquetBadPathDrainsRows(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "plies.parquet")
	rows := make(chan PlyRow)
	done := make(chan error, 1)
	go func() { done <- WriteParquet(out, rows, 1) }()

	// 无缓冲通道，写端若不读取这里会卡住
	for i := 0; i < 3; i++ {
		rows <- PlyRow{Game: "g", Ply: int32(i)}
	}
	close(rows)
	if err := <-done; err == nil {
		t.Fatalf("expected error for %s", out)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("stat %s: %v, want not exist", out, err)
	}
}
