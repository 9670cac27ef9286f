package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

// TestCase 是一条记谱往返用例：在 FEN 局面下 ICCS 与 Record 互相对应
type TestCase struct {
	FEN    string `json:"fen"`
	ICCS   string `json:"iccs"`
	Record string `json:"record"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("maxmoves", 200, "max plies per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "notation_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		pos := xiangqi.NewInitialPosition()
		for ply := 0; ply < *maxMoves; ply++ {
			legalMoves := pos.GenerateLegalMoves()
			if len(legalMoves) == 0 {
				break
			}
			fen := pos.Encode()
			for _, mv := range legalMoves {
				rec, err := notation.Format(mv, pos)
				if err != nil {
					log.Fatalf("game %d ply %d: format %s: %v", g, ply, mv, err)
				}
				back, err := notation.Resolve(rec, pos)
				if err != nil || back != mv {
					log.Fatalf("game %d ply %d: %q resolves to %s (%v), want %s", g, ply, rec, back, err, mv)
				}
				testCases = append(testCases, TestCase{FEN: fen, ICCS: mv.String(), Record: rec})
			}

			// 随机选一步
			chosen := legalMoves[rng.Intn(len(legalMoves))]
			nextPos, ok := pos.ApplyMove(chosen)
			if !ok {
				break
			}
			pos = nextPos
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n", len(testCases), *numGames, *seed, *out)
}
