package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xiangqi/internal/notation"
	"xiangqi/internal/score"
	"xiangqi/internal/xiangqi"
)

// 一步贪心：对每个合法着法看走后的静态分，带一点随机扰动
func pickMove(pos *xiangqi.Position, rng *rand.Rand, noise int) (xiangqi.Move, bool) {
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return xiangqi.Move{}, false
	}
	sign := 1
	if pos.SideToMove == xiangqi.Black {
		sign = -1
	}
	best, bestScore := moves[0], 0
	for i, mv := range moves {
		next, ok := pos.ApplyMove(mv)
		if !ok {
			continue
		}
		s := sign * score.Evaluate(next)
		if noise > 0 {
			s += rng.Intn(noise)
		}
		if i == 0 || s > bestScore {
			best, bestScore = mv, s
		}
	}
	return best, true
}

func playGame(rng *rand.Rand, maxMoves, noise int) (records []string, result string, err error) {
	pos := xiangqi.NewInitialPosition()
	for i := 0; i < maxMoves; i++ {
		mv, ok := pickMove(pos, rng, noise)
		if !ok {
			// 无子可走，走子方负
			if pos.SideToMove == xiangqi.Red {
				return records, "0-1", nil
			}
			return records, "1-0", nil
		}
		rec, err := notation.Format(mv, pos)
		if err != nil {
			return nil, "", fmt.Errorf("ply %d: %w", i+1, err)
		}
		records = append(records, rec)
		next, ok := pos.ApplyMove(mv)
		if !ok {
			return nil, "", fmt.Errorf("ply %d: apply %s failed", i+1, mv)
		}
		pos = next
	}
	return records, "*", nil
}

func writeGame(path string, n int, records []string, result string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Event \"selfplay %d\"]\n", n)
	sb.WriteString("[Red \"greedy\"]\n[Black \"greedy\"]\n")
	fmt.Fprintf(&sb, "[Result \"%s\"]\n\n", result)
	for i := 0; i < len(records); i += 2 {
		fmt.Fprintf(&sb, "%d. %s", i/2+1, records[i])
		if i+1 < len(records) {
			sb.WriteString(" " + records[i+1])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(result + "\n")
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

func main() {
	log.SetPrefix("selfplay: ")
	games := flag.Int("games", 4, "number of games to play")
	maxMoves := flag.Int("maxmoves", 120, "max plies per game")
	noise := flag.Int("noise", 40, "random noise added to each move score")
	outDir := flag.String("out", "selfplay_games", "output directory for record files")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	rng := rand.New(rand.NewSource(*seed))
	for g := 1; g <= *games; g++ {
		start := time.Now()
		records, result, err := playGame(rng, *maxMoves, *noise)
		if err != nil {
			log.Fatalf("game %d: %v", g, err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("game_%03d.pgn", g))
		if err := writeGame(path, g, records, result); err != nil {
			log.Fatalf("game %d: %v", g, err)
		}
		log.Printf("game %d: %d plies, result %s, %v -> %s", g, len(records), result, time.Since(start), path)
	}
	log.Println("Selfplay finished.")
}
