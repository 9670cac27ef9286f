package main

import (
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/notation"
	"xiangqi/internal/score"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to dump (default: initial position)")
	flag.Parse()

	pos := xiangqi.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = xiangqi.DecodePosition(*fen); err != nil {
			log.Fatalf("decode %q: %v", *fen, err)
		}
	}
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Material:", score.Material(pos), "Eval:", score.Evaluate(pos))

	moves := pos.GenerateLegalMoves()
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		rec, err := notation.Format(m, pos)
		if err != nil {
			rec = "(" + err.Error() + ")"
		}
		fmt.Printf("  %s  %s\n", m, rec)
	}
}
