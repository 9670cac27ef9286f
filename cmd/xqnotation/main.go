// xqnotation resolves and formats traditional move records and replays
// record files in batch.
//
//	xqnotation resolve [-fen FEN] 炮二平五 马8进7 ...
//	xqnotation format  [-fen FEN] h2e2 h9g7 ...
//	xqnotation replay  -input DIR [-parquet out.parquet] [-process-num N] [-strict]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: xqnotation resolve|format|replay [flags] [args]")
	os.Exit(2)
}

func main() {
	log.SetPrefix("xqnotation: ")
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "resolve":
		err = runResolve(os.Args[2:])
	case "format":
		err = runFormat(os.Args[2:])
	case "replay":
		err = runReplay(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadPosition(fen string) (*xiangqi.Position, error) {
	if fen == "" {
		return xiangqi.NewInitialPosition(), nil
	}
	return xiangqi.DecodePosition(fen)
}

// runResolve 依次解析并走出每条记谱，后一条在前一条走完的局面上解析
func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	fen := fs.String("fen", "", "start position (default: initial position)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := loadPosition(*fen)
	if err != nil {
		return err
	}
	for _, rec := range fs.Args() {
		mv, err := notation.Resolve(rec, pos)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", rec, mv)
		next, ok := pos.ApplyMove(mv)
		if !ok {
			return fmt.Errorf("%s (%s): piece does not belong to side to move", rec, mv)
		}
		pos = next
	}
	return nil
}

func runFormat(args []string) error {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	fen := fs.String("fen", "", "start position (default: initial position)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := loadPosition(*fen)
	if err != nil {
		return err
	}
	for _, s := range fs.Args() {
		mv, err := xiangqi.ParseMove(s)
		if err != nil {
			return err
		}
		rec, err := notation.Format(mv, pos)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", mv, rec)
		next, ok := pos.ApplyMove(mv)
		if !ok {
			return fmt.Errorf("%s: piece does not belong to side to move", mv)
		}
		pos = next
	}
	return nil
}
