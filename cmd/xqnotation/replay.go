package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"xiangqi/internal/record"
)

type replayResult struct {
	path  string
	plies int
	rows  []record.PlyRow
	err   error
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	inputDir := fs.String("input", "games", "directory of record files")
	outputPath := fs.String("parquet", "", "write resolved plies to this parquet file")
	processNum := fs.Int("process-num", 4, "number of parallel workers")
	strict := fs.Bool("strict", false, "reject moves that are not legal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files, err := record.Collect(*inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no record files found in %s", *inputDir)
	}
	workers := *processNum
	if workers <= 0 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	var (
		rowsCh   chan record.PlyRow
		writeErr = make(chan error, 1)
	)
	if *outputPath != "" {
		if dir := filepath.Dir(*outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		rowsCh = make(chan record.PlyRow, 64)
		go func() {
			writeErr <- record.WriteParquet(*outputPath, rowsCh, int64(workers))
		}()
	}

	results := make(chan replayResult, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	go func() {
		for _, f := range files {
			f := f
			g.Go(func() error {
				results <- replayFile(f, *strict)
				return nil
			})
		}
		g.Wait()
		close(results)
	}()

	failed, total := 0, 0
	for res := range results {
		if res.err != nil {
			failed++
			log.Printf("failed to replay %s: %v", res.path, res.err)
			continue
		}
		total += res.plies
		if rowsCh != nil {
			for _, row := range res.rows {
				rowsCh <- row
			}
		}
	}
	if rowsCh != nil {
		close(rowsCh)
		if err := <-writeErr; err != nil {
			return fmt.Errorf("write parquet: %w", err)
		}
	}
	fmt.Printf("replayed %d files (%d failed), %d plies\n", len(files), failed, total)
	if failed > 0 {
		return fmt.Errorf("%d files failed", failed)
	}
	return nil
}

func replayFile(path string, strict bool) replayResult {
	g, err := record.ReadFile(path)
	if err != nil {
		return replayResult{path: path, err: err}
	}
	plies, _, err := record.Replay(g, strict)
	if err != nil {
		return replayResult{path: path, err: err}
	}
	return replayResult{path: path, plies: len(plies), rows: record.Rows(g, plies)}
}
