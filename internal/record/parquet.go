package record

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// PlyRow is the flat parquet form of a Ply.
type PlyRow struct {
	Game      string `parquet:"name=game, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply       int32  `parquet:"name=ply, type=INT32"`
	Side      string `parquet:"name=side, type=BYTE_ARRAY, convertedtype=UTF8"`
	Record    string `parquet:"name=record, type=BYTE_ARRAY, convertedtype=UTF8"`
	Move      string `parquet:"name=move, type=BYTE_ARRAY, convertedtype=UTF8"`
	FENBefore string `parquet:"name=fen_before, type=BYTE_ARRAY, convertedtype=UTF8"`
	Hash      int64  `parquet:"name=hash, type=INT64"`
	Material  int32  `parquet:"name=material, type=INT32"`
	Result    string `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Rows flattens the plies of one game.
func Rows(g *Game, plies []Ply) []PlyRow {
	rows := make([]PlyRow, 0, len(plies))
	for _, p := range plies {
		rows = append(rows, PlyRow{
			Game:      g.Source,
			Ply:       int32(p.Index),
			Side:      p.Side.String(),
			Record:    p.Record,
			Move:      p.Move.String(),
			FENBefore: p.FENBefore,
			Hash:      int64(p.Hash),
			Material:  int32(p.Material),
			Result:    g.Result,
		})
	}
	return rows
}

// WriteParquet drains rows into a Snappy-compressed parquet file at path.
// rows is always read to the end, even after a failure, so the producer
// never blocks.
func WriteParquet(path string, rows <-chan PlyRow, parallel int64) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		drain(rows)
		return err
	}
	if err := writeRows(fileWriter, rows, parallel); err != nil {
		fileWriter.Close()
		return err
	}
	return fileWriter.Close()
}

func writeRows(fw source.ParquetFile, rows <-chan PlyRow, parallel int64) error {
	parquetWriter, err := writer.NewParquetWriter(fw, new(PlyRow), parallel)
	if err != nil {
		drain(rows)
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	var writeErr error
	for row := range rows {
		if writeErr == nil {
			writeErr = parquetWriter.Write(row)
		}
	}
	if writeErr != nil {
		return writeErr
	}
	return parquetWriter.WriteStop()
}

func drain(rows <-chan PlyRow) {
	for range rows {
	}
}
