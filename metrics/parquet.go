package metrics

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type moveRow struct {
	Game     int32  `parquet:"name=game, type=INT32"`
	Step     int32  `parquet:"name=step, type=INT32"`
	Player   int32  `parquet:"name=player, type=INT32"`
	Roll     int32  `parquet:"name=roll, type=INT32"`
	Kind     string `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	Token    int32  `parquet:"name=token, type=INT32"`
	Bonus    bool   `parquet:"name=bonus, type=BOOLEAN"`
	Captured bool   `parquet:"name=captured, type=BOOLEAN"`
	Exited   bool   `parquet:"name=exited, type=BOOLEAN"`
}

// WriteMoveParquet writes move records as a snappy-compressed parquet file.
func WriteMoveParquet(path string, records []MoveRecord) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(moveRow), 1)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, r := range records {
		row := moveRow{
			Game:     int32(r.Game),
			Step:     int32(r.Step),
			Player:   int32(r.Player),
			Roll:     int32(r.Roll),
			Kind:     r.Kind,
			Token:    int32(r.Token),
			Bonus:    r.Bonus,
			Captured: r.Captured,
			Exited:   r.Exited,
		}
		if err := parquetWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return fileWriter.Close()
}
