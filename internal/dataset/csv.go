package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/board"
)

var ErrBadRecord = errors.New("bad dataset record")

const pickColumn = "pick"

func header() []string {
	columns := make([]string, 0, board.NumPositions+1)
	for _, p := range board.Positions() {
		columns = append(columns, p.String())
	}

	return append(columns, pickColumn)
}

// WriteCSV - one row per sample: the nine features followed by the pick ordinal.
func WriteCSV(w io.Writer, samples []Sample) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, board.NumPositions+1)
	for _, sample := range samples {
		for i, feature := range sample.Features() {
			record[i] = strconv.Itoa(int(feature))
		}
		record[board.NumPositions] = strconv.Itoa(int(sample.Pick))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write sample: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush dataset: %w", err)
	}

	return nil
}

// ReadCSV - reads what WriteCSV wrote. The mover of every sample is X.
func ReadCSV(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = board.NumPositions + 1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for line, record := range records[1:] {
		sample, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

func parseRecord(record []string) (Sample, error) {
	var cells [board.NumPositions]board.Mark
	for i := range cells {
		value, err := strconv.Atoi(record[i])
		if err != nil {
			return Sample{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}

		switch value {
		case 1:
			cells[i] = board.X
		case -1:
			cells[i] = board.O
		case 0:
		default:
			return Sample{}, fmt.Errorf("%w: cell value %d", ErrBadRecord, value)
		}
	}

	b, err := board.FromCells(cells)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	pick, err := board.ParsePosition(record[board.NumPositions])
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return Sample{Board: b, Mover: board.X, Pick: pick}, nil
}
