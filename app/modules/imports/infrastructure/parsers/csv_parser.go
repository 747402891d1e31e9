package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
)

// CSVParser parses CSV entry-sheet files.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads CSV data into RawRows.
func (p *CSVParser) Parse(fileData []byte, fileName string) ([]importservice.RawRow, error) {
	reader := csv.NewReader(strings.NewReader(string(fileData)))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		rows = append(rows, record)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV must contain at least header and one data row")
	}

	return rowsToRawRows(rows)
}
