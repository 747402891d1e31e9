package parsers

import (
	"bytes"
	"fmt"
	"strings"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
	"github.com/xuri/excelize/v2"
)

// XLSXParser parses XLSX entry-sheet files.
type XLSXParser struct{}

// NewXLSXParser creates a new XLSX parser.
func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

// Parse reads the first sheet of an XLSX workbook into RawRows.
func (p *XLSXParser) Parse(fileData []byte, fileName string) ([]importservice.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileData))
	if err != nil {
		if strings.Contains(err.Error(), "zip: not a valid zip file") {
			return nil, fmt.Errorf("failed to open XLSX file: %w. (Hint: If this is a CSV file, please ensure it has a .csv extension)", err)
		}
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	return rowsToRawRows(rows)
}
