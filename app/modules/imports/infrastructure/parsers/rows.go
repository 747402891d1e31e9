package parsers

import (
	"fmt"
	"strings"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
)

// rowsToRawRows converts a header row plus data rows into RawRows. Rows with
// no non-empty cell are skipped.
func rowsToRawRows(rows [][]string) ([]importservice.RawRow, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	out := make([]importservice.RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		raw := make(importservice.RawRow, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				raw[name] = row[i]
			} else {
				raw[name] = ""
			}
		}
		out = append(out, raw)
	}

	return out, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
