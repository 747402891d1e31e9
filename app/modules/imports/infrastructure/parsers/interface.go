package parsers

import (
	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
)

// Parser decodes raw spreadsheet bytes into header-keyed rows. The first
// non-empty row is the header; every following row becomes one RawRow with
// missing trailing cells filled in as empty strings.
type Parser interface {
	Parse(fileData []byte, fileName string) ([]importservice.RawRow, error)
}
