package parsers

import (
	"fmt"
	"strings"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
)

// Factory creates the appropriate parser based on file extension.
type Factory struct{}

// NewFactory creates a new parser factory.
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns a parser for the given file name.
func (f *Factory) GetParser(fileName string) (Parser, error) {
	fileName = strings.ToLower(fileName)

	if strings.HasSuffix(fileName, ".csv") {
		return NewCSVParser(), nil
	}

	if strings.HasSuffix(fileName, ".xlsx") || strings.HasSuffix(fileName, ".xls") {
		return NewXLSXParser(), nil
	}

	return nil, fmt.Errorf("unsupported file type: %s (must be .csv or .xlsx)", fileName)
}

// FactoryParser selects the concrete parser from the file extension on every
// call. It satisfies the import service's SpreadsheetParser contract.
type FactoryParser struct {
	factory *Factory
}

// NewFactoryParser creates a new FactoryParser.
func NewFactoryParser() *FactoryParser {
	return &FactoryParser{factory: NewFactory()}
}

// Parse decodes fileData with the parser matching fileName's extension.
func (p *FactoryParser) Parse(fileData []byte, fileName string) ([]importservice.RawRow, error) {
	parser, err := p.factory.GetParser(fileName)
	if err != nil {
		return nil, err
	}
	return parser.Parse(fileData, fileName)
}
