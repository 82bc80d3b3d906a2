package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

// Load acquires the text of a statement file, choosing the PDF or CSV path
// by extension. The returned document is the input to the parsing pipeline.
func Load(filePath string) (*models.Document, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		pages, err := ExtractPDF(filePath)
		if err != nil {
			return nil, err
		}
		return &models.Document{Path: filePath, Kind: models.DocPDF, Pages: pages}, nil
	case ".csv", ".txt":
		rows, err := ReadCSV(filePath)
		if err != nil {
			return nil, err
		}
		return &models.Document{Path: filePath, Kind: models.DocCSV, Rows: rows}, nil
	}
	return nil, fmt.Errorf("unsupported file type %q, want .pdf or .csv", filepath.Ext(filePath))
}
