package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"freightaudit/internal/domain"
)

// ReadXLSX decodes the first sheet of an XLSX invoice export. Header
// handling and cell coercion match ReadCSV.
func ReadXLSX(r io.Reader, mapping map[string]*string) ([]domain.ShipmentRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	fields := resolveHeader(records[0], mapping)
	rows := make([]domain.ShipmentRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, mapRecord(fields, record))
	}
	return rows, nil
}
