// Package ingest is the batch-ingestion boundary: it turns raw CSV/XLSX
// invoice exports into typed ShipmentRow values. Malformed cells coerce to
// zero/empty semantics rather than rejecting the row — a single bad row must
// never abort the rest of the batch. Strict validation, if wanted, belongs
// to callers.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"freightaudit/internal/domain"
)

// Standard schema field names, as produced by the header-mapping
// collaborator.
const (
	FieldAWB               = "AWB"
	FieldOrderType         = "OrderType"
	FieldBilledWeight      = "BilledWeight"
	FieldActualWeight      = "ActualWeight"
	FieldBilledZone        = "BilledZone"
	FieldActualZone        = "ActualZone"
	FieldTotalBilledAmount = "TotalBilledAmount"
	FieldShipmentDate      = "ShipmentDate"
	FieldOriginPincode     = "OriginPincode"
	FieldDestPincode       = "DestPincode"
	FieldProvider          = "Provider"
	FieldLength            = "Length"
	FieldWidth             = "Width"
	FieldHeight            = "Height"
)

// ReadCSV decodes a CSV invoice export. The first record is the header row.
// mapping translates raw headers to standard field names; headers that are
// already standard pass through unchanged, and a nil mapping means all
// headers are taken as-is.
func ReadCSV(r io.Reader, mapping map[string]*string) ([]domain.ShipmentRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	fields := resolveHeader(header, mapping)

	var rows []domain.ShipmentRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		rows = append(rows, mapRecord(fields, record))
	}
	return rows, nil
}

// resolveHeader applies the raw-header mapping, producing the standard field
// name per column. Unmapped columns get an empty name and are ignored.
func resolveHeader(header []string, mapping map[string]*string) []string {
	fields := make([]string, len(header))
	for i, raw := range header {
		raw = strings.TrimSpace(raw)
		if mapping != nil {
			if std, ok := mapping[raw]; ok {
				if std != nil {
					fields[i] = *std
				}
				continue
			}
		}
		fields[i] = raw
	}
	return fields
}

// mapRecord builds a ShipmentRow from one record, coercing each cell.
func mapRecord(fields, record []string) domain.ShipmentRow {
	var row domain.ShipmentRow
	for i, field := range fields {
		if i >= len(record) {
			break
		}
		value := strings.TrimSpace(record[i])
		switch field {
		case FieldAWB:
			row.AWB = value
		case FieldOrderType:
			row.OrderType = coerceOrderType(value)
		case FieldBilledWeight:
			row.BilledWeight = coerceFloat(value)
		case FieldActualWeight:
			row.ActualWeight = coerceFloat(value)
		case FieldBilledZone:
			row.BilledZone = coerceZone(value)
		case FieldActualZone:
			row.ActualZone = coerceZone(value)
		case FieldTotalBilledAmount:
			row.TotalBilledAmount = coerceFloat(value)
		case FieldShipmentDate:
			row.ShipmentDate = value
		case FieldOriginPincode:
			row.OriginPincode = value
		case FieldDestPincode:
			row.DestPincode = value
		case FieldProvider:
			row.Provider = value
		case FieldLength:
			row.Length = coerceFloat(value)
		case FieldWidth:
			row.Width = coerceFloat(value)
		case FieldHeight:
			row.Height = coerceFloat(value)
		}
	}
	return row
}

// coerceFloat parses a numeric cell, stripping thousands separators and a
// leading currency symbol; malformed values become 0.
func coerceFloat(value string) float64 {
	cleaned := strings.TrimSpace(strings.TrimPrefix(value, "₹"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

func coerceZone(value string) domain.Zone {
	return domain.Zone(strings.ToUpper(strings.TrimSpace(value)))
}

func coerceOrderType(value string) domain.OrderType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "prepaid":
		return domain.OrderTypePrepaid
	case "cod":
		return domain.OrderTypeCOD
	case "rto":
		return domain.OrderTypeRTO
	case "return":
		return domain.OrderTypeReturn
	}
	return domain.OrderType(strings.TrimSpace(value))
}
