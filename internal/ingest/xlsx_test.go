package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"freightaudit/internal/domain"
)

func buildWorkbook(t *testing.T, cells [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"AWB", "Provider", "OrderType", "BilledWeight", "TotalBilledAmount"},
		{"AWB001", "Delhivery", "COD", 1.2, 245.5},
		{"AWB002", "Blue Dart", "Prepaid", 0.5, "₹1,100.00"},
	})

	rows, err := ReadXLSX(buf, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "AWB001", rows[0].AWB)
	assert.Equal(t, domain.OrderTypeCOD, rows[0].OrderType)
	assert.InDelta(t, 1.2, rows[0].BilledWeight, 1e-9)
	assert.InDelta(t, 245.5, rows[0].TotalBilledAmount, 1e-9)

	assert.Equal(t, "Blue Dart", rows[1].Provider)
	assert.InDelta(t, 1100.0, rows[1].TotalBilledAmount, 1e-9)
}

func TestReadXLSXWithMapping(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Waybill No", "Courier", "Charged Wt"},
		{"AWB010", "Ecom Express", 2.0},
	})

	awb := FieldAWB
	provider := FieldProvider
	weight := FieldBilledWeight
	mapping := map[string]*string{
		"Waybill No": &awb,
		"Courier":    &provider,
		"Charged Wt": &weight,
	}

	rows, err := ReadXLSX(buf, mapping)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AWB010", rows[0].AWB)
	assert.Equal(t, "Ecom Express", rows[0].Provider)
	assert.InDelta(t, 2.0, rows[0].BilledWeight, 1e-9)
}

func TestReadXLSXNotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(bytes.NewReader([]byte("plain text, not a zip")), nil)
	assert.Error(t, err)
}
