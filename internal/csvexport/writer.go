// Package csvexport renders audit discrepancy reports as CSV for download.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"freightaudit/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Provider",
	"AWB Number",
	"Issue Type",
	"Billed Amount",
	"Correct Amount",
	"Difference",
	"Zone Used",
	"Zone Source",
	"Dead Weight (kg)",
	"Volumetric Weight (kg)",
	"Chargeable Weight (kg)",
	"Slabs",
	"Rate Per Slab",
	"Base Freight",
	"Fuel Surcharge",
	"Docket Charge",
	"COD Fee",
	"Pre-GST Amount",
	"GST Amount",
	"Expected Total",
}

// Writer wraps csv.Writer for exporting discrepancies as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDiscrepancies converts a provider's flagged rows to CSV rows and
// writes them.
func (w *Writer) WriteDiscrepancies(provider string, discrepancies []domain.Discrepancy) error {
	for i := range discrepancies {
		row := discrepancyToRow(provider, &discrepancies[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// discrepancyToRow converts a single discrepancy to a string slice. Breakdown
// columns are left empty for rows flagged without a computed cost trail
// (duplicates, missing remote-zone rates, partial audits).
func discrepancyToRow(provider string, d *domain.Discrepancy) []string {
	row := make([]string, len(columns))

	row[0] = provider
	row[1] = d.AWB
	row[2] = d.IssueType
	row[3] = formatMoney(d.BilledAmount)
	row[4] = formatMoney(d.CorrectAmount)
	row[5] = formatMoney(d.Difference)

	if d.Breakdown == nil {
		return row
	}

	b := d.Breakdown
	row[6] = string(b.ZoneUsed)
	row[7] = b.ZoneSource
	row[8] = formatWeight(b.DeadWeightKg)
	if b.VolumetricWeightKg != nil {
		row[9] = formatWeight(*b.VolumetricWeightKg)
	}
	row[10] = formatWeight(b.ChargeableWeightKg)
	row[11] = strconv.Itoa(b.Slabs)
	row[12] = formatMoney(b.RatePerSlab)
	row[13] = formatMoney(b.BaseFreight)
	row[14] = formatMoney(b.FuelSurcharge)
	row[15] = formatMoney(b.DocketCharge)
	row[16] = formatMoney(b.CODFee)
	row[17] = formatMoney(b.PreGSTAmount)
	row[18] = formatMoney(b.GSTAmount)
	row[19] = formatMoney(b.ExpectedTotal)

	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
