package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightaudit/internal/domain"
)

func TestWriterDiscrepancyRows(t *testing.T) {
	vol := 3.0
	discrepancies := []domain.Discrepancy{
		{
			AWB:           "AWB001",
			IssueType:     "Rate Overcharge",
			BilledAmount:  90,
			CorrectAmount: 69.15,
			Difference:    20.85,
			Breakdown: &domain.BreakdownDetail{
				ZoneUsed:           domain.ZoneA,
				ZoneSource:         "stated",
				DeadWeightKg:       0.4,
				VolumetricWeightKg: &vol,
				ChargeableWeightKg: 3.0,
				Slabs:              6,
				RatePerSlab:        30,
				BaseFreight:        180,
				FuelSurcharge:      21.6,
				DocketCharge:       25,
				PreGSTAmount:       226.6,
				GSTAmount:          40.79,
				ExpectedTotal:      267.39,
			},
		},
		{
			AWB:          "AWB002",
			IssueType:    "Duplicate Charge",
			BilledAmount: 70,
			Difference:   70,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteDiscrepancies("Delhivery", discrepancies))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Provider", records[0][0])
	assert.Equal(t, "AWB Number", records[0][1])

	full := records[1]
	assert.Equal(t, "Delhivery", full[0])
	assert.Equal(t, "AWB001", full[1])
	assert.Equal(t, "Rate Overcharge", full[2])
	assert.Equal(t, "90.00", full[3])
	assert.Equal(t, "69.15", full[4])
	assert.Equal(t, "20.85", full[5])
	assert.Equal(t, "A", full[6])
	assert.Equal(t, "3.000", full[9])
	assert.Equal(t, "6", full[11])

	// Breakdown columns stay empty without a computed trail.
	dup := records[2]
	assert.Equal(t, "AWB002", dup[1])
	assert.Equal(t, "", dup[6])
	assert.Equal(t, "", dup[11])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Delhivery_Q2_audit", SanitizeFilename("Delhivery Q2 audit"))
	assert.Equal(t, "a_b", SanitizeFilename("a///b"))
	assert.Equal(t, "report", SanitizeFilename("__report__"))
	assert.Len(t, SanitizeFilename(strings.Repeat("x", 200)), 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("audit discrepancies")
	assert.True(t, strings.HasPrefix(name, "audit_discrepancies_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
