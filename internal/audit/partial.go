package audit

import (
	"strings"

	"freightaudit/internal/domain"
)

// partialWeightTolerance is the looser weight tolerance (1%) used when no
// contract exists: without a rate card the volumetric data is not assumed
// reliable either.
const partialWeightTolerance = 0.01

// PartialAudit is the degraded audit for providers without a contracted rate
// card. It runs only qualitative checks — duplicate AWBs, billed weight more
// than 1% above actual, and a stated-zone mismatch — and never asserts a
// monetary figure it cannot justify from contract rates: apart from
// duplicates, every hit carries correct_amount == billed_amount and a zero
// difference.
func PartialAudit(rows []domain.ShipmentRow) domain.AnalysisResult {
	discrepancies := make([]domain.Discrepancy, 0)
	seenAWBs := make(map[string]struct{}, len(rows))
	var totalBilled float64

	for i := range rows {
		row := &rows[i]
		billed := row.TotalBilledAmount
		totalBilled += billed

		if _, dup := seenAWBs[row.AWB]; dup {
			discrepancies = append(discrepancies, domain.Discrepancy{
				AWB:           row.AWB,
				IssueType:     "Unknown Provider — Duplicate Charge",
				BilledAmount:  billed,
				CorrectAmount: 0,
				Difference:    Round2(billed),
			})
			continue
		}
		seenAWBs[row.AWB] = struct{}{}

		var issues []string
		if row.BilledWeight > row.ActualWeight*(1+partialWeightTolerance) {
			issues = append(issues, "Weight Overcharge")
		}
		if row.BilledZone != "" && row.ActualZone != "" && row.BilledZone != row.ActualZone {
			issues = append(issues, "Zone Mismatch")
		}
		if len(issues) == 0 {
			continue
		}

		discrepancies = append(discrepancies, domain.Discrepancy{
			AWB:           row.AWB,
			IssueType:     "Unknown Provider — " + strings.Join(issues, ", "),
			BilledAmount:  billed,
			CorrectAmount: billed,
			Difference:    0,
		})
	}

	return domain.AnalysisResult{
		Discrepancies:   discrepancies,
		TotalOvercharge: Round2(sumDifferences(discrepancies)),
		TotalRows:       len(rows),
		TotalBilled:     Round2(totalBilled),
	}
}
