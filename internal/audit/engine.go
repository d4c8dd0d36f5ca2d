package audit

import (
	"fmt"
	"math"
	"strings"

	"freightaudit/internal/domain"
)

// Tolerances of the audit contract. Carriers legitimately round, so
// mismatches are tolerance-based rather than exact; these values are part of
// the observable output and must not drift.
const (
	slabSizeKg         = 0.5
	flagThreshold      = 2.00 // rows with difference <= this are rounding noise
	weightToleranceKg  = 0.01
	rtoTolerance       = 1.00
	surchargeThreshold = 50.00
)

// Zone source values recorded in BreakdownDetail.
const (
	zoneSourcePincode = "pincode"
	zoneSourceStated  = "stated"
)

// Engine recomputes the expected cost of each shipment row against a
// provider's contracted rate card and flags rows the carrier over-billed.
// An Engine holds no state across calls; independent batches may be audited
// concurrently.
type Engine struct{}

// NewEngine creates a rate-card audit engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Audit processes rows in input order. Order matters only for duplicate
// detection: the first occurrence of an AWB is canonical and every later
// occurrence is a Duplicate Charge regardless of its own fields.
func (e *Engine) Audit(rows []domain.ShipmentRow, contract domain.ContractRules) domain.AnalysisResult {
	discrepancies := make([]domain.Discrepancy, 0)
	seenAWBs := make(map[string]struct{}, len(rows))
	var totalBilled float64

	for i := range rows {
		row := &rows[i]
		billed := row.TotalBilledAmount
		totalBilled += billed

		if _, dup := seenAWBs[row.AWB]; dup {
			// The whole amount is the error; there is nothing to recompute.
			discrepancies = append(discrepancies, domain.Discrepancy{
				AWB:           row.AWB,
				IssueType:     "Duplicate Charge",
				BilledAmount:  billed,
				CorrectAmount: 0,
				Difference:    Round2(billed),
			})
			continue
		}
		seenAWBs[row.AWB] = struct{}{}

		chargeable, volumetric := ChargeableWeight(row.ActualWeight, row.Length, row.Width, row.Height)

		// The pincode-derived zone, when computable, is authoritative over
		// the carrier's stated zone.
		zone := row.ActualZone
		zoneSource := zoneSourceStated
		if resolved, ok := ResolveZone(row.OriginPincode, row.DestPincode); ok {
			zone = resolved
			zoneSource = zoneSourcePincode
		}

		rate, rateOK := contract.RateForZone(zone)
		if !rateOK && (zone == domain.ZoneD || zone == domain.ZoneE) {
			// Data gap, not a billing error: surfaced for manual review and
			// excluded from the overcharge total.
			discrepancies = append(discrepancies, domain.Discrepancy{
				AWB:           row.AWB,
				IssueType:     fmt.Sprintf("Zone Rate Unavailable (Zone %s) — manual review required", zone),
				BilledAmount:  billed,
				CorrectAmount: billed,
				Difference:    0,
			})
			continue
		}
		// Any other unresolvable zone keeps rate 0: malformed enum values
		// degrade to zero semantics instead of aborting the batch.

		var (
			slabs                              int
			baseFreight, fuelSurcharge, docket float64
			codFee, preGST                     float64
		)
		if row.OrderType.IsReturnFlow() {
			// RTO/Return is a flat fee plus GST; no freight, fuel, docket or
			// COD components apply.
			preGST = contract.RTOFlatFee
		} else {
			slabs = int(math.Ceil(chargeable / slabSizeKg))
			if slabs < 1 {
				slabs = 1
			}
			baseFreight = rate * float64(slabs)
			fuelSurcharge = baseFreight * contract.FuelSurchargePercentage / 100
			docket = contract.DocketCharge
			if row.OrderType == domain.OrderTypeCOD {
				codFee = (baseFreight + fuelSurcharge) * contract.CODFeePercentage / 100
			}
			preGST = baseFreight + fuelSurcharge + docket + codFee
		}
		gst := preGST * contract.GSTPercentage / 100
		expected := preGST + gst

		difference := billed - expected
		if difference <= flagThreshold {
			continue
		}

		var (
			issues           []string
			zoneMismatch     bool
			weightOvercharge bool
		)
		if row.BilledZone != zone {
			zoneMismatch = true
			if zoneSource == zoneSourcePincode {
				issues = append(issues, fmt.Sprintf("Zone Mismatch (Pincode Zone %s)", zone))
			} else {
				issues = append(issues, "Zone Mismatch")
			}
		}
		if row.BilledWeight > chargeable+weightToleranceKg {
			weightOvercharge = true
			issues = append(issues, "Weight Overcharge")
		}
		if volumetric != nil && row.BilledWeight < chargeable-weightToleranceKg {
			issues = append(issues, "Weight Discrepancy")
		}
		if row.OrderType.IsReturnFlow() && billed > expected+rtoTolerance {
			issues = append(issues, "RTO Overcharge")
		}
		// Magnitude heuristic: a large unexplained delta with no zone or
		// weight cause is flagged as a surcharge outside the contract.
		if difference > surchargeThreshold && !zoneMismatch && !weightOvercharge {
			issues = append(issues, "Non-contracted Surcharge")
		}
		if len(issues) == 0 {
			issues = append(issues, "Rate Overcharge")
		}

		breakdown := &domain.BreakdownDetail{
			ZoneUsed:           zone,
			ZoneSource:         zoneSource,
			DeadWeightKg:       Round3(row.ActualWeight),
			VolumetricWeightKg: volumetric,
			ChargeableWeightKg: Round3(chargeable),
			Slabs:              slabs,
			RatePerSlab:        Round2(rate),
			BaseFreight:        Round2(baseFreight),
			FuelSurcharge:      Round2(fuelSurcharge),
			DocketCharge:       Round2(docket),
			CODFee:             Round2(codFee),
			PreGSTAmount:       Round2(preGST),
			GSTAmount:          Round2(gst),
			ExpectedTotal:      Round2(expected),
		}

		discrepancies = append(discrepancies, domain.Discrepancy{
			AWB:           row.AWB,
			IssueType:     strings.Join(issues, ", "),
			BilledAmount:  billed,
			CorrectAmount: Round2(expected),
			Difference:    Round2(difference),
			Breakdown:     breakdown,
		})
	}

	return domain.AnalysisResult{
		Discrepancies:   discrepancies,
		TotalOvercharge: Round2(sumDifferences(discrepancies)),
		TotalRows:       len(rows),
		TotalBilled:     Round2(totalBilled),
	}
}

// sumDifferences adds each discrepancy's already-rounded difference. Summing
// pre-rounded terms is intentional; do not re-derive from raw values.
func sumDifferences(ds []domain.Discrepancy) float64 {
	var sum float64
	for i := range ds {
		sum += ds[i].Difference
	}
	return sum
}
