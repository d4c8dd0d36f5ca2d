package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightaudit/internal/domain"
)

func testContract() domain.ContractRules {
	return domain.ContractRules{
		ZoneARate:               30,
		ZoneBRate:               35,
		ZoneCRate:               45,
		CODFeePercentage:        2,
		RTOFlatFee:              80,
		FuelSurchargePercentage: 12,
		DocketCharge:            25,
		GSTPercentage:           18,
	}
}

func TestAuditWithinTolerance(t *testing.T) {
	// Expected: 1 slab * 30 = 30 base, +12% fuel = 33.6, +25 docket = 58.6
	// pre-GST, +18% GST = 69.148. Billed 70 leaves a 0.852 delta, under the
	// 2.00 flag threshold.
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB001",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      0.4,
			BilledWeight:      0.5,
			BilledZone:        domain.ZoneA,
			ActualZone:        domain.ZoneA,
			TotalBilledAmount: 70,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	assert.Empty(t, result.Discrepancies)
	assert.Equal(t, 0.0, result.TotalOvercharge)
	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, 70.0, result.TotalBilled)
}

func TestAuditRateOvercharge(t *testing.T) {
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB002",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      0.4,
			BilledWeight:      0.4,
			BilledZone:        domain.ZoneA,
			ActualZone:        domain.ZoneA,
			TotalBilledAmount: 90,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, "AWB002", d.AWB)
	assert.Equal(t, "Rate Overcharge", d.IssueType)
	assert.Equal(t, 90.0, d.BilledAmount)
	assert.Equal(t, 69.15, d.CorrectAmount)
	assert.Equal(t, 20.85, d.Difference)
	require.NotNil(t, d.Breakdown)
	assert.Equal(t, domain.ZoneA, d.Breakdown.ZoneUsed)
	assert.Equal(t, "stated", d.Breakdown.ZoneSource)
	assert.Equal(t, 1, d.Breakdown.Slabs)
	assert.Equal(t, 30.0, d.Breakdown.BaseFreight)
	assert.Equal(t, 3.6, d.Breakdown.FuelSurcharge)
	assert.Equal(t, 25.0, d.Breakdown.DocketCharge)
	assert.Equal(t, 0.0, d.Breakdown.CODFee)
	assert.Equal(t, 58.6, d.Breakdown.PreGSTAmount)
	assert.Equal(t, 10.55, d.Breakdown.GSTAmount)
	assert.Equal(t, 69.15, d.Breakdown.ExpectedTotal)
	assert.Equal(t, 20.85, result.TotalOvercharge)
}

func TestAuditDuplicateCharge(t *testing.T) {
	rows := []domain.ShipmentRow{
		{AWB: "AWB003", OrderType: domain.OrderTypePrepaid, ActualWeight: 0.4, BilledWeight: 0.5, BilledZone: domain.ZoneA, ActualZone: domain.ZoneA, TotalBilledAmount: 70},
		{AWB: "AWB003", OrderType: domain.OrderTypePrepaid, ActualWeight: 0.4, BilledWeight: 0.5, BilledZone: domain.ZoneA, ActualZone: domain.ZoneA, TotalBilledAmount: 70},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, "Duplicate Charge", d.IssueType)
	assert.Equal(t, 70.0, d.BilledAmount)
	assert.Equal(t, 0.0, d.CorrectAmount)
	assert.Equal(t, 70.0, d.Difference)
	assert.Nil(t, d.Breakdown)
	assert.Equal(t, 70.0, result.TotalOvercharge)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 140.0, result.TotalBilled)
}

func TestAuditCODZoneMismatchAndWeightOvercharge(t *testing.T) {
	// Pincodes resolve to Zone C (Delhi -> Mumbai), overriding the carrier's
	// stated zones. COD fee = (base + fuel) * 2%.
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB004",
			OrderType:         domain.OrderTypeCOD,
			ActualWeight:      1.2,
			BilledWeight:      2.0,
			BilledZone:        domain.ZoneB,
			ActualZone:        domain.ZoneB,
			OriginPincode:     "110001",
			DestPincode:       "400001",
			TotalBilledAmount: 260,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, "Zone Mismatch (Pincode Zone C), Weight Overcharge", d.IssueType)
	assert.Equal(t, 211.48, d.CorrectAmount)
	assert.Equal(t, 48.52, d.Difference)
	require.NotNil(t, d.Breakdown)
	assert.Equal(t, domain.ZoneC, d.Breakdown.ZoneUsed)
	assert.Equal(t, "pincode", d.Breakdown.ZoneSource)
	assert.Equal(t, 3, d.Breakdown.Slabs)
	assert.Equal(t, 135.0, d.Breakdown.BaseFreight)
	assert.Equal(t, 16.2, d.Breakdown.FuelSurcharge)
	assert.Equal(t, 3.02, d.Breakdown.CODFee)
}

func TestAuditStatedZoneMismatch(t *testing.T) {
	// No pincodes, so the carrier's stated zone B is audited as-is. Expected:
	// 1 slab * 35 = 35 base, +12% fuel = 39.2, +25 docket = 64.2 pre-GST,
	// +18% GST = 75.756. The label carries no pincode suffix.
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB010",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      0.4,
			BilledWeight:      0.4,
			BilledZone:        domain.ZoneA,
			ActualZone:        domain.ZoneB,
			TotalBilledAmount: 90,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, "Zone Mismatch", d.IssueType)
	assert.Equal(t, 75.76, d.CorrectAmount)
	assert.Equal(t, 14.24, d.Difference)
	require.NotNil(t, d.Breakdown)
	assert.Equal(t, domain.ZoneB, d.Breakdown.ZoneUsed)
	assert.Equal(t, "stated", d.Breakdown.ZoneSource)
}

func TestAuditRTOOvercharge(t *testing.T) {
	// RTO bills flat fee 80 + 18% GST = 94.4.
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB005",
			OrderType:         domain.OrderTypeRTO,
			ActualWeight:      1.0,
			BilledWeight:      1.0,
			BilledZone:        domain.ZoneB,
			ActualZone:        domain.ZoneB,
			TotalBilledAmount: 120,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, "RTO Overcharge", d.IssueType)
	assert.Equal(t, 94.4, d.CorrectAmount)
	assert.Equal(t, 25.6, d.Difference)
	require.NotNil(t, d.Breakdown)
	assert.Equal(t, 0, d.Breakdown.Slabs)
	assert.Equal(t, 0.0, d.Breakdown.BaseFreight)
	assert.Equal(t, 80.0, d.Breakdown.PreGSTAmount)
}

func TestAuditNonContractedSurcharge(t *testing.T) {
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB006",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      0.4,
			BilledWeight:      0.4,
			BilledZone:        domain.ZoneA,
			ActualZone:        domain.ZoneA,
			TotalBilledAmount: 150,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	assert.Equal(t, "Non-contracted Surcharge", result.Discrepancies[0].IssueType)
	assert.Equal(t, 80.85, result.Discrepancies[0].Difference)
}

func TestAuditZoneRateUnavailable(t *testing.T) {
	// Delhi -> Leh resolves to Zone E; the contract has no remote zone rates.
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB007",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      1.0,
			BilledWeight:      1.0,
			BilledZone:        domain.ZoneC,
			ActualZone:        domain.ZoneC,
			OriginPincode:     "110001",
			DestPincode:       "194101",
			TotalBilledAmount: 500,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, "Zone Rate Unavailable (Zone E) — manual review required", d.IssueType)
	assert.Equal(t, 500.0, d.BilledAmount)
	assert.Equal(t, 500.0, d.CorrectAmount)
	assert.Equal(t, 0.0, d.Difference)
	assert.Nil(t, d.Breakdown)
	assert.Equal(t, 0.0, result.TotalOvercharge)
}

func TestAuditZoneERateConfigured(t *testing.T) {
	contract := testContract()
	eRate := 90.0
	contract.ZoneERate = &eRate

	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB008",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      0.4,
			BilledWeight:      0.4,
			BilledZone:        domain.ZoneE,
			ActualZone:        domain.ZoneE,
			OriginPincode:     "110001",
			DestPincode:       "194101",
			TotalBilledAmount: 500,
		},
	}

	result := NewEngine().Audit(rows, contract)

	// base 90, fuel 10.8, docket 25 => 125.8 pre-GST, 148.444 expected.
	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, 148.44, d.CorrectAmount)
	require.NotNil(t, d.Breakdown)
	assert.Equal(t, 90.0, d.Breakdown.RatePerSlab)
}

func TestAuditVolumetricWeightBasis(t *testing.T) {
	// 30x20x25 cm at 5000 divisor = 3.0 kg volumetric, above the 2.0 dead
	// weight. 6 slabs * 30 = 180 base.
	rows := []domain.ShipmentRow{
		{
			AWB:               "AWB009",
			OrderType:         domain.OrderTypePrepaid,
			ActualWeight:      2.0,
			BilledWeight:      3.0,
			Length:            30,
			Width:             20,
			Height:            25,
			BilledZone:        domain.ZoneA,
			ActualZone:        domain.ZoneA,
			TotalBilledAmount: 400,
		},
	}

	result := NewEngine().Audit(rows, testContract())

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	require.NotNil(t, d.Breakdown)
	assert.Equal(t, 6, d.Breakdown.Slabs)
	assert.Equal(t, 3.0, d.Breakdown.ChargeableWeightKg)
	require.NotNil(t, d.Breakdown.VolumetricWeightKg)
	assert.Equal(t, 3.0, *d.Breakdown.VolumetricWeightKg)
}

func TestAuditEmptyBatch(t *testing.T) {
	result := NewEngine().Audit(nil, testContract())
	assert.NotNil(t, result.Discrepancies)
	assert.Empty(t, result.Discrepancies)
	assert.Equal(t, 0, result.TotalRows)
}
