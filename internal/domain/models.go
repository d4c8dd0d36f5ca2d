package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShipmentRow is one billed shipment from a courier invoice. Rows are
// immutable once ingested; the audit engine never mutates them.
type ShipmentRow struct {
	AWB               string    `json:"awb"`
	OrderType         OrderType `json:"order_type"`
	BilledWeight      float64   `json:"billed_weight"`
	ActualWeight      float64   `json:"actual_weight"`
	BilledZone        Zone      `json:"billed_zone"`
	ActualZone        Zone      `json:"actual_zone"`
	TotalBilledAmount float64   `json:"total_billed_amount"`
	Length            float64   `json:"length,omitempty"`
	Width             float64   `json:"width,omitempty"`
	Height            float64   `json:"height,omitempty"`
	OriginPincode     string    `json:"origin_pincode,omitempty"`
	DestPincode       string    `json:"dest_pincode,omitempty"`
	ShipmentDate      string    `json:"shipment_date,omitempty"`
	Provider          string    `json:"provider,omitempty"`
}

// Default surcharge values applied when a rate card does not state them.
const (
	DefaultFuelSurchargePct = 12.0
	DefaultDocketCharge     = 25.0
	DefaultGSTPct           = 18.0
)

// ContractRules is a provider's contracted rate card. Zone A-C rates are
// per-500g-slab freight rates and always present; D/E rates are optional
// because many contracts do not cover remote zones.
type ContractRules struct {
	ZoneARate               float64  `json:"zone_a_rate" db:"zone_a_rate"`
	ZoneBRate               float64  `json:"zone_b_rate" db:"zone_b_rate"`
	ZoneCRate               float64  `json:"zone_c_rate" db:"zone_c_rate"`
	ZoneDRate               *float64 `json:"zone_d_rate,omitempty" db:"zone_d_rate"`
	ZoneERate               *float64 `json:"zone_e_rate,omitempty" db:"zone_e_rate"`
	CODFeePercentage        float64  `json:"cod_fee_percentage" db:"cod_fee_percentage"`
	RTOFlatFee              float64  `json:"rto_flat_fee" db:"rto_flat_fee"`
	FuelSurchargePercentage float64  `json:"fuel_surcharge_percentage" db:"fuel_surcharge_percentage"`
	DocketCharge            float64  `json:"docket_charge" db:"docket_charge"`
	GSTPercentage           float64  `json:"gst_percentage" db:"gst_percentage"`
}

// RateForZone returns the contracted slab rate for a zone. ok is false for
// zones D/E when the contract has no rate configured for them.
func (c *ContractRules) RateForZone(z Zone) (float64, bool) {
	switch z {
	case ZoneA:
		return c.ZoneARate, true
	case ZoneB:
		return c.ZoneBRate, true
	case ZoneC:
		return c.ZoneCRate, true
	case ZoneD:
		if c.ZoneDRate != nil {
			return *c.ZoneDRate, true
		}
	case ZoneE:
		if c.ZoneERate != nil {
			return *c.ZoneERate, true
		}
	}
	return 0, false
}

// ProviderContract is a persisted rate card for one courier, keyed by the
// normalized provider name. ContractRules is embedded so its db-tagged
// columns map flat and its rate fields serialize at the top level.
type ProviderContract struct {
	ID             uuid.UUID `json:"id" db:"id"`
	ProviderName   string    `json:"provider_name" db:"provider_name"`
	NormalizedName string    `json:"normalized_name" db:"normalized_name"`
	ContractRules
	SourceBucket string    `json:"source_bucket,omitempty" db:"source_bucket"`
	SourceKey    string    `json:"source_key,omitempty" db:"source_key"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NormalizeProviderName lowercases and trims a raw provider name for use as
// a contract store key.
func NormalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// BreakdownDetail is the full computed cost trail for one flagged row.
// Monetary fields are rounded to 2 decimals, weights to 3.
type BreakdownDetail struct {
	ZoneUsed           Zone     `json:"zone_used"`
	ZoneSource         string   `json:"zone_source"` // "pincode" or "stated"
	DeadWeightKg       float64  `json:"dead_weight_kg"`
	VolumetricWeightKg *float64 `json:"volumetric_weight_kg,omitempty"`
	ChargeableWeightKg float64  `json:"chargeable_weight_kg"`
	Slabs              int      `json:"slabs"`
	RatePerSlab        float64  `json:"rate_per_slab"`
	BaseFreight        float64  `json:"base_freight"`
	FuelSurcharge      float64  `json:"fuel_surcharge"`
	DocketCharge       float64  `json:"docket_charge"`
	CODFee             float64  `json:"cod_fee"`
	PreGSTAmount       float64  `json:"pre_gst_amount"`
	GSTAmount          float64  `json:"gst_amount"`
	ExpectedTotal      float64  `json:"expected_total"`
}

// Discrepancy is one flagged invoice row.
type Discrepancy struct {
	AWB           string           `json:"awb_number"`
	IssueType     string           `json:"issue_type"`
	BilledAmount  float64          `json:"billed_amount"`
	CorrectAmount float64          `json:"correct_amount"`
	Difference    float64          `json:"difference"`
	Breakdown     *BreakdownDetail `json:"breakdown,omitempty"`
}

// AnalysisResult aggregates an audited batch. TotalOvercharge is the sum of
// each discrepancy's already-rounded difference, re-rounded to 2 decimals.
type AnalysisResult struct {
	Discrepancies   []Discrepancy `json:"discrepancies"`
	TotalOvercharge float64       `json:"total_overcharge"`
	TotalRows       int           `json:"total_rows"`
	TotalBilled     float64       `json:"total_billed"`
}
