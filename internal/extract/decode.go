package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"freightaudit/internal/domain"
)

// rateCardPayload mirrors the JSON contract of the extraction prompt. The
// three surcharge fields are pointers so that an omitted field can be told
// apart from a genuine zero and filled with the standard default.
type rateCardPayload struct {
	ProviderName            string   `json:"provider_name"`
	ZoneARate               float64  `json:"zone_a_rate"`
	ZoneBRate               float64  `json:"zone_b_rate"`
	ZoneCRate               float64  `json:"zone_c_rate"`
	ZoneDRate               *float64 `json:"zone_d_rate"`
	ZoneERate               *float64 `json:"zone_e_rate"`
	CODFeePercentage        float64  `json:"cod_fee_percentage"`
	RTOFlatFee              float64  `json:"rto_flat_fee"`
	FuelSurchargePercentage *float64 `json:"fuel_surcharge_percentage"`
	DocketCharge            *float64 `json:"docket_charge"`
	GSTPercentage           *float64 `json:"gst_percentage"`
}

// DecodeRateCard parses a model's JSON reply into a provider name and
// ContractRules, applying the standard defaults for unstated surcharge
// fields.
func DecodeRateCard(text string) (string, domain.ContractRules, error) {
	var payload rateCardPayload
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &payload); err != nil {
		return "", domain.ContractRules{}, fmt.Errorf("unmarshaling rate card JSON: %w", err)
	}

	rules := domain.ContractRules{
		ZoneARate:               payload.ZoneARate,
		ZoneBRate:               payload.ZoneBRate,
		ZoneCRate:               payload.ZoneCRate,
		ZoneDRate:               payload.ZoneDRate,
		ZoneERate:               payload.ZoneERate,
		CODFeePercentage:        payload.CODFeePercentage,
		RTOFlatFee:              payload.RTOFlatFee,
		FuelSurchargePercentage: domain.DefaultFuelSurchargePct,
		DocketCharge:            domain.DefaultDocketCharge,
		GSTPercentage:           domain.DefaultGSTPct,
	}
	if payload.FuelSurchargePercentage != nil {
		rules.FuelSurchargePercentage = *payload.FuelSurchargePercentage
	}
	if payload.DocketCharge != nil {
		rules.DocketCharge = *payload.DocketCharge
	}
	if payload.GSTPercentage != nil {
		rules.GSTPercentage = *payload.GSTPercentage
	}

	return payload.ProviderName, rules, nil
}

// DecodeHeaderMap parses a model's JSON reply into a raw-header → standard
// field mapping. Unmatched headers keep a nil value.
func DecodeHeaderMap(text string) (map[string]*string, error) {
	mapping := make(map[string]*string)
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &mapping); err != nil {
		return nil, fmt.Errorf("unmarshaling header map JSON: %w", err)
	}
	return mapping, nil
}

// StripCodeFences removes a leading/trailing markdown code fence that some
// models wrap around JSON despite instructions.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
