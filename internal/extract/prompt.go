package extract

import (
	"encoding/json"
	"strings"
)

// BuildRateCardPrompt returns the extraction prompt for courier rate-card
// documents.
func BuildRateCardPrompt() string {
	return `You are an AI trained to extract logistics contract rates for Indian D2C e-commerce brands.
Read this courier service agreement document and extract the exact pricing details.

Return ONLY a strict JSON object (no markdown, no backticks, no explanation) with these exact keys:
- provider_name             (string)  : courier company name, e.g. "Delhivery"
- zone_a_rate               (number)  : per 500g freight rate for Zone A (intra-city / metro-to-metro)
- zone_b_rate               (number)  : per 500g freight rate for Zone B (same state)
- zone_c_rate               (number)  : per 500g freight rate for Zone C (cross-state)
- zone_d_rate               (number, optional) : per 500g freight rate for Zone D (difficult terrain), omit if not in the contract
- zone_e_rate               (number, optional) : per 500g freight rate for Zone E (extreme remote), omit if not in the contract
- cod_fee_percentage        (number)  : COD handling fee as a percentage of freight, e.g. 1.5
- rto_flat_fee              (number)  : Return-to-Origin flat fee in INR
- fuel_surcharge_percentage (number)  : fuel or handling surcharge as a percentage of base freight
- docket_charge             (number)  : per-shipment docket / AWB charge in INR
- gst_percentage            (number)  : GST rate applied to courier services (typically 18)

Rules:
- All monetary values must be plain numbers in Indian Rupees (no currency symbols).
- If a field is not explicitly stated in the contract, use these sensible defaults:
  fuel_surcharge_percentage = 12, docket_charge = 25, gst_percentage = 18.
- Never return null for a required field; always return a number.`
}

// BuildHeaderMapPrompt returns the prompt for mapping raw CSV headers to the
// standard shipment schema.
func BuildHeaderMapPrompt(rawHeaders []string) string {
	encoded, _ := json.Marshal(rawHeaders)
	var b strings.Builder
	b.WriteString(`You are a data engineer for an Indian D2C brand. Map the following raw CSV headers to our standard schema. Our standard keys are: AWB, OrderType, BilledWeight, ActualWeight, BilledZone, ActualZone, TotalBilledAmount, ShipmentDate, OriginPincode, DestPincode. Return ONLY a strict JSON object (no markdown, no backticks) where the keys are the RAW headers and the values are the STANDARD keys. If a raw header doesn't match anything, map it to null.

Raw headers:
`)
	b.Write(encoded)
	return b.String()
}
