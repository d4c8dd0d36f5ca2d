package audit

import "math"

// volumetricDivisor is the standard courier cm³→kg conversion constant.
const volumetricDivisor = 5000.0

// ChargeableWeight returns the billing weight basis: the greater of dead
// weight and volumetric weight. Volumetric weight is only computed when all
// three dimensions are strictly positive; it is reported rounded to 3
// decimals, and is nil when dimensions are missing.
func ChargeableWeight(deadWeight, length, width, height float64) (float64, *float64) {
	if length <= 0 || width <= 0 || height <= 0 {
		return deadWeight, nil
	}
	volumetric := length * width * height / volumetricDivisor
	chargeable := math.Max(deadWeight, volumetric)
	reported := Round3(volumetric)
	return chargeable, &reported
}

// Round2 rounds a monetary value to 2 decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds a weight value to 3 decimals.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
