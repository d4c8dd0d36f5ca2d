package audit

import (
	"strings"

	"freightaudit/internal/domain"
)

// ResolveZone derives the shipping zone for an origin/destination pincode
// pair. ok is false when either pincode, after whitespace trimming, is
// shorter than 6 characters; callers then fall back to the row's stated zone.
//
// Rules are applied in strict priority order, first match wins:
//  1. destination prefix in the extreme-remote set  -> Zone E
//  2. destination prefix in the difficult-terrain set -> Zone D
//  3. origin is a metro prefix and equals the destination prefix -> Zone A
//  4. origin and destination map to the same state -> Zone B
//  5. otherwise -> Zone C
//
// D and E are destination-only classifications: remoteness surcharges are
// driven by the delivery location, not the pickup.
func ResolveZone(originPincode, destPincode string) (domain.Zone, bool) {
	origin := strings.TrimSpace(originPincode)
	dest := strings.TrimSpace(destPincode)
	if len(origin) < 6 || len(dest) < 6 {
		return "", false
	}

	originPrefix := origin[:3]
	destPrefix := dest[:3]

	if extremeRemotePrefixes[destPrefix] {
		return domain.ZoneE, true
	}
	if difficultTerrainPrefixes[destPrefix] {
		return domain.ZoneD, true
	}
	if metroPrefixes[originPrefix] && originPrefix == destPrefix {
		return domain.ZoneA, true
	}

	originState, originKnown := stateByPrefix[origin[:2]]
	destState, destKnown := stateByPrefix[dest[:2]]
	if originKnown && destKnown && originState == destState {
		return domain.ZoneB, true
	}

	return domain.ZoneC, true
}
