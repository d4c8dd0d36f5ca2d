// Package provider fuzzy-matches free-text courier names from invoice
// exports to canonical known couriers, and splits row batches into known and
// unknown provider groups so the audit service can apply the right rate card.
package provider

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"freightaudit/internal/domain"
)

// classifyThreshold is the minimum similarity score (0-1) for a raw name to
// be accepted as a known courier.
const classifyThreshold = 0.7

// UnknownLabel is the group label for rows without a provider value.
const UnknownLabel = "Other"

// knownCourier pairs a canonical courier name with the alias spellings seen
// in invoice exports. Order is fixed so tie scores resolve deterministically.
type knownCourier struct {
	canonical string
	aliases   []string
}

var knownCouriers = []knownCourier{
	{"Delhivery", []string{"delhivery", "delhivery ltd", "delhivery limited", "dlvry", "del"}},
	{"BlueDart", []string{"bluedart", "blue dart", "blue dart express", "bd", "bdl"}},
	{"Ecom Express", []string{"ecom express", "ecomexpress", "ecom", "ecom exp", "ecom express ltd"}},
	{"Shadowfax", []string{"shadowfax", "shadow fax", "sfx", "shadowfax technologies"}},
}

// Match is a successful classification of a raw provider name.
type Match struct {
	Canonical  string  `json:"canonical"`
	Confidence float64 `json:"confidence"`
}

// Classifier scores raw provider names against the known courier list.
type Classifier struct {
	metric *metrics.SorensenDice
}

// NewClassifier creates a Classifier using case-insensitive bigram
// (Sorensen-Dice) similarity.
func NewClassifier() *Classifier {
	metric := metrics.NewSorensenDice()
	metric.CaseSensitive = false
	return &Classifier{metric: metric}
}

// Classify returns the best-matching known courier for a raw name, or nil
// when no courier scores at or above the threshold.
func (c *Classifier) Classify(rawName string) *Match {
	raw := strings.TrimSpace(rawName)
	if raw == "" {
		return nil
	}

	var (
		bestCanonical string
		bestScore     float64
	)
	for _, courier := range knownCouriers {
		score := strutil.Similarity(raw, courier.canonical, c.metric)
		for _, alias := range courier.aliases {
			if s := strutil.Similarity(raw, alias, c.metric); s > score {
				score = s
			}
		}
		if score > bestScore {
			bestScore = score
			bestCanonical = courier.canonical
		}
	}

	if bestCanonical == "" || bestScore < classifyThreshold {
		return nil
	}
	return &Match{Canonical: bestCanonical, Confidence: bestScore}
}

// Groups is a batch partitioned by provider. Known is keyed by canonical
// courier name, Unknown by the raw provider label. Row order within each
// group follows input order.
type Groups struct {
	Known   map[string][]domain.ShipmentRow
	Unknown map[string][]domain.ShipmentRow
}

// GroupRows partitions rows by their Provider field. Rows with a blank
// provider are bucketed under the unknown label "Other".
func (c *Classifier) GroupRows(rows []domain.ShipmentRow) Groups {
	groups := Groups{
		Known:   make(map[string][]domain.ShipmentRow),
		Unknown: make(map[string][]domain.ShipmentRow),
	}

	for _, row := range rows {
		raw := strings.TrimSpace(row.Provider)
		label := raw
		if label == "" {
			label = UnknownLabel
		}

		if match := c.Classify(raw); match != nil {
			groups.Known[match.Canonical] = append(groups.Known[match.Canonical], row)
		} else {
			groups.Unknown[label] = append(groups.Unknown[label], row)
		}
	}

	return groups
}
