// Command audit runs an offline courier invoice audit against a local
// invoice export and a JSON rate card, printing the result as JSON.
// No network and no database are involved.
//
// Usage:
//
//	audit -invoice export.csv -ratecard delhivery.json [-mapping mapping.json]
//
// Without -ratecard, a degraded partial audit runs using only in-file
// evidence (duplicate AWBs, stated weights and zones).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"freightaudit/internal/audit"
	"freightaudit/internal/domain"
	"freightaudit/internal/ingest"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	invoicePath := flag.String("invoice", "", "path to the invoice export (csv or xlsx)")
	rateCardPath := flag.String("ratecard", "", "path to the rate card JSON (optional; omit for a partial audit)")
	mappingPath := flag.String("mapping", "", "path to a raw-header mapping JSON (optional)")
	flag.Parse()

	if *invoicePath == "" {
		flag.Usage()
		return fmt.Errorf("-invoice is required")
	}

	mapping, err := loadMapping(*mappingPath)
	if err != nil {
		return err
	}

	rows, err := loadRows(*invoicePath, mapping)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrEmptyBatch
	}

	var result domain.AnalysisResult
	if *rateCardPath == "" {
		result = audit.PartialAudit(rows)
	} else {
		rules, err := loadRateCard(*rateCardPath)
		if err != nil {
			return err
		}
		result = audit.NewEngine().Audit(rows, rules)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func loadRows(path string, mapping map[string]*string) ([]domain.ShipmentRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening invoice: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ingest.ReadCSV(f, mapping)
	case ".xlsx":
		return ingest.ReadXLSX(f, mapping)
	}
	return nil, fmt.Errorf("unsupported invoice file type %q; allowed: csv, xlsx", filepath.Ext(path))
}

func loadRateCard(path string) (domain.ContractRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ContractRules{}, fmt.Errorf("reading rate card: %w", err)
	}

	rules := domain.ContractRules{
		FuelSurchargePercentage: domain.DefaultFuelSurchargePct,
		DocketCharge:            domain.DefaultDocketCharge,
		GSTPercentage:           domain.DefaultGSTPct,
	}
	if err := json.Unmarshal(data, &rules); err != nil {
		return domain.ContractRules{}, fmt.Errorf("parsing rate card: %w", err)
	}
	return rules, nil
}

func loadMapping(path string) (map[string]*string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping: %w", err)
	}
	var mapping map[string]*string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parsing mapping: %w", err)
	}
	return mapping, nil
}
