package service

import (
	"context"
	"log"
	"sort"

	"freightaudit/internal/audit"
	"freightaudit/internal/config"
	"freightaudit/internal/domain"
	"freightaudit/internal/port"
	"freightaudit/internal/provider"
)

// AuditInput is the DTO for an audit run. Contracts supplied inline with the
// request take precedence over contracts looked up from the store.
type AuditInput struct {
	Rows      []domain.ShipmentRow
	Contracts map[string]domain.ContractRules
}

// ProviderAudit is the per-provider slice of an audit run. Partial marks
// groups audited without a rate card (unknown provider or no stored
// contract).
type ProviderAudit struct {
	Provider string                `json:"provider"`
	Partial  bool                  `json:"partial"`
	Result   domain.AnalysisResult `json:"result"`
}

// AuditOutput aggregates per-provider results with a combined summary.
type AuditOutput struct {
	Providers []ProviderAudit       `json:"providers"`
	Summary   domain.AnalysisResult `json:"summary"`
}

// AuditService defines the invoice audit contract.
type AuditService interface {
	Run(ctx context.Context, input AuditInput) (*AuditOutput, error)
}

type auditService struct {
	engine     *audit.Engine
	classifier *provider.Classifier
	contracts  port.ContractRepository
	notifier   port.AuditNotifier
	emailCfg   *config.EmailConfig
}

// NewAuditService creates a new AuditService implementation. The contract
// repository and notifier are optional; without a repository only inline
// contracts are used, and without a notifier no summary email is sent.
func NewAuditService(
	engine *audit.Engine,
	classifier *provider.Classifier,
	contracts port.ContractRepository,
	notifier port.AuditNotifier,
	emailCfg *config.EmailConfig,
) AuditService {
	return &auditService{
		engine:     engine,
		classifier: classifier,
		contracts:  contracts,
		notifier:   notifier,
		emailCfg:   emailCfg,
	}
}

func (s *auditService) Run(ctx context.Context, input AuditInput) (*AuditOutput, error) {
	if len(input.Rows) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	// Normalize inline contract keys so lookups match classifier output.
	inline := make(map[string]domain.ContractRules, len(input.Contracts))
	for name, rules := range input.Contracts {
		inline[domain.NormalizeProviderName(name)] = rules
	}

	groups := s.classifier.GroupRows(input.Rows)

	out := &AuditOutput{}
	for _, name := range sortedKeys(groups.Known) {
		rows := groups.Known[name]
		rules, ok := s.resolveContract(ctx, name, inline)
		if !ok {
			log.Printf("auditService.Run: no contract for provider %s, falling back to partial audit (%d rows)", name, len(rows))
			out.Providers = append(out.Providers, ProviderAudit{
				Provider: name,
				Partial:  true,
				Result:   audit.PartialAudit(rows),
			})
			continue
		}
		out.Providers = append(out.Providers, ProviderAudit{
			Provider: name,
			Result:   s.engine.Audit(rows, rules),
		})
	}
	for _, name := range sortedKeys(groups.Unknown) {
		rows := groups.Unknown[name]
		out.Providers = append(out.Providers, ProviderAudit{
			Provider: name,
			Partial:  true,
			Result:   audit.PartialAudit(rows),
		})
	}

	out.Summary = mergeResults(out.Providers)

	log.Printf("auditService.Run: audited %d rows across %d providers, flagged %d, overcharge %.2f",
		out.Summary.TotalRows, len(out.Providers), len(out.Summary.Discrepancies), out.Summary.TotalOvercharge)

	s.notify(ctx, out)

	return out, nil
}

// resolveContract finds rules for a canonical provider name, preferring
// inline request contracts over the store.
func (s *auditService) resolveContract(ctx context.Context, name string, inline map[string]domain.ContractRules) (domain.ContractRules, bool) {
	normalized := domain.NormalizeProviderName(name)
	if rules, ok := inline[normalized]; ok {
		return rules, true
	}
	if s.contracts == nil {
		return domain.ContractRules{}, false
	}
	contract, err := s.contracts.GetByNormalizedName(ctx, normalized)
	if err != nil {
		return domain.ContractRules{}, false
	}
	return contract.ContractRules, true
}

func (s *auditService) notify(ctx context.Context, out *AuditOutput) {
	if s.notifier == nil || s.emailCfg == nil || s.emailCfg.NotifyAddress == "" {
		return
	}
	summary := port.AuditSummary{
		Provider:        providerLabel(out.Providers),
		TotalRows:       out.Summary.TotalRows,
		FlaggedRows:     len(out.Summary.Discrepancies),
		TotalBilled:     out.Summary.TotalBilled,
		TotalOvercharge: out.Summary.TotalOvercharge,
	}
	if err := s.notifier.SendAuditSummary(ctx, s.emailCfg.NotifyAddress, summary); err != nil {
		log.Printf("auditService.notify: failed to send audit summary: %v", err)
	}
}

// mergeResults concatenates per-provider discrepancies in provider order and
// re-derives the batch totals.
func mergeResults(providers []ProviderAudit) domain.AnalysisResult {
	var merged domain.AnalysisResult
	var overcharge float64
	var billed float64
	for _, p := range providers {
		merged.Discrepancies = append(merged.Discrepancies, p.Result.Discrepancies...)
		merged.TotalRows += p.Result.TotalRows
		overcharge += p.Result.TotalOvercharge
		billed += p.Result.TotalBilled
	}
	merged.TotalOvercharge = audit.Round2(overcharge)
	merged.TotalBilled = audit.Round2(billed)
	return merged
}

func providerLabel(providers []ProviderAudit) string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Provider)
	}
	return joinNames(names)
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}

func sortedKeys(m map[string][]domain.ShipmentRow) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
