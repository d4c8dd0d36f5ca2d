// Package noop provides a no-op audit notifier for development and testing.
package noop

import (
	"context"
	"log"

	"freightaudit/internal/port"
)

type noopNotifier struct{}

// NewNotifier creates an AuditNotifier that logs summaries instead of sending them.
func NewNotifier() port.AuditNotifier {
	return &noopNotifier{}
}

func (n *noopNotifier) SendAuditSummary(_ context.Context, toEmail string, summary port.AuditSummary) error {
	log.Printf("[NOOP NOTIFIER] Audit summary for %s to=%s rows=%d flagged=%d billed=%.2f overcharge=%.2f",
		summary.Provider, toEmail, summary.TotalRows, summary.FlaggedRows, summary.TotalBilled, summary.TotalOvercharge)
	return nil
}
