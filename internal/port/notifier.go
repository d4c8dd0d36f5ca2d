package port

import "context"

// AuditSummary is the digest sent out after an audit run.
type AuditSummary struct {
	Provider        string
	TotalRows       int
	FlaggedRows     int
	TotalBilled     float64
	TotalOvercharge float64
}

// AuditNotifier delivers audit summaries to the shipper's finance contact.
type AuditNotifier interface {
	SendAuditSummary(ctx context.Context, toEmail string, summary AuditSummary) error
}
