package port

import (
	"context"

	"freightaudit/internal/domain"
)

// ExtractInput carries a rate-card document for field extraction.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
}

// ExtractOutput is the structured rate card pulled out of a contract
// document. Unstated surcharge fields arrive pre-filled with the standard
// defaults (fuel 12%, docket 25, GST 18%); numeric fields are never null.
type ExtractOutput struct {
	ProviderName string
	Rules        domain.ContractRules
	ModelUsed    string
}

// RateCardExtractor abstracts the document-understanding service that turns
// a scanned or typed courier contract into ContractRules.
type RateCardExtractor interface {
	ExtractRateCard(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}

// HeaderMapper abstracts the service that maps arbitrary raw CSV column
// headers to the standard shipment schema. A nil value means the raw header
// matched nothing.
type HeaderMapper interface {
	MapHeaders(ctx context.Context, rawHeaders []string) (map[string]*string, error)
}
