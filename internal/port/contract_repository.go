package port

import (
	"context"

	"freightaudit/internal/domain"
)

// ContractRepository persists provider rate cards keyed by the normalized
// (lower-cased, trimmed) provider name.
type ContractRepository interface {
	Upsert(ctx context.Context, contract *domain.ProviderContract) error
	GetByNormalizedName(ctx context.Context, normalizedName string) (*domain.ProviderContract, error)
	List(ctx context.Context) ([]domain.ProviderContract, error)
	Delete(ctx context.Context, normalizedName string) error
}
