package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freightaudit/internal/domain"
)

// MockContractRepo is a mock implementation of port.ContractRepository.
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Upsert(ctx context.Context, contract *domain.ProviderContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepo) GetByNormalizedName(ctx context.Context, normalizedName string) (*domain.ProviderContract, error) {
	args := m.Called(ctx, normalizedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderContract), args.Error(1)
}

func (m *MockContractRepo) List(ctx context.Context) ([]domain.ProviderContract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderContract), args.Error(1)
}

func (m *MockContractRepo) Delete(ctx context.Context, normalizedName string) error {
	args := m.Called(ctx, normalizedName)
	return args.Error(0)
}
