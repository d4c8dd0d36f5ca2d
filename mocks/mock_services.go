package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freightaudit/internal/domain"
	"freightaudit/internal/service"
)

// MockAuditService is a mock implementation of service.AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Run(ctx context.Context, input service.AuditInput) (*service.AuditOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuditOutput), args.Error(1)
}

// MockContractService is a mock implementation of service.ContractService.
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Upload(ctx context.Context, input service.ContractUploadInput) (*domain.ProviderContract, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderContract), args.Error(1)
}

func (m *MockContractService) List(ctx context.Context) ([]domain.ProviderContract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderContract), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, providerName string) (*domain.ProviderContract, error) {
	args := m.Called(ctx, providerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderContract), args.Error(1)
}

func (m *MockContractService) Delete(ctx context.Context, providerName string) error {
	args := m.Called(ctx, providerName)
	return args.Error(0)
}
