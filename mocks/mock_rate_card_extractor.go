package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freightaudit/internal/port"
)

// MockRateCardExtractor is a mock implementation of port.RateCardExtractor.
type MockRateCardExtractor struct {
	mock.Mock
}

func (m *MockRateCardExtractor) ExtractRateCard(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}

// MockHeaderMapper is a mock implementation of port.HeaderMapper.
type MockHeaderMapper struct {
	mock.Mock
}

func (m *MockHeaderMapper) MapHeaders(ctx context.Context, rawHeaders []string) (map[string]*string, error) {
	args := m.Called(ctx, rawHeaders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*string), args.Error(1)
}
