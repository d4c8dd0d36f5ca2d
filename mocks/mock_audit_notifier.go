package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freightaudit/internal/port"
)

// MockAuditNotifier is a mock implementation of port.AuditNotifier.
type MockAuditNotifier struct {
	mock.Mock
}

func (m *MockAuditNotifier) SendAuditSummary(ctx context.Context, toEmail string, summary port.AuditSummary) error {
	args := m.Called(ctx, toEmail, summary)
	return args.Error(0)
}
