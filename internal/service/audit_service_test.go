package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightaudit/internal/audit"
	"freightaudit/internal/config"
	"freightaudit/internal/domain"
	"freightaudit/internal/port"
	"freightaudit/internal/provider"
	"freightaudit/internal/service"
	"freightaudit/mocks"
)

func testRules() domain.ContractRules {
	return domain.ContractRules{
		ZoneARate:               30,
		ZoneBRate:               35,
		ZoneCRate:               45,
		CODFeePercentage:        2,
		RTOFlatFee:              80,
		FuelSurchargePercentage: 12,
		DocketCharge:            25,
		GSTPercentage:           18,
	}
}

func newTestAuditService(repo port.ContractRepository, notifier port.AuditNotifier, emailCfg *config.EmailConfig) service.AuditService {
	return service.NewAuditService(audit.NewEngine(), provider.NewClassifier(), repo, notifier, emailCfg)
}

func TestAuditServiceRunEmptyBatch(t *testing.T) {
	svc := newTestAuditService(nil, nil, nil)
	_, err := svc.Run(context.Background(), service.AuditInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestAuditServiceRunWithStoredContract(t *testing.T) {
	repo := new(mocks.MockContractRepo)
	repo.On("GetByNormalizedName", mock.Anything, "delhivery").
		Return(&domain.ProviderContract{ProviderName: "Delhivery", NormalizedName: "delhivery", ContractRules: testRules()}, nil)

	svc := newTestAuditService(repo, nil, nil)

	out, err := svc.Run(context.Background(), service.AuditInput{
		Rows: []domain.ShipmentRow{
			{AWB: "AWB001", Provider: "Delhivery Ltd", OrderType: domain.OrderTypePrepaid, ActualWeight: 0.4, BilledWeight: 0.4, BilledZone: domain.ZoneA, ActualZone: domain.ZoneA, TotalBilledAmount: 90},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Providers, 1)

	p := out.Providers[0]
	assert.Equal(t, "Delhivery", p.Provider)
	assert.False(t, p.Partial)
	require.Len(t, p.Result.Discrepancies, 1)
	assert.Equal(t, "Rate Overcharge", p.Result.Discrepancies[0].IssueType)
	assert.Equal(t, 20.85, out.Summary.TotalOvercharge)
	repo.AssertExpectations(t)
}

func TestAuditServiceInlineContractWins(t *testing.T) {
	// Repo would blow up if hit; the inline contract must short-circuit it.
	repo := new(mocks.MockContractRepo)

	svc := newTestAuditService(repo, nil, nil)

	out, err := svc.Run(context.Background(), service.AuditInput{
		Rows: []domain.ShipmentRow{
			{AWB: "AWB001", Provider: "Delhivery", OrderType: domain.OrderTypePrepaid, ActualWeight: 0.4, BilledWeight: 0.4, BilledZone: domain.ZoneA, ActualZone: domain.ZoneA, TotalBilledAmount: 90},
		},
		Contracts: map[string]domain.ContractRules{"DELHIVERY": testRules()},
	})
	require.NoError(t, err)
	require.Len(t, out.Providers, 1)
	assert.False(t, out.Providers[0].Partial)
	repo.AssertNotCalled(t, "GetByNormalizedName", mock.Anything, mock.Anything)
}

func TestAuditServiceUnknownProviderPartial(t *testing.T) {
	svc := newTestAuditService(nil, nil, nil)

	out, err := svc.Run(context.Background(), service.AuditInput{
		Rows: []domain.ShipmentRow{
			{AWB: "AWB001", Provider: "XYZ Couriers", BilledWeight: 2.0, ActualWeight: 1.0, TotalBilledAmount: 100},
			{AWB: "AWB002", BilledWeight: 1.0, ActualWeight: 1.0, TotalBilledAmount: 50},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Providers, 2)

	byName := map[string]service.ProviderAudit{}
	for _, p := range out.Providers {
		byName[p.Provider] = p
	}

	xyz, ok := byName["XYZ Couriers"]
	require.True(t, ok)
	assert.True(t, xyz.Partial)
	require.Len(t, xyz.Result.Discrepancies, 1)
	assert.Equal(t, "Unknown Provider — Weight Overcharge", xyz.Result.Discrepancies[0].IssueType)

	other, ok := byName[provider.UnknownLabel]
	require.True(t, ok)
	assert.True(t, other.Partial)
	assert.Empty(t, other.Result.Discrepancies)

	assert.Equal(t, 2, out.Summary.TotalRows)
	assert.Equal(t, 150.0, out.Summary.TotalBilled)
}

func TestAuditServiceKnownProviderWithoutContractFallsBack(t *testing.T) {
	repo := new(mocks.MockContractRepo)
	repo.On("GetByNormalizedName", mock.Anything, "delhivery").
		Return(nil, domain.ErrContractNotFound)

	svc := newTestAuditService(repo, nil, nil)

	out, err := svc.Run(context.Background(), service.AuditInput{
		Rows: []domain.ShipmentRow{
			{AWB: "AWB001", Provider: "Delhivery", BilledWeight: 1.02, ActualWeight: 1.0, TotalBilledAmount: 100},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Providers, 1)
	assert.True(t, out.Providers[0].Partial)
	repo.AssertExpectations(t)
}

func TestAuditServiceNotifies(t *testing.T) {
	notifier := new(mocks.MockAuditNotifier)
	notifier.On("SendAuditSummary", mock.Anything, "finance@example.in", mock.MatchedBy(func(s port.AuditSummary) bool {
		return s.TotalRows == 1 && s.FlaggedRows == 1
	})).Return(nil)

	emailCfg := &config.EmailConfig{NotifyAddress: "finance@example.in"}
	svc := newTestAuditService(nil, notifier, emailCfg)

	_, err := svc.Run(context.Background(), service.AuditInput{
		Rows: []domain.ShipmentRow{
			{AWB: "AWB001", Provider: "Delhivery", OrderType: domain.OrderTypePrepaid, ActualWeight: 0.4, BilledWeight: 0.4, BilledZone: domain.ZoneA, ActualZone: domain.ZoneA, TotalBilledAmount: 90},
		},
		Contracts: map[string]domain.ContractRules{"Delhivery": testRules()},
	})
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
