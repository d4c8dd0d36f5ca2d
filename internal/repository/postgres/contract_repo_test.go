package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightaudit/internal/domain"
)

// Named-parameter binding against a full ProviderContract must resolve every
// placeholder in the upsert, including the rate columns of the embedded
// ContractRules.
func TestUpsertContractNamedBinding(t *testing.T) {
	dRate := 55.0
	contract := &domain.ProviderContract{
		ID:             uuid.New(),
		ProviderName:   "Delhivery",
		NormalizedName: "delhivery",
		ContractRules: domain.ContractRules{
			ZoneARate:               30,
			ZoneBRate:               35,
			ZoneCRate:               45,
			ZoneDRate:               &dRate,
			CODFeePercentage:        2,
			RTOFlatFee:              80,
			FuelSurchargePercentage: 12,
			DocketCharge:            25,
			GSTPercentage:           18,
		},
		SourceBucket: "freightaudit-ratecards",
		SourceKey:    "ratecards/x/delhivery.pdf",
	}

	query, args, err := sqlx.Named(upsertContractSQL, contract)
	require.NoError(t, err)
	assert.NotEmpty(t, query)
	assert.Len(t, args, 17)
	assert.Contains(t, args, 30.0)
	assert.Contains(t, args, "delhivery")
}
