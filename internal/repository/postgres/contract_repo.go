package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"freightaudit/internal/domain"
	"freightaudit/internal/port"
)

type contractRepo struct {
	db *sqlx.DB
}

// NewContractRepo creates a new PostgreSQL-backed ContractRepository.
func NewContractRepo(db *sqlx.DB) port.ContractRepository {
	return &contractRepo{db: db}
}

const upsertContractSQL = `INSERT INTO provider_contracts (
			id, provider_name, normalized_name,
			zone_a_rate, zone_b_rate, zone_c_rate, zone_d_rate, zone_e_rate,
			cod_fee_percentage, rto_flat_fee, fuel_surcharge_percentage,
			docket_charge, gst_percentage,
			source_bucket, source_key, created_at, updated_at
		) VALUES (
			:id, :provider_name, :normalized_name,
			:zone_a_rate, :zone_b_rate, :zone_c_rate, :zone_d_rate, :zone_e_rate,
			:cod_fee_percentage, :rto_flat_fee, :fuel_surcharge_percentage,
			:docket_charge, :gst_percentage,
			:source_bucket, :source_key, :created_at, :updated_at
		)
		ON CONFLICT (normalized_name) DO UPDATE SET
			provider_name = EXCLUDED.provider_name,
			zone_a_rate = EXCLUDED.zone_a_rate,
			zone_b_rate = EXCLUDED.zone_b_rate,
			zone_c_rate = EXCLUDED.zone_c_rate,
			zone_d_rate = EXCLUDED.zone_d_rate,
			zone_e_rate = EXCLUDED.zone_e_rate,
			cod_fee_percentage = EXCLUDED.cod_fee_percentage,
			rto_flat_fee = EXCLUDED.rto_flat_fee,
			fuel_surcharge_percentage = EXCLUDED.fuel_surcharge_percentage,
			docket_charge = EXCLUDED.docket_charge,
			gst_percentage = EXCLUDED.gst_percentage,
			source_bucket = EXCLUDED.source_bucket,
			source_key = EXCLUDED.source_key,
			updated_at = EXCLUDED.updated_at`

func (r *contractRepo) Upsert(ctx context.Context, contract *domain.ProviderContract) error {
	_, err := r.db.NamedExecContext(ctx, upsertContractSQL, contract)
	if err != nil {
		return fmt.Errorf("upserting contract for %q: %w", contract.NormalizedName, err)
	}
	return nil
}

func (r *contractRepo) GetByNormalizedName(ctx context.Context, normalizedName string) (*domain.ProviderContract, error) {
	var contract domain.ProviderContract
	err := r.db.GetContext(ctx, &contract,
		`SELECT id, provider_name, normalized_name,
			zone_a_rate, zone_b_rate, zone_c_rate, zone_d_rate, zone_e_rate,
			cod_fee_percentage, rto_flat_fee, fuel_surcharge_percentage,
			docket_charge, gst_percentage,
			source_bucket, source_key, created_at, updated_at
		 FROM provider_contracts
		 WHERE normalized_name = $1`,
		normalizedName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting contract for %q: %w", normalizedName, err)
	}
	return &contract, nil
}

func (r *contractRepo) List(ctx context.Context) ([]domain.ProviderContract, error) {
	var contracts []domain.ProviderContract
	err := r.db.SelectContext(ctx, &contracts,
		`SELECT id, provider_name, normalized_name,
			zone_a_rate, zone_b_rate, zone_c_rate, zone_d_rate, zone_e_rate,
			cod_fee_percentage, rto_flat_fee, fuel_surcharge_percentage,
			docket_charge, gst_percentage,
			source_bucket, source_key, created_at, updated_at
		 FROM provider_contracts
		 ORDER BY provider_name`)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	return contracts, nil
}

func (r *contractRepo) Delete(ctx context.Context, normalizedName string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM provider_contracts WHERE normalized_name = $1`, normalizedName)
	if err != nil {
		return fmt.Errorf("deleting contract for %q: %w", normalizedName, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}
