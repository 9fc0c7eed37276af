// Package repository persists completed computations so every ledger a
// caller has ever been handed can be audited later.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gideontax/gideon-api/internal/services"
	"github.com/gideontax/gideon-api/internal/spine"
	"github.com/gideontax/gideon-api/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReturnRepository stores computed returns in Postgres. It implements
// services.ReturnStore.
type ReturnRepository struct {
	pool *pgxpool.Pool
}

// NewReturnRepository creates a repository backed by the given pool.
func NewReturnRepository(pool *pgxpool.Pool) *ReturnRepository {
	return &ReturnRepository{pool: pool}
}

// ledgerEntry is the persisted JSON shape of one ledger stage. Entries are
// stored as an ordered array, not an object, so the pipeline order survives
// the round trip.
type ledgerEntry struct {
	Stage       string `json:"stage"`
	AmountCents int64  `json:"amount_cents"`
}

func marshalLedger(ledger spine.Ledger) ([]byte, error) {
	entries := make([]ledgerEntry, 0, len(ledger))
	for _, e := range ledger.Entries() {
		entries = append(entries, ledgerEntry{
			Stage:       e.Key.String(),
			AmountCents: e.Amount.Cents(),
		})
	}
	return json.Marshal(entries)
}

func unmarshalLedger(data []byte) (spine.Ledger, error) {
	var entries []ledgerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}

	byName := make(map[string]spine.Key, len(spine.Keys()))
	for _, k := range spine.Keys() {
		byName[k.String()] = k
	}

	ledger := make(spine.Ledger, len(entries))
	for _, e := range entries {
		key, ok := byName[e.Stage]
		if !ok {
			return nil, fmt.Errorf("unknown ledger stage %q", e.Stage)
		}
		ledger[key] = types.FromCents(e.AmountCents)
	}
	return ledger, nil
}

// InsertComputedReturn writes one completed computation.
func (r *ReturnRepository) InsertComputedReturn(ctx context.Context, record services.StoredReturn) error {
	ledgerJSON, err := marshalLedger(record.Ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger for %s: %w", record.ID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO computed_returns (id, tax_year, filing_status, ledger, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, int(record.TaxYear), record.FilingStatus.String(), ledgerJSON, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert computed return %s: %w", record.ID, err)
	}
	return nil
}

// GetComputedReturn fetches one computation by ID. Returns pgx.ErrNoRows
// (wrapped) when no record exists.
func (r *ReturnRepository) GetComputedReturn(ctx context.Context, id uuid.UUID) (services.StoredReturn, error) {
	var (
		taxYear    int
		statusName string
		ledgerJSON []byte
		createdAt  time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT tax_year, filing_status, ledger, created_at
		 FROM computed_returns WHERE id = $1`, id).
		Scan(&taxYear, &statusName, &ledgerJSON, &createdAt)
	if err != nil {
		return services.StoredReturn{}, fmt.Errorf("failed to get computed return %s: %w", id, err)
	}

	status, err := types.ParseFilingStatus(statusName)
	if err != nil {
		return services.StoredReturn{}, fmt.Errorf("stored return %s has invalid filing status: %w", id, err)
	}
	ledger, err := unmarshalLedger(ledgerJSON)
	if err != nil {
		return services.StoredReturn{}, fmt.Errorf("stored return %s: %w", id, err)
	}

	return services.StoredReturn{
		ID:           id,
		TaxYear:      types.TaxYear(taxYear),
		FilingStatus: status,
		Ledger:       ledger,
		CreatedAt:    createdAt,
	}, nil
}
