package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gideontax/gideon-api/internal/brackets"
	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/rules"
	"github.com/gideontax/gideon-api/internal/spine"
	"github.com/gideontax/gideon-api/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoredReturn is the persisted record of one completed computation.
type StoredReturn struct {
	ID           uuid.UUID
	TaxYear      types.TaxYear
	FilingStatus types.FilingStatus
	Ledger       spine.Ledger
	CreatedAt    time.Time
}

// ReturnStore persists completed computations for audit.
type ReturnStore interface {
	InsertComputedReturn(ctx context.Context, record StoredReturn) error
	GetComputedReturn(ctx context.Context, id uuid.UUID) (StoredReturn, error)
}

// ComputeResult is the outcome of one return computation.
type ComputeResult struct {
	ComputationID uuid.UUID
	TaxYear       types.TaxYear
	FilingStatus  types.FilingStatus
	Ledger        spine.Ledger
}

// BatchItemResult pairs one batch input slot with its result or error.
type BatchItemResult struct {
	Index  int
	Result *ComputeResult
	Err    error
}

// ReturnService runs the spine over the registered rule sets and optionally
// persists each completed ledger.
type ReturnService struct {
	store      ReturnStore // nil disables persistence
	computeTax spine.BracketFunc
	logger     *zap.Logger
}

// NewReturnService creates a new return service. Pass a nil store to skip
// persistence.
func NewReturnService(store ReturnStore) *ReturnService {
	return &ReturnService{
		store:      store,
		computeTax: brackets.ComputeTax,
		logger:     logger.Log,
	}
}

// ComputeReturn selects the rule set for the input's tax year, runs the
// spine, and persists the ledger when a store is configured.
func (s *ReturnService) ComputeReturn(ctx context.Context, input spine.ReturnInput) (*ComputeResult, error) {
	yearRules, ok := rules.ForYear(input.TaxYear)
	if !ok {
		return nil, fmt.Errorf("no rules registered for tax year %s (supported: %v)",
			input.TaxYear, rules.SupportedYears())
	}

	ledger, err := spine.Compute(yearRules, s.computeTax, input)
	if err != nil {
		return nil, fmt.Errorf("failed to compute return: %w", err)
	}

	result := &ComputeResult{
		ComputationID: uuid.New(),
		TaxYear:       input.TaxYear,
		FilingStatus:  input.FilingStatus,
		Ledger:        ledger,
	}

	s.logger.Info("Computed return",
		zap.String("computation_id", result.ComputationID.String()),
		zap.String("tax_year", input.TaxYear.String()),
		zap.String("filing_status", input.FilingStatus.String()),
		zap.Int64("taxable_income_cents", ledger[spine.KeyTaxableIncome].Cents()),
		zap.Int64("total_tax_cents", ledger[spine.KeyTotalTax].Cents()),
		zap.Int64("refund_cents", ledger[spine.KeyRefund].Cents()),
		zap.Int64("amount_owed_cents", ledger[spine.KeyAmountOwed].Cents()))

	if s.store != nil {
		record := StoredReturn{
			ID:           result.ComputationID,
			TaxYear:      result.TaxYear,
			FilingStatus: result.FilingStatus,
			Ledger:       ledger,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.store.InsertComputedReturn(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to persist computed return %s: %w",
				result.ComputationID, err)
		}
	}

	return result, nil
}

// GetComputedReturn fetches a previously persisted computation.
func (s *ReturnService) GetComputedReturn(ctx context.Context, id uuid.UUID) (StoredReturn, error) {
	if s.store == nil {
		return StoredReturn{}, fmt.Errorf("no return store configured")
	}
	return s.store.GetComputedReturn(ctx, id)
}

// ComputeBatch fans a set of independent returns out over a worker pool.
// Each computation reads only its own input and an immutable rule set, so no
// coordination beyond the work queue is needed. Results preserve input
// order; per-item failures are reported in their slot without aborting the
// batch.
func (s *ReturnService) ComputeBatch(ctx context.Context, inputs []spine.ReturnInput, workerCount int) []BatchItemResult {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}

	results := make([]BatchItemResult, len(inputs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				result, err := s.ComputeReturn(ctx, inputs[i])
				results[i] = BatchItemResult{Index: i, Result: result, Err: err}
			}
		}()
	}

	for i := range inputs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info("Computed batch",
		zap.Int("total", len(inputs)),
		zap.Int("succeeded", len(inputs)-failed),
		zap.Int("failed", failed),
		zap.Int("workers", workerCount))

	return results
}
