package handlers

import (
	"fmt"

	"github.com/gideontax/gideon-api/internal/spine"
	"github.com/gideontax/gideon-api/internal/types"
)

// Request types

// FilerRequest mirrors types.Filer on the wire.
type FilerRequest struct {
	Is65OrOlder bool `json:"is_65_or_older"`
	IsBlind     bool `json:"is_blind"`
}

func (f FilerRequest) toFiler() types.Filer {
	return types.Filer{Is65OrOlder: f.Is65OrOlder, IsBlind: f.IsBlind}
}

// ComputeReturnRequest is one return to compute. Wage and withholding cents
// may be given directly, through attached W-2s, or both; the amounts are
// summed.
type ComputeReturnRequest struct {
	TaxYear          int           `json:"tax_year" binding:"required"`
	FilingStatus     string        `json:"filing_status" binding:"required"`
	WagesCents       int64         `json:"wages_cents"`
	WithholdingCents int64         `json:"withholding_cents"`
	W2s              []types.W2    `json:"w2s,omitempty"`
	Taxpayer         FilerRequest  `json:"taxpayer"`
	Spouse           *FilerRequest `json:"spouse,omitempty"`

	IsDependent       bool `json:"is_dependent"`
	IsDualStatusAlien bool `json:"is_dual_status_alien"`
	SpouseItemizes    bool `json:"spouse_itemizes"`

	AdditionalIncome *types.AdditionalIncome `json:"additional_income,omitempty"`
	Adjustments      *types.Adjustments      `json:"adjustments,omitempty"`
}

// ToReturnInput validates the request and converts it to a spine input.
func (r ComputeReturnRequest) ToReturnInput() (spine.ReturnInput, error) {
	status, err := types.ParseFilingStatus(r.FilingStatus)
	if err != nil {
		return spine.ReturnInput{}, err
	}
	if r.WagesCents < 0 || r.WithholdingCents < 0 {
		return spine.ReturnInput{}, fmt.Errorf("wages and withholding must be non-negative")
	}

	input := spine.ReturnInput{
		TaxYear:           types.TaxYear(r.TaxYear),
		FilingStatus:      status,
		W2Wages:           types.FromCents(r.WagesCents).Add(types.SumWages(r.W2s)),
		FedWithholding:    types.FromCents(r.WithholdingCents).Add(types.SumWithholding(r.W2s)),
		Taxpayer:          r.Taxpayer.toFiler(),
		IsDependent:       r.IsDependent,
		IsDualStatusAlien: r.IsDualStatusAlien,
		SpouseItemizes:    r.SpouseItemizes,
		AdditionalIncome:  r.AdditionalIncome,
		Adjustments:       r.Adjustments,
	}
	if r.Spouse != nil {
		spouse := r.Spouse.toFiler()
		input.Spouse = &spouse
	}
	return input, nil
}

// BatchComputeRequest is a set of independent returns. Workers caps the
// worker pool for inline computation; zero means a sensible default.
type BatchComputeRequest struct {
	Returns []ComputeReturnRequest `json:"returns" binding:"required"`
	Workers int                    `json:"workers,omitempty"`
}

// StandardDeductionRequest exposes the deduction calculator directly.
type StandardDeductionRequest struct {
	TaxYear           int           `json:"tax_year" binding:"required"`
	FilingStatus      string        `json:"filing_status" binding:"required"`
	Taxpayer          FilerRequest  `json:"taxpayer"`
	Spouse            *FilerRequest `json:"spouse,omitempty"`
	IsDependent       bool          `json:"is_dependent"`
	IsDualStatusAlien bool          `json:"is_dual_status_alien"`
	SpouseItemizes    bool          `json:"spouse_itemizes"`
	EarnedIncomeCents int64         `json:"earned_income_cents"`
}

// Response types

// LedgerEntryResponse is one pipeline stage with its exact cent amount and a
// rendered display string.
type LedgerEntryResponse struct {
	Stage       string `json:"stage"`
	AmountCents int64  `json:"amount_cents"`
	Display     string `json:"display"`
}

// ComputeReturnResponse is a completed computation. Ledger entries are in
// pipeline order.
type ComputeReturnResponse struct {
	ComputationID string                `json:"computation_id"`
	TaxYear       int                   `json:"tax_year"`
	FilingStatus  string                `json:"filing_status"`
	Ledger        []LedgerEntryResponse `json:"ledger"`
}

// BatchItemResponse is one slot of a batch result.
type BatchItemResponse struct {
	Index  int                    `json:"index"`
	Error  string                 `json:"error,omitempty"`
	Result *ComputeReturnResponse `json:"result,omitempty"`
}

// BatchComputeResponse summarizes an inline batch computation.
type BatchComputeResponse struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []BatchItemResponse `json:"results"`
}

// BatchEnqueuedResponse acknowledges jobs handed to the processor queue.
type BatchEnqueuedResponse struct {
	BatchID  string `json:"batch_id"`
	Enqueued int    `json:"enqueued"`
}

// StandardDeductionResponse is the deduction calculator result.
type StandardDeductionResponse struct {
	TaxYear        int    `json:"tax_year"`
	FilingStatus   string `json:"filing_status"`
	DeductionCents int64  `json:"deduction_cents"`
	Display        string `json:"display"`
}

// TaxYearResponse describes one supported tax year and its published
// deduction constants.
type TaxYearResponse struct {
	Year                               int   `json:"year"`
	SingleMFSBaseDeductionCents        int64 `json:"single_mfs_base_deduction_cents"`
	MFJQSSBaseDeductionCents           int64 `json:"mfj_qss_base_deduction_cents"`
	HOHBaseDeductionCents              int64 `json:"hoh_base_deduction_cents"`
	AdditionalDeductionUnmarriedCents  int64 `json:"additional_deduction_unmarried_cents"`
	AdditionalDeductionMarriedCents    int64 `json:"additional_deduction_married_cents"`
	DependentEarnedIncomeAdditionCents int64 `json:"dependent_earned_income_addition_cents"`
	DependentMinimumDeductionCents     int64 `json:"dependent_minimum_deduction_cents"`
}

// TaxYearsResponse lists the supported years.
type TaxYearsResponse struct {
	Data []TaxYearResponse `json:"data"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
