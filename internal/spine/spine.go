// Package spine sequences the Form 1040 derivations from income through
// refund or amount owed, producing an auditable ledger of every intermediate
// dollar amount. The computation is pure and synchronous: each call reads
// only its own input and an immutable rule set, and returns a fresh ledger.
package spine

import (
	"fmt"

	"github.com/gideontax/gideon-api/internal/rules"
	"github.com/gideontax/gideon-api/internal/types"
)

// Key identifies one pipeline stage in the ledger. The declaration order is
// the pipeline order; iteration helpers preserve it so renders and diffs are
// deterministic.
type Key int

const (
	KeyTotalIncome Key = iota
	KeyAdjustments
	KeyAGI
	KeyDeductions
	KeyTaxableIncome
	KeyRegularTax
	KeyAdditionalTax
	KeyTotalTaxPreCredits
	KeyNonRefundableCredits
	KeyTaxAfterNonRefundableCredits
	KeyRefundableCredits
	KeyTotalTax
	KeyWithholding
	KeyEstimatedPayments
	KeyTotalPayments
	KeyRefund
	KeyAmountOwed

	numKeys
)

var keyNames = [numKeys]string{
	"total_income",
	"adjustments",
	"agi",
	"deductions",
	"taxable_income",
	"regular_tax",
	"additional_tax",
	"total_tax_pre_credits",
	"nonrefundable_credits",
	"tax_after_nonrefundable_credits",
	"refundable_credits",
	"total_tax",
	"withholding",
	"estimated_payments",
	"total_payments",
	"refund",
	"amount_owed",
}

func (k Key) String() string {
	if k >= 0 && k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Keys returns every ledger key in pipeline order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Ledger maps each pipeline stage to its computed amount. A completed ledger
// always contains all seventeen keys, zero-valued stages included: a missing
// key must never be mistaken for a zero amount.
type Ledger map[Key]types.USD

// Entry is one (stage, amount) pair.
type Entry struct {
	Key    Key
	Amount types.USD
}

// Entries returns the ledger contents in pipeline order.
func (l Ledger) Entries() []Entry {
	entries := make([]Entry, 0, len(l))
	for _, k := range Keys() {
		if amount, ok := l[k]; ok {
			entries = append(entries, Entry{Key: k, Amount: amount})
		}
	}
	return entries
}

// ReturnInput is everything Compute consumes for one return.
//
// AdditionalIncome and Adjustments are optional Schedule 1 attachments; nil
// means none were filed and the corresponding stages stay zero.
type ReturnInput struct {
	TaxYear        types.TaxYear
	FilingStatus   types.FilingStatus
	W2Wages        types.USD
	FedWithholding types.USD

	// Standard deduction inputs.
	Taxpayer          types.Filer
	Spouse            *types.Filer
	IsDependent       bool
	IsDualStatusAlien bool
	SpouseItemizes    bool

	AdditionalIncome *types.AdditionalIncome
	Adjustments      *types.Adjustments
}

// BracketFunc is the external bracket-lookup collaborator. It must be
// deterministic and pure; its errors are wrapped, never swallowed.
type BracketFunc func(year types.TaxYear, status types.FilingStatus, taxableWholeDollars int64) (int64, error)

// YearMismatchError reports a return computed against the wrong rule set.
// This is a caller bug: the wrong rules were selected for the input.
type YearMismatchError struct {
	Input types.TaxYear
	Rules types.TaxYear
}

func (e *YearMismatchError) Error() string {
	return fmt.Sprintf("tax year mismatch: input=%s, rules=%s", e.Input, e.Rules)
}

// TaxComputeError wraps a failure from the bracket-lookup collaborator,
// preserving the underlying cause.
type TaxComputeError struct {
	Err error
}

func (e *TaxComputeError) Error() string {
	return fmt.Sprintf("tax computation error: %v", e.Err)
}

func (e *TaxComputeError) Unwrap() error {
	return e.Err
}

// Compute runs the full Form 1040 workflow and returns the resulting Ledger:
// income, adjustments, AGI, deductions, taxable income, regular tax,
// additional tax, credits (nonrefundable and refundable), payments, and
// refund or amount owed.
//
// A *YearMismatchError is returned before any stage is computed when
// input.TaxYear differs from r.Year(); a *TaxComputeError is returned when
// the bracket lookup fails. No partial ledger is ever returned on error, and
// failures are never retried: the computation is deterministic, so a retry
// cannot change the outcome.
func Compute(r rules.TaxYearRules, computeTax BracketFunc, input ReturnInput) (Ledger, error) {
	if input.TaxYear != r.Year() {
		return nil, &YearMismatchError{Input: input.TaxYear, Rules: r.Year()}
	}

	// TODO: remaining income sources beyond W-2 and Schedule 1 (interest,
	// dividends, capital gains).
	totalIncome := input.W2Wages
	if input.AdditionalIncome != nil {
		totalIncome = totalIncome.Add(input.AdditionalIncome.Total())
	}

	adjustments := types.USDZero
	if input.Adjustments != nil {
		adjustments = input.Adjustments.Total()
	}
	agi := totalIncome.Sub(adjustments)

	// TODO: itemized deductions (Schedule A) as an alternative to the
	// standard deduction.
	deductions := rules.StandardDeduction(r, rules.DeductionParams{
		FilingStatus:      input.FilingStatus,
		Taxpayer:          input.Taxpayer,
		Spouse:            input.Spouse,
		IsDependent:       input.IsDependent,
		IsDualStatusAlien: input.IsDualStatusAlien,
		SpouseItemizes:    input.SpouseItemizes,
		EarnedIncome:      input.W2Wages,
	})
	taxableIncome := types.MaxUSD(agi.Sub(deductions), types.USDZero)

	// The bracket lookup operates on whole dollars; convert via IRS rounding.
	taxableWholeDollars := taxableIncome.IRSRound().Cents() / 100
	regularTaxDollars, err := computeTax(input.TaxYear, input.FilingStatus, taxableWholeDollars)
	if err != nil {
		return nil, &TaxComputeError{Err: err}
	}
	regularTax := types.FromDollars(regularTaxDollars)

	// TODO: AMT, self-employment tax, additional Medicare, net investment
	// income tax.
	additionalTax := types.USDZero
	totalTaxPreCredits := regularTax.Add(additionalTax)

	// TODO: child tax credit, education credits, foreign tax credit.
	nonRefundableCredits := types.USDZero
	taxAfterNonRefundable := types.MaxUSD(totalTaxPreCredits.Sub(nonRefundableCredits), types.USDZero)

	// TODO: EIC, additional child tax credit, American opportunity credit.
	refundableCredits := types.USDZero
	totalTax := taxAfterNonRefundable.Sub(refundableCredits)

	withholding := input.FedWithholding
	// TODO: estimated tax payments, amount applied from prior year,
	// extension payments.
	estimatedPayments := types.USDZero
	totalPayments := withholding.Add(estimatedPayments)

	net := totalPayments.Sub(totalTax)
	refund := types.MaxUSD(net, types.USDZero)
	owed := types.MaxUSD(net.Neg(), types.USDZero)

	return Ledger{
		KeyTotalIncome:                  totalIncome,
		KeyAdjustments:                  adjustments,
		KeyAGI:                          agi,
		KeyDeductions:                   deductions,
		KeyTaxableIncome:                taxableIncome,
		KeyRegularTax:                   regularTax,
		KeyAdditionalTax:                additionalTax,
		KeyTotalTaxPreCredits:           totalTaxPreCredits,
		KeyNonRefundableCredits:         nonRefundableCredits,
		KeyTaxAfterNonRefundableCredits: taxAfterNonRefundable,
		KeyRefundableCredits:            refundableCredits,
		KeyTotalTax:                     totalTax,
		KeyWithholding:                  withholding,
		KeyEstimatedPayments:            estimatedPayments,
		KeyTotalPayments:                totalPayments,
		KeyRefund:                       refund,
		KeyAmountOwed:                   owed,
	}, nil
}
