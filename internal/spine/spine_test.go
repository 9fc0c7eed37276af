package spine_test

import (
	"errors"
	"testing"

	"github.com/gideontax/gideon-api/internal/brackets"
	"github.com/gideontax/gideon-api/internal/rules"
	"github.com/gideontax/gideon-api/internal/spine"
	"github.com/gideontax/gideon-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(wages, withholding int64) spine.ReturnInput {
	return spine.ReturnInput{
		TaxYear:        2025,
		FilingStatus:   types.Single,
		W2Wages:        types.FromDollars(wages),
		FedWithholding: types.FromDollars(withholding),
	}
}

func compute(t *testing.T, in spine.ReturnInput) spine.Ledger {
	t.Helper()
	ledger, err := spine.Compute(rules.Rules2025{}, brackets.ComputeTax, in)
	require.NoError(t, err)
	return ledger
}

func TestYearMismatchAbortsBeforeComputing(t *testing.T) {
	in := input(50_000, 0)
	in.TaxYear = 2024

	ledger, err := spine.Compute(rules.Rules2025{}, brackets.ComputeTax, in)
	require.Error(t, err)
	assert.Nil(t, ledger)

	var mismatch *spine.YearMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, types.TaxYear(2024), mismatch.Input)
	assert.Equal(t, types.TaxYear(2025), mismatch.Rules)
}

func TestTaxComputeErrorWrapsCause(t *testing.T) {
	cause := errors.New("bracket table gap")
	failing := func(types.TaxYear, types.FilingStatus, int64) (int64, error) {
		return 0, cause
	}

	ledger, err := spine.Compute(rules.Rules2025{}, failing, input(50_000, 0))
	require.Error(t, err)
	assert.Nil(t, ledger)

	var taxErr *spine.TaxComputeError
	require.ErrorAs(t, err, &taxErr)
	assert.ErrorIs(t, err, cause)
}

func TestWagesBelowDeductionFullRefund(t *testing.T) {
	ledger := compute(t, input(10_000, 2_000))

	assert.Equal(t, types.USDZero, ledger[spine.KeyTaxableIncome])
	assert.Equal(t, types.USDZero, ledger[spine.KeyRegularTax])
	assert.Equal(t, types.USDZero, ledger[spine.KeyTotalTax])
	assert.Equal(t, types.FromDollars(2_000), ledger[spine.KeyRefund])
	assert.Equal(t, types.USDZero, ledger[spine.KeyAmountOwed])
}

func TestWagesAboveDeductionNoWithholdingOwes(t *testing.T) {
	ledger := compute(t, input(50_000, 0))

	assert.True(t, ledger[spine.KeyTaxableIncome].GreaterThan(types.USDZero))
	assert.True(t, ledger[spine.KeyRegularTax].GreaterThan(types.USDZero))
	assert.Equal(t, types.USDZero, ledger[spine.KeyRefund])
	assert.Equal(t, ledger[spine.KeyTotalTax], ledger[spine.KeyAmountOwed])
}

func TestWithholdingExceedsTaxRefund(t *testing.T) {
	ledger := compute(t, input(50_000, 10_000))

	tax := ledger[spine.KeyTotalTax]
	assert.True(t, tax.GreaterThan(types.USDZero))
	assert.True(t, types.FromDollars(10_000).GreaterThan(tax))
	assert.Equal(t, types.FromDollars(10_000).Sub(tax), ledger[spine.KeyRefund])
	assert.Equal(t, types.USDZero, ledger[spine.KeyAmountOwed])
}

func TestZeroWagesZeroWithholding(t *testing.T) {
	ledger := compute(t, input(0, 0))

	assert.Equal(t, types.USDZero, ledger[spine.KeyTotalIncome])
	assert.Equal(t, types.USDZero, ledger[spine.KeyTaxableIncome])
	assert.Equal(t, types.USDZero, ledger[spine.KeyTotalTax])
	assert.Equal(t, types.USDZero, ledger[spine.KeyRefund])
	assert.Equal(t, types.USDZero, ledger[spine.KeyAmountOwed])
}

func TestLedgerHasAllKeysInPipelineOrder(t *testing.T) {
	ledger := compute(t, input(50_000, 5_000))

	keys := spine.Keys()
	require.Len(t, keys, 17)
	require.Len(t, ledger, 17)
	for _, k := range keys {
		_, ok := ledger[k]
		assert.True(t, ok, "missing key %s", k)
	}

	entries := ledger.Entries()
	require.Len(t, entries, 17)
	for i, e := range entries {
		assert.Equal(t, keys[i], e.Key)
	}
	assert.Equal(t, spine.KeyTotalIncome, entries[0].Key)
	assert.Equal(t, spine.KeyAmountOwed, entries[16].Key)
}

func TestRefundAndOwedAreMutuallyExclusive(t *testing.T) {
	for _, tc := range []struct{ wages, withholding int64 }{
		{0, 0}, {10_000, 2_000}, {50_000, 0}, {50_000, 4_000},
		{50_000, 10_000}, {200_000, 30_000}, {200_000, 60_000},
	} {
		ledger := compute(t, input(tc.wages, tc.withholding))

		refund := ledger[spine.KeyRefund]
		owed := ledger[spine.KeyAmountOwed]
		assert.False(t, refund.GreaterThan(types.USDZero) && owed.GreaterThan(types.USDZero),
			"wages=%d withholding=%d: refund %s and owed %s both nonzero",
			tc.wages, tc.withholding, refund, owed)

		tax := ledger[spine.KeyTotalTax]
		payments := ledger[spine.KeyTotalPayments]
		if tax.GreaterThan(payments) {
			assert.Equal(t, tax.Sub(payments), owed)
			assert.Equal(t, types.USDZero, refund)
		} else {
			assert.Equal(t, payments.Sub(tax), refund)
			assert.Equal(t, types.USDZero, owed)
		}
	}
}

func TestFilerDataFlowsIntoDeductions(t *testing.T) {
	in := input(50_000, 0)
	in.Taxpayer = types.Filer{Is65OrOlder: true, IsBlind: true}

	ledger := compute(t, in)
	// 15,750 + 2 * 2,000
	assert.Equal(t, types.FromDollars(19_750), ledger[spine.KeyDeductions])
}

func TestDependentDeductionUsesWagesAsEarnedIncome(t *testing.T) {
	in := input(5_000, 0)
	in.IsDependent = true

	ledger := compute(t, in)
	// min(max(5,000 + 450, 1,350), 15,750)
	assert.Equal(t, types.FromDollars(5_450), ledger[spine.KeyDeductions])
}

func TestSchedule1FlowsIntoIncomeAndAdjustments(t *testing.T) {
	in := input(40_000, 3_000)
	in.AdditionalIncome = &types.AdditionalIncome{
		BusinessIncome: types.FromDollars(12_000),
		GamblingIncome: types.FromDollars(1_000),
	}
	in.Adjustments = &types.Adjustments{
		HSADeduction:        types.FromDollars(4_000),
		StudentLoanInterest: types.FromDollars(2_000),
	}

	ledger := compute(t, in)
	assert.Equal(t, types.FromDollars(53_000), ledger[spine.KeyTotalIncome])
	assert.Equal(t, types.FromDollars(6_000), ledger[spine.KeyAdjustments])
	assert.Equal(t, types.FromDollars(47_000), ledger[spine.KeyAGI])
	// 47,000 - 15,750
	assert.Equal(t, types.FromDollars(31_250), ledger[spine.KeyTaxableIncome])
}

func TestPlaceholderStagesStillWriteZeroEntries(t *testing.T) {
	ledger := compute(t, input(50_000, 0))

	for _, k := range []spine.Key{
		spine.KeyAdditionalTax,
		spine.KeyNonRefundableCredits,
		spine.KeyRefundableCredits,
		spine.KeyEstimatedPayments,
	} {
		amount, ok := ledger[k]
		require.True(t, ok, "missing placeholder key %s", k)
		assert.Equal(t, types.USDZero, amount)
	}
}
