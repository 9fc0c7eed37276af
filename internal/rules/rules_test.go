package rules_test

import (
	"testing"

	"github.com/gideontax/gideon-api/internal/rules"
	"github.com/gideontax/gideon-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blind       = types.Filer{IsBlind: true}
	senior      = types.Filer{Is65OrOlder: true}
	seniorBlind = types.Filer{Is65OrOlder: true, IsBlind: true}
)

func params(status types.FilingStatus) rules.DeductionParams {
	return rules.DeductionParams{FilingStatus: status}
}

func TestTypicalStandardDeduction2025(t *testing.T) {
	r := rules.Rules2025{}
	tests := []struct {
		status types.FilingStatus
		want   types.USD
	}{
		{types.Single, types.FromDollars(15_750)},
		{types.MarriedFilingSeparately, types.FromDollars(15_750)},
		{types.MarriedFilingJointly, types.FromDollars(31_500)},
		{types.QualifyingSurvivingSpouse, types.FromDollars(31_500)},
		{types.HeadOfHousehold, types.FromDollars(23_625)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.TypicalStandardDeduction(r, tt.status), tt.status.String())
	}
}

func TestStandardDeductionBoxes(t *testing.T) {
	r := rules.Rules2025{}

	tests := []struct {
		name   string
		params rules.DeductionParams
		want   types.USD
	}{
		{
			name: "single senior",
			params: rules.DeductionParams{
				FilingStatus: types.Single,
				Taxpayer:     senior,
			},
			// 15,750 + 1 * 2,000
			want: types.FromDollars(17_750),
		},
		{
			name: "single senior and blind",
			params: rules.DeductionParams{
				FilingStatus: types.Single,
				Taxpayer:     seniorBlind,
			},
			// 15,750 + 2 * 2,000
			want: types.FromDollars(19_750),
		},
		{
			name: "mfj both spouses senior",
			params: rules.DeductionParams{
				FilingStatus: types.MarriedFilingJointly,
				Taxpayer:     senior,
				Spouse:       &senior,
			},
			// 31,500 + 2 * 1,600
			want: types.FromDollars(34_700),
		},
		{
			name: "mfj all four boxes",
			params: rules.DeductionParams{
				FilingStatus: types.MarriedFilingJointly,
				Taxpayer:     seniorBlind,
				Spouse:       &seniorBlind,
			},
			// 31,500 + 4 * 1,600
			want: types.FromDollars(37_900),
		},
		{
			name: "hoh blind",
			params: rules.DeductionParams{
				FilingStatus: types.HeadOfHousehold,
				Taxpayer:     blind,
			},
			// 23,625 + 1 * 2,000
			want: types.FromDollars(25_625),
		},
		{
			name: "mfs with eligible senior spouse",
			params: rules.DeductionParams{
				FilingStatus: types.MarriedFilingSeparately,
				Spouse:       &senior,
			},
			// 15,750 + 1 * 1,600
			want: types.FromDollars(17_350),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.StandardDeduction(r, tt.params))
		})
	}
}

func TestStandardDeductionDependent(t *testing.T) {
	r := rules.Rules2025{}

	tests := []struct {
		name   string
		earned types.USD
		want   types.USD
	}{
		// max(0 + 450, 1,350) = 1,350
		{"zero earned income hits floor", types.USDZero, types.FromDollars(1_350)},
		// max(500 + 450, 1,350) = 1,350
		{"low earned income hits floor", types.FromDollars(500), types.FromDollars(1_350)},
		// max(5,000 + 450, 1,350) = 5,450
		{"mid earned income uses formula", types.FromDollars(5_000), types.FromDollars(5_450)},
		// min(20,450, 15,750) = 15,750
		{"high earned income capped at base", types.FromDollars(20_000), types.FromDollars(15_750)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params(types.Single)
			p.IsDependent = true
			p.EarnedIncome = tt.earned
			assert.Equal(t, tt.want, rules.StandardDeduction(r, p))
		})
	}
}

func TestStandardDeductionDependentWithBoxes(t *testing.T) {
	p := params(types.Single)
	p.IsDependent = true
	p.Taxpayer = seniorBlind
	p.EarnedIncome = types.FromDollars(3_000)
	// base portion min(max(3,450, 1,350), 15,750) = 3,450; additional 2 * 2,000
	assert.Equal(t, types.FromDollars(7_450), rules.StandardDeduction(rules.Rules2025{}, p))
}

func TestStandardDeductionDependentBounds(t *testing.T) {
	r := rules.Rules2025{}
	for _, status := range types.AllFilingStatuses() {
		base := rules.TypicalStandardDeduction(r, status)
		for _, earned := range []int64{0, 100, 1_000, 10_000, 50_000, 1_000_000} {
			p := params(status)
			p.IsDependent = true
			p.EarnedIncome = types.FromDollars(earned)
			got := rules.StandardDeduction(r, p)
			assert.False(t, got.LessThan(r.DependentMinimumDeduction()),
				"%s earned=%d below dependent minimum", status, earned)
			assert.False(t, got.GreaterThan(base),
				"%s earned=%d above ordinary base", status, earned)
		}
	}
}

func TestStandardDeductionZeroOverrides(t *testing.T) {
	r := rules.Rules2025{}

	// Dual-status alien zeroes everything, boxes and dependent status included.
	p := params(types.Single)
	p.IsDualStatusAlien = true
	p.Taxpayer = seniorBlind
	p.IsDependent = true
	p.EarnedIncome = types.FromDollars(50_000)
	assert.Equal(t, types.USDZero, rules.StandardDeduction(r, p))

	// MFS where the spouse itemizes.
	p = params(types.MarriedFilingSeparately)
	p.SpouseItemizes = true
	p.Taxpayer = senior
	assert.Equal(t, types.USDZero, rules.StandardDeduction(r, p))

	// SpouseItemizes is meaningful only under MFS.
	p = params(types.Single)
	p.SpouseItemizes = true
	assert.Equal(t, types.FromDollars(15_750), rules.StandardDeduction(r, p))
}

func TestStandardDeductionMonotonicInBoxes(t *testing.T) {
	r := rules.Rules2025{}
	filersByBoxes := []types.Filer{{}, senior, seniorBlind}

	for _, status := range types.AllFilingStatuses() {
		prev := types.USDZero
		for i, filer := range filersByBoxes {
			p := params(status)
			p.Taxpayer = filer
			got := rules.StandardDeduction(r, p)
			if i > 0 {
				assert.False(t, got.LessThan(prev),
					"%s deduction decreased from %s to %s at %d boxes",
					status, prev, got, filer.CheckedBoxes())
			}
			prev = got
		}
	}
}

func TestRules2024Constants(t *testing.T) {
	r := rules.Rules2024{}
	assert.Equal(t, types.TaxYear(2024), r.Year())
	assert.Equal(t, types.FromDollars(14_600), rules.StandardDeduction(r, params(types.Single)))
	assert.Equal(t, types.FromDollars(29_200), rules.StandardDeduction(r, params(types.MarriedFilingJointly)))
	assert.Equal(t, types.FromDollars(21_900), rules.StandardDeduction(r, params(types.HeadOfHousehold)))

	p := params(types.Single)
	p.Taxpayer = seniorBlind
	assert.Equal(t, types.FromDollars(18_500), rules.StandardDeduction(r, p))

	p = params(types.Single)
	p.IsDependent = true
	assert.Equal(t, types.FromDollars(1_300), rules.StandardDeduction(r, p))
}

func TestRegistry(t *testing.T) {
	years := rules.SupportedYears()
	require.Equal(t, []types.TaxYear{2024, 2025}, years)

	for _, y := range years {
		r, ok := rules.ForYear(y)
		require.True(t, ok)
		assert.Equal(t, y, r.Year())
	}

	_, ok := rules.ForYear(1999)
	assert.False(t, ok)
}
