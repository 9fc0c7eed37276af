// Package rules holds the year-versioned tax parameters and the standard
// deduction algorithms derived from them. Each supported tax year supplies
// one TaxYearRules implementation carrying the IRS-published constants for
// that filing season; the derived algorithms are shared and never
// re-implemented per year.
package rules

import (
	"sort"

	"github.com/gideontax/gideon-api/internal/types"
)

// TaxYearRules exposes the year identity and the published dollar constants
// the deduction algorithms operate on. Implementations are immutable and
// stateless, safe to share across any number of concurrent computations.
type TaxYearRules interface {
	Year() types.TaxYear

	// Typical standard deduction bases by filing-status bucket.
	SingleMFSBaseDeduction() types.USD
	MFJQSSBaseDeduction() types.USD
	HOHBaseDeduction() types.USD

	// Additional deduction per checked age/blindness box.
	AdditionalDeductionUnmarried() types.USD
	AdditionalDeductionMarried() types.USD

	// Dependent formula constants.
	DependentEarnedIncomeAddition() types.USD
	DependentMinimumDeduction() types.USD
}

// DeductionParams is the full input to StandardDeduction.
//
// Spouse may legitimately accompany MarriedFilingSeparately only when the
// spouse had no income, is not filing, and cannot be claimed as another
// person's dependent. That precondition is the caller's to establish; it is
// documented here rather than validated.
type DeductionParams struct {
	FilingStatus      types.FilingStatus
	Taxpayer          types.Filer
	Spouse            *types.Filer
	IsDependent       bool
	IsDualStatusAlien bool
	SpouseItemizes    bool

	// EarnedIncome is consulted only when IsDependent is set.
	EarnedIncome types.USD
}

// TypicalStandardDeduction returns the base deduction for a filing status,
// before any additional or dependent treatment.
func TypicalStandardDeduction(r TaxYearRules, status types.FilingStatus) types.USD {
	switch status {
	case types.MarriedFilingJointly, types.QualifyingSurvivingSpouse:
		return r.MFJQSSBaseDeduction()
	case types.HeadOfHousehold:
		return r.HOHBaseDeduction()
	default:
		return r.SingleMFSBaseDeduction()
	}
}

// StandardDeduction computes the full standard deduction.
//
// Evaluation order matters: the zero-deduction overrides short-circuit
// before any per-box or dependent computation, and the dependent cap is
// always against the ordinary base for the status, never against a
// boxes-adjusted value.
func StandardDeduction(r TaxYearRules, params DeductionParams) types.USD {
	if params.IsDualStatusAlien {
		return types.USDZero
	}
	if params.FilingStatus == types.MarriedFilingSeparately && params.SpouseItemizes {
		return types.USDZero
	}

	base := TypicalStandardDeduction(r, params.FilingStatus)

	perBox := r.AdditionalDeductionUnmarried()
	boxes := params.Taxpayer.CheckedBoxes()
	if params.FilingStatus.IsMarried() {
		perBox = r.AdditionalDeductionMarried()
		if params.Spouse != nil {
			boxes += params.Spouse.CheckedBoxes()
		}
	}
	additional := perBox.MulInt(boxes)

	if params.IsDependent {
		floor := r.DependentMinimumDeduction()
		cappedBase := types.MinUSD(
			types.MaxUSD(params.EarnedIncome.Add(r.DependentEarnedIncomeAddition()), floor),
			base,
		)
		return cappedBase.Add(additional)
	}

	return base.Add(additional)
}

// registry maps each supported tax year to its rule set. Adding a year means
// adding one record here; the algorithms never change.
var registry = map[types.TaxYear]TaxYearRules{
	Rules2024{}.Year(): Rules2024{},
	Rules2025{}.Year(): Rules2025{},
}

// ForYear returns the rule set for a tax year, or false if the year is not
// supported.
func ForYear(year types.TaxYear) (TaxYearRules, bool) {
	r, ok := registry[year]
	return r, ok
}

// SupportedYears lists every registered tax year in ascending order.
func SupportedYears() []types.TaxYear {
	years := make([]types.TaxYear, 0, len(registry))
	for y := range registry {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	return years
}
