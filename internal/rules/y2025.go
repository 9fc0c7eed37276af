package rules

import "github.com/gideontax/gideon-api/internal/types"

// Rules2025 carries the IRS-published parameters for tax year 2025
// (filed in 2026).
//
// See: https://www.irs.gov/instructions/i1040gi
type Rules2025 struct{}

func (Rules2025) Year() types.TaxYear { return 2025 }

func (Rules2025) SingleMFSBaseDeduction() types.USD { return types.FromDollars(15_750) }
func (Rules2025) MFJQSSBaseDeduction() types.USD    { return types.FromDollars(31_500) }
func (Rules2025) HOHBaseDeduction() types.USD       { return types.FromDollars(23_625) }

func (Rules2025) AdditionalDeductionUnmarried() types.USD { return types.FromDollars(2_000) }
func (Rules2025) AdditionalDeductionMarried() types.USD   { return types.FromDollars(1_600) }

func (Rules2025) DependentEarnedIncomeAddition() types.USD { return types.FromDollars(450) }
func (Rules2025) DependentMinimumDeduction() types.USD     { return types.FromDollars(1_350) }
