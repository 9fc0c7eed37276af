package rules

import "github.com/gideontax/gideon-api/internal/types"

// Rules2024 carries the IRS-published parameters for tax year 2024
// (filed in 2025).
type Rules2024 struct{}

func (Rules2024) Year() types.TaxYear { return 2024 }

func (Rules2024) SingleMFSBaseDeduction() types.USD { return types.FromDollars(14_600) }
func (Rules2024) MFJQSSBaseDeduction() types.USD    { return types.FromDollars(29_200) }
func (Rules2024) HOHBaseDeduction() types.USD       { return types.FromDollars(21_900) }

func (Rules2024) AdditionalDeductionUnmarried() types.USD { return types.FromDollars(1_950) }
func (Rules2024) AdditionalDeductionMarried() types.USD   { return types.FromDollars(1_550) }

func (Rules2024) DependentEarnedIncomeAddition() types.USD { return types.FromDollars(450) }
func (Rules2024) DependentMinimumDeduction() types.USD     { return types.FromDollars(1_300) }
