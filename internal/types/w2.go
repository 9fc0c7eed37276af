package types

// W2 is an IRS Form W-2 wage and tax statement, reduced to the fields the
// engine consumes plus the coded and state/local groups carried through for
// callers that render or audit the source documents.
type W2 struct {
	EmployeeSSN  string `json:"employee_ssn,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployerEIN  string `json:"employer_ein,omitempty"`
	EmployerName string `json:"employer_name,omitempty"`
	ControlNum   string `json:"control_num,omitempty"`

	// Boxes 1-11
	Wages                 USD `json:"wages"`                   // box 1
	FedWithholding        USD `json:"fed_withholding"`         // box 2
	SocialSecurityWages   USD `json:"social_security_wages"`   // box 3
	SocialSecurityTax     USD `json:"social_security_tax"`     // box 4
	MedicareWagesAndTips  USD `json:"medicare_wages_and_tips"` // box 5
	MedicareTaxWithheld   USD `json:"medicare_tax_withheld"`   // box 6
	SocialSecurityTips    USD `json:"social_security_tips"`    // box 7
	AllocatedTips         USD `json:"allocated_tips"`          // box 8
	DependentCareBenefits USD `json:"dependent_care_benefits"` // box 10
	NonqualifiedPlans     USD `json:"nonqualified_plans"`      // box 11

	// Box 13 checkboxes
	StatutoryEmployee bool `json:"statutory_employee"`
	RetirementPlan    bool `json:"retirement_plan"`
	ThirdPartySickPay bool `json:"third_party_sick_pay"`

	Box12 []Box12Entry `json:"box_12,omitempty"`

	// Boxes 15-20
	StateLocal []W2StateTaxGroup `json:"state_local,omitempty"`
}

// Box12Code is a coded-box identifier for W-2 box 12 entries.
type Box12Code string

// Box 12 codes the engine recognizes. The full code set is larger; these are
// the ones that affect federal income computation or commonly appear on
// imported statements.
const (
	Box12UncollectedSSTax   Box12Code = "A"
	Box12UncollectedMedTax  Box12Code = "B"
	Box12GroupTermLife      Box12Code = "C"
	Box12Elective401k       Box12Code = "D"
	Box12Elective403b       Box12Code = "E"
	Box12Elective408k       Box12Code = "F"
	Box12Elective457b       Box12Code = "G"
	Box12NonTaxSickPay      Box12Code = "J"
	Box12HSAContribution    Box12Code = "W"
	Box12Roth401k           Box12Code = "AA"
	Box12Roth403b           Box12Code = "BB"
	Box12EmployerHealthCost Box12Code = "DD"
)

// Box12Entry is a box 12 code plus amount pair.
type Box12Entry struct {
	Code   Box12Code `json:"code"`
	Amount USD       `json:"amount"`
}

// W2StateTaxGroup covers boxes 15-17 with nested locals (boxes 18-20).
type W2StateTaxGroup struct {
	StateAbbrev     string            `json:"state_abbrev,omitempty"`
	EmployerStateID string            `json:"employer_state_id,omitempty"`
	StateWages      USD               `json:"state_wages"`
	StateIncomeTax  USD               `json:"state_income_tax"`
	Locals          []W2LocalTaxGroup `json:"locals,omitempty"`
}

// W2LocalTaxGroup covers boxes 18-20.
type W2LocalTaxGroup struct {
	LocalWages     USD    `json:"local_wages"`
	LocalIncomeTax USD    `json:"local_income_tax"`
	LocalityName   string `json:"locality_name,omitempty"`
}

// SumWages totals box 1 across a set of W-2s.
func SumWages(forms []W2) USD {
	total := USDZero
	for _, f := range forms {
		total = total.Add(f.Wages)
	}
	return total
}

// SumWithholding totals box 2 across a set of W-2s.
func SumWithholding(forms []W2) USD {
	total := USDZero
	for _, f := range forms {
		total = total.Add(f.FedWithholding)
	}
	return total
}
