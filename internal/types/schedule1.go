package types

// Schedule 1 containers. Both parts are pure summation: each field maps to
// one line on the form and the Total methods produce the roll-up lines that
// feed Form 1040.

// AdditionalIncome holds Schedule 1, Part I (additional income, lines 1-10).
type AdditionalIncome struct {
	// Lines 1-7
	TaxableRefunds           USD `json:"taxable_refunds"`
	AlimonyReceived          USD `json:"alimony_received"`
	BusinessIncome           USD `json:"business_income"`
	OtherGains               USD `json:"other_gains"`
	RentalRealEstate         USD `json:"rental_real_estate"`
	FarmIncome               USD `json:"farm_income"`
	UnemploymentCompensation USD `json:"unemployment_compensation"`

	// Lines 8a-8z (other income)
	NOLDeduction                 USD `json:"nol_deduction"`
	GamblingIncome               USD `json:"gambling_income"`
	CancellationOfDebt           USD `json:"cancellation_of_debt"`
	ForeignEarnedIncomeExclusion USD `json:"foreign_earned_income_exclusion"`
	IncomeForm8853               USD `json:"income_form_8853"`
	IncomeForm8889               USD `json:"income_form_8889"`
	AlaskaPermanentFund          USD `json:"alaska_permanent_fund"`
	JuryDutyPay                  USD `json:"jury_duty_pay"`
	PrizesAndAwards              USD `json:"prizes_and_awards"`
	ActivityNotForProfit         USD `json:"activity_not_for_profit"`
	StockOptions                 USD `json:"stock_options"`
	RentalPersonalProperty       USD `json:"rental_personal_property"`
	OlympicMedals                USD `json:"olympic_medals"`
	Section951AInclusion         USD `json:"section_951a_inclusion"`
	Section951AAInclusion        USD `json:"section_951a_a_inclusion"`
	ExcessBusinessLossAdj        USD `json:"excess_business_loss_adj"`
	ABLEDistributions            USD `json:"able_distributions"`
	ScholarshipGrants            USD `json:"scholarship_grants"`
	MedicaidWaiver               USD `json:"medicaid_waiver"`
	NonqualifiedDeferredComp     USD `json:"nonqualified_deferred_comp"`
	WagesWhileIncarcerated       USD `json:"wages_while_incarcerated"`
	DigitalAssets                USD `json:"digital_assets"`
	OtherIncome                  USD `json:"other_income"`
}

// TotalOtherIncome sums lines 8a-8z into line 9.
func (a AdditionalIncome) TotalOtherIncome() USD {
	return Sum(
		a.NOLDeduction,
		a.GamblingIncome,
		a.CancellationOfDebt,
		a.ForeignEarnedIncomeExclusion,
		a.IncomeForm8853,
		a.IncomeForm8889,
		a.AlaskaPermanentFund,
		a.JuryDutyPay,
		a.PrizesAndAwards,
		a.ActivityNotForProfit,
		a.StockOptions,
		a.RentalPersonalProperty,
		a.OlympicMedals,
		a.Section951AInclusion,
		a.Section951AAInclusion,
		a.ExcessBusinessLossAdj,
		a.ABLEDistributions,
		a.ScholarshipGrants,
		a.MedicaidWaiver,
		a.NonqualifiedDeferredComp,
		a.WagesWhileIncarcerated,
		a.DigitalAssets,
		a.OtherIncome,
	)
}

// Total sums lines 1-7 plus line 9 into line 10, which feeds Form 1040
// total income.
func (a AdditionalIncome) Total() USD {
	return Sum(
		a.TaxableRefunds,
		a.AlimonyReceived,
		a.BusinessIncome,
		a.OtherGains,
		a.RentalRealEstate,
		a.FarmIncome,
		a.UnemploymentCompensation,
		a.TotalOtherIncome(),
	)
}

// Adjustments holds Schedule 1, Part II (adjustments to income, lines 11-26).
type Adjustments struct {
	// Lines 11-23
	EducatorExpenses           USD `json:"educator_expenses"`
	BusinessExpensesReservists USD `json:"business_expenses_reservists"`
	HSADeduction               USD `json:"hsa_deduction"`
	MovingExpenses             USD `json:"moving_expenses"`
	SETaxDeduction             USD `json:"se_tax_deduction"`
	SERetirementPlans          USD `json:"se_retirement_plans"`
	SEHealthInsurance          USD `json:"se_health_insurance"`
	EarlyWithdrawalPenalty     USD `json:"early_withdrawal_penalty"`
	AlimonyPaid                USD `json:"alimony_paid"`
	IRADeduction               USD `json:"ira_deduction"`
	StudentLoanInterest        USD `json:"student_loan_interest"`
	ArcherMSADeduction         USD `json:"archer_msa_deduction"`

	// Lines 24a-24z (other adjustments)
	JuryDutyPay                USD `json:"jury_duty_pay"`
	RentalPersonalProperty     USD `json:"rental_personal_property"`
	OlympicMedals              USD `json:"olympic_medals"`
	Reforestation              USD `json:"reforestation"`
	SupplementalUnemployment   USD `json:"supplemental_unemployment"`
	Contributions501C18D       USD `json:"contributions_501c18d"`
	ChaplainContributions      USD `json:"chaplain_contributions"`
	AttorneyFeesDiscrimination USD `json:"attorney_fees_discrimination"`
	AttorneyFeesWhistleblower  USD `json:"attorney_fees_whistleblower"`
	HousingDeduction2555       USD `json:"housing_deduction_2555"`
	ExcessDeductions67E        USD `json:"excess_deductions_67e"`
	OtherAdjustments           USD `json:"other_adjustments"`
}

// TotalOtherAdjustments sums lines 24a-24z into line 25.
func (a Adjustments) TotalOtherAdjustments() USD {
	return Sum(
		a.JuryDutyPay,
		a.RentalPersonalProperty,
		a.OlympicMedals,
		a.Reforestation,
		a.SupplementalUnemployment,
		a.Contributions501C18D,
		a.ChaplainContributions,
		a.AttorneyFeesDiscrimination,
		a.AttorneyFeesWhistleblower,
		a.HousingDeduction2555,
		a.ExcessDeductions67E,
		a.OtherAdjustments,
	)
}

// Total sums lines 11-23 plus line 25 into line 26, which is subtracted
// from total income to arrive at AGI.
func (a Adjustments) Total() USD {
	return Sum(
		a.EducatorExpenses,
		a.BusinessExpensesReservists,
		a.HSADeduction,
		a.MovingExpenses,
		a.SETaxDeduction,
		a.SERetirementPlans,
		a.SEHealthInsurance,
		a.EarlyWithdrawalPenalty,
		a.AlimonyPaid,
		a.IRADeduction,
		a.StudentLoanInterest,
		a.ArcherMSADeduction,
		a.TotalOtherAdjustments(),
	)
}
