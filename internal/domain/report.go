package domain

// Report bundles a loan configuration with everything computed from it for presentation.
type Report struct {
	Config         LoanConfig          `yaml:"config" json:"config"`
	Result         *AmortizationResult `yaml:"result" json:"result"`
	Breakdown      []BreakdownLine     `yaml:"breakdown" json:"breakdown"`
	YearlyBalances []YearBalance       `yaml:"yearly_balances" json:"yearlyBalances"`
}

// HasAdditionalPayment reports whether an extra monthly principal payment was applied.
func (r *Report) HasAdditionalPayment() bool {
	return r.Config.AdditionalMonthlyPayment.IsPositive()
}
