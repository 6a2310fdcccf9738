package domain

import (
	"github.com/shopspring/decimal"
)

// Default loan values used when no configuration file is supplied.
var (
	DefaultHomeValue           = decimal.NewFromInt(450000)
	DefaultDownPayment         = decimal.NewFromInt(50000)
	DefaultInterestRatePercent = decimal.NewFromFloat(6.0)
	DefaultLoanTermYears       = 30
)

// MinimumDownPaymentRatio is the smallest down payment accepted, as a fraction of home value.
var MinimumDownPaymentRatio = decimal.NewFromFloat(0.03)

// LoanConfig describes a fixed-rate mortgage as entered by the borrower.
// Monetary values are in whole currency units; the interest rate is an annual percentage (6.0 == 6%).
type LoanConfig struct {
	Name                      string          `yaml:"name,omitempty" json:"name,omitempty"`
	HomeValue                 decimal.Decimal `yaml:"home_value" json:"homeValue"`
	DownPayment               decimal.Decimal `yaml:"down_payment" json:"downPayment"`
	AnnualInterestRatePercent decimal.Decimal `yaml:"interest_rate_percent" json:"interestRatePercent"`
	LoanTermYears             int             `yaml:"loan_term_years" json:"loanTermYears"`
	AdditionalMonthlyPayment  decimal.Decimal `yaml:"additional_monthly_payment" json:"additionalMonthlyPayment"`
	MonthlyCosts              MonthlyCosts    `yaml:"monthly_costs" json:"monthlyCosts"`
}

// DefaultLoanConfig returns the calculator's starting configuration.
func DefaultLoanConfig() LoanConfig {
	return LoanConfig{
		Name:                      "Default",
		HomeValue:                 DefaultHomeValue,
		DownPayment:               DefaultDownPayment,
		AnnualInterestRatePercent: DefaultInterestRatePercent,
		LoanTermYears:             DefaultLoanTermYears,
		AdditionalMonthlyPayment:  decimal.Zero,
		MonthlyCosts:              DefaultMonthlyCosts(),
	}
}

// LoanAmount is the financed principal (home value less down payment).
func (c LoanConfig) LoanAmount() decimal.Decimal {
	return c.HomeValue.Sub(c.DownPayment)
}

// OtherMonthlyCosts is the escrow-like recurring amount added on top of principal and interest.
func (c LoanConfig) OtherMonthlyCosts() decimal.Decimal {
	return c.MonthlyCosts.Total()
}

// TermMonths is the nominal number of monthly payments.
func (c LoanConfig) TermMonths() int {
	return c.LoanTermYears * 12
}

// DownPaymentPercent returns the down payment as a percentage of home value (0 when home value is 0).
func (c LoanConfig) DownPaymentPercent() decimal.Decimal {
	if c.HomeValue.IsZero() {
		return decimal.Zero
	}
	return c.DownPayment.Div(c.HomeValue).Mul(decimal.NewFromInt(100))
}

// DeepCopy returns an independent copy of the configuration.
func (c *LoanConfig) DeepCopy() *LoanConfig {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

// MinimumDownPayment returns 3% of the given home value.
func MinimumDownPayment(homeValue decimal.Decimal) decimal.Decimal {
	return homeValue.Mul(MinimumDownPaymentRatio)
}
