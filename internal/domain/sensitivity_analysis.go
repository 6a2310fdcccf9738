package domain

import (
	"github.com/shopspring/decimal"
)

// Sensitivity parameter names understood by the analyzer.
const (
	ParamExtraPayment = "extra_payment"
	ParamInterestRate = "interest_rate"
	ParamTermYears    = "term_years"
	ParamDownPayment  = "down_payment"
)

// SensitivityParameter represents a loan input to sweep
type SensitivityParameter struct {
	Name     string          `yaml:"name" json:"name"`
	MinValue decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps    int             `yaml:"steps" json:"steps"`
	Unit     string          `yaml:"unit" json:"unit"` // "dollars", "percent", "years"
}

// SensitivityPoint is the outcome of one value in the sweep.
// Failed points carry the reason instead of metrics.
type SensitivityPoint struct {
	Value             decimal.Decimal `json:"value"`
	PayoffMonths      int             `json:"payoffMonths"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	TotalInterestPaid decimal.Decimal `json:"totalInterestPaid"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	InterestSaved     decimal.Decimal `json:"interestSaved"`
	Failed            bool            `json:"failed,omitempty"`
	FailureReason     string          `json:"failureReason,omitempty"`
}

// SensitivitySummary highlights the extremes of a sweep
type SensitivitySummary struct {
	LowestInterestValue  decimal.Decimal `json:"lowestInterestValue"`
	LowestInterest       decimal.Decimal `json:"lowestInterest"`
	HighestInterestValue decimal.Decimal `json:"highestInterestValue"`
	HighestInterest      decimal.Decimal `json:"highestInterest"`
	InterestRange        decimal.Decimal `json:"interestRange"`
	FailedPoints         int             `json:"failedPoints"`
}

// SensitivityAnalysis is a complete single-parameter sweep
type SensitivityAnalysis struct {
	Base      LoanConfig           `json:"base"`
	Parameter SensitivityParameter `json:"parameter"`
	Points    []SensitivityPoint   `json:"points"`
	Summary   SensitivitySummary   `json:"summary"`
}

// UnitForParameter returns the display unit of a known parameter.
func UnitForParameter(name string) string {
	switch name {
	case ParamInterestRate:
		return "percent"
	case ParamTermYears:
		return "years"
	default:
		return "dollars"
	}
}
