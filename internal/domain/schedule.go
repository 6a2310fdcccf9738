package domain

import (
	"github.com/shopspring/decimal"
)

// ScheduleEntry is one month of the amortization ledger.
type ScheduleEntry struct {
	Period           int             `yaml:"month" json:"month"`
	Payment          decimal.Decimal `yaml:"payment" json:"payment"`
	Principal        decimal.Decimal `yaml:"principal" json:"principal"`
	Interest         decimal.Decimal `yaml:"interest" json:"interest"`
	RemainingBalance decimal.Decimal `yaml:"remaining_balance" json:"remainingBalance"`
	Year             int             `yaml:"year" json:"year"`
}

// AmortizationResult is the schedule plus the summary metrics derived from it.
type AmortizationResult struct {
	LoanAmount   decimal.Decimal `yaml:"loan_amount" json:"loanAmount"`
	MonthlyRate  decimal.Decimal `yaml:"monthly_rate" json:"monthlyRate"`
	TotalPeriods int             `yaml:"total_periods" json:"totalPeriods"`

	Schedule []ScheduleEntry `yaml:"schedule" json:"schedule"`

	BasePrincipalAndInterest          decimal.Decimal `yaml:"base_principal_and_interest" json:"basePrincipalAndInterest"`
	ActualMonthlyPrincipalAndInterest decimal.Decimal `yaml:"actual_monthly_principal_and_interest" json:"actualMonthlyPrincipalAndInterest"`
	TotalMonthlyPayment               decimal.Decimal `yaml:"total_monthly_payment" json:"totalMonthlyPayment"`
	TotalInterestPaid                 decimal.Decimal `yaml:"total_interest_paid" json:"totalInterestPaid"`
	TotalCost                         decimal.Decimal `yaml:"total_cost" json:"totalCost"`
	TheoreticalTotalInterest          decimal.Decimal `yaml:"theoretical_total_interest" json:"theoreticalTotalInterest"`
	MonthsSaved                       int             `yaml:"months_saved" json:"monthsSaved"`
	InterestSaved                     decimal.Decimal `yaml:"interest_saved" json:"interestSaved"`
}

// PayoffMonths is the number of scheduled payments.
func (r *AmortizationResult) PayoffMonths() int {
	return len(r.Schedule)
}

// FinalBalance returns the balance after the last payment (zero for an empty schedule).
func (r *AmortizationResult) FinalBalance() decimal.Decimal {
	if len(r.Schedule) == 0 {
		return decimal.Zero
	}
	return r.Schedule[len(r.Schedule)-1].RemainingBalance
}

// TotalPayments sums the loan payments, excluding other monthly costs.
func (r *AmortizationResult) TotalPayments() decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.Schedule {
		total = total.Add(e.Payment)
	}
	return total
}

// BreakdownLine is one row of the monthly payment breakdown.
type BreakdownLine struct {
	Component  string          `yaml:"component" json:"component"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	Percentage decimal.Decimal `yaml:"percentage" json:"percentage"`
}

// YearBalance is the lowest remaining balance reached in a loan year.
type YearBalance struct {
	Year    int             `yaml:"year" json:"year"`
	Balance decimal.Decimal `yaml:"balance" json:"balance"`
}
