package calculation

import (
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildReport computes config and attaches the presentation aggregates.
func (ae *AmortizationEngine) BuildReport(config domain.LoanConfig) (*domain.Report, error) {
	result, err := ae.Compute(config)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		Config:         config,
		Result:         result,
		Breakdown:      PaymentBreakdown(result, config.MonthlyCosts),
		YearlyBalances: YearlyBalances(result.Schedule),
	}, nil
}

// PaymentBreakdown splits the total monthly payment into principal & interest and each
// cost component, with each line's share of the total.
func PaymentBreakdown(result *domain.AmortizationResult, costs domain.MonthlyCosts) []domain.BreakdownLine {
	total := result.TotalMonthlyPayment
	lines := []domain.BreakdownLine{{
		Component: "Principal & Interest",
		Amount:    result.ActualMonthlyPrincipalAndInterest,
	}}
	for _, c := range costs.Components() {
		lines = append(lines, domain.BreakdownLine{Component: c.Label, Amount: c.Amount})
	}
	for i := range lines {
		if total.IsPositive() {
			lines[i].Percentage = lines[i].Amount.Div(total).Mul(hundred)
		} else {
			lines[i].Percentage = decimal.Zero
		}
	}
	return lines
}

// YearlyBalances groups the schedule by loan year and keeps the lowest balance of each year,
// rounded to cents. Years appear in ascending order.
func YearlyBalances(schedule []domain.ScheduleEntry) []domain.YearBalance {
	balances := []domain.YearBalance{}
	for _, entry := range schedule {
		n := len(balances)
		if n == 0 || balances[n-1].Year != entry.Year {
			balances = append(balances, domain.YearBalance{Year: entry.Year, Balance: entry.RemainingBalance})
			continue
		}
		if entry.RemainingBalance.LessThan(balances[n-1].Balance) {
			balances[n-1].Balance = entry.RemainingBalance
		}
	}
	for i := range balances {
		balances[i].Balance = balances[i].Balance.Round(2)
	}
	return balances
}
