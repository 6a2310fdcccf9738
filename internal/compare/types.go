package compare

import (
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single loan scenario with calculated metrics
type ComparisonResult struct {
	ScenarioName string                     `json:"scenarioName"`
	Description  string                     `json:"description"`
	Config       domain.LoanConfig          `json:"config"`
	Result       *domain.AmortizationResult `json:"-"`

	// Key Metrics
	MonthlyPayment       decimal.Decimal `json:"monthlyPayment"`
	PrincipalAndInterest decimal.Decimal `json:"principalAndInterest"`
	PayoffMonths         int             `json:"payoffMonths"`
	TotalInterest        decimal.Decimal `json:"totalInterest"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	InterestSaved        decimal.Decimal `json:"interestSaved"`

	// Comparison to Base
	MonthlyPaymentDiff    decimal.Decimal `json:"monthlyPaymentDiff"`
	PayoffMonthsDiff      int             `json:"payoffMonthsDiff"`
	InterestDiffFromBase  decimal.Decimal `json:"interestDiffFromBase"`
	InterestPctFromBase   decimal.Decimal `json:"interestPctFromBase"`
	TotalCostDiffFromBase decimal.Decimal `json:"totalCostDiffFromBase"`
}

// ComparisonSet represents a collection of loan comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from amortization results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a computed loan
func (mc *MetricsCalculator) CalculateMetrics(name string, config domain.LoanConfig, result *domain.AmortizationResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:         name,
		Config:               config,
		Result:               result,
		MonthlyPayment:       result.TotalMonthlyPayment,
		PrincipalAndInterest: result.ActualMonthlyPrincipalAndInterest,
		PayoffMonths:         result.PayoffMonths(),
		TotalInterest:        result.TotalInterestPaid,
		TotalCost:            result.TotalCost,
		InterestSaved:        result.InterestSaved,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.MonthlyPaymentDiff = scenario.MonthlyPayment.Sub(base.MonthlyPayment)
	scenario.PayoffMonthsDiff = scenario.PayoffMonths - base.PayoffMonths
	scenario.InterestDiffFromBase = scenario.TotalInterest.Sub(base.TotalInterest)
	scenario.TotalCostDiffFromBase = scenario.TotalCost.Sub(base.TotalCost)

	if !base.TotalInterest.IsZero() {
		scenario.InterestPctFromBase = scenario.InterestDiffFromBase.
			Div(base.TotalInterest).
			Mul(decimal.NewFromInt(100))
	}

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Lowest lifetime interest
	best := -1
	for i, alt := range compSet.AlternativeResults {
		if alt.TotalInterest.LessThan(base.TotalInterest) &&
			(best < 0 || alt.TotalInterest.LessThan(compSet.AlternativeResults[best].TotalInterest)) {
			best = i
		}
	}
	if best >= 0 {
		alt := compSet.AlternativeResults[best]
		savings := base.TotalInterest.Sub(alt.TotalInterest)
		recommendations = append(recommendations,
			"Lowest Interest: "+alt.ScenarioName+" saves "+output.FormatCurrency(savings)+" in interest")
	}

	// Fastest payoff
	best = -1
	for i, alt := range compSet.AlternativeResults {
		if alt.PayoffMonths < base.PayoffMonths &&
			(best < 0 || alt.PayoffMonths < compSet.AlternativeResults[best].PayoffMonths) {
			best = i
		}
	}
	if best >= 0 {
		alt := compSet.AlternativeResults[best]
		recommendations = append(recommendations,
			"Fastest Payoff: "+alt.ScenarioName+" is paid off "+
				formatMonths(base.PayoffMonths-alt.PayoffMonths)+" sooner")
	}

	// Lowest monthly outlay
	best = -1
	for i, alt := range compSet.AlternativeResults {
		if alt.MonthlyPayment.LessThan(base.MonthlyPayment) &&
			(best < 0 || alt.MonthlyPayment.LessThan(compSet.AlternativeResults[best].MonthlyPayment)) {
			best = i
		}
	}
	if best >= 0 {
		alt := compSet.AlternativeResults[best]
		reduction := base.MonthlyPayment.Sub(alt.MonthlyPayment)
		recommendations = append(recommendations,
			"Lowest Monthly Payment: "+alt.ScenarioName+" lowers the monthly payment by "+output.FormatCurrency(reduction))
	}

	return recommendations
}

// formatMonths renders a month count as years and months
func formatMonths(months int) string {
	years, rem := months/12, months%12
	unit := "years"
	if years == 1 {
		unit = "year"
	}
	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rem)
	case rem == 0:
		return fmt.Sprintf("%d %s", years, unit)
	default:
		return fmt.Sprintf("%d %s %d months", years, unit, rem)
	}
}
