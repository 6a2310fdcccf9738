package compare

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseLoan() domain.LoanConfig {
	return domain.LoanConfig{
		Name:                      "Base Loan",
		HomeValue:                 decimal.NewFromInt(500000),
		DownPayment:               decimal.NewFromInt(100000),
		AnnualInterestRatePercent: decimal.NewFromInt(6),
		LoanTermYears:             30,
		MonthlyCosts:              domain.DefaultMonthlyCosts(),
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()

	base := ComparisonResult{
		MonthlyPayment: decimal.NewFromInt(3000),
		PayoffMonths:   360,
		TotalInterest:  decimal.NewFromInt(400000),
		TotalCost:      decimal.NewFromInt(1000000),
	}
	alt := ComparisonResult{
		MonthlyPayment: decimal.NewFromInt(3200),
		PayoffMonths:   300,
		TotalInterest:  decimal.NewFromInt(300000),
		TotalCost:      decimal.NewFromInt(900000),
	}

	got := mc.CalculateComparison(alt, base)
	assert.True(t, got.MonthlyPaymentDiff.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, -60, got.PayoffMonthsDiff)
	assert.True(t, got.InterestDiffFromBase.Equal(decimal.NewFromInt(-100000)))
	assert.True(t, got.InterestPctFromBase.Equal(decimal.NewFromInt(-25)))
	assert.True(t, got.TotalCostDiffFromBase.Equal(decimal.NewFromInt(-100000)))
}

func TestMetricsCalculator_ZeroBaseInterest(t *testing.T) {
	got := NewMetricsCalculator().CalculateComparison(
		ComparisonResult{TotalInterest: decimal.NewFromInt(10)},
		ComparisonResult{TotalInterest: decimal.Zero},
	)
	assert.True(t, got.InterestPctFromBase.IsZero())
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{
			ScenarioName:   "base",
			MonthlyPayment: decimal.NewFromInt(3000),
			PayoffMonths:   360,
			TotalInterest:  decimal.NewFromInt(400000),
		},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "shorter", MonthlyPayment: decimal.NewFromInt(3800), PayoffMonths: 180, TotalInterest: decimal.NewFromInt(180000)},
			{ScenarioName: "extra", MonthlyPayment: decimal.NewFromInt(3200), PayoffMonths: 295, TotalInterest: decimal.NewFromInt(300000)},
			{ScenarioName: "cheaper", MonthlyPayment: decimal.NewFromInt(2900), PayoffMonths: 360, TotalInterest: decimal.NewFromInt(380000)},
		},
	}

	recs := GenerateRecommendations(compSet)
	require.Len(t, recs, 3)
	assert.Equal(t, "Lowest Interest: shorter saves $220,000.00 in interest", recs[0])
	assert.Equal(t, "Fastest Payoff: shorter is paid off 15 years sooner", recs[1])
	assert.Equal(t, "Lowest Monthly Payment: cheaper lowers the monthly payment by $100.00", recs[2])
}

func TestGenerateRecommendations_NoImprovement(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{
			MonthlyPayment: decimal.NewFromInt(3000),
			PayoffMonths:   360,
			TotalInterest:  decimal.NewFromInt(400000),
		},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "worse", MonthlyPayment: decimal.NewFromInt(3100), PayoffMonths: 360, TotalInterest: decimal.NewFromInt(450000)},
		},
	}
	assert.Empty(t, GenerateRecommendations(compSet))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "7 months", formatMonths(7))
	assert.Equal(t, "2 years", formatMonths(24))
	assert.Equal(t, "5 years 5 months", formatMonths(65))
}

func TestCompareEngine_Compare(t *testing.T) {
	engine := NewCompareEngine(nil)

	compSet, err := engine.Compare(context.Background(), baseLoan(), CompareOptions{
		Templates: []string{"extra_200", "term_15yr", "rate_up_half"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Base Loan", compSet.BaseScenarioName)
	require.NotNil(t, compSet.BaseResult)
	assert.Equal(t, 360, compSet.BaseResult.PayoffMonths)
	require.Len(t, compSet.AlternativeResults, 3)

	extra := compSet.AlternativeResults[0]
	assert.Equal(t, "Base Loan_extra_200", extra.ScenarioName)
	assert.NotEmpty(t, extra.Description)
	assert.Equal(t, 295, extra.PayoffMonths)
	assert.Equal(t, -65, extra.PayoffMonthsDiff)
	assert.True(t, extra.MonthlyPaymentDiff.Equal(decimal.NewFromInt(200)))
	assert.True(t, extra.InterestDiffFromBase.IsNegative())

	term := compSet.AlternativeResults[1]
	assert.Equal(t, 180, term.PayoffMonths)
	assert.True(t, term.MonthlyPaymentDiff.IsPositive())

	rateUp := compSet.AlternativeResults[2]
	assert.True(t, rateUp.InterestDiffFromBase.IsPositive())

	require.NotEmpty(t, compSet.Recommendations)
	assert.True(t, strings.HasPrefix(compSet.Recommendations[0], "Lowest Interest: Base Loan_term_15yr"))
}

func TestCompareEngine_Compare_Errors(t *testing.T) {
	engine := NewCompareEngine(calculation.NewAmortizationEngine())

	_, err := engine.Compare(context.Background(), baseLoan(), CompareOptions{Templates: []string{"refinance_5pct"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template refinance_5pct not found")

	invalid := baseLoan()
	invalid.LoanTermYears = 0
	_, err = engine.Compare(context.Background(), invalid, CompareOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculation.ErrInvalidConfiguration))

	lowDown := baseLoan()
	lowDown.HomeValue = decimal.NewFromInt(100000)
	lowDown.DownPayment = decimal.NewFromInt(3000)
	_, err = engine.Compare(context.Background(), lowDown, CompareOptions{Templates: []string{"rate_down_half"}})
	require.NoError(t, err, "exactly 3 percent down is accepted")
}

func TestCompareEngine_Compare_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCompareEngine(nil).Compare(ctx, baseLoan(), CompareOptions{Templates: []string{"extra_100"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareEngine_CompareLoans(t *testing.T) {
	alt := baseLoan()
	alt.Name = ""
	alt.AdditionalMonthlyPayment = decimal.NewFromInt(500)

	compSet, err := NewCompareEngine(nil).CompareLoans(context.Background(), baseLoan(), []domain.LoanConfig{alt})
	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 1)
	assert.Equal(t, "alternative_1", compSet.AlternativeResults[0].ScenarioName)
	assert.Less(t, compSet.AlternativeResults[0].PayoffMonthsDiff, 0)
}
