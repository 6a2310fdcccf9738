package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoanConfig_DeepCopy(t *testing.T) {
	original := DefaultLoanConfig()
	original.Name = "Original"

	copied := original.DeepCopy()
	copied.Name = "Copy"
	copied.DownPayment = decimal.NewFromInt(90000)
	copied.MonthlyCosts.PMI = decimal.Zero

	assert.Equal(t, "Original", original.Name)
	assert.True(t, original.DownPayment.Equal(DefaultDownPayment))
	assert.True(t, original.MonthlyCosts.PMI.Equal(decimal.NewFromInt(50)))

	var nilConfig *LoanConfig
	assert.Nil(t, nilConfig.DeepCopy())
}

func TestLoanConfig_Derived(t *testing.T) {
	cfg := DefaultLoanConfig()

	assert.True(t, cfg.LoanAmount().Equal(decimal.NewFromInt(400000)))
	assert.Equal(t, 360, cfg.TermMonths())
	assert.True(t, cfg.OtherMonthlyCosts().Equal(decimal.NewFromInt(600)))
	assert.Equal(t, "11.11", cfg.DownPaymentPercent().StringFixed(2))

	cfg.HomeValue = decimal.Zero
	assert.True(t, cfg.DownPaymentPercent().IsZero())
}

func TestMinimumDownPayment(t *testing.T) {
	assert.Equal(t, "13500.00", MinimumDownPayment(DefaultHomeValue).StringFixed(2))
	assert.True(t, MinimumDownPayment(decimal.Zero).IsZero())
}

func TestMonthlyCosts(t *testing.T) {
	t.Run("breakdown", func(t *testing.T) {
		costs := DefaultMonthlyCosts()
		assert.True(t, costs.Total().Equal(decimal.NewFromInt(600)))

		components := costs.Components()
		assert.Len(t, components, 4)
		assert.Equal(t, "Property Tax", components[0].Label)
	})

	t.Run("flat", func(t *testing.T) {
		costs := FlatMonthlyCosts(decimal.NewFromInt(425))
		assert.True(t, costs.Total().Equal(decimal.NewFromInt(425)))

		components := costs.Components()
		assert.Len(t, components, 1)
		assert.Equal(t, "Other Monthly Costs", components[0].Label)
	})

	t.Run("flat_ignores_itemized_fields", func(t *testing.T) {
		costs := DefaultMonthlyCosts()
		costs.UseBreakdown = false
		assert.True(t, costs.Total().Equal(costs.Flat))
	})

	t.Run("negative", func(t *testing.T) {
		costs := DefaultMonthlyCosts()
		_, ok := costs.Negative()
		assert.False(t, ok)

		costs.HOAFees = decimal.NewFromInt(-1)
		field, ok := costs.Negative()
		assert.True(t, ok)
		assert.Equal(t, "hoa_fees", field)
	})
}

func TestAmortizationResult_Aggregates(t *testing.T) {
	empty := &AmortizationResult{}
	assert.Equal(t, 0, empty.PayoffMonths())
	assert.True(t, empty.FinalBalance().IsZero())
	assert.True(t, empty.TotalPayments().IsZero())

	result := &AmortizationResult{Schedule: []ScheduleEntry{
		{Period: 1, Payment: decimal.NewFromInt(100), RemainingBalance: decimal.NewFromInt(50), Year: 1},
		{Period: 2, Payment: decimal.NewFromInt(51), RemainingBalance: decimal.Zero, Year: 1},
	}}
	assert.Equal(t, 2, result.PayoffMonths())
	assert.True(t, result.FinalBalance().IsZero())
	assert.True(t, result.TotalPayments().Equal(decimal.NewFromInt(151)))
}

func TestUnitForParameter(t *testing.T) {
	assert.Equal(t, "percent", UnitForParameter(ParamInterestRate))
	assert.Equal(t, "years", UnitForParameter(ParamTermYears))
	assert.Equal(t, "dollars", UnitForParameter(ParamExtraPayment))
	assert.Equal(t, "dollars", UnitForParameter(ParamDownPayment))
}
