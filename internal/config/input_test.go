package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_Breakdown(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile(filepath.Join("testdata", "example_loan.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Starter home", config.Name)
	assert.True(t, config.HomeValue.Equal(decimal.NewFromInt(500000)))
	assert.True(t, config.DownPayment.Equal(decimal.NewFromInt(100000)))
	assert.True(t, config.AnnualInterestRatePercent.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, 30, config.LoanTermYears)
	assert.True(t, config.AdditionalMonthlyPayment.Equal(decimal.NewFromInt(200)))
	assert.True(t, config.MonthlyCosts.UseBreakdown)
	assert.True(t, config.OtherMonthlyCosts().Equal(decimal.NewFromInt(600)))
}

func TestLoadFromFile_FlatCosts(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "flat_costs.yaml"))
	require.NoError(t, err)

	assert.False(t, config.MonthlyCosts.UseBreakdown)
	assert.True(t, config.OtherMonthlyCosts().Equal(decimal.RequireFromString("425.50")))
	assert.True(t, config.AnnualInterestRatePercent.Equal(decimal.RequireFromString("5.25")))
	assert.True(t, config.AdditionalMonthlyPayment.IsZero())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "does_not_exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed yaml", "home_value: [1, 2", "failed to parse YAML"},
		{"non-numeric amount", "home_value: lots\n", "failed to parse YAML"},
		{"missing term", "home_value: 300000\ndown_payment: 60000\ninterest_rate_percent: 5\n", "loan_term_years"},
		{"down payment too small", "home_value: 300000\ndown_payment: 1000\ninterest_rate_percent: 5\nloan_term_years: 30\n",
			"must be at least 3% of home value ($9000.00)"},
		{"negative hoa", "home_value: 300000\ndown_payment: 60000\ninterest_rate_percent: 5\nloan_term_years: 30\n" +
			"monthly_costs:\n  use_breakdown: true\n  hoa_fees: -10\n", "monthly_costs.hoa_fees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_ValidationErrorsWrapSentinel(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("home_value: -1\ndown_payment: 0\ninterest_rate_percent: 5\nloan_term_years: 30\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "configuration validation failed"))
	assert.ErrorIs(t, err, calculation.ErrInvalidConfiguration)
}

func TestValidateConfiguration_Nil(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(nil)
	assert.Error(t, err)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := domain.DefaultLoanConfig()
	original.AdditionalMonthlyPayment = decimal.NewFromInt(125)

	path := filepath.Join(t.TempDir(), "loan.yaml")
	require.NoError(t, parser.SaveToFile(path, &original))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "home_value")

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.HomeValue.Equal(original.HomeValue))
	assert.True(t, loaded.AdditionalMonthlyPayment.Equal(original.AdditionalMonthlyPayment))
	assert.True(t, loaded.OtherMonthlyCosts().Equal(original.OtherMonthlyCosts()))
}
