package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/tui/tuimsg"
)

func TestHomeModel_DefaultsBuildValidConfig(t *testing.T) {
	m := NewHomeModel()
	cfg, err := m.BuildConfig()
	require.NoError(t, err)

	want := domain.DefaultLoanConfig()
	assert.True(t, cfg.HomeValue.Equal(want.HomeValue))
	assert.True(t, cfg.DownPayment.Equal(want.DownPayment))
	assert.Equal(t, 30, cfg.LoanTermYears)
	assert.True(t, cfg.MonthlyCosts.UseBreakdown)
	assert.Equal(t, "600", cfg.OtherMonthlyCosts().String())
}

func TestHomeModel_MinimumDownPayment(t *testing.T) {
	m := NewHomeModel()
	m.SetValue(FieldDownPayment, "13000")

	_, err := m.BuildConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down payment must be at least 3% of home value ($13,500.00)")

	m.SetValue(FieldDownPayment, "13500")
	_, err = m.BuildConfig()
	assert.NoError(t, err)
}

func TestHomeModel_ParsesFormattedAmounts(t *testing.T) {
	m := NewHomeModel()
	m.SetValue(FieldHomeValue, "$500,000")
	m.SetValue(FieldDownPayment, "100,000.00")
	cfg, err := m.BuildConfig()
	require.NoError(t, err)
	assert.Equal(t, "400000", cfg.LoanAmount().String())
}

func TestHomeModel_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
		want  string
	}{
		{"not a number", FieldInterestRate, "six", "Interest Rate %"},
		{"empty", FieldHomeValue, "", "value is required"},
		{"negative extra", FieldExtraPayment, "-5", "Additional Repayment cannot be negative"},
		{"rate above 100", FieldInterestRate, "101", "cannot exceed 100"},
		{"fractional term", FieldTermYears, "7.5", "whole number of years"},
		{"zero term", FieldTermYears, "0", "must be at least 1"},
		{"long term", FieldTermYears, "51", "cannot exceed 50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewHomeModel()
			m.SetValue(tt.field, tt.value)
			_, err := m.BuildConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHomeModel_FlatCosts(t *testing.T) {
	m := NewHomeModel()
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.False(t, m.UseBreakdown())

	m.SetValue(FieldOtherCosts, "425.50")
	cfg, err := m.BuildConfig()
	require.NoError(t, err)
	assert.False(t, cfg.MonthlyCosts.UseBreakdown)
	assert.Equal(t, "425.5", cfg.OtherMonthlyCosts().String())
	assert.Contains(t, m.View(), "Total Monthly Costs")
}

func TestHomeModel_FocusWraps(t *testing.T) {
	m := NewHomeModel()
	assert.Equal(t, FieldHomeValue, m.Focused())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldHOAFees, m.Focused())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldHomeValue, m.Focused())
}

func TestHomeModel_Submit(t *testing.T) {
	m := NewHomeModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tuimsg.CalculateRequestedMsg)
	assert.True(t, ok)

	m.SetValue(FieldDownPayment, "0")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	failed, ok := cmd().(tuimsg.ValidationFailedMsg)
	require.True(t, ok)
	assert.Error(t, failed.Err)
	assert.Contains(t, m.View(), "3% of home value")
}

func TestHomeModel_SetConfigKeepsName(t *testing.T) {
	m := NewHomeModel()
	cfg := domain.DefaultLoanConfig()
	cfg.Name = "Starter Home"
	m.SetConfig(cfg)
	built, err := m.BuildConfig()
	require.NoError(t, err)
	assert.Equal(t, "Starter Home", built.Name)
}
