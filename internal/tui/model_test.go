package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/tui/tuimsg"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func calculated(t *testing.T, m Model, cfg domain.LoanConfig) Model {
	t.Helper()
	msg := calculateCmd(m.calcEngine, cfg)()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel("")
	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Nil(t, m.Init(), "no file means nothing to load")
	assert.NotEmpty(t, m.View())
}

func TestCalculationFlow(t *testing.T) {
	m := calculated(t, NewModel(""), domain.DefaultLoanConfig())

	require.NotNil(t, m.Report())
	assert.Equal(t, SceneResults, m.CurrentScene())
	assert.Equal(t, 360, m.Report().Result.PayoffMonths())
	assert.Equal(t, 360, m.scheduleModel.Rows())
	assert.Contains(t, m.View(), "Projected Payments")
}

func TestCalculationErrorReturnsToForm(t *testing.T) {
	m := NewModel("")
	updated, _ := m.Update(tuimsg.CalculationCompleteMsg{Err: errors.New("boom")})
	m = updated.(Model)

	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Nil(t, m.Report())
	assert.EqualError(t, m.homeModel.Err(), "boom")
	assert.Contains(t, m.View(), "boom")
}

func TestCalculateRequestedSetsLoading(t *testing.T) {
	m := NewModel("")
	updated, cmd := m.Update(tuimsg.CalculateRequestedMsg{Config: domain.DefaultLoanConfig()})
	m = updated.(Model)
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestNavigationKeys(t *testing.T) {
	m := calculated(t, NewModel(""), domain.DefaultLoanConfig())

	_, cmd := m.Update(runes("t"))
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, SceneSchedule, m.CurrentScene())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, SceneResults, m.CurrentScene())

	_, cmd = m.Update(runes("?"))
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "Loan Form")
}

func TestFormKeepsLetters(t *testing.T) {
	m := NewModel("")
	// "t" and "q" are not navigation keys while the form is active
	updated, _ := m.Update(runes("t"))
	m = updated.(Model)
	assert.Equal(t, SceneHome, m.CurrentScene())

	updated, _ = m.Update(runes("q"))
	m = updated.(Model)
	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Contains(t, m.homeModel.View(), "450000tq")
}

func TestLoadErrorDismissed(t *testing.T) {
	m := NewModel("missing.yaml")
	updated, _ := m.Update(ErrorMsg{Err: errors.New("failed to read file")})
	m = updated.(Model)
	assert.Contains(t, m.View(), "failed to read file")

	updated, _ = m.Update(runes("x"))
	m = updated.(Model)
	assert.Nil(t, m.err)
	assert.Equal(t, SceneHome, m.CurrentScene())
}

func TestLoadConfigCmd(t *testing.T) {
	msg := loadConfigCmd("../config/testdata/example_loan.yaml")()
	loaded, ok := msg.(ConfigLoadedMsg)
	require.True(t, ok, "got %T", msg)
	require.NotNil(t, loaded.Config)

	m := NewModel("../config/testdata/example_loan.yaml")
	_, cmd := m.Update(loaded)
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, SceneResults, m.CurrentScene())

	_, isErr := loadConfigCmd("does-not-exist.yaml")().(ErrorMsg)
	assert.True(t, isErr)
}

func TestSceneString(t *testing.T) {
	assert.Equal(t, "Schedule", SceneSchedule.String())
	assert.Equal(t, "Unknown", Scene(42).String())
}
