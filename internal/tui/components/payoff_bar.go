package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

// PayoffBar shows how much of the nominal term the schedule actually uses.
type PayoffBar struct {
	PayoffMonths int
	TermMonths   int
	Width        int
}

// NewPayoffBar creates a payoff bar
func NewPayoffBar(payoffMonths, termMonths int) *PayoffBar {
	return &PayoffBar{PayoffMonths: payoffMonths, TermMonths: termMonths, Width: 40}
}

// WithWidth sets the bar width
func (p *PayoffBar) WithWidth(width int) *PayoffBar {
	p.Width = width
	return p
}

// Percentage returns the share of the term used, 0..100.
func (p *PayoffBar) Percentage() float64 {
	if p.TermMonths <= 0 {
		return 0
	}
	pct := float64(p.PayoffMonths) / float64(p.TermMonths) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Render returns the styled bar with a months-saved note
func (p *PayoffBar) Render() string {
	filled := int(float64(p.Width) * p.Percentage() / 100)
	empty := p.Width - filled

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(strings.Repeat("░", empty)))
	b.WriteString("] ")
	b.WriteString(tuistyles.MetricValueStyle.Render(fmt.Sprintf("%d/%d months", p.PayoffMonths, p.TermMonths)))

	if saved := p.TermMonths - p.PayoffMonths; saved > 0 && p.PayoffMonths > 0 {
		b.WriteString(" ")
		b.WriteString(tuistyles.MetricPositiveStyle.Render(fmt.Sprintf("(%d months early)", saved)))
	}
	return b.String()
}
