// Package tuimsg defines the messages scenes send to the top-level model.
package tuimsg

import (
	"github.com/rgehrsitz/mortgo/internal/domain"
)

// CalculateRequestedMsg asks the application to compute a loan
type CalculateRequestedMsg struct {
	Config domain.LoanConfig
}

// CalculationCompleteMsg carries the computed report or the engine error
type CalculationCompleteMsg struct {
	Report *domain.Report
	Err    error
}

// ValidationFailedMsg reports a form error that stopped the calculation
type ValidationFailedMsg struct {
	Err error
}
