package tui

import (
	"github.com/rgehrsitz/mortgo/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneResults
	SceneSchedule
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals a loan file has been loaded
type ConfigLoadedMsg struct {
	Config *domain.LoanConfig
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Loan"
	case SceneResults:
		return "Results"
	case SceneSchedule:
		return "Schedule"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
