package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mortgo/internal/tui/scenes"
	"github.com/rgehrsitz/mortgo/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.scheduleModel.SetSize(msg.Width, msg.Height)
		m.helpModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.homeModel.SetConfig(*msg.Config)
		m.loading = true
		m.loadingMessage = "Calculating schedule..."
		return m, calculateCmd(m.calcEngine, *msg.Config)

	case tuimsg.CalculateRequestedMsg:
		m.loading = true
		m.loadingMessage = "Calculating schedule..."
		return m, tea.Batch(m.spinner.Tick, calculateCmd(m.calcEngine, msg.Config))

	case tuimsg.ValidationFailedMsg:
		m.homeModel.SetError(msg.Err)
		return m, nil

	case tuimsg.CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.homeModel.SetError(msg.Err)
			m.currentScene = SceneHome
			return m, nil
		}
		m.report = msg.Report
		m.resultsModel.SetReport(msg.Report)
		m.scheduleModel.SetSchedule(msg.Report.Result.Schedule)
		m.previousScene = SceneHome
		m.currentScene = SceneResults
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: s} }
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A load error blocks everything; any key falls back to the form
	if m.err != nil {
		m.err = nil
		m.currentScene = SceneHome
		return m, nil
	}

	if key.Matches(msg, scenes.GlobalKeys.Help) && m.currentScene != SceneHelp {
		return m, navigate(SceneHelp)
	}

	if key.Matches(msg, scenes.GlobalKeys.Back) && m.currentScene != SceneHome {
		target := m.previousScene
		if target == m.currentScene {
			target = SceneHome
		}
		return m, navigate(target)
	}

	// The form consumes letters as input
	if m.currentScene != SceneHome {
		switch {
		case key.Matches(msg, scenes.GlobalKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, scenes.GlobalKeys.Home):
			return m, navigate(SceneHome)
		case key.Matches(msg, scenes.GlobalKeys.Results):
			return m, navigate(SceneResults)
		case key.Matches(msg, scenes.GlobalKeys.Schedule):
			return m, navigate(SceneSchedule)
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneSchedule:
		m.scheduleModel, cmd = m.scheduleModel.Update(msg)
	case SceneHelp:
		m.helpModel, cmd = m.helpModel.Update(msg)
	}
	return m, cmd
}
