package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error())))
	}
	if m.loading {
		return m.renderApp(BorderStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.loadingMessage)))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneSchedule:
		content = m.scheduleModel.View()
	case SceneHelp:
		content = m.helpModel.View()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	breadcrumb := m.currentScene.String()
	if m.report != nil && m.report.Config.Name != "" {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.report.Config.Name)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("mortgo - Mortgage Amortization"),
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	status := m.helpModel.ShortHelpView()
	if m.configPath != "" {
		status += "  " + SubtitleStyle.Render(m.configPath)
	}
	return StatusBarStyle.Width(m.width).Render(status)
}
