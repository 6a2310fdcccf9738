package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/config"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/tui/scenes"
	"github.com/rgehrsitz/mortgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	configPath string
	config     *domain.LoanConfig

	calcEngine *calculation.AmortizationEngine
	report     *domain.Report

	homeModel     *scenes.HomeModel
	resultsModel  *scenes.ResultsModel
	scheduleModel *scenes.ScheduleModel
	helpModel     *scenes.HelpModel

	// Fatal load error; form errors live on the home model
	err error

	loading        bool
	loadingMessage string
	spinner        spinner.Model
}

// NewModel creates a new application model. An empty configPath starts from the default loan.
func NewModel(configPath string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = tuistyles.TitleStyle

	return Model{
		currentScene:  SceneHome,
		configPath:    configPath,
		calcEngine:    calculation.NewAmortizationEngine(),
		homeModel:     scenes.NewHomeModel(),
		resultsModel:  scenes.NewResultsModel(),
		scheduleModel: scenes.NewScheduleModel(),
		helpModel:     scenes.NewHelpModel(),
		spinner:       s,
		width:         80,
		height:        24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	return tea.Batch(m.spinner.Tick, loadConfigCmd(m.configPath))
}

// loadConfigCmd returns a command that loads the loan file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd runs the engine off the update loop
func calculateCmd(engine *calculation.AmortizationEngine, cfg domain.LoanConfig) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.BuildReport(cfg)
		return tuimsg.CalculationCompleteMsg{Report: report, Err: err}
	}
}

// CurrentScene returns the scene on display
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Report returns the most recent successful calculation
func (m Model) Report() *domain.Report {
	return m.report
}
