package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/database"
	"github.com/akyairhashvil/prodgarden/internal/garden"
	"github.com/akyairhashvil/prodgarden/internal/models"
	"github.com/akyairhashvil/prodgarden/internal/points"
	"github.com/akyairhashvil/prodgarden/internal/prefs"
	"github.com/akyairhashvil/prodgarden/internal/session"
	"github.com/akyairhashvil/prodgarden/internal/timer"
	"github.com/akyairhashvil/prodgarden/internal/tracking"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

// Screen is the top-level view shown by the MainModel.
type Screen int

const (
	ScreenTimer Screen = iota
	ScreenGarden
	ScreenProjects
)

var screenTitles = []string{"Timer", "Garden", "Projects"}

func (s Screen) String() string {
	if int(s) < 0 || int(s) >= len(screenTitles) {
		return "Unknown"
	}
	return screenTitles[s]
}

type inputMode int

const (
	inputNone inputMode = iota
	inputCountdown
	inputWork
	inputBreak
	inputNotes
	inputProject
	inputGarden
)

// Deps are the services the UI drives. Logger, Prefs and Settings are
// optional.
type Deps struct {
	Timer       *timer.Manager
	Ledger      *points.Ledger
	Tracker     *tracking.Tracker
	Session     *session.Store
	SessionData session.Data
	Projects    database.ProjectRepository
	Settings    database.SettingsRepository
	Library     *garden.Library
	Prefs       *prefs.Store
	ReportsDir  string
	Logger      util.Logger
}

// MainModel is the root bubbletea model. It owns the timer, the ledger and
// the open garden; every tick and key press reaches them through Update.
type MainModel struct {
	ctx  context.Context
	deps Deps

	keys     *HandlerRegistry
	help     help.Model
	progress progress.Model
	input    textinput.Model
	mode     inputMode
	inputErr error

	screen Screen
	width  int
	height int

	data session.Data

	garden    *garden.Garden
	gardens   []string
	cursorRow int
	cursorCol int
	object    int

	projects      []models.Project
	projectCursor int
	lastReport    string

	status string
	err    error
	now    func() time.Time
}

func NewMainModel(ctx context.Context, deps Deps) MainModel {
	if deps.Logger == nil {
		deps.Logger = util.NopLogger()
	}
	ti := textinput.New()
	ti.CharLimit = config.MaxProjectNameLength
	ti.Width = 40

	m := MainModel{
		ctx:      ctx,
		deps:     deps,
		keys:     defaultBindings(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(config.ProgressWidth)),
		input:    ti,
		data:     deps.SessionData,
		width:    config.DefaultViewWidth,
		now:      time.Now,
	}
	deps.Tracker.SetActiveProject(deps.SessionData.ActiveProject)

	if deps.Prefs != nil {
		p := deps.Prefs.Get()
		if err := deps.Timer.SetTimerMode(p.TimerMode); err != nil {
			deps.Logger.Warnf("ignoring saved timer mode: %v", err)
		}
		SetTheme(p.Theme)
	}
	m.refreshProjects()
	m.loadLastReport()
	m.refreshGardens()
	m.openInitialGarden()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.mode != inputNone {
			return m.handleInput(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg)
		return next, cmd
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}

	if m.mode != inputNone {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// opContext bounds a single store call made from the UI loop.
func (m MainModel) opContext() (context.Context, context.CancelFunc) {
	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, config.UIOpTimeout)
}

func (m MainModel) quit() (MainModel, tea.Cmd) {
	if err := m.saveSession(); err != nil {
		util.LogError(m.deps.Logger, "save session on quit", err)
	}
	m.savePrefs()
	return m, tea.Quit
}

func (m *MainModel) setError(op string, err error) {
	util.LogError(m.deps.Logger, op, err)
	m.err = err
	m.status = ""
}

func (m *MainModel) setStatus(msg string) {
	m.status = msg
	m.err = nil
}

// saveSession writes the ledger, the timer durations and the active
// project to the session file.
func (m *MainModel) saveSession() error {
	m.data.TotalPoints, m.data.AvailablePoints = m.deps.Ledger.Points()
	m.data.ActiveProject = m.deps.Tracker.ActiveProject()
	s := m.deps.Timer.Settings()
	m.data.PomodoroWork = timer.FormatClock(s.WorkSeconds)
	m.data.PomodoroBreak = timer.FormatClock(s.BreakSeconds)
	m.data.TimerInput = timer.FormatClock(s.TimerSeconds)
	return m.deps.Session.Save(m.data)
}

func (m MainModel) savePrefs() {
	if m.deps.Prefs == nil {
		return
	}
	if err := m.deps.Prefs.Save(); err != nil {
		util.LogError(m.deps.Logger, "save preferences", err)
	}
}
