package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()

	// Global
	r.Register(KeyBinding{Binding: bind("tab", "next view", "tab"), Handler: handleNextScreen})
	r.Register(KeyBinding{Binding: bind("shift+tab", "", "shift+tab"), Handler: handlePrevScreen})
	r.Register(KeyBinding{Binding: bind("1-3", "", "1", "2", "3"), Handler: handleJumpScreen})
	r.Register(KeyBinding{Binding: bind("T", "theme", "T"), Handler: handleCycleTheme})
	r.Register(KeyBinding{Binding: bind("?", "help", "?"), Handler: handleToggleHelp})
	r.Register(KeyBinding{Binding: bind("q", "quit", "q"), Handler: MainModel.handleQuit})

	timerOnly := []Screen{ScreenTimer}
	r.Register(KeyBinding{Binding: bind("s", "start", "s", "enter"), Handler: MainModel.handleStart, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("space", "pause", " ", "space", "p"), Handler: MainModel.handlePause, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("x", "stop", "x"), Handler: MainModel.handleStop, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("m", "mode", "m"), Handler: MainModel.handleCycleMode, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("c", "countdown", "c"), Handler: MainModel.handleEditCountdown, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("w", "work", "w"), Handler: MainModel.handleEditWork, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("b", "break", "b"), Handler: MainModel.handleEditBreak, Screens: timerOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("n", "notes", "n"), Handler: MainModel.handleEditNotes, Screens: timerOnly, Priority: 1})

	gardenOnly := []Screen{ScreenGarden}
	r.Register(KeyBinding{Binding: bind("←↑↓→", "move", "up", "down", "left", "right", "h", "j", "k", "l"), Handler: MainModel.handleGardenMove, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("[ ]", "object", "[", "]"), Handler: MainModel.handleCycleObject, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("enter", "buy", "enter", " ", "space"), Handler: MainModel.handleBuy, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("x", "clear", "x"), Handler: MainModel.handleClearCell, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("g", "new garden", "g"), Handler: MainModel.handleNewGarden, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("o", "open next", "o"), Handler: MainModel.handleNextGarden, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("v", "vegetation", "v"), Handler: MainModel.handleCycleVegetation, Screens: gardenOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("D", "delete garden", "D"), Handler: MainModel.handleDeleteGarden, Screens: gardenOnly, Priority: 1})

	projectsOnly := []Screen{ScreenProjects}
	r.Register(KeyBinding{Binding: bind("↑↓", "select", "up", "down", "k", "j"), Handler: MainModel.handleProjectMove, Screens: projectsOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("a", "add", "a"), Handler: MainModel.handleNewProject, Screens: projectsOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("enter", "track", "enter"), Handler: MainModel.handleActivateProject, Screens: projectsOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("s", "status", "s"), Handler: MainModel.handleCycleStatus, Screens: projectsOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("d", "delete", "d"), Handler: MainModel.handleDeleteProject, Screens: projectsOnly, Priority: 1})
	r.Register(KeyBinding{Binding: bind("r", "report", "r"), Handler: MainModel.handleReport, Screens: projectsOnly, Priority: 1})

	return r
}

func (m MainModel) handleQuit(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	next, cmd := m.quit()
	return next, cmd, true
}

func handleNextScreen(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	m.screen = Screen((int(m.screen) + 1) % len(screenTitles))
	return m, nil, true
}

func handlePrevScreen(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	m.screen = Screen((int(m.screen) + len(screenTitles) - 1) % len(screenTitles))
	return m, nil, true
}

func handleJumpScreen(m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	switch msg.String() {
	case "1":
		m.screen = ScreenTimer
	case "2":
		m.screen = ScreenGarden
	case "3":
		m.screen = ScreenProjects
	default:
		return m, nil, false
	}
	return m, nil, true
}

func handleCycleTheme(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	name := nextThemeName()
	SetTheme(name)
	if m.deps.Prefs != nil {
		m.deps.Prefs.SetTheme(name)
		m.savePrefs()
	}
	m.setStatus("Theme: " + CurrentTheme.Name)
	return m, nil, true
}

func handleToggleHelp(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	m.help.ShowAll = !m.help.ShowAll
	return m, nil, true
}
