package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/database"
	"github.com/akyairhashvil/prodgarden/internal/timer"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width-8 < target {
			target = m.width - 8
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
		m.help.Width = m.width
	}
	return m, nil
}

// handleTick advances the timer by one second and moves any completed
// productive minutes into the ledger and the active project.
func (m MainModel) handleTick(_ TickMsg) (MainModel, tea.Cmd) {
	switch m.deps.Timer.Tick() {
	case timer.EventCountdownDone:
		m.setStatus("Countdown finished")
	case timer.EventPhaseSwitched:
		m.setStatus(fmt.Sprintf("%s phase started", phaseTitle(m.deps.Timer.Phase())))
	}

	ctx, cancel := m.opContext()
	defer cancel()
	minutes, err := m.deps.Tracker.Sync(ctx)
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			m.deps.Tracker.SetActiveProject(0)
		}
		m.setError("book productive minutes", err)
	}
	if minutes > 0 {
		if err := m.saveSession(); err != nil {
			m.setError("save session", err)
		}
		if m.deps.Tracker.ActiveProject() != 0 {
			m.refreshProjects()
		}
	}
	return m, tickCmd()
}

func phaseTitle(p timer.Phase) string {
	if p == timer.PhaseBreak {
		return "Break"
	}
	return "Work"
}

// beginInput focuses the shared text input for mode.
func (m MainModel) beginInput(mode inputMode, placeholder, value string, limit int) (MainModel, tea.Cmd) {
	m.mode = mode
	m.inputErr = nil
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.CharLimit = limit
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m MainModel) endInput() MainModel {
	m.mode = inputNone
	m.inputErr = nil
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m MainModel) handleInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.endInput(), nil
	case tea.KeyEnter:
		next, err := m.submitInput(m.input.Value())
		if err != nil {
			// Validation failures stay in the input so they can be fixed.
			next.inputErr = err
			return next, nil
		}
		return next.endInput(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) submitInput(value string) (MainModel, error) {
	switch m.mode {
	case inputCountdown:
		return m.applyCountdown(value)
	case inputWork, inputBreak:
		return m.applyPomodoro(value)
	case inputNotes:
		m.data.Notes = value
		if err := m.saveSession(); err != nil {
			m.setError("save notes", err)
			return m, nil
		}
		m.setStatus("Notes saved")
		return m, nil
	case inputProject:
		return m.createProject(value)
	case inputGarden:
		return m.createGarden(value)
	}
	return m, nil
}
