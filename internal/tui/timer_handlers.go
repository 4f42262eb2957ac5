package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/timer"
)

func (m MainModel) handleStart(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	t := m.deps.Timer
	var err error
	if t.RunState() == timer.Paused {
		err = t.Resume()
	} else {
		err = t.Start()
	}
	switch {
	case errors.Is(err, timer.ErrTimerRunning):
		m.setStatus("Timer already running")
	case err != nil:
		m.setError("start timer", err)
	default:
		m.setStatus(fmt.Sprintf("%s started", t.Mode()))
	}
	return m, nil, true
}

func (m MainModel) handlePause(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	if err := m.deps.Timer.Toggle(); err != nil {
		m.setStatus("Timer is not running")
		return m, nil, true
	}
	if m.deps.Timer.RunState() == timer.Paused {
		m.setStatus("Paused")
	} else {
		m.setStatus("Resumed")
	}
	return m, nil, true
}

func (m MainModel) handleStop(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	m.deps.Timer.Stop()
	m.setStatus("Stopped")
	return m, nil, true
}

func (m MainModel) handleCycleMode(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	next := m.deps.Timer.Mode().Next()
	if err := m.deps.Timer.SetTimerMode(next); err != nil {
		m.setError("switch timer mode", err)
		return m, nil, true
	}
	if m.deps.Prefs != nil {
		m.deps.Prefs.SetTimerMode(next)
		m.savePrefs()
	}
	m.setStatus(fmt.Sprintf("Mode: %s", next))
	return m, nil, true
}

func (m MainModel) handleEditCountdown(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	value := timer.FormatClock(m.deps.Timer.Settings().TimerSeconds)
	next, cmd := m.beginInput(inputCountdown, "hh:mm:ss", value, config.ClockInputWidth)
	return next, cmd, true
}

func (m MainModel) handleEditWork(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	value := timer.FormatClock(m.deps.Timer.Settings().WorkSeconds)
	next, cmd := m.beginInput(inputWork, "hh:mm:ss", value, config.ClockInputWidth)
	return next, cmd, true
}

func (m MainModel) handleEditBreak(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	value := timer.FormatClock(m.deps.Timer.Settings().BreakSeconds)
	next, cmd := m.beginInput(inputBreak, "hh:mm:ss", value, config.ClockInputWidth)
	return next, cmd, true
}

func (m MainModel) handleEditNotes(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	next, cmd := m.beginInput(inputNotes, "Notes", m.data.Notes, config.MaxNotesLength)
	return next, cmd, true
}

// applyCountdown stores a new countdown length. A stopped countdown also
// takes it as its target so the display shows it straight away.
func (m MainModel) applyCountdown(value string) (MainModel, error) {
	secs, err := timer.ParseClock(value)
	if err != nil {
		return m, err
	}
	t := m.deps.Timer
	if t.Mode() == timer.ModeCountdown && t.RunState() != timer.Stopped {
		return m, timer.ErrTimerRunning
	}
	if err := t.SetCountdownDefault(secs); err != nil {
		return m, err
	}
	if t.Mode() == timer.ModeCountdown {
		if err := t.SetTimer(secs); err != nil {
			return m, err
		}
	}
	if err := m.saveSession(); err != nil {
		m.setError("save session", err)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Countdown set to %s", timer.FormatClock(secs)))
	return m, nil
}

func (m MainModel) applyPomodoro(value string) (MainModel, error) {
	secs, err := timer.ParseClock(value)
	if err != nil {
		return m, err
	}
	t := m.deps.Timer
	work, brk := t.Settings().WorkSeconds, t.Settings().BreakSeconds
	label := "Work"
	if m.mode == inputBreak {
		brk = secs
		label = "Break"
	} else {
		work = secs
	}
	if err := t.SetPomodoroDurations(work, brk); err != nil {
		return m, err
	}
	if err := m.saveSession(); err != nil {
		m.setError("save session", err)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("%s set to %s", label, timer.FormatClock(secs)))
	return m, nil
}
