// Package timer implements the stopwatch, countdown and Pomodoro state machine
// that drives productive-time accounting.
//
// A Manager is owned by a single goroutine: the host delivers user commands and
// the once-per-second Tick on the same loop, so no locking is done here.
package timer

import (
	"errors"
	"fmt"
)

// Mode selects which tick semantics apply.
type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModeCountdown Mode = "countdown"
	ModePomodoro  Mode = "pomodoro"
)

// Modes lists the selectable modes in cycling order.
var Modes = []Mode{ModePomodoro, ModeCountdown, ModeStopwatch}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStopwatch, ModeCountdown, ModePomodoro:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Next returns the mode following m in Modes.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// RunState is the lifecycle state of the timer.
type RunState string

const (
	Stopped RunState = "stopped"
	Running RunState = "running"
	Paused  RunState = "paused"
)

// Phase is the Pomodoro half-cycle.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

func (p Phase) opposite() Phase {
	if p == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// Event reports what a Tick did.
type Event int

const (
	EventNone Event = iota
	EventTick
	EventCountdownDone
	EventPhaseSwitched
)

var (
	ErrTimerRunning = errors.New("timer is running")
	ErrNotRunning   = errors.New("timer is not running")
	ErrNotPaused    = errors.New("timer is not paused")
	ErrNoDuration   = errors.New("no timer duration configured")
	ErrUnknownMode  = errors.New("unknown timer mode")
)

// Settings carries the configured durations, in seconds.
type Settings struct {
	WorkSeconds  int
	BreakSeconds int
	TimerSeconds int
}

// DefaultSettings mirrors the classic 25/5 Pomodoro and a 50 minute countdown.
func DefaultSettings() Settings {
	return Settings{
		WorkSeconds:  25 * 60,
		BreakSeconds: 5 * 60,
		TimerSeconds: 50 * 60,
	}
}

// State is a snapshot of the timer.
type State struct {
	Mode              Mode
	RunState          RunState
	Phase             Phase
	ElapsedSeconds    int
	TargetSeconds     int
	RemainingSeconds  int
	ProductiveMinutes int
	Finished          bool
}

// Manager is the timer state machine.
type Manager struct {
	settings Settings

	mode     Mode
	runState RunState
	phase    Phase

	elapsed int
	target  int
	// accounted counts running seconds since the last stop; it survives
	// Pomodoro phase switches so minutes are credited across phases.
	accounted  int
	productive int
	finished   bool
}

// New returns a stopped Manager in Pomodoro mode.
func New(settings Settings) *Manager {
	def := DefaultSettings()
	if settings.WorkSeconds <= 0 {
		settings.WorkSeconds = def.WorkSeconds
	}
	if settings.BreakSeconds <= 0 {
		settings.BreakSeconds = def.BreakSeconds
	}
	if settings.TimerSeconds <= 0 {
		settings.TimerSeconds = def.TimerSeconds
	}
	return &Manager{
		settings: settings,
		mode:     ModePomodoro,
		runState: Stopped,
		phase:    PhaseWork,
	}
}

func (m *Manager) Mode() Mode             { return m.mode }
func (m *Manager) RunState() RunState     { return m.runState }
func (m *Manager) Phase() Phase           { return m.phase }
func (m *Manager) Settings() Settings     { return m.settings }
func (m *Manager) ElapsedSeconds() int    { return m.elapsed }
func (m *Manager) TargetSeconds() int     { return m.target }
func (m *Manager) ProductiveMinutes() int { return m.productive }

// Finished reports whether the last countdown ran to zero.
func (m *Manager) Finished() bool { return m.finished }

// RemainingSeconds is max(0, target-elapsed).
func (m *Manager) RemainingSeconds() int {
	if r := m.target - m.elapsed; r > 0 {
		return r
	}
	return 0
}

// State returns a snapshot of all fields.
func (m *Manager) State() State {
	return State{
		Mode:              m.mode,
		RunState:          m.runState,
		Phase:             m.phase,
		ElapsedSeconds:    m.elapsed,
		TargetSeconds:     m.target,
		RemainingSeconds:  m.RemainingSeconds(),
		ProductiveMinutes: m.productive,
		Finished:          m.finished,
	}
}

// DrainProductiveMinutes returns the accumulated minutes and resets the counter.
func (m *Manager) DrainProductiveMinutes() int {
	n := m.productive
	m.productive = 0
	return n
}

// SetTimerMode stops the timer and selects mode.
func (m *Manager) SetTimerMode(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	m.Stop()
	m.mode = mode
	return nil
}

// selectMode switches mode when needed, which implies a stop.
func (m *Manager) selectMode(mode Mode) {
	if m.mode != mode {
		m.Stop()
		m.mode = mode
	}
}

// SetTimer configures the countdown target. Elapsed time is reset.
func (m *Manager) SetTimer(seconds int) error {
	if m.runState == Running {
		return ErrTimerRunning
	}
	if err := ValidateSeconds(seconds); err != nil {
		return err
	}
	m.target = seconds
	m.elapsed = 0
	return nil
}

// SetTimerHMS is SetTimer with separate clock fields. Minutes and seconds
// must lie in [0, 59].
func (m *Manager) SetTimerHMS(hours, minutes, seconds int) error {
	switch {
	case hours < 0:
		return &ValidationError{Reason: "hours must not be negative"}
	case minutes < 0 || minutes > 59:
		return &ValidationError{Reason: "minutes must be between 0 and 59"}
	case seconds < 0 || seconds > 59:
		return &ValidationError{Reason: "seconds must be between 0 and 59"}
	}
	return m.SetTimer(hours*3600 + minutes*60 + seconds)
}

// SetPomodoroDurations configures the work and break phase lengths.
func (m *Manager) SetPomodoroDurations(work, brk int) error {
	if m.runState == Running {
		return ErrTimerRunning
	}
	if err := ValidateSeconds(work); err != nil {
		return fmt.Errorf("work: %w", err)
	}
	if err := ValidateSeconds(brk); err != nil {
		return fmt.Errorf("break: %w", err)
	}
	m.settings.WorkSeconds = work
	m.settings.BreakSeconds = brk
	return nil
}

// SetCountdownDefault changes the duration used when a countdown starts
// without an explicit SetTimer.
func (m *Manager) SetCountdownDefault(seconds int) error {
	if err := ValidateSeconds(seconds); err != nil {
		return err
	}
	m.settings.TimerSeconds = seconds
	return nil
}

// StartStopwatch runs the stopwatch. Elapsed time only resets from stopped.
func (m *Manager) StartStopwatch() {
	m.selectMode(ModeStopwatch)
	if m.runState == Stopped {
		m.elapsed = 0
		m.target = 0
		m.finished = false
	}
	m.runState = Running
}

// StartTimer runs the countdown from stopped (using the configured target)
// or resumes it from paused. A target set while stopped in another mode is
// kept across the mode switch.
func (m *Manager) StartTimer() error {
	held := 0
	if m.runState == Stopped {
		held = m.target
	}
	m.selectMode(ModeCountdown)
	if m.runState == Stopped && m.target == 0 {
		m.target = held
	}
	switch m.runState {
	case Running:
		return ErrTimerRunning
	case Paused:
		m.runState = Running
		return nil
	}
	if m.target == 0 {
		return ErrNoDuration
	}
	m.elapsed = 0
	m.finished = false
	m.runState = Running
	return nil
}

// StartPomodoro begins a work phase from stopped or resumes from paused.
func (m *Manager) StartPomodoro() error {
	m.selectMode(ModePomodoro)
	switch m.runState {
	case Running:
		return ErrTimerRunning
	case Paused:
		m.runState = Running
		return nil
	}
	m.phase = PhaseWork
	m.target = m.settings.WorkSeconds
	m.elapsed = 0
	m.finished = false
	m.runState = Running
	return nil
}

// Start dispatches to the start operation of the selected mode.
func (m *Manager) Start() error {
	switch m.mode {
	case ModeStopwatch:
		m.StartStopwatch()
		return nil
	case ModeCountdown:
		if m.runState == Stopped && m.target == 0 {
			if err := m.SetTimer(m.settings.TimerSeconds); err != nil {
				return err
			}
		}
		return m.StartTimer()
	default:
		return m.StartPomodoro()
	}
}

// Pause suspends ticking without touching the accumulators.
func (m *Manager) Pause() error {
	if m.runState != Running {
		return ErrNotRunning
	}
	m.runState = Paused
	return nil
}

// Resume continues a paused timer.
func (m *Manager) Resume() error {
	if m.runState != Paused {
		return ErrNotPaused
	}
	m.runState = Running
	return nil
}

// Toggle pauses a running timer or resumes a paused one.
func (m *Manager) Toggle() error {
	switch m.runState {
	case Running:
		return m.Pause()
	case Paused:
		return m.Resume()
	}
	return ErrNotRunning
}

// Stop resets the timer. Productive minutes are kept until drained.
func (m *Manager) Stop() {
	m.runState = Stopped
	m.elapsed = 0
	m.target = 0
	m.accounted = 0
	m.phase = PhaseWork
	m.finished = false
}

// Tick advances the timer by one second.
func (m *Manager) Tick() Event {
	if m.runState != Running {
		return EventNone
	}
	m.elapsed++
	m.accounted++
	if m.accounted%60 == 0 {
		m.productive++
	}

	switch m.mode {
	case ModeCountdown:
		if m.RemainingSeconds() == 0 {
			m.Stop()
			m.finished = true
			return EventCountdownDone
		}
	case ModePomodoro:
		if m.RemainingSeconds() == 0 {
			m.phase = m.phase.opposite()
			m.target = m.phaseSeconds(m.phase)
			m.elapsed = 0
			return EventPhaseSwitched
		}
	}
	return EventTick
}

func (m *Manager) phaseSeconds(p Phase) int {
	if p == PhaseBreak {
		return m.settings.BreakSeconds
	}
	return m.settings.WorkSeconds
}

// DisplayTime renders the value the user should see as hh:mm:ss.
func (m *Manager) DisplayTime() string {
	if m.runState == Stopped {
		if m.target > 0 {
			return FormatClock(m.target)
		}
		return FormatClock(0)
	}
	if m.mode == ModeStopwatch {
		return FormatClock(m.elapsed)
	}
	return FormatClock(m.RemainingSeconds())
}
