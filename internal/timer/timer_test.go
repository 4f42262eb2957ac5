package timer

import (
	"errors"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return New(Settings{WorkSeconds: 3, BreakSeconds: 2, TimerSeconds: 4})
}

func tickN(m *Manager, n int) Event {
	var ev Event
	for i := 0; i < n; i++ {
		ev = m.Tick()
	}
	return ev
}

func TestNewDefaults(t *testing.T) {
	m := New(Settings{})
	if m.Mode() != ModePomodoro {
		t.Fatalf("expected pomodoro mode, got %s", m.Mode())
	}
	if m.RunState() != Stopped {
		t.Fatalf("expected stopped, got %s", m.RunState())
	}
	if m.Settings() != DefaultSettings() {
		t.Fatalf("expected default settings, got %+v", m.Settings())
	}
	if got := m.DisplayTime(); got != "00:00:00" {
		t.Fatalf("DisplayTime = %q", got)
	}
}

func TestSetTimerDisplaysTargetWhileStopped(t *testing.T) {
	cases := []int{1, 59, 60, 3599, 3600, 45296, 86399, 86400}
	for _, d := range cases {
		m := New(DefaultSettings())
		if err := m.SetTimer(d); err != nil {
			t.Fatalf("SetTimer(%d) failed: %v", d, err)
		}
		if got, want := m.DisplayTime(), FormatClock(d); got != want {
			t.Fatalf("SetTimer(%d): DisplayTime = %q, want %q", d, got, want)
		}
	}
	m := New(DefaultSettings())
	_ = m.SetTimer(45296)
	if got := m.DisplayTime(); got != "12:34:56" {
		t.Fatalf("DisplayTime = %q, want 12:34:56", got)
	}
}

func TestSetTimerRejectsOutOfRange(t *testing.T) {
	m := New(DefaultSettings())
	for _, d := range []int{0, -5, MaxSeconds + 1} {
		err := m.SetTimer(d)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("SetTimer(%d): expected ValidationError, got %v", d, err)
		}
	}
	if m.TargetSeconds() != 0 {
		t.Fatalf("rejected SetTimer must not change target")
	}
}

func TestSetTimerHMSRejectsOutOfRangeFields(t *testing.T) {
	m := New(DefaultSettings())
	cases := [][3]int{{0, -1, 61}, {-1, 0, 3601}, {0, 60, 0}, {0, 0, 60}, {0, 1, -1}}
	for _, c := range cases {
		err := m.SetTimerHMS(c[0], c[1], c[2])
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("SetTimerHMS(%v): expected ValidationError, got %v", c, err)
		}
	}
	if m.TargetSeconds() != 0 {
		t.Fatalf("rejected SetTimerHMS must not change target, got %d", m.TargetSeconds())
	}
	if err := m.SetTimerHMS(1, 2, 3); err != nil || m.TargetSeconds() != 3723 {
		t.Fatalf("SetTimerHMS(1,2,3) = %v, target %d", err, m.TargetSeconds())
	}
}

func TestSetTimerWhileRunningRejected(t *testing.T) {
	m := newTestManager(t)
	_ = m.SetTimerMode(ModeCountdown)
	if err := m.SetTimer(10); err != nil {
		t.Fatalf("SetTimer failed: %v", err)
	}
	if err := m.StartTimer(); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	m.Tick()
	if err := m.SetTimer(30); !errors.Is(err, ErrTimerRunning) {
		t.Fatalf("expected ErrTimerRunning, got %v", err)
	}
	if m.TargetSeconds() != 10 || m.ElapsedSeconds() != 1 {
		t.Fatalf("running timer was modified: %+v", m.State())
	}
}

func TestStopwatchTicks(t *testing.T) {
	m := New(DefaultSettings())
	m.StartStopwatch()
	tickN(m, 125)
	if m.ElapsedSeconds() != 125 {
		t.Fatalf("elapsed = %d, want 125", m.ElapsedSeconds())
	}
	if m.ProductiveMinutes() != 2 {
		t.Fatalf("productive minutes = %d, want 2", m.ProductiveMinutes())
	}
	if got := m.DisplayTime(); got != "00:02:05" {
		t.Fatalf("DisplayTime = %q", got)
	}
}

func TestStopwatchProductiveMinutesProperty(t *testing.T) {
	for _, n := range []int{0, 1, 59, 60, 61, 119, 120, 3601} {
		m := New(DefaultSettings())
		m.StartStopwatch()
		tickN(m, n)
		if m.ElapsedSeconds() != n {
			t.Fatalf("n=%d: elapsed = %d", n, m.ElapsedSeconds())
		}
		if m.ProductiveMinutes() != n/60 {
			t.Fatalf("n=%d: productive = %d, want %d", n, m.ProductiveMinutes(), n/60)
		}
	}
}

func TestStartStopwatchKeepsElapsedWhenPaused(t *testing.T) {
	m := New(DefaultSettings())
	m.StartStopwatch()
	tickN(m, 10)
	if err := m.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	m.StartStopwatch()
	if m.RunState() != Running || m.ElapsedSeconds() != 10 {
		t.Fatalf("expected running with 10s elapsed, got %+v", m.State())
	}
}

func TestPauseResumeRoundTrip(t *testing.T) {
	m := newTestManager(t)
	_ = m.SetTimerMode(ModeCountdown)
	_ = m.SetTimer(100)
	_ = m.StartTimer()
	tickN(m, 7)
	before := m.State()

	if err := m.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if ev := m.Tick(); ev != EventNone {
		t.Fatalf("paused tick should be ignored, got %v", ev)
	}
	if err := m.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	after := m.State()
	if after != before {
		t.Fatalf("state changed across pause/resume:\nbefore %+v\nafter  %+v", before, after)
	}
	m.Tick()
	if m.ElapsedSeconds() != 8 || m.RemainingSeconds() != 92 {
		t.Fatalf("unexpected continuation: %+v", m.State())
	}
}

func TestPauseResumeErrors(t *testing.T) {
	m := New(DefaultSettings())
	if err := m.Pause(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
	if err := m.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Fatalf("expected ErrNotPaused, got %v", err)
	}
}

func TestCountdownFinishes(t *testing.T) {
	m := New(DefaultSettings())
	if err := m.SetTimerMode(ModeCountdown); err != nil {
		t.Fatalf("SetTimerMode failed: %v", err)
	}
	if err := m.SetTimerHMS(0, 0, 5); err != nil {
		t.Fatalf("SetTimerHMS failed: %v", err)
	}
	if err := m.StartTimer(); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	if ev := tickN(m, 4); ev != EventTick {
		t.Fatalf("expected EventTick before zero, got %v", ev)
	}
	if got := m.DisplayTime(); got != "00:00:01" {
		t.Fatalf("DisplayTime = %q", got)
	}
	if ev := m.Tick(); ev != EventCountdownDone {
		t.Fatalf("expected EventCountdownDone, got %v", ev)
	}
	if m.RunState() != Stopped {
		t.Fatalf("expected stopped, got %s", m.RunState())
	}
	if !m.Finished() {
		t.Fatalf("expected Finished flag")
	}
	if got := m.DisplayTime(); got != "00:00:00" {
		t.Fatalf("DisplayTime = %q", got)
	}
	if m.ElapsedSeconds() != 0 || m.TargetSeconds() != 0 {
		t.Fatalf("stopped timer must be zeroed: %+v", m.State())
	}
}

func TestStartTimerWithoutDuration(t *testing.T) {
	m := New(DefaultSettings())
	if err := m.StartTimer(); !errors.Is(err, ErrNoDuration) {
		t.Fatalf("expected ErrNoDuration, got %v", err)
	}
	if m.Mode() != ModeCountdown {
		t.Fatalf("StartTimer should select countdown mode")
	}
}

func TestStartTimerKeepsTargetSetInOtherMode(t *testing.T) {
	m := New(DefaultSettings())
	if err := m.SetTimer(5); err != nil {
		t.Fatalf("SetTimer failed: %v", err)
	}
	if got := m.DisplayTime(); got != "00:00:05" {
		t.Fatalf("DisplayTime = %q", got)
	}
	if err := m.StartTimer(); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	if m.Mode() != ModeCountdown || m.RunState() != Running {
		t.Fatalf("expected running countdown, got %+v", m.State())
	}
	if ev := tickN(m, 5); ev != EventCountdownDone {
		t.Fatalf("expected EventCountdownDone after 5 ticks, got %v", ev)
	}
	if m.RunState() != Stopped || m.DisplayTime() != "00:00:00" {
		t.Fatalf("countdown should be stopped and zeroed: %+v", m.State())
	}
}

func TestStartTimerDropsPausedPomodoroTarget(t *testing.T) {
	m := newTestManager(t)
	_ = m.StartPomodoro()
	_ = m.Pause()
	if err := m.StartTimer(); !errors.Is(err, ErrNoDuration) {
		t.Fatalf("expected ErrNoDuration, got %v", err)
	}
}

func TestStartUsesCountdownDefault(t *testing.T) {
	m := newTestManager(t)
	_ = m.SetTimerMode(ModeCountdown)
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if m.TargetSeconds() != 4 {
		t.Fatalf("expected default countdown of 4s, got %d", m.TargetSeconds())
	}
}

func TestPomodoroPhaseSwitch(t *testing.T) {
	m := newTestManager(t)
	if err := m.StartPomodoro(); err != nil {
		t.Fatalf("StartPomodoro failed: %v", err)
	}
	if m.Phase() != PhaseWork || m.RemainingSeconds() != 3 {
		t.Fatalf("unexpected start state: %+v", m.State())
	}
	if ev := tickN(m, 3); ev != EventPhaseSwitched {
		t.Fatalf("expected EventPhaseSwitched, got %v", ev)
	}
	if m.Phase() != PhaseBreak {
		t.Fatalf("expected break phase, got %s", m.Phase())
	}
	if m.RemainingSeconds() != 2 || m.RunState() != Running {
		t.Fatalf("expected running break with 2s, got %+v", m.State())
	}
	tickN(m, 2)
	if m.Phase() != PhaseWork || m.RemainingSeconds() != 3 {
		t.Fatalf("expected back to work phase, got %+v", m.State())
	}
}

func TestPomodoroProductiveMinutesSpanPhases(t *testing.T) {
	m := New(Settings{WorkSeconds: 50, BreakSeconds: 50, TimerSeconds: 60})
	_ = m.StartPomodoro()
	tickN(m, 60)
	if m.Phase() != PhaseBreak {
		t.Fatalf("expected break phase after 60s, got %s", m.Phase())
	}
	if m.ProductiveMinutes() != 1 {
		t.Fatalf("productive = %d, want 1", m.ProductiveMinutes())
	}
}

func TestSetPomodoroDurations(t *testing.T) {
	m := New(DefaultSettings())
	if err := m.SetPomodoroDurations(0, 10); err == nil {
		t.Fatalf("expected validation error for zero work duration")
	}
	if err := m.SetPomodoroDurations(90, 30); err != nil {
		t.Fatalf("SetPomodoroDurations failed: %v", err)
	}
	_ = m.StartPomodoro()
	if m.TargetSeconds() != 90 {
		t.Fatalf("target = %d, want 90", m.TargetSeconds())
	}
	if err := m.SetPomodoroDurations(60, 60); !errors.Is(err, ErrTimerRunning) {
		t.Fatalf("expected ErrTimerRunning, got %v", err)
	}
}

func TestSetTimerModeStops(t *testing.T) {
	m := New(DefaultSettings())
	m.StartStopwatch()
	tickN(m, 30)
	if err := m.SetTimerMode(ModeCountdown); err != nil {
		t.Fatalf("SetTimerMode failed: %v", err)
	}
	if m.RunState() != Stopped || m.ElapsedSeconds() != 0 || m.TargetSeconds() != 0 {
		t.Fatalf("mode switch must reset the timer: %+v", m.State())
	}
	if err := m.SetTimerMode(Mode("lap")); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestStopResetsButKeepsProductiveMinutes(t *testing.T) {
	m := New(DefaultSettings())
	m.StartStopwatch()
	tickN(m, 61)
	m.Stop()
	if m.RunState() != Stopped || m.ElapsedSeconds() != 0 || m.TargetSeconds() != 0 {
		t.Fatalf("stop must reset: %+v", m.State())
	}
	if got := m.DrainProductiveMinutes(); got != 1 {
		t.Fatalf("drained %d, want 1", got)
	}
	if m.ProductiveMinutes() != 0 {
		t.Fatalf("drain must reset the counter")
	}
}

func TestToggle(t *testing.T) {
	m := New(DefaultSettings())
	if err := m.Toggle(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
	m.StartStopwatch()
	_ = m.Toggle()
	if m.RunState() != Paused {
		t.Fatalf("expected paused")
	}
	_ = m.Toggle()
	if m.RunState() != Running {
		t.Fatalf("expected running")
	}
}

func TestModeNextCycles(t *testing.T) {
	if ModePomodoro.Next() != ModeCountdown || ModeCountdown.Next() != ModeStopwatch || ModeStopwatch.Next() != ModePomodoro {
		t.Fatalf("unexpected mode cycle")
	}
	if _, err := ParseMode("stoppwatch"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
