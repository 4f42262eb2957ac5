package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/timer"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatMinutes formats tracked project minutes.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	return FormatDuration(time.Duration(minutes) * time.Minute)
}

// FormatTimerStatus returns a human-readable timer status line.
func FormatTimerStatus(s timer.State) string {
	label := string(s.Mode)
	if s.Mode == timer.ModePomodoro {
		label = fmt.Sprintf("%s (%s)", label, s.Phase)
	}
	switch s.RunState {
	case timer.Running:
		return label + " - running"
	case timer.Paused:
		return label + " - paused"
	}
	if s.Finished {
		return label + " - finished"
	}
	return label + " - ready"
}

// progressFraction is the share of the current target already elapsed.
func progressFraction(s timer.State) float64 {
	if s.Mode == timer.ModeStopwatch || s.TargetSeconds <= 0 || s.RunState == timer.Stopped {
		return 0
	}
	f := float64(s.ElapsedSeconds) / float64(s.TargetSeconds)
	if f > 1 {
		return 1
	}
	return f
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
