// Package session persists the per-user session file: point balances, the
// duration inputs last entered and free-text notes.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/prodgarden/internal/timer"
)

// Data is the session file content.
type Data struct {
	TotalPoints     int    `json:"total_points"`
	AvailablePoints int    `json:"available_points"`
	PomodoroWork    string `json:"pomodoro_work_input"`
	PomodoroBreak   string `json:"pomodoro_break_input"`
	TimerInput      string `json:"timer_input_field"`
	Notes           string `json:"text_box"`
	ActiveProject   int64  `json:"active_project,omitempty"`
}

// Defaults returns a fresh session with the given durations as clock strings.
func Defaults(s timer.Settings) Data {
	return Data{
		PomodoroWork:  timer.FormatClock(s.WorkSeconds),
		PomodoroBreak: timer.FormatClock(s.BreakSeconds),
		TimerInput:    timer.FormatClock(s.TimerSeconds),
	}
}

// Settings parses the stored duration inputs, falling back to def for any
// field that does not parse.
func (d Data) Settings(def timer.Settings) timer.Settings {
	out := def
	if n, err := timer.ParseClock(d.PomodoroWork); err == nil {
		out.WorkSeconds = n
	}
	if n, err := timer.ParseClock(d.PomodoroBreak); err == nil {
		out.BreakSeconds = n
	}
	if n, err := timer.ParseClock(d.TimerInput); err == nil {
		out.TimerSeconds = n
	}
	return out
}

// Store reads and writes the session file at a fixed path.
type Store struct {
	path     string
	defaults Data
}

func NewStore(path string, defaults Data) *Store {
	return &Store{path: path, defaults: defaults}
}

func (s *Store) Path() string { return s.path }

// Load returns the stored session. A missing file is created from the
// defaults. Undecodable content is an error and the file is left alone.
func (s *Store) Load() (Data, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(s.defaults); err != nil {
			return Data{}, err
		}
		return s.defaults, nil
	}
	if err != nil {
		return Data{}, fmt.Errorf("read session: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode session %s: %w", s.path, err)
	}
	return d, nil
}

// Save overwrites the session file.
func (s *Store) Save(d Data) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// UpdateAvailablePoints rewrites available_points and keeps every other key
// as stored. It reports false without writing when the file does not exist.
func (s *Store) UpdateAvailablePoints(n int) (bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read session: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false, fmt.Errorf("decode session %s: %w", s.path, err)
	}
	value, err := json.Marshal(n)
	if err != nil {
		return false, err
	}
	fields["available_points"] = value
	out, err := json.MarshalIndent(fields, "", "    ")
	if err != nil {
		return false, fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return false, fmt.Errorf("write session: %w", err)
	}
	return true, nil
}
