package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/prodgarden/internal/timer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data.json"), Defaults(timer.DefaultSettings()))
}

func TestLoadMissingWritesDefaults(t *testing.T) {
	s := newTestStore(t)
	d, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "00:25:00", d.PomodoroWork)
	assert.Equal(t, "00:05:00", d.PomodoroBreak)
	assert.Equal(t, "00:50:00", d.TimerInput)
	assert.Zero(t, d.TotalPoints)
	assert.FileExists(t, s.Path())

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, k := range []string{"total_points", "available_points", "pomodoro_work_input", "pomodoro_break_input", "timer_input_field", "text_box"} {
		assert.Contains(t, keys, k)
	}
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)
	want := Data{
		TotalPoints:     42,
		AvailablePoints: 17,
		PomodoroWork:    "00:50:00",
		PomodoroBreak:   "00:10:00",
		TimerInput:      "01:00:00",
		Notes:           "write report\nwater plants",
		ActiveProject:   3,
	}
	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMalformed(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{broken"), 0o644))
	_, err := s.Load()
	assert.Error(t, err)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw), "malformed file must not be replaced")
}

func TestUpdateAvailablePoints(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.UpdateAvailablePoints(5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoFileExists(t, s.Path())

	require.NoError(t, s.Save(Data{TotalPoints: 30, AvailablePoints: 20, Notes: "keep"}))
	ok, err = s.UpdateAvailablePoints(12)
	require.NoError(t, err)
	assert.True(t, ok)

	d, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 12, d.AvailablePoints)
	assert.Equal(t, 30, d.TotalPoints)
	assert.Equal(t, "keep", d.Notes)
}

func TestDataSettings(t *testing.T) {
	def := timer.DefaultSettings()
	d := Data{PomodoroWork: "00:45:00", PomodoroBreak: "bogus", TimerInput: "01:00:00"}
	s := d.Settings(def)
	assert.Equal(t, 2700, s.WorkSeconds)
	assert.Equal(t, def.BreakSeconds, s.BreakSeconds)
	assert.Equal(t, 3600, s.TimerSeconds)
}
