// Package prefs remembers small UI choices between runs: the last timer
// mode, the last opened garden and the vegetation offered for new gardens.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/prodgarden/internal/timer"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

const (
	prefsObject   = "prefs"
	prefsProperty = "ui"
)

type Preferences struct {
	TimerMode  timer.Mode `yaml:"timerMode"`
	LastGarden string     `yaml:"lastGarden"`
	Vegetation string     `yaml:"vegetation"`
	Theme      string     `yaml:"theme"`
}

func Defaults(vegetation string) Preferences {
	return Preferences{TimerMode: timer.ModePomodoro, Vegetation: vegetation, Theme: "default"}
}

// Open returns a gdata manager for app. Callers may continue with a nil
// manager when it fails.
func Open(app string) (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{AppName: app})
}

// Store keeps Preferences in memory and persists them through gdata.
// A nil gdata manager keeps everything in memory.
type Store struct {
	m        *gdata.Manager
	defaults Preferences
	current  Preferences
	logger   util.Logger
}

// NewStore loads saved preferences. Load failures fall back to defaults
// and are logged, not returned.
func NewStore(m *gdata.Manager, defaults Preferences, logger util.Logger) *Store {
	if logger == nil {
		logger = util.NopLogger()
	}
	s := &Store{m: m, defaults: defaults, current: defaults, logger: logger}
	if err := s.Load(); err != nil {
		logger.Warnf("preferences: %v (using defaults)", err)
	}
	return s
}

// Load rereads the saved preferences.
func (s *Store) Load() error {
	s.current = s.defaults
	if s.m == nil || !s.m.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.m.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	loaded := s.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decode preferences: %w", err)
	}
	if _, err := timer.ParseMode(string(loaded.TimerMode)); err != nil {
		loaded.TimerMode = s.defaults.TimerMode
	}
	s.current = loaded
	return nil
}

// Save persists the current preferences.
func (s *Store) Save() error {
	if s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.m.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func (s *Store) Get() Preferences { return s.current }

func (s *Store) SetTimerMode(m timer.Mode) { s.current.TimerMode = m }
func (s *Store) SetLastGarden(name string) { s.current.LastGarden = name }
func (s *Store) SetVegetation(v string)    { s.current.Vegetation = v }
func (s *Store) SetTheme(name string)      { s.current.Theme = name }
