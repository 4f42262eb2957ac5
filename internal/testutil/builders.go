package testutil

import (
	"time"

	"github.com/akyairhashvil/prodgarden/internal/models"
	"github.com/akyairhashvil/prodgarden/internal/timer"
)

// ProjectBuilder provides fluent API for creating test projects.
type ProjectBuilder struct {
	project models.Project
}

func NewProject() *ProjectBuilder {
	start := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	return &ProjectBuilder{
		project: models.Project{
			Name:        "Test Project",
			Description: "A project for tests",
			Type:        "study",
			StartDate:   &start,
			Status:      models.ProjectActive,
		},
	}
}

func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.project.Name = name
	return b
}

func (b *ProjectBuilder) WithType(t string) *ProjectBuilder {
	b.project.Type = t
	return b
}

func (b *ProjectBuilder) WithDates(start, end time.Time) *ProjectBuilder {
	b.project.StartDate = &start
	b.project.EndDate = &end
	return b
}

func (b *ProjectBuilder) WithMinutes(m int) *ProjectBuilder {
	b.project.TimeTracked = m
	return b
}

func (b *ProjectBuilder) WithStatus(s models.ProjectStatus) *ProjectBuilder {
	b.project.Status = s
	return b
}

func (b *ProjectBuilder) Build() models.Project {
	return b.project
}

// TimerBuilder prepares a timer.Manager in a given state.
type TimerBuilder struct {
	settings timer.Settings
	mode     timer.Mode
	ticks    int
	paused   bool
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{settings: timer.DefaultSettings(), mode: timer.ModeStopwatch}
}

func (b *TimerBuilder) WithSettings(s timer.Settings) *TimerBuilder {
	b.settings = s
	return b
}

func (b *TimerBuilder) WithMode(m timer.Mode) *TimerBuilder {
	b.mode = m
	return b
}

// Ticked runs the timer for n seconds after starting it.
func (b *TimerBuilder) Ticked(n int) *TimerBuilder {
	b.ticks = n
	return b
}

func (b *TimerBuilder) Paused() *TimerBuilder {
	b.paused = true
	return b
}

// Build returns a running (or paused) manager; a builder with zero ticks
// and no pause still starts the timer.
func (b *TimerBuilder) Build() *timer.Manager {
	m := timer.New(b.settings)
	_ = m.SetTimerMode(b.mode)
	_ = m.Start()
	for i := 0; i < b.ticks; i++ {
		m.Tick()
	}
	if b.paused {
		_ = m.Pause()
	}
	return m
}
