package models

import "time"

// ProjectStatus enumerates the lifecycle of a tracked project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
)

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPaused, ProjectCompleted:
		return true
	}
	return false
}

// DateLayout is the on-disk format of project dates.
const DateLayout = "2006-01-02"

// Project is a unit of work that tracked minutes are booked against.
type Project struct {
	ID          int64
	Name        string
	Description string
	Type        string
	TimeTracked int // minutes
	StartDate   *time.Time
	EndDate     *time.Time
	Status      ProjectStatus
	CreatedAt   time.Time
}

// Hours returns the tracked time in hours.
func (p Project) Hours() float64 {
	return float64(p.TimeTracked) / 60
}

// ProjectTime pairs a project name with its tracked minutes.
type ProjectTime struct {
	Name    string
	Minutes int
}
