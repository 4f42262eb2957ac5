package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/database"
	"github.com/akyairhashvil/prodgarden/internal/models"
	"github.com/akyairhashvil/prodgarden/internal/report"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

func (m *MainModel) refreshProjects() {
	ctx, cancel := m.opContext()
	defer cancel()
	projects, err := m.deps.Projects.ListProjects(ctx)
	if err != nil {
		m.setError("list projects", err)
		return
	}
	m.projects = projects
	if len(projects) == 0 {
		m.projectCursor = 0
		return
	}
	m.projectCursor = util.Clamp(m.projectCursor, 0, len(projects)-1)
}

func (m MainModel) selectedProject() (models.Project, bool) {
	if m.projectCursor < 0 || m.projectCursor >= len(m.projects) {
		return models.Project{}, false
	}
	return m.projects[m.projectCursor], true
}

func (m MainModel) handleProjectMove(msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	if len(m.projects) == 0 {
		return m, nil, true
	}
	switch msg.String() {
	case "up", "k":
		m.projectCursor--
	case "down", "j":
		m.projectCursor++
	}
	m.projectCursor = util.Clamp(m.projectCursor, 0, len(m.projects)-1)
	return m, nil, true
}

func (m MainModel) handleNewProject(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	next, cmd := m.beginInput(inputProject, "Project name", "", config.MaxProjectNameLength)
	return next, cmd, true
}

func (m MainModel) createProject(name string) (MainModel, error) {
	ctx, cancel := m.opContext()
	defer cancel()
	id, err := m.deps.Projects.CreateProject(ctx, database.ProjectSeed{Name: name})
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.Is(err, database.ErrProjectExists) || errors.As(err, &verrs) {
			return m, err
		}
		m.setError("create project", err)
		return m, nil
	}
	m.refreshProjects()
	for i, p := range m.projects {
		if p.ID == id {
			m.projectCursor = i
		}
	}
	m.setStatus(fmt.Sprintf("Created project %s", name))
	return m, nil
}

// handleActivateProject books future productive minutes to the selected
// project, or stops booking when it is already active.
func (m MainModel) handleActivateProject(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	p, ok := m.selectedProject()
	if !ok {
		return m, nil, true
	}
	if m.deps.Tracker.ActiveProject() == p.ID {
		m.deps.Tracker.SetActiveProject(0)
		m.setStatus(fmt.Sprintf("Stopped tracking %s", p.Name))
	} else {
		m.deps.Tracker.SetActiveProject(p.ID)
		m.setStatus(fmt.Sprintf("Tracking %s", p.Name))
	}
	if err := m.saveSession(); err != nil {
		m.setError("save session", err)
	}
	return m, nil, true
}

var nextStatus = map[models.ProjectStatus]models.ProjectStatus{
	models.ProjectActive:    models.ProjectPaused,
	models.ProjectPaused:    models.ProjectCompleted,
	models.ProjectCompleted: models.ProjectActive,
}

func (m MainModel) handleCycleStatus(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	p, ok := m.selectedProject()
	if !ok {
		return m, nil, true
	}
	status, ok := nextStatus[p.Status]
	if !ok {
		status = models.ProjectActive
	}
	ctx, cancel := m.opContext()
	defer cancel()
	if err := m.deps.Projects.SetProjectStatus(ctx, p.ID, status); err != nil {
		m.setError("update project status", err)
		return m, nil, true
	}
	m.refreshProjects()
	m.setStatus(fmt.Sprintf("%s is now %s", p.Name, status))
	return m, nil, true
}

func (m MainModel) handleDeleteProject(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	p, ok := m.selectedProject()
	if !ok {
		return m, nil, true
	}
	ctx, cancel := m.opContext()
	defer cancel()
	if err := m.deps.Projects.DeleteProjectByName(ctx, p.Name); err != nil {
		m.setError("delete project", err)
		return m, nil, true
	}
	if m.deps.Tracker.ActiveProject() == p.ID {
		m.deps.Tracker.SetActiveProject(0)
		if err := m.saveSession(); err != nil {
			m.setError("save session", err)
			return m, nil, true
		}
	}
	m.refreshProjects()
	m.setStatus(fmt.Sprintf("Deleted project %s", p.Name))
	return m, nil, true
}

func (m MainModel) handleReport(tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	path, err := m.writeReport()
	if err != nil {
		m.setError("write report", err)
		return m, nil, true
	}
	m.deps.Logger.Infof("report written to %s", path)
	m.lastReport = path
	if m.deps.Settings != nil {
		ctx, cancel := m.opContext()
		defer cancel()
		if err := m.deps.Settings.SetSetting(ctx, config.SettingLastReport, path); err != nil {
			m.setError("record report", err)
			return m, nil, true
		}
	}
	m.setStatus(fmt.Sprintf("Report saved to %s", path))
	return m, nil, true
}

// loadLastReport restores the path of the most recent report.
func (m *MainModel) loadLastReport() {
	if m.deps.Settings == nil {
		return
	}
	ctx, cancel := m.opContext()
	defer cancel()
	path, ok, err := m.deps.Settings.GetSetting(ctx, config.SettingLastReport)
	if err != nil {
		m.setError("load settings", err)
		return
	}
	if ok {
		m.lastReport = path
	}
}

func (m MainModel) writeReport() (string, error) {
	now := m.now()
	total, avail := m.deps.Ledger.Points()
	summary := report.Summary{
		Generated:       now,
		TotalPoints:     total,
		AvailablePoints: avail,
		Projects:        m.projects,
		Notes:           m.data.Notes,
	}
	path := filepath.Join(m.deps.ReportsDir, report.FileName(now))
	if err := report.WritePDF(path, summary); err != nil {
		return "", err
	}
	return path, nil
}
