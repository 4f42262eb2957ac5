package database

import (
	"context"

	"github.com/akyairhashvil/prodgarden/internal/models"
)

// ProjectRepository defines project-related database operations.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type ProjectRepository interface {
	CreateProject(ctx context.Context, seed ProjectSeed) (int64, error)
	UpdateProject(ctx context.Context, p models.Project) error
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	GetProjectIDByName(ctx context.Context, name string) (int64, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectNames(ctx context.Context) ([]string, error)
	ListTimeTracked(ctx context.Context) ([]models.ProjectTime, error)
	AddTime(ctx context.Context, id int64, minutes int) error
	SetProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error
	DeleteProjectByName(ctx context.Context, name string) error
}

// SettingsRepository stores small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	ProjectRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
