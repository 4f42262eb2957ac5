package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/akyairhashvil/prodgarden/internal/models"
)

var validate = validator.New()

// ProjectSeed carries the user-supplied fields of a new project.
type ProjectSeed struct {
	Name        string `validate:"required,max=64"`
	Description string `validate:"max=2000"`
	Type        string `validate:"max=64"`
	StartDate   *time.Time
	EndDate     *time.Time
}

func (s *ProjectSeed) normalize() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	s.Type = strings.TrimSpace(s.Type)
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CreateProject inserts an active project with no tracked time and returns its id.
func (d *Database) CreateProject(ctx context.Context, seed ProjectSeed) (int64, error) {
	if err := seed.normalize(); err != nil {
		return 0, wrapProjectErr("create", 0, err)
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	now := nowStamp()
	res, err := d.DB.ExecContext(ctx, `INSERT INTO projects
		(name, description, type, time_tracked, start_date, end_date, status, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?)`,
		seed.Name, nullableString(seed.Description), nullableString(seed.Type),
		nullableDate(seed.StartDate), nullableDate(seed.EndDate),
		string(models.ProjectActive), now, now)
	if err != nil {
		return 0, wrapProjectErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapProjectErr("create", 0, err)
}

// UpdateProject overwrites every editable field of p.
func (d *Database) UpdateProject(ctx context.Context, p models.Project) error {
	seed := ProjectSeed{Name: p.Name, Description: p.Description, Type: p.Type, StartDate: p.StartDate, EndDate: p.EndDate}
	if err := seed.normalize(); err != nil {
		return wrapProjectErr("update", p.ID, err)
	}
	if !p.Status.Valid() {
		return wrapProjectErr("update", p.ID, fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status))
	}
	if p.TimeTracked < 0 {
		p.TimeTracked = 0
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, `UPDATE projects SET
		name = ?, description = ?, type = ?, time_tracked = ?, start_date = ?, end_date = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		seed.Name, nullableString(seed.Description), nullableString(seed.Type), p.TimeTracked,
		nullableDate(seed.StartDate), nullableDate(seed.EndDate), string(p.Status), nowStamp(), p.ID)
	return wrapProjectErr("update", p.ID, requireRow(res, err))
}

// requireRow maps a write that touched nothing to ErrProjectNotFound.
func requireRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var (
		p                  models.Project
		description, ptype sql.NullString
		startDate, endDate sql.NullString
		status, createdAt  sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &ptype, &p.TimeTracked, &startDate, &endDate, &status, &createdAt); err != nil {
		return p, err
	}
	p.Description = description.String
	p.Type = ptype.String
	p.StartDate = parseDate(startDate)
	p.EndDate = parseDate(endDate)
	p.Status = models.ProjectStatus(status.String)
	if !p.Status.Valid() {
		p.Status = models.ProjectActive
	}
	if createdAt.Valid {
		if t, err := time.Parse(time.RFC3339, createdAt.String); err == nil {
			p.CreatedAt = t
		}
	}
	return p, nil
}

func (d *Database) queryProjects(ctx context.Context, op string, q *ProjectQuery) ([]models.Project, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapProjectErr(op, 0, err)
	}
	defer rows.Close()
	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrapProjectErr(op, 0, err)
		}
		projects = append(projects, p)
	}
	return projects, wrapProjectErr(op, 0, rows.Err())
}

// GetProject loads one project. Stale ids yield ErrProjectNotFound.
func (d *Database) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	projects, err := d.queryProjects(ctx, "get", NewProjectQuery().Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, wrapProjectErr("get", id, ErrProjectNotFound)
	}
	return &projects[0], nil
}

func (d *Database) GetProjectIDByName(ctx context.Context, name string) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var id int64
	err := d.DB.QueryRowContext(ctx, "SELECT id FROM projects WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, wrapProjectErr("lookup", 0, fmt.Errorf("%w: %q", ErrProjectNotFound, name))
	}
	return id, wrapProjectErr("lookup", 0, err)
}

// ListProjects returns all projects ordered by name.
func (d *Database) ListProjects(ctx context.Context) ([]models.Project, error) {
	return d.queryProjects(ctx, "list", NewProjectQuery())
}

func (d *Database) ListProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	if !status.Valid() {
		return nil, wrapProjectErr("list", 0, fmt.Errorf("%w: %q", ErrInvalidStatus, status))
	}
	return d.queryProjects(ctx, "list", NewProjectQuery().WhereStatus(status))
}

func (d *Database) ListProjectNames(ctx context.Context) ([]string, error) {
	projects, err := d.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names, nil
}

// ListTimeTracked returns every project's tracked minutes, most first.
func (d *Database) ListTimeTracked(ctx context.Context) ([]models.ProjectTime, error) {
	q := NewProjectQuery().OrderBy("time_tracked DESC, name COLLATE NOCASE ASC")
	projects, err := d.queryProjects(ctx, "list time", q)
	if err != nil {
		return nil, err
	}
	out := make([]models.ProjectTime, 0, len(projects))
	for _, p := range projects {
		out = append(out, models.ProjectTime{Name: p.Name, Minutes: p.TimeTracked})
	}
	return out, nil
}

// AddTime books minutes against a project.
func (d *Database) AddTime(ctx context.Context, id int64, minutes int) error {
	if minutes <= 0 {
		return nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx,
		"UPDATE projects SET time_tracked = time_tracked + ?, updated_at = ? WHERE id = ?",
		minutes, nowStamp(), id)
	return wrapProjectErr("add time", id, requireRow(res, err))
}

func (d *Database) SetProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	if !status.Valid() {
		return wrapProjectErr("set status", id, fmt.Errorf("%w: %q", ErrInvalidStatus, status))
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx,
		"UPDATE projects SET status = ?, updated_at = ? WHERE id = ?",
		string(status), nowStamp(), id)
	return wrapProjectErr("set status", id, requireRow(res, err))
}

func (d *Database) DeleteProjectByName(ctx context.Context, name string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, "DELETE FROM projects WHERE name = ?", name)
	return wrapProjectErr("delete", 0, requireRow(res, err))
}
