package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/prodgarden/internal/models"
)

const exportVersion = 1

type ExportProject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	TimeTracked int    `json:"time_tracked"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type ExportSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Backup is the JSON document produced by Export.
type Backup struct {
	Version  int             `json:"version"`
	Projects []ExportProject `json:"projects"`
	Settings []ExportSetting `json:"settings,omitempty"`
}

func (d *Database) getAllSettings(ctx context.Context) ([]ExportSetting, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, wrapSettingErr("export", err)
	}
	defer rows.Close()
	var out []ExportSetting
	for rows.Next() {
		var s ExportSetting
		var value sql.NullString
		if err := rows.Scan(&s.Key, &value); err != nil {
			return nil, wrapSettingErr("export", err)
		}
		s.Value = value.String
		out = append(out, s)
	}
	return out, wrapSettingErr("export", rows.Err())
}

func exportDate(p models.Project, end bool) string {
	v := p.StartDate
	if end {
		v = p.EndDate
	}
	return nullableDate(v).String
}

// Export serialises every project and setting.
func (d *Database) Export(ctx context.Context) ([]byte, error) {
	projects, err := d.queryProjects(ctx, "export", NewProjectQuery().OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	settings, err := d.getAllSettings(ctx)
	if err != nil {
		return nil, err
	}
	backup := Backup{Version: exportVersion, Projects: make([]ExportProject, 0, len(projects)), Settings: settings}
	for _, p := range projects {
		ep := ExportProject{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Type:        p.Type,
			TimeTracked: p.TimeTracked,
			StartDate:   exportDate(p, false),
			EndDate:     exportDate(p, true),
			Status:      string(p.Status),
		}
		if !p.CreatedAt.IsZero() {
			ep.CreatedAt = p.CreatedAt.Format(time.RFC3339)
		}
		backup.Projects = append(backup.Projects, ep)
	}
	return json.MarshalIndent(backup, "", "  ")
}

// Import loads a backup, replacing rows with the same id. The whole import
// is one transaction.
func (d *Database) Import(ctx context.Context, payload []byte) error {
	var backup Backup
	if err := json.Unmarshal(payload, &backup); err != nil {
		return fmt.Errorf("import backup: %w", err)
	}
	if backup.Version > exportVersion {
		return fmt.Errorf("import backup: unsupported version %d", backup.Version)
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, p := range backup.Projects {
			status := models.ProjectStatus(strings.TrimSpace(p.Status))
			if !status.Valid() {
				status = models.ProjectActive
			}
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("import project %d: empty name", p.ID)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO projects
				(id, name, description, type, time_tracked, start_date, end_date, status, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Name, nilIfEmpty(p.Description), nilIfEmpty(p.Type), max(p.TimeTracked, 0),
				nilIfEmpty(p.StartDate), nilIfEmpty(p.EndDate), string(status), nilIfEmpty(p.CreatedAt),
			); err != nil {
				return fmt.Errorf("import project %d: %w", p.ID, err)
			}
		}
		for _, s := range backup.Settings {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
				s.Key, s.Value,
			); err != nil {
				return fmt.Errorf("import setting %q: %w", s.Key, err)
			}
		}
		return nil
	})
}

func nilIfEmpty(value string) interface{} {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
