package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer again.Close()
	ok, err := again.columnExists(ctx, "projects", "created_at")
	if err != nil || !ok {
		t.Fatalf("expected created_at column, got %v, %v", ok, err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestMigrateLegacySchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "legacy.db")
	raw, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	if _, err := raw.Exec(`CREATE TABLE projects (
		id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE, description TEXT, type TEXT,
		time_tracked INTEGER NOT NULL DEFAULT 0, start_date TEXT, end_date TEXT, status TEXT NOT NULL DEFAULT 'active')`); err != nil {
		t.Fatalf("create legacy table failed: %v", err)
	}
	if _, err := raw.Exec("INSERT INTO projects (name, time_tracked) VALUES ('Old', 12)"); err != nil {
		t.Fatalf("insert legacy row failed: %v", err)
	}
	raw.Close()

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	id, err := db.GetProjectIDByName(ctx, "Old")
	if err != nil {
		t.Fatalf("GetProjectIDByName failed: %v", err)
	}
	p, err := db.GetProject(ctx, id)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if p.TimeTracked != 12 || !p.CreatedAt.IsZero() {
		t.Fatalf("unexpected legacy project %+v", p)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO projects (name) VALUES (?)", "tx-rollback"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM projects WHERE name = ?", "tx-rollback").Scan(&count); err != nil {
		t.Fatalf("query count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to remove project, got count %d", count)
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, ok, err := db.GetSetting(ctx, "active_project"); err != nil || ok {
		t.Fatalf("expected unset setting, got ok=%v err=%v", ok, err)
	}
	if err := db.SetSetting(ctx, "active_project", "3"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "active_project", "4"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, ok, err := db.GetSetting(ctx, "active_project")
	if err != nil || !ok || value != "4" {
		t.Fatalf("GetSetting = %q, %v, %v", value, ok, err)
	}
}
