package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/akyairhashvil/prodgarden/internal/models"
	"github.com/akyairhashvil/prodgarden/internal/testutil"
)

type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	projectIDs []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func seedFrom(p models.Project) ProjectSeed {
	return ProjectSeed{
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

func (b *TestDataBuilder) WithProject(p models.Project) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.CreateProject(b.ctx, seedFrom(p))
	if err != nil {
		b.t.Fatalf("CreateProject failed: %v", err)
	}
	if p.TimeTracked > 0 {
		if err := b.db.AddTime(b.ctx, id, p.TimeTracked); err != nil {
			b.t.Fatalf("AddTime failed: %v", err)
		}
	}
	if p.Status != "" && p.Status != models.ProjectActive {
		if err := b.db.SetProjectStatus(b.ctx, id, p.Status); err != nil {
			b.t.Fatalf("SetProjectStatus failed: %v", err)
		}
	}
	b.projectIDs = append(b.projectIDs, id)
	return b
}

// WithProjects adds count projects named "Project 1".."Project n", each
// with i*10 tracked minutes.
func (b *TestDataBuilder) WithProjects(count int) *TestDataBuilder {
	b.t.Helper()
	for i := 1; i <= count; i++ {
		p := testutil.NewProject().
			WithName(fmt.Sprintf("Project %d", i)).
			WithMinutes(i * 10).
			Build()
		b.WithProject(p)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) ProjectIDs() []int64 {
	return b.projectIDs
}
