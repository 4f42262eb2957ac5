package testutil

import (
	"testing"

	"github.com/akyairhashvil/prodgarden/internal/models"
	"github.com/akyairhashvil/prodgarden/internal/timer"
)

func TestProjectBuilder(t *testing.T) {
	p := NewProject().WithName("Thesis").WithMinutes(30).WithStatus(models.ProjectPaused).Build()
	if p.Name != "Thesis" || p.TimeTracked != 30 || p.Status != models.ProjectPaused {
		t.Fatalf("unexpected project %+v", p)
	}
	if p.StartDate == nil {
		t.Fatalf("expected default start date")
	}
}

func TestTimerBuilder(t *testing.T) {
	m := NewTimer().Ticked(61).Paused().Build()
	if m.RunState() != timer.Paused {
		t.Fatalf("expected paused, got %s", m.RunState())
	}
	if m.ProductiveMinutes() != 1 {
		t.Fatalf("expected 1 productive minute, got %d", m.ProductiveMinutes())
	}
}
