package tracking

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/prodgarden/internal/database/mocks"
	"github.com/akyairhashvil/prodgarden/internal/points"
	"github.com/akyairhashvil/prodgarden/internal/testutil"
)

func TestSyncBooksActiveProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepository(ctrl)
	ctx := context.Background()

	m := testutil.NewTimer().Ticked(150).Build()
	ledger := points.NewLedger(0, 0)
	tr := New(m, ledger, repo, nil)
	tr.SetActiveProject(7)

	repo.EXPECT().AddTime(ctx, int64(7), 2).Return(nil)

	n, err := tr.Sync(ctx)
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if n != 2 || ledger.Available() != 2 {
		t.Fatalf("moved %d minutes, ledger %d", n, ledger.Available())
	}
}

func TestSyncWithoutMinutesSkipsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepository(ctrl)

	m := testutil.NewTimer().Ticked(59).Build()
	tr := New(m, points.NewLedger(0, 0), repo, nil)
	tr.SetActiveProject(1)

	repo.EXPECT().AddTime(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	if n, err := tr.Sync(context.Background()); err != nil || n != 0 {
		t.Fatalf("Sync = %d, %v", n, err)
	}
}

func TestSyncWithoutActiveProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepository(ctrl)

	m := testutil.NewTimer().Ticked(60).Build()
	ledger := points.NewLedger(3, 1)
	tr := New(m, ledger, repo, nil)

	repo.EXPECT().AddTime(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	if n, err := tr.Sync(context.Background()); err != nil || n != 1 {
		t.Fatalf("Sync = %d, %v", n, err)
	}
	if total, available := ledger.Points(); total != 4 || available != 2 {
		t.Fatalf("ledger = %d/%d", total, available)
	}
}

func TestSyncRepositoryErrorKeepsPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepository(ctrl)
	boom := errors.New("disk full")

	m := testutil.NewTimer().Ticked(120).Build()
	ledger := points.NewLedger(0, 0)
	tr := New(m, ledger, repo, nil)
	tr.SetActiveProject(9)

	repo.EXPECT().AddTime(gomock.Any(), int64(9), 2).Return(boom)
	n, err := tr.Sync(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if n != 2 || ledger.Total() != 2 {
		t.Fatalf("points must be credited before the project write: n=%d total=%d", n, ledger.Total())
	}
	if m.ProductiveMinutes() != 0 {
		t.Fatalf("minutes must be drained")
	}
}
