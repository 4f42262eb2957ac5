// Package tracking moves productive minutes from the timer into the points
// ledger and the active project.
package tracking

import (
	"context"

	"github.com/akyairhashvil/prodgarden/internal/points"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

// TimeBooker records minutes against a project.
type TimeBooker interface {
	AddTime(ctx context.Context, id int64, minutes int) error
}

// Tracker is owned by the UI loop, like the timer it drains.
type Tracker struct {
	source  points.MinuteSource
	ledger  *points.Ledger
	booker  TimeBooker
	logger  util.Logger
	project int64
}

func New(source points.MinuteSource, ledger *points.Ledger, booker TimeBooker, logger util.Logger) *Tracker {
	if logger == nil {
		logger = util.NopLogger()
	}
	return &Tracker{source: source, ledger: ledger, booker: booker, logger: logger}
}

// SetActiveProject selects the project minutes are booked to; 0 clears it.
func (t *Tracker) SetActiveProject(id int64) {
	t.project = id
}

func (t *Tracker) ActiveProject() int64 { return t.project }

// Sync drains the source, credits the ledger and books the minutes to the
// active project. It returns the minutes moved. Points are credited even
// when the project write fails.
func (t *Tracker) Sync(ctx context.Context) (int, error) {
	minutes := t.ledger.Sync(t.source)
	if minutes == 0 {
		return 0, nil
	}
	t.logger.Debugf("credited %d productive minute(s)", minutes)
	if t.project == 0 || t.booker == nil {
		return minutes, nil
	}
	if err := t.booker.AddTime(ctx, t.project, minutes); err != nil {
		return minutes, err
	}
	return minutes, nil
}
