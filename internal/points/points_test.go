package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/prodgarden/internal/timer"
)

type fixedSource struct{ minutes int }

func (s *fixedSource) DrainProductiveMinutes() int {
	n := s.minutes
	s.minutes = 0
	return n
}

func TestLedgerAddSpend(t *testing.T) {
	l := NewLedger(0, 0)
	require.NoError(t, l.Add(10))
	require.NoError(t, l.Spend(4))
	total, available := l.Points()
	assert.Equal(t, 10, total)
	assert.Equal(t, 6, available)

	err := l.Spend(7)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, 6, l.Available())

	assert.ErrorIs(t, l.Add(-1), ErrNegativeAmount)
	assert.ErrorIs(t, l.Spend(-1), ErrNegativeAmount)
}

func TestLedgerRefund(t *testing.T) {
	l := NewLedger(10, 10)
	require.NoError(t, l.Spend(4))
	require.NoError(t, l.Refund(4))
	total, available := l.Points()
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, available)
	assert.ErrorIs(t, l.Refund(-1), ErrNegativeAmount)
}

func TestLedgerRemoveClamps(t *testing.T) {
	l := NewLedger(5, 3)
	require.NoError(t, l.Remove(4))
	assert.Equal(t, 1, l.Total())
	assert.Equal(t, 0, l.Available())

	l.Set(-2, -3)
	total, available := l.Points()
	assert.Zero(t, total)
	assert.Zero(t, available)
}

func TestLedgerSync(t *testing.T) {
	l := NewLedger(1, 1)
	src := &fixedSource{minutes: 3}
	assert.Equal(t, 3, l.Sync(src))
	assert.Equal(t, 0, l.Sync(src))
	assert.Equal(t, 4, l.Total())
	assert.Equal(t, 4, l.Available())
}

func TestLedgerSyncFromTimer(t *testing.T) {
	m := timer.New(timer.DefaultSettings())
	m.StartStopwatch()
	for i := 0; i < 150; i++ {
		m.Tick()
	}
	l := NewLedger(0, 0)
	assert.Equal(t, 2, l.Sync(m))
	assert.Equal(t, 2, l.Available())
	assert.Zero(t, m.ProductiveMinutes())
}
