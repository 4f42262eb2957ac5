// Package points keeps the productivity points earned from tracked time and
// spent in the garden.
package points

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNegativeAmount     = errors.New("amount must not be negative")
)

// MinuteSource hands out productive minutes exactly once.
type MinuteSource interface {
	DrainProductiveMinutes() int
}

// Ledger tracks lifetime and spendable points. Not safe for concurrent use.
type Ledger struct {
	total     int
	available int
}

func NewLedger(total, available int) *Ledger {
	l := &Ledger{}
	l.Set(total, available)
	return l
}

// Points returns (total, available).
func (l *Ledger) Points() (total, available int) {
	return l.total, l.available
}

func (l *Ledger) Total() int     { return l.total }
func (l *Ledger) Available() int { return l.available }

// Set replaces both balances, clamping negatives to zero.
func (l *Ledger) Set(total, available int) {
	l.total = max(total, 0)
	l.available = max(available, 0)
}

// Add credits n points to both balances.
func (l *Ledger) Add(n int) error {
	if n < 0 {
		return ErrNegativeAmount
	}
	l.total += n
	l.available += n
	return nil
}

// Spend debits the available balance only.
func (l *Ledger) Spend(n int) error {
	if n < 0 {
		return ErrNegativeAmount
	}
	if n > l.available {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientPoints, n, l.available)
	}
	l.available -= n
	return nil
}

// Refund returns n previously spent points to the available balance.
func (l *Ledger) Refund(n int) error {
	if n < 0 {
		return ErrNegativeAmount
	}
	l.available += n
	return nil
}

// Remove takes n points off both balances, stopping at zero.
func (l *Ledger) Remove(n int) error {
	if n < 0 {
		return ErrNegativeAmount
	}
	l.total = max(l.total-n, 0)
	l.available = max(l.available-n, 0)
	return nil
}

// Sync credits one point per drained productive minute and returns the
// number of minutes credited.
func (l *Ledger) Sync(src MinuteSource) int {
	n := src.DrainProductiveMinutes()
	if n > 0 {
		l.total += n
		l.available += n
	}
	return n
}
