// Package ledger serializes every stock mutation. Each inventory item
// gets one critical section around its check-then-write; multi-item
// consumption locks items in sorted id order and applies all deltas or
// none, so concurrent checkouts over shared items cannot jointly
// oversell.
package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/deekxa/tillpoint/domain"
	"github.com/deekxa/tillpoint/internal/inventory"
)

// Consumption is the stock delta one sale requires from one item.
type Consumption struct {
	ItemID   string
	Quantity float64
}

// Ledger performs atomic stock mutations against the inventory store.
type Ledger struct {
	inv *inventory.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wraps an inventory store.
func New(inv *inventory.Store) *Ledger {
	return &Ledger{inv: inv, locks: make(map[string]*sync.Mutex)}
}

// itemLock returns the mutex guarding one item, creating it on first
// use. Lock instances are never removed; the set of items is small.
func (l *Ledger) itemLock(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// DecrementForSale removes qty from one item's stock. It fails with
// InsufficientStockError, leaving the stock untouched, when qty exceeds
// what is available.
func (l *Ledger) DecrementForSale(ctx context.Context, itemID string, qty float64) error {
	if qty <= 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	m := l.itemLock(itemID)
	m.Lock()
	defer m.Unlock()

	_, err := l.inv.ApplyDelta(ctx, itemID, -qty)
	return err
}

// IncrementForReceipt adds received stock to one item. Zero is allowed;
// negative quantities are rejected.
func (l *Ledger) IncrementForReceipt(ctx context.Context, itemID string, qty float64) error {
	if qty < 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}

	m := l.itemLock(itemID)
	m.Lock()
	defer m.Unlock()

	_, err := l.inv.ApplyDelta(ctx, itemID, qty)
	return err
}

// ConsumeForSale applies every consumption or none. Duplicate item ids
// are merged before checking, so a cart cannot pass by drawing the same
// stock twice.
func (l *Ledger) ConsumeForSale(ctx context.Context, consumptions []Consumption) error {
	merged := merge(consumptions)
	if len(merged) == 0 {
		return nil
	}

	for _, c := range merged {
		if c.Quantity <= 0 {
			return &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
		}
	}

	// Sorted lock order keeps two overlapping sales from deadlocking.
	for _, c := range merged {
		l.itemLock(c.ItemID).Lock()
	}
	defer func() {
		for _, c := range merged {
			l.itemLock(c.ItemID).Unlock()
		}
	}()

	applied := make([]Consumption, 0, len(merged))
	for _, c := range merged {
		if _, err := l.inv.ApplyDelta(ctx, c.ItemID, -c.Quantity); err != nil {
			for _, undo := range applied {
				l.inv.ApplyDelta(ctx, undo.ItemID, undo.Quantity)
			}
			return err
		}
		applied = append(applied, c)
	}
	return nil
}

// Restore re-adds previously consumed stock. Used when the bill write
// that followed a consumption fails.
func (l *Ledger) Restore(ctx context.Context, consumptions []Consumption) error {
	for _, c := range merge(consumptions) {
		m := l.itemLock(c.ItemID)
		m.Lock()
		_, err := l.inv.ApplyDelta(ctx, c.ItemID, c.Quantity)
		m.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// merge sums duplicate item ids and returns the result sorted by id.
func merge(consumptions []Consumption) []Consumption {
	byID := make(map[string]float64, len(consumptions))
	for _, c := range consumptions {
		byID[c.ItemID] += c.Quantity
	}

	merged := make([]Consumption, 0, len(byID))
	for id, qty := range byID {
		merged = append(merged, Consumption{ItemID: id, Quantity: qty})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ItemID < merged[j].ItemID })
	return merged
}
