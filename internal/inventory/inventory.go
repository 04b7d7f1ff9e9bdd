// Package inventory adapts the document store to typed inventory
// records. ApplyDelta enforces the stock floor but does not serialize
// concurrent callers; check-then-write atomicity comes from the stock
// ledger, which all sale and purchase paths go through.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/deekxa/tillpoint/domain"
	"github.com/deekxa/tillpoint/internal/store"
)

// Store exposes inventory records kept in the inventory collection.
type Store struct {
	docs store.Documents
}

// New wraps a document store.
func New(docs store.Documents) *Store {
	return &Store{docs: docs}
}

// Get returns one item by id.
func (s *Store) Get(ctx context.Context, id string) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := store.GetInto(ctx, s.docs, store.CollectionInventory, id, &item); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

// List returns all items ordered by id.
func (s *Store) List(ctx context.Context) ([]domain.InventoryItem, error) {
	raw, err := s.docs.List(ctx, store.CollectionInventory)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(raw))
	for id, doc := range raw {
		var item domain.InventoryItem
		if err := json.Unmarshal(doc, &item); err != nil {
			return nil, fmt.Errorf("decode inventory %s: %w", id, err)
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// LowStock returns the items at or below their reorder level.
func (s *Store) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	low := items[:0]
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// Put validates and writes an item.
func (s *Store) Put(ctx context.Context, item domain.InventoryItem) error {
	if item.ID == "" {
		return &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	if item.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if item.StockQuantity < 0 {
		return &domain.ValidationError{Field: "stock_quantity", Reason: "must not be negative"}
	}
	if item.UnitPrice < 0 {
		return &domain.ValidationError{Field: "unit_price", Reason: "must not be negative"}
	}
	if item.ReorderLevel < 0 {
		return &domain.ValidationError{Field: "reorder_level", Reason: "must not be negative"}
	}
	return s.docs.Put(ctx, store.CollectionInventory, item.ID, item)
}

// Delete removes an item.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, store.CollectionInventory, id)
}

// ApplyDelta adjusts an item's stock by delta and returns the updated
// record. A delta that would drive stock negative is rejected without
// mutating, never clamped.
func (s *Store) ApplyDelta(ctx context.Context, id string, delta float64) (domain.InventoryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, err
	}

	next := item.StockQuantity + delta
	if next < 0 {
		return domain.InventoryItem{}, &domain.InsufficientStockError{
			ItemID:    id,
			Requested: -delta,
			Available: item.StockQuantity,
		}
	}

	item.StockQuantity = next
	if err := s.docs.Put(ctx, store.CollectionInventory, id, item); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}
