// Package catalog manages the sellable product records.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/deekxa/tillpoint/domain"
	"github.com/deekxa/tillpoint/internal/store"
)

// Store exposes product records kept in the products collection.
type Store struct {
	docs store.Documents
}

// New wraps a document store.
func New(docs store.Documents) *Store {
	return &Store{docs: docs}
}

// Get returns one product by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	if err := store.GetInto(ctx, s.docs, store.CollectionProducts, id, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// List returns all products ordered by id.
func (s *Store) List(ctx context.Context) ([]domain.Product, error) {
	raw, err := s.docs.List(ctx, store.CollectionProducts)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(raw))
	for id, doc := range raw {
		var p domain.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", id, err)
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Put validates and writes a product.
func (s *Store) Put(ctx context.Context, p domain.Product) error {
	if p.ID == "" {
		return &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	if p.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if p.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if p.Cost < 0 {
		return &domain.ValidationError{Field: "cost", Reason: "must not be negative"}
	}
	for i, ing := range p.Ingredients {
		if ing.ItemID == "" {
			return &domain.ValidationError{
				Field:  fmt.Sprintf("ingredients[%d].item_id", i),
				Reason: "is required",
			}
		}
		if ing.Quantity <= 0 {
			return &domain.ValidationError{
				Field:  fmt.Sprintf("ingredients[%d].quantity", i),
				Reason: "must be positive",
			}
		}
	}
	return s.docs.Put(ctx, store.CollectionProducts, p.ID, p)
}

// Delete removes a product.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, store.CollectionProducts, id)
}
