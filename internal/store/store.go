// Package store provides the keyed JSON document repository the rest
// of the application persists through. Callers see collections of
// documents addressed by id and nothing about the storage technology;
// Put is durable before it returns.
package store

import (
	"context"
	"encoding/json"

	"github.com/deekxa/tillpoint/domain"
)

// Collections used by the application.
const (
	CollectionInventory = "inventory"
	CollectionProducts  = "products"
	CollectionBills     = "bills"
	CollectionPurchases = "purchases"
	CollectionCounters  = "counters"
)

// Documents is a keyed JSON document repository.
type Documents interface {
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	List(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	Put(ctx context.Context, collection, id string, doc any) error
	Delete(ctx context.Context, collection, id string) error
}

// GetInto fetches a document and unmarshals it into dest.
func GetInto(ctx context.Context, docs Documents, collection, id string, dest any) error {
	raw, err := docs.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// notFound is the shared miss error for implementations.
func notFound(collection, id string) error {
	return &domain.NotFoundError{Collection: collection, ID: id}
}
