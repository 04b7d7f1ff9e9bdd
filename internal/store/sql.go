package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQL keeps documents in a single table, one row per (collection, id).
// It works against SQLite and PostgreSQL; queries are written with ?
// placeholders and rebound for the active driver.
type SQL struct {
	db *sqlx.DB
}

// NewSQL wraps an open database handle.
func NewSQL(db *sqlx.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var doc []byte
	query := s.db.Rebind(`SELECT doc FROM documents WHERE collection = ? AND id = ?`)
	err := s.db.GetContext(ctx, &doc, query, collection, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *SQL) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	var rows []struct {
		ID  string `db:"id"`
		Doc []byte `db:"doc"`
	}
	query := s.db.Rebind(`SELECT id, doc FROM documents WHERE collection = ? ORDER BY id`)
	if err := s.db.SelectContext(ctx, &rows, query, collection); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	out := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Doc
	}
	return out, nil
}

func (s *SQL) Put(ctx context.Context, collection, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	query := s.db.Rebind(`INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)
        ON CONFLICT (collection, id) DO UPDATE SET doc = excluded.doc`)
	if _, err := s.db.ExecContext(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, collection, id string) error {
	query := s.db.Rebind(`DELETE FROM documents WHERE collection = ? AND id = ?`)
	res, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if affected == 0 {
		return notFound(collection, id)
	}
	return nil
}
