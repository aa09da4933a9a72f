package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/refmark/refmark/internal/bib"
)

// ErrNotFound is returned when no entry exists for the requested ID.
var ErrNotFound = errors.New("entry not found")

// PutEntry inserts or replaces an entry. The entry must carry an ID and
// a type; everything else is optional per the record model.
func (s *Store) PutEntry(ctx context.Context, e bib.Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry requires an id")
	}
	if e.Type == "" {
		return fmt.Errorf("entry %q requires a type", e.ID)
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry %q: %w", e.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, type, payload) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET type = excluded.type, payload = excluded.payload
	`, e.ID, e.Type, string(payload))
	if err != nil {
		return fmt.Errorf("put entry %q: %w", e.ID, err)
	}
	return nil
}

// GetEntry returns the entry with the given ID, or ErrNotFound.
func (s *Store) GetEntry(ctx context.Context, id string) (bib.Entry, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM entries WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return bib.Entry{}, fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return bib.Entry{}, fmt.Errorf("get entry %q: %w", id, err)
	}

	var e bib.Entry
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return bib.Entry{}, fmt.Errorf("unmarshal entry %q: %w", id, err)
	}
	return e, nil
}

// ListEntries returns all entries ordered by ID for deterministic
// output. Returns an empty slice (not nil) when the store is empty.
func (s *Store) ListEntries(ctx context.Context) ([]bib.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM entries ORDER BY id COLLATE BINARY ASC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []bib.Entry{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		var e bib.Entry
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, fmt.Errorf("unmarshal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
