package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refmark/refmark/internal/bib"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "refs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, s2.Close())
}

func TestPutGetEntry_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	entry := bib.Entry{
		ID:      "smith2001",
		Type:    bib.TypeBook,
		Authors: []bib.Name{{Family: "Smith", Given: "Anne"}},
		Title:   "A Book",
		Issued:  &bib.Date{Year: 2001},
	}
	require.NoError(t, s.PutEntry(ctx, entry))

	got, err := s.GetEntry(ctx, "smith2001")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestPutEntry_UpsertsByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutEntry(ctx, bib.Entry{ID: "x", Type: bib.TypeBook, Title: "First"}))
	require.NoError(t, s.PutEntry(ctx, bib.Entry{ID: "x", Type: bib.TypeReport, Title: "Second"}))

	got, err := s.GetEntry(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
	assert.Equal(t, bib.TypeReport, got.Type)
}

func TestPutEntry_RequiresIDAndType(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	assert.Error(t, s.PutEntry(ctx, bib.Entry{Type: bib.TypeBook}))
	assert.Error(t, s.PutEntry(ctx, bib.Entry{ID: "x"}))
}

func TestGetEntry_NotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.GetEntry(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEntries_OrderedByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutEntry(ctx, bib.Entry{ID: "b", Type: bib.TypeBook}))
	require.NoError(t, s.PutEntry(ctx, bib.Entry{ID: "a", Type: bib.TypeBook}))
	require.NoError(t, s.PutEntry(ctx, bib.Entry{ID: "c", Type: bib.TypeBook}))

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestListEntries_EmptyStore(t *testing.T) {
	s := testStore(t)
	entries, err := s.ListEntries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
