package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

func TestMemory_InsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	doc := testDoc{ID: "a1", Title: "first", Category: "web", Featured: true}
	require.NoError(t, s.Insert(ctx, "portfolio", doc.ID, time.Now(), doc))

	data, err := s.FindOne(ctx, "portfolio", Filter{"id": "a1"})
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}

func TestMemory_InsertDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Insert(ctx, "portfolio", "a1", time.Now(), testDoc{ID: "a1"}))
	err := s.Insert(ctx, "portfolio", "a1", time.Now(), testDoc{ID: "a1"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemory_FindOneMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.FindOne(ctx, "portfolio", Filter{"id": "nope"})
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestMemory_FindFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	docs := []testDoc{
		{ID: "a", Title: "oldest", Category: "web", Featured: true},
		{ID: "b", Title: "middle", Category: "print", Featured: false},
		{ID: "c", Title: "newest", Category: "web", Featured: false},
	}
	for i, d := range docs {
		require.NoError(t, s.Insert(ctx, "portfolio", d.ID, base.Add(time.Duration(i)*time.Hour), d))
	}

	out, err := s.Find(ctx, "portfolio", Filter{"category": "web"}, FindOptions{SortByCreatedAtDesc: true})
	require.NoError(t, err)
	require.Len(t, out, 2)

	var first, second testDoc
	require.NoError(t, json.Unmarshal(out[0], &first))
	require.NoError(t, json.Unmarshal(out[1], &second))
	assert.Equal(t, "newest", first.Title)
	assert.Equal(t, "oldest", second.Title)
}

func TestMemory_FindBoolFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Insert(ctx, "portfolio", "a", time.Now(), testDoc{ID: "a", Featured: true}))
	require.NoError(t, s.Insert(ctx, "portfolio", "b", time.Now(), testDoc{ID: "b", Featured: false}))

	out, err := s.Find(ctx, "portfolio", Filter{"featured": true}, FindOptions{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	var got testDoc
	require.NoError(t, json.Unmarshal(out[0], &got))
	assert.Equal(t, "a", got.ID)
}

func TestMemory_FindNoMatchReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Insert(ctx, "portfolio", "a", time.Now(), testDoc{ID: "a", Category: "web"}))

	out, err := s.Find(ctx, "portfolio", Filter{"category": "none"}, FindOptions{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMemory_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Insert(ctx, "portfolio", "a", time.Now(),
		testDoc{ID: "a", Title: "before", Category: "web"}))

	require.NoError(t, s.Update(ctx, "portfolio", "a", map[string]any{"title": "after"}))

	data, err := s.FindOne(ctx, "portfolio", Filter{"id": "a"})
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "web", got.Category, "untouched field must survive a merge")
}

func TestMemory_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	err := s.Update(ctx, "portfolio", "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestMemory_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	assert.ErrorIs(t, s.Delete(ctx, "portfolio", "missing"), ErrNoDocuments)
}

func TestMemory_Count(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Insert(ctx, "inquiries", "a", time.Now(), map[string]any{"id": "a", "status": "new"}))
	require.NoError(t, s.Insert(ctx, "inquiries", "b", time.Now(), map[string]any{"id": "b", "status": "contacted"}))
	require.NoError(t, s.Insert(ctx, "inquiries", "c", time.Now(), map[string]any{"id": "c", "status": "new"}))

	total, err := s.Count(ctx, "inquiries", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	fresh, err := s.Count(ctx, "inquiries", Filter{"status": "new"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, fresh)
}
