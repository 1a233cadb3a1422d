// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	s := testStore(t)

	e, err := s.Record(context.Background(), Entry{
		Topic: "irigasi", Mode: "catalog", SourcesQueried: 3, ResultCount: 7, TopScore: 4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestRecentNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, topic := range []string{"older", "middle", "newest"} {
		_, err := s.Record(ctx, Entry{
			Topic: topic, Mode: "catalog", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newest", entries[0].Topic)
	assert.Equal(t, "middle", entries[1].Topic)
}

func TestRecentEmptyStore(t *testing.T) {
	s := testStore(t)

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	s1, err := NewStore(dir)
	require.NoError(t, err)
	_, err = s1.Record(context.Background(), Entry{Topic: "irigasi", Mode: "explicit"})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := NewStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "irigasi", entries[0].Topic)
}
