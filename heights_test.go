package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *heightStore {
	t.Helper()
	db, err := openDatabase("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := newHeightStore(db)
	require.NoError(t, err)
	return store
}

func TestHeightStoreIsMonotonic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var applied []bool
	for _, h := range []float64{40, 25, 60, 10} {
		_, ok, err := store.report(ctx, "s1", "target", h)
		require.NoError(t, err)
		applied = append(applied, ok)
	}
	assert.Equal(t, []bool{true, false, true, false}, applied)

	heights, err := store.load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 60, heights["target"])
}

func TestHeightStoreSessionsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.report(ctx, "s1", "target", 120)
	require.NoError(t, err)
	_, _, err = store.report(ctx, "s2", "target", 30.5)
	require.NoError(t, err)

	s1, err := store.load(ctx, "s1")
	require.NoError(t, err)
	s2, err := store.load(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 120, s1["target"])
	assert.Equal(t, 31, s2["target"])

	empty, err := store.load(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHeightStoreCleanup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return start }
	_, _, err := store.report(ctx, "stale", "target", 50)
	require.NoError(t, err)
	_, _, err = store.report(ctx, "stale", "wgu", 70)
	require.NoError(t, err)

	store.now = func() time.Time { return start.Add(47 * time.Hour) }
	_, _, err = store.report(ctx, "fresh", "target", 80)
	require.NoError(t, err)

	store.now = func() time.Time { return start.Add(48 * time.Hour) }
	deleted, err := store.cleanup(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	stale, err := store.load(ctx, "stale")
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := store.load(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 80, fresh["target"])
}

func TestHeightStoreReportsKeepSessionAlive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return start }
	_, _, err := store.report(ctx, "active", "target", 50)
	require.NoError(t, err)

	// smaller report: height kept, session still refreshed
	store.now = func() time.Time { return start.Add(47 * time.Hour) }
	_, applied, err := store.report(ctx, "active", "target", 10)
	require.NoError(t, err)
	assert.False(t, applied)

	store.now = func() time.Time { return start.Add(48 * time.Hour) }
	deleted, err := store.cleanup(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	heights, err := store.load(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, 50, heights["target"])
}
