// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testReport(id int64, progress api.Progress) api.Report {
	return api.Report{
		ID:          id,
		ReportID:    "RPT-" + string(rune('0'+id)),
		Type:        "road_damage",
		Progress:    progress,
		Description: "pothole",
		CreatedAt:   time.Date(2026, 8, int(id), 10, 0, 0, 0, time.UTC),
	}
}

// Test a simple put/get round trip through the JSON payload column.
func TestStore_PutGet(t *testing.T) {
	store := openTestStore(t)
	want := testReport(1, api.ProgressPending)
	require.NoError(t, store.Put(want))

	got, ok, err := store.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.ReportID, got.ReportID)
	assert.Equal(t, want.Progress, got.Progress)
	assert.Equal(t, want.Description, got.Description)
}

// Test that Get on a missing id reports absence, not an error.
func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)
	_, ok, err := store.Get(42)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Test the upsert path: a second Put with the same id replaces the row.
// This is what keeps the list and detail views from drifting apart.
func TestStore_PutUpserts(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Put(testReport(1, api.ProgressPending)))

	updated := testReport(1, api.ProgressAssigned)
	require.NoError(t, store.Put(updated))

	got, ok, err := store.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, api.ProgressAssigned, got.Progress)

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not duplicate rows")
}

// Test PutAll plus newest-first ordering of All.
func TestStore_PutAllOrdering(t *testing.T) {
	store := openTestStore(t)
	reports := []api.Report{
		testReport(1, api.ProgressPending),
		testReport(3, api.ProgressResolved),
		testReport(2, api.ProgressInReview),
	}
	require.NoError(t, store.PutAll(reports))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, int64(1), all[2].ID)
}

// Test LastSynced transitions from zero to a recent stamp.
func TestStore_LastSynced(t *testing.T) {
	store := openTestStore(t)

	stamp, err := store.LastSynced()
	require.NoError(t, err)
	assert.True(t, stamp.IsZero(), "empty cache has no sync stamp")

	require.NoError(t, store.Put(testReport(1, api.ProgressPending)))
	stamp, err = store.LastSynced()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), stamp, time.Minute)
}

// Test Clear empties everything (logout).
func TestStore_Clear(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.PutAll([]api.Report{
		testReport(1, api.ProgressPending),
		testReport(2, api.ProgressPending),
	}))

	require.NoError(t, store.Clear())

	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	stamp, err := store.LastSynced()
	require.NoError(t, err)
	assert.True(t, stamp.IsZero())
}
