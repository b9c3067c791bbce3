// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages builds a PageFetch serving fixed page sizes and counting calls.
func fakePages(sizes []int, calls *int) PageFetch[int] {
	return func(ctx context.Context, page, perPage int) (Page[int], error) {
		*calls++
		if page > len(sizes) {
			return Page[int]{}, nil
		}
		items := make([]int, sizes[page-1])
		return Page[int]{Items: items, Total: 237}, nil
	}
}

// Test that pages [100,100,37] cost exactly 3 requests.
func TestPager_StopsOnShortPage(t *testing.T) {
	calls := 0
	pager := NewPager[int](100, 50)

	visited := 0
	truncated, err := pager.Each(context.Background(), fakePages([]int{100, 100, 37}, &calls),
		func(int) { visited++ })

	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 237, visited)
}

// Test that an exact-multiple collection costs one extra (empty) page.
func TestPager_ExactMultiple(t *testing.T) {
	calls := 0
	pager := NewPager[int](100, 50)

	truncated, err := pager.Each(context.Background(), fakePages([]int{100, 100}, &calls), func(int) {})
	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, 3, calls)
}

// Test the hard ceiling: the walk stops and reports truncation.
func TestPager_Ceiling(t *testing.T) {
	calls := 0
	full := func(ctx context.Context, page, perPage int) (Page[int], error) {
		calls++
		return Page[int]{Items: make([]int, perPage)}, nil
	}
	pager := NewPager[int](100, 5)

	visited := 0
	truncated, err := pager.Each(context.Background(), full, func(int) { visited++ })
	require.NoError(t, err)
	assert.True(t, truncated)
	assert.Equal(t, 5, calls)
	assert.Equal(t, 500, visited)
}

// Test that a failing page aborts the walk but keeps earlier visits.
func TestPager_ErrorKeepsPartialVisits(t *testing.T) {
	fetch := func(ctx context.Context, page, perPage int) (Page[int], error) {
		if page == 2 {
			return Page[int]{}, fmt.Errorf("backend hiccup")
		}
		return Page[int]{Items: make([]int, perPage)}, nil
	}
	pager := NewPager[int](100, 50)

	visited := 0
	_, err := pager.Each(context.Background(), fetch, func(int) { visited++ })
	require.Error(t, err)
	assert.Equal(t, 100, visited)
}

// Test that cancellation surfaces as KindCancelled.
func TestPager_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pager := NewPager[int](100, 50)

	_, err := pager.Each(ctx, fakePages([]int{100}, new(int)), func(int) {})
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindCancelled, apiErr.Kind)
}

// Test that zero arguments fall back to the defaults.
func TestNewPager_Defaults(t *testing.T) {
	pager := NewPager[int](0, 0)
	assert.Equal(t, DefaultPerPage, pager.perPage)
	assert.Equal(t, DefaultMaxPages, pager.maxPages)
}
