// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

func day(d int, hour, minute int) time.Time {
	return time.Date(2026, 8, d, hour, minute, 0, 0, time.Local)
}

func sampleReports() []api.Report {
	return []api.Report{
		{ID: 1, Type: "road_damage", Progress: api.ProgressPending, CreatedAt: day(10, 9, 0)},
		{ID: 2, Type: "flooding", Progress: api.ProgressResolved, CreatedAt: day(12, 14, 30)},
		{ID: 3, Type: "road_damage", Progress: api.ProgressAssigned, CreatedAt: day(15, 23, 59)},
		{ID: 4, Type: "garbage", Progress: api.ProgressPending, CreatedAt: day(16, 0, 0)},
	}
}

// Test that an empty filter is the identity, not a copy.
func TestApply_EmptyFilterIdentity(t *testing.T) {
	reports := sampleReports()
	got := Apply(reports, Filter{})
	assert.Equal(t, &reports[0], &got[0], "empty filter must return the input slice itself")
}

// Test that the result is a subset in original order.
func TestApply_SubsetPreservesOrder(t *testing.T) {
	got := Apply(sampleReports(), Filter{Category: "road_damage"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

// Test that Apply never mutates its input.
func TestApply_NoMutation(t *testing.T) {
	reports := sampleReports()
	Apply(reports, Filter{Status: api.ProgressPending})
	assert.Equal(t, sampleReports(), reports)
}

// Test predicates combine as an AND.
func TestApply_PredicatesAnd(t *testing.T) {
	got := Apply(sampleReports(), Filter{Category: "road_damage", Status: api.ProgressAssigned})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

// Test the inclusive end-of-day upper bound: a report filed at 23:59 on
// the DateTo day is in, one at midnight the next day is out.
func TestFilter_DateToEndOfDay(t *testing.T) {
	filter := Filter{DateTo: day(15, 0, 0)}

	in := api.Report{CreatedAt: day(15, 23, 59)}
	out := api.Report{CreatedAt: day(16, 0, 0)}

	assert.True(t, filter.Matches(in), "23:59 on the boundary day must match")
	assert.False(t, filter.Matches(out), "midnight of the next day must not match")
}

// Test that DateFrom truncates to the start of its day.
func TestFilter_DateFromStartOfDay(t *testing.T) {
	// The filter value carries a mid-day timestamp; reports from earlier
	// that same day must still match.
	filter := Filter{DateFrom: day(12, 18, 0)}

	assert.True(t, filter.Matches(api.Report{CreatedAt: day(12, 0, 0)}))
	assert.False(t, filter.Matches(api.Report{CreatedAt: day(11, 23, 59)}))
}

// Test a full date range spanning the sample data.
func TestApply_DateRange(t *testing.T) {
	got := Apply(sampleReports(), Filter{DateFrom: day(12, 0, 0), DateTo: day(15, 0, 0)})
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

// Test IsZero.
func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Category: "flooding"}.IsZero())
	assert.False(t, Filter{DateFrom: day(1, 0, 0)}.IsZero())
}
