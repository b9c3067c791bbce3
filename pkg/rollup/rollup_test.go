// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rollup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// =============================================================================
// Mock Source
// =============================================================================

// mockSource serves canned pages and records the queries it saw.
type mockSource struct {
	reports  []api.Report
	feedback []api.Feedback
	users    []api.User
	requests []api.UpdateRequest

	reportQueries []api.ReportQuery

	reportsErr  error
	feedbackErr error
	usersErr    error
	requestsErr error
}

func (m *mockSource) Reports(ctx context.Context, q api.ReportQuery) (api.Page[api.Report], error) {
	m.reportQueries = append(m.reportQueries, q)
	if m.reportsErr != nil {
		return api.Page[api.Report]{}, m.reportsErr
	}
	return slicePage(m.reports, q.Page, q.PerPage), nil
}

func (m *mockSource) FeedbackList(ctx context.Context, q api.FeedbackQuery) (api.Page[api.Feedback], error) {
	if m.feedbackErr != nil {
		return api.Page[api.Feedback]{}, m.feedbackErr
	}
	return slicePage(m.feedback, q.Page, q.PerPage), nil
}

func (m *mockSource) Users(ctx context.Context, status string) ([]api.User, error) {
	return m.users, m.usersErr
}

func (m *mockSource) UpdateRequests(ctx context.Context, status string) ([]api.UpdateRequest, error) {
	return m.requests, m.requestsErr
}

func slicePage[T any](items []T, page, perPage int) api.Page[T] {
	start := (page - 1) * perPage
	if start >= len(items) {
		return api.Page[T]{Total: len(items)}
	}
	end := min(start+perPage, len(items))
	return api.Page[T]{Items: items[start:end], Total: len(items)}
}

func makeReports(progress api.Progress, category string, n int) []api.Report {
	reports := make([]api.Report, n)
	for i := range reports {
		reports[i] = api.Report{Progress: progress, Type: category}
	}
	return reports
}

var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Tests
// =============================================================================

// Test the range-to-cutoff translation.
func TestCutoffFrom(t *testing.T) {
	assert.Equal(t, "2026-08-31", RangeDay.CutoffFrom(fixedNow))
	assert.Equal(t, "2026-08-25", RangeWeek.CutoffFrom(fixedNow))
	assert.Equal(t, "2026-08-02", RangeMonth.CutoffFrom(fixedNow))
	assert.Equal(t, "2025-09-01", RangeYear.CutoffFrom(fixedNow))
}

// Test ParseRange defaults to week on anything unknown.
func TestParseRange(t *testing.T) {
	assert.Equal(t, RangeDay, ParseRange("day"))
	assert.Equal(t, RangeYear, ParseRange("year"))
	assert.Equal(t, RangeWeek, ParseRange(""))
	assert.Equal(t, RangeWeek, ParseRange("fortnight"))
}

// Test bucket math: open folds pending and in_review together.
func TestCompute_Buckets(t *testing.T) {
	src := &mockSource{}
	src.reports = append(src.reports, makeReports(api.ProgressPending, "road_damage", 3)...)
	src.reports = append(src.reports, makeReports(api.ProgressInReview, "flooding", 2)...)
	src.reports = append(src.reports, makeReports(api.ProgressAssigned, "flooding", 4)...)
	src.reports = append(src.reports, makeReports(api.ProgressResolved, "garbage", 5)...)
	src.reports = append(src.reports, makeReports(api.ProgressRejected, "garbage", 1)...)

	result, err := Compute(context.Background(), src, RangeWeek, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 15, result.TotalReports)
	assert.Equal(t, 5, result.Open)
	assert.Equal(t, 4, result.Assigned)
	assert.Equal(t, 5, result.Resolved)
	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, map[string]int{"road_damage": 3, "flooding": 6, "garbage": 6}, result.ByCategory)
	assert.False(t, result.Truncated)
}

// Test that the windowed walks carry the cutoff while the queues do not.
func TestCompute_WindowedQuery(t *testing.T) {
	src := &mockSource{}
	_, err := Compute(context.Background(), src, RangeMonth, fixedNow)
	require.NoError(t, err)

	require.NotEmpty(t, src.reportQueries)
	assert.Equal(t, "2026-08-02", src.reportQueries[0].DateFrom)
	assert.Equal(t, api.DefaultPerPage, src.reportQueries[0].PerPage)
}

// Test feedback and pending queue counts.
func TestCompute_FeedbackAndQueues(t *testing.T) {
	src := &mockSource{
		feedback: make([]api.Feedback, 7),
		users:    make([]api.User, 3),
		requests: make([]api.UpdateRequest, 2),
	}

	result, err := Compute(context.Background(), src, RangeWeek, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 7, result.TotalFeedback)
	assert.Equal(t, 3, result.PendingUsers)
	assert.Equal(t, 2, result.PendingUpdateRequests)
}

// Test the failure policy: first error ends the cycle and the partial
// result comes back with it.
func TestCompute_PartialOnLateFailure(t *testing.T) {
	src := &mockSource{
		reports:  makeReports(api.ProgressPending, "flooding", 10),
		feedback: make([]api.Feedback, 4),
		usersErr: fmt.Errorf("backend hiccup"),
	}

	result, err := Compute(context.Background(), src, RangeWeek, fixedNow)
	require.Error(t, err)

	// Everything counted before the failing request survives.
	assert.Equal(t, 10, result.TotalReports)
	assert.Equal(t, 4, result.TotalFeedback)
	assert.Zero(t, result.PendingUsers)
	assert.Zero(t, result.PendingUpdateRequests)
}

// Test that a failure on the first walk returns an empty-count result.
func TestCompute_ReportsFailureStopsEverything(t *testing.T) {
	src := &mockSource{
		reportsErr: fmt.Errorf("down"),
		feedback:   make([]api.Feedback, 9),
	}

	result, err := Compute(context.Background(), src, RangeWeek, fixedNow)
	require.Error(t, err)
	assert.Zero(t, result.TotalReports)
	assert.Zero(t, result.TotalFeedback, "later collections must not be fetched after a failure")
}

// Test pagination across multiple pages of reports.
func TestCompute_WalksAllPages(t *testing.T) {
	src := &mockSource{reports: makeReports(api.ProgressResolved, "garbage", 237)}

	result, err := Compute(context.Background(), src, RangeWeek, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 237, result.TotalReports)
	assert.Len(t, src.reportQueries, 3, "237 rows at 100/page must cost exactly 3 requests")
}

// Test empty collections produce zeroed buckets, not absent ones.
func TestCompute_EmptyWindow(t *testing.T) {
	result, err := Compute(context.Background(), &mockSource{}, RangeDay, fixedNow)
	require.NoError(t, err)
	assert.Zero(t, result.TotalReports)
	assert.NotNil(t, result.ByCategory)
	assert.Empty(t, result.ByCategory)
}
