// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package rollup computes the mayor's aggregate statistics: time-windowed
report and feedback counts, plus two global (non-windowed) pending
queues.

# Problem Statement

The backend exposes no aggregation endpoint. The numbers on the executive
dashboard therefore have to be computed client-side by walking the
filtered collections page by page and counting. The walk is bounded (see
api.Pager) so a misbehaving backend cannot trap the client in an endless
loop; hitting the bound marks the result truncated instead of failing it.

# Failure Policy

The first failed request ends the load cycle. Whatever was already
counted is returned alongside the error so the caller can keep previously
rendered numbers on screen with an error banner. Partial results are
still useful, and the error is never hidden.
*/
package rollup

import (
	"context"
	"time"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Range selects the statistics time window.
type Range string

const (
	RangeDay   Range = "day"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// ParseRange maps user input to a Range, defaulting to week.
func ParseRange(s string) Range {
	switch Range(s) {
	case RangeDay, RangeWeek, RangeMonth, RangeYear:
		return Range(s)
	default:
		return RangeWeek
	}
}

// CutoffFrom translates the range to a date_from value (YYYY-MM-DD),
// counting back from now: 1, 7, 30, or 365 days.
func (r Range) CutoffFrom(now time.Time) string {
	days := 7
	switch r {
	case RangeDay:
		days = 1
	case RangeWeek:
		days = 7
	case RangeMonth:
		days = 30
	case RangeYear:
		days = 365
	}
	return now.AddDate(0, 0, -days).Format("2006-01-02")
}

// Source is the slice of the API client the rollup consumes. *api.Client
// satisfies it; tests substitute fakes.
type Source interface {
	Reports(ctx context.Context, q api.ReportQuery) (api.Page[api.Report], error)
	FeedbackList(ctx context.Context, q api.FeedbackQuery) (api.Page[api.Feedback], error)
	Users(ctx context.Context, status string) ([]api.User, error)
	UpdateRequests(ctx context.Context, status string) ([]api.UpdateRequest, error)
}

var _ Source = (*api.Client)(nil)

// Result holds the computed aggregates. Counts are plain non-negative
// integers; a bucket no row matched is 0, never absent.
type Result struct {
	Range    Range
	DateFrom string

	// Report counts within the window. Open folds pending and in_review
	// together, matching how the dashboard presents "not yet worked on".
	TotalReports int
	Open         int
	Assigned     int
	Resolved     int
	Rejected     int

	// ByCategory counts reports per backend category token. The key set
	// is open: whatever tokens the backend uses appear here, known or not.
	ByCategory map[string]int

	// TotalFeedback is the windowed feedback count.
	TotalFeedback int

	// PendingUsers and PendingUpdateRequests are global queues, NOT
	// time-windowed.
	PendingUsers          int
	PendingUpdateRequests int

	// Truncated is set when a collection walk hit the page ceiling; the
	// windowed counts are then a floor, not an exact total.
	Truncated bool
}

// Compute runs the full rollup.
//
// On error the partially filled Result is returned with it; see the
// package comment for the failure policy.
func Compute(ctx context.Context, src Source, rng Range, now time.Time) (Result, error) {
	result := Result{
		Range:      rng,
		DateFrom:   rng.CutoffFrom(now),
		ByCategory: make(map[string]int),
	}

	reportPager := api.NewPager[api.Report](api.DefaultPerPage, api.DefaultMaxPages)
	truncated, err := reportPager.Each(ctx,
		func(ctx context.Context, page, perPage int) (api.Page[api.Report], error) {
			return src.Reports(ctx, api.ReportQuery{
				DateFrom: result.DateFrom,
				Page:     page,
				PerPage:  perPage,
			})
		},
		func(r api.Report) {
			result.TotalReports++
			result.ByCategory[r.Type]++
			switch r.Progress {
			case api.ProgressPending, api.ProgressInReview:
				result.Open++
			case api.ProgressAssigned:
				result.Assigned++
			case api.ProgressResolved:
				result.Resolved++
			case api.ProgressRejected:
				result.Rejected++
			}
		})
	if err != nil {
		return result, err
	}
	result.Truncated = truncated

	feedbackPager := api.NewPager[api.Feedback](api.DefaultPerPage, api.DefaultMaxPages)
	truncated, err = feedbackPager.Each(ctx,
		func(ctx context.Context, page, perPage int) (api.Page[api.Feedback], error) {
			return src.FeedbackList(ctx, api.FeedbackQuery{
				DateFrom: result.DateFrom,
				Page:     page,
				PerPage:  perPage,
			})
		},
		func(api.Feedback) { result.TotalFeedback++ })
	if err != nil {
		return result, err
	}
	result.Truncated = result.Truncated || truncated

	pendingUsers, err := src.Users(ctx, "pending")
	if err != nil {
		return result, err
	}
	result.PendingUsers = len(pendingUsers)

	pendingRequests, err := src.UpdateRequests(ctx, "pending")
	if err != nil {
		return result, err
	}
	result.PendingUpdateRequests = len(pendingRequests)

	return result, nil
}
