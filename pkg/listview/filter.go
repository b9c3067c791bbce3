// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package listview holds the pure presentation bookkeeping shared by the
dashboards: client-side list filtering, pagination window computation, and
display labels for the status and category enums.

Everything here is a pure function of its inputs (no network, no clocks
beyond the timestamps passed in) so the dashboards can recompute on every
render without side effects.
*/
package listview

import (
	"time"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Filter is the citizen track-view filter set. Zero values mean "no
// constraint" for that dimension.
type Filter struct {
	// DateFrom keeps reports created at or after the start of this
	// calendar day (local time).
	DateFrom time.Time

	// DateTo keeps reports created at or before the END of this calendar
	// day. The inclusive upper bound matters: a midnight cutoff would
	// silently drop every report filed on the chosen day.
	DateTo time.Time

	// Category matches Report.Type exactly when non-empty.
	Category string

	// Status matches Report.Progress exactly when non-empty.
	Status api.Progress
}

// IsZero reports whether no constraint is set.
func (f Filter) IsZero() bool {
	return f.DateFrom.IsZero() && f.DateTo.IsZero() && f.Category == "" && f.Status == ""
}

// Matches applies the filter to one report as an AND of the independent
// predicates.
func (f Filter) Matches(r api.Report) bool {
	if !f.DateFrom.IsZero() {
		from := startOfDay(f.DateFrom)
		if r.CreatedAt.Before(from) {
			return false
		}
	}
	if !f.DateTo.IsZero() {
		// Inclusive through end of day: compare against the next
		// midnight with a strict less-than.
		until := startOfDay(f.DateTo).AddDate(0, 0, 1)
		if !r.CreatedAt.Before(until) {
			return false
		}
	}
	if f.Category != "" && r.Type != f.Category {
		return false
	}
	if f.Status != "" && r.Progress != f.Status {
		return false
	}
	return true
}

// Apply returns the visible subset of reports, order preserved.
//
// The source slice is never mutated; an empty filter returns the input
// unchanged (identity, not a copy).
func Apply(reports []api.Report, f Filter) []api.Report {
	if f.IsZero() {
		return reports
	}
	visible := make([]api.Report, 0, len(reports))
	for _, r := range reports {
		if f.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
