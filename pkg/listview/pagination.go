// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package listview

// DefaultWindowSize is how many page buttons the paginator shows at once.
const DefaultWindowSize = 5

// Pagination is the derived pagination state for a server-side paginated
// list. Build it with Paginate; the fields are what the paginator widget
// renders.
type Pagination struct {
	// Page is the effective current page, clamped into [1, TotalPages].
	Page int

	// TotalPages is ceil(total/perPage), at least 1.
	TotalPages int

	// Window is the run of page numbers to render as buttons.
	Window []int

	// LeadingGap is true when the window does not reach page 1, so the
	// widget renders "1 …" shortcuts before it.
	LeadingGap bool

	// TrailingGap is true when the window does not reach the last page.
	TrailingGap bool
}

// TotalPages computes ceil(total/perPage); a non-positive perPage or
// total yields a single page rather than a division error.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate derives the full pagination state.
//
// The window of windowSize page numbers is centered on the current page
// and shifted (never shrunk below min(windowSize, totalPages)) when the
// center would push it past an edge. The caller resets page to 1 whenever
// a filter or the page size changes; Paginate only clamps, it cannot know
// the page is stale.
func Paginate(total, perPage, page, windowSize int) Pagination {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	totalPages := TotalPages(total, perPage)
	page = Clamp(page, totalPages)

	if windowSize > totalPages {
		windowSize = totalPages
	}
	start := page - windowSize/2
	if start < 1 {
		start = 1
	}
	if start+windowSize-1 > totalPages {
		start = totalPages - windowSize + 1
	}

	window := make([]int, windowSize)
	for i := range window {
		window[i] = start + i
	}

	return Pagination{
		Page:        page,
		TotalPages:  totalPages,
		Window:      window,
		LeadingGap:  start > 1,
		TrailingGap: start+windowSize-1 < totalPages,
	}
}
