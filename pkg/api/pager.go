// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package api: pager.go provides bounded iteration over a paged collection
endpoint.

# Problem Statement

The aggregate statistics view needs to walk an entire filtered collection
(reports in a time window, feedback in a time window) without trusting the
backend to terminate the walk. A backend contract violation (a collection
that keeps returning full pages) must not turn into an unbounded request
loop on a municipal server.

# Solution

Pager iterates pages until a short page (fewer items than per_page, the
end-of-collection signal) or a hard page ceiling, whichever comes first.
Hitting the ceiling is reported as truncation, not as an error: the counts
computed so far are still useful, they are just a floor.

The accumulation itself lives with the caller as a fold over the visited
items, keeping counting logic independent of the transport.
*/
package api

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

const (
	// DefaultPerPage is the fixed page size for collection walks.
	DefaultPerPage = 100

	// DefaultMaxPages caps a single walk at 50 pages (5,000 rows at the
	// default page size).
	DefaultMaxPages = 50
)

// PageFetch returns one page of a collection. Implementations close over
// whatever filters the walk carries (date_from etc.).
type PageFetch[T any] func(ctx context.Context, page, perPage int) (Page[T], error)

// Pager walks a paged collection with a hard iteration ceiling.
//
// The zero value is not usable; construct with NewPager.
type Pager[T any] struct {
	perPage  int
	maxPages int
	limiter  *rate.Limiter
}

// NewPager creates a Pager with the default page size and ceiling.
//
// The limiter paces requests at 10/s with a small burst so a full walk
// does not hammer the backend; pass 0 for either argument to keep the
// default.
func NewPager[T any](perPage, maxPages int) *Pager[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Pager[T]{
		perPage:  perPage,
		maxPages: maxPages,
		limiter:  rate.NewLimiter(rate.Limit(10), 2),
	}
}

// Each fetches successive pages, calling visit for every item, until the
// collection ends or the ceiling is hit.
//
// Returns truncated=true when the ceiling stopped the walk early. Any
// fetch error aborts the walk immediately; items already visited stay
// visited (the caller's fold keeps partial results).
func (p *Pager[T]) Each(ctx context.Context, fetch PageFetch[T], visit func(T)) (truncated bool, err error) {
	for pageNum := 1; pageNum <= p.maxPages; pageNum++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return false, &Error{Kind: KindCancelled, Message: "walk cancelled", Detail: err.Error()}
		}

		page, err := fetch(ctx, pageNum, p.perPage)
		if err != nil {
			return false, err
		}
		for _, item := range page.Items {
			visit(item)
		}

		// A short page is the end-of-collection signal.
		if len(page.Items) < p.perPage {
			return false, nil
		}
	}

	slog.Warn("collection walk hit page ceiling, counts are truncated",
		"max_pages", p.maxPages, "per_page", p.perPage)
	return true, nil
}
