// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package api: envelope.go normalizes the backend's two collection response
shapes into one canonical record before anything downstream sees them.

# Problem Statement

Collection endpoints answer in one of two envelopes depending on which
backend controller produced them:

	{"data": [ ... ], "total": 95}
	{"reports": [ ... ]}

Tolerating both shapes at every call site invites drift. Normalization
happens exactly once, at the client boundary, and everything else consumes
Page[T].

# Total Fallback

When no usable total is present, Total falls back to len(Items). That is a
deliberate degraded-accuracy fallback (pagination over such a response can
only see one page), not an error.
*/
package api

import (
	"encoding/json"
	"fmt"
)

// Page is the canonical collection result: the items of one page plus the
// backend's total row count across all pages.
type Page[T any] struct {
	Items []T
	Total int
}

// decodePage normalizes a collection response body into a Page.
//
// entityKey is the entity-plural key to probe when the "data" envelope is
// absent (e.g. "reports", "feedback", "users"). A bare top-level JSON
// array is accepted as well.
func decodePage[T any](body []byte, entityKey string) (Page[T], error) {
	var page Page[T]

	// Bare array: some list endpoints skip the envelope entirely.
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &page.Items); err != nil {
			return page, fmt.Errorf("decode %s array: %w", entityKey, err)
		}
		page.Total = len(page.Items)
		return page, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return page, fmt.Errorf("decode %s envelope: %w", entityKey, err)
	}

	items, ok := envelope["data"]
	if !ok {
		items, ok = envelope[entityKey]
	}
	if !ok {
		return page, fmt.Errorf("response has neither %q nor %q key", "data", entityKey)
	}
	if err := json.Unmarshal(items, &page.Items); err != nil {
		return page, fmt.Errorf("decode %s items: %w", entityKey, err)
	}

	page.Total = len(page.Items)
	if raw, ok := envelope["total"]; ok {
		var total int
		if err := json.Unmarshal(raw, &total); err == nil && total >= 0 {
			page.Total = total
		}
	}
	return page, nil
}
