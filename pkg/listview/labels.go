// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package listview

import (
	"strings"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// StatusLabel maps a progress value to its display text. Unknown values
// pass through verbatim: the status enum is closed, but the client must
// not crash on a backend it has never seen.
func StatusLabel(p api.Progress) string {
	switch p {
	case api.ProgressPending:
		return "Pending"
	case api.ProgressInReview:
		return "In Review"
	case api.ProgressAssigned:
		return "Assigned"
	case api.ProgressResolved:
		return "Resolved"
	case api.ProgressRejected:
		return "Rejected"
	default:
		return string(p)
	}
}

// CategoryLabel prettifies a category token for display. The category set
// is open (whatever strings the backend uses), so this is a best-effort
// title-casing of snake_case tokens, never a lookup that can miss.
func CategoryLabel(category string) string {
	if category == "" {
		return "Uncategorized"
	}
	words := strings.Split(strings.ReplaceAll(category, "-", "_"), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
