// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Test the closed status set plus the unknown-value passthrough.
func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusLabel(api.ProgressPending))
	assert.Equal(t, "In Review", StatusLabel(api.ProgressInReview))
	assert.Equal(t, "Assigned", StatusLabel(api.ProgressAssigned))
	assert.Equal(t, "Resolved", StatusLabel(api.ProgressResolved))
	assert.Equal(t, "Rejected", StatusLabel(api.ProgressRejected))
	assert.Equal(t, "escalated", StatusLabel(api.Progress("escalated")))
}

// Test category prettification on the open category set.
func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Road Damage", CategoryLabel("road_damage"))
	assert.Equal(t, "Flooding", CategoryLabel("flooding"))
	assert.Equal(t, "Street Light", CategoryLabel("street-light"))
	assert.Equal(t, "Uncategorized", CategoryLabel(""))
}
