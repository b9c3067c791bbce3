// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Test the role-to-tabs mapping, including the no-role default.
func TestTabsForRole(t *testing.T) {
	assert.Equal(t, []tabID{tabMyReports, tabPublicFeed}, tabsForRole(api.RoleCitizen))
	assert.Equal(t, []tabID{tabMyReports, tabPublicFeed}, tabsForRole(""), "missing role defaults to citizen")
	assert.Equal(t, []tabID{tabStaffReports, tabUsers, tabRequests, tabFeedback}, tabsForRole(api.RoleAdmin))
	assert.Equal(t, []tabID{tabStats, tabStaffReports, tabFeedback}, tabsForRole(api.RoleMayor))
}

// Test the status filter cycle wraps back to "no filter".
func TestNextStatus_Cycle(t *testing.T) {
	seen := map[api.Progress]bool{}
	status := api.Progress("")
	for range statusCycle {
		status = nextStatus(status)
		seen[status] = true
	}
	assert.Equal(t, api.Progress(""), status, "full cycle must return to no-filter")
	assert.Len(t, seen, len(statusCycle))
}

// Test category cycling follows first-appearance order with "" between
// wraps.
func TestNextCategory(t *testing.T) {
	reports := []api.Report{
		{Type: "flooding"},
		{Type: "road_damage"},
		{Type: "flooding"},
		{Type: "garbage"},
	}

	assert.Equal(t, "flooding", nextCategory(reports, ""))
	assert.Equal(t, "road_damage", nextCategory(reports, "flooding"))
	assert.Equal(t, "garbage", nextCategory(reports, "road_damage"))
	assert.Equal(t, "", nextCategory(reports, "garbage"), "after the last category comes no-filter")
	assert.Equal(t, "", nextCategory(nil, ""), "no data, no categories")
}

// Test cursor clamping after a shrinking result set.
func TestClampCursor(t *testing.T) {
	m := New(Deps{Session: staticSession{}})
	m.cursors[tabMyReports] = 9

	m.clampCursor(tabMyReports, 4)
	assert.Equal(t, 3, m.cursors[tabMyReports])

	m.clampCursor(tabMyReports, 0)
	assert.Equal(t, 0, m.cursors[tabMyReports])
}

// staticSession is a logged-out session store for model construction.
type staticSession struct{}

func (staticSession) Token() string          { return "" }
func (staticSession) User() (api.User, bool) { return api.User{}, false }
func (staticSession) Set(api.Session) error  { return nil }
func (staticSession) Clear() error           { return nil }
