// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
	"github.com/CremaCrem/RIPARO-sub000/pkg/rollup"
)

// statusCycle is the order the status filter steps through; the leading
// empty value means "no filter".
var statusCycle = []api.Progress{
	"", api.ProgressPending, api.ProgressInReview,
	api.ProgressAssigned, api.ProgressResolved, api.ProgressRejected,
}

func nextStatus(current api.Progress) api.Progress {
	for i, status := range statusCycle {
		if status == current {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

// =============================================================================
// Citizen: My Reports
// =============================================================================

func (m Model) updateMyReports(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleMyReports()

	switch msg.String() {
	case "s":
		// Cycle the status filter. Pure client-side recomputation, no
		// fetch; the cursor is clamped against the new subset.
		m.trackFilter.Status = nextStatus(m.trackFilter.Status)
		m.clampCursor(tabMyReports, len(m.visibleMyReports()))
		return m, nil

	case "c":
		m.trackFilter.Category = nextCategory(m.myReports.data, m.trackFilter.Category)
		m.clampCursor(tabMyReports, len(m.visibleMyReports()))
		return m, nil

	case "x":
		m.trackFilter = listview.Filter{}
		return m, nil

	case "enter":
		if cursor := m.cursors[tabMyReports]; cursor < len(visible) {
			m.detail = newDetailView(visible[cursor], false)
		}
		return m, nil
	}
	return m.updateCursorList(msg, tabMyReports, len(visible))
}

// nextCategory cycles through the categories present in the fetched
// list, in order of first appearance, with "" (no filter) between wraps.
func nextCategory(reports []api.Report, current string) string {
	var categories []string
	seen := make(map[string]bool)
	for _, r := range reports {
		if !seen[r.Type] {
			seen[r.Type] = true
			categories = append(categories, r.Type)
		}
	}
	if len(categories) == 0 {
		return ""
	}
	if current == "" {
		return categories[0]
	}
	for i, category := range categories {
		if category == current {
			if i == len(categories)-1 {
				return ""
			}
			return categories[i+1]
		}
	}
	return ""
}

// =============================================================================
// Staff: Reports (server-side filters + pagination)
// =============================================================================

func (m Model) updateStaffReports(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		// Server-side filter change: page MUST reset to 1 before the
		// fetch, or a shorter result set leaves us past the end.
		m.staffStatus = nextStatus(m.staffStatus)
		m.staffPage = 1
		return m, m.loadStaffReports()

	case "n":
		pagination := m.staffPagination()
		if m.staffPage < pagination.TotalPages {
			m.staffPage++
			return m, m.loadStaffReports()
		}
		return m, nil

	case "p":
		if m.staffPage > 1 {
			m.staffPage--
			return m, m.loadStaffReports()
		}
		return m, nil

	case "g":
		if m.staffPage != 1 {
			m.staffPage = 1
			return m, m.loadStaffReports()
		}
		return m, nil

	case "G":
		if last := m.staffPagination().TotalPages; m.staffPage != last {
			m.staffPage = last
			return m, m.loadStaffReports()
		}
		return m, nil

	case "enter":
		if cursor := m.reportsTable.Cursor(); cursor >= 0 && cursor < len(m.staff.data.Items) {
			m.detail = newDetailView(m.staff.data.Items[cursor], true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.reportsTable, cmd = m.reportsTable.Update(msg)
	return m, cmd
}

// =============================================================================
// Staff: Verification Queue
// =============================================================================

func (m Model) updateUsers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := m.cursors[tabUsers]
	switch msg.String() {
	case "v":
		if !m.mutating && cursor < len(m.users.data) {
			m.mutating = true
			m.banner = ""
			return m, m.verifyCmd(m.users.data[cursor].ID, api.ActionVerify)
		}
		return m, nil
	case "x":
		if !m.mutating && cursor < len(m.users.data) {
			m.mutating = true
			m.banner = ""
			return m, m.verifyCmd(m.users.data[cursor].ID, api.ActionReject)
		}
		return m, nil
	}
	return m.updateCursorList(msg, tabUsers, len(m.users.data))
}

// =============================================================================
// Staff: Profile Update Requests
// =============================================================================

func (m Model) updateRequests(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := m.cursors[tabRequests]
	switch msg.String() {
	case "a":
		if !m.mutating && cursor < len(m.requests.data) {
			m.mutating = true
			m.banner = ""
			return m, m.reviewCmd(m.requests.data[cursor].ID, api.ReviewApprove)
		}
		return m, nil
	case "x":
		if !m.mutating && cursor < len(m.requests.data) {
			m.mutating = true
			m.banner = ""
			return m, m.reviewCmd(m.requests.data[cursor].ID, api.ReviewReject)
		}
		return m, nil
	}
	return m.updateCursorList(msg, tabRequests, len(m.requests.data))
}

// =============================================================================
// Feedback
// =============================================================================

func (m Model) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pagination := listview.Paginate(m.feedback.data.Total, m.perPage, m.feedbackPage, listview.DefaultWindowSize)
	switch msg.String() {
	case "n":
		if m.feedbackPage < pagination.TotalPages {
			m.feedbackPage++
			return m, m.loadFeedback()
		}
		return m, nil
	case "p":
		if m.feedbackPage > 1 {
			m.feedbackPage--
			return m, m.loadFeedback()
		}
		return m, nil
	}
	return m.updateCursorList(msg, tabFeedback, len(m.feedback.data.Items))
}

// =============================================================================
// Mayor: Statistics
// =============================================================================

func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var next rollup.Range
	switch msg.String() {
	case "d":
		next = rollup.RangeDay
	case "w":
		next = rollup.RangeWeek
	case "m":
		next = rollup.RangeMonth
	case "y":
		next = rollup.RangeYear
	default:
		return m, nil
	}
	if next == m.statsRange {
		return m, nil
	}
	m.statsRange = next
	return m, m.loadStats()
}
