// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
)

// View renders the whole dashboard frame.
func (m Model) View() string {
	if m.detail != nil {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("RIPARO") + "  " +
		mutedStyle.Render(fmt.Sprintf("%s · %s portal", m.user.FullName(), m.role)))
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewActiveTab())
	b.WriteString("\n")

	// Sticky failure banner; ephemeral success notice.
	if m.banner != "" {
		b.WriteString("\n" + errorStyle.Render("! "+m.banner))
	}
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render("✓ "+m.notice))
	}

	b.WriteString("\n" + m.viewFooter())
	return b.String()
}

func (m Model) viewTabs() string {
	var rendered []string
	for i, tab := range m.tabs {
		if i == m.active {
			rendered = append(rendered, activeTabStyle.Render(tab.title()))
		} else {
			rendered = append(rendered, tabStyle.Render(tab.title()))
		}
	}
	return strings.Join(rendered, "")
}

func (m Model) viewActiveTab() string {
	switch m.tabs[m.active] {
	case tabMyReports:
		return m.viewMyReports()
	case tabPublicFeed:
		return m.viewReportList(m.public.data, m.cursors[tabPublicFeed],
			m.public.loading(), m.public.errorLine())
	case tabStaffReports:
		return m.viewStaffReports()
	case tabUsers:
		return m.viewUsers()
	case tabRequests:
		return m.viewRequests()
	case tabFeedback:
		return m.viewFeedback()
	case tabStats:
		return m.viewStats()
	}
	return ""
}

func (m Model) viewFooter() string {
	common := "Tab switch · r refresh · q quit"
	switch m.tabs[m.active] {
	case tabMyReports:
		return footerStyle.Render("↑/↓ move · Enter open · s status filter · c category filter · x clear · " + common)
	case tabStaffReports:
		return footerStyle.Render("↑/↓ move · Enter open · s status filter · n/p page · g/G first/last · " + common)
	case tabUsers:
		return footerStyle.Render("↑/↓ move · v verify · x reject · " + common)
	case tabRequests:
		return footerStyle.Render("↑/↓ move · a approve · x reject · " + common)
	case tabFeedback:
		return footerStyle.Render("↑/↓ move · n/p page · " + common)
	case tabStats:
		return footerStyle.Render("d/w/m/y time range · " + common)
	default:
		return footerStyle.Render("↑/↓ move · Enter open · " + common)
	}
}

// loadingSuffix marks a panel that is refreshing behind stale data.
func (m Model) loadingSuffix(isLoading bool) string {
	if !isLoading {
		return ""
	}
	return "  " + m.spinner.View() + mutedStyle.Render("loading…")
}

// =============================================================================
// Report Lists
// =============================================================================

func (m Model) viewMyReports() string {
	var b strings.Builder

	var filters []string
	if m.trackFilter.Status != "" {
		filters = append(filters, "status="+listview.StatusLabel(m.trackFilter.Status))
	}
	if m.trackFilter.Category != "" {
		filters = append(filters, "category="+listview.CategoryLabel(m.trackFilter.Category))
	}
	if len(filters) > 0 {
		b.WriteString(mutedStyle.Render("filters: "+strings.Join(filters, ", ")) + "\n")
	}
	if m.offline {
		stamp := "unknown"
		if !m.lastSynced.IsZero() {
			stamp = m.lastSynced.Local().Format("2006-01-02 15:04")
		}
		b.WriteString(errorStyle.Render("offline: showing cached reports, last synced "+stamp) + "\n")
	}

	b.WriteString(m.viewReportList(m.visibleMyReports(), m.cursors[tabMyReports],
		m.myReports.loading(), m.myReports.errorLine()))
	return b.String()
}

func (m Model) viewReportList(reports []api.Report, cursor int, isLoading bool, errorLine string) string {
	var b strings.Builder
	if errorLine != "" {
		b.WriteString(errorLine + "\n")
	}
	if len(reports) == 0 {
		if isLoading {
			return b.String() + m.spinner.View() + " loading…"
		}
		return b.String() + mutedStyle.Render("no reports")
	}

	for i, report := range reports {
		marker := "  "
		if i == cursor {
			marker = boldStyle.Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%-12s %s %-18s %s\n",
			marker,
			report.ReportID,
			statusPill(report.Progress),
			listview.CategoryLabel(report.Type),
			mutedStyle.Render(report.CreatedAt.Format("2006-01-02")),
		)
	}
	b.WriteString(m.loadingSuffix(isLoading))
	return b.String()
}

func (m Model) viewStaffReports() string {
	var b strings.Builder

	status := "all"
	if m.staffStatus != "" {
		status = listview.StatusLabel(m.staffStatus)
	}
	b.WriteString(mutedStyle.Render("status: "+status) +
		mutedStyle.Render(fmt.Sprintf("   %d total", m.staff.data.Total)) +
		m.loadingSuffix(m.staff.loading()) + "\n")
	if line := m.staff.errorLine(); line != "" {
		b.WriteString(line + "\n")
	}

	b.WriteString(m.reportsTable.View())
	b.WriteString("\n")
	b.WriteString(paginatorBar(m.staffPagination()))
	return b.String()
}

// =============================================================================
// Verification & Update Requests
// =============================================================================

func (m Model) viewUsers() string {
	var b strings.Builder
	if line := m.users.errorLine(); line != "" {
		b.WriteString(line + "\n")
	}
	if len(m.users.data) == 0 {
		if m.users.loading() {
			return b.String() + m.spinner.View() + " loading…"
		}
		return b.String() + mutedStyle.Render("no registrations waiting for verification")
	}
	cursor := m.cursors[tabUsers]
	for i, user := range m.users.data {
		marker := "  "
		if i == cursor {
			marker = boldStyle.Render("▸ ")
		}
		document := mutedStyle.Render("no ID document")
		if user.IDDocumentPath != "" {
			document = mutedStyle.Render(m.client.AssetURL(user.IDDocumentPath))
		}
		fmt.Fprintf(&b, "%s%-24s %-28s %s/%s\n%s\n",
			marker, user.FullName(), user.Email, user.Barangay, user.Zone,
			"    "+document,
		)
	}
	b.WriteString(m.loadingSuffix(m.users.loading()))
	return b.String()
}

func (m Model) viewRequests() string {
	var b strings.Builder
	if line := m.requests.errorLine(); line != "" {
		b.WriteString(line + "\n")
	}
	if len(m.requests.data) == 0 {
		if m.requests.loading() {
			return b.String() + m.spinner.View() + " loading…"
		}
		return b.String() + mutedStyle.Render("no pending profile update requests")
	}
	cursor := m.cursors[tabRequests]
	for i, request := range m.requests.data {
		marker := "  "
		if i == cursor {
			marker = boldStyle.Render("▸ ")
		}
		fmt.Fprintf(&b, "%s#%d %s\n", marker, request.ID, request.User.FullName())
		for _, field := range sortedKeys(request.Changes) {
			fmt.Fprintf(&b, "      %s %s\n",
				mutedStyle.Render(field+" →"), request.Changes[field])
		}
	}
	b.WriteString(m.loadingSuffix(m.requests.loading()))
	return b.String()
}

func sortedKeys(changes map[string]string) []string {
	keys := make([]string, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// =============================================================================
// Feedback
// =============================================================================

func (m Model) viewFeedback() string {
	var b strings.Builder
	if line := m.feedback.errorLine(); line != "" {
		b.WriteString(line + "\n")
	}
	items := m.feedback.data.Items
	if len(items) == 0 {
		if m.feedback.loading() {
			return b.String() + m.spinner.View() + " loading…"
		}
		return b.String() + mutedStyle.Render("no feedback")
	}
	cursor := m.cursors[tabFeedback]
	for i, feedback := range items {
		marker := "  "
		if i == cursor {
			marker = boldStyle.Render("▸ ")
		}
		from := feedback.ContactEmail
		if feedback.Anonymous || from == "" {
			from = "anonymous"
		}
		subject := feedback.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Fprintf(&b, "%s%-28s %s %s\n", marker, subject,
			mutedStyle.Render(from),
			mutedStyle.Render(feedback.CreatedAt.Format("2006-01-02")))
		if i == cursor {
			b.WriteString("    " + feedback.Message + "\n")
		}
	}
	b.WriteString(m.loadingSuffix(m.feedback.loading()))
	b.WriteString("\n" + paginatorBar(listview.Paginate(
		m.feedback.data.Total, m.perPage, m.feedbackPage, listview.DefaultWindowSize)))
	return b.String()
}

// =============================================================================
// Statistics
// =============================================================================

func (m Model) viewStats() string {
	var b strings.Builder
	result := m.stats.data

	b.WriteString(mutedStyle.Render(fmt.Sprintf("range: %s (since %s)", m.statsRange, result.DateFrom)) +
		m.loadingSuffix(m.stats.loading()) + "\n")
	if line := m.stats.errorLine(); line != "" {
		b.WriteString(line + "\n")
	}
	if !m.stats.hasData {
		if m.stats.loading() {
			return b.String() + m.spinner.View() + " computing…"
		}
		return b.String()
	}

	fmt.Fprintf(&b, "\n%s %d   %s %d   %s %d   %s %d   %s %d\n",
		boldStyle.Render("Reports"), result.TotalReports,
		mutedStyle.Render("open"), result.Open,
		mutedStyle.Render("assigned"), result.Assigned,
		mutedStyle.Render("resolved"), result.Resolved,
		mutedStyle.Render("rejected"), result.Rejected,
	)
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d\n",
		boldStyle.Render("Feedback"), result.TotalFeedback,
		mutedStyle.Render("pending users"), result.PendingUsers,
		mutedStyle.Render("pending updates"), result.PendingUpdateRequests,
	)
	if result.Truncated {
		b.WriteString(mutedStyle.Render("(counts truncated at the collection walk ceiling)") + "\n")
	}

	categories := make([]string, 0, len(result.ByCategory))
	for category := range result.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	b.WriteString("\n" + barChart(result.ByCategory, categories, max(20, m.width-30)))
	return b.String()
}
