// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
	"github.com/CremaCrem/RIPARO-sub000/pkg/rollup"
)

// noticeTTL is how long a success notice stays on screen. Errors have no
// TTL: they stick until the next action.
const noticeTTL = 4 * time.Second

// =============================================================================
// Load Messages
// =============================================================================

// Every load message carries the generation stamped when the load began;
// panel.resolve drops the message if the panel has moved on.

type myReportsMsg struct {
	gen      int
	items    []api.Report
	offline  bool
	syncedAt time.Time
	err      error
}

type publicFeedMsg struct {
	gen   int
	items []api.Report
	err   error
}

type staffReportsMsg struct {
	gen  int
	page api.Page[api.Report]
	err  error
}

type usersMsg struct {
	gen   int
	items []api.User
	err   error
}

type requestsMsg struct {
	gen   int
	items []api.UpdateRequest
	err   error
}

type feedbackMsg struct {
	gen  int
	page api.Page[api.Feedback]
	err  error
}

type statsMsg struct {
	gen    int
	result rollup.Result
	err    error
}

type clearNoticeMsg struct{}

// =============================================================================
// Load Commands
// =============================================================================

// loadTab begins a load for the given tab and returns the fetch command.
// Idempotent triggers (re-activating an already-loaded tab) still reload;
// stale data stays visible while the refresh is in flight.
func (m *Model) loadTab(tab tabID) tea.Cmd {
	switch tab {
	case tabMyReports:
		return m.loadMyReports()
	case tabPublicFeed:
		gen := m.public.begin()
		return func() tea.Msg {
			items, err := m.client.PublicReports(context.Background())
			return publicFeedMsg{gen: gen, items: items, err: err}
		}
	case tabStaffReports:
		return m.loadStaffReports()
	case tabUsers:
		gen := m.users.begin()
		return func() tea.Msg {
			items, err := m.client.Users(context.Background(), "pending")
			return usersMsg{gen: gen, items: items, err: err}
		}
	case tabRequests:
		gen := m.requests.begin()
		return func() tea.Msg {
			items, err := m.client.UpdateRequests(context.Background(), "pending")
			return requestsMsg{gen: gen, items: items, err: err}
		}
	case tabFeedback:
		return m.loadFeedback()
	case tabStats:
		return m.loadStats()
	}
	return nil
}

// loadMyReports fetches the citizen's own reports, falling back to the
// local cache when the backend is unreachable.
func (m *Model) loadMyReports() tea.Cmd {
	gen := m.myReports.begin()
	client, store := m.client, m.cache
	return func() tea.Msg {
		items, err := client.MyReports(context.Background())
		if err == nil {
			if store != nil {
				_ = store.PutAll(items)
			}
			return myReportsMsg{gen: gen, items: items}
		}
		apiErr, ok := api.AsError(err)
		if ok && apiErr.Kind == api.KindTransport && store != nil {
			cached, cacheErr := store.All()
			if cacheErr == nil && len(cached) > 0 {
				syncedAt, _ := store.LastSynced()
				return myReportsMsg{gen: gen, items: cached, offline: true, syncedAt: syncedAt}
			}
		}
		return myReportsMsg{gen: gen, err: err}
	}
}

func (m *Model) loadStaffReports() tea.Cmd {
	gen := m.staff.begin()
	query := api.ReportQuery{
		Status:  m.staffStatus,
		Page:    m.staffPage,
		PerPage: m.perPage,
	}
	client := m.client
	return func() tea.Msg {
		page, err := client.Reports(context.Background(), query)
		return staffReportsMsg{gen: gen, page: page, err: err}
	}
}

func (m *Model) loadFeedback() tea.Cmd {
	gen := m.feedback.begin()
	query := api.FeedbackQuery{Page: m.feedbackPage, PerPage: m.perPage}
	client := m.client
	return func() tea.Msg {
		page, err := client.FeedbackList(context.Background(), query)
		return feedbackMsg{gen: gen, page: page, err: err}
	}
}

func (m *Model) loadStats() tea.Cmd {
	gen := m.stats.begin()
	client, rng := m.client, m.statsRange
	return func() tea.Msg {
		result, err := rollup.Compute(context.Background(), client, rng, time.Now())
		return statsMsg{gen: gen, result: result, err: err}
	}
}

// =============================================================================
// Load Message Handling
// =============================================================================

func (m Model) handleDataMsg(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case myReportsMsg:
		if m.myReports.resolve(msg.gen, msg.items, msg.err) {
			m.offline = msg.offline
			m.lastSynced = msg.syncedAt
			m.clampCursor(tabMyReports, len(m.visibleMyReports()))
		}
		return m, nil, true

	case publicFeedMsg:
		if m.public.resolve(msg.gen, msg.items, msg.err) {
			m.clampCursor(tabPublicFeed, len(msg.items))
		}
		return m, nil, true

	case staffReportsMsg:
		if m.staff.resolve(msg.gen, msg.page, msg.err) && msg.err == nil {
			m.syncReportsTable()
		}
		return m, nil, true

	case usersMsg:
		if m.users.resolve(msg.gen, msg.items, msg.err) {
			m.clampCursor(tabUsers, len(msg.items))
		}
		return m, nil, true

	case requestsMsg:
		if m.requests.resolve(msg.gen, msg.items, msg.err) {
			m.clampCursor(tabRequests, len(msg.items))
		}
		return m, nil, true

	case feedbackMsg:
		if m.feedback.resolve(msg.gen, msg.page, msg.err) {
			m.clampCursor(tabFeedback, len(msg.page.Items))
		}
		return m, nil, true

	case statsMsg:
		// Partial rollup results are kept: the counts computed before
		// the failing request are still better than a blank screen.
		// Stale generations stay discarded on this path too.
		if msg.err != nil && msg.result.TotalReports > 0 {
			if m.stats.resolve(msg.gen, msg.result, nil) {
				m.stats.err = toAPIError(msg.err)
				m.stats.state = panelFailed
			}
			return m, nil, true
		}
		m.stats.resolve(msg.gen, msg.result, msg.err)
		return m, nil, true
	}
	return m, nil, false
}

func toAPIError(err error) *api.Error {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr
	}
	return &api.Error{Kind: api.KindTransport, Message: err.Error()}
}

func (m *Model) clampCursor(tab tabID, length int) {
	if m.cursors[tab] >= length {
		m.cursors[tab] = max(0, length-1)
	}
}

// syncReportsTable mirrors the staff page into the bubbles table.
func (m *Model) syncReportsTable() {
	rows := make([]table.Row, len(m.staff.data.Items))
	for i, report := range m.staff.data.Items {
		rows[i] = table.Row{
			report.ReportID,
			listview.CategoryLabel(report.Type),
			listview.StatusLabel(report.Progress),
			report.CreatedAt.Format("2006-01-02"),
			report.Address,
		}
	}
	m.reportsTable.SetRows(rows)
	if m.reportsTable.Cursor() >= len(rows) {
		m.reportsTable.SetCursor(max(0, len(rows)-1))
	}
}

// =============================================================================
// Mutation Messages & Commands
// =============================================================================

type progressSavedMsg struct {
	report api.Report
	err    error
}

type photosUploadedMsg struct {
	report api.Report
	err    error
}

type verificationDoneMsg struct {
	userID int64
	action api.VerificationAction
	err    error
}

type reviewDoneMsg struct {
	requestID int64
	action    api.ReviewAction
	err       error
}

func (m *Model) saveProgressCmd(id int64, progress api.Progress) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		report, err := client.SetProgress(context.Background(), id, progress)
		return progressSavedMsg{report: report, err: err}
	}
}

func (m *Model) verifyCmd(userID int64, action api.VerificationAction) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.SetVerification(context.Background(), userID, action)
		return verificationDoneMsg{userID: userID, action: action, err: err}
	}
}

func (m *Model) reviewCmd(requestID int64, action api.ReviewAction) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.ReviewUpdateRequest(context.Background(), requestID, action)
		return reviewDoneMsg{requestID: requestID, action: action, err: err}
	}
}

func (m Model) handleActionMsg(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case progressSavedMsg:
		m.mutating = false
		if msg.err != nil {
			m.banner = toAPIError(msg.err).Message
			return m, nil, true
		}
		m.applyServerReport(msg.report)
		m.notice = "report " + msg.report.ReportID + " updated"
		return m, m.noticeTimer(), true

	case photosUploadedMsg:
		m.mutating = false
		if msg.err != nil {
			m.banner = toAPIError(msg.err).Message
			return m, nil, true
		}
		m.applyServerReport(msg.report)
		m.notice = "resolution photos attached"
		return m, m.noticeTimer(), true

	case verificationDoneMsg:
		m.mutating = false
		if msg.err != nil {
			m.banner = toAPIError(msg.err).Message
			return m, nil, true
		}
		m.notice = "verification recorded"
		// The pending queue changed server-side; refetch it.
		return m, tea.Batch(m.noticeTimer(), m.loadTab(tabUsers)), true

	case reviewDoneMsg:
		m.mutating = false
		if msg.err != nil {
			m.banner = toAPIError(msg.err).Message
			return m, nil, true
		}
		m.notice = "review recorded"
		return m, tea.Batch(m.noticeTimer(), m.loadTab(tabRequests)), true
	}
	return m, nil, false
}

// applyServerReport patches every local copy of a report with the
// server-confirmed value: the detail overlay, the staff list row, and
// the shared cache. Local state changes only after acknowledgment.
func (m *Model) applyServerReport(report api.Report) {
	if m.detail != nil && m.detail.report.ID == report.ID {
		m.detail.apply(report)
	}
	for i := range m.staff.data.Items {
		if m.staff.data.Items[i].ID == report.ID {
			m.staff.data.Items[i] = report
		}
	}
	for i := range m.myReports.data {
		if m.myReports.data[i].ID == report.ID {
			m.myReports.data[i] = report
		}
	}
	m.syncReportsTable()
	if m.cache != nil {
		_ = m.cache.Put(report)
	}
}

func (m Model) noticeTimer() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}
