// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/cache"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
	"github.com/CremaCrem/RIPARO-sub000/pkg/rollup"
	"github.com/CremaCrem/RIPARO-sub000/pkg/session"
)

// tabID names every panel the three dashboards can show.
type tabID int

const (
	tabMyReports tabID = iota
	tabPublicFeed
	tabStaffReports
	tabUsers
	tabRequests
	tabFeedback
	tabStats
)

func (t tabID) title() string {
	switch t {
	case tabMyReports:
		return "My Reports"
	case tabPublicFeed:
		return "Public Feed"
	case tabStaffReports:
		return "Reports"
	case tabUsers:
		return "Verification"
	case tabRequests:
		return "Update Requests"
	case tabFeedback:
		return "Feedback"
	case tabStats:
		return "Statistics"
	default:
		return "?"
	}
}

// tabsForRole builds the tab shell for a portal role. An account with no
// role field is a citizen.
func tabsForRole(role api.Role) []tabID {
	switch role {
	case api.RoleAdmin:
		return []tabID{tabStaffReports, tabUsers, tabRequests, tabFeedback}
	case api.RoleMayor:
		return []tabID{tabStats, tabStaffReports, tabFeedback}
	default:
		return []tabID{tabMyReports, tabPublicFeed}
	}
}

// Deps wires the dashboard to the rest of the program.
type Deps struct {
	Client  *api.Client
	Session session.Store
	Cache   *cache.Store
	PerPage int
}

// Model is the root bubbletea model for all three role dashboards; the
// role decides which tabs exist, everything else is shared machinery.
type Model struct {
	client  *api.Client
	cache   *cache.Store
	user    api.User
	role    api.Role
	perPage int

	tabs   []tabID
	active int
	width  int
	height int

	spinner spinner.Model

	// Panels. Each owns its data + loading state; see panel.go for the
	// state machine and generation rules.
	myReports panel[[]api.Report]
	public    panel[[]api.Report]
	staff     panel[api.Page[api.Report]]
	users     panel[[]api.User]
	requests  panel[[]api.UpdateRequest]
	feedback  panel[api.Page[api.Feedback]]
	stats     panel[rollup.Result]

	// Per-tab cursors for the plain list views.
	cursors map[tabID]int

	// Staff reports table + its server-side query.
	reportsTable table.Model
	staffStatus  api.Progress
	staffPage    int

	// Citizen track-view filter (client-side).
	trackFilter listview.Filter

	feedbackPage int
	statsRange   rollup.Range

	// Offline fallback bookkeeping for the citizen track view.
	offline    bool
	lastSynced time.Time

	detail *detailView

	// Sticky error banner and self-dismissing success notice; the
	// asymmetry is deliberate (failures wait to be acted on).
	banner string
	notice string

	mutating bool
}

// New builds the dashboard for the logged-in user. Callers must have
// checked that a session exists.
func New(deps Deps) Model {
	user, _ := deps.Session.User()
	role := user.Role
	if role == "" {
		role = api.RoleCitizen
	}
	perPage := deps.PerPage
	if perPage <= 0 {
		perPage = 10
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	columns := []table.Column{
		{Title: "Ref", Width: 12},
		{Title: "Category", Width: 18},
		{Title: "Status", Width: 12},
		{Title: "Submitted", Width: 12},
		{Title: "Address", Width: 28},
	}
	reportsTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		client:       deps.Client,
		cache:        deps.Cache,
		user:         user,
		role:         role,
		perPage:      perPage,
		tabs:         tabsForRole(role),
		spinner:      sp,
		cursors:      make(map[tabID]int),
		reportsTable: reportsTable,
		staffPage:    1,
		feedbackPage: 1,
		statsRange:   rollup.RangeWeek,
	}
}

// refreshMsg asks Update to (re)load the active tab. Init goes through a
// message instead of calling loadTab directly so the generation bump
// lands on the model the program actually keeps.
type refreshMsg struct{}

// Init kicks off the spinner and the first tab load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return refreshMsg{} })
}

// Update is the single mutation point for all dashboard state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.reportsTable.SetHeight(max(6, m.height-12))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshMsg:
		return m, m.loadTab(m.tabs[m.active])

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if model, cmd, handled := m.handleDataMsg(msg); handled {
		return model, cmd
	}
	if model, cmd, handled := m.handleActionMsg(msg); handled {
		return model, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The detail overlay owns the keyboard while open.
	if m.detail != nil {
		return m.updateDetail(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "right":
		m.active = (m.active + 1) % len(m.tabs)
		m.banner = ""
		return m, m.loadTab(m.tabs[m.active])

	case "shift+tab", "left":
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		m.banner = ""
		return m, m.loadTab(m.tabs[m.active])

	case "r":
		// Manual refresh of the active tab.
		return m, m.loadTab(m.tabs[m.active])
	}

	switch m.tabs[m.active] {
	case tabMyReports:
		return m.updateMyReports(msg)
	case tabPublicFeed:
		return m.updateCursorList(msg, tabPublicFeed, len(m.public.data))
	case tabStaffReports:
		return m.updateStaffReports(msg)
	case tabUsers:
		return m.updateUsers(msg)
	case tabRequests:
		return m.updateRequests(msg)
	case tabFeedback:
		return m.updateFeedback(msg)
	case tabStats:
		return m.updateStats(msg)
	}
	return m, nil
}

// updateCursorList handles plain up/down navigation for list tabs.
func (m Model) updateCursorList(msg tea.KeyMsg, tab tabID, length int) (tea.Model, tea.Cmd) {
	cursor := m.cursors[tab]
	switch msg.String() {
	case "up", "k":
		if cursor > 0 {
			cursor--
		}
	case "down", "j":
		if cursor < length-1 {
			cursor++
		}
	}
	m.cursors[tab] = cursor
	return m, nil
}

// visibleMyReports applies the client-side filter to the fetched list.
// Pure recomputation on every render; the source list is never mutated.
func (m Model) visibleMyReports() []api.Report {
	return listview.Apply(m.myReports.data, m.trackFilter)
}

// staffPagination derives paginator state from the last staff page.
func (m Model) staffPagination() listview.Pagination {
	return listview.Paginate(m.staff.data.Total, m.perPage, m.staffPage, listview.DefaultWindowSize)
}
