// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
)

// detailView is the report detail overlay.
//
// report always holds the last server-confirmed state; selected is the
// locally chosen next status. Save is enabled exactly when the two
// differ, which is what prevents redundant no-op writes, and the gate
// re-engages the moment the server confirms the new value.
type detailView struct {
	report   api.Report
	editable bool
	selected api.Progress
	saving   bool
}

func newDetailView(report api.Report, editable bool) *detailView {
	return &detailView{
		report:   report,
		editable: editable && !report.Progress.Terminal(),
		selected: report.Progress,
	}
}

// apply installs a server-confirmed report, resetting the dirty gate.
func (d *detailView) apply(report api.Report) {
	d.report = report
	d.selected = report.Progress
	d.saving = false
	if report.Progress.Terminal() {
		d.editable = false
	}
}

// dirty reports whether the selection differs from the confirmed status.
func (d *detailView) dirty() bool {
	return d.selected != d.report.Progress
}

// options are the statuses the picker cycles through: the confirmed
// status plus every transition the lifecycle allows from it.
func (d *detailView) options() []api.Progress {
	return append([]api.Progress{d.report.Progress}, d.report.Progress.NextStates()...)
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	switch msg.String() {
	case "esc", "q":
		if !d.saving {
			m.detail = nil
		}
		return m, nil

	case "left", "h", "right", "l":
		if !d.editable || d.saving {
			return m, nil
		}
		options := d.options()
		index := 0
		for i, option := range options {
			if option == d.selected {
				index = i
			}
		}
		if msg.String() == "left" || msg.String() == "h" {
			index = (index - 1 + len(options)) % len(options)
		} else {
			index = (index + 1) % len(options)
		}
		d.selected = options[index]
		return m, nil

	case "enter":
		// The dirty gate: no request unless the selection changed.
		if !d.editable || d.saving || !d.dirty() {
			return m, nil
		}
		d.saving = true
		m.banner = ""
		return m, m.saveProgressCmd(d.report.ID, d.selected)
	}
	return m, nil
}

func (m Model) viewDetail() string {
	d := m.detail
	r := d.report

	var b strings.Builder
	b.WriteString(titleStyle.Render("Report "+r.ReportID) + "  " + statusPill(r.Progress))
	b.WriteString("\n\n")
	b.WriteString(timeline(r.Progress))
	b.WriteString("\n\n")

	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render(label+":"), value)
		}
	}
	write("Submitted by", r.SubmitterName)
	if r.Age > 0 {
		write("Age", fmt.Sprintf("%d", r.Age))
	}
	write("Gender", r.Gender)
	write("Address", r.Address)
	write("Category", listview.CategoryLabel(r.Type))
	write("Filed", r.CreatedAt.Format("2006-01-02 15:04"))
	b.WriteString("\n")
	b.WriteString(r.Description)
	b.WriteString("\n")

	if len(r.Photos) > 0 {
		b.WriteString("\n" + mutedStyle.Render("Photos:") + "\n")
		for _, photo := range r.Photos {
			b.WriteString("  " + m.client.AssetURL(photo) + "\n")
		}
	}
	if len(r.ResolutionPhotos) > 0 {
		b.WriteString("\n" + mutedStyle.Render("Resolution photos:") + "\n")
		for _, photo := range r.ResolutionPhotos {
			b.WriteString("  " + m.client.AssetURL(photo) + "\n")
		}
	}

	if d.editable {
		b.WriteString("\n")
		var picker []string
		for _, option := range d.options() {
			label := listview.StatusLabel(option)
			if option == d.selected {
				picker = append(picker, boldStyle.Render("▸ "+label))
			} else {
				picker = append(picker, mutedStyle.Render("  "+label))
			}
		}
		b.WriteString(strings.Join(picker, "   "))
		b.WriteString("\n\n")

		switch {
		case d.saving:
			b.WriteString(m.spinner.View() + " saving…")
		case d.dirty():
			b.WriteString(noticeStyle.Render("[Enter] Save") + footerStyle.Render("  ←/→ choose status  [Esc] Close"))
		default:
			b.WriteString(mutedStyle.Render("[Enter] Save (no change)") + footerStyle.Render("  ←/→ choose status  [Esc] Close"))
		}
	} else {
		b.WriteString("\n" + footerStyle.Render("[Esc] Close"))
	}

	return detailBoxStyle.Width(max(40, m.width-4)).Render(b.String())
}
