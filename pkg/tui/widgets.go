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

	"github.com/charmbracelet/lipgloss"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
)

// =============================================================================
// Status Pill
// =============================================================================

// statusPill renders a progress value as a colored badge.
func statusPill(p api.Progress) string {
	label := " " + listview.StatusLabel(p) + " "
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch p {
	case api.ProgressPending:
		style = style.Background(colorGold).Foreground(lipgloss.Color("#000000"))
	case api.ProgressInReview:
		style = style.Background(colorSky)
	case api.ProgressAssigned:
		style = style.Background(colorViolet)
	case api.ProgressResolved:
		style = style.Background(colorGreenPrimary)
	case api.ProgressRejected:
		style = style.Background(colorError)
	default:
		style = style.Background(colorMuted)
	}
	return style.Render(label)
}

// =============================================================================
// Progress Timeline
// =============================================================================

// timeline renders the lifecycle as a step indicator:
//
//	●──●──○──○   pending in_review assigned resolved
//
// A rejected report renders the steps reached plus a rejected marker,
// since rejection can branch off any non-terminal state.
func timeline(p api.Progress) string {
	steps := []api.Progress{
		api.ProgressPending, api.ProgressInReview, api.ProgressAssigned, api.ProgressResolved,
	}
	position := map[api.Progress]int{
		api.ProgressPending:  0,
		api.ProgressInReview: 1,
		api.ProgressAssigned: 2,
		api.ProgressResolved: 3,
	}

	reached, known := position[p]
	if p == api.ProgressRejected {
		// Best effort: rejection hides how far the report got, show the
		// first step reached plus the terminal marker.
		reached, known = 0, true
	}
	if !known {
		return mutedStyle.Render(string(p))
	}

	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			if i <= reached {
				b.WriteString(noticeStyle.Render("──"))
			} else {
				b.WriteString(mutedStyle.Render("──"))
			}
		}
		if i <= reached {
			b.WriteString(noticeStyle.Render("●"))
		} else {
			b.WriteString(mutedStyle.Render("○"))
		}
		_ = step
	}
	if p == api.ProgressRejected {
		b.WriteString(errorStyle.Render("  ✗ rejected"))
	}
	return b.String()
}

// =============================================================================
// Paginator
// =============================================================================

// paginatorBar renders the sliding page-button window:
//
//	« 1 …  4 [5] 6 7 8  … 20 »
func paginatorBar(p listview.Pagination) string {
	if p.TotalPages <= 1 {
		return ""
	}
	var parts []string
	parts = append(parts, mutedStyle.Render("«"))
	if p.LeadingGap {
		parts = append(parts, mutedStyle.Render("1"), mutedStyle.Render("…"))
	}
	for _, page := range p.Window {
		if page == p.Page {
			parts = append(parts, boldStyle.Render(fmt.Sprintf("[%d]", page)))
		} else {
			parts = append(parts, mutedStyle.Render(fmt.Sprintf("%d", page)))
		}
	}
	if p.TrailingGap {
		parts = append(parts, mutedStyle.Render("…"), mutedStyle.Render(fmt.Sprintf("%d", p.TotalPages)))
	}
	parts = append(parts, mutedStyle.Render("»"))
	return strings.Join(parts, " ")
}

// =============================================================================
// Bar Chart
// =============================================================================

// barChart renders horizontal category bars, widest bar scaled to width.
// Colors cycle through the palette by position: unknown categories still
// get a bar, the chart never assumes a closed category set.
func barChart(counts map[string]int, order []string, width int) string {
	if width < 10 {
		width = 10
	}
	max := 0
	for _, category := range order {
		if counts[category] > max {
			max = counts[category]
		}
	}
	if max == 0 {
		return mutedStyle.Render("no data in this window")
	}

	labelWidth := 0
	for _, category := range order {
		if l := len(listview.CategoryLabel(category)); l > labelWidth {
			labelWidth = l
		}
	}

	var b strings.Builder
	for i, category := range order {
		count := counts[category]
		barLen := count * width / max
		if count > 0 && barLen == 0 {
			barLen = 1
		}
		style := lipgloss.NewStyle().Foreground(barPalette[i%len(barPalette)])
		fmt.Fprintf(&b, "%-*s %s %d\n",
			labelWidth, listview.CategoryLabel(category),
			style.Render(strings.Repeat("█", barLen)),
			count,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
