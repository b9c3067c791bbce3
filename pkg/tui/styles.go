// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import "github.com/charmbracelet/lipgloss"

// RIPARO civic palette - barangay hall greens with LGU gold accents.
var (
	colorGreenBright  = lipgloss.Color("#3DDC97") // success, resolved
	colorGreenPrimary = lipgloss.Color("#2BA84A") // brand
	colorGold         = lipgloss.Color("#F2C14E") // pending, highlights
	colorSky          = lipgloss.Color("#4EA5D9") // in review, links
	colorViolet       = lipgloss.Color("#8D6CAB") // assigned
	colorError        = lipgloss.Color("#E74C3C")
	colorMuted        = lipgloss.Color("#5C6B73")
	colorFaint        = lipgloss.Color("241")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreenPrimary)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreenBright).
			Underline(true).
			Padding(0, 2)

	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	noticeStyle = lipgloss.NewStyle().Foreground(colorGreenBright)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorFaint)
	boldStyle   = lipgloss.NewStyle().Bold(true)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreenPrimary).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().Foreground(colorFaint)
)

// barPalette colors chart bars by position. The category set is open, so
// colors cycle rather than being looked up by name.
var barPalette = []lipgloss.Color{
	colorGreenPrimary, colorSky, colorGold, colorViolet,
	colorGreenBright, colorError, colorMuted,
}
