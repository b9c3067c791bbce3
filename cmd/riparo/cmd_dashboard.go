// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/cmd/riparo/config"
	"github.com/CremaCrem/RIPARO-sub000/pkg/tui"
)

func runDashboard(cmd *cobra.Command, args []string) {
	requireLogin()
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "The dashboard needs a terminal; use the list commands when scripting.")
		os.Exit(1)
	}

	store := openCache()
	if store != nil {
		defer store.Close()
	}

	model := tui.New(tui.Deps{
		Client:  client,
		Session: sessionStore,
		Cache:   store,
		PerPage: config.Global.UI.PerPage,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fail(err)
	}
}
