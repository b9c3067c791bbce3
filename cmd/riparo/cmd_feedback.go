// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/cmd/riparo/config"
	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
)

func runFeedbackSend(cmd *cobra.Command, args []string) {
	requireLogin()

	in := api.FeedbackInput{
		Subject:      subjectFlag,
		Message:      messageFlag,
		Anonymous:    anonymousFlag,
		ContactEmail: contactFlag,
		ReportID:     reportRefFlag,
	}
	if in.Message == "" && interactive() {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Subject (optional)").Value(&in.Subject),
			huh.NewText().Title("Your feedback").Value(&in.Message),
			huh.NewConfirm().Title("Send anonymously?").Value(&in.Anonymous),
			huh.NewInput().Title("Contact email (ignored when anonymous)").Value(&in.ContactEmail),
		))
		if err := form.Run(); err != nil {
			fail(err)
		}
	}
	if err := checkInput(in); err != nil {
		fail(err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	if err := client.SendFeedback(ctx, in); err != nil {
		fail(err)
	}
	if in.Anonymous {
		fmt.Println("Feedback sent anonymously. Thank you.")
	} else {
		fmt.Println("Feedback sent. Thank you.")
	}
}

func runFeedbackList(cmd *cobra.Command, args []string) {
	requireLogin()
	ctx, cancel := commandContext()
	defer cancel()

	perPage := config.Global.UI.PerPage
	page, err := client.FeedbackList(ctx, api.FeedbackQuery{Page: pageFlag, PerPage: perPage})
	if err != nil {
		fail(err)
	}
	if len(page.Items) == 0 {
		fmt.Println("No feedback.")
		return
	}
	for _, feedback := range page.Items {
		from := feedback.ContactEmail
		if feedback.Anonymous || from == "" {
			from = "anonymous"
		}
		subject := feedback.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Printf("#%d  %s  %s  %s\n", feedback.ID, feedback.CreatedAt.Format("2006-01-02"), from, subject)
		fmt.Printf("    %s\n", feedback.Message)
		if feedback.ReportID != "" {
			fmt.Printf("    about report %s\n", feedback.ReportID)
		}
	}
	fmt.Printf("\nPage %d of %d (%d total).\n",
		listview.Clamp(pageFlag, listview.TotalPages(page.Total, perPage)),
		listview.TotalPages(page.Total, perPage), page.Total)
}
