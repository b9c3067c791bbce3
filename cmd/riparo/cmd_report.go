// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/cmd/riparo/config"
	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
)

func runReportSubmit(cmd *cobra.Command, args []string) {
	requireLogin()

	in := api.ReportInput{
		SubmitterName: submitterFlag,
		Age:           ageFlag,
		Gender:        genderFlag,
		Address:       addressFlag,
		Type:          typeFlag,
		Description:   descriptionFlag,
	}
	if needsReportForm(in) && interactive() {
		if err := reportForm(&in); err != nil {
			fail(err)
		}
	}
	if err := checkInput(in); err != nil {
		fail(err)
	}

	// Stage photo previews; each selection creates one temp copy, and all
	// of them are removed when the command exits.
	var previews previewSet
	defer previews.Close()
	var photos []api.FilePart
	for _, path := range photoFlags {
		staged, err := previews.Add(path)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Attached %s (preview at %s)\n", path, staged)
		photos = append(photos, api.FilePart{Field: "photos[]", Path: path})
	}

	ctx, cancel := commandContext()
	defer cancel()
	report, err := client.CreateReport(ctx, in, photos)
	if err != nil {
		fail(err)
	}
	if store := openCache(); store != nil {
		defer store.Close()
		_ = store.Put(report)
	}
	fmt.Printf("Report filed: %s (status %s)\n", report.ReportID, listview.StatusLabel(report.Progress))
}

func needsReportForm(in api.ReportInput) bool {
	return in.SubmitterName == "" || in.Address == "" || in.Type == "" || in.Description == ""
}

func reportForm(in *api.ReportInput) error {
	age := ""
	if in.Age > 0 {
		age = strconv.Itoa(in.Age)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Who is this report about?").Value(&in.SubmitterName),
			huh.NewInput().Title("Age (optional)").Value(&age),
			huh.NewSelect[string]().Title("Gender (optional)").
				Options(
					huh.NewOption("Prefer not to say", ""),
					huh.NewOption("Male", "male"),
					huh.NewOption("Female", "female"),
					huh.NewOption("Other", "other"),
				).Value(&in.Gender),
		),
		huh.NewGroup(
			huh.NewInput().Title("Where did it happen?").Value(&in.Address),
			huh.NewInput().Title("Category (e.g. road_damage, flooding)").Value(&in.Type),
			huh.NewText().Title("Describe what happened").Value(&in.Description),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if age != "" {
		parsed, err := strconv.Atoi(age)
		if err != nil {
			return fmt.Errorf("age must be a number: %q", age)
		}
		in.Age = parsed
	}
	return nil
}

func runReportTrack(cmd *cobra.Command, args []string) {
	requireLogin()
	filter, err := filterFromFlags()
	if err != nil {
		fail(err)
	}

	ctx, cancel := commandContext()
	defer cancel()

	store := openCache()
	if store != nil {
		defer store.Close()
	}

	reports, err := client.MyReports(ctx)
	offline := false
	var syncedAt time.Time
	if err != nil {
		apiErr, ok := api.AsError(err)
		if !ok || apiErr.Kind != api.KindTransport || store == nil {
			fail(err)
		}
		cached, cacheErr := store.All()
		if cacheErr != nil || len(cached) == 0 {
			fail(err)
		}
		reports = cached
		offline = true
		syncedAt, _ = store.LastSynced()
	} else if store != nil {
		_ = store.PutAll(reports)
	}

	if offline {
		stamp := "unknown"
		if !syncedAt.IsZero() {
			stamp = syncedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("Backend unreachable; showing cached reports (last synced %s).\n\n", stamp)
	}

	visible := listview.Apply(reports, filter)
	if len(visible) == 0 {
		fmt.Println("No reports match.")
		return
	}
	for _, report := range visible {
		printReportLine(report)
	}
	if len(visible) != len(reports) {
		fmt.Printf("\n%d of %d reports shown.\n", len(visible), len(reports))
	}
}

// filterFromFlags builds the local filter for `report track`.
func filterFromFlags() (listview.Filter, error) {
	filter := listview.Filter{
		Status:   api.Progress(statusFlag),
		Category: typeFlag,
	}
	var err error
	if dateFromFlag != "" {
		if filter.DateFrom, err = time.ParseInLocation("2006-01-02", dateFromFlag, time.Local); err != nil {
			return listview.Filter{}, fmt.Errorf("bad --from date %q, want YYYY-MM-DD", dateFromFlag)
		}
	}
	if dateToFlag != "" {
		if filter.DateTo, err = time.ParseInLocation("2006-01-02", dateToFlag, time.Local); err != nil {
			return listview.Filter{}, fmt.Errorf("bad --to date %q, want YYYY-MM-DD", dateToFlag)
		}
	}
	return filter, nil
}

func runReportList(cmd *cobra.Command, args []string) {
	requireLogin()
	ctx, cancel := commandContext()
	defer cancel()

	perPage := config.Global.UI.PerPage

	if allPagesFlag {
		pager := api.NewPager[api.Report](api.DefaultPerPage, api.DefaultMaxPages)
		count := 0
		truncated, err := pager.Each(ctx,
			func(ctx context.Context, page, pageSize int) (api.Page[api.Report], error) {
				return client.Reports(ctx, api.ReportQuery{
					Status: api.Progress(statusFlag), Type: typeFlag,
					DateFrom: dateFromFlag, DateTo: dateToFlag,
					Page: page, PerPage: pageSize,
				})
			},
			func(report api.Report) {
				printReportLine(report)
				count++
			})
		if err != nil {
			fail(err)
		}
		fmt.Printf("\n%d reports.\n", count)
		if truncated {
			fmt.Println("Listing stopped at the page ceiling; narrow the filters to see the rest.")
		}
		return
	}

	page, err := client.Reports(ctx, api.ReportQuery{
		Status: api.Progress(statusFlag), Type: typeFlag,
		DateFrom: dateFromFlag, DateTo: dateToFlag,
		Page: pageFlag, PerPage: perPage,
	})
	if err != nil {
		fail(err)
	}
	for _, report := range page.Items {
		printReportLine(report)
	}
	fmt.Printf("\nPage %d of %d (%d reports total).\n",
		listview.Clamp(pageFlag, listview.TotalPages(page.Total, perPage)),
		listview.TotalPages(page.Total, perPage), page.Total)
}

func runReportShow(cmd *cobra.Command, args []string) {
	requireLogin()
	ctx, cancel := commandContext()
	defer cancel()

	report, err := resolveReport(ctx, args[0])
	if err != nil {
		fail(err)
	}
	printReportDetail(report)
}

// resolveReport accepts either the backend's numeric id or the
// human-readable RPT reference. References are matched against the
// caller's own reports; staff address reports by numeric id.
func resolveReport(ctx context.Context, ref string) (api.Report, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return client.Report(ctx, id)
	}
	reports, err := client.MyReports(ctx)
	if err != nil {
		return api.Report{}, err
	}
	for _, report := range reports {
		if strings.EqualFold(report.ReportID, ref) {
			return report, nil
		}
	}
	return api.Report{}, fmt.Errorf("no report %q among your reports", ref)
}

func runReportProgress(cmd *cobra.Command, args []string) {
	requireLogin()
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail(fmt.Errorf("report-id must be numeric, got %q", args[0]))
	}
	next := api.Progress(args[1])
	switch next {
	case api.ProgressPending, api.ProgressInReview, api.ProgressAssigned,
		api.ProgressResolved, api.ProgressRejected:
	default:
		fail(fmt.Errorf("unknown status %q; use pending, in_review, assigned, resolved, or rejected", args[1]))
	}

	ctx, cancel := commandContext()
	defer cancel()
	report, err := client.SetProgress(ctx, id, next)
	if err != nil {
		fail(err)
	}
	if store := openCache(); store != nil {
		defer store.Close()
		_ = store.Put(report)
	}
	fmt.Printf("%s is now %s.\n", report.ReportID, listview.StatusLabel(report.Progress))
}

func runReportPhotos(cmd *cobra.Command, args []string) {
	requireLogin()
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail(fmt.Errorf("report-id must be numeric, got %q", args[0]))
	}
	var photos []api.FilePart
	for _, path := range args[1:] {
		if _, err := os.Stat(path); err != nil {
			fail(fmt.Errorf("photo %s: %w", path, err))
		}
		photos = append(photos, api.FilePart{Path: path})
	}

	ctx, cancel := commandContext()
	defer cancel()
	report, err := client.UploadResolutionPhotos(ctx, id, photos, resolveFlag)
	if err != nil {
		fail(err)
	}
	if store := openCache(); store != nil {
		defer store.Close()
		_ = store.Put(report)
	}
	if resolveFlag {
		fmt.Printf("%s resolved with %d photo(s).\n", report.ReportID, len(photos))
	} else {
		fmt.Printf("Attached %d photo(s) to %s.\n", len(photos), report.ReportID)
	}
}

// =============================================================================
// Output Helpers
// =============================================================================

func printReportLine(report api.Report) {
	fmt.Printf("%-12s %-12s %-20s %s  %s\n",
		report.ReportID,
		listview.StatusLabel(report.Progress),
		listview.CategoryLabel(report.Type),
		report.CreatedAt.Format("2006-01-02"),
		report.Address,
	)
}

func printReportDetail(report api.Report) {
	fmt.Printf("%s  [%s]\n", report.ReportID, listview.StatusLabel(report.Progress))
	fmt.Printf("Category:  %s\n", listview.CategoryLabel(report.Type))
	fmt.Printf("About:     %s", report.SubmitterName)
	if report.Age > 0 {
		fmt.Printf(", %d", report.Age)
	}
	if report.Gender != "" {
		fmt.Printf(", %s", report.Gender)
	}
	fmt.Println()
	fmt.Printf("Address:   %s\n", report.Address)
	fmt.Printf("Filed:     %s\n", report.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("\n%s\n", report.Description)
	if len(report.Photos) > 0 {
		fmt.Println("\nPhotos:")
		for _, photo := range report.Photos {
			fmt.Println("  " + client.AssetURL(photo))
		}
	}
	if len(report.ResolutionPhotos) > 0 {
		fmt.Println("\nResolution photos:")
		for _, photo := range report.ResolutionPhotos {
			fmt.Println("  " + client.AssetURL(photo))
		}
	}
}
