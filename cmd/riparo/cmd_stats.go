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
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/listview"
	"github.com/CremaCrem/RIPARO-sub000/pkg/rollup"
)

const statsBarWidth = 40

func runStats(cmd *cobra.Command, args []string) {
	requireLogin()
	ctx, cancel := commandContext()
	defer cancel()

	rng := rollup.ParseRange(rangeFlag)
	result, err := rollup.Compute(ctx, client, rng, time.Now())
	if err != nil {
		// A partial rollup is still worth printing; say what's missing.
		if result.TotalReports == 0 {
			fail(err)
		}
		if apiErr, ok := api.AsError(err); ok {
			fmt.Fprintf(os.Stderr, "Warning: some counts are missing: %s\n\n", apiErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: some counts are missing: %v\n\n", err)
		}
	}

	fmt.Printf("Activity since %s (%s window)\n\n", result.DateFrom, rng)
	fmt.Printf("Reports:  %d total, %d open, %d assigned, %d resolved, %d rejected\n",
		result.TotalReports, result.Open, result.Assigned, result.Resolved, result.Rejected)
	fmt.Printf("Feedback: %d received\n", result.TotalFeedback)
	fmt.Printf("Queues:   %d accounts and %d update requests awaiting review\n",
		result.PendingUsers, result.PendingUpdateRequests)
	if result.Truncated {
		fmt.Println("\nNote: report counts stopped at the collection walk ceiling and undercount.")
	}

	if len(result.ByCategory) == 0 {
		return
	}
	fmt.Println("\nBy category:")

	categories := make([]string, 0, len(result.ByCategory))
	peak := 0
	for category, count := range result.ByCategory {
		categories = append(categories, category)
		if count > peak {
			peak = count
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		if result.ByCategory[categories[i]] != result.ByCategory[categories[j]] {
			return result.ByCategory[categories[i]] > result.ByCategory[categories[j]]
		}
		return categories[i] < categories[j]
	})

	labelWidth := 0
	for _, category := range categories {
		if l := len(listview.CategoryLabel(category)); l > labelWidth {
			labelWidth = l
		}
	}
	for _, category := range categories {
		count := result.ByCategory[category]
		barLen := count * statsBarWidth / peak
		if count > 0 && barLen == 0 {
			barLen = 1
		}
		fmt.Printf("  %-*s %s %d\n", labelWidth, listview.CategoryLabel(category),
			strings.Repeat("█", barLen), count)
	}
}
