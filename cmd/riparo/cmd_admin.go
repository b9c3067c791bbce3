// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

func runUsersList(cmd *cobra.Command, args []string) {
	requireLogin()
	ctx, cancel := commandContext()
	defer cancel()

	users, err := client.Users(ctx, "pending")
	if err != nil {
		fail(err)
	}
	if len(users) == 0 {
		fmt.Println("No registrations waiting for verification.")
		return
	}
	for _, user := range users {
		fmt.Printf("#%-6d %-24s %-28s %s/%s\n",
			user.ID, user.FullName(), user.Email, user.Barangay, user.Zone)
		if user.IDDocumentPath != "" {
			fmt.Printf("        ID document: %s\n", client.AssetURL(user.IDDocumentPath))
		} else {
			fmt.Println("        no ID document on file")
		}
	}
	fmt.Printf("\n%d pending.\n", len(users))
}

func runUsersVerify(cmd *cobra.Command, args []string) {
	requireLogin()
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail(fmt.Errorf("user-id must be numeric, got %q", args[0]))
	}
	action := api.ActionVerify
	if rejectFlag {
		action = api.ActionReject
	}

	ctx, cancel := commandContext()
	defer cancel()
	if err := client.SetVerification(ctx, id, action); err != nil {
		fail(err)
	}
	logger.Info("verification recorded", "user_id", id, "action", action)
	if rejectFlag {
		fmt.Printf("Registration #%d rejected.\n", id)
	} else {
		fmt.Printf("Account #%d verified; the citizen can now log in.\n", id)
	}
}

func runRequestsList(cmd *cobra.Command, args []string) {
	requireLogin()
	ctx, cancel := commandContext()
	defer cancel()

	requests, err := client.UpdateRequests(ctx, "pending")
	if err != nil {
		fail(err)
	}
	if len(requests) == 0 {
		fmt.Println("No pending profile update requests.")
		return
	}
	for _, request := range requests {
		fmt.Printf("#%-6d %s (%s)\n", request.ID, request.User.FullName(), request.CreatedAt.Format("2006-01-02"))
		fields := make([]string, 0, len(request.Changes))
		for field := range request.Changes {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("        %s -> %s\n", field, request.Changes[field])
		}
		if request.IDDocumentPath != "" {
			fmt.Printf("        ID document: %s\n", client.AssetURL(request.IDDocumentPath))
		}
	}
	fmt.Printf("\n%d pending.\n", len(requests))
}

func runRequestsReview(cmd *cobra.Command, args []string) {
	requireLogin()
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail(fmt.Errorf("request-id must be numeric, got %q", args[0]))
	}
	action := api.ReviewApprove
	if rejectFlag {
		action = api.ReviewReject
	}

	ctx, cancel := commandContext()
	defer cancel()
	if err := client.ReviewUpdateRequest(ctx, id, action); err != nil {
		fail(err)
	}
	logger.Info("update request reviewed", "request_id", id, "action", action)
	if rejectFlag {
		fmt.Printf("Update request #%d rejected.\n", id)
	} else {
		fmt.Printf("Update request #%d approved; the profile change is applied.\n", id)
	}
}
