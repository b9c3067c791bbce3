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

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// updatableFields is the whitelist of profile fields a citizen may ask
// staff to change. Email and role changes go through other channels.
var updatableFields = map[string]bool{
	"first_name":    true,
	"last_name":     true,
	"mobile_number": true,
	"barangay":      true,
	"zone":          true,
}

// parseSetFlags turns repeated --set field=value flags into a change map.
func parseSetFlags(flags []string) (map[string]string, error) {
	changes := make(map[string]string, len(flags))
	for _, flag := range flags {
		field, value, found := strings.Cut(flag, "=")
		if !found {
			return nil, fmt.Errorf("malformed --set %q: expected field=value", flag)
		}
		field = strings.TrimSpace(field)
		if !updatableFields[field] {
			names := make([]string, 0, len(updatableFields))
			for name := range updatableFields {
				names = append(names, name)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("field %q cannot be changed here; updatable fields: %s",
				field, strings.Join(names, ", "))
		}
		changes[field] = value
	}
	return changes, nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) {
	user := requireLogin()

	changes, err := parseSetFlags(setFlags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// With no flags, collect the changes interactively. Fields left at
	// their current value are not part of the request.
	if len(changes) == 0 && interactive() {
		edited := map[string]*string{
			"first_name":    &user.FirstName,
			"last_name":     &user.LastName,
			"mobile_number": &user.MobileNumber,
			"barangay":      &user.Barangay,
			"zone":          &user.Zone,
		}
		before := map[string]string{}
		for field, value := range edited {
			before[field] = *value
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("First name").Value(&user.FirstName),
			huh.NewInput().Title("Last name").Value(&user.LastName),
			huh.NewInput().Title("Mobile number (+63...)").Value(&user.MobileNumber),
			huh.NewInput().Title("Barangay").Value(&user.Barangay),
			huh.NewInput().Title("Zone / purok").Value(&user.Zone),
			huh.NewInput().Title("Path to a photo of your government ID").Value(&idDocumentFlag),
		))
		if err := form.Run(); err != nil {
			fail(err)
		}
		for field, value := range edited {
			if *value != before[field] {
				changes[field] = *value
			}
		}
	}
	if len(changes) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to change: pass --set field=value at least once.")
		os.Exit(1)
	}

	ctx, cancel := commandContext()
	defer cancel()
	if err := client.SubmitProfileUpdate(ctx, changes, api.FilePart{Path: idDocumentFlag}); err != nil {
		fail(err)
	}

	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	fmt.Printf("Update request submitted for %s. Staff will review it;\n", strings.Join(fields, ", "))
	fmt.Println("your profile keeps its current values until the request is approved.")
}
