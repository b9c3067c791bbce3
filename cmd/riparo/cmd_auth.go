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

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// roleForPortal maps the --portal flag to the role the backend must
// return for the login to be accepted.
func roleForPortal(portal string) (api.Role, bool) {
	switch portal {
	case "citizen":
		return api.RoleCitizen, true
	case "admin", "staff":
		return api.RoleAdmin, true
	case "mayor":
		return api.RoleMayor, true
	default:
		return "", false
	}
}

// portalMismatchMessage tells the user which door to use instead. Each
// portal gets its own wording so the guidance is actually followable.
func portalMismatchMessage(portal string, actual api.Role) string {
	switch portal {
	case "admin", "staff":
		return fmt.Sprintf("This account is a %s account, not municipal staff. Use --portal %s.", actual, actual)
	case "mayor":
		return fmt.Sprintf("This account is a %s account, not the mayor's office. Use --portal %s.", actual, actual)
	default:
		return fmt.Sprintf("This is a %s account. Log in with --portal %s.", actual, actual)
	}
}

func runLogin(cmd *cobra.Command, args []string) {
	expectedRole, ok := roleForPortal(portalFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown portal %q: use citizen, admin, or mayor.\n", portalFlag)
		os.Exit(1)
	}

	creds := api.Credentials{Email: emailFlag, Password: passwordFlag}
	if (creds.Email == "" || creds.Password == "") && interactive() {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&creds.Email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password),
		))
		if err := form.Run(); err != nil {
			fail(err)
		}
	}
	if err := checkInput(creds); err != nil {
		fail(err)
	}

	ctx, cancel := commandContext()
	defer cancel()

	session, err := client.Login(ctx, creds)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.Kind == api.KindVerification {
			// Pending and rejected accounts never get a session.
			fmt.Fprintln(os.Stderr, apiErr.FullError())
			os.Exit(1)
		}
		fail(err)
	}

	actualRole := session.User.Role
	if actualRole == "" {
		actualRole = api.RoleCitizen
	}
	if actualRole != expectedRole {
		// Valid credentials, wrong door. The token is discarded, nothing
		// is persisted, and the account stays logged out everywhere.
		fmt.Fprintln(os.Stderr, portalMismatchMessage(portalFlag, actualRole))
		os.Exit(1)
	}

	if err := sessionStore.Set(session); err != nil {
		fail(err)
	}
	logger.Info("login", "role", actualRole, "token_present", session.Token != "")
	fmt.Printf("Logged in as %s (%s portal).\n", session.User.FullName(), actualRole)
}

func runLogout(cmd *cobra.Command, args []string) {
	if err := sessionStore.Clear(); err != nil {
		fail(err)
	}
	// The offline cache holds the previous account's reports; drop it too.
	if store := openCache(); store != nil {
		defer store.Close()
		if err := store.Clear(); err != nil {
			logger.Warn("clear report cache", "error", err)
		}
	}
	fmt.Println("Logged out.")
}

func runSignup(cmd *cobra.Command, args []string) {
	if !interactive() {
		fmt.Fprintln(os.Stderr, "Signup needs an interactive terminal.")
		os.Exit(1)
	}

	var in api.SignupInput
	var idDocumentPath string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&in.FirstName),
			huh.NewInput().Title("Last name").Value(&in.LastName),
			huh.NewInput().Title("Email").Value(&in.Email),
			huh.NewInput().Title("Password (min. 8 characters)").
				EchoMode(huh.EchoModePassword).Value(&in.Password),
		),
		huh.NewGroup(
			huh.NewInput().Title("Mobile number (optional, +63...)").Value(&in.MobileNumber),
			huh.NewInput().Title("Barangay").Value(&in.Barangay),
			huh.NewInput().Title("Zone / purok").Value(&in.Zone),
			huh.NewInput().Title("Path to a photo of your government ID").Value(&idDocumentPath),
		),
	)
	if err := form.Run(); err != nil {
		fail(err)
	}
	if err := checkInput(in); err != nil {
		fail(err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	if err := client.Register(ctx, in, api.FilePart{Path: idDocumentPath}); err != nil {
		fail(err)
	}

	fmt.Print(signupNotice(in.Email))
}

// signupNotice is what a successful registration prints. It ends the
// command with exit status 0: registration never yields a token, and
// logging in before approval would only hit the verification gate, so the
// user gets a ready-to-run login line for later instead of an attempt now.
func signupNotice(email string) string {
	return "Registration submitted. Your account is pending verification by municipal staff;\n" +
		"you will be able to log in once it is approved.\n" +
		fmt.Sprintf("When it is, run: riparo login --email %s\n", email)
}

func runWhoami(cmd *cobra.Command, args []string) {
	user := requireLogin()
	role := user.Role
	if role == "" {
		role = api.RoleCitizen
	}
	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	fmt.Printf("Role: %s\n", role)
	if user.Barangay != "" {
		fmt.Printf("Barangay: %s", user.Barangay)
		if user.Zone != "" {
			fmt.Printf(", zone %s", user.Zone)
		}
		fmt.Println()
	}
}
