// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Test the portal-to-role mapping, including the staff alias.
func TestRoleForPortal(t *testing.T) {
	tests := []struct {
		portal string
		role   api.Role
		ok     bool
	}{
		{"citizen", api.RoleCitizen, true},
		{"admin", api.RoleAdmin, true},
		{"staff", api.RoleAdmin, true},
		{"mayor", api.RoleMayor, true},
		{"superuser", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		role, ok := roleForPortal(tt.portal)
		assert.Equal(t, tt.ok, ok, tt.portal)
		assert.Equal(t, tt.role, role, tt.portal)
	}
}

// Test that the mismatch message names the portal the account belongs to.
func TestPortalMismatchMessage(t *testing.T) {
	msg := portalMismatchMessage("admin", api.RoleCitizen)
	assert.Contains(t, msg, "citizen account")
	assert.Contains(t, msg, "--portal citizen")

	msg = portalMismatchMessage("citizen", api.RoleMayor)
	assert.Contains(t, msg, "--portal mayor")

	msg = portalMismatchMessage("mayor", api.RoleAdmin)
	assert.Contains(t, msg, "not the mayor's office")
}

// Test that checkInput mirrors the backend's field error shape.
func TestCheckInput_FieldErrors(t *testing.T) {
	err := checkInput(api.SignupInput{
		FirstName: "Ana",
		Email:     "not-an-email",
		Password:  "short",
	})
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, api.KindFields, apiErr.Kind)
	assert.Equal(t, "must be a valid email address", apiErr.Fields["email"])
	assert.Equal(t, "must be at least 8 characters", apiErr.Fields["password"])
	assert.Equal(t, "required", apiErr.Fields["last_name"])
	assert.Equal(t, "required", apiErr.Fields["barangay"])
	assert.NotContains(t, apiErr.Fields, "first_name")
}

// Test that the signup notice defers login instead of attempting one:
// the email is handed back as a ready-to-run command, never a password.
func TestSignupNotice(t *testing.T) {
	notice := signupNotice("ana@example.ph")
	assert.Contains(t, notice, "pending verification")
	assert.Contains(t, notice, "riparo login --email ana@example.ph")
	assert.NotContains(t, notice, "--password")
}

// Test the wire-name conversion used for untagged struct fields.
func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "first_name", snakeCase("FirstName"))
	assert.Equal(t, "mobile_number", snakeCase("MobileNumber"))
	assert.Equal(t, "report_id", snakeCase("ReportID"))
	assert.Equal(t, "zone", snakeCase("Zone"))
}

// Test that a valid input passes clean.
func TestCheckInput_Valid(t *testing.T) {
	assert.NoError(t, checkInput(api.Credentials{
		Email:    "ana@example.ph",
		Password: "s3cret-enough",
	}))
}

// Test the optional rules: empty is fine, malformed is not.
func TestCheckInput_OptionalRules(t *testing.T) {
	in := api.ReportInput{
		SubmitterName: "Ana Reyes",
		Address:       "Zone 4, Barangay Mabini",
		Type:          "flooding",
		Description:   "Knee-deep water on the main road.",
	}
	assert.NoError(t, checkInput(in), "age and gender are optional")

	in.Gender = "unknown"
	err := checkInput(in)
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Contains(t, apiErr.Fields["gender"], "must be one of")

	in.Gender = ""
	in.Age = 200
	err = checkInput(in)
	require.Error(t, err)
	apiErr, ok = api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "out of range", apiErr.Fields["age"])
}
