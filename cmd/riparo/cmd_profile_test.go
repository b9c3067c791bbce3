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
)

// Test --set parsing into a change map.
func TestParseSetFlags(t *testing.T) {
	changes, err := parseSetFlags([]string{
		"barangay=Mabini",
		"zone=Purok 4",
		"mobile_number=+639171234567",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"barangay":      "Mabini",
		"zone":          "Purok 4",
		"mobile_number": "+639171234567",
	}, changes)
}

// Test that non-whitelisted fields are refused with guidance.
func TestParseSetFlags_UnknownField(t *testing.T) {
	_, err := parseSetFlags([]string{"role=mayor"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"role"`)
	assert.Contains(t, err.Error(), "barangay")
}

// Test the malformed-flag path and the empty case.
func TestParseSetFlags_Malformed(t *testing.T) {
	_, err := parseSetFlags([]string{"barangay"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field=value")

	changes, err := parseSetFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

// Test that values containing = survive the split.
func TestParseSetFlags_ValueWithEquals(t *testing.T) {
	changes, err := parseSetFlags([]string{"zone=Blk 3 = Lot 7"})
	require.NoError(t, err)
	assert.Equal(t, "Blk 3 = Lot 7", changes["zone"])
}
