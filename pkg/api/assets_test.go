// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test asset path resolution against the bare origin.
func TestResolveAsset(t *testing.T) {
	origin := "https://riparo.example.gov"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"rooted path", "/storage/photos/a.jpg", "https://riparo.example.gov/storage/photos/a.jpg"},
		{"bare relative path", "storage/photos/a.jpg", "https://riparo.example.gov/storage/photos/a.jpg"},
		{"absolute http passes through", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"absolute https passes through", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAsset(origin, tt.path))
		})
	}
}

// Test that a trailing slash on the origin does not double up.
func TestResolveAsset_TrailingSlashOrigin(t *testing.T) {
	got := ResolveAsset("https://riparo.example.gov/", "/storage/a.jpg")
	assert.Equal(t, "https://riparo.example.gov/storage/a.jpg", got)
}

// Test that AssetURL never routes assets under the /api prefix.
func TestClient_AssetURLSkipsAPIPrefix(t *testing.T) {
	client := New("https://riparo.example.gov", StaticToken(""))
	assert.Equal(t, "https://riparo.example.gov/storage/a.jpg", client.AssetURL("/storage/a.jpg"))
}
