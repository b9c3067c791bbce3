// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempPhoto drops a small fake JPEG on disk.
func writeTempPhoto(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("\xff\xd8\xff fake jpeg bytes"), 0o644))
	return path
}

// Test that CreateReport sends every field and photo part.
func TestCreateReport_Multipart(t *testing.T) {
	photo := writeTempPhoto(t, "pothole.jpg")

	var contentType string
	var fields map[string][]string
	var fileNames []string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(16<<20))
		fields = r.MultipartForm.Value
		for _, headers := range r.MultipartForm.File {
			for _, header := range headers {
				fileNames = append(fileNames, header.Filename)
			}
		}
		w.Write([]byte(`{"id": 1, "report_id": "RPT-0001", "progress": "pending"}`))
	})

	in := ReportInput{
		SubmitterName: "Juan Dela Cruz",
		Age:           34,
		Address:       "Zone 2, Barangay Uno",
		Type:          "road_damage",
		Description:   "Large pothole near the school.",
	}
	report, err := client.CreateReport(context.Background(), in, []FilePart{{Path: photo}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data"))
	assert.Equal(t, "Juan Dela Cruz", fields["submitter_name"][0])
	assert.Equal(t, "34", fields["age"][0])
	assert.Equal(t, "road_damage", fields["type"][0])
	assert.Equal(t, []string{"pothole.jpg"}, fileNames)
	assert.Equal(t, "RPT-0001", report.ReportID)
}

// Test that empty optional fields are omitted from the form entirely.
func TestCreateReport_OmitsEmptyFields(t *testing.T) {
	var fields map[string][]string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(16<<20))
		fields = r.MultipartForm.Value
		w.Write([]byte(`{"id": 2, "report_id": "RPT-0002", "progress": "pending"}`))
	})

	in := ReportInput{
		SubmitterName: "Juan",
		Address:       "Zone 2",
		Type:          "flooding",
		Description:   "Knee-deep water.",
	}
	_, err := client.CreateReport(context.Background(), in, nil)
	require.NoError(t, err)

	assert.NotContains(t, fields, "gender")
	assert.NotContains(t, fields, "age")
}

// Test that a missing photo file fails before any request is sent.
func TestCreateReport_MissingPhotoFile(t *testing.T) {
	requested := false
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	in := ReportInput{SubmitterName: "J", Address: "Z", Type: "t", Description: "d"}
	_, err := client.CreateReport(context.Background(), in, []FilePart{{Path: "/no/such/photo.jpg"}})
	require.Error(t, err)
	assert.False(t, requested)
}

// Test that mark_resolved rides along with resolution photo uploads.
func TestUploadResolutionPhotos_MarkResolved(t *testing.T) {
	photo := writeTempPhoto(t, "fixed.jpg")

	var fields map[string][]string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(16<<20))
		fields = r.MultipartForm.Value
		w.Write([]byte(`{"id": 3, "report_id": "RPT-0003", "progress": "resolved"}`))
	})

	report, err := client.UploadResolutionPhotos(context.Background(), 3, []FilePart{{Path: photo}}, true)
	require.NoError(t, err)
	assert.Equal(t, "1", fields["mark_resolved"][0])
	assert.Equal(t, ProgressResolved, report.Progress)
}
