// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test level parsing with the Info default.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"), "unknown levels default to info")
}

// Test that LogDir enables a dated JSON file sink.
func TestNew_FileSink(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{Level: LevelInfo, LogDir: dir, Quiet: true})
	logger.Info("session restored", "user_id", 7)
	require.NoError(t, logger.Close())

	name := "riparo_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "session restored", record["msg"])
	assert.Equal(t, "riparo", record["service"])
	assert.EqualValues(t, 7, record["user_id"])
}

// Test that level filtering applies to the file sink.
func TestNew_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{Level: LevelWarn, LogDir: dir, Quiet: true})
	logger.Debug("noise")
	logger.Info("noise")
	logger.Warn("kept")
	require.NoError(t, logger.Close())

	name := "riparo_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "kept")
}

// Test that an unwritable log dir degrades instead of failing.
func TestNew_DegradesWithoutFile(t *testing.T) {
	logger := New(Config{Level: LevelInfo, LogDir: "/proc/no-such-dir/logs"})
	assert.NotNil(t, logger.Slog())
	assert.NoError(t, logger.Close(), "no file handle to close")
}

// Test With carries attributes to the child.
func TestWith(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{Level: LevelInfo, LogDir: dir, Quiet: true})
	child := logger.With("request_id", "abc")
	child.Info("fetched")
	require.NoError(t, logger.Close())

	name := "riparo_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"request_id":"abc"`)
}
