// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Test the happy path: idle -> loading -> ready.
func TestPanel_LoadCycle(t *testing.T) {
	var p panel[[]string]
	assert.Equal(t, panelIdle, p.state)

	gen := p.begin()
	assert.True(t, p.loading())

	applied := p.resolve(gen, []string{"a", "b"}, nil)
	require.True(t, applied)
	assert.Equal(t, panelReady, p.state)
	assert.Equal(t, []string{"a", "b"}, p.data)
	assert.True(t, p.hasData)
	assert.Nil(t, p.err)
}

// Test that an out-of-order response is discarded: when two loads are in
// flight, only the later one may apply, regardless of arrival order.
func TestPanel_StaleGenerationDropped(t *testing.T) {
	var p panel[[]string]
	first := p.begin()
	second := p.begin()

	// The newer request resolves first.
	require.True(t, p.resolve(second, []string{"new"}, nil))
	// The older request straggles in afterwards and must be dropped.
	assert.False(t, p.resolve(first, []string{"old"}, nil))

	assert.Equal(t, []string{"new"}, p.data)
	assert.Equal(t, panelReady, p.state)
}

// Test that a failed refresh keeps the previously rendered data.
func TestPanel_FailureRetainsData(t *testing.T) {
	var p panel[[]string]
	require.True(t, p.resolve(p.begin(), []string{"kept"}, nil))

	gen := p.begin()
	require.True(t, p.resolve(gen, nil, &api.Error{Kind: api.KindTransport, Message: "down"}))

	assert.Equal(t, panelFailed, p.state)
	assert.Equal(t, []string{"kept"}, p.data, "stale data must survive a failure")
	assert.True(t, p.hasData)
	require.NotNil(t, p.err)
	assert.Equal(t, "down", p.err.Message)
}

// Test that a successful reload clears a previous error.
func TestPanel_RecoveryClearsError(t *testing.T) {
	var p panel[[]string]
	require.True(t, p.resolve(p.begin(), nil, fmt.Errorf("plain failure")))
	assert.Equal(t, panelFailed, p.state)
	require.NotNil(t, p.err)

	require.True(t, p.resolve(p.begin(), []string{"back"}, nil))
	assert.Equal(t, panelReady, p.state)
	assert.Nil(t, p.err)
	assert.Empty(t, p.errorLine())
}

// Test that non-api errors are wrapped rather than lost.
func TestPanel_PlainErrorWrapped(t *testing.T) {
	var p panel[int]
	require.True(t, p.resolve(p.begin(), 0, fmt.Errorf("socket closed")))
	require.NotNil(t, p.err)
	assert.Equal(t, api.KindTransport, p.err.Kind)
	assert.Equal(t, "socket closed", p.err.Message)
}

// Test that a stale error is dropped just like stale data.
func TestPanel_StaleErrorDropped(t *testing.T) {
	var p panel[int]
	first := p.begin()
	second := p.begin()

	require.True(t, p.resolve(second, 7, nil))
	assert.False(t, p.resolve(first, 0, fmt.Errorf("too late")))
	assert.Equal(t, panelReady, p.state)
	assert.Nil(t, p.err)
}
