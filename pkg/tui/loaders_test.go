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

	"github.com/CremaCrem/RIPARO-sub000/pkg/rollup"
)

// Test that a current-generation partial rollup failure keeps the counts
// and shows the error.
func TestHandleDataMsg_StatsPartialFailure(t *testing.T) {
	m := New(Deps{Session: staticSession{}})
	gen := m.stats.begin()

	partial := rollup.Result{TotalReports: 7}
	m, _, handled := m.handleDataMsg(statsMsg{gen: gen, result: partial, err: fmt.Errorf("users query failed")})
	require.True(t, handled)

	assert.Equal(t, panelFailed, m.stats.state)
	assert.Equal(t, 7, m.stats.data.TotalReports, "partial counts must survive the failure")
	require.NotNil(t, m.stats.err)
	assert.Equal(t, "users query failed", m.stats.err.Message)
}

// Test that a superseded partial-failure response is dropped entirely: no
// stale error banner, no stale counts, panel stays ready.
func TestHandleDataMsg_StatsStalePartialFailureDropped(t *testing.T) {
	m := New(Deps{Session: staticSession{}})
	stale := m.stats.begin()
	fresh := m.stats.begin()

	m, _, handled := m.handleDataMsg(statsMsg{gen: fresh, result: rollup.Result{TotalReports: 42}})
	require.True(t, handled)
	require.Equal(t, panelReady, m.stats.state)

	m, _, handled = m.handleDataMsg(statsMsg{gen: stale, result: rollup.Result{TotalReports: 7}, err: fmt.Errorf("old failure")})
	require.True(t, handled)

	assert.Equal(t, panelReady, m.stats.state, "a superseded response must not fail the panel")
	assert.Nil(t, m.stats.err)
	assert.Equal(t, 42, m.stats.data.TotalReports)
}

// Test the same discard on the clean-result path.
func TestHandleDataMsg_StatsStaleResultDropped(t *testing.T) {
	m := New(Deps{Session: staticSession{}})
	stale := m.stats.begin()
	fresh := m.stats.begin()

	m, _, _ = m.handleDataMsg(statsMsg{gen: fresh, result: rollup.Result{TotalReports: 42}})
	m, _, _ = m.handleDataMsg(statsMsg{gen: stale, result: rollup.Result{TotalReports: 7}})

	assert.Equal(t, 42, m.stats.data.TotalReports)
}
