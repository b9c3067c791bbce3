// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package tui implements the role-scoped full-screen dashboards.

# Panel Loading Contract

Every data-bearing panel follows one state machine:

	idle ──trigger──► loading ──ok──► ready
	                     │
	                     └──fail──► failed

Triggers are the panel's tab becoming active or any of its dependencies
(filter, page, time range) changing. Two rules make the experience calm
under slow networks:

 1. Stale data stays visible. Entering loading or failed never clears
    already-rendered rows; a failure shows an inline error next to them.
 2. Responses apply only in order. Each load carries a monotonically
    increasing generation; a response stamped with anything but the
    panel's current generation is discarded. Without this, whichever of
    two in-flight requests resolved last would win regardless of which
    was issued last.
*/
package tui

import "github.com/CremaCrem/RIPARO-sub000/pkg/api"

// panelState is the loading lifecycle of one data-bearing panel.
type panelState int

const (
	panelIdle panelState = iota
	panelLoading
	panelReady
	panelFailed
)

// panel holds one collection plus its loading state.
//
// Not safe for concurrent use; bubbletea models are single-threaded by
// construction, all mutation happens inside Update.
type panel[T any] struct {
	state      panelState
	generation int
	data       T
	hasData    bool
	err        *api.Error
}

// begin transitions to loading and returns the generation to stamp on
// the fetch command. Existing data and error state are retained.
func (p *panel[T]) begin() int {
	p.generation++
	p.state = panelLoading
	return p.generation
}

// resolve applies a fetch result, returning false when the result was
// stale (its generation has been superseded) and was dropped.
func (p *panel[T]) resolve(generation int, data T, err error) bool {
	if generation != p.generation {
		return false
	}
	if err != nil {
		p.state = panelFailed
		if apiErr, ok := api.AsError(err); ok {
			p.err = apiErr
		} else {
			p.err = &api.Error{Kind: api.KindTransport, Message: err.Error()}
		}
		// Previous data stays on screen next to the error.
		return true
	}
	p.state = panelReady
	p.data = data
	p.hasData = true
	p.err = nil
	return true
}

func (p *panel[T]) loading() bool { return p.state == panelLoading }

// errorLine renders the panel's inline error, or "" when healthy.
func (p *panel[T]) errorLine() string {
	if p.err == nil {
		return ""
	}
	return errorStyle.Render("! " + p.err.Message)
}
