// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/CremaCrem/RIPARO-sub000/cmd/riparo/config"
	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
	"github.com/CremaCrem/RIPARO-sub000/pkg/cache"
	"github.com/CremaCrem/RIPARO-sub000/pkg/logging"
	"github.com/CremaCrem/RIPARO-sub000/pkg/session"
)

// Shared process state, wired once in initApp before any command runs.
var (
	logger       *logging.Logger
	sessionStore *session.FileStore
	client       *api.Client
)

// initApp loads the config, installs the logger, and restores the saved
// session. Every command goes through here via PersistentPreRun.
func initApp() {
	if err := config.Load(); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.Global

	logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		LogDir: cfg.Logging.LogDir,
		JSON:   cfg.Logging.JSON,
	})
	slog.SetDefault(logger.Slog())

	store, err := session.Open(cfg.Storage.SessionDir)
	if err != nil {
		logger.Error("open session store", "error", err)
		os.Exit(1)
	}
	sessionStore = store

	client = api.New(cfg.Backend.BaseURL, sessionStore,
		api.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second))
}

func shutdownApp() {
	if logger != nil {
		_ = logger.Close()
	}
}

// requireLogin exits with guidance when no session is stored. It does not
// pre-validate the token; an expired token surfaces as a backend 401.
func requireLogin() api.User {
	user, ok := sessionStore.User()
	if !ok {
		fmt.Fprintln(os.Stderr, "You are not logged in. Run: riparo login")
		os.Exit(1)
	}
	return user
}

// openCache opens the offline report cache, or returns nil when caching
// is disabled or unavailable. Commands treat a nil cache as "no fallback".
func openCache() *cache.Store {
	path := config.Global.Storage.CachePath
	if path == "" {
		return nil
	}
	store, err := cache.Open(config.ExpandPath(path))
	if err != nil {
		logger.Warn("report cache unavailable", "error", err)
		return nil
	}
	return store
}

// commandContext bounds a whole command invocation, not a single request;
// per-request timeouts live in the api client.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Minute)
}

// fail prints an actionable error and exits. api.Error values carry their
// own remediation text; anything else prints as-is.
func fail(err error) {
	if apiErr, ok := api.AsError(err); ok {
		fmt.Fprintln(os.Stderr, "Error:", apiErr.FullError())
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}

// interactive reports whether we may open huh forms.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
