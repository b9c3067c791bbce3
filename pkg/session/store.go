// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package session persists the authenticated state between command
invocations.

Two artifacts live under the state directory (default ~/.riparo): an
opaque bearer token in `token` and the cached profile in `profile.json`.
They are written together on login and removed together on logout. If the
profile fails to parse at load time the whole session is treated as absent
and both files are cleared; a half-session must never survive a corrupt
write.

Components depend on the Store interface, not on the file layout; the api
client only sees the TokenSource slice of it.
*/
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

const (
	tokenFile   = "token"
	profileFile = "profile.json"
)

// Store is the capability interface the rest of the program depends on.
type Store interface {
	// Token returns the persisted bearer token, or "" when logged out.
	Token() string

	// User returns the cached profile and whether a session exists.
	User() (api.User, bool)

	// Set persists a new session, replacing any existing one.
	Set(s api.Session) error

	// Clear removes the session. Idempotent.
	Clear() error
}

// FileStore implements Store on top of a state directory.
//
// Safe for concurrent use within one process; cross-process writers are
// not coordinated (the CLI is effectively single-user).
type FileStore struct {
	dir string

	mu      sync.RWMutex
	token   string
	user    api.User
	present bool
}

var _ Store = (*FileStore)(nil)
var _ api.TokenSource = (*FileStore)(nil)

// Open loads the session state from dir, creating dir if needed.
//
// An unparsable profile clears the stored session rather than failing:
// the user just has to log in again.
func Open(dir string) (*FileStore, error) {
	dir = expandHome(dir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir %s: %w", dir, err)
	}
	store := &FileStore{dir: dir}

	token, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}

	profile, err := os.ReadFile(filepath.Join(dir, profileFile))
	if err != nil {
		// Token without profile is a corrupt session.
		_ = store.Clear()
		return store, nil
	}
	var user api.User
	if err := json.Unmarshal(profile, &user); err != nil {
		_ = store.Clear()
		return store, nil
	}

	store.token = strings.TrimSpace(string(token))
	store.user = user
	store.present = store.token != ""
	return store, nil
}

// Token implements api.TokenSource.
func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached profile and whether a session exists.
func (s *FileStore) User() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.present
}

// Set persists the session: profile first, token last, so a crash between
// the two writes leaves no token behind (token presence is what Open
// treats as "logged in").
func (s *FileStore) Set(session api.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := json.MarshalIndent(session.User, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, profileFile), profile, 0600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(session.Token+"\n"), 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	s.token = session.Token
	s.user = session.User
	s.present = true
	return nil
}

// Clear removes both artifacts. Missing files are not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, name := range []string{tokenFile, profileFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			if firstErr == nil {
				firstErr = fmt.Errorf("remove %s: %w", name, err)
			}
		}
	}
	s.token = ""
	s.user = api.User{}
	s.present = false
	return firstErr
}

// Dir returns the state directory in use.
func (s *FileStore) Dir() string { return s.dir }

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
