// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package cache keeps a local, id-keyed copy of reports the client has seen.

The cache is a repository shared by list and detail views: both read the
same rows, so a detail mutation acknowledged by the server is immediately
visible in the list without a refetch, and the two can never drift apart.
Rows are written only after a successful fetch or an acknowledged
mutation, never optimistically.

It also makes the citizen track view usable offline: the last-synced list
renders from here when the backend is unreachable, clearly marked stale by
its sync timestamp. The server remains authoritative; any response
overwrites cached rows wholesale.
*/
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

// Store is a sqlite-backed report cache.
type Store struct {
	conn *sql.DB
}

// Open opens (and if needed bootstraps) the cache database at path.
// Use ":memory:" in tests.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	store := &Store{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY,
		report_ref TEXT NOT NULL,
		progress TEXT NOT NULL,
		type TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		payload TEXT NOT NULL,
		synced_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_progress ON reports(progress);
	CREATE INDEX IF NOT EXISTS idx_reports_type ON reports(type);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.conn.Close() }

// Put upserts one report. Call only with server-acknowledged state.
func (s *Store) Put(report api.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report %d: %w", report.ID, err)
	}
	_, err = s.conn.Exec(`
		INSERT INTO reports (id, report_ref, progress, type, created_at, payload, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			report_ref = excluded.report_ref,
			progress   = excluded.progress,
			type       = excluded.type,
			created_at = excluded.created_at,
			payload    = excluded.payload,
			synced_at  = excluded.synced_at`,
		report.ID, report.ReportID, string(report.Progress), report.Type,
		report.CreatedAt.UTC(), string(payload), time.Now().UTC(),
	)
	return err
}

// PutAll upserts a fetched list in one transaction.
func (s *Store) PutAll(reports []api.Report) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO reports (id, report_ref, progress, type, created_at, payload, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			report_ref = excluded.report_ref,
			progress   = excluded.progress,
			type       = excluded.type,
			created_at = excluded.created_at,
			payload    = excluded.payload,
			synced_at  = excluded.synced_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, report := range reports {
		payload, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report %d: %w", report.ID, err)
		}
		if _, err := stmt.Exec(report.ID, report.ReportID, string(report.Progress),
			report.Type, report.CreatedAt.UTC(), string(payload), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get returns one cached report by id.
func (s *Store) Get(id int64) (api.Report, bool, error) {
	var payload string
	err := s.conn.QueryRow(`SELECT payload FROM reports WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return api.Report{}, false, nil
	}
	if err != nil {
		return api.Report{}, false, err
	}
	var report api.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return api.Report{}, false, fmt.Errorf("decode cached report %d: %w", id, err)
	}
	return report, true, nil
}

// All returns every cached report, newest first.
func (s *Store) All() ([]api.Report, error) {
	rows, err := s.conn.Query(`SELECT payload FROM reports ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []api.Report
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var report api.Report
		if err := json.Unmarshal([]byte(payload), &report); err != nil {
			return nil, fmt.Errorf("decode cached report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// LastSynced returns the most recent sync timestamp, or zero when the
// cache is empty.
func (s *Store) LastSynced() (time.Time, error) {
	var stamp sql.NullTime
	err := s.conn.QueryRow(`SELECT MAX(synced_at) FROM reports`).Scan(&stamp)
	if err != nil {
		return time.Time{}, err
	}
	if !stamp.Valid {
		return time.Time{}, nil
	}
	return stamp.Time, nil
}

// Clear empties the cache (logout).
func (s *Store) Clear() error {
	_, err := s.conn.Exec(`DELETE FROM reports`)
	return err
}
