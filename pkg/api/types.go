// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import "time"

// =============================================================================
// Enumerations
// =============================================================================

// Role identifies which portal an account belongs to.
//
// The backend is authoritative for role assignment; the client only
// compares roles when gating portal logins.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
	RoleMayor   Role = "mayor"
)

// Progress is the report lifecycle status.
//
// The set is closed: pending -> in_review -> assigned -> resolved, with
// rejected reachable from any non-terminal state. The client never invents
// new values; unknown strings from the backend are carried through verbatim.
type Progress string

const (
	ProgressPending  Progress = "pending"
	ProgressInReview Progress = "in_review"
	ProgressAssigned Progress = "assigned"
	ProgressResolved Progress = "resolved"
	ProgressRejected Progress = "rejected"
)

// Terminal reports whether no further transition is exposed in the UI.
func (p Progress) Terminal() bool {
	return p == ProgressResolved || p == ProgressRejected
}

// NextStates returns the transitions the UI may offer from p.
//
// rejected is reachable from every non-terminal state. Terminal states
// return nil; the backend remains the authority either way.
func (p Progress) NextStates() []Progress {
	switch p {
	case ProgressPending:
		return []Progress{ProgressInReview, ProgressRejected}
	case ProgressInReview:
		return []Progress{ProgressAssigned, ProgressRejected}
	case ProgressAssigned:
		return []Progress{ProgressResolved, ProgressRejected}
	default:
		return nil
	}
}

// VerificationStatus is the account-approval state for citizen signups.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// =============================================================================
// Entities
// =============================================================================

// All entities are owned by the backend. The client holds transient,
// read-only snapshots per fetch; the only locally-mutated copy is the one
// behind an open detail view, and it is patched only after the server
// acknowledges a mutation.

// User is an account as returned by the backend.
type User struct {
	ID                 int64              `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Email              string             `json:"email"`
	MobileNumber       string             `json:"mobile_number,omitempty"`
	Barangay           string             `json:"barangay,omitempty"`
	Zone               string             `json:"zone,omitempty"`
	Role               Role               `json:"role,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status,omitempty"`
	IDDocumentPath     string             `json:"id_document_path,omitempty"`
	CreatedAt          time.Time          `json:"created_at,omitempty"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Session is the authenticated state returned by a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Report is a citizen incident report.
//
// Photos holds the "before" evidence attached at submission;
// ResolutionPhotos holds the "after" evidence staff attach on resolution.
type Report struct {
	ID               int64     `json:"id"`
	ReportID         string    `json:"report_id"`
	SubmitterName    string    `json:"submitter_name"`
	Age              int       `json:"age,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	Address          string    `json:"address"`
	Type             string    `json:"type"`
	Photos           []string  `json:"photos,omitempty"`
	ResolutionPhotos []string  `json:"resolution_photos,omitempty"`
	Description      string    `json:"description"`
	Progress         Progress  `json:"progress"`
	DateGenerated    string    `json:"date_generated,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Feedback is a citizen-submitted comment, possibly anonymous.
type Feedback struct {
	ID           int64     `json:"id"`
	Subject      string    `json:"subject,omitempty"`
	Anonymous    bool      `json:"anonymous"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Message      string    `json:"message"`
	ReportID     string    `json:"report_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateRequest is a proposed change to a citizen's own profile, pending
// staff review. Changes maps field name to proposed value; the backend
// applies the delta on approval, the client only displays the diff and
// triggers the review call.
type UpdateRequest struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	User           User              `json:"user,omitempty"`
	Changes        map[string]string `json:"changes"`
	IDDocumentPath string            `json:"id_document_path,omitempty"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}
