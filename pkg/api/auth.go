// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import "context"

// Credentials is a login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a session.
//
// The returned session is NOT persisted here; the caller decides whether
// to keep it (the portal role gate runs first). Verification gating
// (pending/rejected accounts) surfaces as *Error with KindVerification.
func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	var session Session
	if err := c.postJSON(ctx, "/login", creds, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// SignupInput is the profile submitted at registration. The ID document
// file travels separately as a required multipart FilePart.
type SignupInput struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Email        string `validate:"required,email"`
	Password     string `validate:"required,min=8"`
	MobileNumber string `validate:"omitempty,e164"`
	Barangay     string `validate:"required"`
	Zone         string `validate:"required"`
}

// Register submits a citizen registration.
//
// idDocument is required: accounts cannot be verified without one, so the
// client refuses to send the request at all when it is missing. Success
// means "registration accepted, pending verification"; it never yields a
// token.
func (c *Client) Register(ctx context.Context, in SignupInput, idDocument FilePart) error {
	if idDocument.Path == "" {
		return &Error{
			Kind:        KindFields,
			Message:     "an ID document is required to register",
			Fields:      map[string]string{"id_document": "required"},
			Remediation: "Attach a photo or scan of a valid government ID.",
		}
	}
	fields := map[string]string{
		"first_name":    in.FirstName,
		"last_name":     in.LastName,
		"email":         in.Email,
		"password":      in.Password,
		"mobile_number": in.MobileNumber,
		"barangay":      in.Barangay,
		"zone":          in.Zone,
	}
	idDocument.Field = "id_document"
	return c.postMultipart(ctx, "/register", fields, []FilePart{idDocument}, nil)
}

// SubmitProfileUpdate files an update request against the caller's own
// profile. changes maps field names to proposed values; a fresh ID
// document is always required for review.
func (c *Client) SubmitProfileUpdate(ctx context.Context, changes map[string]string, idDocument FilePart) error {
	if idDocument.Path == "" {
		return &Error{
			Kind:        KindFields,
			Message:     "an ID document is required for profile updates",
			Fields:      map[string]string{"id_document": "required"},
			Remediation: "Attach a photo or scan of a valid government ID.",
		}
	}
	idDocument.Field = "id_document"
	return c.postMultipart(ctx, "/profile/update-request", changes, []FilePart{idDocument}, nil)
}
