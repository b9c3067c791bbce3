// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// =============================================================================
// Error Types
// =============================================================================

// ErrorKind categorizes request failures for programmatic handling.
//
// The taxonomy mirrors what the backend can actually produce:
//
//   - transport failures (connection refused, timeout) never carry a body
//   - 4xx responses may carry a field-keyed error map for form display
//   - otherwise a single message string is all we get
//   - login can additionally be gated on verification status
type ErrorKind int

const (
	// KindTransport indicates the request never produced an HTTP response.
	KindTransport ErrorKind = iota

	// KindFields indicates a non-2xx response with a structured,
	// field-keyed error map (typically 422 validation).
	KindFields

	// KindMessage indicates a non-2xx response with only a message string.
	KindMessage

	// KindVerification indicates login was refused because the account is
	// still pending verification or was rejected.
	KindVerification

	// KindDecode indicates a 2xx response whose body could not be parsed.
	KindDecode

	// KindCancelled indicates the operation's context was cancelled.
	KindCancelled
)

// String returns the kind as a stable token for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "TRANSPORT"
	case KindFields:
		return "FIELD_ERRORS"
	case KindMessage:
		return "MESSAGE"
	case KindVerification:
		return "VERIFICATION_GATE"
	case KindDecode:
		return "DECODE"
	case KindCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Error provides structured failure information for API operations.
//
// Fields is populated only for KindFields and maps input field names to
// their first backend-reported problem, ready for display next to the
// corresponding form input. VerificationStatus is populated only for
// KindVerification.
type Error struct {
	// Kind categorizes the failure.
	Kind ErrorKind

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Message is a human-readable description safe to show the user.
	Message string

	// Detail carries technical context for logs, never shown directly.
	Detail string

	// Fields maps input field names to error text (KindFields only).
	Fields map[string]string

	// VerificationStatus is the gating status on login (KindVerification only).
	VerificationStatus VerificationStatus

	// Remediation suggests what the user can do about it.
	Remediation string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// FieldList returns the field errors as "name: problem" lines in a
// deterministic order, for plain (non-form) rendering.
func (e *Error) FieldList() []string {
	if len(e.Fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return lines
}

// FullError returns a detailed message including remediation, for
// terminal display of a failed command.
func (e *Error) FullError() string {
	var buf bytes.Buffer
	buf.WriteString(e.Message)
	for _, line := range e.FieldList() {
		buf.WriteString("\n  - ")
		buf.WriteString(line)
	}
	if e.Remediation != "" {
		buf.WriteString("\n\nTo fix: ")
		buf.WriteString(e.Remediation)
	}
	return buf.String()
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// =============================================================================
// Error Response Parsing
// =============================================================================

// errorBody is the union of error response shapes the backend emits.
//
// Validation failures arrive as {"message": ..., "errors": {field: [..]}},
// plain failures as {"message": ...} or {"error": ...}, and login gating
// as {"status": "pending"|"rejected", "message": ...}.
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Status  string              `json:"status"`
	Errors  map[string]rawField `json:"errors"`
}

// rawField tolerates both "field": "msg" and "field": ["msg", ...].
type rawField struct {
	first string
}

func (f *rawField) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		f.first = one
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	if len(many) > 0 {
		f.first = many[0]
	}
	return nil
}

// parseErrorResponse turns a non-2xx body into a structured *Error.
//
// An unparsable or empty body degrades to a KindMessage error built from
// the HTTP status alone; errors are never silently swallowed.
func parseErrorResponse(status int, body []byte) *Error {
	out := &Error{
		Kind:        KindMessage,
		Status:      status,
		Message:     fmt.Sprintf("request failed with status %d", status),
		Remediation: "Try the action again.",
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		out.Detail = string(body)
		return out
	}

	switch {
	case parsed.Message != "":
		out.Message = parsed.Message
	case parsed.Error != "":
		out.Message = parsed.Error
	}

	if len(parsed.Errors) > 0 {
		out.Kind = KindFields
		out.Fields = make(map[string]string, len(parsed.Errors))
		for name, field := range parsed.Errors {
			out.Fields[name] = field.first
		}
		out.Remediation = "Correct the highlighted fields and resubmit."
	}

	switch VerificationStatus(parsed.Status) {
	case VerificationPending:
		out.Kind = KindVerification
		out.VerificationStatus = VerificationPending
		if parsed.Message == "" {
			out.Message = "your account is still pending verification"
		}
		out.Remediation = "Wait for barangay staff to verify your registration."
	case VerificationRejected:
		out.Kind = KindVerification
		out.VerificationStatus = VerificationRejected
		if parsed.Message == "" {
			out.Message = "your registration was rejected"
		}
		out.Remediation = "Contact the barangay office about your registration."
	}

	return out
}
