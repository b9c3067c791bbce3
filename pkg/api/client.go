// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package api is the single boundary between the RIPARO terminal client and
the municipal backend. Every network operation in the program goes through
Client; no other package constructs HTTP requests.

# Problem Statement

The backend exposes a conventional bearer-token REST API. The client side
needs:

 1. One place that knows the base URL convention (origin + "/api", with
    the bare origin kept for asset resolution)
 2. Bearer-token injection from the persisted session on every request
 3. Tolerance for the backend's two collection envelope shapes
 4. A uniform error taxonomy (transport / field map / message /
    verification gate) the UI can render without inspecting bodies

# Solution

	session.Store ──(TokenSource)──► Client ──► backend
	                                  │
	                                  ├─ envelope.go   normalize collections
	                                  ├─ errors.go     classify failures
	                                  ├─ multipart.go  file uploads
	                                  └─ pager.go      bounded page iteration

Requests carry a generated X-Request-ID so a failure in the logs can be
matched to a backend log line.

# Timeouts

Every request runs under the client's HTTP timeout (default 30s) in
addition to whatever deadline the caller's context carries.
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultTimeout bounds a single request round trip.
const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for outgoing requests.
//
// An empty token means "unauthenticated"; no Authorization header is sent.
// The session store implements this; tests supply a literal.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning itself. Useful in tests.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client issues authenticated JSON and multipart requests against the
// RIPARO backend. Safe for concurrent use.
type Client struct {
	// origin is the bare configured origin, used for asset resolution.
	origin string

	// base is origin + "/api", the prefix for every endpoint.
	base string

	httpClient *http.Client
	tokens     TokenSource
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests, proxies).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client for the given backend origin.
//
// origin is the scheme+host the deployment is configured with
// (e.g. "https://riparo.example.gov"); the "/api" suffix is appended
// here and must not be part of origin.
func New(origin string, tokens TokenSource, opts ...Option) *Client {
	origin = strings.TrimSuffix(origin, "/")
	c := &Client{
		origin:     origin,
		base:       origin + "/api",
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Origin returns the bare configured origin (no /api suffix).
func (c *Client) Origin() string { return c.origin }

// =============================================================================
// Request Plumbing
// =============================================================================

// do performs one request and returns the raw 2xx body.
//
// Non-2xx responses are parsed into *Error by errors.go; transport
// failures and cancellations are classified likewise. Callers decode the
// returned body themselves so collection endpoints can route it through
// envelope normalization.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &Error{
			Kind:        KindTransport,
			Message:     "could not build request",
			Detail:      err.Error(),
			Remediation: "Check the configured api_url.",
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{
				Kind:        KindCancelled,
				Message:     "request cancelled",
				Detail:      err.Error(),
				Remediation: "Try the action again.",
			}
		}
		return nil, &Error{
			Kind:        KindTransport,
			Message:     "cannot reach the RIPARO server",
			Detail:      err.Error(),
			Remediation: "Check your connection and try again.",
		}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, &Error{
			Kind:        KindTransport,
			Status:      resp.StatusCode,
			Message:     "response was cut short",
			Detail:      err.Error(),
			Remediation: "Check your connection and try again.",
		}
	}

	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseErrorResponse(resp.StatusCode, payload)
	}
	return payload, nil
}

// getJSON fetches path and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return decodeInto(body, out)
}

// postJSON sends in as a JSON body and decodes the response into out.
// out may be nil when the caller only cares about success.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &Error{Kind: KindDecode, Message: "could not encode request", Detail: err.Error()}
	}
	body, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeInto(body, out)
}

// getPage fetches a collection endpoint and normalizes the envelope.
//
// Package-level because methods cannot introduce type parameters.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values, entityKey string) (Page[T], error) {
	body, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return Page[T]{}, err
	}
	page, err := decodePage[T](body, entityKey)
	if err != nil {
		return Page[T]{}, &Error{
			Kind:        KindDecode,
			Message:     "could not read the server response",
			Detail:      err.Error(),
			Remediation: "The server may be a newer version than this client.",
		}
	}
	return page, nil
}

// decodeInto unmarshals body into out, unwrapping a {"data": {...}} single
// entity envelope when out fails to match the top level directly.
func decodeInto(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Data) > 0 && wrapped.Data[0] == '{' {
		body = wrapped.Data
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{
			Kind:        KindDecode,
			Message:     "could not read the server response",
			Detail:      fmt.Sprintf("unmarshal: %v", err),
			Remediation: "The server may be a newer version than this client.",
		}
	}
	return nil
}
