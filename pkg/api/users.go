// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"fmt"
	"net/url"
)

// VerificationAction is a staff decision on a citizen registration.
type VerificationAction string

const (
	ActionVerify  VerificationAction = "verify"
	ActionReject  VerificationAction = "reject"
	ActionPending VerificationAction = "pending"
)

// ReviewAction is a staff decision on a profile update request.
type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
)

// Users lists accounts filtered by verification status. Pass "all" (or
// empty) for every account.
func (c *Client) Users(ctx context.Context, status string) ([]User, error) {
	values := url.Values{}
	if status != "" {
		values.Set("status", status)
	}
	page, err := getPage[User](ctx, c, "/users", values, "users")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// SetVerification records a verification decision for a user.
func (c *Client) SetVerification(ctx context.Context, userID int64, action VerificationAction) error {
	body := struct {
		Action VerificationAction `json:"action"`
	}{action}
	return c.postJSON(ctx, fmt.Sprintf("/users/%d/verification", userID), body, nil)
}

// UpdateRequests lists profile update requests, normally status=pending.
func (c *Client) UpdateRequests(ctx context.Context, status string) ([]UpdateRequest, error) {
	values := url.Values{}
	if status != "" {
		values.Set("status", status)
	}
	page, err := getPage[UpdateRequest](ctx, c, "/update-requests", values, "update_requests")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ReviewUpdateRequest records an approve/reject decision on a profile
// update request. The backend applies the delta on approval; the client
// never mutates profiles itself.
func (c *Client) ReviewUpdateRequest(ctx context.Context, id int64, action ReviewAction) error {
	body := struct {
		Action ReviewAction `json:"action"`
	}{action}
	return c.postJSON(ctx, fmt.Sprintf("/update-requests/%d/review", id), body, nil)
}
