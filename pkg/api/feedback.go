// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"net/url"
	"strconv"
)

// FeedbackQuery filters the staff/mayor feedback collection.
type FeedbackQuery struct {
	DateFrom string
	DateTo   string
	Page     int
	PerPage  int
}

func (q FeedbackQuery) values() url.Values {
	values := url.Values{}
	if q.DateFrom != "" {
		values.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		values.Set("date_to", q.DateTo)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return values
}

// FeedbackList returns one page of the feedback collection.
func (c *Client) FeedbackList(ctx context.Context, q FeedbackQuery) (Page[Feedback], error) {
	return getPage[Feedback](ctx, c, "/feedback", q.values(), "feedback")
}

// FeedbackInput is a new feedback submission. When Anonymous is set the
// contact email is dropped before sending.
type FeedbackInput struct {
	Subject      string `validate:"omitempty,max=200"`
	Anonymous    bool
	ContactEmail string `validate:"omitempty,email"`
	Message      string `validate:"required"`
	ReportID     string
}

// SendFeedback submits feedback, optionally referencing a report by its
// human-readable report_id.
func (c *Client) SendFeedback(ctx context.Context, in FeedbackInput) error {
	if in.Anonymous {
		in.ContactEmail = ""
	}
	body := struct {
		Subject      string `json:"subject,omitempty"`
		Anonymous    bool   `json:"anonymous"`
		ContactEmail string `json:"contact_email,omitempty"`
		Message      string `json:"message"`
		ReportID     string `json:"report_id,omitempty"`
	}{in.Subject, in.Anonymous, in.ContactEmail, in.Message, in.ReportID}
	return c.postJSON(ctx, "/feedback", body, nil)
}
