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
	"strconv"
)

// ReportQuery is the server-side filter set for the paginated reports
// collection. Zero values mean "no filter"; dates are YYYY-MM-DD.
type ReportQuery struct {
	Status   Progress
	Type     string
	DateFrom string
	DateTo   string
	Page     int
	PerPage  int
}

func (q ReportQuery) values() url.Values {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.Type != "" {
		values.Set("type", q.Type)
	}
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

// MyReports returns every report the authenticated citizen has submitted.
// This endpoint is unpaginated; filtering happens client-side.
func (c *Client) MyReports(ctx context.Context) ([]Report, error) {
	page, err := getPage[Report](ctx, c, "/my-reports", nil, "reports")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// PublicReports returns the anonymized public feed.
func (c *Client) PublicReports(ctx context.Context) ([]Report, error) {
	page, err := getPage[Report](ctx, c, "/public/reports", nil, "reports")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Reports returns one page of the staff reports collection, filtered
// server-side per the query.
func (c *Client) Reports(ctx context.Context, q ReportQuery) (Page[Report], error) {
	return getPage[Report](ctx, c, "/reports", q.values(), "reports")
}

// Report fetches one report by numeric id.
func (c *Client) Report(ctx context.Context, id int64) (Report, error) {
	var report Report
	err := c.getJSON(ctx, fmt.Sprintf("/reports/%d", id), nil, &report)
	return report, err
}

// ReportInput is a new report submission. Photos are optional for
// self-reports; the submitter fields describe who the report is about,
// which is not necessarily the logged-in citizen.
type ReportInput struct {
	SubmitterName string `validate:"required"`
	Age           int    `validate:"omitempty,gte=0,lte=130"`
	Gender        string `validate:"omitempty,oneof=male female other"`
	Address       string `validate:"required"`
	Type          string `validate:"required"`
	Description   string `validate:"required"`
}

// CreateReport submits a new incident report with optional "before"
// photos, returning the created report (with its human-readable
// report_id assigned by the backend).
func (c *Client) CreateReport(ctx context.Context, in ReportInput, photos []FilePart) (Report, error) {
	fields := map[string]string{
		"submitter_name": in.SubmitterName,
		"address":        in.Address,
		"type":           in.Type,
		"description":    in.Description,
		"gender":         in.Gender,
	}
	if in.Age > 0 {
		fields["age"] = strconv.Itoa(in.Age)
	}
	for i := range photos {
		photos[i].Field = "photos[]"
	}
	var report Report
	if err := c.postMultipart(ctx, "/reports", fields, photos, &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// SetProgress moves a report to a new lifecycle status and returns the
// server-confirmed report.
func (c *Client) SetProgress(ctx context.Context, id int64, progress Progress) (Report, error) {
	var report Report
	body := struct {
		Progress Progress `json:"progress"`
	}{progress}
	if err := c.postJSON(ctx, fmt.Sprintf("/reports/%d/progress", id), body, &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// UploadResolutionPhotos attaches "after" photos to a report. When
// markResolved is set the backend also forces the report to resolved in
// the same request.
func (c *Client) UploadResolutionPhotos(ctx context.Context, id int64, photos []FilePart, markResolved bool) (Report, error) {
	if len(photos) == 0 {
		return Report{}, &Error{
			Kind:        KindFields,
			Message:     "at least one resolution photo is required",
			Fields:      map[string]string{"photos": "required"},
			Remediation: "Attach a photo of the resolved issue.",
		}
	}
	fields := map[string]string{}
	if markResolved {
		fields["mark_resolved"] = "1"
	}
	for i := range photos {
		photos[i].Field = "photos[]"
	}
	var report Report
	err := c.postMultipart(ctx, fmt.Sprintf("/reports/%d/resolution-photos", id), fields, photos, &report)
	if err != nil {
		return Report{}, err
	}
	return report, nil
}
