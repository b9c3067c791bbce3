// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import "strings"

// AssetURL resolves a storage path returned by the backend to an absolute
// URL.
//
// The backend returns photo and document paths relative to its bare
// origin (e.g. "/storage/photos/abc.jpg"), not to the /api prefix.
// Already-absolute URLs pass through untouched; a bare relative path gets
// a separating slash.
func (c *Client) AssetURL(path string) string {
	return ResolveAsset(c.origin, path)
}

// ResolveAsset is the pure form of AssetURL, usable without a Client.
func ResolveAsset(origin, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	origin = strings.TrimSuffix(origin, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}
