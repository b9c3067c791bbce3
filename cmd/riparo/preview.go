// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// previewSet stages selected photos as temporary files before a submit.
//
// Every selection creates exactly one temp file and every replacement,
// reset, or close removes exactly one; leaking previews across repeated
// selections in a long-lived process is the failure mode this guards
// against. Paths returned by Add can be handed to an image viewer.
type previewSet struct {
	paths []string
}

// Add stages a copy of path and returns the preview location.
func (p *previewSet) Add(path string) (string, error) {
	source, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open photo %s: %w", path, err)
	}
	defer source.Close()

	preview, err := os.CreateTemp("", "riparo-preview-*"+filepath.Ext(path))
	if err != nil {
		return "", fmt.Errorf("create preview: %w", err)
	}
	if _, err := io.Copy(preview, source); err != nil {
		preview.Close()
		os.Remove(preview.Name())
		return "", fmt.Errorf("stage preview: %w", err)
	}
	if err := preview.Close(); err != nil {
		os.Remove(preview.Name())
		return "", err
	}
	p.paths = append(p.paths, preview.Name())
	return preview.Name(), nil
}

// Replace discards the preview at index i and stages path in its place.
func (p *previewSet) Replace(i int, path string) (string, error) {
	if i < 0 || i >= len(p.paths) {
		return p.Add(path)
	}
	os.Remove(p.paths[i])
	p.paths = append(p.paths[:i], p.paths[i+1:]...)
	return p.Add(path)
}

// Reset removes every staged preview.
func (p *previewSet) Reset() {
	for _, path := range p.paths {
		os.Remove(path)
	}
	p.paths = nil
}

// Close is Reset under the name deferred callers expect.
func (p *previewSet) Close() { p.Reset() }
