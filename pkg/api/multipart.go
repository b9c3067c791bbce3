// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// FilePart is one file attached to a multipart request.
type FilePart struct {
	// Field is the form field name (e.g. "id_document", "photos[]").
	Field string

	// Path is the local file to upload.
	Path string
}

// buildMultipart assembles fields and files into a multipart body.
//
// Files are read fully here rather than streamed; uploads in this system
// are ID scans and phone photos, well under the 8 MiB the backend accepts.
// A missing or unreadable file fails the whole build before any bytes go
// on the wire, which is what lets required-file checks stay client-side.
func buildMultipart(fields map[string]string, files []FilePart) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", name, err)
		}
	}

	for _, file := range files {
		if err := writeFilePart(writer, file); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, file FilePart) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return &Error{
			Kind:        KindTransport,
			Message:     fmt.Sprintf("cannot read file %s", file.Path),
			Detail:      err.Error(),
			Remediation: "Check the file path and permissions.",
		}
	}
	defer f.Close()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		file.Field, filepath.Base(file.Path)))
	header.Set("Content-Type", detectContentType(f, file.Path))

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create part %q: %w", file.Field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", file.Path, err)
	}
	return nil
}

// detectContentType prefers the extension, falling back to content
// sniffing. The reader is rewound after sniffing.
func detectContentType(f *os.File, path string) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		return byExt
	}
	head := make([]byte, 512)
	n, _ := f.Read(head)
	_, _ = f.Seek(0, io.SeekStart)
	if n == 0 {
		return "application/octet-stream"
	}
	return http.DetectContentType(head[:n])
}

// postMultipart sends fields and files to path and decodes the response
// into out (out may be nil).
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, out any) error {
	body, contentType, err := buildMultipart(fields, files)
	if err != nil {
		if apiErr, ok := AsError(err); ok {
			return apiErr
		}
		return &Error{Kind: KindTransport, Message: "could not build upload", Detail: err.Error()}
	}
	payload, err := c.do(ctx, http.MethodPost, path, nil, body, contentType)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeInto(payload, out)
}
