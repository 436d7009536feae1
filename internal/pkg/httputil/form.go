// Package httputil builds multipart payloads for tests and internal callers.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// DefaultMaxMemory bounds how much of a parsed form is kept in memory.
const DefaultMaxMemory = 32 << 20

// CreateForm returns a parsed multipart form containing one file under field.
func CreateForm(content []byte, fileName, field, contentType string) (*multipart.Form, error) {
	body, boundary, err := CreateBody(content, fileName, field, contentType)
	if err != nil {
		return nil, err
	}

	form, err := multipart.NewReader(body, boundary).ReadForm(DefaultMaxMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart form: %w", err)
	}
	return form, nil
}

// CreateBody encodes one file as a multipart request body and returns the
// body along with its boundary.
func CreateBody(content []byte, fileName, field, contentType string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write form part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &buf, writer.Boundary(), nil
}
