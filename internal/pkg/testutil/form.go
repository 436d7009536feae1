package testutil

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/buccusa/buccusa-api/internal/pkg/httputil"

	"github.com/stretchr/testify/require"
)

// NewUploadRequest builds a multipart POST request carrying one file under field.
func NewUploadRequest(t *testing.T, url, field, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	body, boundary, err := httputil.CreateBody(content, fileName, field, contentType)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	return req
}

// NewJSONRequest builds a request with a raw JSON body.
func NewJSONRequest(t *testing.T, method, url, body string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}
