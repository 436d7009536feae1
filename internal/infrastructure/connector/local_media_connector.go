package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// LocalMediaConnector writes uploads below a directory that the HTTP server
// exposes under PublicBaseURL
type LocalMediaConnector struct {
	dir     string
	baseURL string
	logger  logger.Logger
}

// NewLocalMediaConnector creates the upload directory if needed
func NewLocalMediaConnector(settings *config.MediaSettings, logger logger.Logger) (*LocalMediaConnector, error) {
	if err := os.MkdirAll(settings.LocalDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalMediaConnector{
		dir:     settings.LocalDir,
		baseURL: strings.TrimRight(settings.PublicBaseURL, "/"),
		logger:  logger,
	}, nil
}

// Provider implements media.Connector
func (c *LocalMediaConnector) Provider() string { return config.LocalMediaProvider }

// Upload writes data to dir/storedName
func (c *LocalMediaConnector) Upload(_ context.Context, storedName, contentType string, data []byte) (*media.Asset, error) {
	target, err := c.resolve(storedName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o640); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	c.logger.Info("Stored upload on disk", "path", target, "size", len(data))
	return &media.Asset{
		StoredName:  storedName,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         c.baseURL + "/" + path.Clean(storedName),
		Provider:    c.Provider(),
	}, nil
}

// Delete removes the file; a missing file is not an error
func (c *LocalMediaConnector) Delete(_ context.Context, asset *media.Asset) error {
	target, err := c.resolve(asset.StoredName)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	c.logger.Info("Deleted upload from disk", "path", target)
	return nil
}

// resolve keeps storedName inside the upload directory
func (c *LocalMediaConnector) resolve(storedName string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(storedName)) {
		return "", fmt.Errorf("invalid stored name %q", storedName)
	}
	return filepath.Join(c.dir, filepath.FromSlash(storedName)), nil
}
