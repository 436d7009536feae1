package connector

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryMediaConnector uploads images to a Cloudinary folder
type CloudinaryMediaConnector struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger logger.Logger
}

// NewCloudinaryMediaConnector creates a connector from a cloudinary:// URL
func NewCloudinaryMediaConnector(settings *config.MediaSettings, logger logger.Logger) (*CloudinaryMediaConnector, error) {
	cld, err := cloudinary.NewFromURL(settings.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloudinary client: %w", err)
	}
	return &CloudinaryMediaConnector{cld: cld, folder: settings.Folder, logger: logger}, nil
}

// Provider implements media.Connector
func (c *CloudinaryMediaConnector) Provider() string { return config.CloudinaryMediaProvider }

// Upload sends data to Cloudinary; the stored name becomes the asset's public ID
func (c *CloudinaryMediaConnector) Upload(ctx context.Context, storedName, contentType string, data []byte) (*media.Asset, error) {
	publicID := strings.TrimSuffix(storedName, path.Ext(storedName))

	result, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: publicID,
		Folder:   c.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}

	c.logger.Info("Uploaded to Cloudinary", "public_id", result.PublicID)
	return &media.Asset{
		StoredName:  result.PublicID,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         result.SecureURL,
		Provider:    c.Provider(),
	}, nil
}

// Delete destroys the asset by public ID
func (c *CloudinaryMediaConnector) Delete(ctx context.Context, asset *media.Asset) error {
	result, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: asset.StoredName})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary rejected delete: %s", result.Error.Message)
	}

	c.logger.Info("Deleted from Cloudinary", "public_id", asset.StoredName, "result", result.Result)
	return nil
}
