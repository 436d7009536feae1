package connector

import (
	"context"
	"fmt"

	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// NewMediaConnector creates the connector for the configured provider
func NewMediaConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (media.Connector, error) {
	var (
		c   media.Connector
		err error
	)
	switch settings.Provider {
	case config.LocalMediaProvider:
		c, err = NewLocalMediaConnector(settings, logger)
	case config.AzureMediaProvider:
		c, err = NewAzureBlobMediaConnector(ctx, settings, logger)
	case config.CloudinaryMediaProvider:
		c, err = NewCloudinaryMediaConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported media provider: %s", settings.Provider)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
