package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureBlobMediaConnector stores uploads as blobs in one container
type AzureBlobMediaConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobMediaConnector connects to the storage account and makes sure the container exists
func NewAzureBlobMediaConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (*AzureBlobMediaConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure Blob container: %w", err)
	}

	return &AzureBlobMediaConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Provider implements media.Connector
func (c *AzureBlobMediaConnector) Provider() string { return config.AzureMediaProvider }

// Upload writes data to the blob storedName
func (c *AzureBlobMediaConnector) Upload(ctx context.Context, storedName, contentType string, data []byte) (*media.Asset, error) {
	_, err := c.client.UploadBuffer(ctx, c.containerName, storedName, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob '%s': %w", storedName, err)
	}

	c.logger.Info("Uploaded blob", "container", c.containerName, "name", storedName)
	return &media.Asset{
		StoredName:  storedName,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         strings.TrimRight(c.client.URL(), "/") + "/" + c.containerName + "/" + storedName,
		Provider:    c.Provider(),
	}, nil
}

// Delete removes the blob; a missing blob is not an error
func (c *AzureBlobMediaConnector) Delete(ctx context.Context, asset *media.Asset) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, asset.StoredName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob '%s': %w", asset.StoredName, err)
	}

	c.logger.Info("Deleted blob", "container", c.containerName, "name", asset.StoredName)
	return nil
}
