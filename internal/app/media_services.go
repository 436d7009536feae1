package app

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// mediaService implements media.Service
type mediaService struct {
	connector    media.Connector
	repo         media.Repository
	maxBytes     int64
	allowedTypes []string
	logger       logger.Logger
	now          func() time.Time
}

// NewMediaService creates a new instance of media.Service
func NewMediaService(connector media.Connector, repo media.Repository, settings *config.MediaSettings, logger logger.Logger) (media.Service, error) {
	return &mediaService{
		connector:    connector,
		repo:         repo,
		maxBytes:     settings.MaxUploadBytes,
		allowedTypes: settings.AllowedTypes,
		logger:       logger,
		now:          time.Now,
	}, nil
}

// Upload validates the file, stores it with the connector and records its metadata
func (s *mediaService) Upload(ctx context.Context, upload *media.Upload) (*media.Asset, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, apperrors.Validation("no file uploaded")
	}
	if int64(len(upload.Data)) > s.maxBytes {
		return nil, apperrors.Validation(fmt.Sprintf("file exceeds the %d byte upload limit", s.maxBytes))
	}

	contentType, err := detectContentType(upload)
	if err != nil {
		return nil, err
	}
	if !s.allowed(contentType) {
		return nil, apperrors.Validation(fmt.Sprintf("file type %s is not allowed", contentType))
	}

	now := s.now().UTC()
	storedName := fmt.Sprintf("%s/%s%s", now.Format("2006/01"), uuid.NewString(), extension(contentType))

	asset, err := s.connector.Upload(ctx, storedName, contentType, upload.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	asset.Name = path.Base(upload.Name)
	asset.UploadedBy = upload.UploadedBy
	asset.Stamp(now)

	if err := s.repo.Create(ctx, asset); err != nil {
		if delErr := s.connector.Delete(ctx, asset); delErr != nil {
			s.logger.Error("Failed to remove orphaned upload", "stored_name", asset.StoredName, "error", delErr.Error())
		}
		return nil, err
	}

	s.logger.Info("Uploaded media", "id", asset.ID, "provider", asset.Provider, "size", asset.Size)
	return asset, nil
}

// detectContentType returns the sniffed type of the data. A declared type
// naming a different kind of file than the content is rejected.
func detectContentType(upload *media.Upload) (string, error) {
	sniffed, _, _ := strings.Cut(http.DetectContentType(upload.Data), ";")

	declared := upload.ContentType
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mediaType
	}
	if declared == "" || declared == "application/octet-stream" {
		return sniffed, nil
	}
	if majorType(declared) != majorType(sniffed) {
		return "", apperrors.Validation(fmt.Sprintf("file declared as %s contains %s", declared, sniffed))
	}
	return sniffed, nil
}

func majorType(contentType string) string {
	major, _, _ := strings.Cut(contentType, "/")
	return major
}

// preferredExtensions fixes the extension where the mime table lists several
var preferredExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// extension derives the stored file extension from the validated content type
func extension(contentType string) string {
	if ext, ok := preferredExtensions[contentType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

func (s *mediaService) allowed(contentType string) bool {
	for _, prefix := range s.allowedTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

func (s *mediaService) List(ctx context.Context, query *entity.Query) (*entity.Page[media.Asset], error) {
	if query == nil {
		query = entity.NewQuery()
	}
	items, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	return &entity.Page[media.Asset]{Items: items, Total: total, Limit: query.Limit, Offset: query.Offset}, nil
}

func (s *mediaService) GetByID(ctx context.Context, id string) (*media.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteByID removes stored content and metadata. Content held by a provider
// other than the active one is left in place.
func (s *mediaService) DeleteByID(ctx context.Context, id string) error {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if asset.Provider == s.connector.Provider() {
		if err := s.connector.Delete(ctx, asset); err != nil {
			return fmt.Errorf("failed to delete stored media: %w", err)
		}
	} else {
		s.logger.Warn("Media stored with inactive provider, keeping content", "id", asset.ID, "provider", asset.Provider)
	}

	return s.repo.DeleteByID(ctx, id)
}
