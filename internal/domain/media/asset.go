// Package media describes uploaded files and the storage backends that host them.
package media

import (
	"context"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/validators"
)

// Asset is the metadata of an uploaded file
type Asset struct {
	entity.Record
	Name        string `validate:"required,min=1,max=255"`
	StoredName  string `validate:"required,min=1,max=255"`
	ContentType string `validate:"required,max=100"`
	Size        int64  `validate:"gt=0"`
	URL         string `validate:"required,url"`
	Provider    string `validate:"required,oneof=local azure cloudinary"`
	UploadedBy  string
}

// Validate for validating Asset struct
func (a *Asset) Validate() error {
	if err := validators.Struct(a); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid asset", err)
	}
	return nil
}

// IsImage reports whether the asset has an image content type
func (a *Asset) IsImage() bool {
	return strings.HasPrefix(a.ContentType, "image/")
}

// Upload is a file received from a client
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
	UploadedBy  string
}

// Connector stores file content with a hosting provider
type Connector interface {
	// Provider names the backend, e.g. "local"
	Provider() string
	// Upload stores data under storedName and returns the asset with URL and StoredName set
	Upload(ctx context.Context, storedName, contentType string, data []byte) (*Asset, error)
	// Delete removes the stored content of asset
	Delete(ctx context.Context, asset *Asset) error
}

// Repository persists asset metadata
type Repository = entity.Repository[Asset]

// Service uploads files and manages their metadata
type Service interface {
	// Upload checks size and type, stores the content and records its metadata
	Upload(ctx context.Context, upload *Upload) (*Asset, error)
	List(ctx context.Context, query *entity.Query) (*entity.Page[Asset], error)
	GetByID(ctx context.Context, id string) (*Asset, error)
	// DeleteByID removes the stored content and its metadata
	DeleteByID(ctx context.Context, id string) error
}
