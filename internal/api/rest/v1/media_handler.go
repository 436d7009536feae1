package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// uploadFields are the multipart fields accepted for the uploaded file, in order
var uploadFields = []string{"file", "image"}

// multipartOverhead allows for boundaries and other form fields around the file
const multipartOverhead = 1 << 20

// MediaHandler handles uploads and the media library
type MediaHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type mediaHandler struct {
	service  media.Service
	maxBytes int64
}

// NewMediaHandler creates a MediaHandler accepting files up to maxBytes
func NewMediaHandler(service media.Service, maxBytes int64) MediaHandler {
	return &mediaHandler{service: service, maxBytes: maxBytes}
}

// Upload stores the file sent under "file" or "image"
func (h *mediaHandler) Upload(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBytes+multipartOverhead)

	header, err := formFile(ctx)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(ctx, apperrors.Validation(fmt.Sprintf("file exceeds the %d byte upload limit", h.maxBytes)))
			return
		}
		respondError(ctx, apperrors.Wrap(apperrors.CodeValidation, "no file uploaded", err))
		return
	}

	data, err := readFormFile(header)
	if err != nil {
		respondError(ctx, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	upload := &media.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	if admin := currentAdmin(ctx); admin != nil {
		upload.UploadedBy = admin.ID
	}

	asset, err := h.service.Upload(ctx, upload)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, newAssetResponse(asset))
}

func formFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	var firstErr error
	for _, field := range uploadFields {
		header, err := ctx.FormFile(field)
		if err == nil {
			return header, nil
		}
		if firstErr == nil || !errors.Is(err, http.ErrMissingFile) {
			firstErr = err
		}
	}
	return nil, firstErr
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (h *mediaHandler) List(ctx *gin.Context) {
	page, err := h.service.List(ctx, parseQuery(ctx, time.Now()))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondPage(ctx, page, newAssetResponse, false)
}

func (h *mediaHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := h.service.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, "deleted media with id "+id)
}
