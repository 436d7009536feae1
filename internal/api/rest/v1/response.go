package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Response wraps a single result
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps one page of results
type ListResponse struct {
	Success  bool  `json:"success"`
	Data     any   `json:"data"`
	Total    int64 `json:"total"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
	Fallback bool  `json:"fallback"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respond(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func respondPage[T any, R any](ctx *gin.Context, page *entity.Page[T], toResponse func(*T) R, fallback bool) {
	ctx.JSON(http.StatusOK, ListResponse{
		Success:  true,
		Data:     mapAll(page.Items, toResponse),
		Total:    page.Total,
		Limit:    page.Limit,
		Offset:   page.Offset,
		Fallback: fallback,
	})
}

func mapAll[T any, R any](items []*T, toResponse func(*T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, toResponse(item))
	}
	return out
}

// respondError maps err to its status and attaches it to the context for the
// error logging middleware
func respondError(ctx *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(code.HTTPStatus(), ErrorResponse{
		Code:    string(code),
		Message: apperrors.MessageOf(err),
	})
}

// bindJSON decodes the request body into req, reporting malformed bodies as validation errors
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondError(ctx, apperrors.Wrap(apperrors.CodeValidation, bindMessage(err), err))
		return false
	}
	return true
}

func bindMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	return "invalid request body"
}
