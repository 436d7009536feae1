package v1

import (
	"net/http"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/infrastructure/fallback"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves one kind of public content with admin CRUD
type ContentHandler interface {
	PublicList(ctx *gin.Context)
	PublicGetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type publicRecord[T any] interface {
	*T
	entity.Entity
	entity.Publishable
}

type requestPtr[T, R any] interface {
	*R
	toDomain() *T
}

type contentHandler[T, R any, PT publicRecord[T], PR requestPtr[T, R], Res any] struct {
	kind       string
	service    entity.Service[T]
	toResponse func(*T) Res
	// fallback is served when the database is unavailable; nil disables it
	fallback []*T
	now      func() time.Time
}

func newContentHandler[T, R any, PT publicRecord[T], PR requestPtr[T, R], Res any](
	kind string,
	service entity.Service[T],
	toResponse func(*T) Res,
	fallbackItems []*T,
) *contentHandler[T, R, PT, PR, Res] {
	return &contentHandler[T, R, PT, PR, Res]{
		kind:       kind,
		service:    service,
		toResponse: toResponse,
		fallback:   fallbackItems,
		now:        time.Now,
	}
}

// PublicList lists public items, falling back to built-in content when the database is down
func (h *contentHandler[T, R, PT, PR, Res]) PublicList(ctx *gin.Context) {
	query := parseQuery(ctx, h.now())
	query.Status = ""
	query.PublicOnly = true

	page, err := h.service.List(ctx, query)
	if err != nil {
		if h.fallback != nil && apperrors.CodeOf(err) == apperrors.CodeUnavailable && query.Validate() == nil {
			respondPage(ctx, fallback.Page[T, PT](h.fallback, query), h.toResponse, true)
			return
		}
		respondError(ctx, err)
		return
	}

	respondPage(ctx, page, h.toResponse, false)
}

// PublicGetByID returns a public item; hidden items are reported as missing
func (h *contentHandler[T, R, PT, PR, Res]) PublicGetByID(ctx *gin.Context) {
	item, err := h.service.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !PT(item).IsPublic() {
		respondError(ctx, apperrors.NotFound(h.kind+" not found"))
		return
	}

	respond(ctx, http.StatusOK, h.toResponse(item))
}

// List lists items including hidden ones
func (h *contentHandler[T, R, PT, PR, Res]) List(ctx *gin.Context) {
	page, err := h.service.List(ctx, parseQuery(ctx, h.now()))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondPage(ctx, page, h.toResponse, false)
}

func (h *contentHandler[T, R, PT, PR, Res]) GetByID(ctx *gin.Context) {
	item, err := h.service.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, h.toResponse(item))
}

func (h *contentHandler[T, R, PT, PR, Res]) Create(ctx *gin.Context) {
	var req R
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := h.service.Create(ctx, PR(&req).toDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, h.toResponse(created))
}

func (h *contentHandler[T, R, PT, PR, Res]) Update(ctx *gin.Context) {
	var req R
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := h.service.Update(ctx, ctx.Param("id"), PR(&req).toDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, h.toResponse(updated))
}

func (h *contentHandler[T, R, PT, PR, Res]) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := h.service.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, "deleted "+h.kind+" with id "+id)
}

// PostHandler adds slug lookup to the post content handler
type PostHandler interface {
	ContentHandler
	PublicGetBySlug(ctx *gin.Context)
}

type postHandler struct {
	*contentHandler[content.Post, PostRequest, *content.Post, *PostRequest, PostResponse]
	posts content.PostService
}

// NewPostHandler creates a PostHandler
func NewPostHandler(service content.PostService, fallbackItems []*content.Post) PostHandler {
	return &postHandler{
		contentHandler: newContentHandler[content.Post, PostRequest]("post", service, newPostResponse, fallbackItems),
		posts:          service,
	}
}

// PublicGetBySlug returns a published post by slug
func (h *postHandler) PublicGetBySlug(ctx *gin.Context) {
	post, err := h.posts.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !post.IsPublic() {
		respondError(ctx, apperrors.NotFound("post not found"))
		return
	}

	respond(ctx, http.StatusOK, newPostResponse(post))
}
