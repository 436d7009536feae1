package v1

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// parseQuery reads list filters and pagination from the query string
func parseQuery(ctx *gin.Context, now time.Time) *entity.Query {
	query := entity.NewQuery()

	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}

	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if featured := ctx.Query("featured"); len(featured) > 0 {
		query.Featured = strutil.ConvertToBool(featured)
	}

	if upcoming := strutil.ConvertToBool(ctx.Query("upcoming")); upcoming != nil && *upcoming {
		query.From = now.UTC()
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	return query
}
