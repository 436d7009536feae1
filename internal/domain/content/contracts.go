package content

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
)

// PostRepository adds slug lookup to the generic repository
type PostRepository interface {
	entity.Repository[Post]
	// GetBySlug retrieves a post by its unique slug
	GetBySlug(ctx context.Context, slug string) (*Post, error)
}

// PostService adds slug lookup to the generic service
type PostService interface {
	entity.Service[Post]
	// GetBySlug returns the post with slug or a not_found error
	GetBySlug(ctx context.Context, slug string) (*Post, error)
}
