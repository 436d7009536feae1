package app

import (
	"context"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

type postService struct {
	*recordService[content.Post, *content.Post]
	posts content.PostRepository
}

// NewPostService creates a PostService. A missing slug is derived from the
// title and the first publication time is kept across updates.
func NewPostService(repo content.PostRepository, logger logger.Logger) (content.PostService, error) {
	return &postService{
		recordService: newRecordService[content.Post, *content.Post](repo, logger, preparePost),
		posts:         repo,
	}, nil
}

func preparePost(post, existing *content.Post, now time.Time) {
	if existing != nil && post.PublishedAt == nil && post.Published {
		post.PublishedAt = existing.PublishedAt
	}
	post.Normalize(now)
}

// GetBySlug returns the post with slug or a not_found error
func (s *postService) GetBySlug(ctx context.Context, slug string) (*content.Post, error) {
	return s.posts.GetBySlug(ctx, slug)
}
