package persistence

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence/models"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPostRepository struct {
	*gormRepository[content.Post, *content.Post, models.PostModel, *models.PostModel]
}

// NewGormPostRepository creates a GORM-based PostRepository implementation
func NewGormPostRepository(db *gorm.DB, logger logger.Logger) (content.PostRepository, error) {
	return &gormPostRepository{
		gormRepository: newGormRepository[content.Post, *content.Post, models.PostModel, *models.PostModel](db, logger, listConfig{
			kind:           "post",
			searchColumns:  []string{"title", "excerpt", "body"},
			categoryColumn: "category",
			publicColumn:   "published",
			sortable:       sortColumns("title", "published_at", "author"),
			defaultOrder:   "created_at desc",
		}),
	}, nil
}

func (r *gormPostRepository) GetBySlug(ctx context.Context, slug string) (*content.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		return nil, translateError(err, "post", "fetch")
	}
	return model.ToDomain(), nil
}
