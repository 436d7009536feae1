package persistence

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence/models"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAdminRepository struct {
	*gormRepository[admins.Admin, *admins.Admin, models.AdminModel, *models.AdminModel]
}

// NewGormAdminRepository creates a GORM-based admin Repository implementation
func NewGormAdminRepository(db *gorm.DB, logger logger.Logger) (admins.Repository, error) {
	return &gormAdminRepository{
		gormRepository: newGormRepository[admins.Admin, *admins.Admin, models.AdminModel, *models.AdminModel](db, logger, listConfig{
			kind:         "admin",
			defaultOrder: "created_at asc",
		}),
	}, nil
}

func (r *gormAdminRepository) List(ctx context.Context) ([]*admins.Admin, error) {
	var modelList []*models.AdminModel
	if err := r.db.WithContext(ctx).Order("created_at asc, id").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "admin", "list")
	}

	domainList := make([]*admins.Admin, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AdminModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, "admin", "count")
	}
	return count, nil
}

func (r *gormAdminRepository) GetByLogin(ctx context.Context, identifier string) (*admins.Admin, error) {
	var model models.AdminModel
	err := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = LOWER(?)", identifier, identifier).
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "admin", "fetch")
	}
	return model.ToDomain(), nil
}
