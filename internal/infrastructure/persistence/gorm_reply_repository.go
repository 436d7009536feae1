package persistence

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence/models"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReplyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReplyRepository creates a GORM-based ReplyRepository implementation
func NewGormReplyRepository(db *gorm.DB, logger logger.Logger) (inquiries.ReplyRepository, error) {
	return &gormReplyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReplyRepository) Create(ctx context.Context, reply *inquiries.MessageReply) error {
	if err := reply.Validate(); err != nil {
		return err
	}

	model := &models.MessageReplyModel{}
	model.FromDomain(reply)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "reply", "create")
	}

	r.logger.Info("Created reply", "id", reply.ID, "message_id", reply.MessageID)
	return nil
}

func (r *gormReplyRepository) ListByMessageID(ctx context.Context, messageID string) ([]*inquiries.MessageReply, error) {
	var modelList []*models.MessageReplyModel
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at asc, id").
		Find(&modelList).Error
	if err != nil {
		return nil, translateError(err, "reply", "list")
	}

	domainList := make([]*inquiries.MessageReply, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
