package persistence

import (
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence/models"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// sortColumns accepts both the column name and its camelCase form as sortBy,
// in addition to the timestamps every table has
func sortColumns(columns ...string) map[string]string {
	sortable := make(map[string]string)
	for _, column := range append(columns, "created_at", "updated_at") {
		sortable[column] = column
		parts := strings.Split(column, "_")
		for i := 1; i < len(parts); i++ {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
		sortable[strings.Join(parts, "")] = column
	}
	return sortable
}

// NewGormProgramRepository creates a GORM-based program repository
func NewGormProgramRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[content.Program], error) {
	return newGormRepository[content.Program, *content.Program, models.ProgramModel, *models.ProgramModel](db, logger, listConfig{
		kind:           "program",
		searchColumns:  []string{"title", "description"},
		categoryColumn: "category",
		publicColumn:   "active",
		sortable:       sortColumns("title", "sort_order", "category"),
		defaultOrder:   "sort_order asc, created_at desc",
	}), nil
}

// NewGormEventRepository creates a GORM-based event repository. Query.From
// keeps events that have not finished by then.
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[content.Event], error) {
	return newGormRepository[content.Event, *content.Event, models.EventModel, *models.EventModel](db, logger, listConfig{
		kind:           "event",
		searchColumns:  []string{"title", "description", "location"},
		categoryColumn: "category",
		publicColumn:   "published",
		featuredColumn: "featured",
		fromColumn:     "COALESCE(ends_at, starts_at)",
		sortable:       sortColumns("title", "starts_at", "location"),
		defaultOrder:   "starts_at asc",
		beforeDelete: func(tx *gorm.DB, id string) error {
			return tx.Model(&models.GalleryItemModel{}).Where("event_id = ?", id).Update("event_id", nil).Error
		},
	}), nil
}

// NewGormLeaderRepository creates a GORM-based leader repository
func NewGormLeaderRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[content.Leader], error) {
	return newGormRepository[content.Leader, *content.Leader, models.LeaderModel, *models.LeaderModel](db, logger, listConfig{
		kind:          "leader",
		searchColumns: []string{"name", "position"},
		publicColumn:  "active",
		sortable:      sortColumns("name", "position", "sort_order"),
		defaultOrder:  "sort_order asc, created_at asc",
	}), nil
}

// NewGormTestimonialRepository creates a GORM-based testimonial repository
func NewGormTestimonialRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[content.Testimonial], error) {
	return newGormRepository[content.Testimonial, *content.Testimonial, models.TestimonialModel, *models.TestimonialModel](db, logger, listConfig{
		kind:           "testimonial",
		searchColumns:  []string{"name", "quote"},
		publicColumn:   "approved",
		featuredColumn: "featured",
		sortable:       sortColumns("name", "rating"),
		defaultOrder:   "created_at desc",
	}), nil
}

// NewGormImpactStatRepository creates a GORM-based impact stat repository
func NewGormImpactStatRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[content.ImpactStat], error) {
	return newGormRepository[content.ImpactStat, *content.ImpactStat, models.ImpactStatModel, *models.ImpactStatModel](db, logger, listConfig{
		kind:          "impact stat",
		searchColumns: []string{"label", "description"},
		sortable:      sortColumns("label", "sort_order"),
		defaultOrder:  "sort_order asc, created_at asc",
	}), nil
}

// NewGormGalleryRepository creates a GORM-based gallery repository
func NewGormGalleryRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[content.GalleryItem], error) {
	return newGormRepository[content.GalleryItem, *content.GalleryItem, models.GalleryItemModel, *models.GalleryItemModel](db, logger, listConfig{
		kind:           "gallery item",
		searchColumns:  []string{"title", "description"},
		categoryColumn: "category",
		sortable:       sortColumns("title", "category"),
		defaultOrder:   "created_at desc",
	}), nil
}

// NewGormMemberRepository creates a GORM-based member repository; category
// filters by membership type
func NewGormMemberRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[members.Member], error) {
	return newGormRepository[members.Member, *members.Member, models.MemberModel, *models.MemberModel](db, logger, listConfig{
		kind:           "member",
		searchColumns:  []string{"first_name", "last_name", "email", "city"},
		categoryColumn: "membership_type",
		statusColumn:   "status",
		sortable:       sortColumns("first_name", "last_name", "email", "status", "joined_at"),
		defaultOrder:   "created_at desc",
	}), nil
}

// NewGormContactMessageRepository creates a GORM-based contact message
// repository. Deleting a message deletes its replies.
func NewGormContactMessageRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[inquiries.ContactMessage], error) {
	return newGormRepository[inquiries.ContactMessage, *inquiries.ContactMessage, models.ContactMessageModel, *models.ContactMessageModel](db, logger, listConfig{
		kind:          "contact message",
		searchColumns: []string{"name", "email", "subject", "message"},
		statusColumn:  "status",
		sortable:      sortColumns("name", "email", "status"),
		defaultOrder:  "created_at desc",
		beforeDelete: func(tx *gorm.DB, id string) error {
			return tx.Where("message_id = ?", id).Delete(&models.MessageReplyModel{}).Error
		},
	}), nil
}

// NewGormPartnershipRepository creates a GORM-based partnership request
// repository; category filters by partnership type
func NewGormPartnershipRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[inquiries.PartnershipRequest], error) {
	return newGormRepository[inquiries.PartnershipRequest, *inquiries.PartnershipRequest, models.PartnershipRequestModel, *models.PartnershipRequestModel](db, logger, listConfig{
		kind:           "partnership request",
		searchColumns:  []string{"organization_name", "contact_name", "email"},
		categoryColumn: "partnership_type",
		statusColumn:   "status",
		sortable:       sortColumns("organization_name", "status"),
		defaultOrder:   "created_at desc",
	}), nil
}

// NewGormVolunteerRepository creates a GORM-based volunteer submission repository
func NewGormVolunteerRepository(db *gorm.DB, logger logger.Logger) (entity.Repository[inquiries.VolunteerSubmission], error) {
	return newGormRepository[inquiries.VolunteerSubmission, *inquiries.VolunteerSubmission, models.VolunteerSubmissionModel, *models.VolunteerSubmissionModel](db, logger, listConfig{
		kind:          "volunteer submission",
		searchColumns: []string{"name", "email", "interests"},
		statusColumn:  "status",
		sortable:      sortColumns("name", "status"),
		defaultOrder:  "created_at desc",
	}), nil
}

// NewGormAssetRepository creates a GORM-based media asset repository
func NewGormAssetRepository(db *gorm.DB, logger logger.Logger) (media.Repository, error) {
	return newGormRepository[media.Asset, *media.Asset, models.AssetModel, *models.AssetModel](db, logger, listConfig{
		kind:          "media asset",
		searchColumns: []string{"name"},
		sortable:      sortColumns("name", "size", "content_type"),
		defaultOrder:  "created_at desc",
	}), nil
}
