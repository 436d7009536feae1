package models

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
)

// Base holds the columns shared by every table. Timestamps are owned by the
// domain layer, so GORM's automatic tracking is disabled.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (b *Base) record() entity.Record {
	return entity.Record{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func (b *Base) fromRecord(r *entity.Record) {
	b.ID = r.ID
	b.CreatedAt = r.CreatedAt
	b.UpdatedAt = r.UpdatedAt
}

// All returns one zero value of every model, in migration order.
func All() []interface{} {
	return []interface{}{
		&AdminModel{},
		&ProgramModel{},
		&EventModel{},
		&LeaderModel{},
		&PostModel{},
		&TestimonialModel{},
		&ImpactStatModel{},
		&GalleryItemModel{},
		&MemberModel{},
		&ContactMessageModel{},
		&MessageReplyModel{},
		&PartnershipRequestModel{},
		&VolunteerSubmissionModel{},
		&AssetModel{},
	}
}
