package main

import (
	"fmt"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type appRepositories struct {
	programs     entity.Repository[content.Program]
	events       entity.Repository[content.Event]
	leaders      entity.Repository[content.Leader]
	posts        content.PostRepository
	testimonials entity.Repository[content.Testimonial]
	impactStats  entity.Repository[content.ImpactStat]
	gallery      entity.Repository[content.GalleryItem]
	members      entity.Repository[members.Member]
	messages     entity.Repository[inquiries.ContactMessage]
	replies      inquiries.ReplyRepository
	partnerships entity.Repository[inquiries.PartnershipRequest]
	volunteers   entity.Repository[inquiries.VolunteerSubmission]
	assets       media.Repository
	admins       admins.Repository
}

// initializeRepositories creates one gorm repository per entity
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	var (
		r   appRepositories
		err error
	)

	steps := []struct {
		name string
		init func() error
	}{
		{"program", func() error { r.programs, err = persistence.NewGormProgramRepository(db, log); return err }},
		{"event", func() error { r.events, err = persistence.NewGormEventRepository(db, log); return err }},
		{"leader", func() error { r.leaders, err = persistence.NewGormLeaderRepository(db, log); return err }},
		{"post", func() error { r.posts, err = persistence.NewGormPostRepository(db, log); return err }},
		{"testimonial", func() error { r.testimonials, err = persistence.NewGormTestimonialRepository(db, log); return err }},
		{"impact stat", func() error { r.impactStats, err = persistence.NewGormImpactStatRepository(db, log); return err }},
		{"gallery", func() error { r.gallery, err = persistence.NewGormGalleryRepository(db, log); return err }},
		{"member", func() error { r.members, err = persistence.NewGormMemberRepository(db, log); return err }},
		{"contact message", func() error { r.messages, err = persistence.NewGormContactMessageRepository(db, log); return err }},
		{"reply", func() error { r.replies, err = persistence.NewGormReplyRepository(db, log); return err }},
		{"partnership", func() error { r.partnerships, err = persistence.NewGormPartnershipRepository(db, log); return err }},
		{"volunteer", func() error { r.volunteers, err = persistence.NewGormVolunteerRepository(db, log); return err }},
		{"asset", func() error { r.assets, err = persistence.NewGormAssetRepository(db, log); return err }},
		{"admin", func() error { r.admins, err = persistence.NewGormAdminRepository(db, log); return err }},
	}

	for _, step := range steps {
		if err := step.init(); err != nil {
			return nil, fmt.Errorf("failed to create %s repository: %w", step.name, err)
		}
	}
	return &r, nil
}
