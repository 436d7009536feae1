package content

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/strutil"

	"github.com/google/uuid"
)

// Post is a news or blog article
type Post struct {
	entity.Record
	Title       string `validate:"required,min=1,max=200"`
	Slug        string `validate:"required,slug,max=220"`
	Excerpt     string `validate:"omitempty,max=500"`
	Body        string `validate:"required,min=1"`
	Author      string `validate:"omitempty,max=150"`
	ImageURL    string `validate:"omitempty,url"`
	Category    string `validate:"omitempty,max=100"`
	Published   bool
	PublishedAt *time.Time
}

// Validate for validating Post struct
func (p *Post) Validate() error { return validate("post", p) }

// IsPublic reports whether the post is readable on the public site
func (p *Post) IsPublic() bool { return p.Published }

// Normalize derives a missing slug from the title and records the first
// publication time. Titles with no Latin letters or digits get a random slug.
func (p *Post) Normalize(now time.Time) {
	if p.Slug == "" {
		p.Slug = strutil.Slugify(p.Title)
	}
	if p.Slug == "" {
		p.Slug = "post-" + uuid.NewString()[:8]
	}
	if p.Published && p.PublishedAt == nil {
		published := now.UTC()
		p.PublishedAt = &published
	}
	if !p.Published {
		p.PublishedAt = nil
	}
}
