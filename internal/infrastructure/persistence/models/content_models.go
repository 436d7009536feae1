package models

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/content"
)

// ProgramModel is the GORM database model for programs
type ProgramModel struct {
	Base
	Title       string `gorm:"not null;type:varchar(200)"`
	Description string `gorm:"not null;type:text"`
	Icon        string `gorm:"type:varchar(100)"`
	ImageURL    string `gorm:"type:varchar(1024)"`
	Category    string `gorm:"index;type:varchar(100)"`
	Schedule    string `gorm:"type:varchar(200)"`
	SortOrder   int    `gorm:"not null;default:0"`
	Active      bool   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ProgramModel) TableName() string { return "programs" }

// ToDomain converts GORM model to domain entity
func (m *ProgramModel) ToDomain() *content.Program {
	return &content.Program{
		Record:      m.record(),
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		Schedule:    m.Schedule,
		SortOrder:   m.SortOrder,
		Active:      m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProgramModel) FromDomain(p *content.Program) {
	m.fromRecord(&p.Record)
	m.Title = p.Title
	m.Description = p.Description
	m.Icon = p.Icon
	m.ImageURL = p.ImageURL
	m.Category = p.Category
	m.Schedule = p.Schedule
	m.SortOrder = p.SortOrder
	m.Active = p.Active
}

// EventModel is the GORM database model for events
type EventModel struct {
	Base
	Title           string    `gorm:"not null;type:varchar(200)"`
	Description     string    `gorm:"not null;type:text"`
	Location        string    `gorm:"type:varchar(255)"`
	StartsAt        time.Time `gorm:"not null;index"`
	EndsAt          *time.Time
	ImageURL        string `gorm:"type:varchar(1024)"`
	Category        string `gorm:"index;type:varchar(100)"`
	RegistrationURL string `gorm:"type:varchar(1024)"`
	Featured        bool   `gorm:"not null"`
	Published       bool   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string { return "events" }

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *content.Event {
	return &content.Event{
		Record:          m.record(),
		Title:           m.Title,
		Description:     m.Description,
		Location:        m.Location,
		StartsAt:        m.StartsAt,
		EndsAt:          m.EndsAt,
		ImageURL:        m.ImageURL,
		Category:        m.Category,
		RegistrationURL: m.RegistrationURL,
		Featured:        m.Featured,
		Published:       m.Published,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *content.Event) {
	m.fromRecord(&e.Record)
	m.Title = e.Title
	m.Description = e.Description
	m.Location = e.Location
	m.StartsAt = e.StartsAt
	m.EndsAt = e.EndsAt
	m.ImageURL = e.ImageURL
	m.Category = e.Category
	m.RegistrationURL = e.RegistrationURL
	m.Featured = e.Featured
	m.Published = e.Published
}

// LeaderModel is the GORM database model for leaders
type LeaderModel struct {
	Base
	Name      string `gorm:"not null;type:varchar(150)"`
	Position  string `gorm:"not null;type:varchar(150)"`
	Bio       string `gorm:"type:text"`
	ImageURL  string `gorm:"type:varchar(1024)"`
	Email     string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(30)"`
	SortOrder int    `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (LeaderModel) TableName() string { return "leaders" }

// ToDomain converts GORM model to domain entity
func (m *LeaderModel) ToDomain() *content.Leader {
	return &content.Leader{
		Record:    m.record(),
		Name:      m.Name,
		Position:  m.Position,
		Bio:       m.Bio,
		ImageURL:  m.ImageURL,
		Email:     m.Email,
		Phone:     m.Phone,
		SortOrder: m.SortOrder,
		Active:    m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LeaderModel) FromDomain(l *content.Leader) {
	m.fromRecord(&l.Record)
	m.Name = l.Name
	m.Position = l.Position
	m.Bio = l.Bio
	m.ImageURL = l.ImageURL
	m.Email = l.Email
	m.Phone = l.Phone
	m.SortOrder = l.SortOrder
	m.Active = l.Active
}

// PostModel is the GORM database model for posts
type PostModel struct {
	Base
	Title       string `gorm:"not null;type:varchar(200)"`
	Slug        string `gorm:"not null;uniqueIndex;type:varchar(220)"`
	Excerpt     string `gorm:"type:varchar(500)"`
	Body        string `gorm:"not null;type:text"`
	Author      string `gorm:"type:varchar(150)"`
	ImageURL    string `gorm:"type:varchar(1024)"`
	Category    string `gorm:"index;type:varchar(100)"`
	Published   bool   `gorm:"not null;index"`
	PublishedAt *time.Time
}

// TableName specifies the table name for GORM
func (PostModel) TableName() string { return "posts" }

// ToDomain converts GORM model to domain entity
func (m *PostModel) ToDomain() *content.Post {
	return &content.Post{
		Record:      m.record(),
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Body:        m.Body,
		Author:      m.Author,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		Published:   m.Published,
		PublishedAt: m.PublishedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PostModel) FromDomain(p *content.Post) {
	m.fromRecord(&p.Record)
	m.Title = p.Title
	m.Slug = p.Slug
	m.Excerpt = p.Excerpt
	m.Body = p.Body
	m.Author = p.Author
	m.ImageURL = p.ImageURL
	m.Category = p.Category
	m.Published = p.Published
	m.PublishedAt = p.PublishedAt
}

// TestimonialModel is the GORM database model for testimonials
type TestimonialModel struct {
	Base
	Name     string `gorm:"not null;type:varchar(150)"`
	Role     string `gorm:"type:varchar(150)"`
	Quote    string `gorm:"not null;type:text"`
	ImageURL string `gorm:"type:varchar(1024)"`
	Rating   int    `gorm:"not null;default:0"`
	Featured bool   `gorm:"not null"`
	Approved bool   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (TestimonialModel) TableName() string { return "testimonials" }

// ToDomain converts GORM model to domain entity
func (m *TestimonialModel) ToDomain() *content.Testimonial {
	return &content.Testimonial{
		Record:   m.record(),
		Name:     m.Name,
		Role:     m.Role,
		Quote:    m.Quote,
		ImageURL: m.ImageURL,
		Rating:   m.Rating,
		Featured: m.Featured,
		Approved: m.Approved,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TestimonialModel) FromDomain(t *content.Testimonial) {
	m.fromRecord(&t.Record)
	m.Name = t.Name
	m.Role = t.Role
	m.Quote = t.Quote
	m.ImageURL = t.ImageURL
	m.Rating = t.Rating
	m.Featured = t.Featured
	m.Approved = t.Approved
}

// ImpactStatModel is the GORM database model for impact stats
type ImpactStatModel struct {
	Base
	Label       string `gorm:"not null;type:varchar(150)"`
	Value       string `gorm:"not null;type:varchar(50)"`
	Suffix      string `gorm:"type:varchar(20)"`
	Icon        string `gorm:"type:varchar(100)"`
	Description string `gorm:"type:varchar(500)"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ImpactStatModel) TableName() string { return "impact_stats" }

// ToDomain converts GORM model to domain entity
func (m *ImpactStatModel) ToDomain() *content.ImpactStat {
	return &content.ImpactStat{
		Record:      m.record(),
		Label:       m.Label,
		Value:       m.Value,
		Suffix:      m.Suffix,
		Icon:        m.Icon,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ImpactStatModel) FromDomain(s *content.ImpactStat) {
	m.fromRecord(&s.Record)
	m.Label = s.Label
	m.Value = s.Value
	m.Suffix = s.Suffix
	m.Icon = s.Icon
	m.Description = s.Description
	m.SortOrder = s.SortOrder
}

// GalleryItemModel is the GORM database model for gallery items
type GalleryItemModel struct {
	Base
	Title       string  `gorm:"not null;type:varchar(200)"`
	Description string  `gorm:"type:varchar(1000)"`
	ImageURL    string  `gorm:"not null;type:varchar(1024)"`
	Category    string  `gorm:"index;type:varchar(100)"`
	EventID     *string `gorm:"index;type:varchar(36)"`
}

// TableName specifies the table name for GORM
func (GalleryItemModel) TableName() string { return "gallery_items" }

// ToDomain converts GORM model to domain entity
func (m *GalleryItemModel) ToDomain() *content.GalleryItem {
	return &content.GalleryItem{
		Record:      m.record(),
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		EventID:     m.EventID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GalleryItemModel) FromDomain(g *content.GalleryItem) {
	m.fromRecord(&g.Record)
	m.Title = g.Title
	m.Description = g.Description
	m.ImageURL = g.ImageURL
	m.Category = g.Category
	m.EventID = g.EventID
}
