package v1

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
)

// RecordResponse holds the fields every resource shares
type RecordResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newRecordResponse(r *entity.Record) RecordResponse {
	return RecordResponse{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// ProgramRequest creates or replaces a program
type ProgramRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Schedule    string `json:"schedule"`
	SortOrder   int    `json:"sortOrder"`
	Active      *bool  `json:"active"`
}

func (r *ProgramRequest) toDomain() *content.Program {
	return &content.Program{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Schedule:    r.Schedule,
		SortOrder:   r.SortOrder,
		Active:      boolOr(r.Active, true),
	}
}

// ProgramResponse is a program as returned by the API
type ProgramResponse struct {
	RecordResponse
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Schedule    string `json:"schedule,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	Active      bool   `json:"active"`
}

func newProgramResponse(p *content.Program) ProgramResponse {
	return ProgramResponse{
		RecordResponse: newRecordResponse(&p.Record),
		Title:          p.Title,
		Description:    p.Description,
		Icon:           p.Icon,
		ImageURL:       p.ImageURL,
		Category:       p.Category,
		Schedule:       p.Schedule,
		SortOrder:      p.SortOrder,
		Active:         p.Active,
	}
}

// EventRequest creates or replaces an event
type EventRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Location        string     `json:"location"`
	StartsAt        time.Time  `json:"startsAt" binding:"required"`
	EndsAt          *time.Time `json:"endsAt"`
	ImageURL        string     `json:"imageUrl"`
	Category        string     `json:"category"`
	RegistrationURL string     `json:"registrationUrl"`
	Featured        bool       `json:"featured"`
	Published       *bool      `json:"published"`
}

func (r *EventRequest) toDomain() *content.Event {
	return &content.Event{
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		StartsAt:        r.StartsAt.UTC(),
		EndsAt:          utcPtr(r.EndsAt),
		ImageURL:        r.ImageURL,
		Category:        r.Category,
		RegistrationURL: r.RegistrationURL,
		Featured:        r.Featured,
		Published:       boolOr(r.Published, true),
	}
}

// EventResponse is an event as returned by the API
type EventResponse struct {
	RecordResponse
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location,omitempty"`
	StartsAt        time.Time  `json:"startsAt"`
	EndsAt          *time.Time `json:"endsAt,omitempty"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	Category        string     `json:"category,omitempty"`
	RegistrationURL string     `json:"registrationUrl,omitempty"`
	Featured        bool       `json:"featured"`
	Published       bool       `json:"published"`
}

func newEventResponse(e *content.Event) EventResponse {
	return EventResponse{
		RecordResponse:  newRecordResponse(&e.Record),
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		ImageURL:        e.ImageURL,
		Category:        e.Category,
		RegistrationURL: e.RegistrationURL,
		Featured:        e.Featured,
		Published:       e.Published,
	}
}

// LeaderRequest creates or replaces a leader
type LeaderRequest struct {
	Name      string `json:"name" binding:"required"`
	Position  string `json:"position" binding:"required"`
	Bio       string `json:"bio"`
	ImageURL  string `json:"imageUrl"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func (r *LeaderRequest) toDomain() *content.Leader {
	return &content.Leader{
		Name:      r.Name,
		Position:  r.Position,
		Bio:       r.Bio,
		ImageURL:  r.ImageURL,
		Email:     r.Email,
		Phone:     r.Phone,
		SortOrder: r.SortOrder,
		Active:    boolOr(r.Active, true),
	}
}

// LeaderResponse is a leader as returned by the API
type LeaderResponse struct {
	RecordResponse
	Name      string `json:"name"`
	Position  string `json:"position"`
	Bio       string `json:"bio,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `json:"active"`
}

func newLeaderResponse(l *content.Leader) LeaderResponse {
	return LeaderResponse{
		RecordResponse: newRecordResponse(&l.Record),
		Name:           l.Name,
		Position:       l.Position,
		Bio:            l.Bio,
		ImageURL:       l.ImageURL,
		Email:          l.Email,
		Phone:          l.Phone,
		SortOrder:      l.SortOrder,
		Active:         l.Active,
	}
}

// PostRequest creates or replaces a post. An empty slug is derived from the title.
type PostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body" binding:"required"`
	Author    string `json:"author"`
	ImageURL  string `json:"imageUrl"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
}

func (r *PostRequest) toDomain() *content.Post {
	return &content.Post{
		Title:     r.Title,
		Slug:      r.Slug,
		Excerpt:   r.Excerpt,
		Body:      r.Body,
		Author:    r.Author,
		ImageURL:  r.ImageURL,
		Category:  r.Category,
		Published: r.Published,
	}
}

// PostResponse is a post as returned by the API
type PostResponse struct {
	RecordResponse
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	Author      string     `json:"author,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Category    string     `json:"category,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func newPostResponse(p *content.Post) PostResponse {
	return PostResponse{
		RecordResponse: newRecordResponse(&p.Record),
		Title:          p.Title,
		Slug:           p.Slug,
		Excerpt:        p.Excerpt,
		Body:           p.Body,
		Author:         p.Author,
		ImageURL:       p.ImageURL,
		Category:       p.Category,
		Published:      p.Published,
		PublishedAt:    p.PublishedAt,
	}
}

// TestimonialRequest creates or replaces a testimonial
type TestimonialRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Quote    string `json:"quote" binding:"required"`
	ImageURL string `json:"imageUrl"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
	Approved bool   `json:"approved"`
}

func (r *TestimonialRequest) toDomain() *content.Testimonial {
	return &content.Testimonial{
		Name:     r.Name,
		Role:     r.Role,
		Quote:    r.Quote,
		ImageURL: r.ImageURL,
		Rating:   r.Rating,
		Featured: r.Featured,
		Approved: r.Approved,
	}
}

// TestimonialResponse is a testimonial as returned by the API
type TestimonialResponse struct {
	RecordResponse
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Quote    string `json:"quote"`
	ImageURL string `json:"imageUrl,omitempty"`
	Rating   int    `json:"rating,omitempty"`
	Featured bool   `json:"featured"`
	Approved bool   `json:"approved"`
}

func newTestimonialResponse(t *content.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		RecordResponse: newRecordResponse(&t.Record),
		Name:           t.Name,
		Role:           t.Role,
		Quote:          t.Quote,
		ImageURL:       t.ImageURL,
		Rating:         t.Rating,
		Featured:       t.Featured,
		Approved:       t.Approved,
	}
}

// ImpactStatRequest creates or replaces an impact stat
type ImpactStatRequest struct {
	Label       string `json:"label" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Suffix      string `json:"suffix"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (r *ImpactStatRequest) toDomain() *content.ImpactStat {
	return &content.ImpactStat{
		Label:       r.Label,
		Value:       r.Value,
		Suffix:      r.Suffix,
		Icon:        r.Icon,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}
}

// ImpactStatResponse is an impact stat as returned by the API
type ImpactStatResponse struct {
	RecordResponse
	Label       string `json:"label"`
	Value       string `json:"value"`
	Suffix      string `json:"suffix,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

func newImpactStatResponse(s *content.ImpactStat) ImpactStatResponse {
	return ImpactStatResponse{
		RecordResponse: newRecordResponse(&s.Record),
		Label:          s.Label,
		Value:          s.Value,
		Suffix:         s.Suffix,
		Icon:           s.Icon,
		Description:    s.Description,
		SortOrder:      s.SortOrder,
	}
}

// GalleryItemRequest creates or replaces a gallery item
type GalleryItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl" binding:"required"`
	Category    string  `json:"category"`
	EventID     *string `json:"eventId"`
}

func (r *GalleryItemRequest) toDomain() *content.GalleryItem {
	item := &content.GalleryItem{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}
	if r.EventID != nil && *r.EventID != "" {
		item.EventID = r.EventID
	}
	return item
}

// GalleryItemResponse is a gallery item as returned by the API
type GalleryItemResponse struct {
	RecordResponse
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category,omitempty"`
	EventID     *string `json:"eventId,omitempty"`
}

func newGalleryItemResponse(g *content.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		RecordResponse: newRecordResponse(&g.Record),
		Title:          g.Title,
		Description:    g.Description,
		ImageURL:       g.ImageURL,
		Category:       g.Category,
		EventID:        g.EventID,
	}
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
