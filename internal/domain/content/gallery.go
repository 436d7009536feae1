package content

import "github.com/buccusa/buccusa-api/internal/domain/entity"

// GalleryItem is a photo shown in the gallery, optionally tied to an event
type GalleryItem struct {
	entity.Record
	Title       string  `validate:"required,min=1,max=200"`
	Description string  `validate:"omitempty,max=1000"`
	ImageURL    string  `validate:"required,url"`
	Category    string  `validate:"omitempty,max=100"`
	EventID     *string `validate:"omitempty,uuid4"`
}

// Validate for validating GalleryItem struct
func (g *GalleryItem) Validate() error { return validate("gallery item", g) }

// IsPublic is always true; gallery items have no draft state
func (g *GalleryItem) IsPublic() bool { return true }
