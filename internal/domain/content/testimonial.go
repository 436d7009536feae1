package content

import "github.com/buccusa/buccusa-api/internal/domain/entity"

// Testimonial is a quote from a member or partner
type Testimonial struct {
	entity.Record
	Name     string `validate:"required,min=1,max=150"`
	Role     string `validate:"omitempty,max=150"`
	Quote    string `validate:"required,min=1,max=2000"`
	ImageURL string `validate:"omitempty,url"`
	Rating   int    `validate:"omitempty,min=1,max=5"`
	Featured bool
	Approved bool
}

// Validate for validating Testimonial struct
func (t *Testimonial) Validate() error { return validate("testimonial", t) }

// IsPublic reports whether the testimonial has been approved for display
func (t *Testimonial) IsPublic() bool { return t.Approved }
