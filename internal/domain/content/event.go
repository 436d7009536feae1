package content

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
)

// Event is a dated gathering announced on the site
type Event struct {
	entity.Record
	Title           string    `validate:"required,min=1,max=200"`
	Description     string    `validate:"required,min=1"`
	Location        string    `validate:"omitempty,max=255"`
	StartsAt        time.Time `validate:"required"`
	EndsAt          *time.Time
	ImageURL        string `validate:"omitempty,url"`
	Category        string `validate:"omitempty,max=100"`
	RegistrationURL string `validate:"omitempty,url"`
	Featured        bool
	Published       bool
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	if err := validate("event", e); err != nil {
		return err
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return apperrors.Validation("event must not end before it starts")
	}
	return nil
}

// IsPublic reports whether the event is listed on the public site
func (e *Event) IsPublic() bool { return e.Published }

// IsUpcoming reports whether the event has not finished at now
func (e *Event) IsUpcoming(now time.Time) bool {
	if e.EndsAt != nil {
		return !e.EndsAt.Before(now)
	}
	return !e.StartsAt.Before(now)
}
