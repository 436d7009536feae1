package content

import "github.com/buccusa/buccusa-api/internal/domain/entity"

// Leader is a member of the organisation's leadership team
type Leader struct {
	entity.Record
	Name      string `validate:"required,min=1,max=150"`
	Position  string `validate:"required,min=1,max=150"`
	Bio       string
	ImageURL  string `validate:"omitempty,url"`
	Email     string `validate:"omitempty,email"`
	Phone     string `validate:"omitempty,phone"`
	SortOrder int
	Active    bool
}

// Validate for validating Leader struct
func (l *Leader) Validate() error { return validate("leader", l) }

// IsPublic reports whether the leader is shown on the public site
func (l *Leader) IsPublic() bool { return l.Active }
