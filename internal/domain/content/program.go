package content

import "github.com/buccusa/buccusa-api/internal/domain/entity"

// Program is an ongoing ministry or activity offered by the organisation
type Program struct {
	entity.Record
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"required,min=1"`
	Icon        string `validate:"omitempty,max=100"`
	ImageURL    string `validate:"omitempty,url"`
	Category    string `validate:"omitempty,max=100"`
	Schedule    string `validate:"omitempty,max=200"`
	SortOrder   int
	Active      bool
}

// Validate for validating Program struct
func (p *Program) Validate() error { return validate("program", p) }

// IsPublic reports whether the program is listed on the public site
func (p *Program) IsPublic() bool { return p.Active }
