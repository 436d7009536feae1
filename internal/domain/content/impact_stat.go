package content

import "github.com/buccusa/buccusa-api/internal/domain/entity"

// ImpactStat is a headline figure such as "500+ families served"
type ImpactStat struct {
	entity.Record
	Label       string `validate:"required,min=1,max=150"`
	Value       string `validate:"required,min=1,max=50"`
	Suffix      string `validate:"omitempty,max=20"`
	Icon        string `validate:"omitempty,max=100"`
	Description string `validate:"omitempty,max=500"`
	SortOrder   int
}

// Validate for validating ImpactStat struct
func (s *ImpactStat) Validate() error { return validate("impact stat", s) }

// IsPublic is always true; impact stats have no draft state
func (s *ImpactStat) IsPublic() bool { return true }
