package entity

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/validators"
)

// Sort orders
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultLimit applies when a list query does not set one
const DefaultLimit = 50

// Query filters, sorts and paginates a list of records. Which column each
// filter applies to is decided by the repository for the entity type.
type Query struct {
	Search     string `validate:"omitempty,max=100"`
	Category   string `validate:"omitempty,max=100"`
	Status     string `validate:"omitempty,max=30"`
	PublicOnly bool
	Featured   *bool
	From       time.Time
	Limit      int    `validate:"gte=0,lte=200"`
	Offset     int    `validate:"gte=0"`
	SortBy     string `validate:"omitempty,max=50"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery creates a Query with the default page size
func NewQuery() *Query {
	return &Query{Limit: DefaultLimit}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	if err := validators.Struct(q); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid query parameters", err)
	}
	return nil
}
