// Package members holds the membership register.
package members

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/validators"
)

// Member statuses
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Member is a person registered with the association
type Member struct {
	entity.Record
	FirstName      string `validate:"required,min=1,max=100"`
	LastName       string `validate:"required,min=1,max=100"`
	Email          string `validate:"required,email,max=255"`
	Phone          string `validate:"omitempty,phone"`
	City           string `validate:"omitempty,max=100"`
	MembershipType string `validate:"omitempty,max=50"`
	Status         string `validate:"required,oneof=pending active inactive"`
	JoinedAt       *time.Time
}

// Validate for validating Member struct
func (m *Member) Validate() error {
	if err := validators.Struct(m); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid member", err)
	}
	return nil
}

// FullName joins first and last name
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// SetStatus changes the status and records the join time on first activation
func (m *Member) SetStatus(status string, now time.Time) error {
	if !IsStatus(status) {
		return apperrors.Validation("unknown member status: " + status)
	}
	m.Status = status
	if status == StatusActive && m.JoinedAt == nil {
		joined := now.UTC()
		m.JoinedAt = &joined
	}
	return nil
}

// IsStatus reports whether s is a valid member status
func IsStatus(s string) bool {
	return s == StatusPending || s == StatusActive || s == StatusInactive
}

// Service manages members
type Service interface {
	entity.SubmissionService[Member]
}
