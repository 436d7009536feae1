package inquiries

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
)

// Review statuses shared by partnership requests and volunteer submissions
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// PartnershipRequest is an organisation asking to partner with BUCCUSA
type PartnershipRequest struct {
	entity.Record
	OrganizationName string `validate:"required,min=1,max=200"`
	ContactName      string `validate:"required,min=1,max=150"`
	Email            string `validate:"required,email,max=255"`
	Phone            string `validate:"omitempty,phone"`
	Website          string `validate:"omitempty,url"`
	PartnershipType  string `validate:"omitempty,max=100"`
	Message          string `validate:"omitempty,max=5000"`
	Status           string `validate:"required,oneof=pending approved rejected"`
}

// Validate for validating PartnershipRequest struct
func (p *PartnershipRequest) Validate() error { return validate("partnership request", p) }

// SetStatus moves the request to a review status
func (p *PartnershipRequest) SetStatus(status string, _ time.Time) error {
	return setReviewStatus(&p.Status, status)
}

// VolunteerSubmission is a visitor offering to volunteer
type VolunteerSubmission struct {
	entity.Record
	Name         string `validate:"required,min=1,max=150"`
	Email        string `validate:"required,email,max=255"`
	Phone        string `validate:"omitempty,phone"`
	Interests    string `validate:"omitempty,max=1000"`
	Availability string `validate:"omitempty,max=200"`
	Message      string `validate:"omitempty,max=5000"`
	Status       string `validate:"required,oneof=pending approved rejected"`
}

// Validate for validating VolunteerSubmission struct
func (v *VolunteerSubmission) Validate() error { return validate("volunteer submission", v) }

// SetStatus moves the submission to a review status
func (v *VolunteerSubmission) SetStatus(status string, _ time.Time) error {
	return setReviewStatus(&v.Status, status)
}

func setReviewStatus(field *string, status string) error {
	if !IsReviewStatus(status) {
		return apperrors.Validation("unknown review status: " + status)
	}
	*field = status
	return nil
}

// IsReviewStatus reports whether s is a valid review status
func IsReviewStatus(s string) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// IsMessageStatus reports whether s is a valid contact message status
func IsMessageStatus(s string) bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied, MessageStatusArchived:
		return true
	}
	return false
}
