package inquiries

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
)

// Contact message statuses
const (
	MessageStatusNew      = "new"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"
)

// ContactMessage is a message sent through the public contact form
type ContactMessage struct {
	entity.Record
	Name    string `validate:"required,min=1,max=150"`
	Email   string `validate:"required,email,max=255"`
	Phone   string `validate:"omitempty,phone"`
	Subject string `validate:"omitempty,max=200"`
	Message string `validate:"required,min=1,max=5000"`
	Status  string `validate:"required,oneof=new read replied archived"`
}

// Validate for validating ContactMessage struct
func (m *ContactMessage) Validate() error { return validate("contact message", m) }

// SetStatus moves the message to status
func (m *ContactMessage) SetStatus(status string, _ time.Time) error {
	if !IsMessageStatus(status) {
		return apperrors.Validation("unknown message status: " + status)
	}
	m.Status = status
	return nil
}

// MessageReply is an admin's emailed answer to a contact message
type MessageReply struct {
	entity.Record
	MessageID     string `validate:"required,uuid4"`
	AdminID       string `validate:"required"`
	Subject       string `validate:"required,min=1,max=200"`
	Body          string `validate:"required,min=1,max=10000"`
	Delivered     bool
	DeliveryError string
}

// Validate for validating MessageReply struct
func (r *MessageReply) Validate() error { return validate("reply", r) }
