package inquiries

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
)

// Mail is a single outgoing email
type Mail struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers email synchronously
type Mailer interface {
	// Send delivers mail and returns once the server accepted or rejected it
	Send(ctx context.Context, mail Mail) error
}

// Notifier delivers email in the background
type Notifier interface {
	// Notify queues mail for delivery and returns immediately
	Notify(mail Mail)
	// Close waits for queued deliveries or until ctx is done
	Close(ctx context.Context) error
}

// ReplyRepository stores replies to contact messages
type ReplyRepository interface {
	Create(ctx context.Context, reply *MessageReply) error
	ListByMessageID(ctx context.Context, messageID string) ([]*MessageReply, error)
}

// MessageService manages contact messages and their replies
type MessageService interface {
	entity.SubmissionService[ContactMessage]
	// Open returns a message and marks it read if it was new
	Open(ctx context.Context, id string) (*ContactMessage, error)
	// Reply emails an answer to the sender and records the delivery outcome
	Reply(ctx context.Context, messageID, adminID, subject, body string) (*MessageReply, error)
	// Replies lists the replies sent for a message, oldest first
	Replies(ctx context.Context, messageID string) ([]*MessageReply, error)
}

// PartnershipService manages partnership requests
type PartnershipService interface {
	entity.SubmissionService[PartnershipRequest]
}

// VolunteerService manages volunteer submissions
type VolunteerService interface {
	entity.SubmissionService[VolunteerSubmission]
}
