package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

const organizationName = "BUCCUSA"

type messageService struct {
	*submissionService[inquiries.ContactMessage, *inquiries.ContactMessage]
	replies inquiries.ReplyRepository
	mailer  inquiries.Mailer
}

// NewMessageService creates a MessageService. Admins at notifyAddress are told
// about every new message and the sender gets an acknowledgement.
func NewMessageService(
	repo entity.Repository[inquiries.ContactMessage],
	replies inquiries.ReplyRepository,
	mailer inquiries.Mailer,
	notifier inquiries.Notifier,
	notifyAddress string,
	logger logger.Logger,
) (inquiries.MessageService, error) {
	notices := submissionNotices[inquiries.ContactMessage]{
		admin: func(m *inquiries.ContactMessage) inquiries.Mail {
			return inquiries.Mail{
				ReplyTo: m.Email,
				Subject: fmt.Sprintf("New contact message from %s", m.Name),
				Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s\n",
					m.Name, m.Email, m.Phone, m.Subject, m.Message),
			}
		},
		ack: func(m *inquiries.ContactMessage) *inquiries.Mail {
			return &inquiries.Mail{
				To:      []string{m.Email},
				Subject: fmt.Sprintf("We received your message - %s", organizationName),
				Body: fmt.Sprintf("Hello %s,\n\nThank you for contacting %s. We have received your message and will get back to you soon.\n",
					m.Name, organizationName),
			}
		},
	}

	return &messageService{
		submissionService: newSubmissionService[inquiries.ContactMessage, *inquiries.ContactMessage](
			repo, notifier, notifyAddress, inquiries.MessageStatusNew, notices, logger),
		replies: replies,
		mailer:  mailer,
	}, nil
}

// Open returns the message, marking it read when it was new
func (s *messageService) Open(ctx context.Context, id string) (*inquiries.ContactMessage, error) {
	msg, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.Status != inquiries.MessageStatusNew {
		return msg, nil
	}

	msg.Status = inquiries.MessageStatusRead
	if err := s.save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Reply emails body to the sender and records the reply with its delivery
// outcome. The message becomes replied only when delivery succeeded.
func (s *messageService) Reply(ctx context.Context, messageID, adminID, subject, body string) (*inquiries.MessageReply, error) {
	msg, err := s.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(subject) == "" {
		subject = replySubject(msg)
	}
	reply := &inquiries.MessageReply{
		MessageID: msg.ID,
		AdminID:   adminID,
		Subject:   subject,
		Body:      body,
	}
	now := s.now()
	reply.Stamp(now)
	if err := reply.Validate(); err != nil {
		return nil, err
	}

	sendErr := s.mailer.Send(ctx, inquiries.Mail{
		To:      []string{msg.Email},
		Subject: reply.Subject,
		Body:    reply.Body,
	})
	reply.Delivered = sendErr == nil
	if sendErr != nil {
		reply.DeliveryError = sendErr.Error()
		s.logger.Warn("Failed to deliver reply", "message_id", msg.ID, "error", sendErr.Error())
	}

	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, err
	}

	if reply.Delivered && msg.Status != inquiries.MessageStatusReplied {
		msg.Status = inquiries.MessageStatusReplied
		if err := s.save(ctx, msg); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Recorded reply", "message_id", msg.ID, "delivered", reply.Delivered)
	return reply, nil
}

func replySubject(msg *inquiries.ContactMessage) string {
	if msg.Subject == "" {
		return fmt.Sprintf("Re: Your message to %s", organizationName)
	}
	if strings.HasPrefix(strings.ToLower(msg.Subject), "re:") {
		return msg.Subject
	}
	return "Re: " + msg.Subject
}

// Replies lists the replies for a message, oldest first
func (s *messageService) Replies(ctx context.Context, messageID string) ([]*inquiries.MessageReply, error) {
	if _, err := s.GetByID(ctx, messageID); err != nil {
		return nil, err
	}
	return s.replies.ListByMessageID(ctx, messageID)
}

// NewPartnershipService creates a PartnershipService notifying admins of new requests
func NewPartnershipService(
	repo entity.Repository[inquiries.PartnershipRequest],
	notifier inquiries.Notifier,
	notifyAddress string,
	logger logger.Logger,
) (inquiries.PartnershipService, error) {
	notices := submissionNotices[inquiries.PartnershipRequest]{
		admin: func(p *inquiries.PartnershipRequest) inquiries.Mail {
			return inquiries.Mail{
				ReplyTo: p.Email,
				Subject: fmt.Sprintf("New partnership request from %s", p.OrganizationName),
				Body: fmt.Sprintf("Organization: %s\nContact: %s\nEmail: %s\nPhone: %s\nWebsite: %s\nType: %s\n\n%s\n",
					p.OrganizationName, p.ContactName, p.Email, p.Phone, p.Website, p.PartnershipType, p.Message),
			}
		},
	}
	return newSubmissionService[inquiries.PartnershipRequest, *inquiries.PartnershipRequest](
		repo, notifier, notifyAddress, inquiries.ReviewStatusPending, notices, logger), nil
}

// NewVolunteerService creates a VolunteerService notifying admins of new sign-ups
func NewVolunteerService(
	repo entity.Repository[inquiries.VolunteerSubmission],
	notifier inquiries.Notifier,
	notifyAddress string,
	logger logger.Logger,
) (inquiries.VolunteerService, error) {
	notices := submissionNotices[inquiries.VolunteerSubmission]{
		admin: func(v *inquiries.VolunteerSubmission) inquiries.Mail {
			return inquiries.Mail{
				ReplyTo: v.Email,
				Subject: fmt.Sprintf("New volunteer: %s", v.Name),
				Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nInterests: %s\nAvailability: %s\n\n%s\n",
					v.Name, v.Email, v.Phone, v.Interests, v.Availability, v.Message),
			}
		},
	}
	return newSubmissionService[inquiries.VolunteerSubmission, *inquiries.VolunteerSubmission](
		repo, notifier, notifyAddress, inquiries.ReviewStatusPending, notices, logger), nil
}

// NewMemberService creates a members.Service notifying admins of new sign-ups
func NewMemberService(
	repo entity.Repository[members.Member],
	notifier inquiries.Notifier,
	notifyAddress string,
	logger logger.Logger,
) (members.Service, error) {
	notices := submissionNotices[members.Member]{
		admin: func(m *members.Member) inquiries.Mail {
			return inquiries.Mail{
				ReplyTo: m.Email,
				Subject: fmt.Sprintf("New membership registration: %s", m.FullName()),
				Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCity: %s\nMembership type: %s\n",
					m.FullName(), m.Email, m.Phone, m.City, m.MembershipType),
			}
		},
	}
	return newSubmissionService[members.Member, *members.Member](
		repo, notifier, notifyAddress, members.StatusPending, notices, logger), nil
}
