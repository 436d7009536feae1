package app

import (
	"context"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// statusPtr is satisfied by records that move through a status workflow
type statusPtr[T any] interface {
	entityPtr[T]
	SetStatus(status string, now time.Time) error
}

// submissionNotices builds the mails sent after a public submission
type submissionNotices[T any] struct {
	// admin describes the submission for the notification inbox
	admin func(record *T) inquiries.Mail
	// ack optionally confirms receipt to the submitter
	ack func(record *T) *inquiries.Mail
}

// submissionService implements entity.SubmissionService
type submissionService[T any, PT statusPtr[T]] struct {
	*recordService[T, PT]
	notifier      inquiries.Notifier
	notifyAddress string
	initialStatus string
	notices       submissionNotices[T]
}

func newSubmissionService[T any, PT statusPtr[T]](
	repo entity.Repository[T],
	notifier inquiries.Notifier,
	notifyAddress string,
	initialStatus string,
	notices submissionNotices[T],
	logger logger.Logger,
) *submissionService[T, PT] {
	return &submissionService[T, PT]{
		recordService: newRecordService[T, PT](repo, logger, nil),
		notifier:      notifier,
		notifyAddress: notifyAddress,
		initialStatus: initialStatus,
		notices:       notices,
	}
}

// Submit stores record with the initial status and queues notifications.
// Notification failures never fail the submission.
func (s *submissionService[T, PT]) Submit(ctx context.Context, record *T) (*T, error) {
	if err := PT(record).SetStatus(s.initialStatus, s.now()); err != nil {
		return nil, err
	}

	created, err := s.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if s.notifyAddress != "" && s.notices.admin != nil {
		mail := s.notices.admin(created)
		mail.To = []string{s.notifyAddress}
		s.notifier.Notify(mail)
	}
	if s.notices.ack != nil {
		if mail := s.notices.ack(created); mail != nil {
			s.notifier.Notify(*mail)
		}
	}

	s.logger.Info("Accepted submission", "id", PT(created).Meta().ID)
	return created, nil
}

// UpdateStatus loads the record, validates status and saves it
func (s *submissionService[T, PT]) UpdateStatus(ctx context.Context, id, status string) (*T, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := PT(record).SetStatus(status, now); err != nil {
		return nil, err
	}
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Updated status", "id", id, "status", status)
	return record, nil
}
