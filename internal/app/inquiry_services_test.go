//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const notifyAddress = "office@buccusa.org"

type messageFixture struct {
	repo     *mockRepository[inquiries.ContactMessage]
	replies  *mockReplyRepository
	mailer   *mockMailer
	notifier *mockNotifier
	svc      inquiries.MessageService
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()

	f := &messageFixture{
		repo:     &mockRepository[inquiries.ContactMessage]{},
		replies:  &mockReplyRepository{},
		mailer:   &mockMailer{},
		notifier: &mockNotifier{},
	}
	svc, err := NewMessageService(f.repo, f.replies, f.mailer, f.notifier, notifyAddress, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	f.svc = svc
	return f
}

func storedMessage(status string) *inquiries.ContactMessage {
	m := &inquiries.ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Volunteering", Message: "Hi", Status: status}
	m.Stamp(fixedNow)
	return m
}

func TestMessageService_SubmitNotifiesAdminAndSender(t *testing.T) {
	f := newMessageFixture(t)

	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(m *inquiries.ContactMessage) bool {
		return m.Status == inquiries.MessageStatusNew
	})).Return(nil).Once()
	f.notifier.On("Notify", mock.MatchedBy(func(m inquiries.Mail) bool {
		return len(m.To) == 1 && m.To[0] == notifyAddress && m.ReplyTo == "ada@example.com"
	})).Once()
	f.notifier.On("Notify", mock.MatchedBy(func(m inquiries.Mail) bool {
		return len(m.To) == 1 && m.To[0] == "ada@example.com"
	})).Once()

	created, err := f.svc.Submit(context.Background(), &inquiries.ContactMessage{
		Name: "Ada", Email: "ada@example.com", Message: "Hi", Status: inquiries.MessageStatusArchived,
	})
	require.NoError(t, err)
	assert.Equal(t, inquiries.MessageStatusNew, created.Status)
	f.repo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestMessageService_SubmitFailureSendsNothing(t *testing.T) {
	f := newMessageFixture(t)

	f.repo.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrUnavailable).Once()

	_, err := f.svc.Submit(context.Background(), &inquiries.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything)
}

func TestMessageService_OpenMarksNewMessageRead(t *testing.T) {
	f := newMessageFixture(t)
	msg := storedMessage(inquiries.MessageStatusNew)

	f.repo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil).Once()
	f.repo.On("UpdateByID", mock.Anything, msg).Return(nil).Once()

	opened, err := f.svc.Open(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiries.MessageStatusRead, opened.Status)
	f.repo.AssertExpectations(t)
}

func TestMessageService_OpenLeavesOtherStatuses(t *testing.T) {
	f := newMessageFixture(t)
	msg := storedMessage(inquiries.MessageStatusReplied)

	f.repo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil).Once()

	opened, err := f.svc.Open(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiries.MessageStatusReplied, opened.Status)
	f.repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestMessageService_ReplyDelivered(t *testing.T) {
	f := newMessageFixture(t)
	msg := storedMessage(inquiries.MessageStatusRead)

	f.repo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil).Once()
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m inquiries.Mail) bool {
		return m.To[0] == msg.Email && m.Subject == "Re: Volunteering"
	})).Return(nil).Once()
	f.replies.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.repo.On("UpdateByID", mock.Anything, mock.MatchedBy(func(m *inquiries.ContactMessage) bool {
		return m.Status == inquiries.MessageStatusReplied
	})).Return(nil).Once()

	reply, err := f.svc.Reply(context.Background(), msg.ID, "admin-1", "", "Thanks for reaching out")
	require.NoError(t, err)
	assert.True(t, reply.Delivered)
	assert.Empty(t, reply.DeliveryError)
	assert.Equal(t, msg.ID, reply.MessageID)
	f.mailer.AssertExpectations(t)
	f.replies.AssertExpectations(t)
	f.repo.AssertExpectations(t)
}

func TestMessageService_ReplyDeliveryFailureIsRecorded(t *testing.T) {
	f := newMessageFixture(t)
	msg := storedMessage(inquiries.MessageStatusRead)

	f.repo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil).Once()
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused")).Once()
	f.replies.On("Create", mock.Anything, mock.MatchedBy(func(r *inquiries.MessageReply) bool {
		return !r.Delivered && r.DeliveryError == "smtp: connection refused"
	})).Return(nil).Once()

	reply, err := f.svc.Reply(context.Background(), msg.ID, "admin-1", "Update", "We will call you")
	require.NoError(t, err)
	assert.False(t, reply.Delivered)
	assert.Equal(t, inquiries.MessageStatusRead, msg.Status)
	f.repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestMessageService_ReplyRequiresBody(t *testing.T) {
	f := newMessageFixture(t)
	msg := storedMessage(inquiries.MessageStatusRead)

	f.repo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil).Once()

	_, err := f.svc.Reply(context.Background(), msg.ID, "admin-1", "", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMessageService_RepliesOfMissingMessage(t *testing.T) {
	f := newMessageFixture(t)

	f.repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NotFound("contact message not found")).Once()

	_, err := f.svc.Replies(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReplySubject(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"", "Re: Your message to BUCCUSA"},
		{"Membership", "Re: Membership"},
		{"RE: Membership", "RE: Membership"},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			assert.Equal(t, tt.want, replySubject(&inquiries.ContactMessage{Subject: tt.subject}))
		})
	}
}

func TestSubmissionService_UpdateStatus(t *testing.T) {
	repo := &mockRepository[inquiries.PartnershipRequest]{}
	svc, err := NewPartnershipService(repo, &mockNotifier{}, notifyAddress, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	req := &inquiries.PartnershipRequest{OrganizationName: "Acme", ContactName: "Bo", Email: "bo@acme.org", Status: inquiries.ReviewStatusPending}
	req.Stamp(fixedNow)
	repo.On("GetByID", mock.Anything, req.ID).Return(req, nil)
	repo.On("UpdateByID", mock.Anything, req).Return(nil).Once()

	updated, err := svc.UpdateStatus(context.Background(), req.ID, inquiries.ReviewStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, inquiries.ReviewStatusApproved, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), req.ID, "maybe")
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	repo.AssertNumberOfCalls(t, "UpdateByID", 1)
}

func TestMemberService_ActivationSetsJoinedAt(t *testing.T) {
	repo := &mockRepository[members.Member]{}
	svc, err := NewMemberService(repo, &mockNotifier{}, "", testutil.SetupTestLogger(t))
	require.NoError(t, err)

	m := &members.Member{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com", Status: members.StatusPending}
	m.Stamp(fixedNow)
	repo.On("GetByID", mock.Anything, m.ID).Return(m, nil).Once()
	repo.On("UpdateByID", mock.Anything, m).Return(nil).Once()

	before := time.Now().Add(-time.Second)
	updated, err := svc.UpdateStatus(context.Background(), m.ID, members.StatusActive)
	require.NoError(t, err)
	require.NotNil(t, updated.JoinedAt)
	assert.True(t, updated.JoinedAt.After(before))
}

func TestMemberService_SubmitWithoutNotifyAddress(t *testing.T) {
	repo := &mockRepository[members.Member]{}
	notifier := &mockNotifier{}
	svc, err := NewMemberService(repo, notifier, "", testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	created, err := svc.Submit(context.Background(), &members.Member{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, members.StatusPending, created.Status)
	notifier.AssertNotCalled(t, "Notify", mock.Anything)
}
