//go:build unit
// +build unit

package inquiries

import (
	"errors"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func TestContactMessage_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *ContactMessage)
		shouldErr bool
	}{
		{"valid", func(m *ContactMessage) {}, false},
		{"missing email", func(m *ContactMessage) { m.Email = "" }, true},
		{"bad email", func(m *ContactMessage) { m.Email = "not-an-email" }, true},
		{"empty message", func(m *ContactMessage) { m.Message = "" }, true},
		{"unknown status", func(m *ContactMessage) { m.Status = "spam" }, true},
		{"bad phone", func(m *ContactMessage) { m.Phone = "call me" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ContactMessage{Name: "Ama", Email: "ama@example.org", Message: "Hello", Status: MessageStatusNew}
			m.Stamp(now)
			tt.mutate(m)
			err := m.Validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPartnershipRequest_Validate(t *testing.T) {
	p := &PartnershipRequest{
		OrganizationName: "Hope Foundation",
		ContactName:      "Kwame",
		Email:            "kwame@hope.org",
		Website:          "https://hope.org",
		Status:           ReviewStatusPending,
	}
	p.Stamp(now)
	require.NoError(t, p.Validate())

	p.Website = "hope"
	assert.Error(t, p.Validate())
}

func TestVolunteerSubmission_Validate(t *testing.T) {
	v := &VolunteerSubmission{Name: "Efua", Email: "efua@example.org", Status: ReviewStatusPending}
	v.Stamp(now)
	require.NoError(t, v.Validate())

	v.Status = ""
	assert.Error(t, v.Validate())
}

func TestMessageReply_Validate(t *testing.T) {
	r := &MessageReply{MessageID: "not-a-uuid", AdminID: "a", Subject: "Re: hi", Body: "Thanks"}
	r.Stamp(now)
	assert.Error(t, r.Validate())

	r.MessageID = r.ID
	assert.NoError(t, r.Validate())
}

func TestStatusChecks(t *testing.T) {
	assert.True(t, IsReviewStatus(ReviewStatusApproved))
	assert.False(t, IsReviewStatus(MessageStatusRead))
	assert.True(t, IsMessageStatus(MessageStatusArchived))
	assert.False(t, IsMessageStatus(ReviewStatusPending))
}

func TestSetStatus(t *testing.T) {
	m := &ContactMessage{Status: MessageStatusNew}
	require.NoError(t, m.SetStatus(MessageStatusArchived, now))
	assert.Equal(t, MessageStatusArchived, m.Status)
	assert.Error(t, m.SetStatus(ReviewStatusApproved, now))
	assert.Equal(t, MessageStatusArchived, m.Status)

	p := &PartnershipRequest{Status: ReviewStatusPending}
	require.NoError(t, p.SetStatus(ReviewStatusApproved, now))
	assert.Equal(t, ReviewStatusApproved, p.Status)

	v := &VolunteerSubmission{Status: ReviewStatusPending}
	err := v.SetStatus("maybe", now)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, ReviewStatusPending, v.Status)
}
