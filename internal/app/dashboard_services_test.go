//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixedCounter counts n for every query, or n+100 when From is set
type fixedCounter struct {
	n   int64
	err error
}

func (c fixedCounter) Count(_ context.Context, query *entity.Query) (int64, error) {
	if !query.From.IsZero() {
		return c.n + 100, c.err
	}
	return c.n, c.err
}

func byStatus(status string) any {
	return mock.MatchedBy(func(q *entity.Query) bool { return q.Status == status })
}

func TestDashboardService_Summary(t *testing.T) {
	memberRepo := &mockRepository[members.Member]{}
	memberRepo.On("Count", mock.Anything, byStatus("")).Return(int64(10), nil)
	memberRepo.On("Count", mock.Anything, byStatus(members.StatusPending)).Return(int64(3), nil)

	recent := []*inquiries.ContactMessage{storedMessage(inquiries.MessageStatusNew)}
	messageRepo := &mockRepository[inquiries.ContactMessage]{}
	messageRepo.On("Count", mock.Anything, byStatus("")).Return(int64(8), nil)
	messageRepo.On("Count", mock.Anything, byStatus(inquiries.MessageStatusNew)).Return(int64(2), nil)
	messageRepo.On("List", mock.Anything, mock.MatchedBy(func(q *entity.Query) bool {
		return q.Limit == recentMessagesLimit
	})).Return(recent, nil).Once()

	mediaRepo := &mockRepository[media.Asset]{}
	mediaRepo.On("Count", mock.Anything, mock.Anything).Return(int64(7), nil)

	svc, err := NewDashboardService(DashboardRepositories{
		Programs:     fixedCounter{n: 1},
		Events:       fixedCounter{n: 2},
		Leaders:      fixedCounter{n: 3},
		Posts:        fixedCounter{n: 4},
		Testimonials: fixedCounter{n: 5},
		ImpactStats:  fixedCounter{n: 6},
		Gallery:      fixedCounter{n: 9},
		Members:      memberRepo,
		Messages:     messageRepo,
		Partnerships: fixedCounter{n: 11},
		Volunteers:   fixedCounter{n: 12},
		Media:        mediaRepo,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Counts.Programs)
	assert.Equal(t, int64(2), summary.Counts.Events)
	assert.Equal(t, int64(10), summary.Counts.Members)
	assert.Equal(t, int64(8), summary.Counts.Messages)
	assert.Equal(t, int64(7), summary.Counts.Media)
	assert.Equal(t, int64(2), summary.UnreadMessages)
	assert.Equal(t, int64(3), summary.PendingMembers)
	assert.Equal(t, int64(11), summary.PendingPartners)
	assert.Equal(t, int64(12), summary.PendingVolunteers)
	assert.Equal(t, int64(102), summary.UpcomingEvents)
	assert.Equal(t, recent, summary.RecentMessages)
}

func TestDashboardService_SummaryPropagatesErrors(t *testing.T) {
	memberRepo := &mockRepository[members.Member]{}
	memberRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	messageRepo := &mockRepository[inquiries.ContactMessage]{}
	messageRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	messageRepo.On("List", mock.Anything, mock.Anything).Return([]*inquiries.ContactMessage{}, nil)
	mediaRepo := &mockRepository[media.Asset]{}
	mediaRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	down := fixedCounter{err: apperrors.ErrUnavailable}
	svc, err := NewDashboardService(DashboardRepositories{
		Programs: down, Events: down, Leaders: down, Posts: down,
		Testimonials: down, ImpactStats: down, Gallery: down,
		Members: memberRepo, Messages: messageRepo,
		Partnerships: down, Volunteers: down, Media: mediaRepo,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Summary(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}
