package app

import (
	"context"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/dashboard"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const recentMessagesLimit = 5

// Counter is the part of a repository the dashboard needs
type Counter interface {
	Count(ctx context.Context, query *entity.Query) (int64, error)
}

// DashboardRepositories lists the repositories the dashboard counts
type DashboardRepositories struct {
	Programs     Counter
	Events       Counter
	Leaders      Counter
	Posts        Counter
	Testimonials Counter
	ImpactStats  Counter
	Gallery      Counter
	Members      entity.Repository[members.Member]
	Messages     entity.Repository[inquiries.ContactMessage]
	Partnerships Counter
	Volunteers   Counter
	Media        media.Repository
}

type dashboardService struct {
	repos  DashboardRepositories
	logger logger.Logger
	now    func() time.Time
}

// NewDashboardService creates a new instance of dashboard.Service
func NewDashboardService(repos DashboardRepositories, logger logger.Logger) (dashboard.Service, error) {
	return &dashboardService{repos: repos, logger: logger, now: time.Now}, nil
}

type countTask struct {
	counter Counter
	query   *entity.Query
	target  *int64
}

func statusQuery(status string) *entity.Query {
	q := entity.NewQuery()
	q.Status = status
	return q
}

// Summary runs every count concurrently and fetches the latest messages
func (s *dashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	summary := &dashboard.Summary{}
	c := &summary.Counts

	upcoming := entity.NewQuery()
	upcoming.From = s.now().UTC()

	all := entity.NewQuery()
	tasks := []countTask{
		{s.repos.Programs, all, &c.Programs},
		{s.repos.Events, all, &c.Events},
		{s.repos.Leaders, all, &c.Leaders},
		{s.repos.Posts, all, &c.Posts},
		{s.repos.Testimonials, all, &c.Testimonials},
		{s.repos.ImpactStats, all, &c.ImpactStats},
		{s.repos.Gallery, all, &c.Gallery},
		{s.repos.Members, all, &c.Members},
		{s.repos.Messages, all, &c.Messages},
		{s.repos.Partnerships, all, &c.Partnerships},
		{s.repos.Volunteers, all, &c.Volunteers},
		{s.repos.Media, all, &c.Media},
		{s.repos.Messages, statusQuery(inquiries.MessageStatusNew), &summary.UnreadMessages},
		{s.repos.Members, statusQuery(members.StatusPending), &summary.PendingMembers},
		{s.repos.Partnerships, statusQuery(inquiries.ReviewStatusPending), &summary.PendingPartners},
		{s.repos.Volunteers, statusQuery(inquiries.ReviewStatusPending), &summary.PendingVolunteers},
		{s.repos.Events, upcoming, &summary.UpcomingEvents},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error {
			n, err := task.counter.Count(gctx, task.query)
			if err != nil {
				return err
			}
			*task.target = n
			return nil
		})
	}
	g.Go(func() error {
		recent := entity.NewQuery()
		recent.Limit = recentMessagesLimit
		messages, err := s.repos.Messages.List(gctx, recent)
		if err != nil {
			return err
		}
		summary.RecentMessages = messages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
