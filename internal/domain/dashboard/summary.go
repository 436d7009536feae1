// Package dashboard aggregates counts shown on the admin landing page.
package dashboard

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
)

// Counts holds per-entity totals
type Counts struct {
	Programs     int64
	Events       int64
	Leaders      int64
	Posts        int64
	Testimonials int64
	ImpactStats  int64
	Gallery      int64
	Members      int64
	Messages     int64
	Partnerships int64
	Volunteers   int64
	Media        int64
}

// Summary is the dashboard overview
type Summary struct {
	Counts            Counts
	UnreadMessages    int64
	PendingMembers    int64
	PendingPartners   int64
	PendingVolunteers int64
	UpcomingEvents    int64
	RecentMessages    []*inquiries.ContactMessage
}

// Service builds the dashboard summary
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}
