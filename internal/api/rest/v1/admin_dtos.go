package v1

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/dashboard"
	"github.com/buccusa/buccusa-api/internal/domain/media"
)

// LoginRequest accepts the account's username or email under any of three keys
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

func (r *LoginRequest) login() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

// ChangePasswordRequest replaces the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// CreateAdminRequest adds an admin account
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (r *CreateAdminRequest) toDomain() *admins.NewAdmin {
	role := r.Role
	if role == "" {
		role = admins.RoleAdmin
	}
	return &admins.NewAdmin{Username: r.Username, Email: r.Email, Password: r.Password, Name: r.Name, Role: role}
}

// AdminResponse never includes the password hash
type AdminResponse struct {
	RecordResponse
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Name        string     `json:"name,omitempty"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func newAdminResponse(a *admins.Admin) AdminResponse {
	return AdminResponse{
		RecordResponse: newRecordResponse(&a.Record),
		Username:       a.Username,
		Email:          a.Email,
		Name:           a.Name,
		Role:           a.Role,
		Active:         a.Active,
		LastLoginAt:    a.LastLoginAt,
	}
}

// AssetResponse is uploaded media as returned by the API
type AssetResponse struct {
	RecordResponse
	Name        string `json:"name"`
	StoredName  string `json:"storedName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
	Provider    string `json:"provider"`
	UploadedBy  string `json:"uploadedBy,omitempty"`
}

func newAssetResponse(a *media.Asset) AssetResponse {
	return AssetResponse{
		RecordResponse: newRecordResponse(&a.Record),
		Name:           a.Name,
		StoredName:     a.StoredName,
		ContentType:    a.ContentType,
		Size:           a.Size,
		URL:            a.URL,
		Provider:       a.Provider,
		UploadedBy:     a.UploadedBy,
	}
}

// CountsResponse holds per-entity totals
type CountsResponse struct {
	Programs     int64 `json:"programs"`
	Events       int64 `json:"events"`
	Leaders      int64 `json:"leaders"`
	Posts        int64 `json:"posts"`
	Testimonials int64 `json:"testimonials"`
	ImpactStats  int64 `json:"impactStats"`
	Gallery      int64 `json:"gallery"`
	Members      int64 `json:"members"`
	Messages     int64 `json:"messages"`
	Partnerships int64 `json:"partnerships"`
	Volunteers   int64 `json:"volunteers"`
	Media        int64 `json:"media"`
}

// DashboardResponse is the admin overview
type DashboardResponse struct {
	Counts            CountsResponse           `json:"counts"`
	UnreadMessages    int64                    `json:"unreadMessages"`
	PendingMembers    int64                    `json:"pendingMembers"`
	PendingPartners   int64                    `json:"pendingPartnerships"`
	PendingVolunteers int64                    `json:"pendingVolunteers"`
	UpcomingEvents    int64                    `json:"upcomingEvents"`
	RecentMessages    []ContactMessageResponse `json:"recentMessages"`
}

func newDashboardResponse(s *dashboard.Summary) DashboardResponse {
	c := s.Counts
	return DashboardResponse{
		Counts: CountsResponse{
			Programs:     c.Programs,
			Events:       c.Events,
			Leaders:      c.Leaders,
			Posts:        c.Posts,
			Testimonials: c.Testimonials,
			ImpactStats:  c.ImpactStats,
			Gallery:      c.Gallery,
			Members:      c.Members,
			Messages:     c.Messages,
			Partnerships: c.Partnerships,
			Volunteers:   c.Volunteers,
			Media:        c.Media,
		},
		UnreadMessages:    s.UnreadMessages,
		PendingMembers:    s.PendingMembers,
		PendingPartners:   s.PendingPartners,
		PendingVolunteers: s.PendingVolunteers,
		UpcomingEvents:    s.UpcomingEvents,
		RecentMessages:    mapAll(s.RecentMessages, newContactMessageResponse),
	}
}
