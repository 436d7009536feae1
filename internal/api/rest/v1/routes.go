package v1

import (
	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/dashboard"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/infrastructure/fallback"

	"github.com/gin-gonic/gin"
)

// Services are the application services the routes delegate to
type Services struct {
	Programs     entity.Service[content.Program]
	Events       entity.Service[content.Event]
	Leaders      entity.Service[content.Leader]
	Posts        content.PostService
	Testimonials entity.Service[content.Testimonial]
	ImpactStats  entity.Service[content.ImpactStat]
	Gallery      entity.Service[content.GalleryItem]
	Members      members.Service
	Messages     inquiries.MessageService
	Partnerships inquiries.PartnershipService
	Volunteers   inquiries.VolunteerService
	Media        media.Service
	Dashboard    dashboard.Service
	Auth         admins.AuthService
	Ping         Pinger
	// Fallback is served by public lists while the database is down; nil disables it
	Fallback *fallback.Content
	// MaxUploadBytes bounds the size of uploaded files
	MaxUploadBytes int64
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, s *Services) {
	fb := s.Fallback
	if fb == nil {
		fb = &fallback.Content{}
	}

	api := r.Group(BasePath) // lookup in version file
	admin := api.Group("/admin", AuthMiddleware(s.Auth))

	api.GET("/health", NewHealthHandler(s.Ping).Health)

	// Content routes
	registerContent(api, admin, "/programs", NewProgramHandler(s.Programs, fb.Programs))
	registerContent(api, admin, "/events", NewEventHandler(s.Events, fb.Events))
	registerContent(api, admin, "/leaders", NewLeaderHandler(s.Leaders, fb.Leaders))
	registerContent(api, admin, "/testimonials", NewTestimonialHandler(s.Testimonials, fb.Testimonials))
	registerContent(api, admin, "/impact-stats", NewImpactStatHandler(s.ImpactStats, fb.ImpactStats))
	registerContent(api, admin, "/gallery", NewGalleryHandler(s.Gallery, fb.Gallery))

	postHandler := NewPostHandler(s.Posts, fb.Posts)
	api.GET("/posts/slug/:slug", postHandler.PublicGetBySlug)
	registerContent(api, admin, "/posts", postHandler)

	// Contact messages
	messageHandler := NewMessageHandler(s.Messages)
	api.POST("/contact", messageHandler.Submit)
	admin.GET("/messages", messageHandler.List)
	admin.GET("/messages/:id", messageHandler.GetByID)
	admin.PATCH("/messages/:id/status", messageHandler.UpdateStatus)
	admin.GET("/messages/:id/replies", messageHandler.ListReplies)
	admin.POST("/messages/:id/replies", messageHandler.Reply)
	admin.DELETE("/messages/:id", messageHandler.DeleteByID)

	// Members
	memberHandler := NewMemberHandler(s.Members)
	api.POST("/members", memberHandler.Submit)
	admin.GET("/members", memberHandler.List)
	admin.POST("/members", memberHandler.Create)
	admin.GET("/members/:id", memberHandler.GetByID)
	admin.PUT("/members/:id", memberHandler.Update)
	admin.PATCH("/members/:id/status", memberHandler.UpdateStatus)
	admin.DELETE("/members/:id", memberHandler.DeleteByID)

	// Partnerships and volunteers
	registerSubmissions(api, admin, "/partnerships", NewPartnershipHandler(s.Partnerships))
	registerSubmissions(api, admin, "/volunteers", NewVolunteerHandler(s.Volunteers))

	// Media
	mediaHandler := NewMediaHandler(s.Media, s.MaxUploadBytes)
	admin.POST("/upload", mediaHandler.Upload)
	admin.GET("/media", mediaHandler.List)
	admin.DELETE("/media/:id", mediaHandler.DeleteByID)

	admin.GET("/dashboard", NewDashboardHandler(s.Dashboard).Summary)

	// Auth
	authHandler := NewAuthHandler(s.Auth)
	api.POST("/auth/login", authHandler.Login)
	authed := api.Group("/auth", AuthMiddleware(s.Auth))
	authed.GET("/me", authHandler.Me)
	authed.PUT("/password", authHandler.ChangePassword)

	// Admin accounts
	adminHandler := NewAdminHandler(s.Auth)
	superadmin := admin.Group("/admins", RequireRole(admins.RoleSuperAdmin))
	superadmin.GET("", adminHandler.List)
	superadmin.POST("", adminHandler.Create)
	superadmin.DELETE("/:id", adminHandler.DeleteByID)
}

func registerContent(public, admin *gin.RouterGroup, path string, h ContentHandler) {
	public.GET(path, h.PublicList)
	public.GET(path+"/:id", h.PublicGetByID)

	admin.GET(path, h.List)
	admin.POST(path, h.Create)
	admin.GET(path+"/:id", h.GetByID)
	admin.PUT(path+"/:id", h.Update)
	admin.DELETE(path+"/:id", h.DeleteByID)
}

func registerSubmissions(public, admin *gin.RouterGroup, path string, h SubmissionHandler) {
	public.POST(path, h.Submit)

	admin.GET(path, h.List)
	admin.GET(path+"/:id", h.GetByID)
	admin.PATCH(path+"/:id/status", h.UpdateStatus)
	admin.DELETE(path+"/:id", h.DeleteByID)
}
