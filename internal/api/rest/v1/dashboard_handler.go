package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin overview
type DashboardHandler interface {
	Summary(ctx *gin.Context)
}

type dashboardHandler struct {
	service dashboard.Service
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(service dashboard.Service) DashboardHandler {
	return &dashboardHandler{service: service}
}

func (h *dashboardHandler) Summary(ctx *gin.Context) {
	summary, err := h.service.Summary(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, newDashboardResponse(summary))
}

// Pinger reports whether the database is reachable
type Pinger func(ctx context.Context) error

// HealthResponse is the body of the health check
type HealthResponse struct {
	Success  bool      `json:"success"`
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// HealthHandler reports service and database health
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	ping Pinger
}

// NewHealthHandler creates a HealthHandler
func NewHealthHandler(ping Pinger) HealthHandler {
	return &healthHandler{ping: ping}
}

// Health answers 200 when the database responds and 503 otherwise
func (h *healthHandler) Health(ctx *gin.Context) {
	now := time.Now().UTC()
	if err := h.ping(ctx); err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "down", Database: "unavailable", Time: now})
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{Success: true, Status: "up", Database: "connected", Time: now})
}
