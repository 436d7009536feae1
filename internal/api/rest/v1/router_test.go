//go:build unit
// +build unit

package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/infrastructure/fallback"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken      = "admin-token"
	superadminToken = "superadmin-token"
)

var testNow = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

// testAPI is a router wired to mock services
type testAPI struct {
	router       *gin.Engine
	programs     *MockService[content.Program]
	events       *MockService[content.Event]
	leaders      *MockService[content.Leader]
	posts        *MockPostService
	testimonials *MockService[content.Testimonial]
	impactStats  *MockService[content.ImpactStat]
	gallery      *MockService[content.GalleryItem]
	members      *MockSubmissionService[members.Member]
	messages     *MockMessageService
	partnerships *MockSubmissionService[inquiries.PartnershipRequest]
	volunteers   *MockSubmissionService[inquiries.VolunteerSubmission]
	media        *MockMediaService
	dashboard    *MockDashboardService
	auth         *MockAuthService
	pingErr      error
	admin        *admins.Admin
	superadmin   *admins.Admin
}

func newTestAPI(t *testing.T, fallbackContent *fallback.Content) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		router:       gin.New(),
		programs:     new(MockService[content.Program]),
		events:       new(MockService[content.Event]),
		leaders:      new(MockService[content.Leader]),
		posts:        new(MockPostService),
		testimonials: new(MockService[content.Testimonial]),
		impactStats:  new(MockService[content.ImpactStat]),
		gallery:      new(MockService[content.GalleryItem]),
		members:      new(MockSubmissionService[members.Member]),
		messages:     new(MockMessageService),
		partnerships: new(MockSubmissionService[inquiries.PartnershipRequest]),
		volunteers:   new(MockSubmissionService[inquiries.VolunteerSubmission]),
		media:        new(MockMediaService),
		dashboard:    new(MockDashboardService),
		auth:         new(MockAuthService),
		admin:        testAdmin("editor", admins.RoleAdmin),
		superadmin:   testAdmin("root", admins.RoleSuperAdmin),
	}

	api.auth.On("Authenticate", mock.Anything, adminToken).Return(api.admin, nil).Maybe()
	api.auth.On("Authenticate", mock.Anything, superadminToken).Return(api.superadmin, nil).Maybe()
	api.auth.On("Authenticate", mock.Anything, mock.Anything).
		Return(nil, apperrors.New(apperrors.CodeUnauthenticated, "invalid token")).Maybe()

	SetupRoutes(api.router, &Services{
		Programs:       api.programs,
		Events:         api.events,
		Leaders:        api.leaders,
		Posts:          api.posts,
		Testimonials:   api.testimonials,
		ImpactStats:    api.impactStats,
		Gallery:        api.gallery,
		Members:        api.members,
		Messages:       api.messages,
		Partnerships:   api.partnerships,
		Volunteers:     api.volunteers,
		Media:          api.media,
		Dashboard:      api.dashboard,
		Auth:           api.auth,
		Ping:           func(context.Context) error { return api.pingErr },
		Fallback:       fallbackContent,
		MaxUploadBytes: 1024,
	})
	return api
}

func testAdmin(username, role string) *admins.Admin {
	a := &admins.Admin{Username: username, Email: username + "@buccusa.org", Role: role, Active: true}
	a.Stamp(testNow)
	return a
}

func (api *testAPI) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

// envelope decodes any response body of the API
type envelope struct {
	Success  bool            `json:"success"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Total    int64           `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
	Fallback bool            `json:"fallback"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func pageOf[T any](items ...*T) *entity.Page[T] {
	return &entity.Page[T]{Items: items, Total: int64(len(items)), Limit: entity.DefaultLimit}
}
