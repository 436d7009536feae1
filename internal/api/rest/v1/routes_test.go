//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/dashboard"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/health"},
		{"POST", "/api/contact"},
		{"POST", "/api/members"},
		{"POST", "/api/partnerships"},
		{"POST", "/api/volunteers"},
		{"POST", "/api/auth/login"},
		{"GET", "/api/auth/me"},
		{"GET", "/api/admin/dashboard"},
		{"POST", "/api/admin/upload"},
		{"GET", "/api/admin/admins"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := api.do(testutil.NewJSONRequest(t, tt.method, tt.url, ""), "")
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"unknown token", "Bearer nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodGet, "/api/admin/programs", "")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := api.do(req, "")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "unauthenticated", decode(t, w).Code)
		})
	}
	api.programs.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAdminAccounts_RequireSuperadmin(t *testing.T) {
	api := newTestAPI(t, nil)
	api.auth.On("List", mock.Anything).Return([]*admins.Admin{api.admin, api.superadmin}, nil)

	w := api.do(testutil.NewJSONRequest(t, http.MethodGet, "/api/admin/admins", ""), adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(testutil.NewJSONRequest(t, http.MethodGet, "/api/admin/admins", ""), superadminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var list []AdminResponse
	decodeData(t, decode(t, w), &list)
	assert.Len(t, list, 2)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestAdminAccounts_Delete(t *testing.T) {
	api := newTestAPI(t, nil)
	api.auth.On("Delete", mock.Anything, api.superadmin.ID, api.superadmin.ID).
		Return(apperrors.New(apperrors.CodeForbidden, "you cannot delete your own account")).Once()
	api.auth.On("Delete", mock.Anything, api.superadmin.ID, api.admin.ID).Return(nil).Once()

	w := api.do(testutil.NewJSONRequest(t, http.MethodDelete, "/api/admin/admins/"+api.superadmin.ID, ""), superadminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(testutil.NewJSONRequest(t, http.MethodDelete, "/api/admin/admins/"+api.admin.ID, ""), superadminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	api.auth.AssertExpectations(t)
}

func TestAdminAccounts_CreateDefaultsRole(t *testing.T) {
	api := newTestAPI(t, nil)
	api.auth.On("CreateAdmin", mock.Anything, mock.MatchedBy(func(n *admins.NewAdmin) bool {
		return n.Role == admins.RoleAdmin && n.Username == "helper"
	})).Return(testAdmin("helper", admins.RoleAdmin), nil).Once()

	body := `{"username":"helper","email":"helper@buccusa.org","password":"long-enough"}`
	w := api.do(testutil.NewJSONRequest(t, http.MethodPost, "/api/admin/admins", body), superadminToken)

	assert.Equal(t, http.StatusCreated, w.Code)
	api.auth.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(testutil.NewJSONRequest(t, http.MethodGet, "/api/health", ""), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"up"`)

	api.pingErr = errors.New("connection refused")
	w = api.do(testutil.NewJSONRequest(t, http.MethodGet, "/api/health", ""), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"down"`)
}

func TestDashboard_Summary(t *testing.T) {
	api := newTestAPI(t, nil)
	summary := &dashboard.Summary{UnreadMessages: 4}
	summary.Counts.Programs = 3
	api.dashboard.On("Summary", mock.Anything).Return(summary, nil).Once()

	w := api.do(testutil.NewJSONRequest(t, http.MethodGet, "/api/admin/dashboard", ""), adminToken)

	require.Equal(t, http.StatusOK, w.Code)
	var got DashboardResponse
	decodeData(t, decode(t, w), &got)
	assert.Equal(t, int64(3), got.Counts.Programs)
	assert.Equal(t, int64(4), got.UnreadMessages)
	assert.Empty(t, got.RecentMessages)
}
