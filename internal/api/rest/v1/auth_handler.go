package v1

import (
	"net/http"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and the caller's own account
type AuthHandler interface {
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

type authHandler struct {
	auth admins.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(auth admins.AuthService) AuthHandler {
	return &authHandler{auth: auth}
}

// Login exchanges credentials for a bearer token
func (h *authHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if req.login() == "" {
		respondError(ctx, apperrors.Validation("username or email is required"))
		return
	}

	session, err := h.auth.Login(ctx, req.login(), req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response{
		Success: true,
		Data: LoginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			Admin:     newAdminResponse(session.Admin),
		},
		Message: "login successful",
	})
}

// Me returns the authenticated admin
func (h *authHandler) Me(ctx *gin.Context) {
	admin := currentAdmin(ctx)
	if admin == nil {
		respondError(ctx, errMissingAdmin)
		return
	}

	respond(ctx, http.StatusOK, newAdminResponse(admin))
}

func (h *authHandler) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	admin := currentAdmin(ctx)
	if admin == nil {
		respondError(ctx, errMissingAdmin)
		return
	}

	if err := h.auth.ChangePassword(ctx, admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, "password updated")
}

// AdminHandler manages admin accounts
type AdminHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type adminHandler struct {
	auth admins.AuthService
}

// NewAdminHandler creates an AdminHandler
func NewAdminHandler(auth admins.AuthService) AdminHandler {
	return &adminHandler{auth: auth}
}

func (h *adminHandler) List(ctx *gin.Context) {
	list, err := h.auth.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, mapAll(list, newAdminResponse))
}

func (h *adminHandler) Create(ctx *gin.Context) {
	var req CreateAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	admin, err := h.auth.CreateAdmin(ctx, req.toDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, newAdminResponse(admin))
}

// DeleteByID removes another admin; deleting yourself is forbidden
func (h *adminHandler) DeleteByID(ctx *gin.Context) {
	actor := currentAdmin(ctx)
	if actor == nil {
		respondError(ctx, errMissingAdmin)
		return
	}

	id := ctx.Param("id")
	if err := h.auth.Delete(ctx, actor.ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, "deleted admin with id "+id)
}
