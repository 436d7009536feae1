package v1

import (
	"net/http"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "admin"

// AuthMiddleware requires a valid bearer token and stores the admin in the context
func AuthMiddleware(auth admins.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		scheme, token, ok := strings.Cut(ctx.GetHeader("Authorization"), " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			respondError(ctx, apperrors.New(apperrors.CodeUnauthenticated, "missing bearer token"))
			return
		}

		admin, err := auth.Authenticate(ctx, token)
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(adminContextKey, admin)
		ctx.Next()
	}
}

// RequireRole rejects admins ranked below role. It must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		admin := currentAdmin(ctx)
		if admin == nil {
			respondError(ctx, apperrors.ErrUnauthenticated)
			return
		}
		if !admin.HasRole(role) {
			respondError(ctx, apperrors.New(apperrors.CodeForbidden, "requires role "+role))
			return
		}
		ctx.Next()
	}
}

func currentAdmin(ctx *gin.Context) *admins.Admin {
	value, ok := ctx.Get(adminContextKey)
	if !ok {
		return nil
	}
	admin, _ := value.(*admins.Admin)
	return admin
}

// ErrorLogger logs the errors of requests that ended with a server error
func ErrorLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Writer.Status() < http.StatusInternalServerError || len(ctx.Errors) == 0 {
			return
		}
		log.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"error", ctx.Errors.Last().Error())
	}
}

var errMissingAdmin = apperrors.New(apperrors.CodeUnauthenticated, "authentication required")
