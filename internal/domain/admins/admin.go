// Package admins defines dashboard administrators and the authentication
// contracts that guard the admin API.
package admins

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/validators"
)

// Roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin is an account allowed to manage site content
type Admin struct {
	entity.Record
	Username     string `validate:"required,alphanum,min=3,max=50"`
	Email        string `validate:"required,email,max=255"`
	PasswordHash string `validate:"required"`
	Name         string `validate:"omitempty,max=150"`
	Role         string `validate:"required,oneof=admin superadmin"`
	Active       bool
	LastLoginAt  *time.Time
}

// Validate for validating Admin struct
func (a *Admin) Validate() error {
	if err := validators.Struct(a); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid admin", err)
	}
	return nil
}

// HasRole reports whether the admin is at least role
func (a *Admin) HasRole(role string) bool {
	return RoleRank(a.Role) >= RoleRank(role)
}

// RoleRank orders roles so that superadmin satisfies admin requirements
func RoleRank(role string) int {
	switch role {
	case RoleSuperAdmin:
		return 2
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}

// NewAdmin holds the input for creating an admin account
type NewAdmin struct {
	Username string `validate:"required,alphanum,min=3,max=50"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
	Name     string `validate:"omitempty,max=150"`
	Role     string `validate:"required,oneof=admin superadmin"`
}

// Validate for validating NewAdmin struct
func (n *NewAdmin) Validate() error {
	if err := validators.Struct(n); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid admin", err)
	}
	return nil
}
