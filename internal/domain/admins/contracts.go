package admins

import (
	"context"
	"time"
)

// Repository persists admins
type Repository interface {
	Create(ctx context.Context, admin *Admin) error
	List(ctx context.Context) ([]*Admin, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	// GetByLogin finds an admin whose username or email equals identifier
	GetByLogin(ctx context.Context, identifier string) (*Admin, error)
	UpdateByID(ctx context.Context, admin *Admin) error
	DeleteByID(ctx context.Context, id string) error
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// Claims are the authenticated facts carried by an access token
type Claims struct {
	AdminID   string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies access tokens
type TokenIssuer interface {
	Issue(admin *Admin) (token string, expiresAt time.Time, err error)
	Verify(token string) (*Claims, error)
}

// Session is the result of a successful login
type Session struct {
	Token     string
	ExpiresAt time.Time
	Admin     *Admin
}

// AuthService authenticates admins and manages their accounts
type AuthService interface {
	// Login checks credentials and issues a token
	Login(ctx context.Context, identifier, password string) (*Session, error)
	// Authenticate verifies a token and returns the active admin it belongs to
	Authenticate(ctx context.Context, token string) (*Admin, error)
	// ChangePassword replaces the admin's password after checking the current one
	ChangePassword(ctx context.Context, adminID, current, next string) error
	// ResetPassword replaces a password without checking the current one
	ResetPassword(ctx context.Context, identifier, next string) error
	CreateAdmin(ctx context.Context, input *NewAdmin) (*Admin, error)
	List(ctx context.Context) ([]*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	// Delete removes an admin other than the acting one
	Delete(ctx context.Context, actorID, id string) error
	// Bootstrap creates a superadmin when no admin exists yet; it reports whether one was created
	Bootstrap(ctx context.Context, input *NewAdmin) (bool, error)
}
