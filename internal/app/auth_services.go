package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
	"github.com/buccusa/buccusa-api/internal/pkg/validators"
)

var errInvalidCredentials = apperrors.New(apperrors.CodeUnauthenticated, "invalid credentials")

// decoyPassword is hashed once so unknown identifiers still pay for a comparison
const decoyPassword = "decoy-password-never-assigned"

// authService implements admins.AuthService
type authService struct {
	repo   admins.Repository
	hasher admins.PasswordHasher
	tokens admins.TokenIssuer
	logger logger.Logger
	now    func() time.Time

	decoyOnce sync.Once
	decoyHash string
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(repo admins.Repository, hasher admins.PasswordHasher, tokens admins.TokenIssuer, logger logger.Logger) (admins.AuthService, error) {
	return &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Login checks credentials and issues a token. Unknown accounts, wrong
// passwords and disabled accounts are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, identifier, password string) (*admins.Session, error) {
	if identifier == "" || password == "" {
		return nil, apperrors.Validation("identifier and password are required")
	}

	admin, err := s.repo.GetByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.compareDecoy(password)
			s.logger.Warn("Failed login attempt", "identifier", identifier)
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		s.logger.Warn("Failed login attempt", "identifier", identifier)
		return nil, errInvalidCredentials
	}
	if !admin.Active {
		s.logger.Warn("Login attempt on disabled account", "admin_id", admin.ID)
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(admin)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	admin.LastLoginAt = &now
	admin.Touch(now)
	if err := s.repo.UpdateByID(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("Admin logged in", "admin_id", admin.ID)
	return &admins.Session{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

// compareDecoy spends the same hashing work as a real password check
func (s *authService) compareDecoy(password string) {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(decoyPassword)
		if err != nil {
			s.logger.Warn("Failed to hash decoy password: ", err)
			return
		}
		s.decoyHash = hash
	})
	_ = s.hasher.Compare(s.decoyHash, password)
}

// Authenticate resolves a token to its admin, who must still exist and be active
func (s *authService) Authenticate(ctx context.Context, token string) (*admins.Admin, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeUnauthenticated, "account no longer exists")
		}
		return nil, err
	}
	if !admin.Active {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "account is disabled")
	}
	return admin, nil
}

type passwordInput struct {
	Password string `validate:"required,min=8,max=72"`
}

func validatePassword(password string) error {
	if err := validators.Struct(&passwordInput{Password: password}); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "password must be between 8 and 72 characters", err)
	}
	return nil
}

// ChangePassword replaces the password after verifying the current one
func (s *authService) ChangePassword(ctx context.Context, adminID, current, next string) error {
	if err := validatePassword(next); err != nil {
		return err
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(admin.PasswordHash, current); err != nil {
		return apperrors.New(apperrors.CodeUnauthenticated, "current password is incorrect")
	}

	return s.setPassword(ctx, admin, next)
}

// ResetPassword replaces the password of the admin with identifier
func (s *authService) ResetPassword(ctx context.Context, identifier, next string) error {
	if err := validatePassword(next); err != nil {
		return err
	}

	admin, err := s.repo.GetByLogin(ctx, identifier)
	if err != nil {
		return err
	}
	return s.setPassword(ctx, admin, next)
}

func (s *authService) setPassword(ctx context.Context, admin *admins.Admin, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	admin.Touch(s.now())
	if err := s.repo.UpdateByID(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Password changed", "admin_id", admin.ID)
	return nil
}

// CreateAdmin hashes the password and stores a new active admin
func (s *authService) CreateAdmin(ctx context.Context, input *admins.NewAdmin) (*admins.Admin, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &admins.Admin{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         input.Role,
		Active:       true,
	}
	admin.Stamp(s.now())

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("Created admin", "admin_id", admin.ID, "role", admin.Role)
	return admin, nil
}

func (s *authService) List(ctx context.Context) ([]*admins.Admin, error) {
	return s.repo.List(ctx)
}

func (s *authService) GetByID(ctx context.Context, id string) (*admins.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes an admin; admins cannot delete themselves
func (s *authService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return apperrors.New(apperrors.CodeForbidden, "you cannot delete your own account")
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Deleted admin", "admin_id", id, "by", actorID)
	return nil
}

// Bootstrap creates the first superadmin when no admin exists
func (s *authService) Bootstrap(ctx context.Context, input *admins.NewAdmin) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	input.Role = admins.RoleSuperAdmin
	if _, err := s.CreateAdmin(ctx, input); err != nil {
		return false, err
	}
	return true, nil
}
