//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/dashboard"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"

	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of entity.Service
type MockService[T any] struct {
	mock.Mock
}

func (m *MockService[T]) Create(ctx context.Context, record *T) (*T, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockService[T]) List(ctx context.Context, query *entity.Query) (*entity.Page[T], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[T]), args.Error(1)
}

func (m *MockService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockService[T]) Update(ctx context.Context, id string, record *T) (*T, error) {
	args := m.Called(ctx, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockService[T]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSubmissionService is a mock implementation of entity.SubmissionService
type MockSubmissionService[T any] struct {
	MockService[T]
}

func (m *MockSubmissionService[T]) Submit(ctx context.Context, record *T) (*T, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSubmissionService[T]) UpdateStatus(ctx context.Context, id, status string) (*T, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// MockPostService is a mock implementation of content.PostService
type MockPostService struct {
	MockService[content.Post]
}

func (m *MockPostService) GetBySlug(ctx context.Context, slug string) (*content.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Post), args.Error(1)
}

// MockMessageService is a mock implementation of inquiries.MessageService
type MockMessageService struct {
	MockSubmissionService[inquiries.ContactMessage]
}

func (m *MockMessageService) Open(ctx context.Context, id string) (*inquiries.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiries.ContactMessage), args.Error(1)
}

func (m *MockMessageService) Reply(ctx context.Context, messageID, adminID, subject, body string) (*inquiries.MessageReply, error) {
	args := m.Called(ctx, messageID, adminID, subject, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiries.MessageReply), args.Error(1)
}

func (m *MockMessageService) Replies(ctx context.Context, messageID string) ([]*inquiries.MessageReply, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inquiries.MessageReply), args.Error(1)
}

// MockAuthService is a mock implementation of admins.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*admins.Session, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*admins.Admin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Admin), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, adminID, current, next string) error {
	args := m.Called(ctx, adminID, current, next)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, identifier, next string) error {
	args := m.Called(ctx, identifier, next)
	return args.Error(0)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, input *admins.NewAdmin) (*admins.Admin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Admin), args.Error(1)
}

func (m *MockAuthService) List(ctx context.Context) ([]*admins.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*admins.Admin), args.Error(1)
}

func (m *MockAuthService) GetByID(ctx context.Context, id string) (*admins.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Admin), args.Error(1)
}

func (m *MockAuthService) Delete(ctx context.Context, actorID, id string) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func (m *MockAuthService) Bootstrap(ctx context.Context, input *admins.NewAdmin) (bool, error) {
	args := m.Called(ctx, input)
	return args.Bool(0), args.Error(1)
}

// MockMediaService is a mock implementation of media.Service
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, upload *media.Upload) (*media.Asset, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Asset), args.Error(1)
}

func (m *MockMediaService) List(ctx context.Context, query *entity.Query) (*entity.Page[media.Asset], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[media.Asset]), args.Error(1)
}

func (m *MockMediaService) GetByID(ctx context.Context, id string) (*media.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Asset), args.Error(1)
}

func (m *MockMediaService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDashboardService is a mock implementation of dashboard.Service
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Summary), args.Error(1)
}
