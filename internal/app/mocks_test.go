//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"

	"github.com/stretchr/testify/mock"
)

type mockRepository[T any] struct {
	mock.Mock
}

func (m *mockRepository[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRepository[T]) List(ctx context.Context, query *entity.Query) ([]*T, error) {
	args := m.Called(ctx, query)
	if items := args.Get(0); items != nil {
		return items.([]*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository[T]) Count(ctx context.Context, query *entity.Query) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if record := args.Get(0); record != nil {
		return record.(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository[T]) UpdateByID(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRepository[T]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReplyRepository struct {
	mock.Mock
}

func (m *mockReplyRepository) Create(ctx context.Context, reply *inquiries.MessageReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *mockReplyRepository) ListByMessageID(ctx context.Context, messageID string) ([]*inquiries.MessageReply, error) {
	args := m.Called(ctx, messageID)
	if replies := args.Get(0); replies != nil {
		return replies.([]*inquiries.MessageReply), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, mail inquiries.Mail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(mail inquiries.Mail) {
	m.Called(mail)
}

func (m *mockNotifier) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *admins.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *mockAdminRepository) List(ctx context.Context) ([]*admins.Admin, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]*admins.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdminRepository) GetByID(ctx context.Context, id string) (*admins.Admin, error) {
	args := m.Called(ctx, id)
	if admin := args.Get(0); admin != nil {
		return admin.(*admins.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepository) GetByLogin(ctx context.Context, identifier string) (*admins.Admin, error) {
	args := m.Called(ctx, identifier)
	if admin := args.Get(0); admin != nil {
		return admin.(*admins.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepository) UpdateByID(ctx context.Context, admin *admins.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *mockAdminRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(admin *admins.Admin) (string, time.Time, error) {
	args := m.Called(admin)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenIssuer) Verify(token string) (*admins.Claims, error) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*admins.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockConnector struct {
	mock.Mock
}

func (m *mockConnector) Provider() string {
	return m.Called().String(0)
}

func (m *mockConnector) Upload(ctx context.Context, storedName, contentType string, data []byte) (*media.Asset, error) {
	args := m.Called(ctx, storedName, contentType, data)
	if asset := args.Get(0); asset != nil {
		return asset.(*media.Asset), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConnector) Delete(ctx context.Context, asset *media.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
