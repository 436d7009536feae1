//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	ProgramRepo     entity.Repository[content.Program]
	EventRepo       entity.Repository[content.Event]
	GalleryRepo     entity.Repository[content.GalleryItem]
	PostRepo        content.PostRepository
	MemberRepo      entity.Repository[members.Member]
	MessageRepo     entity.Repository[inquiries.ContactMessage]
	ReplyRepo       inquiries.ReplyRepository
	PartnershipRepo entity.Repository[inquiries.PartnershipRequest]
	AdminRepo       admins.Repository
	AssetRepo       media.Repository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		// a file keeps every pooled connection on the same database
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "test.db"),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.ProgramRepo, err = NewGormProgramRepository(db, log)
	require.NoError(t, err)
	tc.EventRepo, err = NewGormEventRepository(db, log)
	require.NoError(t, err)
	tc.GalleryRepo, err = NewGormGalleryRepository(db, log)
	require.NoError(t, err)
	tc.PostRepo, err = NewGormPostRepository(db, log)
	require.NoError(t, err)
	tc.MemberRepo, err = NewGormMemberRepository(db, log)
	require.NoError(t, err)
	tc.MessageRepo, err = NewGormContactMessageRepository(db, log)
	require.NoError(t, err)
	tc.ReplyRepo, err = NewGormReplyRepository(db, log)
	require.NoError(t, err)
	tc.PartnershipRepo, err = NewGormPartnershipRepository(db, log)
	require.NoError(t, err)
	tc.AdminRepo, err = NewGormAdminRepository(db, log)
	require.NoError(t, err)
	tc.AssetRepo, err = NewGormAssetRepository(db, log)
	require.NoError(t, err)

	return tc
}

// testNow is a fixed, second-precision timestamp
var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// CreateTestProgram creates a stamped program with default values
func CreateTestProgram(t *testing.T, title string, active bool) *content.Program {
	t.Helper()

	p := &content.Program{Title: title, Description: title + " description", Category: "youth", Active: active}
	p.Stamp(testNow)
	return p
}

// CreateTestEvent creates a stamped, published event starting at startsAt
func CreateTestEvent(t *testing.T, title string, startsAt time.Time) *content.Event {
	t.Helper()

	e := &content.Event{Title: title, Description: "details", StartsAt: startsAt, Published: true}
	e.Stamp(testNow)
	return e
}

// CreateTestPost creates a stamped post with a slug derived from title
func CreateTestPost(t *testing.T, title string, published bool) *content.Post {
	t.Helper()

	p := &content.Post{Title: title, Body: "body of " + title, Published: published}
	p.Stamp(testNow)
	p.Normalize(testNow)
	return p
}

// CreateTestMessage creates a stamped contact message in status new
func CreateTestMessage(t *testing.T, email string) *inquiries.ContactMessage {
	t.Helper()

	m := &inquiries.ContactMessage{Name: "Visitor", Email: email, Message: "Hello", Status: inquiries.MessageStatusNew}
	m.Stamp(testNow)
	return m
}

// CreateTestAdmin creates a stamped, active admin
func CreateTestAdmin(t *testing.T, username string) *admins.Admin {
	t.Helper()

	a := &admins.Admin{
		Username:     username,
		Email:        username + "@buccusa.org",
		PasswordHash: "$2a$04$placeholderhashplaceholderhashplaceholderhash",
		Role:         admins.RoleAdmin,
		Active:       true,
	}
	a.Stamp(testNow)
	return a
}
