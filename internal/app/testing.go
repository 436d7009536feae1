//go:build integration
// +build integration

package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/dashboard"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/buccusa/buccusa-api/internal/infrastructure/connector"
	"github.com/buccusa/buccusa-api/internal/infrastructure/mailer"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence"
	"github.com/buccusa/buccusa-api/internal/infrastructure/security"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestNotifyAddress receives admin notifications in tests
const TestNotifyAddress = "office@buccusa.org"

// RecordingMailer keeps every mail it is asked to send and fails with Err when set
type RecordingMailer struct {
	mu   sync.Mutex
	Err  error
	Sent []inquiries.Mail
}

// Send implements inquiries.Mailer
func (m *RecordingMailer) Send(_ context.Context, mail inquiries.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, mail)
	return nil
}

// Fail makes every later Send return err
func (m *RecordingMailer) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// Mails returns a copy of the delivered mails
func (m *RecordingMailer) Mails() []inquiries.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]inquiries.Mail(nil), m.Sent...)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	Programs     entity.Service[content.Program]
	Events       entity.Service[content.Event]
	Posts        content.PostService
	Members      members.Service
	Messages     inquiries.MessageService
	Partnerships inquiries.PartnershipService
	Volunteers   inquiries.VolunteerService
	Auth         admins.AuthService
	Media        media.Service
	Dashboard    dashboard.Service

	Mailer   *RecordingMailer
	Notifier *mailer.Notifier
	MediaDir string

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	db := dbContext.DB

	recorder := &RecordingMailer{}
	notifier := mailer.NewNotifier(recorder, log, time.Second)
	t.Cleanup(func() { _ = notifier.Close(context.Background()) })

	mediaSettings := &config.MediaSettings{
		Provider:       config.LocalMediaProvider,
		MaxUploadBytes: 1024,
		AllowedTypes:   []string{"image/"},
		LocalDir:       filepath.Join(t.TempDir(), "uploads"),
		PublicBaseURL:  "http://localhost:5000/uploads",
	}
	mediaConnector, err := connector.NewLocalMediaConnector(mediaSettings, log)
	require.NoError(t, err)

	leaderRepo, err := persistence.NewGormLeaderRepository(db, log)
	require.NoError(t, err)
	testimonialRepo, err := persistence.NewGormTestimonialRepository(db, log)
	require.NoError(t, err)
	impactRepo, err := persistence.NewGormImpactStatRepository(db, log)
	require.NoError(t, err)
	volunteerRepo, err := persistence.NewGormVolunteerRepository(db, log)
	require.NoError(t, err)

	issuer, err := security.NewJWTIssuer("0123456789abcdef0123456789abcdef", "buccusa-api", time.Hour)
	require.NoError(t, err)

	s := &TestServices{Mailer: recorder, Notifier: notifier, MediaDir: mediaSettings.LocalDir, DBContext: dbContext}

	s.Programs, err = NewRecordService[content.Program](dbContext.ProgramRepo, log)
	require.NoError(t, err)
	s.Events, err = NewRecordService[content.Event](dbContext.EventRepo, log)
	require.NoError(t, err)
	s.Posts, err = NewPostService(dbContext.PostRepo, log)
	require.NoError(t, err)
	s.Members, err = NewMemberService(dbContext.MemberRepo, notifier, TestNotifyAddress, log)
	require.NoError(t, err)
	s.Messages, err = NewMessageService(dbContext.MessageRepo, dbContext.ReplyRepo, recorder, notifier, TestNotifyAddress, log)
	require.NoError(t, err)
	s.Partnerships, err = NewPartnershipService(dbContext.PartnershipRepo, notifier, TestNotifyAddress, log)
	require.NoError(t, err)
	s.Volunteers, err = NewVolunteerService(volunteerRepo, notifier, TestNotifyAddress, log)
	require.NoError(t, err)
	s.Auth, err = NewAuthService(dbContext.AdminRepo, security.NewBcryptHasher(bcrypt.MinCost), issuer, log)
	require.NoError(t, err)
	s.Media, err = NewMediaService(mediaConnector, dbContext.AssetRepo, mediaSettings, log)
	require.NoError(t, err)
	s.Dashboard, err = NewDashboardService(DashboardRepositories{
		Programs:     dbContext.ProgramRepo,
		Events:       dbContext.EventRepo,
		Leaders:      leaderRepo,
		Posts:        dbContext.PostRepo,
		Testimonials: testimonialRepo,
		ImpactStats:  impactRepo,
		Gallery:      dbContext.GalleryRepo,
		Members:      dbContext.MemberRepo,
		Messages:     dbContext.MessageRepo,
		Partnerships: dbContext.PartnershipRepo,
		Volunteers:   volunteerRepo,
		Media:        dbContext.AssetRepo,
	}, log)
	require.NoError(t, err)

	return s
}
