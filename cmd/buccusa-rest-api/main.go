// cmd/buccusa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/buccusa/buccusa-api/internal/api/rest/v1"
	"github.com/buccusa/buccusa-api/internal/app"
	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/infrastructure/connector"
	"github.com/buccusa/buccusa-api/internal/infrastructure/fallback"
	"github.com/buccusa/buccusa-api/internal/infrastructure/mailer"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence"
	"github.com/buccusa/buccusa-api/internal/infrastructure/security"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// schemaRetryInterval spaces migration attempts while the database is down at startup
const schemaRetryInterval = 15 * time.Second

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	notifier *mailer.Notifier
	services *v1.Services
	// stopRetry cancels a pending background migration
	stopRetry context.CancelFunc
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	var opts []persistence.ConnectionOption
	if cfg.Fallback.Enabled {
		opts = append(opts, persistence.WithDeferredPing())
	}
	db, err := persistence.NewDBConnection(cfg.Database, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	ctx := context.Background()
	mediaConnector, err := connector.NewMediaConnector(ctx, &cfg.Media, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media connector: %w", err)
	}

	mail, err := mailer.NewMailer(&cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}
	notifier := mailer.NewNotifier(mail, log, cfg.Mail.SendTimeout)

	services, err := initializeApplicationServices(cfg, db, mediaConnector, mail, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.Fallback.Enabled {
		services.Fallback, err = fallback.Load()
		if err != nil {
			return nil, err
		}
		log.Info("Fallback content loaded")
	}

	deps := &appDependencies{db: db, notifier: notifier, services: services, stopRetry: func() {}}

	prepare := func(ctx context.Context) error {
		return prepareDatabase(ctx, db, &cfg.Auth, services.Auth, log)
	}
	if err := prepare(ctx); err != nil {
		if !cfg.Fallback.Enabled {
			return nil, err
		}
		log.Warn("Database not ready, serving fallback content until it is: ", err)

		retryCtx, cancel := context.WithCancel(context.Background())
		deps.stopRetry = cancel
		go func() {
			if err := persistence.RetryUntilReady(retryCtx, schemaRetryInterval, prepare, log); err == nil {
				log.Info("Database became ready")
			}
		}()
	}

	return deps, nil
}

// prepareDatabase migrates the schema and creates the bootstrap admin; both steps are idempotent
func prepareDatabase(ctx context.Context, db *gorm.DB, settings *config.AuthSettings, auth admins.AuthService, log logger.Logger) error {
	if err := persistence.Migrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	return bootstrapAdmin(ctx, settings, auth, log)
}

// initializeApplicationServices sets up repositories and the services built on them
func initializeApplicationServices(
	cfg *config.RestConfig,
	db *gorm.DB,
	mediaConnector media.Connector,
	mail inquiries.Mailer,
	notifier inquiries.Notifier,
	log logger.Logger,
) (*v1.Services, error) {
	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}
	notifyAddress := cfg.Mail.NotifyAddress

	s := &v1.Services{
		Ping:           func(ctx context.Context) error { return persistence.Ping(ctx, db) },
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
	}

	if s.Programs, err = app.NewRecordService[content.Program](repos.programs, log); err != nil {
		return nil, fmt.Errorf("failed to create program service: %w", err)
	}
	if s.Events, err = app.NewRecordService[content.Event](repos.events, log); err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}
	if s.Leaders, err = app.NewRecordService[content.Leader](repos.leaders, log); err != nil {
		return nil, fmt.Errorf("failed to create leader service: %w", err)
	}
	if s.Posts, err = app.NewPostService(repos.posts, log); err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}
	if s.Testimonials, err = app.NewRecordService[content.Testimonial](repos.testimonials, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial service: %w", err)
	}
	if s.ImpactStats, err = app.NewRecordService[content.ImpactStat](repos.impactStats, log); err != nil {
		return nil, fmt.Errorf("failed to create impact stat service: %w", err)
	}
	if s.Gallery, err = app.NewRecordService[content.GalleryItem](repos.gallery, log); err != nil {
		return nil, fmt.Errorf("failed to create gallery service: %w", err)
	}
	if s.Members, err = app.NewMemberService(repos.members, notifier, notifyAddress, log); err != nil {
		return nil, fmt.Errorf("failed to create member service: %w", err)
	}
	if s.Messages, err = app.NewMessageService(repos.messages, repos.replies, mail, notifier, notifyAddress, log); err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}
	if s.Partnerships, err = app.NewPartnershipService(repos.partnerships, notifier, notifyAddress, log); err != nil {
		return nil, fmt.Errorf("failed to create partnership service: %w", err)
	}
	if s.Volunteers, err = app.NewVolunteerService(repos.volunteers, notifier, notifyAddress, log); err != nil {
		return nil, fmt.Errorf("failed to create volunteer service: %w", err)
	}
	if s.Media, err = app.NewMediaService(mediaConnector, repos.assets, &cfg.Media, log); err != nil {
		return nil, fmt.Errorf("failed to create media service: %w", err)
	}
	if s.Dashboard, err = app.NewDashboardService(app.DashboardRepositories{
		Programs:     repos.programs,
		Events:       repos.events,
		Leaders:      repos.leaders,
		Posts:        repos.posts,
		Testimonials: repos.testimonials,
		ImpactStats:  repos.impactStats,
		Gallery:      repos.gallery,
		Members:      repos.members,
		Messages:     repos.messages,
		Partnerships: repos.partnerships,
		Volunteers:   repos.volunteers,
		Media:        repos.assets,
	}, log); err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	issuer, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	if s.Auth, err = app.NewAuthService(repos.admins, security.NewBcryptHasher(cfg.Auth.BcryptCost), issuer, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return s, nil
}

// bootstrapAdmin creates the first superadmin from configuration on an empty database
func bootstrapAdmin(ctx context.Context, settings *config.AuthSettings, auth admins.AuthService, log logger.Logger) error {
	if settings.BootstrapUsername == "" || settings.BootstrapPassword == "" {
		return nil
	}

	created, err := auth.Bootstrap(ctx, &admins.NewAdmin{
		Username: settings.BootstrapUsername,
		Email:    settings.BootstrapEmail,
		Password: settings.BootstrapPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		log.Info("Created superadmin ", settings.BootstrapUsername)
	}
	return nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.New()
	r.ContextWithFallback = true
	r.Use(gin.Logger(), gin.Recovery(), v1.ErrorLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Media.Provider == config.LocalMediaProvider {
		r.Static("/uploads", cfg.Media.LocalDir)
	}

	v1.SetupRoutes(r, deps.services)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	deps.stopRetry()

	// pending notifications finish before the database goes away
	if err := deps.notifier.Close(ctx); err != nil {
		log.Warn("Notifications still pending at shutdown: ", err)
	}
	if err := persistence.CloseDB(deps.db); err != nil {
		log.Warn("Failed to close database: ", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
