package commands

import (
	"context"
	"fmt"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/infrastructure/fallback"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DatabaseCommandHandler runs schema and content maintenance
type DatabaseCommandHandler struct{}

// MigrateCmd creates or updates every table
func (h *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if err := persistence.Migrate(env.db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	env.logger.Info("Database migrations completed successfully")
	return nil
}

// SeedCmd copies the built-in content into empty content tables
func (h *DatabaseCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if err := persistence.Migrate(env.db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	c, err := fallback.Load()
	if err != nil {
		return err
	}
	return SeedContent(cmd.Context(), env.db, c, env.logger)
}

// SeedContent inserts c into every content table that has no rows yet
func SeedContent(ctx context.Context, db *gorm.DB, c *fallback.Content, log logger.Logger) error {
	programs, err := persistence.NewGormProgramRepository(db, log)
	if err != nil {
		return err
	}
	events, err := persistence.NewGormEventRepository(db, log)
	if err != nil {
		return err
	}
	leaders, err := persistence.NewGormLeaderRepository(db, log)
	if err != nil {
		return err
	}
	posts, err := persistence.NewGormPostRepository(db, log)
	if err != nil {
		return err
	}
	testimonials, err := persistence.NewGormTestimonialRepository(db, log)
	if err != nil {
		return err
	}
	impactStats, err := persistence.NewGormImpactStatRepository(db, log)
	if err != nil {
		return err
	}
	gallery, err := persistence.NewGormGalleryRepository(db, log)
	if err != nil {
		return err
	}

	// events before gallery items, which may reference them
	seeds := []func() error{
		func() error { return seedTable[content.Program](ctx, "programs", programs, c.Programs, log) },
		func() error { return seedTable[content.Event](ctx, "events", events, c.Events, log) },
		func() error { return seedTable[content.Leader](ctx, "leaders", leaders, c.Leaders, log) },
		func() error { return seedTable[content.Post](ctx, "posts", posts, c.Posts, log) },
		func() error { return seedTable[content.Testimonial](ctx, "testimonials", testimonials, c.Testimonials, log) },
		func() error { return seedTable[content.ImpactStat](ctx, "impact stats", impactStats, c.ImpactStats, log) },
		func() error { return seedTable[content.GalleryItem](ctx, "gallery", gallery, c.Gallery, log) },
	}
	for _, seed := range seeds {
		if err := seed(); err != nil {
			return err
		}
	}
	return nil
}

func seedTable[T any](ctx context.Context, name string, repo entity.Repository[T], items []*T, log logger.Logger) error {
	count, err := repo.Count(ctx, entity.NewQuery())
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if count > 0 {
		log.Info("Skipping ", name, ": table already has ", count, " rows")
		return nil
	}

	for _, item := range items {
		if err := repo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}
	log.Info("Seeded ", len(items), " ", name)
	return nil
}

// InitDatabaseCommands registers migrate and seed with the root command
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler := &DatabaseCommandHandler{}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Fill empty content tables with the built-in content",
		RunE:  handler.SeedCmd,
	}
	rootCmd.AddCommand(seedCmd)

	return nil
}
