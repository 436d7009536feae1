package commands

import (
	"fmt"
	"os"

	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence"
	"github.com/buccusa/buccusa-api/internal/pkg/config"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// environment holds what every command needs once configuration is loaded
type environment struct {
	cfg    *config.RestConfig
	db     *gorm.DB
	logger logger.Logger
}

// openEnvironment loads configuration, sets up the logger and connects to the database
func openEnvironment(cmd *cobra.Command) (*environment, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return &environment{cfg: cfg, db: db, logger: log}, nil
}

func (e *environment) close() {
	if err := persistence.CloseDB(e.db); err != nil {
		e.logger.Warn("Failed to close database: ", err)
	}
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}
	return loggerInstance, nil
}
