// Package main is the entry point for buccusa-cli, the operator tool for
// database migrations, admin accounts and content seeding.
package main

import (
	"fmt"
	"log"

	"github.com/buccusa/buccusa-api/cmd/buccusa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "buccusa-cli",
		Short: "Operator tool for the BUCCUSA API",
		Long: `buccusa-cli manages the database behind the BUCCUSA API.
It runs schema migrations, creates admin accounts, resets passwords
and seeds the public content tables from the built-in fallback content.

Configuration is read from the file named by --config (or CONFIG_PATH)
with the same environment overrides as the API server.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (defaults to CONFIG_PATH)")

	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}
	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
