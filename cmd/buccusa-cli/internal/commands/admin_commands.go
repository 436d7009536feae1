package commands

import (
	"fmt"

	"github.com/buccusa/buccusa-api/internal/app"
	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence"
	"github.com/buccusa/buccusa-api/internal/infrastructure/security"

	"github.com/spf13/cobra"
)

// AdminCommandHandler manages admin accounts directly in the database
type AdminCommandHandler struct{}

func (h *AdminCommandHandler) authService(env *environment) (admins.AuthService, error) {
	repo, err := persistence.NewGormAdminRepository(env.db, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin repository: %w", err)
	}

	issuer, err := security.NewJWTIssuer(env.cfg.Auth.JWTSecret, env.cfg.Auth.Issuer, env.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	return app.NewAuthService(repo, security.NewBcryptHasher(env.cfg.Auth.BcryptCost), issuer, env.logger)
}

// CreateAdminCmd adds an admin account
func (h *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	input := &admins.NewAdmin{}
	var err error
	if input.Username, err = cmd.Flags().GetString("username"); err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	if input.Email, err = cmd.Flags().GetString("email"); err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if input.Password, err = cmd.Flags().GetString("password"); err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	if input.Name, err = cmd.Flags().GetString("name"); err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	if input.Role, err = cmd.Flags().GetString("role"); err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}

	env, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	auth, err := h.authService(env)
	if err != nil {
		return err
	}

	admin, err := auth.CreateAdmin(cmd.Context(), input)
	if err != nil {
		return err
	}
	env.logger.Info("Created ", admin.Role, " ", admin.Username, " with id ", admin.ID)
	return nil
}

// ResetPasswordCmd sets a new password for the admin with the given username or email
func (h *AdminCommandHandler) ResetPasswordCmd(cmd *cobra.Command, _ []string) error {
	identifier, err := cmd.Flags().GetString("login")
	if err != nil {
		return fmt.Errorf("invalid login flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	env, err := openEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	auth, err := h.authService(env)
	if err != nil {
		return err
	}

	if err := auth.ResetPassword(cmd.Context(), identifier, password); err != nil {
		return err
	}
	env.logger.Info("Password updated for ", identifier)
	return nil
}

// InitAdminCommands registers the admin command group with the root command
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler := &AdminCommandHandler{}

	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE:  handler.CreateAdminCmd,
	}
	createCmd.Flags().StringP("username", "u", "", "Username used to log in")
	createCmd.Flags().StringP("email", "e", "", "Email address")
	createCmd.Flags().StringP("password", "p", "", "Initial password (at least 8 characters)")
	createCmd.Flags().StringP("name", "n", "", "Display name")
	createCmd.Flags().StringP("role", "r", admins.RoleAdmin, "Role: admin or superadmin")
	for _, flag := range []string{"username", "email", "password"} {
		if err := createCmd.MarkFlagRequired(flag); err != nil {
			return err
		}
	}
	adminCmd.AddCommand(createCmd)

	var resetCmd = &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an admin",
		RunE:  handler.ResetPasswordCmd,
	}
	resetCmd.Flags().StringP("login", "l", "", "Username or email of the admin")
	resetCmd.Flags().StringP("password", "p", "", "New password (at least 8 characters)")
	for _, flag := range []string{"login", "password"} {
		if err := resetCmd.MarkFlagRequired(flag); err != nil {
			return err
		}
	}
	adminCmd.AddCommand(resetCmd)

	rootCmd.AddCommand(adminCmd)
	return nil
}
