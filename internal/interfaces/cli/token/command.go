// Package token mints identity tokens for local development, standing in for
// the external identity provider.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/infrastructure/auth"
	"pulseboard/internal/infrastructure/config"
)

var (
	env        string
	configPath string
	userID     string
	email      string
	firstName  string
	lastName   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development identity token",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&userID, "user", "", "User id (token subject)")
	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "User first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "User last name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if env == "production" {
		return fmt.Errorf("refusing to mint tokens in production")
	}

	cfg, err := config.LoadFrom(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jwt := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	signed, err := jwt.Issue(access.Caller{
		ID:        userID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
