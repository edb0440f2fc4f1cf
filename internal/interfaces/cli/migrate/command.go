package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/infrastructure/database"
	"pulseboard/internal/infrastructure/migration"
	"pulseboard/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
	sourceRoot string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new SQL migration for the configured driver",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&sourceRoot, "root", ".", "Repository root the scripts directory is relative to")

	return cmd
}

func initEnv(connect bool) (*migration.GooseStrategy, logger.Interface, error) {
	cfg, err := config.LoadFrom(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return nil, nil, err
	}

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return strategy, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := strategy.Down(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, _, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := strategy.Version(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	strategy, _, err := initEnv(false)
	if err != nil {
		return err
	}

	if err := strategy.Create(sourceRoot, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created\n", args[0])
	return nil
}
