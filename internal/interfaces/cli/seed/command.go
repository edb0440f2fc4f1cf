package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	orgUsecases "pulseboard/internal/application/organization/usecases"
	ticketUsecases "pulseboard/internal/application/ticket/usecases"
	voteUsecases "pulseboard/internal/application/vote/usecases"
	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/infrastructure/database"
	"pulseboard/internal/infrastructure/metrics"
	"pulseboard/internal/infrastructure/repository"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/services/markdown"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert organizations, tickets and votes from a YAML file",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	fixtures, err := LoadFile(file)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("seed")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	orgRepo := repository.NewOrganizationRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	ledger := repository.NewVoteRepository(db)
	renderer := markdown.NewRenderer()

	seeder := NewSeeder(
		orgUsecases.NewCreateOrganizationUseCase(orgRepo, renderer, log),
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, orgRepo, renderer, log),
		ticketUsecases.NewChangeStatusUseCase(ticketRepo, orgRepo, ledger, log),
		voteUsecases.NewToggleVoteUseCase(ledger, ticketRepo, metrics.NewRecorder(), log),
		log,
	)

	summary, err := seeder.Run(cmd.Context(), fixtures)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d organizations, %d tickets, %d votes\n",
		summary.Organizations, summary.Tickets, summary.Votes)
	return nil
}
