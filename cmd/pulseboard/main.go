package main

import (
	"os"

	"github.com/spf13/cobra"

	"pulseboard/internal/interfaces/cli/migrate"
	"pulseboard/internal/interfaces/cli/seed"
	"pulseboard/internal/interfaces/cli/server"
	"pulseboard/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "pulseboard",
		Short:        "Pulseboard - community feedback and ticket tracker",
		Long:         `Pulseboard runs the feedback API server and its database, seed and development token tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
