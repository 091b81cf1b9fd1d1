package main

import (
	"os"

	"github.com/spf13/cobra"

	"gestiontickets/internal/interfaces/cli/migrate"
	"gestiontickets/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gestiontickets",
		Short: "Ticket management for a membership organization",
		Long:  `Ticket management backend with member administration, a claim board with append-only status history, and spreadsheet bulk import.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
