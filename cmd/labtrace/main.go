package main

import (
	"os"

	"github.com/spf13/cobra"

	"labtrace/internal/interfaces/cli/migrate"
	"labtrace/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "labtrace",
		Short: "labtrace - laboratory test records service",
		Long:  `labtrace tracks units under test through an EMI/EMC laboratory: registration with code allocation, checkout, equipment calibration and test requests.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
