package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "painplanner",
		Short: "Holistic Pain Profile & Action Planner",
		Long: `painplanner walks you through six short sections about your pain,
then builds a summary you can save as a PDF, copy into an email or file
as a DICOM document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: ./painplanner.yaml if present)")

	root.AddCommand(wizardCmd(&configPath))
	root.AddCommand(renderCmd(&configPath))
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "painplanner %s\n", version)
		},
	}
}
