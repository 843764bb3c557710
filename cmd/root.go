// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gh-profile-stats",
	Short: "A CLI tool to aggregate a GitHub user's public profile statistics.",
	Long: `gh-profile-stats is a CLI tool that aggregates the public repository
statistics of the authenticated GitHub user (languages, stars, commits,
issues, pull requests) into a single JSON summary report.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON config file (default: ./config.json if present)")
}
