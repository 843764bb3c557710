// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aoi-f/gh-profile-stats/internal/config"
	"github.com/aoi-f/gh-profile-stats/internal/gateway"
	"github.com/aoi-f/gh-profile-stats/internal/usecase"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregates the user's public repository statistics and outputs as JSON",
	Long: `Aggregates the authenticated user's public repository statistics
(languages, stars, commits, issues, pull requests) and global PR/issue
contributions, and outputs the result in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}

		cfgPath, _ := cmd.InheritedFlags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		// Command-line flags take precedence over the config file.
		opts := usecase.Options{
			ExcludeOrganizations: cfg.ExcludeOrganizations,
			MaxLanguages:         cfg.MaxLanguages,
		}
		if cmd.Flags().Changed("include-orgs") {
			includeOrgs, _ := cmd.Flags().GetBool("include-orgs")
			opts.ExcludeOrganizations = !includeOrgs
		}
		if cmd.Flags().Changed("max-languages") {
			opts.MaxLanguages, _ = cmd.Flags().GetInt("max-languages")
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		summarizer := usecase.NewSummarizer(githubGateway, logger)

		summary, err := summarizer.Summarize(ctx, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build profile summary: %v\n", err)
			os.Exit(1)
		}

		// Marshal the result into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal summary to JSON: %v\n", err)
			os.Exit(1)
		}

		// Print the final JSON to standard output.
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntP("max-languages", "l", -1, "Maximum number of languages in the formatted list (-1 = all)")
	summaryCmd.Flags().Bool("include-orgs", false, "Include organization-owned repositories in the owned set")
}
