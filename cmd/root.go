package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobview",
	Short: "Job-listing search and bookmarking backend",
	Long: `jobview serves a paginated, filterable read API over scraped job
postings plus per-user CRUD for saved jobs. The postings table is populated
by an external ingestion pipeline; jobview never writes to it.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
