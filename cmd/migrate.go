package cmd

import (
	"github.com/spf13/cobra"

	"jobview/src/log"
	"jobview/src/postgres/jobctrl"
	"jobview/src/postgres/savedjobctrl"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `The migrate command creates the jobs and user_saved_jobs tables,
including the unique indexes on external_job_id and (user_id, job_id).
In production the jobs table usually already exists, owned by the
ingestion pipeline; AutoMigrate leaves existing columns alone.`,
	Run: RunMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func RunMigrate(cmd *cobra.Command, args []string) {
	db, err := openDB()
	if err != nil {
		log.Error(err, "Failed to connect to database")
		return
	}

	if err := db.AutoMigrate(&jobctrl.Job{}, &savedjobctrl.SavedJob{}); err != nil {
		log.Error(err, "Migration failed")
		return
	}

	log.Info("Migration complete")
}
