package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpHdlr "jobview/handler/http"
	"jobview/src/core/jobsearch"
	"jobview/src/core/savedjobs"
	"jobview/src/log"
	"jobview/src/postgres/jobctrl"
	"jobview/src/postgres/savedjobctrl"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the jobview API server",
	Long:  `The serve command starts the HTTP server exposing job search and saved-job APIs.`,
	Run:   RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	settingDefaultConfig()
}

func RunServer(cmd *cobra.Command, args []string) {
	if viper.GetString("log.mode") == "production" {
		if err := log.UseProduction(); err != nil {
			log.Error(err, "Failed to switch to production logging")
		}
	}

	db, err := openDB()
	if err != nil {
		log.Error(err, "Failed to connect to database")
		return
	}

	// Placeholder identity until real authentication lands
	demoUser, err := uuid.Parse(viper.GetString("auth.demo_user"))
	if err != nil {
		log.Error(err, "Invalid auth.demo_user, expected a UUID")
		return
	}

	// Initialize services with their repositories
	jobService := jobsearch.NewService(jobctrl.NewRepository(db))
	savedService := savedjobs.NewService(savedjobctrl.NewRepository(db))

	// Initialize HTTP handler; the db ping backs the readiness probe
	handler := httpHdlr.NewHandler(jobService, savedService, func(ctx context.Context) error {
		return db.WithContext(ctx).Exec("SELECT 1").Error
	})

	// Setup gin router
	r := gin.Default()
	r.Use(corsMiddleware())

	// Register routes
	handler.RegisterRoutes(r, httpHdlr.CurrentUser(demoUser))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			return
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err != nil {
		log.Error(err, "Failed to get underlying *sql.DB")
	} else if err := sqlDB.Close(); err != nil {
		log.Error(err, "Error closing database connection")
	}

	log.Info("Server exited")
}

// openDB connects to PostgreSQL. TranslateError maps driver unique-violation
// errors to gorm.ErrDuplicatedKey, which the saved-job repository relies on
// for idempotent creation.
func openDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		viper.GetString("postgres.host"),
		viper.GetString("postgres.user"),
		viper.GetString("postgres.password"),
		viper.GetString("postgres.db"),
		viper.GetString("postgres.port"))

	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = splitOrigins(viper.GetString("server.cors_origins"))
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(config)
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
