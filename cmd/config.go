package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for PostgreSQL
	viper.BindEnv("postgres.host", "POSTGRES_HOST")
	viper.BindEnv("postgres.port", "POSTGRES_PORT")
	viper.BindEnv("postgres.user", "POSTGRES_USER")
	viper.BindEnv("postgres.password", "POSTGRES_PASSWORD")
	viper.BindEnv("postgres.db", "POSTGRES_DB")

	// Map environment variables to Viper keys for the HTTP server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	viper.BindEnv("server.cors_origins", "CORS_ORIGINS")

	// Auth placeholder and logging
	viper.BindEnv("auth.demo_user", "AUTH_DEMO_USER")
	viper.BindEnv("log.mode", "LOG_MODE")

	// Set default values for PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.db", "jobview")

	// Set default values for the HTTP server
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdown_timeout", "5s")
	viper.SetDefault("server.cors_origins", "http://localhost:5173")

	// Placeholder identity every request is attributed to until real
	// authentication lands.
	viper.SetDefault("auth.demo_user", "00000000-0000-0000-0000-000000000001")
	viper.SetDefault("log.mode", "development")
}
