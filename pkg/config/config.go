package config

import "os"

type AppConfig struct {
	Port           string
	Environment    string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string
	JWTSecret      string
	ServiceName    string
	ServiceVersion string
	MetricsPort    string
	OTLPEndpoint   string
}

func FromEnv() *AppConfig {
	return &AppConfig{
		Port:           envOr("PORT", "8080"),
		Environment:    envOr("APP_ENV", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabasePath:   envOr("DATABASE_PATH", "database.db"),
		MigrationsPath: envOr("MIGRATIONS_PATH", "db/migrations"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ServiceName:    envOr("SERVICE_NAME", "todoapi"),
		ServiceVersion: envOr("SERVICE_VERSION", "1.0.0"),
		MetricsPort:    envOr("METRICS_PORT", "9091"),
		OTLPEndpoint:   envOr("OTLP_ENDPOINT", "localhost:4317"),
	}
}

func (c *AppConfig) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
