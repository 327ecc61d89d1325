// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkarlsen/fishlog/backend/internal/blob"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Blob selects and configures the persistence backend.
	//
	//	BLOB_DRIVER: memory|fs|sqlite|postgres|s3 (default sqlite)
	//	BLOB_FS_ROOT: directory root when driver=fs (default ./blobdata)
	//	SQLITE_PATH: database file when driver=sqlite (default ./fishlog.db)
	//	DATABASE_URL: Postgres connection string, required when driver=postgres
	//	S3_BUCKET: required when driver=s3
	//	S3_REGION, S3_ENDPOINT, S3_PATH_STYLE: optional S3 settings
	Blob blob.Config
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any variables the selected blob driver requires
// but does not find.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Blob: blob.Config{
			Driver:      blob.Driver(getEnv("BLOB_DRIVER", string(blob.DriverSQLite))),
			FSRoot:      os.Getenv("BLOB_FS_ROOT"),
			SQLitePath:  os.Getenv("SQLITE_PATH"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			S3: blob.S3Config{
				Bucket:    os.Getenv("S3_BUCKET"),
				Region:    os.Getenv("S3_REGION"),
				Endpoint:  os.Getenv("S3_ENDPOINT"),
				PathStyle: strings.EqualFold(os.Getenv("S3_PATH_STYLE"), "true"),
			},
		},
	}

	var missing []string

	switch cfg.Blob.Driver {
	case blob.DriverPostgres:
		if cfg.Blob.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case blob.DriverS3:
		if cfg.Blob.S3.Bucket == "" {
			missing = append(missing, "S3_BUCKET")
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
