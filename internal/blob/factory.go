package blob

import (
	"context"
	"fmt"
)

// Config selects and configures a blob driver. Zero values fall back to the
// per-driver defaults documented on each constructor.
type Config struct {
	Driver Driver

	// FSRoot is the directory root when Driver is fs.
	FSRoot string

	// SQLitePath is the database file when Driver is sqlite.
	SQLitePath string

	// DatabaseURL is the Postgres connection string when Driver is postgres.
	DatabaseURL string

	// S3 configures the bucket when Driver is s3.
	S3 S3Config
}

// Open constructs the Store selected by cfg.Driver (default sqlite).
// Stores holding external resources implement io.Closer; callers should
// type-assert and close on shutdown.
func Open(ctx context.Context, cfg Config) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFilesystem:
		return NewFilesystem(cfg.FSRoot)
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "./fishlog.db"
		}
		return NewSQLite(path)
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required for postgres driver")
		}
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
