package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgDB is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type pgDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres implements Store on a blobs table (see migrations/).
// Useful when the log should live in an existing shared database rather than
// a local file.
type Postgres struct {
	db   pgDB
	pool *pgxpool.Pool // nil when constructed over a tx/conn
}

// NewPostgres constructs a Postgres blob store over an existing connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation. The caller owns the connection's lifetime.
func NewPostgres(db pgDB) *Postgres {
	return &Postgres{db: db}
}

// OpenPostgres connects a pool to databaseURL and verifies it is reachable.
// Close the returned store when done.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("blob.OpenPostgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("blob.OpenPostgres: ping: %w", err)
	}
	return &Postgres{db: pool, pool: pool}, nil
}

// Driver returns the blob driver identifier.
func (p *Postgres) Driver() Driver { return DriverPostgres }

// Put upserts data under key.
func (p *Postgres) Put(ctx context.Context, key string, data []byte) error {
	const q = `
		INSERT INTO blobs (key, data, updated_at)
		VALUES (@key, @data, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "data": data}); err != nil {
		return fmt.Errorf("blob.Postgres.Put: %w", err)
	}
	return nil
}

// Get returns the blob stored under key.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT data FROM blobs WHERE key = @key`

	var data []byte
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob.Postgres.Get: %w", err)
	}
	return data, nil
}

// Delete removes the blob under key, reporting whether it existed.
func (p *Postgres) Delete(ctx context.Context, key string) (bool, error) {
	const q = `DELETE FROM blobs WHERE key = @key`

	tag, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key})
	if err != nil {
		return false, fmt.Errorf("blob.Postgres.Delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Close closes the pool when this store owns one.
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
