package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"internship-assistant/config"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/pkg/log"
)

// Driver names registered by the imported drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// DefaultQueryTimeout bounds a single query when Options leaves it unset.
const DefaultQueryTimeout = 5 * time.Second

// Options tunes the repository.
type Options struct {
	// QueryTimeout bounds each read except the bulk ListPosts and ListSeekers,
	// which run under the caller's context.
	QueryTimeout time.Duration
}

type implRepository struct {
	db  *sql.DB
	opt Options
	l   log.Logger
}

var _ repository.DataAccess = (*implRepository)(nil)

// New creates a DataAccess backed by db. The caller owns db and closes it.
func New(db *sql.DB, opt Options, l log.Logger) repository.DataAccess {
	if db == nil {
		panic("talent/repository/sqldb: db is required")
	}
	if opt.QueryTimeout <= 0 {
		opt.QueryTimeout = DefaultQueryTimeout
	}
	return &implRepository{db: db, opt: opt, l: l}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("talent/repository/sqldb.%s", method)
}

func (r *implRepository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opt.QueryTimeout)
}

func (r *implRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	return r.db.PingContext(ctx)
}
