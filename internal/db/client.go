package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// timeLayout is the timestamp format stored in the database. It matches
// SQLite's CURRENT_TIMESTAMP output so DATE() comparisons work on both
// store-written and default-valued rows. All timestamps are UTC.
const timeLayout = "2006-01-02 15:04:05"

// Client wraps the SQLite connection pool. Each operation acquires its own
// connection from the pool and commits before returning; there is no shared
// long-lived transaction state, so concurrent callers are safe.
type Client struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewClient opens (creating if needed) the SQLite database at path.
// WAL mode and a busy timeout let concurrent writers queue instead of
// failing with SQLITE_BUSY.
func NewClient(path string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database opened", "path", path)
	return &Client{db: sqldb, logger: logger}, nil
}

// Close closes the connection pool.
func (c *Client) Close() error {
	c.logger.Info("closing database")
	return c.db.Close()
}

// InitSchema creates the turn and counter tables if absent. Safe to call on
// every process start.
func (c *Client) InitSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	c.logger.Info("schema initialization complete")
	return nil
}

// DB returns the underlying handle, for tests that need raw access.
func (c *Client) DB() *sql.DB {
	return c.db
}
