package db_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/hotelbot-go/internal/db"
)

// testClient opens a fresh SQLite database in a temp dir with the schema
// applied.
func testClient(t *testing.T) (*db.Client, context.Context) {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := db.NewClient(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err, "should open database")
	t.Cleanup(func() { _ = client.Close() })

	err = client.InitSchema(ctx)
	require.NoError(t, err, "should initialize schema")

	return client, ctx
}

func TestInitSchemaIdempotent(t *testing.T) {
	client, ctx := testClient(t)

	// A second (and third) init on an existing database must be a no-op.
	require.NoError(t, client.InitSchema(ctx))
	require.NoError(t, client.InitSchema(ctx))

	stats, err := client.Statistics(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalMessages, "re-init must not reset the counter row")
}

func TestNewClientBadPath(t *testing.T) {
	_, err := db.NewClient(filepath.Join(t.TempDir(), "missing", "sub", "dir", "test.db"), nil)
	require.Error(t, err)
}
