package integration_tests

import (
	"context"
	"log"
	"os"
	"testing"

	"applytrack-api/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// getTestPool establishes a connection pool to the test database. It reads
// the DSN from the TEST_DATABASE_URL environment variable and skips the
// test when it is not set.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set; skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to create test connection pool")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx), "Failed to ping test database")
	require.NoError(t, postgres.EnsureSchema(ctx, pool), "Failed to ensure test schema")
	return pool
}

// cleanupTables truncates the given tables for test isolation.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := pool.Exec(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "Failed to truncate %s table", table)
	}
	log.Printf("Cleaned tables: %v", tables)
}
