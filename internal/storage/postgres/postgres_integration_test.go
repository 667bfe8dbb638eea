//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/storagetest"
)

// setupPostgresContainer starts a disposable PostgreSQL container and returns
// its connection string. The container is terminated when the test ends.
func setupPostgresContainer(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("splitledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return connStr
}

func TestIntegration_PostgresStore(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	// Migrate once, then give each subtest an empty table.
	admin, err := New(ctx, dsn, Options{Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	storagetest.Run(t, func(t *testing.T) storage.Store {
		_, err := admin.pool.Exec(ctx, "TRUNCATE expenses")
		require.NoError(t, err)

		store, err := New(ctx, dsn, Options{})
		require.NoError(t, err)
		return store
	})
}

func TestIntegration_MigrationsAreIdempotent(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	first, err := New(ctx, dsn, Options{Migrate: true})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, dsn, Options{Migrate: true})
	require.NoError(t, err, "re-running migrations should be a no-op")
	defer second.Close()
}

func TestIntegration_AmountPrecision(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	store, err := New(ctx, dsn, Options{Migrate: true})
	require.NoError(t, err)
	defer store.Close()

	expense := &models.Expense{Amount: 10.006, Description: "Rounded by NUMERIC(12,2)", PaidBy: "Alice"}
	require.NoError(t, store.CreateExpense(ctx, expense))

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.01, got.Amount, 0.001)
}

func TestIntegration_NonUUIDIsNotFound(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	store, err := New(ctx, dsn, Options{Migrate: true})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.GetExpense(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.DeleteExpense(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
