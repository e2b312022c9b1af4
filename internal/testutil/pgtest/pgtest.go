//go:build integration

// Package pgtest starts a disposable PostgreSQL container with the schema migrated.
package pgtest

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"reservas/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:16-alpine"

func migrationsSource() string {
	_, file, _, _ := runtime.Caller(0)

	return "file://" + filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations", "postgres")
}

// New returns a connection to a fresh migrated database. The container is removed when the
// test ends.
func New(t *testing.T) *postgres.Connection {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase("reservas"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	mig, err := migrate.New(migrationsSource(), dsn)
	require.NoError(t, err)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	_, _ = mig.Close()

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	conn := &postgres.Connection{Read: db, Write: db}
	t.Cleanup(conn.Close)

	return conn
}
