//go:build integration

package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("caramello"),
		postgres.WithUsername("caramello"),
		postgres.WithPassword("caramello"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return url
}

func TestMigrationsApplyTwice(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, setupPostgres(t))
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	_, err = WriteMigration(dir, "schema", NewVersion(time.Now()), compileSample(t))
	require.NoError(t, err)

	_, err = ApplyMigrations(ctx, db, dir)
	require.NoError(t, err)
	// foreign keys already exist on the second run
	_, err = ApplyMigrations(ctx, db, dir)
	require.NoError(t, err)

	var tables int
	require.NoError(t, db.QueryRowContext(ctx,
		`select count(*) from information_schema.tables where table_schema = 'public'`).Scan(&tables))
	assert.Equal(t, 4, tables)

	_, err = db.ExecContext(ctx, `insert into "users" ("full_name", "email") values ('Ann', 'ann@example.com')`)
	require.NoError(t, err)
	var active bool
	require.NoError(t, db.QueryRowContext(ctx, `select "is_active" from "users"`).Scan(&active))
	assert.True(t, active)
}
