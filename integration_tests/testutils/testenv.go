//go:build integration

package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	playermigrations "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories/migrations"
	tournamentmigrations "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories/migrations"
	"github.com/matchpoint-club/tournament-hub/config"
	"github.com/matchpoint-club/tournament-hub/db/bundb"
	"github.com/matchpoint-club/tournament-hub/integration_tests/containers"
)

// TestEnvironment holds the resources shared by integration tests.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	DBService   *bundb.DBService
}

// NewTestEnvironment starts a Postgres container, connects to it and applies
// every migration.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	ctx := context.Background()

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	t.Cleanup(func() {
		pgContainer.Terminate(context.Background())
	})

	dbService, err := bundb.NewBunDBService(ctx, config.PostgresConfig{DSN: dsn})
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(func() {
		dbService.GetDB().Close()
	})

	env := &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DB:          dbService.GetDB(),
		DBService:   dbService,
	}
	if err := env.migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return env
}

func (env *TestEnvironment) migrate(ctx context.Context) error {
	// Player tables first, the tournament tables reference them.
	for _, migrations := range []*migrate.Migrations{
		playermigrations.Migrations,
		tournamentmigrations.Migrations,
	} {
		migrator := migrate.NewMigrator(env.DB, migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("migrator init: %w", err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Reset truncates every table so tests start from a clean slate.
func (env *TestEnvironment) Reset(t *testing.T) {
	t.Helper()
	_, err := env.DB.ExecContext(env.Ctx,
		"TRUNCATE doubles_pairs, singles_entries, disciplines, tournaments, players CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
