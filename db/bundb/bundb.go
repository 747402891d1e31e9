package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
	"github.com/matchpoint-club/tournament-hub/config"
)

// DBService bundles the database connection with the repositories built on it.
type DBService struct {
	PlayerDB     playerdb.Repository
	TournamentDB tournamentdb.Repository
	db           *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService connects to Postgres and initializes the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*playerdb.Player)(nil),
		(*tournamentdb.Tournament)(nil),
		(*tournamentdb.Discipline)(nil),
		(*tournamentdb.SinglesEntry)(nil),
		(*tournamentdb.DoublesPair)(nil),
	)

	return &DBService{
		PlayerDB:     playerdb.NewRepository(db),
		TournamentDB: tournamentdb.NewRepository(db),
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}
