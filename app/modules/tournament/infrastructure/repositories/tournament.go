package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a tournament or discipline is not found.
var ErrNotFound = errors.New("not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new tournament repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetAllTournaments retrieves every tournament, newest first.
func (r *Impl) GetAllTournaments(ctx context.Context, db bun.IDB) ([]*Tournament, error) {
	db = r.resolveDB(db)
	var tournaments []*Tournament
	err := db.NewSelect().
		Model(&tournaments).
		OrderExpr("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all tournaments: %w", err)
	}
	return tournaments, nil
}

// GetTournamentByID retrieves a tournament by ID.
func (r *Impl) GetTournamentByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Tournament, error) {
	db = r.resolveDB(db)
	tournament := new(Tournament)
	err := db.NewSelect().
		Model(tournament).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament by ID: %w", err)
	}
	return tournament, nil
}

// CreateTournament inserts a new tournament.
func (r *Impl) CreateTournament(ctx context.Context, db bun.IDB, tournament *Tournament) error {
	db = r.resolveDB(db)
	if tournament.ID == uuid.Nil {
		tournament.ID = uuid.New()
	}
	_, err := db.NewInsert().
		Model(tournament).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

// DeleteTournament removes a tournament. Disciplines and entries cascade at
// the schema level.
func (r *Impl) DeleteTournament(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Tournament)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
