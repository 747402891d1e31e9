package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GetDisciplinesByTournament retrieves a tournament's disciplines in creation order.
func (r *Impl) GetDisciplinesByTournament(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]*Discipline, error) {
	db = r.resolveDB(db)
	var disciplines []*Discipline
	err := db.NewSelect().
		Model(&disciplines).
		Where("tournament_id = ?", tournamentID).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get disciplines: %w", err)
	}
	return disciplines, nil
}

// GetDisciplineByID retrieves a discipline by ID.
func (r *Impl) GetDisciplineByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Discipline, error) {
	db = r.resolveDB(db)
	discipline := new(Discipline)
	err := db.NewSelect().
		Model(discipline).
		Where("d.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get discipline by ID: %w", err)
	}
	return discipline, nil
}

// CreateDiscipline inserts a new discipline.
func (r *Impl) CreateDiscipline(ctx context.Context, db bun.IDB, discipline *Discipline) error {
	db = r.resolveDB(db)
	if discipline.ID == uuid.Nil {
		discipline.ID = uuid.New()
	}
	_, err := db.NewInsert().
		Model(discipline).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create discipline: %w", err)
	}
	return nil
}

// DeleteDiscipline removes a discipline. Its entries cascade at the schema level.
func (r *Impl) DeleteDiscipline(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Discipline)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete discipline: %w", err)
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
