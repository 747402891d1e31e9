package tournamentdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GetSinglesEntries retrieves a discipline's singles entries with player details.
func (r *Impl) GetSinglesEntries(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*SinglesEntry, error) {
	db = r.resolveDB(db)
	var entries []*SinglesEntry
	err := db.NewSelect().
		Model(&entries).
		Relation("Player").
		Where("se.discipline_id = ?", disciplineID).
		OrderExpr("se.created_at ASC, se.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get singles entries: %w", err)
	}
	return entries, nil
}

// GetDoublesPairs retrieves a discipline's doubles pairs with player details.
func (r *Impl) GetDoublesPairs(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*DoublesPair, error) {
	db = r.resolveDB(db)
	var pairs []*DoublesPair
	err := db.NewSelect().
		Model(&pairs).
		Relation("Player1").
		Relation("Player2").
		Where("dp.discipline_id = ?", disciplineID).
		OrderExpr("dp.created_at ASC, dp.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get doubles pairs: %w", err)
	}
	return pairs, nil
}

// CreateSinglesEntry inserts one singles entry.
func (r *Impl) CreateSinglesEntry(ctx context.Context, db bun.IDB, entry *SinglesEntry) error {
	db = r.resolveDB(db)
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	_, err := db.NewInsert().
		Model(entry).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create singles entry: %w", err)
	}
	return nil
}

// CreateDoublesPair inserts one doubles pair.
func (r *Impl) CreateDoublesPair(ctx context.Context, db bun.IDB, pair *DoublesPair) error {
	db = r.resolveDB(db)
	if pair.ID == uuid.Nil {
		pair.ID = uuid.New()
	}
	_, err := db.NewInsert().
		Model(pair).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create doubles pair: %w", err)
	}
	return nil
}
