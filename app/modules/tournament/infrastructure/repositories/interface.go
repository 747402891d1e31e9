package tournamentdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for tournament persistence.
type Repository interface {
	// GetAllTournaments retrieves every tournament, newest first.
	GetAllTournaments(ctx context.Context, db bun.IDB) ([]*Tournament, error)

	// GetTournamentByID retrieves a tournament by ID.
	GetTournamentByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Tournament, error)

	// CreateTournament inserts a new tournament.
	CreateTournament(ctx context.Context, db bun.IDB, tournament *Tournament) error

	// DeleteTournament removes a tournament and everything under it.
	DeleteTournament(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// GetDisciplinesByTournament retrieves a tournament's disciplines in
	// creation order.
	GetDisciplinesByTournament(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]*Discipline, error)

	// GetDisciplineByID retrieves a discipline by ID.
	GetDisciplineByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Discipline, error)

	// CreateDiscipline inserts a new discipline.
	CreateDiscipline(ctx context.Context, db bun.IDB, discipline *Discipline) error

	// DeleteDiscipline removes a discipline and its entries.
	DeleteDiscipline(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// GetSinglesEntries retrieves a discipline's singles entries with player
	// details, in creation order.
	GetSinglesEntries(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*SinglesEntry, error)

	// GetDoublesPairs retrieves a discipline's doubles pairs with player
	// details, in creation order.
	GetDoublesPairs(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*DoublesPair, error)

	// CreateSinglesEntry inserts one singles entry.
	CreateSinglesEntry(ctx context.Context, db bun.IDB, entry *SinglesEntry) error

	// CreateDoublesPair inserts one doubles pair.
	CreateDoublesPair(ctx context.Context, db bun.IDB, pair *DoublesPair) error
}
