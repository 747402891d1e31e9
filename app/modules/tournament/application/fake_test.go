package tournamentservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// FakeTournamentRepository provides a programmable stub for the
// tournamentdb.Repository interface.
type FakeTournamentRepository struct {
	trace []string

	GetAllTournamentsFunc          func(ctx context.Context, db bun.IDB) ([]*tournamentdb.Tournament, error)
	GetTournamentByIDFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error)
	CreateTournamentFunc           func(ctx context.Context, db bun.IDB, tournament *tournamentdb.Tournament) error
	DeleteTournamentFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	GetDisciplinesByTournamentFunc func(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]*tournamentdb.Discipline, error)
	GetDisciplineByIDFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Discipline, error)
	CreateDisciplineFunc           func(ctx context.Context, db bun.IDB, discipline *tournamentdb.Discipline) error
	DeleteDisciplineFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	GetSinglesEntriesFunc          func(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*tournamentdb.SinglesEntry, error)
	GetDoublesPairsFunc            func(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*tournamentdb.DoublesPair, error)
	CreateSinglesEntryFunc         func(ctx context.Context, db bun.IDB, entry *tournamentdb.SinglesEntry) error
	CreateDoublesPairFunc          func(ctx context.Context, db bun.IDB, pair *tournamentdb.DoublesPair) error
}

func NewFakeTournamentRepository() *FakeTournamentRepository {
	return &FakeTournamentRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeTournamentRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTournamentRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTournamentRepository) GetAllTournaments(ctx context.Context, db bun.IDB) ([]*tournamentdb.Tournament, error) {
	f.record("GetAllTournaments")
	if f.GetAllTournamentsFunc != nil {
		return f.GetAllTournamentsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) GetTournamentByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error) {
	f.record("GetTournamentByID")
	if f.GetTournamentByIDFunc != nil {
		return f.GetTournamentByIDFunc(ctx, db, id)
	}
	return &tournamentdb.Tournament{ID: id}, nil
}

func (f *FakeTournamentRepository) CreateTournament(ctx context.Context, db bun.IDB, tournament *tournamentdb.Tournament) error {
	f.record("CreateTournament")
	if f.CreateTournamentFunc != nil {
		return f.CreateTournamentFunc(ctx, db, tournament)
	}
	tournament.ID = uuid.New()
	return nil
}

func (f *FakeTournamentRepository) DeleteTournament(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteTournament")
	if f.DeleteTournamentFunc != nil {
		return f.DeleteTournamentFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeTournamentRepository) GetDisciplinesByTournament(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]*tournamentdb.Discipline, error) {
	f.record("GetDisciplinesByTournament")
	if f.GetDisciplinesByTournamentFunc != nil {
		return f.GetDisciplinesByTournamentFunc(ctx, db, tournamentID)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) GetDisciplineByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Discipline, error) {
	f.record("GetDisciplineByID")
	if f.GetDisciplineByIDFunc != nil {
		return f.GetDisciplineByIDFunc(ctx, db, id)
	}
	return nil, tournamentdb.ErrNotFound
}

func (f *FakeTournamentRepository) CreateDiscipline(ctx context.Context, db bun.IDB, discipline *tournamentdb.Discipline) error {
	f.record("CreateDiscipline")
	if f.CreateDisciplineFunc != nil {
		return f.CreateDisciplineFunc(ctx, db, discipline)
	}
	discipline.ID = uuid.New()
	return nil
}

func (f *FakeTournamentRepository) DeleteDiscipline(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteDiscipline")
	if f.DeleteDisciplineFunc != nil {
		return f.DeleteDisciplineFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeTournamentRepository) GetSinglesEntries(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*tournamentdb.SinglesEntry, error) {
	f.record("GetSinglesEntries")
	if f.GetSinglesEntriesFunc != nil {
		return f.GetSinglesEntriesFunc(ctx, db, disciplineID)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) GetDoublesPairs(ctx context.Context, db bun.IDB, disciplineID uuid.UUID) ([]*tournamentdb.DoublesPair, error) {
	f.record("GetDoublesPairs")
	if f.GetDoublesPairsFunc != nil {
		return f.GetDoublesPairsFunc(ctx, db, disciplineID)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) CreateSinglesEntry(ctx context.Context, db bun.IDB, entry *tournamentdb.SinglesEntry) error {
	f.record("CreateSinglesEntry")
	if f.CreateSinglesEntryFunc != nil {
		return f.CreateSinglesEntryFunc(ctx, db, entry)
	}
	entry.ID = uuid.New()
	return nil
}

func (f *FakeTournamentRepository) CreateDoublesPair(ctx context.Context, db bun.IDB, pair *tournamentdb.DoublesPair) error {
	f.record("CreateDoublesPair")
	if f.CreateDoublesPairFunc != nil {
		return f.CreateDoublesPairFunc(ctx, db, pair)
	}
	pair.ID = uuid.New()
	return nil
}

var _ tournamentdb.Repository = (*FakeTournamentRepository)(nil)
