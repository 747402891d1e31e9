package importservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// ------------------------
// Fake roster source
// ------------------------

type FakeRosterSource struct {
	calls               int
	FetchAllPlayersFunc func(ctx context.Context) ([]*playerdb.Player, error)
}

func (f *FakeRosterSource) FetchAllPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	f.calls++
	if f.FetchAllPlayersFunc != nil {
		return f.FetchAllPlayersFunc(ctx)
	}
	return nil, nil
}

// Calls returns how many roster snapshots were taken.
func (f *FakeRosterSource) Calls() int {
	return f.calls
}

// ------------------------
// Fake spreadsheet parser
// ------------------------

type FakeParser struct {
	ParseFunc func(fileData []byte, fileName string) ([]RawRow, error)
}

func (f *FakeParser) Parse(fileData []byte, fileName string) ([]RawRow, error) {
	if f.ParseFunc != nil {
		return f.ParseFunc(fileData, fileName)
	}
	return nil, nil
}

// ------------------------
// Fake player repo
// ------------------------

type FakePlayerRepository struct {
	trace []string

	GetAllFunc  func(ctx context.Context, db bun.IDB) ([]*playerdb.Player, error)
	GetByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error)
	CreateFunc  func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	UpdateFunc  func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, id uuid.UUID) error
}

func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{trace: []string{}}
}

func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) GetAll(ctx context.Context, db bun.IDB) ([]*playerdb.Player, error) {
	f.record("GetAll")
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakePlayerRepository) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepository) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	player.ID = uuid.New()
	return nil
}

func (f *FakePlayerRepository) Update(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, player)
	}
	return nil
}

func (f *FakePlayerRepository) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

// ------------------------
// Fake tournament repo
// ------------------------

type FakeTournamentRepository struct {
	trace []string

	CreatedDisciplines []*tournamentdb.Discipline
	CreatedSingles     []*tournamentdb.SinglesEntry
	CreatedDoubles     []*tournamentdb.DoublesPair

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
	f.CreatedDisciplines = append(f.CreatedDisciplines, discipline)
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
	f.CreatedSingles = append(f.CreatedSingles, entry)
	return nil
}

func (f *FakeTournamentRepository) CreateDoublesPair(ctx context.Context, db bun.IDB, pair *tournamentdb.DoublesPair) error {
	f.record("CreateDoublesPair")
	if f.CreateDoublesPairFunc != nil {
		return f.CreateDoublesPairFunc(ctx, db, pair)
	}
	pair.ID = uuid.New()
	f.CreatedDoubles = append(f.CreatedDoubles, pair)
	return nil
}

var (
	_ RosterSource            = (*FakeRosterSource)(nil)
	_ SpreadsheetParser       = (*FakeParser)(nil)
	_ playerdb.Repository     = (*FakePlayerRepository)(nil)
	_ tournamentdb.Repository = (*FakeTournamentRepository)(nil)
)
