package tournamenthandlers

import (
	"context"

	"github.com/google/uuid"

	tournamentservice "github.com/matchpoint-club/tournament-hub/app/modules/tournament/application"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// FakeTournamentService provides a programmable stub for the tournament service.
type FakeTournamentService struct {
	ListTournamentsFunc        func(ctx context.Context) ([]*tournamentdb.Tournament, error)
	GetTournamentFunc          func(ctx context.Context, id uuid.UUID) (*tournamentdb.Tournament, error)
	CreateTournamentFunc       func(ctx context.Context, name string) (*tournamentdb.Tournament, error)
	DeleteTournamentFunc       func(ctx context.Context, id uuid.UUID) error
	ListDisciplinesFunc        func(ctx context.Context, tournamentID uuid.UUID) ([]*tournamentdb.Discipline, error)
	CreateDisciplineFunc       func(ctx context.Context, discipline *tournamentdb.Discipline) (*tournamentdb.Discipline, error)
	DeleteDisciplineFunc       func(ctx context.Context, id uuid.UUID) error
	ListParticipantsFunc       func(ctx context.Context, disciplineID uuid.UUID) (*tournamentservice.Participants, error)
	AddSinglesParticipantFunc  func(ctx context.Context, disciplineID, playerID uuid.UUID) (*tournamentdb.SinglesEntry, error)
	AddDoublesParticipantsFunc func(ctx context.Context, disciplineID, player1ID, player2ID uuid.UUID) (*tournamentdb.DoublesPair, error)
}

func (f *FakeTournamentService) ListTournaments(ctx context.Context) ([]*tournamentdb.Tournament, error) {
	if f.ListTournamentsFunc != nil {
		return f.ListTournamentsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeTournamentService) GetTournament(ctx context.Context, id uuid.UUID) (*tournamentdb.Tournament, error) {
	if f.GetTournamentFunc != nil {
		return f.GetTournamentFunc(ctx, id)
	}
	return nil, tournamentdb.ErrNotFound
}

func (f *FakeTournamentService) CreateTournament(ctx context.Context, name string) (*tournamentdb.Tournament, error) {
	if f.CreateTournamentFunc != nil {
		return f.CreateTournamentFunc(ctx, name)
	}
	return &tournamentdb.Tournament{ID: uuid.New(), Name: name}, nil
}

func (f *FakeTournamentService) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	if f.DeleteTournamentFunc != nil {
		return f.DeleteTournamentFunc(ctx, id)
	}
	return nil
}

func (f *FakeTournamentService) ListDisciplines(ctx context.Context, tournamentID uuid.UUID) ([]*tournamentdb.Discipline, error) {
	if f.ListDisciplinesFunc != nil {
		return f.ListDisciplinesFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (f *FakeTournamentService) CreateDiscipline(ctx context.Context, discipline *tournamentdb.Discipline) (*tournamentdb.Discipline, error) {
	if f.CreateDisciplineFunc != nil {
		return f.CreateDisciplineFunc(ctx, discipline)
	}
	discipline.ID = uuid.New()
	return discipline, nil
}

func (f *FakeTournamentService) DeleteDiscipline(ctx context.Context, id uuid.UUID) error {
	if f.DeleteDisciplineFunc != nil {
		return f.DeleteDisciplineFunc(ctx, id)
	}
	return nil
}

func (f *FakeTournamentService) ListParticipants(ctx context.Context, disciplineID uuid.UUID) (*tournamentservice.Participants, error) {
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx, disciplineID)
	}
	return &tournamentservice.Participants{}, nil
}

func (f *FakeTournamentService) AddSinglesParticipant(ctx context.Context, disciplineID, playerID uuid.UUID) (*tournamentdb.SinglesEntry, error) {
	if f.AddSinglesParticipantFunc != nil {
		return f.AddSinglesParticipantFunc(ctx, disciplineID, playerID)
	}
	return &tournamentdb.SinglesEntry{ID: uuid.New(), DisciplineID: disciplineID, PlayerID: playerID}, nil
}

func (f *FakeTournamentService) AddDoublesParticipants(ctx context.Context, disciplineID, player1ID, player2ID uuid.UUID) (*tournamentdb.DoublesPair, error) {
	if f.AddDoublesParticipantsFunc != nil {
		return f.AddDoublesParticipantsFunc(ctx, disciplineID, player1ID, player2ID)
	}
	return &tournamentdb.DoublesPair{ID: uuid.New(), DisciplineID: disciplineID, Player1ID: player1ID, Player2ID: player2ID}, nil
}

var _ tournamentservice.Service = (*FakeTournamentService)(nil)
