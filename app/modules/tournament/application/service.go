package tournamentservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// Participants is one discipline's field: singles entries or doubles pairs,
// depending on the discipline format.
type Participants struct {
	Singles []*tournamentdb.SinglesEntry `json:"singles,omitempty"`
	Doubles []*tournamentdb.DoublesPair  `json:"doubles,omitempty"`
}

// Service is the tournament management contract.
type Service interface {
	ListTournaments(ctx context.Context) ([]*tournamentdb.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (*tournamentdb.Tournament, error)
	CreateTournament(ctx context.Context, name string) (*tournamentdb.Tournament, error)
	DeleteTournament(ctx context.Context, id uuid.UUID) error

	ListDisciplines(ctx context.Context, tournamentID uuid.UUID) ([]*tournamentdb.Discipline, error)
	CreateDiscipline(ctx context.Context, discipline *tournamentdb.Discipline) (*tournamentdb.Discipline, error)
	DeleteDiscipline(ctx context.Context, id uuid.UUID) error

	ListParticipants(ctx context.Context, disciplineID uuid.UUID) (*Participants, error)
	AddSinglesParticipant(ctx context.Context, disciplineID, playerID uuid.UUID) (*tournamentdb.SinglesEntry, error)
	AddDoublesParticipants(ctx context.Context, disciplineID, player1ID, player2ID uuid.UUID) (*tournamentdb.DoublesPair, error)
}

// TournamentService implements the Service interface.
type TournamentService struct {
	repo   tournamentdb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(repo tournamentdb.Repository, logger *slog.Logger, tracer trace.Tracer) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentService{
		repo:   repo,
		logger: logger,
		tracer: tracer,
	}
}

// ListTournaments retrieves every tournament, newest first.
func (s *TournamentService) ListTournaments(ctx context.Context) ([]*tournamentdb.Tournament, error) {
	ctx, span := s.startSpan(ctx, "ListTournaments")
	defer span.End()

	tournaments, err := s.repo.GetAllTournaments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("ListTournaments: %w", err)
	}
	return tournaments, nil
}

// GetTournament retrieves one tournament.
func (s *TournamentService) GetTournament(ctx context.Context, id uuid.UUID) (*tournamentdb.Tournament, error) {
	ctx, span := s.startSpan(ctx, "GetTournament", attribute.String("tournament_id", id.String()))
	defer span.End()

	tournament, err := s.repo.GetTournamentByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("GetTournament: %w", err)
	}
	return tournament, nil
}

// CreateTournament inserts a new tournament.
func (s *TournamentService) CreateTournament(ctx context.Context, name string) (*tournamentdb.Tournament, error) {
	ctx, span := s.startSpan(ctx, "CreateTournament")
	defer span.End()

	if name == "" {
		return nil, fmt.Errorf("tournament name is required")
	}

	tournament := &tournamentdb.Tournament{Name: name}
	if err := s.repo.CreateTournament(ctx, nil, tournament); err != nil {
		return nil, fmt.Errorf("CreateTournament: %w", err)
	}

	s.logger.InfoContext(ctx, "Tournament created",
		slog.String("tournament_id", tournament.ID.String()),
		slog.String("name", name),
	)
	return tournament, nil
}

// DeleteTournament removes a tournament and everything under it.
func (s *TournamentService) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "DeleteTournament", attribute.String("tournament_id", id.String()))
	defer span.End()

	if err := s.repo.DeleteTournament(ctx, nil, id); err != nil {
		return fmt.Errorf("DeleteTournament: %w", err)
	}

	s.logger.InfoContext(ctx, "Tournament deleted", slog.String("tournament_id", id.String()))
	return nil
}

// ListDisciplines retrieves a tournament's disciplines in creation order.
func (s *TournamentService) ListDisciplines(ctx context.Context, tournamentID uuid.UUID) ([]*tournamentdb.Discipline, error) {
	ctx, span := s.startSpan(ctx, "ListDisciplines", attribute.String("tournament_id", tournamentID.String()))
	defer span.End()

	if _, err := s.repo.GetTournamentByID(ctx, nil, tournamentID); err != nil {
		return nil, fmt.Errorf("ListDisciplines: %w", err)
	}

	disciplines, err := s.repo.GetDisciplinesByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("ListDisciplines: %w", err)
	}
	return disciplines, nil
}

// CreateDiscipline inserts a new discipline under its tournament.
func (s *TournamentService) CreateDiscipline(ctx context.Context, discipline *tournamentdb.Discipline) (*tournamentdb.Discipline, error) {
	ctx, span := s.startSpan(ctx, "CreateDiscipline", attribute.String("tournament_id", discipline.TournamentID.String()))
	defer span.End()

	if discipline.Name == "" {
		return nil, fmt.Errorf("discipline name is required")
	}
	if discipline.Gender != "M" && discipline.Gender != "W" && discipline.Gender != "X" {
		return nil, fmt.Errorf(`discipline gender must be "M", "W" or "X"`)
	}
	if _, err := s.repo.GetTournamentByID(ctx, nil, discipline.TournamentID); err != nil {
		return nil, fmt.Errorf("CreateDiscipline: %w", err)
	}

	if err := s.repo.CreateDiscipline(ctx, nil, discipline); err != nil {
		return nil, fmt.Errorf("CreateDiscipline: %w", err)
	}
	return discipline, nil
}

// DeleteDiscipline removes a discipline and its entries.
func (s *TournamentService) DeleteDiscipline(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "DeleteDiscipline", attribute.String("discipline_id", id.String()))
	defer span.End()

	if err := s.repo.DeleteDiscipline(ctx, nil, id); err != nil {
		return fmt.Errorf("DeleteDiscipline: %w", err)
	}
	return nil
}

// ListParticipants retrieves a discipline's field with player details.
func (s *TournamentService) ListParticipants(ctx context.Context, disciplineID uuid.UUID) (*Participants, error) {
	ctx, span := s.startSpan(ctx, "ListParticipants", attribute.String("discipline_id", disciplineID.String()))
	defer span.End()

	discipline, err := s.repo.GetDisciplineByID(ctx, nil, disciplineID)
	if err != nil {
		return nil, fmt.Errorf("ListParticipants: %w", err)
	}

	participants := &Participants{}
	if discipline.IsDoubles {
		participants.Doubles, err = s.repo.GetDoublesPairs(ctx, nil, disciplineID)
	} else {
		participants.Singles, err = s.repo.GetSinglesEntries(ctx, nil, disciplineID)
	}
	if err != nil {
		return nil, fmt.Errorf("ListParticipants: %w", err)
	}
	return participants, nil
}

// AddSinglesParticipant enters one player into a singles discipline.
func (s *TournamentService) AddSinglesParticipant(ctx context.Context, disciplineID, playerID uuid.UUID) (*tournamentdb.SinglesEntry, error) {
	ctx, span := s.startSpan(ctx, "AddSinglesParticipant", attribute.String("discipline_id", disciplineID.String()))
	defer span.End()

	discipline, err := s.repo.GetDisciplineByID(ctx, nil, disciplineID)
	if err != nil {
		return nil, fmt.Errorf("AddSinglesParticipant: %w", err)
	}
	if discipline.IsDoubles {
		return nil, fmt.Errorf("discipline %q is a doubles discipline", discipline.Name)
	}

	entry := &tournamentdb.SinglesEntry{
		DisciplineID: disciplineID,
		PlayerID:     playerID,
	}
	if err := s.repo.CreateSinglesEntry(ctx, nil, entry); err != nil {
		return nil, fmt.Errorf("AddSinglesParticipant: %w", err)
	}
	return entry, nil
}

// AddDoublesParticipants enters one pair into a doubles discipline.
func (s *TournamentService) AddDoublesParticipants(ctx context.Context, disciplineID, player1ID, player2ID uuid.UUID) (*tournamentdb.DoublesPair, error) {
	ctx, span := s.startSpan(ctx, "AddDoublesParticipants", attribute.String("discipline_id", disciplineID.String()))
	defer span.End()

	discipline, err := s.repo.GetDisciplineByID(ctx, nil, disciplineID)
	if err != nil {
		return nil, fmt.Errorf("AddDoublesParticipants: %w", err)
	}
	if !discipline.IsDoubles {
		return nil, fmt.Errorf("discipline %q is a singles discipline", discipline.Name)
	}
	if player1ID == player2ID {
		return nil, fmt.Errorf("a doubles pair needs two different players")
	}

	pair := &tournamentdb.DoublesPair{
		DisciplineID: disciplineID,
		Player1ID:    player1ID,
		Player2ID:    player2ID,
	}
	if err := s.repo.CreateDoublesPair(ctx, nil, pair); err != nil {
		return nil, fmt.Errorf("AddDoublesParticipants: %w", err)
	}
	return pair, nil
}

func (s *TournamentService) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

var _ Service = (*TournamentService)(nil)
