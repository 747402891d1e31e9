package playerservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// Service is the player roster contract.
type Service interface {
	ListPlayers(ctx context.Context) ([]*playerdb.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error)
	CreatePlayer(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error)
	UpdatePlayer(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error

	// FetchAllPlayers is the roster snapshot for the import matcher, ordered
	// by creation time.
	FetchAllPlayers(ctx context.Context) ([]*playerdb.Player, error)
}

// PlayerService implements the Service interface.
type PlayerService struct {
	repo   playerdb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo playerdb.Repository, logger *slog.Logger, tracer trace.Tracer) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerService{
		repo:   repo,
		logger: logger,
		tracer: tracer,
	}
}

// ListPlayers retrieves the whole roster ordered by creation time.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	ctx, span := s.startSpan(ctx, "ListPlayers")
	defer span.End()

	players, err := s.repo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("ListPlayers: %w", err)
	}
	return players, nil
}

// FetchAllPlayers satisfies the import matcher's roster source contract.
func (s *PlayerService) FetchAllPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	return s.ListPlayers(ctx)
}

// GetPlayer retrieves one player.
func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error) {
	ctx, span := s.startSpan(ctx, "GetPlayer", attribute.String("player_id", id.String()))
	defer span.End()

	player, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("GetPlayer: %w", err)
	}
	return player, nil
}

// CreatePlayer inserts a new roster player.
func (s *PlayerService) CreatePlayer(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error) {
	ctx, span := s.startSpan(ctx, "CreatePlayer")
	defer span.End()

	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, nil, player); err != nil {
		return nil, fmt.Errorf("CreatePlayer: %w", err)
	}

	s.logger.InfoContext(ctx, "Player created",
		slog.String("player_id", player.ID.String()),
	)
	return player, nil
}

// UpdatePlayer overwrites a player's mutable fields.
func (s *PlayerService) UpdatePlayer(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error) {
	ctx, span := s.startSpan(ctx, "UpdatePlayer", attribute.String("player_id", player.ID.String()))
	defer span.End()

	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, nil, player); err != nil {
		return nil, fmt.Errorf("UpdatePlayer: %w", err)
	}
	return s.repo.GetByID(ctx, nil, player.ID)
}

// DeletePlayer removes a player from the roster.
func (s *PlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "DeletePlayer", attribute.String("player_id", id.String()))
	defer span.End()

	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("DeletePlayer: %w", err)
	}

	s.logger.InfoContext(ctx, "Player deleted", slog.String("player_id", id.String()))
	return nil
}

func validatePlayer(player *playerdb.Player) error {
	if player.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if player.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if player.Gender != "M" && player.Gender != "W" {
		return fmt.Errorf(`gender must be "M" or "W"`)
	}
	return nil
}

func (s *PlayerService) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

var _ Service = (*PlayerService)(nil)
