package tournament

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	tournamentservice "github.com/matchpoint-club/tournament-hub/app/modules/tournament/application"
	tournamenthandlers "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/handlers"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// Module bundles the tournament management service and HTTP surface.
type Module struct {
	TournamentService tournamentservice.Service
	Repo              tournamentdb.Repository
	Handlers          *tournamenthandlers.TournamentHandlers
}

// NewTournamentModule wires repository, service and handlers.
func NewTournamentModule(db *bun.DB, logger *slog.Logger, tracer trace.Tracer) *Module {
	repo := tournamentdb.NewRepository(db)
	service := tournamentservice.NewTournamentService(repo, logger, tracer)
	handlers := tournamenthandlers.NewTournamentHandlers(service, logger)

	return &Module{
		TournamentService: service,
		Repo:              repo,
		Handlers:          handlers,
	}
}

// RegisterRoutes mounts the module's routes on the router.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.RegisterRoutes(r)
}
