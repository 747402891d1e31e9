package player

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	playerservice "github.com/matchpoint-club/tournament-hub/app/modules/player/application"
	playerhandlers "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/handlers"
	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// Module bundles the player roster's service and HTTP surface.
type Module struct {
	PlayerService playerservice.Service
	Repo          playerdb.Repository
	Handlers      *playerhandlers.PlayerHandlers
}

// NewPlayerModule wires repository, service and handlers.
func NewPlayerModule(db *bun.DB, logger *slog.Logger, tracer trace.Tracer) *Module {
	repo := playerdb.NewRepository(db)
	service := playerservice.NewPlayerService(repo, logger, tracer)
	handlers := playerhandlers.NewPlayerHandlers(service, logger)

	return &Module{
		PlayerService: service,
		Repo:          repo,
		Handlers:      handlers,
	}
}

// RegisterRoutes mounts the module's routes on the router.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.RegisterRoutes(r)
}
