package imports

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
	importhandlers "github.com/matchpoint-club/tournament-hub/app/modules/imports/infrastructure/handlers"
	"github.com/matchpoint-club/tournament-hub/app/modules/imports/infrastructure/parsers"
	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
	"github.com/matchpoint-club/tournament-hub/app/shared/metrics"
	"github.com/matchpoint-club/tournament-hub/config"
)

// Module bundles the entry-sheet import pipeline and its HTTP surface.
type Module struct {
	ImportService importservice.Service
	Handlers      *importhandlers.ImportHandlers
}

// NewImportsModule wires the parser factory, repositories and service. The
// roster source is the player module's service, so both views of the roster
// stay consistent.
func NewImportsModule(
	db *bun.DB,
	cfg config.ImportConfig,
	roster importservice.RosterSource,
	players playerdb.Repository,
	tournaments tournamentdb.Repository,
	logger *slog.Logger,
	m *metrics.Metrics,
	tracer trace.Tracer,
) *Module {
	parser := parsers.NewFactoryParser()
	service := importservice.NewImportService(roster, parser, players, tournaments, logger, m, tracer, db)
	handlers := importhandlers.NewImportHandlers(service, logger, rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)

	return &Module{
		ImportService: service,
		Handlers:      handlers,
	}
}

// RegisterRoutes mounts the module's routes on the router.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.RegisterRoutes(r)
}
