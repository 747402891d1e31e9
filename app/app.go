package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"

	"github.com/matchpoint-club/tournament-hub/app/modules/imports"
	"github.com/matchpoint-club/tournament-hub/app/modules/player"
	"github.com/matchpoint-club/tournament-hub/app/modules/tournament"
	"github.com/matchpoint-club/tournament-hub/app/shared/metrics"
	"github.com/matchpoint-club/tournament-hub/config"
	"github.com/matchpoint-club/tournament-hub/db/bundb"
)

// App wires the database, modules and HTTP router together.
type App struct {
	Cfg              *config.Config
	Logger           *slog.Logger
	Metrics          *metrics.Metrics
	PlayerModule     *player.Module
	TournamentModule *tournament.Module
	ImportsModule    *imports.Module
	db               *bundb.DBService
	router           chi.Router
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg.Observability.LogLevel)
	slog.SetDefault(logger)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	m := metrics.New()
	tracer := otel.Tracer("tournament-hub")
	db := dbService.GetDB()

	playerModule := player.NewPlayerModule(db, logger, tracer)
	tournamentModule := tournament.NewTournamentModule(db, logger, tracer)
	importsModule := imports.NewImportsModule(
		db,
		cfg.Import,
		playerModule.PlayerService,
		playerModule.Repo,
		tournamentModule.Repo,
		logger,
		m,
		tracer,
	)

	a := &App{
		Cfg:              cfg,
		Logger:           logger,
		Metrics:          m,
		PlayerModule:     playerModule,
		TournamentModule: tournamentModule,
		ImportsModule:    importsModule,
		db:               dbService,
	}
	a.router = a.newRouter()

	return a, nil
}

// DB returns the database service.
func (a *App) DB() *bundb.DBService {
	return a.db
}

// Router returns the HTTP handler with every module's routes mounted.
func (a *App) Router() http.Handler {
	return a.router
}

// Close releases the database connection pool.
func (a *App) Close() error {
	return a.db.GetDB().Close()
}

func (a *App) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(a.Metrics.Middleware)

	r.Get("/healthz", a.handleHealthz)
	r.Method(http.MethodGet, "/metrics", a.Metrics.Handler())

	a.PlayerModule.RegisterRoutes(r)
	a.TournamentModule.RegisterRoutes(r)
	a.ImportsModule.RegisterRoutes(r)

	return r
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := a.db.GetDB().PingContext(r.Context()); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
