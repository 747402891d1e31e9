package importservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/matchpoint-club/tournament-hub/app/shared/metrics"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// RosterSource supplies the full current roster. The matcher needs the
// complete set in one read; no pagination is assumed.
type RosterSource interface {
	FetchAllPlayers(ctx context.Context) ([]*playerdb.Player, error)
}

// SpreadsheetParser decodes raw spreadsheet bytes into header-keyed rows.
type SpreadsheetParser interface {
	Parse(fileData []byte, fileName string) ([]RawRow, error)
}

// Service is the import pipeline contract.
type Service interface {
	// RunImport parses, validates, groups and matches one uploaded entry
	// sheet. It returns a *ValidationError if any row is invalid; nothing is
	// persisted either way.
	RunImport(ctx context.Context, fileData []byte, fileName string) (MatchedImportData, error)

	// CommitImport persists a reviewed import under the given tournament in
	// one transaction: matched roster players are reused, the rest are
	// inserted, then disciplines and entries are created.
	CommitImport(ctx context.Context, tournamentID uuid.UUID, data MatchedImportData) (*CommitResult, error)
}

// CommitResult summarizes what a commit wrote.
type CommitResult struct {
	PlayersCreated int `json:"players_created"`
	PlayersReused  int `json:"players_reused"`
	Disciplines    int `json:"disciplines"`
	Entries        int `json:"entries"`
}

// ImportService implements the Service interface.
type ImportService struct {
	roster      RosterSource
	parser      SpreadsheetParser
	matcher     *Matcher
	players     playerdb.Repository
	tournaments tournamentdb.Repository
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	db          *bun.DB
}

// NewImportService creates a new ImportService.
func NewImportService(
	roster RosterSource,
	parser SpreadsheetParser,
	players playerdb.Repository,
	tournaments tournamentdb.Repository,
	logger *slog.Logger,
	m *metrics.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{
		roster:      roster,
		parser:      parser,
		matcher:     NewMatcher(nil),
		players:     players,
		tournaments: tournaments,
		logger:      logger,
		metrics:     m,
		tracer:      tracer,
		db:          db,
	}
}

// RunImport runs the pipeline: decode, filter withdrawals, validate the whole
// batch, group into disciplines, fetch the roster once, match every distinct
// imported player.
func (s *ImportService) RunImport(ctx context.Context, fileData []byte, fileName string) (MatchedImportData, error) {
	ctx, span := s.startSpan(ctx, "RunImport", attribute.String("file_name", fileName))
	defer span.End()
	start := time.Now()

	rows, err := s.parser.Parse(fileData, fileName)
	if err != nil {
		s.recordRun("parse_error", start)
		return nil, fmt.Errorf("failed to parse spreadsheet: %w", err)
	}
	rows = FilterWithdrawals(rows)

	validated, err := ValidateRows(rows)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			s.logger.WarnContext(ctx, "Import rejected by validation",
				slog.String("file_name", fileName),
				slog.Int("issues", len(vErr.Issues)),
			)
			s.recordRun("validation_failed", start)
		}
		return nil, err
	}

	grouped := GroupByDisciplines(validated)

	// One roster snapshot per run; the matcher never re-fetches.
	roster, err := s.roster.FetchAllPlayers(ctx)
	if err != nil {
		s.recordRun("roster_error", start)
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	matched := s.matcher.MatchPlayers(roster, grouped)
	s.recordClassifications(matched)
	s.recordRun("ok", start)

	s.logger.InfoContext(ctx, "Import matched",
		slog.String("file_name", fileName),
		slog.Int("rows", len(validated)),
		slog.Int("disciplines", len(matched)),
		slog.Int("roster_size", len(roster)),
	)
	return matched, nil
}

// CommitImport persists a reviewed import in one transaction.
func (s *ImportService) CommitImport(ctx context.Context, tournamentID uuid.UUID, data MatchedImportData) (*CommitResult, error) {
	ctx, span := s.startSpan(ctx, "CommitImport", attribute.String("tournament_id", tournamentID.String()))
	defer span.End()

	result := &CommitResult{}
	commit := func(ctx context.Context, idb bun.IDB) error {
		return s.commitLogic(ctx, idb, tournamentID, data, result)
	}

	var err error
	if s.db != nil {
		err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			return commit(ctx, tx)
		})
	} else {
		err = commit(ctx, nil)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Import commit failed",
			slog.String("tournament_id", tournamentID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Import committed",
		slog.String("tournament_id", tournamentID.String()),
		slog.Int("players_created", result.PlayersCreated),
		slog.Int("players_reused", result.PlayersReused),
		slog.Int("disciplines", result.Disciplines),
		slog.Int("entries", result.Entries),
	)
	return result, nil
}

func (s *ImportService) commitLogic(ctx context.Context, idb bun.IDB, tournamentID uuid.UUID, data MatchedImportData, result *CommitResult) error {
	if _, err := s.tournaments.GetTournamentByID(ctx, idb, tournamentID); err != nil {
		return fmt.Errorf("failed to load tournament: %w", err)
	}

	// Players resolved once per dedup key, across all disciplines.
	resolved := make(map[string]uuid.UUID)
	reused := make(map[string]bool)

	for _, group := range data {
		if len(group.Teams) == 0 {
			continue
		}

		discipline := &tournamentdb.Discipline{
			TournamentID: tournamentID,
			Name:         group.Name,
			Class:        group.Class,
			Gender:       disciplineGender(group.Teams),
			IsDoubles:    len(group.Teams[0]) == 2,
		}
		if err := s.tournaments.CreateDiscipline(ctx, idb, discipline); err != nil {
			return err
		}
		result.Disciplines++

		for _, team := range group.Teams {
			ids := make([]uuid.UUID, 0, len(team))
			for _, mp := range team {
				id, err := s.resolvePlayer(ctx, idb, mp, resolved, reused, result)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			switch len(ids) {
			case 1:
				err := s.tournaments.CreateSinglesEntry(ctx, idb, &tournamentdb.SinglesEntry{
					DisciplineID: discipline.ID,
					PlayerID:     ids[0],
				})
				if err != nil {
					return err
				}
			case 2:
				err := s.tournaments.CreateDoublesPair(ctx, idb, &tournamentdb.DoublesPair{
					DisciplineID: discipline.ID,
					Player1ID:    ids[0],
					Player2ID:    ids[1],
				})
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("team in discipline %q must have 1 or 2 players, got %d", group.Key, len(ids))
			}
			result.Entries++
		}
	}

	return nil
}

// resolvePlayer returns the roster ID for one imported player, reusing the
// reviewed match when present and inserting a new player otherwise. Each
// dedup key is resolved at most once.
func (s *ImportService) resolvePlayer(
	ctx context.Context,
	idb bun.IDB,
	mp MatchedPlayer,
	resolved map[string]uuid.UUID,
	reused map[string]bool,
	result *CommitResult,
) (uuid.UUID, error) {
	key := mp.Key()
	if id, ok := resolved[key]; ok {
		return id, nil
	}

	if mp.Match != nil && mp.Match.MatchingPlayer != nil {
		id := mp.Match.MatchingPlayer.ID
		resolved[key] = id
		if !reused[key] {
			reused[key] = true
			result.PlayersReused++
		}
		return id, nil
	}

	player := &playerdb.Player{
		FirstName: mp.FirstName,
		LastName:  mp.LastName,
		Gender:    string(mp.Gender),
	}
	if mp.Club != "" {
		club := mp.Club
		player.Club = &club
	}
	if err := s.players.Create(ctx, idb, player); err != nil {
		return uuid.Nil, err
	}

	resolved[key] = player.ID
	result.PlayersCreated++
	return player.ID, nil
}

// disciplineGender derives the discipline's gender from its players: the
// shared gender if uniform, "X" for mixed fields.
func disciplineGender(teams []MatchedTeam) string {
	var gender Gender
	for _, team := range teams {
		for _, p := range team {
			if gender == "" {
				gender = p.Gender
				continue
			}
			if p.Gender != gender {
				return "X"
			}
		}
	}
	return string(gender)
}

func (s *ImportService) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *ImportService) recordRun(outcome string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordImportRun(outcome, time.Since(start))
}

// recordClassifications counts each distinct imported player once.
func (s *ImportService) recordClassifications(data MatchedImportData) {
	if s.metrics == nil {
		return
	}
	seen := make(map[string]bool)
	for _, group := range data {
		for _, team := range group.Teams {
			for _, p := range team {
				if seen[p.Key()] {
					continue
				}
				seen[p.Key()] = true
				switch {
				case p.Match.IsExactMatch:
					s.metrics.RecordPlayerMatch("exact")
				case p.Match.MatchingPlayer != nil:
					s.metrics.RecordPlayerMatch("probable")
				default:
					s.metrics.RecordPlayerMatch("unmatched")
				}
			}
		}
	}
}

// Ensure the implementation satisfies the interface.
var _ Service = (*ImportService)(nil)
