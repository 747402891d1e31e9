package tournamenthandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	tournamentservice "github.com/matchpoint-club/tournament-hub/app/modules/tournament/application"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// TournamentHandlers serves the tournament and discipline endpoints.
type TournamentHandlers struct {
	service tournamentservice.Service
	logger  *slog.Logger
}

// NewTournamentHandlers creates new tournament HTTP handlers.
func NewTournamentHandlers(service tournamentservice.Service, logger *slog.Logger) *TournamentHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentHandlers{service: service, logger: logger}
}

// RegisterRoutes mounts the tournament routes.
func (h *TournamentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/tournaments", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{tournamentID}", h.HandleGet)
		r.Delete("/{tournamentID}", h.HandleDelete)
		r.Get("/{tournamentID}/disciplines", h.HandleListDisciplines)
		r.Post("/{tournamentID}/disciplines", h.HandleCreateDiscipline)
	})
	r.Route("/api/disciplines/{disciplineID}", func(r chi.Router) {
		r.Delete("/", h.HandleDeleteDiscipline)
		r.Get("/participants", h.HandleListParticipants)
		r.Post("/participants", h.HandleAddParticipants)
	})
}

func (h *TournamentHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.service.ListTournaments(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "List tournaments failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, tournaments)
}

func (h *TournamentHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tournamentID"))
	if err != nil {
		http.Error(w, "invalid tournament ID", http.StatusBadRequest)
		return
	}

	tournament, err := h.service.GetTournament(r.Context(), id)
	if err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "tournament not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Get tournament failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, tournament)
}

func (h *TournamentHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tournament, err := h.service.CreateTournament(r.Context(), payload.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, tournament)
}

func (h *TournamentHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tournamentID"))
	if err != nil {
		http.Error(w, "invalid tournament ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTournament(r.Context(), id); err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "tournament not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Delete tournament failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandlers) HandleListDisciplines(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tournamentID"))
	if err != nil {
		http.Error(w, "invalid tournament ID", http.StatusBadRequest)
		return
	}

	disciplines, err := h.service.ListDisciplines(r.Context(), id)
	if err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "tournament not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "List disciplines failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, disciplines)
}

func (h *TournamentHandlers) HandleCreateDiscipline(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tournamentID"))
	if err != nil {
		http.Error(w, "invalid tournament ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Name      string   `json:"name"`
		Class     string   `json:"class"`
		Gender    string   `json:"gender"`
		IsDoubles bool     `json:"is_doubles"`
		Charge    *float64 `json:"charge"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	discipline, err := h.service.CreateDiscipline(r.Context(), &tournamentdb.Discipline{
		TournamentID: id,
		Name:         payload.Name,
		Class:        payload.Class,
		Gender:       payload.Gender,
		IsDoubles:    payload.IsDoubles,
		Charge:       payload.Charge,
	})
	if err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "tournament not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, discipline)
}

func (h *TournamentHandlers) HandleDeleteDiscipline(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "disciplineID"))
	if err != nil {
		http.Error(w, "invalid discipline ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteDiscipline(r.Context(), id); err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "discipline not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Delete discipline failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandlers) HandleListParticipants(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "disciplineID"))
	if err != nil {
		http.Error(w, "invalid discipline ID", http.StatusBadRequest)
		return
	}

	participants, err := h.service.ListParticipants(r.Context(), id)
	if err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "discipline not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "List participants failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, participants)
}

func (h *TournamentHandlers) HandleAddParticipants(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "disciplineID"))
	if err != nil {
		http.Error(w, "invalid discipline ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		PlayerID  *uuid.UUID `json:"player_id"`
		Player1ID *uuid.UUID `json:"player1_id"`
		Player2ID *uuid.UUID `json:"player2_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	switch {
	case payload.PlayerID != nil:
		entry, err := h.service.AddSinglesParticipant(r.Context(), id, *payload.PlayerID)
		if err != nil {
			h.respondParticipantError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, entry)
	case payload.Player1ID != nil && payload.Player2ID != nil:
		pair, err := h.service.AddDoublesParticipants(r.Context(), id, *payload.Player1ID, *payload.Player2ID)
		if err != nil {
			h.respondParticipantError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, pair)
	default:
		http.Error(w, "provide player_id for singles or player1_id and player2_id for doubles", http.StatusBadRequest)
	}
}

func (h *TournamentHandlers) respondParticipantError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, tournamentdb.ErrNotFound) {
		http.Error(w, "discipline not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
