package playerhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	playerservice "github.com/matchpoint-club/tournament-hub/app/modules/player/application"
	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// PlayerHandlers serves the roster CRUD endpoints.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
}

// NewPlayerHandlers creates new player HTTP handlers.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger) *PlayerHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerHandlers{service: service, logger: logger}
}

// RegisterRoutes mounts the player routes.
func (h *PlayerHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/players", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{playerID}", h.HandleGet)
		r.Put("/{playerID}", h.HandleUpdate)
		r.Delete("/{playerID}", h.HandleDelete)
	})
}

type playerPayload struct {
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Gender    string  `json:"gender"`
	Club      *string `json:"club"`
}

func (h *PlayerHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ListPlayers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "List players failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, players)
}

func (h *PlayerHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		http.Error(w, "invalid player ID", http.StatusBadRequest)
		return
	}

	player, err := h.service.GetPlayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			http.Error(w, "player not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Get player failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (h *PlayerHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload playerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	player, err := h.service.CreatePlayer(r.Context(), &playerdb.Player{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Gender:    payload.Gender,
		Club:      payload.Club,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		http.Error(w, "invalid player ID", http.StatusBadRequest)
		return
	}

	var payload playerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	player, err := h.service.UpdatePlayer(r.Context(), &playerdb.Player{
		ID:        id,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Gender:    payload.Gender,
		Club:      payload.Club,
	})
	if err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			http.Error(w, "player not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (h *PlayerHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		http.Error(w, "invalid player ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeletePlayer(r.Context(), id); err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			http.Error(w, "player not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Delete player failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
