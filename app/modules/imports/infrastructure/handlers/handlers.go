package importhandlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	importservice "github.com/matchpoint-club/tournament-hub/app/modules/imports/application"
	tournamentdb "github.com/matchpoint-club/tournament-hub/app/modules/tournament/infrastructure/repositories"
)

// maxUploadBytes caps the entry sheet size. Club entry sheets are a few
// hundred rows at most.
const maxUploadBytes = 10 << 20

// ImportHandlers serves the import preview and commit endpoints.
type ImportHandlers struct {
	service importservice.Service
	logger  *slog.Logger
	limiter *IPRateLimiter
}

// NewImportHandlers creates new import HTTP handlers with a per-IP rate
// limit on the upload endpoints.
func NewImportHandlers(service importservice.Service, logger *slog.Logger, limit rate.Limit, burst int) *ImportHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	if limit <= 0 {
		limit = rate.Limit(1)
	}
	if burst <= 0 {
		burst = 5
	}
	return &ImportHandlers{
		service: service,
		logger:  logger,
		limiter: NewIPRateLimiter(limit, burst),
	}
}

// RegisterRoutes mounts the import routes under a tournament.
func (h *ImportHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/tournaments/{tournamentID}/import", func(r chi.Router) {
		r.Use(RateLimitMiddleware(h.limiter))
		r.Post("/preview", h.HandlePreview)
		r.Post("/commit", h.HandleCommit)
	})
}

// HandlePreview accepts a multipart entry-sheet upload and returns the
// matched, grouped preview without persisting anything.
func (h *ImportHandlers) HandlePreview(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "tournamentID")); err != nil {
		http.Error(w, "invalid tournament ID", http.StatusBadRequest)
		return
	}

	fileData, fileName, err := readUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matched, err := h.service.RunImport(r.Context(), fileData, fileName)
	if err != nil {
		var vErr *importservice.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  vErr.Error(),
				"issues": vErr.Issues,
			})
			return
		}
		h.logger.ErrorContext(r.Context(), "Import preview failed",
			slog.String("file_name", fileName),
			slog.Any("error", err),
		)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, matched)
}

// HandleCommit persists a reviewed import under the tournament.
func (h *ImportHandlers) HandleCommit(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(chi.URLParam(r, "tournamentID"))
	if err != nil {
		http.Error(w, "invalid tournament ID", http.StatusBadRequest)
		return
	}

	var data importservice.MatchedImportData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CommitImport(r.Context(), tournamentID, data)
	if err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			http.Error(w, "tournament not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Import commit failed",
			slog.String("tournament_id", tournamentID.String()),
			slog.Any("error", err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// readUpload extracts the uploaded spreadsheet from the "file" form field.
func readUpload(r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", errors.New("invalid multipart upload")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errors.New(`missing "file" form field`)
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New("failed to read upload")
	}
	return fileData, header.Filename, nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
