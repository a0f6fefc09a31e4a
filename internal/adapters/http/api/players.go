package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/scorebook/internal/adapters/repository"
	service "github.com/okian/scorebook/internal/app"
	"github.com/okian/scorebook/internal/domain/model"
)

// PlayersHandler handles roster reads and mutation.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// addPlayerRequest is the body of POST .../players.
type addPlayerRequest struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Sport model.Sport `json:"sport"`
}

// recordMatchRequest is the body of POST .../matches.
type recordMatchRequest struct {
	Score float64 `json:"score"`
}

// HandleListPlayers handles GET /api/v1/coaches/{coachID}/players.
func (h *PlayersHandler) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")
	roster, err := h.deps.Roster(r.Context(), coachID)
	if err != nil {
		if errors.Is(err, repository.ErrCoachNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// HandleAddPlayer handles POST /api/v1/coaches/{coachID}/players.
func (h *PlayersHandler) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_player"
	coachID := chi.URLParam(r, "coachID")

	var req addPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: missing name", op, ErrBadRequest))
		return
	}

	rec, err := h.deps.AddPlayer(r.Context(), coachID, model.PlayerRecord{
		Name:  req.Name,
		Email: req.Email,
		Sport: req.Sport,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCoachNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, service.ErrUnknownSport):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// HandleRecordMatch handles POST /api/v1/players/{playerID}/matches.
func (h *PlayersHandler) HandleRecordMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.record_match"
	playerID := chi.URLParam(r, "playerID")

	var req recordMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}

	rec, err := h.deps.RecordMatch(r.Context(), playerID, req.Score)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
