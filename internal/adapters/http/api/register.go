package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/scorebook/internal/adapters/repository"
	"github.com/okian/scorebook/internal/domain/model"
	"github.com/okian/scorebook/internal/domain/validation"
)

// RegisterHandler handles registration requests.
type RegisterHandler struct {
	deps Dependencies
}

// NewRegisterHandler creates a new registration handler.
func NewRegisterHandler(deps Dependencies) *RegisterHandler {
	return &RegisterHandler{deps: deps}
}

// rejectionResponse reports the field-to-message map of a rejected
// candidate.
type rejectionResponse struct {
	Errors validation.Result `json:"errors"`
}

// HandleRegister handles POST /api/v1/register requests.
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	const op = "api.register"

	var candidate model.RegistrationCandidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}

	acc, errs, err := h.deps.Register(r.Context(), candidate)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email_taken", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%s: %w", op, err))
		return
	}
	if !errs.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, rejectionResponse{Errors: errs})
		return
	}
	writeJSON(w, http.StatusCreated, acc)
}
