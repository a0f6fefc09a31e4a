package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/scorebook/internal/adapters/repository"
	"github.com/okian/scorebook/internal/domain/report"
)

// ReportHandler handles CSV report downloads.
type ReportHandler struct {
	deps Dependencies
}

// NewReportHandler creates a new report handler.
func NewReportHandler(deps Dependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

// HandleGetReport handles GET /api/v1/coaches/{coachID}/report
// requests, responding with the serialized CSV document as an
// attachment.
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")
	doc, filename, err := h.deps.Report(r.Context(), coachID)
	if err != nil {
		if errors.Is(err, repository.ErrCoachNotFound) || errors.Is(err, repository.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	w.Header().Set("Content-Type", report.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
