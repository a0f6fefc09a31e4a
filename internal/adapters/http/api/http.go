// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/scorebook/internal/domain/model"
	"github.com/okian/scorebook/internal/domain/validation"
	"github.com/okian/scorebook/pkg/metrics"
)

// Dependencies required by the HTTP handlers. The interface bundle
// keeps this layer loosely coupled to the service implementation.
type Dependencies interface {
	// Register validates and, on success, stores a registration.
	// A non-empty Result reports the rejected fields.
	Register(ctx context.Context, c model.RegistrationCandidate) (model.Account, validation.Result, error)

	// Read side of the aggregation/report pipeline.
	TeamSummary(ctx context.Context, coachID string) (model.TeamSummary, error)
	Report(ctx context.Context, coachID string) (doc, filename string, err error)
	Roster(ctx context.Context, coachID string) ([]model.PlayerRecord, error)

	// Roster mutation.
	AddPlayer(ctx context.Context, coachID string, rec model.PlayerRecord) (model.PlayerRecord, error)
	RecordMatch(ctx context.Context, playerID string, score float64) (model.PlayerRecord, error)
}

// StatsProvider exposes service statistics for the stats endpoint.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	registerHandler *RegisterHandler
	summaryHandler  *SummaryHandler
	reportHandler   *ReportHandler
	playersHandler  *PlayersHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		registerHandler: NewRegisterHandler(deps),
		summaryHandler:  NewSummaryHandler(deps),
		reportHandler:   NewReportHandler(deps),
		playersHandler:  NewPlayersHandler(deps),
	}
}

// Register attaches all routes to r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", MetricsMiddleware(s.registerHandler.HandleRegister, "register"))
		r.Get("/coaches/{coachID}/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
		r.Get("/coaches/{coachID}/report", MetricsMiddleware(s.reportHandler.HandleGetReport, "report"))
		r.Get("/coaches/{coachID}/players", MetricsMiddleware(s.playersHandler.HandleListPlayers, "players"))
		r.Post("/coaches/{coachID}/players", MetricsMiddleware(s.playersHandler.HandleAddPlayer, "players"))
		r.Post("/players/{playerID}/matches", MetricsMiddleware(s.playersHandler.HandleRecordMatch, "matches"))
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
