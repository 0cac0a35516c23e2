// Package api declares HTTP contracts and route registration for the
// scoring engine.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matchfit/scorebox/internal/app"
)

// defaultMaxListLimit caps list responses when no option overrides it.
const defaultMaxListLimit = 500

// Dependencies bundles the service operations the handlers need. Using an
// interface keeps the handler layer loosely coupled to the app package.
type Dependencies interface {
	SubmitResult(ctx context.Context, req app.SubmitRequest) (app.ResultSummary, error)
	SubmitBatch(ctx context.Context, categoryID, workoutID string, items []app.BatchItem) (app.BatchOutcome, error)
	RemoveResult(ctx context.Context, categoryID, workoutID, participantID string, isTeam bool) error

	WorkoutResults(ctx context.Context, categoryID, workoutID string) ([]app.WorkoutRow, error)
	ParticipantResults(ctx context.Context, participantID string) ([]app.ParticipantEntry, error)
	CategoryRanking(ctx context.Context, categoryID string) ([]app.RankingRow, error)
}

// StatsProvider exposes service statistics for the stats endpoint.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	maxListLimit   int
	resultsHandler *ResultsHandler
	boardsHandler  *BoardsHandler
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
}

// Option configures the server.
type Option func(*Server)

// WithMaxListLimit caps how many rows list endpoints return.
func WithMaxListLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxListLimit = n
		}
	}
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, stats StatsProvider, opts ...Option) *Server {
	s := &Server{
		maxListLimit: defaultMaxListLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.resultsHandler = NewResultsHandler(deps)
	s.boardsHandler = NewBoardsHandler(deps, s.maxListLimit)
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(stats)
	return s
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthHandler.HandleHealth)
	r.Get("/stats", Instrumented("stats", s.statsHandler.HandleStats))

	r.Route("/categories/{categoryID}", func(r chi.Router) {
		r.Get("/ranking", Instrumented("category_ranking", s.boardsHandler.HandleCategoryRanking))
		r.Route("/workouts/{workoutID}/results", func(r chi.Router) {
			r.Get("/", Instrumented("workout_results", s.boardsHandler.HandleWorkoutResults))
			r.Post("/", Instrumented("submit_result", s.resultsHandler.HandleSubmit))
			r.Post("/batch", Instrumented("submit_batch", s.resultsHandler.HandleSubmitBatch))
			r.Delete("/{participantID}", Instrumented("remove_result", s.resultsHandler.HandleRemove))
		})
	})
	r.Get("/participants/{participantID}/results", Instrumented("participant_results", s.boardsHandler.HandleParticipantResults))

	return r
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

// writeServiceError translates app/repository error kinds to HTTP statuses
// with the engine's reason code.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	reason := app.Reason(err)
	switch {
	case app.IsNotFound(err):
		writeError(w, http.StatusNotFound, reason, Wrap(op, err))
	case app.IsValidation(err):
		writeError(w, http.StatusBadRequest, reason, Wrap(op, err))
	case reason == app.ReasonCategoryBusy:
		writeError(w, http.StatusConflict, reason, Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
