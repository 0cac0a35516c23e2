package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// BoardsHandler serves the read surface: workout boards, participant
// histories and the category table.
type BoardsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewBoardsHandler creates a new boards handler.
func NewBoardsHandler(deps Dependencies, maxLimit int) *BoardsHandler {
	return &BoardsHandler{deps: deps, maxLimit: maxLimit}
}

// listLimit resolves the optional limit query parameter, clamped to the
// configured maximum.
func (h *BoardsHandler) listLimit(r *http.Request) int {
	limit := h.maxLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	return limit
}

type workoutRowResponse struct {
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
	Position      int    `json:"position"`
	Value         string `json:"value"`
	Finalized     bool   `json:"finalized"`
}

// HandleWorkoutResults handles GET .../workouts/{workoutID}/results.
func (h *BoardsHandler) HandleWorkoutResults(w http.ResponseWriter, r *http.Request) {
	const op = "api.workout_results"

	rows, err := h.deps.WorkoutResults(r.Context(), chi.URLParam(r, "categoryID"), chi.URLParam(r, "workoutID"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if limit := h.listLimit(r); len(rows) > limit {
		rows = rows[:limit]
	}

	resp := make([]workoutRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = workoutRowResponse{
			ParticipantID: row.ParticipantID,
			DisplayName:   row.DisplayName,
			Position:      row.Position,
			Value:         row.Value,
			Finalized:     row.Finalized,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type participantEntryResponse struct {
	CategoryID string `json:"category_id"`
	WorkoutID  string `json:"workout_id"`
	Position   int    `json:"position"`
	Value      string `json:"value"`
	Finalized  bool   `json:"finalized"`
}

// HandleParticipantResults handles GET /participants/{participantID}/results.
func (h *BoardsHandler) HandleParticipantResults(w http.ResponseWriter, r *http.Request) {
	const op = "api.participant_results"

	entries, err := h.deps.ParticipantResults(r.Context(), chi.URLParam(r, "participantID"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if limit := h.listLimit(r); len(entries) > limit {
		entries = entries[:limit]
	}

	resp := make([]participantEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = participantEntryResponse{
			CategoryID: e.CategoryID,
			WorkoutID:  e.WorkoutID,
			Position:   e.Position,
			Value:      e.Value,
			Finalized:  e.Finalized,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type rankingRowResponse struct {
	ParticipantID     string         `json:"participant_id"`
	DisplayName       string         `json:"display_name"`
	TotalScore        int            `json:"total_score"`
	CompletedWorkouts int            `json:"completed_workouts"`
	Positions         map[string]int `json:"positions"`
}

// HandleCategoryRanking handles GET /categories/{categoryID}/ranking.
func (h *BoardsHandler) HandleCategoryRanking(w http.ResponseWriter, r *http.Request) {
	const op = "api.category_ranking"

	rows, err := h.deps.CategoryRanking(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if limit := h.listLimit(r); len(rows) > limit {
		rows = rows[:limit]
	}

	resp := make([]rankingRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = rankingRowResponse{
			ParticipantID:     row.ParticipantID,
			DisplayName:       row.DisplayName,
			TotalScore:        row.TotalScore,
			CompletedWorkouts: row.CompletedWorkouts,
			Positions:         row.Positions,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
