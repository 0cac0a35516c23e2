package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	app "github.com/matchfit/scorebox/internal/app"
)

// ResultsHandler handles result submission and removal.
type ResultsHandler struct {
	deps Dependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps Dependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// submitRequest mirrors the submission payload.
type submitRequest struct {
	ParticipantID string `json:"participant_id"`
	Team          bool   `json:"team"`
	RawValue      string `json:"raw_value"`
	Finalized     bool   `json:"finalized"`
}

func (req submitRequest) validate() error {
	switch {
	case strings.TrimSpace(req.ParticipantID) == "":
		return NewKind("validate", ErrBadRequest)
	case strings.TrimSpace(req.RawValue) == "":
		return NewKind("validate", ErrBadRequest)
	}
	return nil
}

// resultResponse is the submission acknowledgement with the fresh position.
type resultResponse struct {
	RecordID      string `json:"record_id"`
	CategoryID    string `json:"category_id"`
	WorkoutID     string `json:"workout_id"`
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
	Team          bool   `json:"team"`
	Value         string `json:"value"`
	Position      int    `json:"position"`
	Finalized     bool   `json:"finalized"`
	Created       bool   `json:"created"`
}

func toResultResponse(s app.ResultSummary) resultResponse {
	return resultResponse{
		RecordID:      s.RecordID,
		CategoryID:    s.CategoryID,
		WorkoutID:     s.WorkoutID,
		ParticipantID: s.ParticipantID,
		DisplayName:   s.DisplayName,
		Team:          s.IsTeam,
		Value:         s.Value,
		Position:      s.Position,
		Finalized:     s.Finalized,
		Created:       s.Created,
	}
}

// HandleSubmit handles POST /categories/{categoryID}/workouts/{workoutID}/results.
func (h *ResultsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_result"

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	summary, err := h.deps.SubmitResult(r.Context(), app.SubmitRequest{
		CategoryID:    chi.URLParam(r, "categoryID"),
		WorkoutID:     chi.URLParam(r, "workoutID"),
		ParticipantID: req.ParticipantID,
		IsTeam:        req.Team,
		RawValue:      req.RawValue,
		Finalized:     req.Finalized,
	})
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(summary))
}

type batchRequest struct {
	Items []submitRequest `json:"items"`
}

type batchFailureResponse struct {
	ParticipantID string `json:"participant_id"`
	Reason        string `json:"reason"`
	Message       string `json:"message"`
}

type batchResponse struct {
	Accepted []resultResponse       `json:"accepted"`
	Failed   []batchFailureResponse `json:"failed"`
}

// HandleSubmitBatch handles POST .../results/batch. Items failing
// normalization or validation are reported per item while the rest of the
// batch still lands.
func (h *ResultsHandler) HandleSubmitBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_batch"

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrEmptyBatch))
		return
	}

	items := make([]app.BatchItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = app.BatchItem{
			ParticipantID: item.ParticipantID,
			IsTeam:        item.Team,
			RawValue:      item.RawValue,
			Finalized:     item.Finalized,
		}
	}

	out, err := h.deps.SubmitBatch(r.Context(), chi.URLParam(r, "categoryID"), chi.URLParam(r, "workoutID"), items)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	resp := batchResponse{
		Accepted: make([]resultResponse, 0, len(out.Accepted)),
		Failed:   make([]batchFailureResponse, 0, len(out.Failed)),
	}
	for _, s := range out.Accepted {
		resp.Accepted = append(resp.Accepted, toResultResponse(s))
	}
	for _, f := range out.Failed {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		resp.Failed = append(resp.Failed, batchFailureResponse{
			ParticipantID: f.ParticipantID,
			Reason:        f.Reason,
			Message:       msg,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleRemove handles DELETE .../results/{participantID}?team=true|false.
func (h *ResultsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	const op = "api.remove_result"

	isTeam := false
	if v := r.URL.Query().Get("team"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		isTeam = parsed
	}

	err := h.deps.RemoveResult(r.Context(),
		chi.URLParam(r, "categoryID"),
		chi.URLParam(r, "workoutID"),
		chi.URLParam(r, "participantID"),
		isTeam,
	)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
