package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ostapdev/teamwheel/internal/api/request"
	"github.com/ostapdev/teamwheel/internal/api/response"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/score"
)

// ScoreHandler handles manual score adjustments
type ScoreHandler struct {
	scoreService *score.Service
	adminToken   string
}

// NewScoreHandler creates a new score handler. A non-empty adminToken
// makes UpdateScore require a matching X-Admin-Token header.
func NewScoreHandler(scoreService *score.Service, adminToken string) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		adminToken:   adminToken,
	}
}

// UpdateScore handles POST /update_score
func (h *ScoreHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	if h.adminToken != "" && r.Header.Get("X-Admin-Token") != h.adminToken {
		WriteError(w, NewForbiddenError("Доступ запрещен"))
		return
	}

	var req request.UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.TeamID == "" {
		WriteError(w, NewInvalidRequestError("team_id is required"))
		return
	}
	if req.Delta == nil {
		WriteError(w, NewInvalidRequestError("delta is required"))
		return
	}

	result, err := h.scoreService.Adjust(r.Context(), model.TeamID(req.TeamID), *req.Delta)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Score{NewScore: result.Score})
}
