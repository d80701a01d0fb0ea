package handler

import (
	"net/http"

	"github.com/ostapdev/teamwheel/internal/api/middleware"
	"github.com/ostapdev/teamwheel/internal/api/response"
	"github.com/ostapdev/teamwheel/internal/services/spin"
)

// SpinHandler handles the daily wheel endpoint
type SpinHandler struct {
	engine *spin.Engine
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(engine *spin.Engine) *SpinHandler {
	return &SpinHandler{
		engine: engine,
	}
}

// Spin handles GET /spin
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	result, err := h.engine.Spin(r.Context(), account.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SpinFromResult(result))
}
