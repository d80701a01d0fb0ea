package handler

import (
	"net/http"

	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/web/templates"
)

// WheelHandler handles the wheel page
type WheelHandler struct {
	scoreService *score.Service
}

// NewWheelHandler creates a new WheelHandler
func NewWheelHandler(scoreService *score.Service) *WheelHandler {
	return &WheelHandler{
		scoreService: scoreService,
	}
}

// Wheel renders the wheel page. The spin itself goes through the JSON
// endpoint.
func (h *WheelHandler) Wheel(w http.ResponseWriter, r *http.Request) {
	standings, err := fullStandings(r.Context(), h.scoreService)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "koleso.html", templates.WheelData{
		PageData:  pageData(r, "Колесо"),
		Standings: standings,
	})
}
