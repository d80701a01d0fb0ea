package handler

import (
	"net/http"

	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/web/templates"
)

// HomeHandler handles the dashboard page
type HomeHandler struct {
	scoreService *score.Service
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(scoreService *score.Service) *HomeHandler {
	return &HomeHandler{
		scoreService: scoreService,
	}
}

// Home renders the dashboard
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	standings, err := fullStandings(r.Context(), h.scoreService)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "index.html", templates.DashboardData{
		PageData:  pageData(r, "Главная"),
		Standings: standings,
	})
}
