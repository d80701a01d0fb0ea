package handler

import (
	"net/http"
	"sort"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/storage"
	"github.com/ostapdev/teamwheel/internal/web/middleware"
	"github.com/ostapdev/teamwheel/internal/web/templates"
)

// AdminHandler handles the admin roster page
type AdminHandler struct {
	storage      storage.Storage
	scoreService *score.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(storage storage.Storage, scoreService *score.Service) *AdminHandler {
	return &AdminHandler{
		storage:      storage,
		scoreService: scoreService,
	}
}

// Admin renders the per-team roster with scores and QR codes.
// Non-admin accounts get the forbidden page.
func (h *AdminHandler) Admin(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	if !account.IsAdmin {
		render(w, http.StatusForbidden, "forbidden.html", templates.PageData{
			Title:    "Доступ запрещен",
			Username: account.DisplayName(),
			Team:     account.Team,
		})
		return
	}

	standings, err := fullStandings(r.Context(), h.scoreService)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	accounts, err := h.storage.ListAccounts(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	members := make(map[model.TeamID][]string)
	for _, a := range accounts {
		members[a.Team] = append(members[a.Team], a.Username)
	}

	teams := make([]templates.RosterTeam, 0, len(standings))
	for _, s := range standings {
		roster := members[s.TeamID]
		sort.Strings(roster)
		teams = append(teams, templates.RosterTeam{
			Score:   s,
			Members: roster,
		})
	}

	render(w, http.StatusOK, "admin.html", templates.AdminData{
		PageData: pageData(r, "Админ-панель"),
		Teams:    teams,
	})
}
