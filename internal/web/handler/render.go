package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/web/middleware"
	"github.com/ostapdev/teamwheel/internal/web/templates"
)

func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Render(w, name, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// pageData builds the shared layout data from the request context
func pageData(r *http.Request, title string) templates.PageData {
	data := templates.PageData{
		Title: title,
		Flash: middleware.GetFlash(r.Context()),
	}
	if account := middleware.GetAccount(r.Context()); account != nil {
		data.Username = account.DisplayName()
		data.Team = account.Team
		data.IsAdmin = account.IsAdmin
	}
	return data
}

// fullStandings returns the standings with every default team present,
// so the tables always show teams 1-3 even before anyone scores
func fullStandings(ctx context.Context, scores *score.Service) ([]*model.TeamScore, error) {
	standings, err := scores.Standings(ctx)
	if err != nil {
		return nil, err
	}

	present := make(map[model.TeamID]bool, len(standings))
	for _, s := range standings {
		present[s.TeamID] = true
	}
	for _, id := range model.DefaultTeamIDs {
		if !present[id] {
			standings = append(standings, model.NewTeamScore(id))
		}
	}

	sort.Slice(standings, func(i, j int) bool {
		return standings[i].TeamID < standings[j].TeamID
	})
	return standings, nil
}
