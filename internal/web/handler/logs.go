package handler

import (
	"net/http"

	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/web/middleware"
	"github.com/ostapdev/teamwheel/internal/web/templates"
)

// LogsHandler handles the admin action log page
type LogsHandler struct {
	actionLog *actionlog.Service
}

// NewLogsHandler creates a new LogsHandler
func NewLogsHandler(actionLog *actionlog.Service) *LogsHandler {
	return &LogsHandler{
		actionLog: actionLog,
	}
}

// Logs renders the most recent action log entries, newest first
func (h *LogsHandler) Logs(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	if !account.IsAdmin {
		render(w, http.StatusForbidden, "forbidden.html", templates.PageData{
			Title:    "Доступ запрещен",
			Username: account.DisplayName(),
			Team:     account.Team,
		})
		return
	}

	entries, available, err := h.actionLog.List(r.Context(), actionlog.DefaultLimit)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "logs.html", templates.LogsData{
		PageData:  pageData(r, "Журнал действий"),
		Entries:   entries,
		Available: available,
	})
}
