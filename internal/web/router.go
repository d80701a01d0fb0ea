// Package web serves the HTML surface of the game: dashboard, login,
// wheel page, QR scanning and the admin views.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/storage"
	"github.com/ostapdev/teamwheel/internal/web/handler"
	"github.com/ostapdev/teamwheel/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	ScoreService *score.Service
	ActionLog    *actionlog.Service
	Storage      storage.Storage
	TeamCap      int
	SessionTTL   time.Duration
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	homeHandler := handler.NewHomeHandler(cfg.ScoreService)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.TeamCap, cfg.SessionTTL)
	wheelHandler := handler.NewWheelHandler(cfg.ScoreService)
	adminHandler := handler.NewAdminHandler(cfg.Storage, cfg.ScoreService)
	scanHandler := handler.NewScanHandler(cfg.ScoreService)
	logsHandler := handler.NewLogsHandler(cfg.ActionLog)

	// Login is the only page an anonymous visitor can reach
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	protected.HandleFunc("/koles", wheelHandler.Wheel).Methods(http.MethodGet)
	protected.HandleFunc("/admin", adminHandler.Admin).Methods(http.MethodGet)
	protected.HandleFunc("/scan/{qr_id}", scanHandler.Scan).Methods(http.MethodGet)
	protected.HandleFunc("/logs", logsHandler.Logs).Methods(http.MethodGet)

	return r
}
