package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ostapdev/teamwheel/internal/api/handler"
	"github.com/ostapdev/teamwheel/internal/api/middleware"
	rootmiddleware "github.com/ostapdev/teamwheel/internal/middleware"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/services/spin"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	SpinEngine   *spin.Engine
	ScoreService *score.Service
	// BaseURL overrides the request host when building QR scan URLs
	BaseURL string
	// UpdateScoreToken, when non-empty, gates /update_score behind an
	// X-Admin-Token header
	UpdateScoreToken string
}

// NewRouter creates a new API router with all routes configured.
// Routes live at the root of the URL space, matching the frontend's
// hardcoded fetch paths.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	spinHandler := handler.NewSpinHandler(cfg.SpinEngine)
	scoreHandler := handler.NewScoreHandler(cfg.ScoreService, cfg.UpdateScoreToken)
	qrHandler := handler.NewQRHandler(cfg.BaseURL)

	authMiddleware := middleware.Auth(cfg.AuthService)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(rootmiddleware.Logging(cfg.Logger))

	// The wheel requires a session; score updates and QR images do not
	r.Handle("/spin", authMiddleware(http.HandlerFunc(spinHandler.Spin))).Methods(http.MethodGet)
	r.HandleFunc("/update_score", scoreHandler.UpdateScore).Methods(http.MethodPost)
	r.HandleFunc("/qr/{team_id}", qrHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
