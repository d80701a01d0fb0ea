// Package factory wires storage, dependencies and services into a
// runnable application graph.
package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/ostapdev/teamwheel/internal/dependencies/clock"
	"github.com/ostapdev/teamwheel/internal/dependencies/random"
	"github.com/ostapdev/teamwheel/internal/keylock"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/services/spin"
	"github.com/ostapdev/teamwheel/internal/services/verse"
	"github.com/ostapdev/teamwheel/internal/session"
	"github.com/ostapdev/teamwheel/internal/storage"
	"github.com/ostapdev/teamwheel/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage and sessions
	Storage  storage.Storage
	Sessions session.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Cross-service infrastructure
	Locks      *keylock.KeyedMutex
	Dispatcher *notify.Dispatcher

	// Services
	ActionLog    *actionlog.Service
	AuthService  *auth.Service
	ScoreService *score.Service
	VerseService *verse.Service
	SpinEngine   *spin.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Storage selects the persistence backend (optional)
	// If nil, an in-memory store is used
	Storage storage.Storage
	// Sessions selects the session backend (optional)
	// If nil, an in-memory store is used
	Sessions session.Store
	// Notifier receives game-event announcements (optional)
	// If nil, notifications are discarded
	Notifier notify.Notifier
	// SecretKey signs session cookies
	SecretKey string
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// SpinWeights overrides the wheel outcome weights (optional)
	SpinWeights []int
	// SpinLocation fixes the calendar used for the daily spin gate
	// (optional). Nil gates on server-local time.
	SpinLocation *time.Location
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	return newWithDependencies(cfg, clock.New(), random.New())
}

func newWithDependencies(cfg Config, clk clock.Clock, rnd random.Random) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store := cfg.Storage
	if store == nil {
		store = memory.New()
	}
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionTTL == 0 {
		authCfg = auth.DefaultConfig()
	}

	locks := keylock.New()
	dispatcher := notify.NewDispatcher(cfg.Notifier, logger)
	signer := session.NewSigner(cfg.SecretKey)

	actionLog := actionlog.New(store, clk, logger)
	authService := auth.New(store, sessions, signer, clk, rnd, actionLog, dispatcher, logger, authCfg)
	scoreService := score.New(store, locks, actionLog, dispatcher, logger)
	verseService := verse.New(rnd, logger)
	spinEngine := spin.New(store, scoreService, verseService, locks, clk, rnd, actionLog, dispatcher, logger, cfg.SpinWeights, cfg.SpinLocation)

	return &App{
		Storage:      store,
		Sessions:     sessions,
		Clock:        clk,
		Random:       rnd,
		Locks:        locks,
		Dispatcher:   dispatcher,
		ActionLog:    actionLog,
		AuthService:  authService,
		ScoreService: scoreService,
		VerseService: verseService,
		SpinEngine:   spinEngine,
	}
}
