package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/ostapdev/teamwheel/internal/api"
	"github.com/ostapdev/teamwheel/internal/config"
	"github.com/ostapdev/teamwheel/internal/factory"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/session"
	"github.com/ostapdev/teamwheel/internal/storage"
	"github.com/ostapdev/teamwheel/internal/storage/jsonfile"
	"github.com/ostapdev/teamwheel/internal/storage/sqlstore"
	"github.com/ostapdev/teamwheel/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Error("failed to set up storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessions, err := buildSessions(cfg)
	if err != nil {
		logger.Error("failed to set up session store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	spinLocation, err := cfg.SpinLocation()
	if err != nil {
		logger.Error("invalid spin timezone", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := factory.New(factory.Config{
		Logger:    logger,
		Storage:   store,
		Sessions:  sessions,
		Notifier:  buildNotifier(cfg, logger),
		SecretKey: cfg.SecretKey,
		AuthConfig: auth.Config{
			TeamCap:    cfg.TeamCap,
			SessionTTL: cfg.SessionTTL,
		},
		SpinWeights:  cfg.SpinWeights,
		SpinLocation: spinLocation,
	})

	// A missing verse file leaves the pool empty; the verse outcome then
	// returns its fallback text
	if err := app.VerseService.LoadFromFile(cfg.VersesFile); err != nil {
		logger.Warn("could not load verses", slog.String("error", err.Error()))
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		SpinEngine:       app.SpinEngine,
		ScoreService:     app.ScoreService,
		BaseURL:          cfg.BaseURL,
		UpdateScoreToken: cfg.UpdateScoreToken,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		ScoreService: app.ScoreService,
		ActionLog:    app.ActionLog,
		Storage:      app.Storage,
		TeamCap:      cfg.TeamCap,
		SessionTTL:   cfg.SessionTTL,
	})

	// The JSON endpoints keep their historical root-level paths; the
	// rest of the URL space belongs to the HTML surface
	mux := http.NewServeMux()
	mux.Handle("/spin", apiRouter)
	mux.Handle("/update_score", apiRouter)
	mux.Handle("/qr/", apiRouter)
	mux.Handle("/healthz", apiRouter)
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// buildStorage selects the persistence backend: the legacy JSON
// document when STORAGE_TYPE=json, Postgres when DATABASE_URL is set,
// an embedded SQLite database otherwise
func buildStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.StorageType == config.StorageTypeJSON {
		logger.Info("using JSON file storage", slog.String("path", cfg.UsersFile))
		return jsonfile.New(cfg.UsersFile), nil
	}

	var db *sql.DB
	var err error
	if cfg.DatabaseURL != "" {
		logger.Info("using Postgres storage")
		db, err = sql.Open("postgres", cfg.NormalizedDatabaseURL())
	} else {
		logger.Info("using SQLite storage", slog.String("path", cfg.DataFile))
		db, err = sql.Open("sqlite", cfg.DataFile)
	}
	if err != nil {
		return nil, err
	}

	store, err := sqlstore.New(db)
	if err != nil {
		return nil, err
	}

	// Pick up accounts from a pre-existing JSON file exactly once
	migrated, err := store.MigrateFromJSON(context.Background(), cfg.UsersFile)
	if err != nil {
		logger.Warn("json migration failed", slog.String("error", err.Error()))
	} else if migrated > 0 {
		logger.Info("migrated accounts from JSON file", slog.Int("count", migrated))
	}

	return store, nil
}

func buildSessions(cfg *config.Config) (session.Store, error) {
	if cfg.RedisURL == "" {
		return session.NewMemoryStore(), nil
	}
	return session.NewRedisStore(cfg.RedisURL)
}

// buildNotifier wires Telegram when configured, otherwise falls back to
// logging announcements locally
func buildNotifier(cfg *config.Config, logger *slog.Logger) notify.Notifier {
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("telegram notifier unavailable", slog.String("error", err.Error()))
			return notify.NewLogNotifier(logger)
		}
		return tg
	}
	return notify.NewLogNotifier(logger)
}
