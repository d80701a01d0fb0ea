package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ostapdev/teamwheel/internal/dependencies/clock"
	"github.com/ostapdev/teamwheel/internal/dependencies/random"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/session"
	"github.com/ostapdev/teamwheel/internal/storage"
)

// Config holds configuration for the auth service
type Config struct {
	// TeamCap is the maximum number of accounts per team
	TeamCap int
	// SessionTTL is how long an issued session stays valid
	SessionTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TeamCap:    35,
		SessionTTL: 24 * time.Hour,
	}
}

// LoginResult is the outcome of a successful login or registration
type LoginResult struct {
	Account *model.Account
	// Cookie is the signed session cookie value
	Cookie string
	// Registered is true when a new account was created
	Registered bool
}

// Service handles the combined login-or-register flow and sessions
type Service struct {
	storage  storage.Storage
	sessions session.Store
	signer   *session.Signer
	clock    clock.Clock
	random   random.Random
	log      *actionlog.Service
	notifier *notify.Dispatcher
	logger   *slog.Logger
	cfg      Config
}

// New creates a new auth service
func New(
	storage storage.Storage,
	sessions session.Store,
	signer *session.Signer,
	clk clock.Clock,
	rnd random.Random,
	log *actionlog.Service,
	notifier *notify.Dispatcher,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.TeamCap == 0 {
		cfg.TeamCap = DefaultConfig().TeamCap
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	return &Service{
		storage:  storage,
		sessions: sessions,
		signer:   signer,
		clock:    clk,
		random:   rnd,
		log:      log,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
	}
}

// LoginOrRegister authenticates an existing account or creates a new one.
// An existing username requires an exact password match; a new username
// joins the given team unless it is already at capacity.
func (s *Service) LoginOrRegister(ctx context.Context, username, password string, team model.TeamID) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" || team == "" {
		return nil, fmt.Errorf("%w: username, password and team are required", model.ErrValidation)
	}

	account, err := s.storage.GetAccount(ctx, username)
	switch {
	case err == nil:
		// Existing account: password is compared verbatim
		if account.Password != password {
			return nil, model.ErrInvalidCredentials
		}
		cookie, err := s.issueSession(ctx, username)
		if err != nil {
			return nil, err
		}
		s.log.Record(ctx, username, model.ActionLogin, "ok")
		return &LoginResult{Account: account, Cookie: cookie}, nil

	case errors.Is(err, model.ErrAccountNotFound):
		count, err := s.storage.CountAccountsByTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		if count >= s.cfg.TeamCap {
			return nil, model.ErrTeamFull
		}

		account := &model.Account{
			Username: username,
			Password: password,
			Team:     team,
		}
		if err := s.storage.SaveAccount(ctx, account); err != nil {
			return nil, err
		}

		cookie, err := s.issueSession(ctx, username)
		if err != nil {
			return nil, err
		}
		s.log.Record(ctx, username, model.ActionRegister, fmt.Sprintf("team %s", team))
		return &LoginResult{Account: account, Cookie: cookie, Registered: true}, nil

	default:
		return nil, err
	}
}

// Authenticate resolves a session cookie to its account.
// Returns model.ErrNotAuthenticated for missing, tampered or expired
// cookies and model.ErrAccountNotFound when the account is gone.
func (s *Service) Authenticate(ctx context.Context, cookieValue string) (*model.Account, error) {
	sess, err := s.lookup(ctx, cookieValue)
	if err != nil {
		return nil, err
	}
	return s.storage.GetAccount(ctx, sess.Username)
}

// Logout destroys the session and emits a best-effort notification
// naming the user who left. Unknown cookies are ignored.
func (s *Service) Logout(ctx context.Context, cookieValue string) {
	sess, err := s.lookup(ctx, cookieValue)
	if err != nil {
		return
	}
	if err := s.sessions.Delete(ctx, sess.Token); err != nil {
		s.logger.Warn("session delete failed", slog.String("error", err.Error()))
	}
	s.log.Record(ctx, sess.Username, model.ActionLogout, "ok")
	s.notifier.Dispatch(fmt.Sprintf("👋 %s вышел из игры", sess.Username))
}

// RequireAdmin checks the admin flag
func (s *Service) RequireAdmin(account *model.Account) error {
	if !account.IsAdmin {
		return model.ErrForbidden
	}
	return nil
}

func (s *Service) issueSession(ctx context.Context, username string) (string, error) {
	now := s.clock.Now()
	sess := &session.Session{
		Token:     s.random.Token("sess_"),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", err
	}
	return s.signer.Sign(sess.Token), nil
}

func (s *Service) lookup(ctx context.Context, cookieValue string) (*session.Session, error) {
	token, ok := s.signer.Verify(cookieValue)
	if !ok {
		return nil, model.ErrNotAuthenticated
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, model.ErrNotAuthenticated
		}
		return nil, err
	}
	if sess.Expired(s.clock.Now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, model.ErrNotAuthenticated
	}
	return sess, nil
}
