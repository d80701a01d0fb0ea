// Package actionlog records user actions for the admin audit view.
package actionlog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ostapdev/teamwheel/internal/dependencies/clock"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/storage"
)

// DefaultLimit is how many entries the admin view shows
const DefaultLimit = 100

// Service appends and lists action-log entries
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new action log service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Record appends an entry. Storage failures are logged and swallowed:
// the audit trail must never fail the action it describes.
func (s *Service) Record(ctx context.Context, username, action, result string) {
	entry := &model.ActionLogEntry{
		ID:        uuid.NewString(),
		Username:  username,
		Action:    action,
		Result:    result,
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.AppendLogEntry(ctx, entry); err != nil {
		s.logger.Warn("action log append failed",
			slog.String("action", action),
			slog.String("username", username),
			slog.String("error", err.Error()))
	}
}

// List returns up to limit entries, newest first. Available reports
// whether the backend keeps a log at all.
func (s *Service) List(ctx context.Context, limit int) (entries []*model.ActionLogEntry, available bool, err error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	entries, err = s.storage.ListLogEntries(ctx, limit)
	if errors.Is(err, model.ErrActionLogUnavailable) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return entries, true, nil
}
