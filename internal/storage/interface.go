package storage

import (
	"context"

	"github.com/ostapdev/teamwheel/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, username string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	CountAccountsByTeam(ctx context.Context, team model.TeamID) (int, error)

	// Team score operations
	SaveTeamScore(ctx context.Context, score *model.TeamScore) error
	GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error)
	ListTeamScores(ctx context.Context) ([]*model.TeamScore, error)

	// Action log operations. Backends without durable log support accept
	// appends as no-ops and return model.ErrActionLogUnavailable on reads.
	AppendLogEntry(ctx context.Context, entry *model.ActionLogEntry) error
	ListLogEntries(ctx context.Context, limit int) ([]*model.ActionLogEntry, error)
}
