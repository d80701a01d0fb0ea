// Package sqlstore persists state in a relational database via database/sql.
// Both PostgreSQL (lib/pq) and the embedded SQLite fallback (modernc.org/sqlite)
// are supported; queries use $n placeholders, which both drivers accept.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/storage"
)

// Storage is a relational implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New creates a relational storage over an open database handle and
// ensures the schema exists.
func New(db *sql.DB) (*Storage, error) {
	if err := CreateSchema(db); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	usedQRs, err := json.Marshal(append([]string{}, account.UsedQRCodes...))
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO accounts (username, password, team, name, is_admin, last_spin, used_qrs)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO UPDATE SET
			password = EXCLUDED.password,
			team = EXCLUDED.team,
			name = EXCLUDED.name,
			is_admin = EXCLUDED.is_admin,
			last_spin = EXCLUDED.last_spin,
			used_qrs = EXCLUDED.used_qrs`,
		account.Username, account.Password, string(account.Team), account.Name,
		boolToInt(account.IsAdmin), account.LastSpinDate, string(usedQRs),
	)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT username, password, team, name, is_admin, last_spin, used_qrs
		FROM accounts WHERE username = $1`, username)
	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAccountNotFound
	}
	return account, err
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, password, team, name, is_admin, last_spin, used_qrs
		FROM accounts ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, account)
	}
	return out, rows.Err()
}

func (s *Storage) CountAccountsByTeam(ctx context.Context, team model.TeamID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE team = $1`, string(team)).Scan(&count)
	return count, err
}

// Team score operations

func (s *Storage) SaveTeamScore(ctx context.Context, score *model.TeamScore) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_scores (team_id, name, score)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id) DO UPDATE SET
			name = EXCLUDED.name,
			score = EXCLUDED.score`,
		string(score.TeamID), score.Name, score.Score,
	)
	return err
}

func (s *Storage) GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	score := &model.TeamScore{TeamID: teamID}
	err := s.db.QueryRowContext(ctx,
		`SELECT name, score FROM team_scores WHERE team_id = $1`, string(teamID)).
		Scan(&score.Name, &score.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return score, nil
}

func (s *Storage) ListTeamScores(ctx context.Context) ([]*model.TeamScore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_id, name, score FROM team_scores ORDER BY team_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.TeamScore
	for rows.Next() {
		var score model.TeamScore
		var teamID string
		if err := rows.Scan(&teamID, &score.Name, &score.Score); err != nil {
			return nil, err
		}
		score.TeamID = model.TeamID(teamID)
		out = append(out, &score)
	}
	return out, rows.Err()
}

// Action log operations

func (s *Storage) AppendLogEntry(ctx context.Context, entry *model.ActionLogEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO logs (id, username, action, result, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Username, entry.Action, entry.Result,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Storage) ListLogEntries(ctx context.Context, limit int) ([]*model.ActionLogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, action, result, created_at
		FROM logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ActionLogEntry
	for rows.Next() {
		var entry model.ActionLogEntry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Username, &entry.Action, &entry.Result, &createdAt); err != nil {
			return nil, err
		}
		entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
		}
		out = append(out, &entry)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAccount(row scannable) (*model.Account, error) {
	var account model.Account
	var team, usedQRs string
	var isAdmin int
	if err := row.Scan(&account.Username, &account.Password, &team, &account.Name,
		&isAdmin, &account.LastSpinDate, &usedQRs); err != nil {
		return nil, err
	}
	account.Team = model.TeamID(team)
	account.IsAdmin = isAdmin != 0
	if err := json.Unmarshal([]byte(usedQRs), &account.UsedQRCodes); err != nil {
		return nil, fmt.Errorf("bad used_qrs for %s: %w", account.Username, err)
	}
	return &account, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
