package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ostapdev/teamwheel/internal/storage/jsonfile"
)

// MigrateFromJSON performs the one-time import of a legacy flat-file
// document. It runs only when the accounts table is empty and the file
// exists; repeated calls are no-ops. Returns the number of accounts
// imported.
func (s *Storage) MigrateFromJSON(ctx context.Context, path string) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	accounts, scores, err := jsonfile.LoadDocument(path)
	if err != nil {
		return 0, fmt.Errorf("load legacy document: %w", err)
	}

	for _, account := range accounts {
		if err := s.SaveAccount(ctx, account); err != nil {
			return 0, fmt.Errorf("import account %s: %w", account.Username, err)
		}
	}
	for _, score := range scores {
		if err := s.SaveTeamScore(ctx, score); err != nil {
			return 0, fmt.Errorf("import team %s: %w", score.TeamID, err)
		}
	}
	return len(accounts), nil
}
