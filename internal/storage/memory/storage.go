package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts map[string]*model.Account
	scores   map[model.TeamID]*model.TeamScore
	logs     []*model.ActionLogEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts: make(map[string]*model.Account),
		scores:   make(map[model.TeamID]*model.TeamScore),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *account
	copied.UsedQRCodes = append([]string(nil), account.UsedQRCodes...)
	s.accounts[account.Username] = &copied
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	copied.UsedQRCodes = append([]string(nil), account.UsedQRCodes...)
	return &copied, nil
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		copied := *account
		copied.UsedQRCodes = append([]string(nil), account.UsedQRCodes...)
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *Storage) CountAccountsByTeam(ctx context.Context, team model.TeamID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, account := range s.accounts {
		if account.Team == team {
			count++
		}
	}
	return count, nil
}

// Team score operations

func (s *Storage) SaveTeamScore(ctx context.Context, score *model.TeamScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *score
	s.scores[score.TeamID] = &copied
	return nil
}

func (s *Storage) GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[teamID]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	copied := *score
	return &copied, nil
}

func (s *Storage) ListTeamScores(ctx context.Context) ([]*model.TeamScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.TeamScore, 0, len(s.scores))
	for _, score := range s.scores {
		copied := *score
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

// Action log operations

func (s *Storage) AppendLogEntry(ctx context.Context, entry *model.ActionLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *entry
	s.logs = append(s.logs, &copied)
	return nil
}

func (s *Storage) ListLogEntries(ctx context.Context, limit int) ([]*model.ActionLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.logs) {
		limit = len(s.logs)
	}
	// Newest first
	out := make([]*model.ActionLogEntry, 0, limit)
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		copied := *s.logs[i]
		out = append(out, &copied)
	}
	return out, nil
}
