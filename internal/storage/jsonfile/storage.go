// Package jsonfile persists all state in a single JSON document, the
// layout used by the first deployments: account records keyed by username
// plus the reserved "_team_scores" key. Every operation reads the whole
// file and rewrites it.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/storage"
)

const teamScoresKey = "_team_scores"

// accountRecord is the on-disk account layout (legacy field names)
type accountRecord struct {
	Password string   `json:"password"`
	Role     string   `json:"role"`
	Name     string   `json:"name,omitempty"`
	IsAdmin  bool     `json:"is_admin,omitempty"`
	LastSpin string   `json:"last_spin,omitempty"`
	UsedQRs  []string `json:"used_qrs,omitempty"`
}

// teamScoreRecord is the on-disk team score layout
type teamScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type document struct {
	accounts map[string]accountRecord
	scores   map[string]teamScoreRecord
	// extras holds unknown "_"-prefixed keys verbatim so a rewrite
	// never drops data another snapshot of the app may own
	extras map[string]json.RawMessage
}

// Storage is a flat-file implementation of the storage interface
type Storage struct {
	mu   sync.Mutex
	path string
}

// New creates a flat-file storage backed by the document at path.
// The file is created on first write.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.accounts[account.Username] = accountRecord{
		Password: account.Password,
		Role:     string(account.Team),
		Name:     account.Name,
		IsAdmin:  account.IsAdmin,
		LastSpin: account.LastSpinDate,
		UsedQRs:  append([]string(nil), account.UsedQRCodes...),
	}
	return s.save(doc)
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	rec, ok := doc.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return rec.toModel(username), nil
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Account, 0, len(doc.accounts))
	for username, rec := range doc.accounts {
		out = append(out, rec.toModel(username))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *Storage) CountAccountsByTeam(ctx context.Context, team model.TeamID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, rec := range doc.accounts {
		if rec.Role == string(team) {
			count++
		}
	}
	return count, nil
}

// Team score operations

func (s *Storage) SaveTeamScore(ctx context.Context, score *model.TeamScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.scores[string(score.TeamID)] = teamScoreRecord{Name: score.Name, Score: score.Score}
	return s.save(doc)
}

func (s *Storage) GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	rec, ok := doc.scores[string(teamID)]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return &model.TeamScore{TeamID: teamID, Name: rec.Name, Score: rec.Score}, nil
}

func (s *Storage) ListTeamScores(ctx context.Context) ([]*model.TeamScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]*model.TeamScore, 0, len(doc.scores))
	for id, rec := range doc.scores {
		out = append(out, &model.TeamScore{TeamID: model.TeamID(id), Name: rec.Name, Score: rec.Score})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

// Action log operations.
// The flat-file document has no log section; appends are accepted and
// dropped so callers never fail, reads report the capability gap.

func (s *Storage) AppendLogEntry(ctx context.Context, entry *model.ActionLogEntry) error {
	return nil
}

func (s *Storage) ListLogEntries(ctx context.Context, limit int) ([]*model.ActionLogEntry, error) {
	return nil, model.ErrActionLogUnavailable
}

// Document I/O

func (s *Storage) load() (*document, error) {
	doc := &document{
		accounts: make(map[string]accountRecord),
		scores:   make(map[string]teamScoreRecord),
		extras:   make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	for key, msg := range raw {
		if key == teamScoresKey {
			if err := json.Unmarshal(msg, &doc.scores); err != nil {
				return nil, fmt.Errorf("parse %s.%s: %w", s.path, key, err)
			}
			continue
		}
		if len(key) > 0 && key[0] == '_' {
			// Unknown reserved key, carried through save() untouched
			doc.extras[key] = msg
			continue
		}
		var rec accountRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("parse account %q: %w", key, err)
		}
		doc.accounts[key] = rec
	}
	return doc, nil
}

func (s *Storage) save(doc *document) error {
	raw := make(map[string]any, len(doc.accounts)+len(doc.extras)+1)
	for username, rec := range doc.accounts {
		raw[username] = rec
	}
	for key, msg := range doc.extras {
		raw[key] = msg
	}
	raw[teamScoresKey] = doc.scores

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write cannot truncate the document
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func (r accountRecord) toModel(username string) *model.Account {
	return &model.Account{
		Username:     username,
		Password:     r.Password,
		Team:         model.TeamID(r.Role),
		Name:         r.Name,
		IsAdmin:      r.IsAdmin,
		LastSpinDate: r.LastSpin,
		UsedQRCodes:  append([]string(nil), r.UsedQRs...),
	}
}

// LoadDocument reads a legacy document without constructing a Storage.
// Used by the relational backend's one-time migration.
func LoadDocument(path string) ([]*model.Account, []*model.TeamScore, error) {
	s := New(path)
	ctx := context.Background()
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	scores, err := s.ListTeamScores(ctx)
	if err != nil {
		return nil, nil, err
	}
	return accounts, scores, nil
}
