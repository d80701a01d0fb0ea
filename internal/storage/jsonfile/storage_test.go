package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ostapdev/teamwheel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	path    string
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "users.json")
	s.storage = New(s.path)
	s.ctx = context.Background()
}

func (s *StorageSuite) TestEmptyFileBehavesAsEmptyStore() {
	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(accounts)

	_, err = s.storage.GetAccount(s.ctx, "alice")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestAccountRoundTrip() {
	account := &model.Account{
		Username:     "alice",
		Password:     "secret",
		Team:         "1",
		IsAdmin:      true,
		LastSpinDate: "2024-06-01",
		UsedQRCodes:  []string{"booth-5"},
	}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	got, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(account, got)
}

func (s *StorageSuite) TestUnknownReservedKeysSurviveRewrite() {
	legacy := `{
  "alice": {"password": "secret", "role": "1"},
  "_team_scores": {"1": {"name": "Команда 1", "score": 4}},
  "_meta": {"snapshot": 3}
}`
	s.Require().NoError(os.WriteFile(s.path, []byte(legacy), 0o600))

	// Any write rebuilds the whole document
	s.Require().NoError(s.storage.SaveAccount(s.ctx, &model.Account{
		Username: "bob",
		Password: "hunter2",
		Team:     "2",
	}))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	var raw map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Require().Contains(raw, "_meta")
	s.JSONEq(`{"snapshot": 3}`, string(raw["_meta"]))
	s.Require().Contains(raw, "alice")
	s.Require().Contains(raw, "bob")
}

func (s *StorageSuite) TestLegacyDocumentLayout() {
	// Layout written by the original deployment
	legacy := `{
  "alice": {"password": "secret", "role": "1", "used_qrs": ["booth-5"]},
  "bob": {"password": "hunter2", "role": "2", "is_admin": true},
  "_team_scores": {"1": {"name": "Команда 1", "score": 4}}
}`
	s.Require().NoError(os.WriteFile(s.path, []byte(legacy), 0o600))

	alice, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.TeamID("1"), alice.Team)
	s.Equal([]string{"booth-5"}, alice.UsedQRCodes)
	s.False(alice.IsAdmin)

	bob, err := s.storage.GetAccount(s.ctx, "bob")
	s.Require().NoError(err)
	s.True(bob.IsAdmin)

	score, err := s.storage.GetTeamScore(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Команда 1", score.Name)
	s.Equal(4, score.Score)
}

func (s *StorageSuite) TestScoresStoredUnderReservedKey() {
	s.Require().NoError(s.storage.SaveTeamScore(s.ctx, &model.TeamScore{TeamID: "2", Name: "Команда 2", Score: 7}))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	var raw map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Contains(raw, "_team_scores")
}

func (s *StorageSuite) TestReservedKeyNeverListedAsAccount() {
	s.Require().NoError(s.storage.SaveTeamScore(s.ctx, &model.TeamScore{TeamID: "1", Name: "Команда 1"}))
	s.Require().NoError(s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice", Team: "1"}))

	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("alice", accounts[0].Username)
}

func (s *StorageSuite) TestCountAccountsByTeam() {
	s.Require().NoError(s.storage.SaveAccount(s.ctx, &model.Account{Username: "a", Team: "1"}))
	s.Require().NoError(s.storage.SaveAccount(s.ctx, &model.Account{Username: "b", Team: "1"}))
	s.Require().NoError(s.storage.SaveAccount(s.ctx, &model.Account{Username: "c", Team: "3"}))

	count, err := s.storage.CountAccountsByTeam(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestActionLogUnavailable() {
	err := s.storage.AppendLogEntry(s.ctx, &model.ActionLogEntry{Username: "alice", Action: model.ActionSpin})
	s.NoError(err)

	_, err = s.storage.ListLogEntries(s.ctx, 100)
	s.ErrorIs(err, model.ErrActionLogUnavailable)
}
