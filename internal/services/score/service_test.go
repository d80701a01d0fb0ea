package score_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ostapdev/teamwheel/internal/dependencies/mocks"
	"github.com/ostapdev/teamwheel/internal/keylock"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/storage/memory"
	"github.com/ostapdev/teamwheel/internal/testutil"
)

type ScoreServiceTestSuite struct {
	suite.Suite

	ctx     context.Context
	store   *memory.Storage
	capture *notify.Capture
	service *score.Service
}

func TestScoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoreServiceTestSuite))
}

func (s *ScoreServiceTestSuite) SetupTest() {
	logger := testutil.NopLogger()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
	s.store = memory.New()
	s.capture = notify.NewCapture()
	s.service = score.New(
		s.store,
		keylock.New(),
		actionlog.New(s.store, clk, logger),
		notify.NewDispatcher(s.capture, logger),
		logger,
	)
}

func (s *ScoreServiceTestSuite) saveAccount(username string, team model.TeamID) {
	err := s.store.SaveAccount(s.ctx, &model.Account{
		Username: username,
		Password: "pw",
		Team:     team,
	})
	s.Require().NoError(err)
}

func (s *ScoreServiceTestSuite) TestAwardPointCreatesTeam() {
	result, err := s.service.AwardPoint(s.ctx, "1")
	s.Require().NoError(err)
	s.Require().Equal(1, result.Score)
	s.Require().Equal("Команда 1", result.Name)

	result, err = s.service.AwardPoint(s.ctx, "1")
	s.Require().NoError(err)
	s.Require().Equal(2, result.Score)
}

func (s *ScoreServiceTestSuite) TestRedeem() {
	s.saveAccount("alice", "1")

	sent := s.capture.Expect()
	result, err := s.service.Redeem(s.ctx, "alice", "booth-5")
	s.Require().NoError(err)
	s.Require().Equal(1, result.Score)
	<-sent

	account, err := s.store.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().True(account.HasUsedQR("booth-5"))
	s.Require().Contains(s.capture.Messages()[0], "Команда 1")
}

func (s *ScoreServiceTestSuite) TestAnnouncementsCarryAllStandings() {
	s.saveAccount("alice", "1")

	sent := s.capture.Expect()
	_, err := s.service.Adjust(s.ctx, "2", 7)
	s.Require().NoError(err)
	<-sent

	sent = s.capture.Expect()
	_, err = s.service.Redeem(s.ctx, "alice", "booth-5")
	s.Require().NoError(err)
	<-sent

	messages := s.capture.Messages()
	s.Require().Len(messages, 2)
	// The adjustment announced team 2's score alongside the delta
	s.Require().Contains(messages[0], "Команда 2: 7")
	// The redemption announced both teams, not just alice's own
	s.Require().Contains(messages[1], "Команда 1: 1")
	s.Require().Contains(messages[1], "Команда 2: 7")
}

func (s *ScoreServiceTestSuite) TestRedeemIsIdempotentPerCode() {
	s.saveAccount("alice", "1")

	_, err := s.service.Redeem(s.ctx, "alice", "booth-5")
	s.Require().NoError(err)

	_, err = s.service.Redeem(s.ctx, "alice", "booth-5")
	s.Require().ErrorIs(err, model.ErrAlreadyRedeemed)

	result, err := s.store.GetTeamScore(s.ctx, "1")
	s.Require().NoError(err)
	s.Require().Equal(1, result.Score)
}

func (s *ScoreServiceTestSuite) TestRedeemDifferentCodes() {
	s.saveAccount("alice", "1")

	_, err := s.service.Redeem(s.ctx, "alice", "booth-5")
	s.Require().NoError(err)
	result, err := s.service.Redeem(s.ctx, "alice", "booth-6")
	s.Require().NoError(err)
	s.Require().Equal(2, result.Score)
}

func (s *ScoreServiceTestSuite) TestRedeemUnknownAccount() {
	_, err := s.service.Redeem(s.ctx, "ghost", "booth-5")
	s.Require().ErrorIs(err, model.ErrAccountNotFound)
}

func (s *ScoreServiceTestSuite) TestRedeemAccountWithoutTeam() {
	s.saveAccount("alice", "")

	_, err := s.service.Redeem(s.ctx, "alice", "booth-5")
	s.Require().ErrorIs(err, model.ErrValidation)
}

func (s *ScoreServiceTestSuite) TestAdjust() {
	result, err := s.service.Adjust(s.ctx, "2", 5)
	s.Require().NoError(err)
	s.Require().Equal(5, result.Score)

	result, err = s.service.Adjust(s.ctx, "2", -5)
	s.Require().NoError(err)
	s.Require().Equal(0, result.Score)
}

func (s *ScoreServiceTestSuite) TestAdjustBelowZero() {
	result, err := s.service.Adjust(s.ctx, "2", -3)
	s.Require().NoError(err)
	s.Require().Equal(-3, result.Score)
}

func (s *ScoreServiceTestSuite) TestAdjustRequiresTeamID() {
	_, err := s.service.Adjust(s.ctx, "", 1)
	s.Require().ErrorIs(err, model.ErrValidation)
}

func (s *ScoreServiceTestSuite) TestStandingsOrderedByTeamID() {
	_, err := s.service.Adjust(s.ctx, "3", 1)
	s.Require().NoError(err)
	_, err = s.service.Adjust(s.ctx, "1", 2)
	s.Require().NoError(err)
	_, err = s.service.Adjust(s.ctx, "2", 3)
	s.Require().NoError(err)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 3)
	s.Require().Equal(model.TeamID("1"), standings[0].TeamID)
	s.Require().Equal(model.TeamID("2"), standings[1].TeamID)
	s.Require().Equal(model.TeamID("3"), standings[2].TeamID)
}
