package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/actionlog"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.VerseService.LoadVerses([]string{"Первый стих", "Второй стих"})
}

func (s *IntegrationSuite) register(username string, team model.TeamID) string {
	result, err := s.app.AuthService.LoginOrRegister(s.ctx, username, "pw", team)
	s.Require().NoError(err)
	return result.Cookie
}

// Test: full day of play from registration to the admin log
func (s *IntegrationSuite) TestCompetitionDayFlow() {
	// Step 1: Three players register onto two teams
	aliceCookie := s.register("alice", "1")
	s.register("bob", "1")
	s.register("carol", "2")

	// Step 2: Alice's cookie resolves back to her account
	alice, err := s.app.AuthService.Authenticate(s.ctx, aliceCookie)
	s.Require().NoError(err)
	s.Equal("alice", alice.Username)
	s.Equal(model.TeamID("1"), alice.Team)

	// Step 3: Alice spins and hits the verse outcome: +1 for team 1
	s.app.MockRandom.QueueWeighted(1)
	s.app.MockRandom.QueueIntn(0)
	done := s.app.Notifications.Expect()
	result, err := s.app.SpinEngine.Spin(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.OutcomeVerse, result.Outcome)
	s.Equal("Первый стих", result.Verse)
	s.Equal(1, result.TeamScore)
	<-done

	// Step 4: A second spin the same day is rejected
	_, err = s.app.SpinEngine.Spin(s.ctx, "alice")
	s.ErrorIs(err, model.ErrAlreadySpunToday)

	// Step 5: Bob spins a blank outcome: attempt spent, no point,
	// still announced
	s.app.MockRandom.QueueWeighted(2)
	done = s.app.Notifications.Expect()
	result, err = s.app.SpinEngine.Spin(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(3, result.Outcome)
	s.Empty(result.Verse)
	<-done

	score, err := s.app.Storage.GetTeamScore(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(1, score.Score)

	// Step 6: Carol redeems a QR code for team 2
	done = s.app.Notifications.Expect()
	teamScore, err := s.app.ScoreService.Redeem(s.ctx, "carol", "station-7")
	s.Require().NoError(err)
	s.Equal(1, teamScore.Score)
	<-done

	// Step 7: The same code adds nothing the second time
	_, err = s.app.ScoreService.Redeem(s.ctx, "carol", "station-7")
	s.ErrorIs(err, model.ErrAlreadyRedeemed)

	score, err = s.app.Storage.GetTeamScore(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal(1, score.Score)

	// Step 8: An organizer corrects team 2's score by hand
	done = s.app.Notifications.Expect()
	adjusted, err := s.app.ScoreService.Adjust(s.ctx, "2", 3)
	s.Require().NoError(err)
	s.Equal(4, adjusted.Score)
	<-done

	// Step 9: Standings reflect every mutation above
	standings, err := s.app.ScoreService.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.Equal(model.TeamID("1"), standings[0].TeamID)
	s.Equal(1, standings[0].Score)
	s.Equal(model.TeamID("2"), standings[1].TeamID)
	s.Equal(4, standings[1].Score)

	// Step 10: The action log recorded the whole day, newest first
	entries, available, err := s.app.ActionLog.List(s.ctx, actionlog.DefaultLimit)
	s.Require().NoError(err)
	s.True(available)
	s.Require().NotEmpty(entries)
	s.Equal(model.ActionAdjustScore, entries[0].Action)

	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	s.Contains(actions, model.ActionRegister)
	s.Contains(actions, model.ActionSpin)
	s.Contains(actions, model.ActionScan)

	// Step 11: Everything noteworthy was announced, blank spins included
	messages := s.app.Notifications.Messages()
	s.Require().Len(messages, 4)
	s.Contains(messages[0], "alice")
	s.Contains(messages[1], "bob")
	s.Contains(messages[2], "carol")
	// Score announcements list every team's standing
	s.Contains(messages[2], "Команда 1: 1")
	s.Contains(messages[2], "Команда 2: 1")
	s.Contains(messages[3], "Команда 1: 1")
	s.Contains(messages[3], "Команда 2: 4")
}

// Test: the daily gate opens again on the next calendar day
func (s *IntegrationSuite) TestSpinResetsNextDay() {
	s.register("alice", "1")

	s.app.MockRandom.QueueWeighted(2)
	_, err := s.app.SpinEngine.Spin(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.app.SpinEngine.Spin(s.ctx, "alice")
	s.ErrorIs(err, model.ErrAlreadySpunToday)

	s.app.MockClock.Advance(24 * time.Hour)
	s.app.MockRandom.QueueWeighted(2)
	_, err = s.app.SpinEngine.Spin(s.ctx, "alice")
	s.NoError(err)
}

// Test: a failing notifier never fails the player-facing operation
func (s *IntegrationSuite) TestNotifierFailureIsSwallowed() {
	s.register("alice", "1")
	s.app.Notifications.FailNext()

	done := s.app.Notifications.Expect()
	_, err := s.app.ScoreService.Redeem(s.ctx, "alice", "station-1")
	s.Require().NoError(err)
	<-done

	score, err := s.app.Storage.GetTeamScore(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(1, score.Score)
}

func (s *IntegrationSuite) TestTeamCapBlocksRegistrationOnly() {
	for i := 0; i < 35; i++ {
		name := "player" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		s.register(name, "3")
	}

	_, err := s.app.AuthService.LoginOrRegister(s.ctx, "straggler", "pw", "3")
	s.ErrorIs(err, model.ErrTeamFull)

	// Existing members still log in past the cap
	_, err = s.app.AuthService.LoginOrRegister(s.ctx, "playeraa", "pw", "3")
	s.NoError(err)
}
