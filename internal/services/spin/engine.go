// Package spin implements the daily wheel: a weighted draw over seven
// outcomes, gated to one attempt per account per calendar day.
package spin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ostapdev/teamwheel/internal/dependencies/clock"
	"github.com/ostapdev/teamwheel/internal/dependencies/random"
	"github.com/ostapdev/teamwheel/internal/keylock"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/services/score"
	"github.com/ostapdev/teamwheel/internal/services/verse"
	"github.com/ostapdev/teamwheel/internal/storage"
)

// DefaultWeights is the relative likelihood of each wheel outcome,
// outcome N drawn with weight DefaultWeights[N-1]
var DefaultWeights = []int{5, 50, 5, 10, 10, 10, 10}

// Engine runs wheel spins
type Engine struct {
	storage  storage.Storage
	scores   *score.Service
	verses   *verse.Service
	locks    *keylock.KeyedMutex
	clock    clock.Clock
	random   random.Random
	log      *actionlog.Service
	notifier *notify.Dispatcher
	logger   *slog.Logger

	weights  []int
	location *time.Location
}

// New creates a spin engine. Nil weights fall back to DefaultWeights;
// a nil location gates spins on the server's local calendar day.
func New(
	storage storage.Storage,
	scores *score.Service,
	verses *verse.Service,
	locks *keylock.KeyedMutex,
	clk clock.Clock,
	rnd random.Random,
	log *actionlog.Service,
	notifier *notify.Dispatcher,
	logger *slog.Logger,
	weights []int,
	location *time.Location,
) *Engine {
	if len(weights) == 0 {
		weights = DefaultWeights
	}
	return &Engine{
		storage:  storage,
		scores:   scores,
		verses:   verses,
		locks:    locks,
		clock:    clk,
		random:   rnd,
		log:      log,
		notifier: notifier,
		logger:   logger,
		weights:  append([]int(nil), weights...),
		location: location,
	}
}

// CanSpin reports whether an account whose last spin was recorded as
// lastSpinDate may spin at now. The gate is a literal date-string
// comparison: a stored date that is not today, even a future one,
// permits a spin.
func (e *Engine) CanSpin(lastSpinDate string, now time.Time) bool {
	return lastSpinDate != clock.DateString(now, e.location)
}

// Spin draws a wheel outcome for the account, at most once per calendar
// day. Outcomes 2 and 6 credit the account's team with one point;
// outcome 2 additionally returns a verse.
func (e *Engine) Spin(ctx context.Context, username string) (*model.SpinResult, error) {
	e.locks.Lock(username)
	defer e.locks.Unlock(username)

	account, err := e.storage.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	if !e.CanSpin(account.LastSpinDate, now) {
		return nil, model.ErrAlreadySpunToday
	}

	outcome := e.random.WeightedIndex(e.weights) + 1
	result := &model.SpinResult{Outcome: outcome}

	// The attempt is spent whatever the outcome
	account.LastSpinDate = clock.DateString(now, e.location)

	announcement := fmt.Sprintf("🎡 %s выбил %d", username, outcome)

	if result.AwardsPoint() {
		if account.Team == "" {
			return nil, fmt.Errorf("%w: account has no team", model.ErrValidation)
		}
		teamScore, err := e.scores.AwardPoint(ctx, account.Team)
		if err != nil {
			return nil, err
		}
		result.TeamScore = teamScore.Score

		if outcome == model.OutcomeVerse {
			result.Verse = e.verses.Pick()
		}

		announcement = fmt.Sprintf("🎡 %s выбил %d: +1 балл команде %s (%d)", username, outcome, teamScore.Name, teamScore.Score)
	}

	if err := e.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	// Every spent attempt is announced, point or not
	e.notifier.Dispatch(announcement)

	e.log.Record(ctx, username, model.ActionSpin, fmt.Sprintf("outcome %d", outcome))
	return result, nil
}
