// Package score maintains team scores: lazy creation, sole-point awards
// from the wheel, QR redemptions and manual admin adjustments.
package score

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ostapdev/teamwheel/internal/keylock"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/services/actionlog"
	"github.com/ostapdev/teamwheel/internal/storage"
)

// Service manages team scores
type Service struct {
	storage  storage.Storage
	locks    *keylock.KeyedMutex
	log      *actionlog.Service
	notifier *notify.Dispatcher
	logger   *slog.Logger
}

// New creates a new score service. The keyed mutex must be shared with
// every other service that mutates account state.
func New(
	storage storage.Storage,
	locks *keylock.KeyedMutex,
	log *actionlog.Service,
	notifier *notify.Dispatcher,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:  storage,
		locks:    locks,
		log:      log,
		notifier: notifier,
		logger:   logger,
	}
}

// AwardPoint adds one point to a team, creating the score entry with its
// default name if the team has never scored before
func (s *Service) AwardPoint(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	score, err := s.loadOrCreate(ctx, teamID)
	if err != nil {
		return nil, err
	}
	score.Score++
	if err := s.storage.SaveTeamScore(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

// Redeem credits one point for scanning a QR code. Each account may use
// each code only once; a repeat scan returns model.ErrAlreadyRedeemed
// and changes nothing.
func (s *Service) Redeem(ctx context.Context, username, qrID string) (*model.TeamScore, error) {
	s.locks.Lock(username)
	defer s.locks.Unlock(username)

	account, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}
	if account.Team == "" {
		return nil, fmt.Errorf("%w: account has no team", model.ErrValidation)
	}
	if account.HasUsedQR(qrID) {
		return nil, model.ErrAlreadyRedeemed
	}

	score, err := s.AwardPoint(ctx, account.Team)
	if err != nil {
		return nil, err
	}

	account.UsedQRCodes = append(account.UsedQRCodes, qrID)
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.log.Record(ctx, username, model.ActionScan, fmt.Sprintf("%s -> %s", qrID, account.Team))
	s.notifier.Dispatch(fmt.Sprintf("📲 %s отсканировал QR: +1 балл команде %s. Счёт: %s", username, score.Name, s.standingsSummary(ctx)))
	return score, nil
}

// Adjust applies a signed delta to a team's score and returns the new
// value. The team entry is created on first use, so a delta can target
// a team nobody has joined yet.
func (s *Service) Adjust(ctx context.Context, teamID model.TeamID, delta int) (*model.TeamScore, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", model.ErrValidation)
	}

	score, err := s.loadOrCreate(ctx, teamID)
	if err != nil {
		return nil, err
	}
	score.Score += delta
	if err := s.storage.SaveTeamScore(ctx, score); err != nil {
		return nil, err
	}

	s.log.Record(ctx, "", model.ActionAdjustScore, fmt.Sprintf("%s %+d -> %d", teamID, delta, score.Score))
	s.notifier.Dispatch(fmt.Sprintf("🔧 Счёт команды %s изменён на %+d. Счёт: %s", score.Name, delta, s.standingsSummary(ctx)))
	return score, nil
}

// Standings returns every team score ordered by team id
func (s *Service) Standings(ctx context.Context) ([]*model.TeamScore, error) {
	return s.storage.ListTeamScores(ctx)
}

// standingsSummary formats every team's score for an announcement.
// Announcements are best-effort, so a listing failure degrades to an
// empty summary rather than failing the caller.
func (s *Service) standingsSummary(ctx context.Context) string {
	standings, err := s.Standings(ctx)
	if err != nil {
		s.logger.Warn("could not list standings for announcement", slog.String("error", err.Error()))
		return ""
	}
	parts := make([]string, 0, len(standings))
	for _, ts := range standings {
		parts = append(parts, fmt.Sprintf("%s: %d", ts.Name, ts.Score))
	}
	return strings.Join(parts, ", ")
}

func (s *Service) loadOrCreate(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	score, err := s.storage.GetTeamScore(ctx, teamID)
	if err == nil {
		return score, nil
	}
	if !errors.Is(err, model.ErrTeamNotFound) {
		return nil, err
	}
	return model.NewTeamScore(teamID), nil
}
