// Package scheduler triggers payouts for groups whose payout date has
// passed.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/nebaware/temariware/internal/ekub"
	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
)

// Engine is the part of the payout engine the scheduler drives.
type Engine interface {
	DueGroups(ctx context.Context, at time.Time) ([]*models.Group, error)
	Rotate(ctx context.Context, groupID string) (*ekub.Payout, error)
	AdvancePayoutDate(ctx context.Context, groupID string) (*models.Group, error)
}

// Result summarizes one scheduler pass.
type Result struct {
	Due     int
	Paid    int
	Skipped int
	Failed  int
}

// Scheduler rotates due groups on a fixed interval.
type Scheduler struct {
	engine Engine
	every  time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// New creates a scheduler ticking every interval.
func New(engine Engine, every time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		engine: engine,
		every:  every,
		now:    time.Now,
		logger: logger,
	}
}

// Run ticks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.every)
	defer ticker.Stop()

	s.logger.Info("Payout scheduler started", "interval", s.every)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Payout scheduler stopped")
			return nil
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error("Payout scheduler pass failed", "error", err)
			}
		}
	}
}

// RunOnce rotates every due group once. An empty pool is skipped. The payout
// date of each due group moves one cycle forward whatever the rotation
// outcome, so a group that is behind catches up one cycle per pass.
func (s *Scheduler) RunOnce(ctx context.Context) (Result, error) {
	groups, err := s.engine.DueGroups(ctx, s.now())
	if err != nil {
		return Result{}, err
	}

	res := Result{Due: len(groups)}
	for _, g := range groups {
		payout, err := s.engine.Rotate(ctx, g.ID)
		switch {
		case err == nil:
			res.Paid++
			s.logger.Info("Scheduled payout completed",
				"group_id", g.ID,
				"winner_id", payout.WinnerID,
				"amount", payout.Amount.StringFixed(2),
			)
		case apperrors.HasCode(err, apperrors.CodeEmptyPool):
			res.Skipped++
			s.logger.Info("Scheduled payout skipped, pool is empty", "group_id", g.ID)
		default:
			res.Failed++
			s.logger.Error("Scheduled payout failed", "group_id", g.ID, "error", err)
		}

		if _, err := s.engine.AdvancePayoutDate(ctx, g.ID); err != nil {
			s.logger.Error("Failed to advance payout date", "group_id", g.ID, "error", err)
		}
	}
	return res, nil
}
