package ekub

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

// Payout is the outcome of a rotation.
type Payout struct {
	GroupID    string
	WinnerID   string
	WinnerName string
	Spot       int
	Amount     decimal.Decimal

	// PassReset is true when every member had already won and the
	// rotation started a new pass before selecting.
	PassReset bool

	Transaction *models.Transaction
}

// Rotate pays the whole pool to the next member in rotation order.
//
// The winner is the slot with the smallest spot that has not won in the
// current pass. When every slot has won, all flags are cleared first and
// selection starts again from spot 1. Rotate never looks at the group's
// payout date.
func (e *Engine) Rotate(ctx context.Context, groupID string) (payout *Payout, err error) {
	ctx, span := e.startSpan(ctx, "rotate", attribute.String("group_id", groupID))
	defer func() { e.endSpan(span, "rotate", err) }()

	err = e.mutate(ctx, groupID, func(tx storage.Store, g *models.Group) error {
		if err := requireActive(g); err != nil {
			return err
		}
		if !g.TotalAmount.IsPositive() {
			return apperrors.WithMetadata(apperrors.CodeEmptyPool, "group pool is empty", map[string]string{
				"group_id": g.ID,
			})
		}

		passReset := false
		if g.PassComplete() {
			ResetPass(g)
			passReset = true
		}

		slot, ok := NextWinner(g)
		if !ok {
			return apperrors.New(apperrors.CodeMemberNotFound, "no member eligible for payout")
		}

		winner, err := tx.GetUserByID(ctx, slot.UserID)
		if err != nil {
			return fmt.Errorf("failed to get winner: %w", err)
		}
		if winner == nil {
			return memberNotFound(g, slot.UserID, nil)
		}
		wallet, err := tx.GetWallet(ctx, slot.UserID)
		if errors.Is(err, storage.ErrNotFound) {
			return memberNotFound(g, slot.UserID, err)
		}
		if err != nil {
			return err
		}

		amount := g.TotalAmount
		txn, err := applyCredit(ctx, tx, wallet, amount, "Ekub Payout from "+g.Name, models.MethodEkubPayout)
		if err != nil {
			return err
		}

		slot.HasWon = true
		g.TotalAmount = decimal.Zero
		if err := tx.SaveGroup(ctx, g); err != nil {
			return fmt.Errorf("failed to save group: %w", err)
		}

		payout = &Payout{
			GroupID:     g.ID,
			WinnerID:    winner.ID,
			WinnerName:  winner.DisplayName,
			Spot:        slot.Spot,
			Amount:      amount,
			PassReset:   passReset,
			Transaction: txn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("winner_id", payout.WinnerID),
		attribute.Int("spot", payout.Spot),
		attribute.Bool("pass_reset", payout.PassReset),
	)
	e.metrics.Payout(payout.Amount, payout.PassReset)
	return payout, nil
}

// AdvancePayoutDate moves the group's next payout date forward by one
// cycle. Only Active groups are advanced.
func (e *Engine) AdvancePayoutDate(ctx context.Context, groupID string) (group *models.Group, err error) {
	err = e.mutate(ctx, groupID, func(tx storage.Store, g *models.Group) error {
		group = g
		if g.Status != models.GroupActive {
			return nil
		}
		g.NextPayoutDate = g.NextPayoutAfter(time.Unix(g.NextPayoutDate, 0).UTC()).Unix()
		if err := tx.SaveGroup(ctx, g); err != nil {
			return fmt.Errorf("failed to save group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// NextWinner returns the slot that the next rotation pays out: the smallest
// spot that has not won in the current pass. The returned slot points into
// group.Members.
func NextWinner(group *models.Group) (*models.Slot, bool) {
	var winner *models.Slot
	for i := range group.Members {
		slot := &group.Members[i]
		if slot.HasWon {
			continue
		}
		if winner == nil || slot.Spot < winner.Spot {
			winner = slot
		}
	}
	return winner, winner != nil
}

// ResetPass clears every hasWon flag, starting a new rotation pass.
func ResetPass(group *models.Group) {
	for i := range group.Members {
		group.Members[i].HasWon = false
	}
}

// eligibleSlots returns the slots still to be paid in the current pass,
// ordered by spot. A completed pass yields the full roster.
func eligibleSlots(group *models.Group) []models.Slot {
	var slots []models.Slot
	if group.PassComplete() {
		slots = append(slots, group.Members...)
	} else {
		for _, s := range group.Members {
			if !s.HasWon {
				slots = append(slots, s)
			}
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Spot < slots[j].Spot })
	return slots
}

func memberNotFound(g *models.Group, userID string, cause error) error {
	err := apperrors.WithMetadata(apperrors.CodeMemberNotFound, "payout recipient not found", map[string]string{
		"group_id": g.ID,
		"user_id":  userID,
	})
	err.Cause = cause
	return err
}
