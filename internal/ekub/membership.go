package ekub

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

// GroupConfig is the founder-supplied configuration of a new group.
type GroupConfig struct {
	Name               string
	ContributionAmount decimal.Decimal
	Frequency          models.Frequency
	MaxMembers         int
}

// Validate reports the first problem with the configuration.
func (c GroupConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.New(apperrors.CodeInvalidConfig, "group name is required")
	}
	if c.MaxMembers < 1 {
		return apperrors.New(apperrors.CodeInvalidConfig, "max members must be at least 1")
	}
	if !AmountInRange(c.ContributionAmount) {
		return apperrors.New(apperrors.CodeInvalidConfig, "contribution amount is out of range")
	}
	if !c.ContributionAmount.IsPositive() {
		return apperrors.New(apperrors.CodeInvalidConfig, "contribution amount must be positive")
	}
	if !c.ContributionAmount.Equal(c.ContributionAmount.Round(2)) {
		return apperrors.New(apperrors.CodeInvalidConfig, "contribution amount has more than two decimal places")
	}
	if !c.Frequency.Valid() {
		return apperrors.New(apperrors.CodeInvalidConfig, fmt.Sprintf("unknown frequency %q", c.Frequency))
	}
	return nil
}

// CreateGroup creates an Active group with the founder enrolled at spot 1.
// The first payout is scheduled one cycle from now.
func (e *Engine) CreateGroup(ctx context.Context, founderID string, cfg GroupConfig) (group *models.Group, err error) {
	ctx, span := e.startSpan(ctx, "create_group", attribute.String("user_id", founderID))
	defer func() { e.endSpan(span, "create_group", err) }()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := e.now()
	group = &models.Group{
		Name:               strings.TrimSpace(cfg.Name),
		CreatorID:          founderID,
		ContributionAmount: cfg.ContributionAmount,
		Frequency:          cfg.Frequency,
		MaxMembers:         cfg.MaxMembers,
		MembersCount:       1,
		TotalAmount:        decimal.Zero,
		NextPayoutDate:     cfg.Frequency.Next(now, now).Unix(),
		Status:             models.GroupActive,
		Members:            []models.Slot{{UserID: founderID, Spot: 1, JoinedAt: now.Unix()}},
		CreatedAt:          now.Unix(),
	}

	err = e.store.InTx(ctx, func(tx storage.Store) error {
		if _, err := requireUser(ctx, tx, founderID); err != nil {
			return err
		}
		if err := tx.CreateGroup(ctx, group); err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("group_id", group.ID))
	return group, nil
}

// Join appends userID to the roster at spot membersCount+1.
func (e *Engine) Join(ctx context.Context, groupID, userID string) (group *models.Group, err error) {
	ctx, span := e.startSpan(ctx, "join",
		attribute.String("group_id", groupID),
		attribute.String("user_id", userID),
	)
	defer func() { e.endSpan(span, "join", err) }()

	err = e.mutate(ctx, groupID, func(tx storage.Store, g *models.Group) error {
		if err := requireActive(g); err != nil {
			return err
		}
		if g.IsMember(userID) {
			return apperrors.WithMetadata(apperrors.CodeAlreadyMember, "already a member of this group", map[string]string{
				"group_id": g.ID,
			})
		}
		if g.IsFull() {
			return apperrors.WithMetadata(apperrors.CodeGroupFull, "group is full", map[string]string{
				"group_id":    g.ID,
				"max_members": strconv.Itoa(g.MaxMembers),
			})
		}
		if _, err := requireUser(ctx, tx, userID); err != nil {
			return err
		}

		g.Members = append(g.Members, models.Slot{
			UserID:   userID,
			Spot:     g.MembersCount + 1,
			JoinedAt: e.now().Unix(),
		})
		g.MembersCount++

		if err := tx.SaveGroup(ctx, g); err != nil {
			return fmt.Errorf("failed to save group: %w", err)
		}
		group = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Close completes a group once every member has been paid out in the
// current pass and the pool is empty.
func (e *Engine) Close(ctx context.Context, groupID string) (group *models.Group, err error) {
	ctx, span := e.startSpan(ctx, "close", attribute.String("group_id", groupID))
	defer func() { e.endSpan(span, "close", err) }()

	err = e.mutate(ctx, groupID, func(tx storage.Store, g *models.Group) error {
		if err := requireActive(g); err != nil {
			return err
		}
		if !g.PassComplete() {
			return apperrors.New(apperrors.CodeRotationIncomplete, "not every member has received a payout")
		}
		if g.TotalAmount.IsPositive() {
			return poolNotEmpty(g)
		}
		return e.setStatus(ctx, tx, g, models.GroupCompleted, &group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Cancel ends a group early. The pool must have been paid out first.
func (e *Engine) Cancel(ctx context.Context, groupID string) (group *models.Group, err error) {
	ctx, span := e.startSpan(ctx, "cancel", attribute.String("group_id", groupID))
	defer func() { e.endSpan(span, "cancel", err) }()

	err = e.mutate(ctx, groupID, func(tx storage.Store, g *models.Group) error {
		if err := requireActive(g); err != nil {
			return err
		}
		if g.TotalAmount.IsPositive() {
			return poolNotEmpty(g)
		}
		return e.setStatus(ctx, tx, g, models.GroupCancelled, &group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (e *Engine) setStatus(ctx context.Context, tx storage.Store, g *models.Group, status models.GroupStatus, out **models.Group) error {
	g.Status = status
	if err := tx.SaveGroup(ctx, g); err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}
	*out = g
	return nil
}

func poolNotEmpty(g *models.Group) error {
	return apperrors.WithMetadata(apperrors.CodePoolNotEmpty, "group pool must be paid out first", map[string]string{
		"group_id":     g.ID,
		"total_amount": g.TotalAmount.StringFixed(2),
	})
}
