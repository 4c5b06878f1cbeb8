package ekub

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

// Contribution is the outcome of one member's contribution.
type Contribution struct {
	NewBalance   decimal.Decimal
	NewPoolTotal decimal.Decimal
	Transaction  *models.Transaction
}

// Contribute moves one contribution from userID's wallet into the pool.
func (e *Engine) Contribute(ctx context.Context, groupID, userID string) (result *Contribution, err error) {
	ctx, span := e.startSpan(ctx, "contribute",
		attribute.String("group_id", groupID),
		attribute.String("user_id", userID),
	)
	defer func() { e.endSpan(span, "contribute", err) }()

	err = e.mutate(ctx, groupID, func(tx storage.Store, g *models.Group) error {
		if err := requireActive(g); err != nil {
			return err
		}
		if !g.IsMember(userID) {
			return apperrors.WithMetadata(apperrors.CodeNotAMember, "not a member of this group", map[string]string{
				"group_id": g.ID,
			})
		}

		wallet, err := tx.GetWallet(ctx, userID)
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Wrap(apperrors.CodeMemberNotFound, "member wallet not found", err)
		}
		if err != nil {
			return err
		}

		txn, err := applyDebit(ctx, tx, wallet, g.ContributionAmount, "Contribution to "+g.Name, models.MethodWallet)
		if err != nil {
			return err
		}

		g.TotalAmount = g.TotalAmount.Add(g.ContributionAmount)
		if err := tx.SaveGroup(ctx, g); err != nil {
			return fmt.Errorf("failed to save group: %w", err)
		}

		result = &Contribution{
			NewBalance:   wallet.Balance,
			NewPoolTotal: g.TotalAmount,
			Transaction:  txn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.metrics.Contribution()
	return result, nil
}
