package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/nebaware/temariware/internal/auth"
	"github.com/nebaware/temariware/internal/ekub"
	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/middleware"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
	pb "github.com/nebaware/temariware/pkg/proto"
)

// formatAmount renders money with exactly two fractional digits.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// parseAmount reads a decimal string from a request.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.CodeInvalidAmount, "amount is not a decimal number", err)
	}
	if !ekub.AmountInRange(d) {
		return decimal.Zero, apperrors.New(apperrors.CodeInvalidAmount, "amount is out of range")
	}
	return d, nil
}

// callerID returns the authenticated user or an Unauthenticated error.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// connectError logs err and converts it for the wire. Errors that already
// carry a Connect code pass through.
func connectError(op string, err error, args ...any) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	args = append(args, "error", err, "code", apperrors.GetCode(err))
	if apperrors.GetCode(err).ConnectCode() == connect.CodeInternal {
		slog.Error(op+" failed", args...)
	} else {
		slog.Info(op+" rejected", args...)
	}
	return apperrors.ToConnectError(err)
}

// requireGroupID rejects requests without a group ID.
func requireGroupID(groupID string) error {
	if groupID == "" {
		return apperrors.New(apperrors.CodeInvalidRequest, "group id is required")
	}
	return nil
}

func toUserProto(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toWalletProto(w *models.Wallet) *pb.Wallet {
	return &pb.Wallet{
		UserId:    w.UserID,
		Balance:   formatAmount(w.Balance),
		Currency:  w.Currency,
		UpdatedAt: w.UpdatedAt,
	}
}

func toTransactionProto(t *models.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:          t.ID,
		Amount:      formatAmount(t.Amount),
		Description: t.Description,
		Method:      string(t.Method),
		Status:      string(t.Status),
		Reference:   t.Reference,
		CreatedAt:   t.CreatedAt,
	}
}

// displayNames resolves member names for a set of groups in one query.
func displayNames(ctx context.Context, users storage.UserStore, groups ...*models.Group) map[string]string {
	var ids []string
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, s := range g.Members {
			if !seen[s.UserID] {
				seen[s.UserID] = true
				ids = append(ids, s.UserID)
			}
		}
	}
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	found, err := users.GetUsersByIDs(ctx, ids)
	if err != nil {
		// Names are cosmetic; fall back to IDs.
		slog.Warn("Failed to resolve member names", "error", err)
		return names
	}
	for id, u := range found {
		names[id] = u.DisplayName
	}
	return names
}

func toGroupProto(g *models.Group, names map[string]string) *pb.Group {
	members := make([]*pb.Slot, len(g.Members))
	for i, s := range g.Members {
		members[i] = &pb.Slot{
			UserId:      s.UserID,
			DisplayName: names[s.UserID],
			Spot:        int32(s.Spot),
			HasWon:      s.HasWon,
			JoinedAt:    s.JoinedAt,
		}
	}
	return &pb.Group{
		Id:                 g.ID,
		Name:               g.Name,
		CreatorId:          g.CreatorID,
		ContributionAmount: formatAmount(g.ContributionAmount),
		Frequency:          string(g.Frequency),
		MaxMembers:         int32(g.MaxMembers),
		MembersCount:       int32(g.MembersCount),
		TotalAmount:        formatAmount(g.TotalAmount),
		NextPayoutDate:     g.NextPayoutDate,
		Status:             string(g.Status),
		Members:            members,
		CreatedAt:          g.CreatedAt,
	}
}
