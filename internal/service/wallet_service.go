package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/nebaware/temariware/internal/ekub"
	"github.com/nebaware/temariware/internal/models"
	pb "github.com/nebaware/temariware/pkg/proto"
	"github.com/nebaware/temariware/pkg/proto/protoconnect"
)

// WalletService exposes the caller's wallet and deposit flow.
type WalletService struct {
	protoconnect.UnimplementedWalletServiceHandler
	ledger *ekub.Ledger
}

// NewWalletService creates a new WalletService backed by ledger.
func NewWalletService(ledger *ekub.Ledger) *WalletService {
	return &WalletService{ledger: ledger}
}

// GetWallet returns the caller's balance.
func (s *WalletService) GetWallet(ctx context.Context, req *connect.Request[pb.GetWalletRequest]) (*connect.Response[pb.GetWalletResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	wallet, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, connectError("GetWallet", err, "user_id", userID)
	}
	return connect.NewResponse(&pb.GetWalletResponse{Wallet: toWalletProto(wallet)}), nil
}

// ListTransactions returns the caller's ledger entries, newest first.
func (s *WalletService) ListTransactions(ctx context.Context, req *connect.Request[pb.ListTransactionsRequest]) (*connect.Response[pb.ListTransactionsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	txns, err := s.ledger.History(ctx, userID, int(req.Msg.Limit))
	if err != nil {
		return nil, connectError("ListTransactions", err, "user_id", userID)
	}

	out := make([]*pb.Transaction, len(txns))
	for i, t := range txns {
		out[i] = toTransactionProto(t)
	}
	return connect.NewResponse(&pb.ListTransactionsResponse{Transactions: out}), nil
}

// Deposit opens a Pending gateway deposit. The wallet is credited when the
// gateway calls back with the returned reference.
func (s *WalletService) Deposit(ctx context.Context, req *connect.Request[pb.DepositRequest]) (*connect.Response[pb.DepositResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Deposit request received", "user_id", userID, "amount", req.Msg.Amount, "method", req.Msg.Method)

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, connectError("Deposit", err, "user_id", userID)
	}

	txn, err := s.ledger.InitiateDeposit(ctx, userID, amount, models.PaymentMethod(req.Msg.Method))
	if err != nil {
		return nil, connectError("Deposit", err, "user_id", userID)
	}

	slog.Info("Deposit initiated", "user_id", userID, "reference", txn.Reference)
	return connect.NewResponse(&pb.DepositResponse{Transaction: toTransactionProto(txn)}), nil
}
