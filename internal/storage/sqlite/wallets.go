package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

const transactionColumns = "id, user_id, amount, description, method, status, reference, created_at"

// GetWallet retrieves a user's wallet.
func (s *SQLiteStore) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	err := s.q.QueryRowContext(ctx,
		"SELECT user_id, balance, currency, created_at, updated_at FROM wallets WHERE user_id = ?",
		userID,
	).Scan(&wallet.UserID, &wallet.Balance, &wallet.Currency, &wallet.CreatedAt, &wallet.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("wallet %s: %w", userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// UpdateWalletBalance persists the wallet's balance.
func (s *SQLiteStore) UpdateWalletBalance(ctx context.Context, wallet *models.Wallet) error {
	wallet.UpdatedAt = time.Now().Unix()
	res, err := s.q.ExecContext(ctx,
		"UPDATE wallets SET balance = ?, updated_at = ? WHERE user_id = ?",
		wallet.Balance, wallet.UpdatedAt, wallet.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("wallet %s: %w", wallet.UserID, storage.ErrNotFound)
	}
	return nil
}

// CreateTransaction appends a ledger entry.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}

	var reference any
	if txn.Reference != "" {
		reference = txn.Reference
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO transactions ("+transactionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		txn.ID, txn.UserID, txn.Amount, txn.Description, string(txn.Method), string(txn.Status), reference, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransactionByReference retrieves the entry carrying a gateway reference.
func (s *SQLiteStore) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	txn, err := scanTransaction(s.q.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE reference = ?", reference,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", reference, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// CompleteTransaction moves a Pending entry to Completed.
func (s *SQLiteStore) CompleteTransaction(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE transactions SET status = ? WHERE id = ? AND status = ?",
		string(models.StatusCompleted), id, string(models.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to complete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pending transaction %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ListTransactions retrieves a user's ledger entries, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?",
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	txn := &models.Transaction{}
	var method, status string
	var reference sql.NullString

	if err := row.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Description, &method, &status, &reference, &txn.CreatedAt); err != nil {
		return nil, err
	}
	txn.Method = models.PaymentMethod(method)
	txn.Status = models.TransactionStatus(status)
	if reference.Valid {
		txn.Reference = reference.String
	}
	return txn, nil
}
