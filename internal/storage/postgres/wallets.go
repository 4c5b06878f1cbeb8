package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

const transactionColumns = "id, user_id, amount::text, description, method, status, COALESCE(reference, ''), created_at"

// GetWallet retrieves a user's wallet, locking the row inside a transaction.
func (s *PostgresStore) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	var balance string
	err := s.db.QueryRow(ctx, `
		SELECT user_id, balance::text, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1`+s.forUpdate(),
		userID,
	).Scan(&wallet.UserID, &balance, &wallet.Currency, &wallet.CreatedAt, &wallet.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("wallet %s: %w", userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if wallet.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("failed to parse wallet balance: %w", err)
	}
	return wallet, nil
}

// UpdateWalletBalance persists the wallet's balance.
func (s *PostgresStore) UpdateWalletBalance(ctx context.Context, wallet *models.Wallet) error {
	wallet.UpdatedAt = time.Now().Unix()
	tag, err := s.db.Exec(ctx,
		`UPDATE wallets SET balance = $1::numeric, updated_at = $2 WHERE user_id = $3`,
		wallet.Balance.String(), wallet.UpdatedAt, wallet.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %s: %w", wallet.UserID, storage.ErrNotFound)
	}
	return nil
}

// CreateTransaction appends a ledger entry.
func (s *PostgresStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}

	var reference *string
	if txn.Reference != "" {
		reference = &txn.Reference
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO transactions (id, user_id, amount, description, method, status, reference, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8)
	`, txn.ID, txn.UserID, txn.Amount.String(), txn.Description, string(txn.Method), string(txn.Status), reference, txn.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", txn.Reference, storage.ErrConflict)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransactionByReference retrieves the entry carrying a gateway reference.
func (s *PostgresStore) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	txn, err := scanTransaction(s.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE reference = $1`+s.forUpdate(), reference,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", reference, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// CompleteTransaction moves a Pending entry to Completed.
func (s *PostgresStore) CompleteTransaction(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE transactions SET status = $1 WHERE id = $2 AND status = $3`,
		string(models.StatusCompleted), id, string(models.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to complete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending transaction %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ListTransactions retrieves a user's ledger entries, newest first.
func (s *PostgresStore) ListTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY seq DESC LIMIT $2`,
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

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	txn := &models.Transaction{}
	var amount, method, status string

	if err := row.Scan(&txn.ID, &txn.UserID, &amount, &txn.Description, &method, &status, &txn.Reference, &txn.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	txn.Amount = parsed
	txn.Method = models.PaymentMethod(method)
	txn.Status = models.TransactionStatus(status)
	return txn, nil
}
