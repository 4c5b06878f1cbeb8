package ekub

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/metrics"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

// Ledger moves money between wallets and records every movement as a
// transaction. It is the only component that changes a wallet balance.
type Ledger struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewLedger creates a Ledger backed by store. m may be nil.
func NewLedger(store storage.Store, m *metrics.Metrics) *Ledger {
	return &Ledger{store: store, metrics: m}
}

// Credit increases userID's balance by amount and appends a Completed entry.
func (l *Ledger) Credit(ctx context.Context, userID string, amount decimal.Decimal, description string, method models.PaymentMethod) (*models.Transaction, error) {
	var txn *models.Transaction
	err := l.store.InTx(ctx, func(tx storage.Store) error {
		wallet, err := loadWallet(ctx, tx, userID)
		if err != nil {
			return err
		}
		txn, err = applyCredit(ctx, tx, wallet, amount, description, method)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Debit decreases userID's balance by amount and appends a Completed entry.
// It fails with INSUFFICIENT_FUNDS without touching the wallet when the
// balance is smaller than amount.
func (l *Ledger) Debit(ctx context.Context, userID string, amount decimal.Decimal, description string, method models.PaymentMethod) (*models.Transaction, error) {
	var txn *models.Transaction
	err := l.store.InTx(ctx, func(tx storage.Store) error {
		wallet, err := loadWallet(ctx, tx, userID)
		if err != nil {
			return err
		}
		txn, err = applyDebit(ctx, tx, wallet, amount, description, method)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Transfer debits fromID and credits toID in one transaction. The credit is
// never attempted when the debit fails, and a failed credit rolls the debit
// back.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal, description string) error {
	return l.store.InTx(ctx, func(tx storage.Store) error {
		from, err := loadWallet(ctx, tx, fromID)
		if err != nil {
			return err
		}
		if _, err := applyDebit(ctx, tx, from, amount, description, models.MethodWallet); err != nil {
			return err
		}

		to, err := loadWallet(ctx, tx, toID)
		if err != nil {
			return err
		}
		_, err = applyCredit(ctx, tx, to, amount, description, models.MethodWallet)
		return err
	})
}

// Balance returns userID's wallet.
func (l *Ledger) Balance(ctx context.Context, userID string) (*models.Wallet, error) {
	return loadWallet(ctx, l.store, userID)
}

// History returns userID's most recent transactions, newest first.
func (l *Ledger) History(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	txns, err := l.store.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

const maxHistory = 100

// InitiateDeposit records a Pending gateway deposit under a fresh reference.
// The balance is unchanged until the gateway confirms with ConfirmDeposit.
func (l *Ledger) InitiateDeposit(ctx context.Context, userID string, amount decimal.Decimal, method models.PaymentMethod) (*models.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !method.IsGateway() {
		return nil, apperrors.New(apperrors.CodeInvalidRequest, fmt.Sprintf("%q is not a payment gateway", method))
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Description: "Deposit via " + string(method),
		Method:      method,
		Status:      models.StatusPending,
		Reference:   "dep_" + uuid.NewString(),
	}
	err := l.store.InTx(ctx, func(tx storage.Store) error {
		if _, err := loadWallet(ctx, tx, userID); err != nil {
			return err
		}
		if err := tx.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to record deposit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.metrics.Deposit(string(method), string(models.StatusPending))
	return txn, nil
}

// ConfirmDeposit settles the Pending deposit carrying reference and credits
// its wallet. Confirming an already settled deposit returns it unchanged.
// An amount that differs from the recorded one fails with DEPOSIT_MISMATCH.
func (l *Ledger) ConfirmDeposit(ctx context.Context, reference string, amount decimal.Decimal) (*models.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var (
		txn     *models.Transaction
		settled bool
	)
	err := l.store.InTx(ctx, func(tx storage.Store) error {
		var err error
		txn, err = tx.GetTransactionByReference(ctx, reference)
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Wrap(apperrors.CodeNotFound, "deposit not found", err)
		}
		if err != nil {
			return err
		}

		if !txn.Amount.Equal(amount) {
			return apperrors.WithMetadata(apperrors.CodeDepositMismatch, "deposit amount does not match", map[string]string{
				"reference": reference,
				"expected":  txn.Amount.StringFixed(2),
				"received":  amount.StringFixed(2),
			})
		}
		if txn.Status == models.StatusCompleted {
			return nil
		}

		if err := tx.CompleteTransaction(ctx, txn.ID); err != nil {
			return fmt.Errorf("failed to complete deposit: %w", err)
		}
		wallet, err := loadWallet(ctx, tx, txn.UserID)
		if err != nil {
			return err
		}
		wallet.Balance = wallet.Balance.Add(txn.Amount)
		if err := tx.UpdateWalletBalance(ctx, wallet); err != nil {
			return fmt.Errorf("failed to credit deposit: %w", err)
		}

		txn.Status = models.StatusCompleted
		settled = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled {
		l.metrics.Deposit(string(txn.Method), string(models.StatusCompleted))
	}
	return txn, nil
}

func loadWallet(ctx context.Context, store storage.WalletStore, userID string) (*models.Wallet, error) {
	wallet, err := store.GetWallet(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "wallet not found", err)
	}
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func applyCredit(ctx context.Context, tx storage.Store, wallet *models.Wallet, amount decimal.Decimal, description string, method models.PaymentMethod) (*models.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	wallet.Balance = wallet.Balance.Add(amount)
	if err := tx.UpdateWalletBalance(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	return appendEntry(ctx, tx, wallet.UserID, amount, description, method)
}

func applyDebit(ctx context.Context, tx storage.Store, wallet *models.Wallet, amount decimal.Decimal, description string, method models.PaymentMethod) (*models.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if wallet.Balance.LessThan(amount) {
		return nil, apperrors.WithMetadata(apperrors.CodeInsufficientFunds, "insufficient funds", map[string]string{
			"balance":  wallet.Balance.StringFixed(2),
			"required": amount.StringFixed(2),
		})
	}

	wallet.Balance = wallet.Balance.Sub(amount)
	if err := tx.UpdateWalletBalance(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	return appendEntry(ctx, tx, wallet.UserID, amount.Neg(), description, method)
}

func appendEntry(ctx context.Context, tx storage.Store, userID string, signed decimal.Decimal, description string, method models.PaymentMethod) (*models.Transaction, error) {
	txn := &models.Transaction{
		UserID:      userID,
		Amount:      signed,
		Description: description,
		Method:      method,
		Status:      models.StatusCompleted,
	}
	if err := tx.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return txn, nil
}

const (
	maxIntegerDigits  = 18
	maxFractionDigits = 18
)

// AmountInRange reports whether d has at most maxIntegerDigits whole digits
// and a scale small enough to round. Only the coefficient and exponent are
// inspected, so inputs like "1e5000000" are rejected without rescaling.
func AmountInRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	return exp >= -maxFractionDigits && d.NumDigits()+exp <= maxIntegerDigits
}

// validateAmount accepts positive amounts with at most two decimal places.
func validateAmount(amount decimal.Decimal) error {
	if !AmountInRange(amount) {
		return apperrors.New(apperrors.CodeInvalidAmount, "amount is out of range")
	}
	if !amount.IsPositive() {
		return apperrors.New(apperrors.CodeInvalidAmount, "amount must be positive")
	}
	if !amount.Equal(amount.Round(2)) {
		return apperrors.New(apperrors.CodeInvalidAmount, "amount has more than two decimal places")
	}
	return nil
}
