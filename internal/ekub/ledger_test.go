package ekub

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
	"github.com/nebaware/temariware/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store storage.Store, name string) *models.User {
	t.Helper()

	user := models.NewUser(name+"@example.com", name, "hash")
	if err := store.CreateUser(context.Background(), user, "ETB"); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return user
}

func fund(t *testing.T, ledger *Ledger, userID string, amount int64) {
	t.Helper()

	if _, err := ledger.Credit(context.Background(), userID, decimal.NewFromInt(amount), "Top up", models.MethodWallet); err != nil {
		t.Fatalf("Credit failed: %v", err)
	}
}

func balance(t *testing.T, ledger *Ledger, userID string) decimal.Decimal {
	t.Helper()

	wallet, err := ledger.Balance(context.Background(), userID)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	return wallet.Balance
}

func assertCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()

	if got := apperrors.GetCode(err); got != want {
		t.Fatalf("Expected %s, got %s (err=%v)", want, got, err)
	}
}

func TestLedger_CreditDebit(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedger(store, nil)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	t.Run("credit appends a completed entry", func(t *testing.T) {
		txn, err := ledger.Credit(ctx, alice.ID, decimal.RequireFromString("150.25"), "Top up", models.MethodWallet)
		if err != nil {
			t.Fatalf("Credit failed: %v", err)
		}
		if txn.Status != models.StatusCompleted || !txn.Amount.Equal(decimal.RequireFromString("150.25")) {
			t.Errorf("Unexpected transaction: %+v", txn)
		}
		if got := balance(t, ledger, alice.ID); !got.Equal(decimal.RequireFromString("150.25")) {
			t.Errorf("Balance = %s, want 150.25", got)
		}
	})

	t.Run("invalid amounts are rejected", func(t *testing.T) {
		for _, amount := range []string{"0", "-5", "1.005", "1e5000000", "1e-5000000", "1234567890123456789"} {
			_, err := ledger.Credit(ctx, alice.ID, decimal.RequireFromString(amount), "Top up", models.MethodWallet)
			assertCode(t, err, apperrors.CodeInvalidAmount)
		}
	})

	t.Run("debit records a negative entry", func(t *testing.T) {
		txn, err := ledger.Debit(ctx, alice.ID, decimal.NewFromInt(50), "Withdrawal", models.MethodWallet)
		if err != nil {
			t.Fatalf("Debit failed: %v", err)
		}
		if !txn.Amount.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("Expected signed amount -50, got %s", txn.Amount)
		}
		if got := balance(t, ledger, alice.ID); !got.Equal(decimal.RequireFromString("100.25")) {
			t.Errorf("Balance = %s, want 100.25", got)
		}
	})

	t.Run("overdraft fails without mutation", func(t *testing.T) {
		before, _ := ledger.History(ctx, alice.ID, 0)
		_, err := ledger.Debit(ctx, alice.ID, decimal.NewFromInt(1000), "Withdrawal", models.MethodWallet)
		assertCode(t, err, apperrors.CodeInsufficientFunds)

		if got := balance(t, ledger, alice.ID); !got.Equal(decimal.RequireFromString("100.25")) {
			t.Errorf("Balance changed to %s", got)
		}
		after, _ := ledger.History(ctx, alice.ID, 0)
		if len(after) != len(before) {
			t.Errorf("History grew from %d to %d entries", len(before), len(after))
		}
	})

	t.Run("unknown wallet", func(t *testing.T) {
		_, err := ledger.Credit(ctx, "ghost", decimal.NewFromInt(1), "Top up", models.MethodWallet)
		assertCode(t, err, apperrors.CodeNotFound)
	})
}

func TestLedger_Transfer(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedger(store, nil)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")
	fund(t, ledger, alice.ID, 100)

	if err := ledger.Transfer(ctx, alice.ID, bob.ID, decimal.NewFromInt(40), "Lunch"); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if got := balance(t, ledger, alice.ID); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Alice balance = %s, want 60", got)
	}
	if got := balance(t, ledger, bob.ID); !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Bob balance = %s, want 40", got)
	}

	t.Run("insufficient funds skips the credit", func(t *testing.T) {
		err := ledger.Transfer(ctx, alice.ID, bob.ID, decimal.NewFromInt(500), "Rent")
		assertCode(t, err, apperrors.CodeInsufficientFunds)
		if got := balance(t, ledger, bob.ID); !got.Equal(decimal.NewFromInt(40)) {
			t.Errorf("Bob balance = %s, want 40", got)
		}
	})

	t.Run("failed credit rolls back the debit", func(t *testing.T) {
		err := ledger.Transfer(ctx, alice.ID, "ghost", decimal.NewFromInt(10), "Gift")
		assertCode(t, err, apperrors.CodeNotFound)
		if got := balance(t, ledger, alice.ID); !got.Equal(decimal.NewFromInt(60)) {
			t.Errorf("Alice balance = %s, want 60 after rollback", got)
		}
	})
}

func TestLedger_Deposits(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedger(store, nil)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	pending, err := ledger.InitiateDeposit(ctx, alice.ID, decimal.NewFromInt(500), models.MethodChapa)
	if err != nil {
		t.Fatalf("InitiateDeposit failed: %v", err)
	}
	if pending.Status != models.StatusPending || pending.Reference == "" {
		t.Fatalf("Unexpected deposit: %+v", pending)
	}
	if got := balance(t, ledger, alice.ID); !got.IsZero() {
		t.Fatalf("Pending deposit changed balance to %s", got)
	}

	t.Run("non-gateway method is rejected", func(t *testing.T) {
		_, err := ledger.InitiateDeposit(ctx, alice.ID, decimal.NewFromInt(10), models.MethodWallet)
		assertCode(t, err, apperrors.CodeInvalidRequest)
	})

	t.Run("mismatched amount", func(t *testing.T) {
		_, err := ledger.ConfirmDeposit(ctx, pending.Reference, decimal.NewFromInt(499))
		assertCode(t, err, apperrors.CodeDepositMismatch)
	})

	t.Run("out of range confirmation", func(t *testing.T) {
		_, err := ledger.ConfirmDeposit(ctx, pending.Reference, decimal.RequireFromString("5e5000000"))
		assertCode(t, err, apperrors.CodeInvalidAmount)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := ledger.ConfirmDeposit(ctx, "dep_missing", decimal.NewFromInt(500))
		assertCode(t, err, apperrors.CodeNotFound)
	})

	t.Run("confirmation credits once", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			txn, err := ledger.ConfirmDeposit(ctx, pending.Reference, decimal.NewFromInt(500))
			if err != nil {
				t.Fatalf("ConfirmDeposit #%d failed: %v", i+1, err)
			}
			if txn.Status != models.StatusCompleted {
				t.Errorf("Expected Completed, got %s", txn.Status)
			}
		}
		if got := balance(t, ledger, alice.ID); !got.Equal(decimal.NewFromInt(500)) {
			t.Errorf("Balance = %s, want 500", got)
		}

		history, err := ledger.History(ctx, alice.ID, 10)
		if err != nil {
			t.Fatalf("History failed: %v", err)
		}
		if len(history) != 1 {
			t.Errorf("Expected the deposit to stay a single entry, got %d", len(history))
		}
	})
}

func TestAmountInRange(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"100.50", true},
		{"100.5000", true},
		{"999999999999999999.99", true},
		{"1000000000000000000", false},
		{"1e18", false},
		{"1e17", true},
		{"1e5000000", false},
		{"1e-5000000", false},
		{"0.0000000000000000001", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := AmountInRange(decimal.RequireFromString(tt.amount)); got != tt.want {
				t.Errorf("AmountInRange(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}
