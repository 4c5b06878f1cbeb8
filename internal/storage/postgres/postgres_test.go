package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

// These tests run against a live database and are skipped unless
// DATABASE_URL is set.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *PostgresStore, name string) *models.User {
	t.Helper()

	user := models.NewUser(name+"-"+uuid.NewString()+"@example.com", name, "hash")
	if err := store.CreateUser(context.Background(), user, "ETB"); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return user
}

func TestPostgresStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	wallet, err := store.GetWallet(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if !wallet.Balance.IsZero() {
		t.Errorf("Expected zero balance, got %s", wallet.Balance)
	}

	dup := models.NewUser(alice.Email, "Alice 2", "hash")
	if err := store.CreateUser(ctx, dup, "ETB"); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate email, got %v", err)
	}

	users, err := store.GetUsersByIDs(ctx, []string{alice.ID, "ghost"})
	if err != nil || len(users) != 1 {
		t.Errorf("GetUsersByIDs: got %d users, err=%v", len(users), err)
	}
}

func TestPostgresStore_WalletAndTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	err := store.InTx(ctx, func(tx storage.Store) error {
		wallet, err := tx.GetWallet(ctx, alice.ID)
		if err != nil {
			return err
		}
		wallet.Balance = decimal.RequireFromString("250.75")
		if err := tx.UpdateWalletBalance(ctx, wallet); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, &models.Transaction{
			UserID:      alice.ID,
			Amount:      decimal.RequireFromString("250.75"),
			Description: "Deposit via Chapa",
			Method:      models.MethodChapa,
			Status:      models.StatusPending,
			Reference:   "ref-" + uuid.NewString(),
		})
	})
	if err != nil {
		t.Fatalf("InTx failed: %v", err)
	}

	wallet, err := store.GetWallet(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if !wallet.Balance.Equal(decimal.RequireFromString("250.75")) {
		t.Errorf("Balance mismatch: got %s", wallet.Balance)
	}

	txns, err := store.ListTransactions(ctx, alice.ID, 10)
	if err != nil || len(txns) != 1 {
		t.Fatalf("ListTransactions: got %d, err=%v", len(txns), err)
	}
	if err := store.CompleteTransaction(ctx, txns[0].ID); err != nil {
		t.Errorf("CompleteTransaction failed: %v", err)
	}
	if err := store.CompleteTransaction(ctx, txns[0].ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second completion, got %v", err)
	}
}

func TestPostgresStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	now := time.Now().Unix()
	group := &models.Group{
		Name:               "Family",
		CreatorID:          alice.ID,
		ContributionAmount: decimal.NewFromInt(100),
		Frequency:          models.FrequencyMonthly,
		MaxMembers:         2,
		MembersCount:       1,
		TotalAmount:        decimal.Zero,
		NextPayoutDate:     now,
		Status:             models.GroupActive,
		Members:            []models.Slot{{UserID: alice.ID, Spot: 1, JoinedAt: now}},
	}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	group.Members = append(group.Members, models.Slot{UserID: bob.ID, Spot: 2, JoinedAt: now})
	group.MembersCount = 2
	group.TotalAmount = decimal.NewFromInt(200)
	if err := store.SaveGroup(ctx, group); err != nil {
		t.Fatalf("SaveGroup failed: %v", err)
	}

	got, err := store.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(got.Members) != 2 || got.Members[1].UserID != bob.ID {
		t.Errorf("Roster mismatch: %+v", got.Members)
	}
	if !got.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("TotalAmount mismatch: got %s", got.TotalAmount)
	}

	mine, err := store.ListGroupsByMember(ctx, bob.ID)
	if err != nil || len(mine) != 1 {
		t.Errorf("ListGroupsByMember: got %d, err=%v", len(mine), err)
	}
}
