package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, name string) *models.User {
	t.Helper()

	user := models.NewUser(name+"@example.com", name, "hash")
	if err := store.CreateUser(context.Background(), user, "ETB"); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return user
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "Alice")

	t.Run("CreateUser opens an empty wallet", func(t *testing.T) {
		wallet, err := store.GetWallet(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetWallet failed: %v", err)
		}
		if !wallet.Balance.IsZero() {
			t.Errorf("Expected zero balance, got %s", wallet.Balance)
		}
		if wallet.Currency != "ETB" {
			t.Errorf("Currency mismatch: got %s, want ETB", wallet.Currency)
		}
	})

	t.Run("GetUserByEmail and GetUserByID", func(t *testing.T) {
		byEmail, err := store.GetUserByEmail(ctx, "Alice@example.com")
		if err != nil || byEmail == nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		byID, err := store.GetUserByID(ctx, alice.ID)
		if err != nil || byID == nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byEmail.ID != byID.ID || byID.DisplayName != "Alice" {
			t.Errorf("User mismatch: %+v vs %+v", byEmail, byID)
		}
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		user, err := store.GetUserByID(ctx, "nonexistent-id")
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if user != nil {
			t.Errorf("Expected nil user, got %+v", user)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := models.NewUser("Alice@example.com", "Alice 2", "hash")
		if err := store.CreateUser(ctx, dup, "ETB"); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict for duplicate email, got %v", err)
		}
		if _, err := store.GetWallet(ctx, dup.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected rolled-back wallet, got err=%v", err)
		}
	})

	t.Run("GetUsersByIDs omits unknown ids", func(t *testing.T) {
		bob := createUser(t, store, "Bob")
		users, err := store.GetUsersByIDs(ctx, []string{alice.ID, bob.ID, "ghost"})
		if err != nil {
			t.Fatalf("GetUsersByIDs failed: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("Expected 2 users, got %d", len(users))
		}
	})
}

func TestSQLiteStore_Transactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	pending := &models.Transaction{
		UserID:      alice.ID,
		Amount:      decimal.NewFromInt(500),
		Description: "Deposit via Chapa",
		Method:      models.MethodChapa,
		Status:      models.StatusPending,
		Reference:   "ref-1",
	}
	if err := store.CreateTransaction(ctx, pending); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	internal := &models.Transaction{
		UserID:      alice.ID,
		Amount:      decimal.NewFromInt(-100),
		Description: "Contribution to Family",
		Method:      models.MethodWallet,
		Status:      models.StatusCompleted,
	}
	if err := store.CreateTransaction(ctx, internal); err != nil {
		t.Fatalf("CreateTransaction without reference failed: %v", err)
	}

	t.Run("GetTransactionByReference", func(t *testing.T) {
		got, err := store.GetTransactionByReference(ctx, "ref-1")
		if err != nil {
			t.Fatalf("GetTransactionByReference failed: %v", err)
		}
		if !got.Amount.Equal(decimal.NewFromInt(500)) || got.Status != models.StatusPending {
			t.Errorf("Unexpected transaction: %+v", got)
		}
		if _, err := store.GetTransactionByReference(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CompleteTransaction only moves Pending entries", func(t *testing.T) {
		if err := store.CompleteTransaction(ctx, pending.ID); err != nil {
			t.Fatalf("CompleteTransaction failed: %v", err)
		}
		if err := store.CompleteTransaction(ctx, pending.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second completion, got %v", err)
		}
	})

	t.Run("ListTransactions newest first", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, alice.ID, 10)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txns) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(txns))
		}
		if txns[0].ID != internal.ID {
			t.Errorf("Expected newest entry first, got %s", txns[0].Description)
		}
		if txns[0].Reference != "" {
			t.Errorf("Expected empty reference, got %q", txns[0].Reference)
		}
	})
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	due := time.Now().Add(-time.Hour).Unix()
	group := &models.Group{
		Name:               "Family",
		CreatorID:          alice.ID,
		ContributionAmount: decimal.NewFromInt(100),
		Frequency:          models.FrequencyWeekly,
		MaxMembers:         3,
		MembersCount:       1,
		TotalAmount:        decimal.Zero,
		NextPayoutDate:     due,
		Status:             models.GroupActive,
		Members:            []models.Slot{{UserID: alice.ID, Spot: 1, JoinedAt: due}},
	}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	t.Run("CreateGroup generates ID", func(t *testing.T) {
		if group.ID == "" || group.CreatedAt == 0 {
			t.Errorf("Expected ID and CreatedAt to be set: %+v", group)
		}
	})

	t.Run("SaveGroup round-trips roster and pool", func(t *testing.T) {
		group.Members = append(group.Members, models.Slot{UserID: bob.ID, Spot: 2, JoinedAt: due})
		group.MembersCount = 2
		group.Members[0].HasWon = true
		group.TotalAmount = decimal.RequireFromString("200.50")
		if err := store.SaveGroup(ctx, group); err != nil {
			t.Fatalf("SaveGroup failed: %v", err)
		}

		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.MembersCount != 2 || len(got.Members) != 2 {
			t.Fatalf("Roster mismatch: count=%d len=%d", got.MembersCount, len(got.Members))
		}
		if got.Members[0].Spot != 1 || !got.Members[0].HasWon || got.Members[1].HasWon {
			t.Errorf("Slot state mismatch: %+v", got.Members)
		}
		if !got.TotalAmount.Equal(decimal.RequireFromString("200.50")) {
			t.Errorf("TotalAmount mismatch: got %s", got.TotalAmount)
		}
		if !got.ContributionAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("ContributionAmount mismatch: got %s", got.ContributionAmount)
		}
	})

	t.Run("GetGroup returns ErrNotFound", func(t *testing.T) {
		if _, err := store.GetGroup(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list queries", func(t *testing.T) {
		all, err := store.ListGroups(ctx, "")
		if err != nil || len(all) != 1 {
			t.Fatalf("ListGroups: got %d groups, err=%v", len(all), err)
		}
		cancelled, err := store.ListGroups(ctx, models.GroupCancelled)
		if err != nil || len(cancelled) != 0 {
			t.Errorf("ListGroups(Cancelled): got %d groups, err=%v", len(cancelled), err)
		}
		mine, err := store.ListGroupsByMember(ctx, bob.ID)
		if err != nil || len(mine) != 1 || len(mine[0].Members) != 2 {
			t.Errorf("ListGroupsByMember: got %v, err=%v", mine, err)
		}
		dueGroups, err := store.ListGroupsDue(ctx, time.Now().Unix())
		if err != nil || len(dueGroups) != 1 {
			t.Errorf("ListGroupsDue: got %d, err=%v", len(dueGroups), err)
		}
		notYet, err := store.ListGroupsDue(ctx, due-1)
		if err != nil || len(notYet) != 0 {
			t.Errorf("ListGroupsDue(before): got %d, err=%v", len(notYet), err)
		}
	})
}

func TestSQLiteStore_InTxRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	boom := errors.New("boom")
	err := store.InTx(ctx, func(tx storage.Store) error {
		wallet, err := tx.GetWallet(ctx, alice.ID)
		if err != nil {
			return err
		}
		wallet.Balance = decimal.NewFromInt(1000)
		if err := tx.UpdateWalletBalance(ctx, wallet); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}

	wallet, err := store.GetWallet(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if !wallet.Balance.IsZero() {
		t.Errorf("Expected rollback to keep zero balance, got %s", wallet.Balance)
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "CREATE TABLE a (id INT);", "CREATE TABLE a (id INT);"},
		{"up only", "-- +migrate Up\nCREATE TABLE a (id INT);", "\nCREATE TABLE a (id INT);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE a;\n-- +migrate Down\nDROP TABLE a;", "\nCREATE TABLE a;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := upSection(tt.content); got != tt.want {
				t.Errorf("upSection() = %q, want %q", got, tt.want)
			}
		})
	}
}
