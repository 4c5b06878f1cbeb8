package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nebaware/temariware/internal/ekub"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage/sqlite"
)

var created = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	engine := ekub.NewEngine(store, ekub.WithClock(func() time.Time { return created }))
	founder := models.NewUser("abebe@example.com", "Abebe", "hash")
	if err := store.CreateUser(ctx, founder, "ETB"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := engine.Ledger().Credit(ctx, founder.ID, decimal.NewFromInt(500), "Test funding", models.MethodWallet); err != nil {
		t.Fatalf("Credit failed: %v", err)
	}

	newGroup := func(name string) *models.Group {
		g, err := engine.CreateGroup(ctx, founder.ID, ekub.GroupConfig{
			Name:               name,
			ContributionAmount: decimal.NewFromInt(100),
			Frequency:          models.FrequencyWeekly,
			MaxMembers:         3,
		})
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		return g
	}
	funded := newGroup("Funded")
	empty := newGroup("Empty")
	if _, err := engine.Contribute(ctx, funded.ID, founder.ID); err != nil {
		t.Fatalf("Contribute failed: %v", err)
	}

	s := New(engine, time.Minute, discardLogger())

	t.Run("nothing due before the payout date", func(t *testing.T) {
		s.now = func() time.Time { return created.Add(6 * 24 * time.Hour) }
		res, err := s.RunOnce(ctx)
		if err != nil {
			t.Fatalf("RunOnce failed: %v", err)
		}
		if res.Due != 0 {
			t.Errorf("Expected nothing due, got %+v", res)
		}
	})

	s.now = func() time.Time { return created.Add(8 * 24 * time.Hour) }
	res, err := s.RunOnce(ctx)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if res != (Result{Due: 2, Paid: 1, Skipped: 1}) {
		t.Errorf("Unexpected result: %+v", res)
	}

	want := created.AddDate(0, 0, 14).Unix()
	for _, id := range []string{funded.ID, empty.ID} {
		g, err := engine.GetGroup(ctx, id)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if g.NextPayoutDate != want {
			t.Errorf("%s: next payout %d, want %d", g.Name, g.NextPayoutDate, want)
		}
		if !g.TotalAmount.IsZero() {
			t.Errorf("%s: pool not empty: %s", g.Name, g.TotalAmount)
		}
	}

	res, err = s.RunOnce(ctx)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if res.Due != 0 {
		t.Errorf("Dates did not advance: %+v", res)
	}
}

type fakeEngine struct {
	groups    []*models.Group
	rotateErr error
	advanced  []string
}

func (f *fakeEngine) DueGroups(ctx context.Context, at time.Time) ([]*models.Group, error) {
	return f.groups, nil
}

func (f *fakeEngine) Rotate(ctx context.Context, groupID string) (*ekub.Payout, error) {
	return nil, f.rotateErr
}

func (f *fakeEngine) AdvancePayoutDate(ctx context.Context, groupID string) (*models.Group, error) {
	f.advanced = append(f.advanced, groupID)
	return nil, nil
}

func TestRunOnce_FailureStillAdvances(t *testing.T) {
	fake := &fakeEngine{
		groups:    []*models.Group{{ID: "g1"}, {ID: "g2"}},
		rotateErr: errors.New("database is locked"),
	}
	s := New(fake, time.Minute, discardLogger())

	res, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if res.Failed != 2 || res.Paid != 0 {
		t.Errorf("Unexpected result: %+v", res)
	}
	if len(fake.advanced) != 2 {
		t.Errorf("Expected both groups advanced, got %v", fake.advanced)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(&fakeEngine{}, time.Millisecond, discardLogger())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
