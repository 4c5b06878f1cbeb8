package ekub

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

var testNow = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

type fixture struct {
	engine *Engine
	store  storage.Store
	users  []*models.User
}

func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()

	store := newTestStore(t)
	f := &fixture{
		engine: NewEngine(store, WithClock(func() time.Time { return testNow })),
		store:  store,
	}
	for _, name := range names {
		f.users = append(f.users, createUser(t, store, name))
	}
	return f
}

// newCircle creates a group founded by the first user and joined by the
// rest, and funds every wallet.
func (f *fixture) newCircle(t *testing.T, maxMembers int, contribution, funds int64) *models.Group {
	t.Helper()
	ctx := context.Background()

	group, err := f.engine.CreateGroup(ctx, f.users[0].ID, GroupConfig{
		Name:               "Family",
		ContributionAmount: decimal.NewFromInt(contribution),
		Frequency:          models.FrequencyWeekly,
		MaxMembers:         maxMembers,
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, u := range f.users[1:] {
		if group, err = f.engine.Join(ctx, group.ID, u.ID); err != nil {
			t.Fatalf("Join(%s) failed: %v", u.DisplayName, err)
		}
	}
	for _, u := range f.users {
		fund(t, f.engine.Ledger(), u.ID, funds)
	}
	return group
}

func (f *fixture) contributeAll(t *testing.T, groupID string) {
	t.Helper()

	for _, u := range f.users {
		if _, err := f.engine.Contribute(context.Background(), groupID, u.ID); err != nil {
			t.Fatalf("Contribute(%s) failed: %v", u.DisplayName, err)
		}
	}
}

// totalMoney sums every wallet and every pool.
func (f *fixture) totalMoney(t *testing.T) decimal.Decimal {
	t.Helper()
	ctx := context.Background()

	total := decimal.Zero
	for _, u := range f.users {
		total = total.Add(balance(t, f.engine.Ledger(), u.ID))
	}
	groups, err := f.engine.ListGroups(ctx, "")
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	for _, g := range groups {
		total = total.Add(g.TotalAmount)
	}
	return total
}

func assertRosterInvariants(t *testing.T, g *models.Group) {
	t.Helper()

	if g.MembersCount != len(g.Members) {
		t.Errorf("membersCount %d != roster length %d", g.MembersCount, len(g.Members))
	}
	if g.MembersCount > g.MaxMembers {
		t.Errorf("membersCount %d exceeds maxMembers %d", g.MembersCount, g.MaxMembers)
	}
	if g.TotalAmount.IsNegative() {
		t.Errorf("negative pool %s", g.TotalAmount)
	}
	seen := make(map[int]bool)
	for _, s := range g.Members {
		if seen[s.Spot] {
			t.Errorf("duplicate spot %d", s.Spot)
		}
		seen[s.Spot] = true
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	f := newFixture(t, "Alice")
	ctx := context.Background()

	valid := GroupConfig{
		Name:               "Family",
		ContributionAmount: decimal.NewFromInt(100),
		Frequency:          models.FrequencyMonthly,
		MaxMembers:         3,
	}

	tests := []struct {
		name   string
		mutate func(*GroupConfig)
	}{
		{"zero capacity", func(c *GroupConfig) { c.MaxMembers = 0 }},
		{"zero contribution", func(c *GroupConfig) { c.ContributionAmount = decimal.Zero }},
		{"negative contribution", func(c *GroupConfig) { c.ContributionAmount = decimal.NewFromInt(-10) }},
		{"sub-cent contribution", func(c *GroupConfig) { c.ContributionAmount = decimal.RequireFromString("10.001") }},
		{"huge exponent", func(c *GroupConfig) { c.ContributionAmount = decimal.RequireFromString("1e5000000") }},
		{"tiny exponent", func(c *GroupConfig) { c.ContributionAmount = decimal.RequireFromString("1e-5000000") }},
		{"blank name", func(c *GroupConfig) { c.Name = "  " }},
		{"unknown frequency", func(c *GroupConfig) { c.Frequency = "Daily" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			_, err := f.engine.CreateGroup(ctx, f.users[0].ID, cfg)
			assertCode(t, err, apperrors.CodeInvalidConfig)
		})
	}

	t.Run("founder holds spot 1", func(t *testing.T) {
		group, err := f.engine.CreateGroup(ctx, f.users[0].ID, valid)
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.MembersCount != 1 || group.Members[0].Spot != 1 || group.Members[0].UserID != f.users[0].ID {
			t.Errorf("Unexpected roster: %+v", group.Members)
		}
		if group.Status != models.GroupActive || !group.TotalAmount.IsZero() {
			t.Errorf("Unexpected state: status=%s total=%s", group.Status, group.TotalAmount)
		}
		if want := testNow.AddDate(0, 1, 0).Unix(); group.NextPayoutDate != want {
			t.Errorf("NextPayoutDate = %d, want %d", group.NextPayoutDate, want)
		}
	})

	t.Run("unknown founder", func(t *testing.T) {
		_, err := f.engine.CreateGroup(ctx, "ghost", valid)
		assertCode(t, err, apperrors.CodeNotFound)
	})
}

func TestScenarios(t *testing.T) {
	f := newFixture(t, "A", "B", "C", "D")
	ctx := context.Background()
	a, b, c, d := f.users[0], f.users[1], f.users[2], f.users[3]
	f.users = f.users[:3]

	group, err := f.engine.CreateGroup(ctx, a.ID, GroupConfig{
		Name:               "Family",
		ContributionAmount: decimal.NewFromInt(100),
		Frequency:          models.FrequencyWeekly,
		MaxMembers:         3,
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, u := range f.users {
		fund(t, f.engine.Ledger(), u.ID, 1000)
	}

	t.Run("A: admission up to capacity", func(t *testing.T) {
		if group, err = f.engine.Join(ctx, group.ID, b.ID); err != nil {
			t.Fatalf("Join(B) failed: %v", err)
		}
		if group, err = f.engine.Join(ctx, group.ID, c.ID); err != nil {
			t.Fatalf("Join(C) failed: %v", err)
		}
		for i, u := range []*models.User{a, b, c} {
			if group.Members[i].UserID != u.ID || group.Members[i].Spot != i+1 {
				t.Errorf("Slot %d = %+v, want %s at spot %d", i, group.Members[i], u.DisplayName, i+1)
			}
		}

		_, err := f.engine.Join(ctx, group.ID, d.ID)
		assertCode(t, err, apperrors.CodeGroupFull)
		assertRosterInvariants(t, group)
	})

	t.Run("B: contributions fill the pool", func(t *testing.T) {
		before := f.totalMoney(t)
		for _, u := range f.users {
			res, err := f.engine.Contribute(ctx, group.ID, u.ID)
			if err != nil {
				t.Fatalf("Contribute(%s) failed: %v", u.DisplayName, err)
			}
			if !res.NewBalance.Equal(decimal.NewFromInt(900)) {
				t.Errorf("%s balance = %s, want 900", u.DisplayName, res.NewBalance)
			}
			if res.Transaction.Description != "Contribution to Family" || res.Transaction.Method != models.MethodWallet {
				t.Errorf("Unexpected entry: %+v", res.Transaction)
			}
		}

		got, err := f.engine.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if !got.TotalAmount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("Pool = %s, want 300", got.TotalAmount)
		}
		if after := f.totalMoney(t); !after.Equal(before) {
			t.Errorf("Money not conserved: %s -> %s", before, after)
		}
	})

	t.Run("C: rotate pays spot 1", func(t *testing.T) {
		before := f.totalMoney(t)
		payout, err := f.engine.Rotate(ctx, group.ID)
		if err != nil {
			t.Fatalf("Rotate failed: %v", err)
		}
		if payout.WinnerID != a.ID || payout.WinnerName != "A" || payout.Spot != 1 {
			t.Errorf("Unexpected winner: %+v", payout)
		}
		if !payout.Amount.Equal(decimal.NewFromInt(300)) || payout.PassReset {
			t.Errorf("Unexpected payout: %+v", payout)
		}
		if payout.Transaction.Description != "Ekub Payout from Family" || payout.Transaction.Method != models.MethodEkubPayout {
			t.Errorf("Unexpected entry: %+v", payout.Transaction)
		}
		if got := balance(t, f.engine.Ledger(), a.ID); !got.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("A balance = %s, want 1200", got)
		}

		got, _ := f.engine.GetGroup(ctx, group.ID)
		if !got.TotalAmount.IsZero() || !got.Members[0].HasWon || got.Members[1].HasWon {
			t.Errorf("Unexpected group state: total=%s members=%+v", got.TotalAmount, got.Members)
		}
		if after := f.totalMoney(t); !after.Equal(before) {
			t.Errorf("Money not conserved: %s -> %s", before, after)
		}
	})

	t.Run("D: empty pool", func(t *testing.T) {
		_, err := f.engine.Rotate(ctx, group.ID)
		assertCode(t, err, apperrors.CodeEmptyPool)
	})

	t.Run("E: a new pass starts from spot 1", func(t *testing.T) {
		for _, want := range []*models.User{b, c} {
			f.contributeAll(t, group.ID)
			payout, err := f.engine.Rotate(ctx, group.ID)
			if err != nil {
				t.Fatalf("Rotate failed: %v", err)
			}
			if payout.WinnerID != want.ID {
				t.Errorf("Winner = %s, want %s", payout.WinnerName, want.DisplayName)
			}
		}

		f.contributeAll(t, group.ID)
		payout, err := f.engine.Rotate(ctx, group.ID)
		if err != nil {
			t.Fatalf("Rotate failed: %v", err)
		}
		if payout.WinnerID != a.ID || !payout.PassReset {
			t.Errorf("Expected reset pass won by A, got %+v", payout)
		}

		got, _ := f.engine.GetGroup(ctx, group.ID)
		for _, s := range got.Members {
			if s.HasWon != (s.UserID == a.ID) {
				t.Errorf("Slot %d hasWon=%v after reset", s.Spot, s.HasWon)
			}
		}
		assertRosterInvariants(t, got)
	})
}

func TestJoin_Rejections(t *testing.T) {
	f := newFixture(t, "Alice", "Bob")
	ctx := context.Background()
	alice, bob := f.users[0], f.users[1]

	group, err := f.engine.CreateGroup(ctx, alice.ID, GroupConfig{
		Name:               "Pair",
		ContributionAmount: decimal.NewFromInt(50),
		Frequency:          models.FrequencyWeekly,
		MaxMembers:         2,
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if _, err := f.engine.Join(ctx, group.ID, bob.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	t.Run("second join is AlreadyMember", func(t *testing.T) {
		_, err := f.engine.Join(ctx, group.ID, bob.ID)
		assertCode(t, err, apperrors.CodeAlreadyMember)

		got, _ := f.engine.GetGroup(ctx, group.ID)
		if got.MembersCount != 2 {
			t.Errorf("membersCount changed to %d", got.MembersCount)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := f.engine.Join(ctx, "missing", bob.ID)
		assertCode(t, err, apperrors.CodeNotFound)
	})
}

func TestContribute_Rejections(t *testing.T) {
	f := newFixture(t, "Alice", "Bob")
	ctx := context.Background()
	carol := createUser(t, f.store, "Carol")

	group := f.newCircle(t, 3, 100, 150)

	t.Run("outsider is NotAMember", func(t *testing.T) {
		fund(t, f.engine.Ledger(), carol.ID, 500)
		_, err := f.engine.Contribute(ctx, group.ID, carol.ID)
		assertCode(t, err, apperrors.CodeNotAMember)
	})

	t.Run("insufficient funds leaves pool and wallet untouched", func(t *testing.T) {
		bob := f.users[1]
		if _, err := f.engine.Contribute(ctx, group.ID, bob.ID); err != nil {
			t.Fatalf("Contribute failed: %v", err)
		}
		_, err := f.engine.Contribute(ctx, group.ID, bob.ID)
		assertCode(t, err, apperrors.CodeInsufficientFunds)

		if got := balance(t, f.engine.Ledger(), bob.ID); !got.Equal(decimal.NewFromInt(50)) {
			t.Errorf("Bob balance = %s, want 50", got)
		}
		got, _ := f.engine.GetGroup(ctx, group.ID)
		if !got.TotalAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Pool = %s, want 100", got.TotalAmount)
		}
	})
}

func TestRotationFairness(t *testing.T) {
	f := newFixture(t, "M1", "M2", "M3", "M4")
	ctx := context.Background()
	group := f.newCircle(t, 4, 25, 1000)

	winners := make(map[string]int)
	for round := 0; round < 4; round++ {
		f.contributeAll(t, group.ID)
		payout, err := f.engine.Rotate(ctx, group.ID)
		if err != nil {
			t.Fatalf("Rotate #%d failed: %v", round+1, err)
		}
		if payout.Spot != round+1 || payout.PassReset {
			t.Errorf("Rotate #%d: spot=%d reset=%v", round+1, payout.Spot, payout.PassReset)
		}
		winners[payout.WinnerID]++
	}
	for _, u := range f.users {
		if winners[u.ID] != 1 {
			t.Errorf("%s won %d times in one pass", u.DisplayName, winners[u.ID])
		}
	}

	f.contributeAll(t, group.ID)
	payout, err := f.engine.Rotate(ctx, group.ID)
	if err != nil {
		t.Fatalf("Rotate #5 failed: %v", err)
	}
	if payout.Spot != 1 || !payout.PassReset {
		t.Errorf("Expected reset and spot 1, got spot=%d reset=%v", payout.Spot, payout.PassReset)
	}
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("close requires a complete pass", func(t *testing.T) {
		f := newFixture(t, "Alice", "Bob")
		group := f.newCircle(t, 2, 100, 500)

		_, err := f.engine.Close(ctx, group.ID)
		assertCode(t, err, apperrors.CodeRotationIncomplete)

		for i := 0; i < 2; i++ {
			f.contributeAll(t, group.ID)
			if _, err := f.engine.Rotate(ctx, group.ID); err != nil {
				t.Fatalf("Rotate failed: %v", err)
			}
		}

		f.contributeAll(t, group.ID)
		_, err = f.engine.Close(ctx, group.ID)
		assertCode(t, err, apperrors.CodePoolNotEmpty)

		// Pay the extra pool out and finish the second pass.
		for i := 0; i < 2; i++ {
			if _, err := f.engine.Rotate(ctx, group.ID); err != nil {
				t.Fatalf("Rotate failed: %v", err)
			}
			if i == 0 {
				f.contributeAll(t, group.ID)
			}
		}

		closed, err := f.engine.Close(ctx, group.ID)
		if err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if closed.Status != models.GroupCompleted {
			t.Errorf("Status = %s, want Completed", closed.Status)
		}

		_, err = f.engine.Contribute(ctx, group.ID, f.users[0].ID)
		assertCode(t, err, apperrors.CodeGroupNotActive)
	})

	t.Run("cancel requires an empty pool", func(t *testing.T) {
		f := newFixture(t, "Alice", "Bob")
		group := f.newCircle(t, 3, 100, 500)

		if _, err := f.engine.Contribute(ctx, group.ID, f.users[0].ID); err != nil {
			t.Fatalf("Contribute failed: %v", err)
		}
		_, err := f.engine.Cancel(ctx, group.ID)
		assertCode(t, err, apperrors.CodePoolNotEmpty)

		if _, err := f.engine.Rotate(ctx, group.ID); err != nil {
			t.Fatalf("Rotate failed: %v", err)
		}
		cancelled, err := f.engine.Cancel(ctx, group.ID)
		if err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if cancelled.Status != models.GroupCancelled {
			t.Errorf("Status = %s, want Cancelled", cancelled.Status)
		}

		outsider := createUser(t, f.store, "Carol")
		_, err = f.engine.Join(ctx, group.ID, outsider.ID)
		assertCode(t, err, apperrors.CodeGroupNotActive)
		_, err = f.engine.Rotate(ctx, group.ID)
		assertCode(t, err, apperrors.CodeGroupNotActive)
	})
}

func TestConcurrentContributions(t *testing.T) {
	names := make([]string, 8)
	for i := range names {
		names[i] = fmt.Sprintf("member%d", i)
	}
	f := newFixture(t, names...)
	ctx := context.Background()
	group := f.newCircle(t, len(names), 10, 100)
	before := f.totalMoney(t)

	var wg sync.WaitGroup
	errs := make(chan error, len(f.users)*3)
	for _, u := range f.users {
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				if _, err := f.engine.Contribute(ctx, group.ID, userID); err != nil {
					errs <- err
				}
			}(u.ID)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Contribute failed: %v", err)
	}

	got, err := f.engine.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	want := decimal.NewFromInt(int64(10 * 3 * len(names)))
	if !got.TotalAmount.Equal(want) {
		t.Errorf("Pool = %s, want %s", got.TotalAmount, want)
	}
	if after := f.totalMoney(t); !after.Equal(before) {
		t.Errorf("Money not conserved: %s -> %s", before, after)
	}
}

func TestAdvancePayoutDate(t *testing.T) {
	f := newFixture(t, "Alice")
	ctx := context.Background()
	group := f.newCircle(t, 2, 100, 100)

	advanced, err := f.engine.AdvancePayoutDate(ctx, group.ID)
	if err != nil {
		t.Fatalf("AdvancePayoutDate failed: %v", err)
	}
	want := time.Unix(group.NextPayoutDate, 0).UTC().AddDate(0, 0, 7).Unix()
	if advanced.NextPayoutDate != want {
		t.Errorf("NextPayoutDate = %d, want %d", advanced.NextPayoutDate, want)
	}

	due, err := f.engine.DueGroups(ctx, time.Unix(want, 0))
	if err != nil || len(due) != 1 {
		t.Errorf("DueGroups: got %d, err=%v", len(due), err)
	}
}

func TestAdvancePayoutDate_MonthlyKeepsAnchorDay(t *testing.T) {
	store := newTestStore(t)
	founded := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)
	engine := NewEngine(store, WithClock(func() time.Time { return founded }))
	alice := createUser(t, store, "Alice")
	ctx := context.Background()

	group, err := engine.CreateGroup(ctx, alice.ID, GroupConfig{
		Name:               "Month end",
		ContributionAmount: decimal.NewFromInt(100),
		Frequency:          models.FrequencyMonthly,
		MaxMembers:         3,
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	wants := []time.Time{
		time.Date(2026, time.February, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 30, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.May, 31, 9, 0, 0, 0, time.UTC),
	}
	if got := time.Unix(group.NextPayoutDate, 0).UTC(); !got.Equal(wants[0]) {
		t.Fatalf("first payout = %s, want %s", got, wants[0])
	}
	for _, want := range wants[1:] {
		if group, err = engine.AdvancePayoutDate(ctx, group.ID); err != nil {
			t.Fatalf("AdvancePayoutDate failed: %v", err)
		}
		if got := time.Unix(group.NextPayoutDate, 0).UTC(); !got.Equal(want) {
			t.Errorf("NextPayoutDate = %s, want %s", got, want)
		}
	}
}
