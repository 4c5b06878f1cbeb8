package ekub

import (
	"sync"
	"testing"
	"time"

	"github.com/nebaware/temariware/internal/models"
)

func TestNextWinner(t *testing.T) {
	tests := []struct {
		name     string
		members  []models.Slot
		wantSpot int
		wantOK   bool
	}{
		{
			name:     "smallest spot when nobody has won",
			members:  []models.Slot{{UserID: "c", Spot: 3}, {UserID: "a", Spot: 1}, {UserID: "b", Spot: 2}},
			wantSpot: 1,
			wantOK:   true,
		},
		{
			name:     "skips winners",
			members:  []models.Slot{{UserID: "a", Spot: 1, HasWon: true}, {UserID: "b", Spot: 2}, {UserID: "c", Spot: 3}},
			wantSpot: 2,
			wantOK:   true,
		},
		{
			name:    "complete pass has no eligible slot",
			members: []models.Slot{{UserID: "a", Spot: 1, HasWon: true}},
			wantOK:  false,
		},
		{
			name:   "empty roster",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := NextWinner(&models.Group{Members: tt.members})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && slot.Spot != tt.wantSpot {
				t.Errorf("spot = %d, want %d", slot.Spot, tt.wantSpot)
			}
		})
	}
}

func TestResetPass(t *testing.T) {
	group := &models.Group{Members: []models.Slot{{Spot: 1, HasWon: true}, {Spot: 2, HasWon: true}}}
	ResetPass(group)
	for _, s := range group.Members {
		if s.HasWon {
			t.Errorf("Slot %d still marked as won", s.Spot)
		}
	}
}

func TestProjectSchedule(t *testing.T) {
	next := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	group := &models.Group{
		Status:         models.GroupActive,
		Frequency:      models.FrequencyMonthly,
		NextPayoutDate: next.Unix(),
		CreatedAt:      next.AddDate(0, -1, 0).Unix(),
		Members: []models.Slot{
			{UserID: "a", Spot: 1, HasWon: true},
			{UserID: "c", Spot: 3},
			{UserID: "b", Spot: 2},
		},
	}

	t.Run("remaining slots in spot order", func(t *testing.T) {
		got := ProjectSchedule(group, next.AddDate(0, 0, -1))
		if len(got) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(got))
		}
		if got[0].UserID != "b" || !got[0].Date.Equal(next) {
			t.Errorf("First entry = %+v", got[0])
		}
		if got[1].UserID != "c" || !got[1].Date.Equal(next.AddDate(0, 1, 0)) {
			t.Errorf("Second entry = %+v", got[1])
		}
	})

	t.Run("month end anchor does not drift", func(t *testing.T) {
		anchor := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
		monthEnd := &models.Group{
			Status:         models.GroupActive,
			Frequency:      models.FrequencyMonthly,
			NextPayoutDate: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC).Unix(),
			CreatedAt:      anchor.Unix(),
			Members:        []models.Slot{{UserID: "a", Spot: 1}, {UserID: "b", Spot: 2}, {UserID: "c", Spot: 3}},
		}
		got := ProjectSchedule(monthEnd, anchor)
		for i, day := range []int{28, 31, 30} {
			if got[i].Date.Day() != day {
				t.Errorf("entry %d falls on %s, want day %d", i, got[i].Date.Format(time.DateOnly), day)
			}
		}
	})

	t.Run("overdue date starts from now", func(t *testing.T) {
		from := next.AddDate(0, 0, 3)
		got := ProjectSchedule(group, from)
		if !got[0].Date.Equal(from) {
			t.Errorf("First date = %s, want %s", got[0].Date, from)
		}
	})

	t.Run("complete pass projects the full roster", func(t *testing.T) {
		done := *group
		done.Members = []models.Slot{{UserID: "b", Spot: 2, HasWon: true}, {UserID: "a", Spot: 1, HasWon: true}}
		got := ProjectSchedule(&done, next)
		if len(got) != 2 || got[0].Spot != 1 || got[1].Spot != 2 {
			t.Errorf("Unexpected schedule: %+v", got)
		}
	})

	t.Run("inactive group", func(t *testing.T) {
		cancelled := *group
		cancelled.Status = models.GroupCancelled
		if got := ProjectSchedule(&cancelled, next); len(got) != 0 {
			t.Errorf("Expected no schedule, got %+v", got)
		}
	})
}

func TestGroupLocks(t *testing.T) {
	locks := newGroupLocks()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("g1")
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("Expected exclusive access, saw %d holders", maxSeen)
	}
	if len(locks.locks) != 0 {
		t.Errorf("Expected lock entries to be released, %d remain", len(locks.locks))
	}
}
