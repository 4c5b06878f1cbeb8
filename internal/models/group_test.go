package models

import (
	"testing"
	"time"
)

func TestFrequencyNext(t *testing.T) {
	start := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)
	date := func(month time.Month, day int) time.Time {
		return time.Date(2026, month, day, 9, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		freq   Frequency
		anchor time.Time
		from   time.Time
		want   time.Time
	}{
		{"weekly adds seven days", FrequencyWeekly, start, start, date(time.February, 7)},
		{"monthly clamps to a short month", FrequencyMonthly, start, start, date(time.February, 28)},
		{"monthly returns to the anchor day", FrequencyMonthly, start, date(time.February, 28), date(time.March, 31)},
		{"monthly clamps to a 30 day month", FrequencyMonthly, start, date(time.March, 31), date(time.April, 30)},
		{"monthly mid-month anchor", FrequencyMonthly, date(time.January, 15), date(time.January, 15), date(time.February, 15)},
		{"monthly crosses the year", FrequencyMonthly, start, time.Date(2026, time.December, 31, 9, 0, 0, 0, time.UTC), time.Date(2027, time.January, 31, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.freq.Next(tt.anchor, tt.from); !got.Equal(tt.want) {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextPayoutAfter_NoDrift(t *testing.T) {
	anchor := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)
	g := &Group{Frequency: FrequencyMonthly, CreatedAt: anchor.Unix()}

	want := []int{28, 31, 30, 31, 30, 31}
	date := anchor
	for i, day := range want {
		date = g.NextPayoutAfter(date)
		if date.Day() != day || date.Month() != time.Month(i+2) {
			t.Fatalf("step %d: got %s, want day %d of %s", i+1, date.Format(time.DateOnly), day, time.Month(i+2))
		}
	}
}

func TestGroupRosterHelpers(t *testing.T) {
	g := &Group{
		MaxMembers:   2,
		MembersCount: 2,
		Members: []Slot{
			{UserID: "alice", Spot: 1, HasWon: true},
			{UserID: "bob", Spot: 2},
		},
	}

	if !g.IsFull() {
		t.Error("expected group to be full")
	}
	if !g.IsMember("bob") || g.IsMember("carol") {
		t.Error("IsMember mismatch")
	}
	if g.PassComplete() {
		t.Error("pass should not be complete while bob has not won")
	}

	slot, ok := g.FindSlot("bob")
	if !ok {
		t.Fatal("expected to find bob")
	}
	slot.HasWon = true
	if !g.PassComplete() {
		t.Error("FindSlot should return a pointer into the roster")
	}

	if (&Group{}).PassComplete() {
		t.Error("empty roster is never a complete pass")
	}
}
