package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often a group collects contributions and pays out.
type Frequency string

const (
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly
}

// Next returns the payout date one cycle after t. Monthly dates fall on
// anchor's day of the month, clamped to the last day of shorter months, so
// a group anchored on Jan 31 pays on Feb 28 and then Mar 31.
func (f Frequency) Next(anchor, t time.Time) time.Time {
	if f != FrequencyMonthly {
		return t.AddDate(0, 0, 7)
	}
	year, month, _ := t.Date()
	first := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := min(anchor.Day(), daysInMonth(first))
	return first.AddDate(0, 0, day-1)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// GroupStatus is the lifecycle state of a group.
type GroupStatus string

const (
	GroupActive    GroupStatus = "Active"
	GroupCompleted GroupStatus = "Completed"
	GroupCancelled GroupStatus = "Cancelled"
)

// Group is a rotating savings circle (Ekub). Members contribute a fixed
// amount each cycle and the pooled total is paid out to one member per
// rotation.
//
// Invariants: MembersCount == len(Members), MembersCount <= MaxMembers,
// TotalAmount >= 0.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Family Ekub").
	Name string

	// CreatorID is the founding member. Always holds spot 1.
	CreatorID string

	// ContributionAmount is what each member pays per cycle.
	ContributionAmount decimal.Decimal

	// Frequency is the cycle length.
	Frequency Frequency

	// MaxMembers is the roster capacity.
	MaxMembers int

	// MembersCount is the number of occupied slots.
	MembersCount int

	// TotalAmount is the pool: contributions not yet paid out.
	TotalAmount decimal.Decimal

	// NextPayoutDate is the Unix timestamp of the next scheduled payout.
	// Descriptive only; rotation never reads it.
	NextPayoutDate int64

	// Status is the lifecycle state.
	Status GroupStatus

	// Members is the roster ordered by spot.
	Members []Slot

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last state change.
	UpdatedAt int64
}

// Slot is one member's position in a group's payout rotation.
type Slot struct {
	// UserID is the member.
	UserID string

	// Spot is the 1-based join position, unique within the group.
	Spot int

	// HasWon is true once the member has been paid out in the current pass.
	HasWon bool

	// JoinedAt is the Unix timestamp when the member joined.
	JoinedAt int64
}

// FindSlot returns the slot held by userID.
func (g *Group) FindSlot(userID string) (*Slot, bool) {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i], true
		}
	}
	return nil, false
}

// IsMember reports whether userID holds a slot.
func (g *Group) IsMember(userID string) bool {
	_, ok := g.FindSlot(userID)
	return ok
}

// IsFull reports whether the roster is at capacity.
func (g *Group) IsFull() bool {
	return g.MembersCount >= g.MaxMembers
}

// PassComplete reports whether every slot has won in the current pass.
func (g *Group) PassComplete() bool {
	if len(g.Members) == 0 {
		return false
	}
	for _, s := range g.Members {
		if !s.HasWon {
			return false
		}
	}
	return true
}

// NextPayoutAfter returns the payout date one cycle after t, anchored on the
// day the group was created.
func (g *Group) NextPayoutAfter(t time.Time) time.Time {
	return g.Frequency.Next(time.Unix(g.CreatedAt, 0).UTC(), t)
}
