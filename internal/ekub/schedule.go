package ekub

import (
	"context"
	"time"

	"github.com/nebaware/temariware/internal/models"
)

// ScheduledPayout is one projected payout of the current pass.
type ScheduledPayout struct {
	UserID string
	Spot   int
	Date   time.Time
}

// ProjectSchedule lists the remaining payouts of the current pass in
// rotation order. The first date is the group's next payout date, moved up
// to from when it is already overdue, and each following date is one cycle
// later. Groups that are not Active have no schedule.
func ProjectSchedule(group *models.Group, from time.Time) []ScheduledPayout {
	if group.Status != models.GroupActive {
		return nil
	}

	date := time.Unix(group.NextPayoutDate, 0).UTC()
	if date.Before(from) {
		date = from.UTC()
	}

	slots := eligibleSlots(group)
	schedule := make([]ScheduledPayout, 0, len(slots))
	for _, slot := range slots {
		schedule = append(schedule, ScheduledPayout{
			UserID: slot.UserID,
			Spot:   slot.Spot,
			Date:   date,
		})
		date = group.NextPayoutAfter(date)
	}
	return schedule
}

// Schedule loads a group and projects its remaining payouts from now.
func (e *Engine) Schedule(ctx context.Context, groupID string) (*models.Group, []ScheduledPayout, error) {
	group, err := loadGroup(ctx, e.store, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, ProjectSchedule(group, e.now()), nil
}
