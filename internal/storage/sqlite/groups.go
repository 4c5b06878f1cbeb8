package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

const groupColumns = `id, name, creator_id, contribution_amount, frequency, max_members,
	members_count, total_amount, next_payout_date, status, created_at, updated_at`

// CreateGroup persists a new group and its initial roster.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	group.UpdatedAt = group.CreatedAt

	return s.InTx(ctx, func(tx storage.Store) error {
		q := tx.(*SQLiteStore).q

		_, err := q.ExecContext(ctx,
			"INSERT INTO ekub_groups ("+groupColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			group.ID, group.Name, group.CreatorID, group.ContributionAmount, string(group.Frequency), group.MaxMembers,
			group.MembersCount, group.TotalAmount, group.NextPayoutDate, string(group.Status), group.CreatedAt, group.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		return insertMembers(ctx, q, group)
	})
}

// GetGroup retrieves a group by ID, including its roster.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := scanGroup(s.q.QueryRowContext(ctx,
		"SELECT "+groupColumns+" FROM ekub_groups WHERE id = ?", groupID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.loadMembers(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// SaveGroup writes the group's mutable state and replaces its roster.
func (s *SQLiteStore) SaveGroup(ctx context.Context, group *models.Group) error {
	group.UpdatedAt = time.Now().Unix()

	return s.InTx(ctx, func(tx storage.Store) error {
		q := tx.(*SQLiteStore).q

		res, err := q.ExecContext(ctx,
			`UPDATE ekub_groups SET name = ?, members_count = ?, total_amount = ?,
				next_payout_date = ?, status = ?, updated_at = ?
			 WHERE id = ?`,
			group.Name, group.MembersCount, group.TotalAmount,
			group.NextPayoutDate, string(group.Status), group.UpdatedAt, group.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update group: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("group %s: %w", group.ID, storage.ErrNotFound)
		}

		if _, err := q.ExecContext(ctx, "DELETE FROM ekub_members WHERE group_id = ?", group.ID); err != nil {
			return fmt.Errorf("failed to clear group members: %w", err)
		}
		return insertMembers(ctx, q, group)
	})
}

// ListGroups retrieves groups newest first, optionally filtered by status.
func (s *SQLiteStore) ListGroups(ctx context.Context, status models.GroupStatus) ([]*models.Group, error) {
	if status == "" {
		return s.queryGroups(ctx, "SELECT "+groupColumns+" FROM ekub_groups ORDER BY created_at DESC, rowid DESC")
	}
	return s.queryGroups(ctx,
		"SELECT "+groupColumns+" FROM ekub_groups WHERE status = ? ORDER BY created_at DESC, rowid DESC",
		string(status),
	)
}

// ListGroupsByMember retrieves the groups a user holds a slot in.
func (s *SQLiteStore) ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.queryGroups(ctx,
		`SELECT `+groupColumns+` FROM ekub_groups
		 WHERE id IN (SELECT group_id FROM ekub_members WHERE user_id = ?)
		 ORDER BY created_at DESC, rowid DESC`,
		userID,
	)
}

// ListGroupsDue retrieves Active groups whose payout date has arrived.
func (s *SQLiteStore) ListGroupsDue(ctx context.Context, before int64) ([]*models.Group, error) {
	return s.queryGroups(ctx,
		"SELECT "+groupColumns+" FROM ekub_groups WHERE status = ? AND next_payout_date <= ? ORDER BY next_payout_date",
		string(models.GroupActive), before,
	)
}

func (s *SQLiteStore) queryGroups(ctx context.Context, query string, args ...any) ([]*models.Group, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []*models.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	// Rosters load after the group cursor is closed: the store runs on a
	// single connection.
	for _, group := range groups {
		if err := s.loadMembers(ctx, group); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func (s *SQLiteStore) loadMembers(ctx context.Context, group *models.Group) error {
	rows, err := s.q.QueryContext(ctx,
		"SELECT user_id, spot, has_won, joined_at FROM ekub_members WHERE group_id = ? ORDER BY spot",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	group.Members = group.Members[:0]
	for rows.Next() {
		var slot models.Slot
		if err := rows.Scan(&slot.UserID, &slot.Spot, &slot.HasWon, &slot.JoinedAt); err != nil {
			return fmt.Errorf("failed to scan group member: %w", err)
		}
		group.Members = append(group.Members, slot)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate group members: %w", err)
	}
	return nil
}

func insertMembers(ctx context.Context, q queryer, group *models.Group) error {
	for _, slot := range group.Members {
		_, err := q.ExecContext(ctx,
			"INSERT INTO ekub_members (group_id, user_id, spot, has_won, joined_at) VALUES (?, ?, ?, ?, ?)",
			group.ID, slot.UserID, slot.Spot, slot.HasWon, slot.JoinedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

func scanGroup(row rowScanner) (*models.Group, error) {
	group := &models.Group{}
	var frequency, status string

	err := row.Scan(
		&group.ID, &group.Name, &group.CreatorID, &group.ContributionAmount, &frequency, &group.MaxMembers,
		&group.MembersCount, &group.TotalAmount, &group.NextPayoutDate, &status, &group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	group.Frequency = models.Frequency(frequency)
	group.Status = models.GroupStatus(status)
	return group, nil
}
