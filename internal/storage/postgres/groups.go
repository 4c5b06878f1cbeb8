package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

const groupColumns = `id, name, creator_id, contribution_amount::text, frequency, max_members,
	members_count, total_amount::text, next_payout_date, status, created_at, updated_at`

// CreateGroup persists a new group and its initial roster.
func (s *PostgresStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	group.UpdatedAt = group.CreatedAt

	return s.InTx(ctx, func(tx storage.Store) error {
		db := tx.(*PostgresStore).db

		_, err := db.Exec(ctx, `
			INSERT INTO ekub_groups (id, name, creator_id, contribution_amount, frequency, max_members,
				members_count, total_amount, next_payout_date, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8::numeric, $9, $10, $11, $12)
		`,
			group.ID, group.Name, group.CreatorID, group.ContributionAmount.String(), string(group.Frequency), group.MaxMembers,
			group.MembersCount, group.TotalAmount.String(), group.NextPayoutDate, string(group.Status), group.CreatedAt, group.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		return insertMembers(ctx, db, group)
	})
}

// GetGroup retrieves a group by ID, including its roster. Inside a
// transaction the group row stays locked until commit.
func (s *PostgresStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := scanGroup(s.db.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM ekub_groups WHERE id = $1`+s.forUpdate(), groupID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
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
func (s *PostgresStore) SaveGroup(ctx context.Context, group *models.Group) error {
	group.UpdatedAt = time.Now().Unix()

	return s.InTx(ctx, func(tx storage.Store) error {
		db := tx.(*PostgresStore).db

		tag, err := db.Exec(ctx, `
			UPDATE ekub_groups
			SET name = $1, members_count = $2, total_amount = $3::numeric,
				next_payout_date = $4, status = $5, updated_at = $6
			WHERE id = $7
		`, group.Name, group.MembersCount, group.TotalAmount.String(),
			group.NextPayoutDate, string(group.Status), group.UpdatedAt, group.ID)
		if err != nil {
			return fmt.Errorf("failed to update group: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("group %s: %w", group.ID, storage.ErrNotFound)
		}

		if _, err := db.Exec(ctx, `DELETE FROM ekub_members WHERE group_id = $1`, group.ID); err != nil {
			return fmt.Errorf("failed to clear group members: %w", err)
		}
		return insertMembers(ctx, db, group)
	})
}

// ListGroups retrieves groups newest first, optionally filtered by status.
func (s *PostgresStore) ListGroups(ctx context.Context, status models.GroupStatus) ([]*models.Group, error) {
	if status == "" {
		return s.queryGroups(ctx, `SELECT `+groupColumns+` FROM ekub_groups ORDER BY seq DESC`)
	}
	return s.queryGroups(ctx,
		`SELECT `+groupColumns+` FROM ekub_groups WHERE status = $1 ORDER BY seq DESC`,
		string(status),
	)
}

// ListGroupsByMember retrieves the groups a user holds a slot in.
func (s *PostgresStore) ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.queryGroups(ctx, `
		SELECT `+groupColumns+` FROM ekub_groups
		WHERE id IN (SELECT group_id FROM ekub_members WHERE user_id = $1)
		ORDER BY seq DESC`,
		userID,
	)
}

// ListGroupsDue retrieves Active groups whose payout date has arrived.
func (s *PostgresStore) ListGroupsDue(ctx context.Context, before int64) ([]*models.Group, error) {
	return s.queryGroups(ctx,
		`SELECT `+groupColumns+` FROM ekub_groups WHERE status = $1 AND next_payout_date <= $2 ORDER BY next_payout_date`,
		string(models.GroupActive), before,
	)
}

func (s *PostgresStore) queryGroups(ctx context.Context, query string, args ...any) ([]*models.Group, error) {
	rows, err := s.db.Query(ctx, query, args...)
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

	for _, group := range groups {
		if err := s.loadMembers(ctx, group); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func (s *PostgresStore) loadMembers(ctx context.Context, group *models.Group) error {
	rows, err := s.db.Query(ctx,
		`SELECT user_id, spot, has_won, joined_at FROM ekub_members WHERE group_id = $1 ORDER BY spot`,
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

func insertMembers(ctx context.Context, db dbtx, group *models.Group) error {
	for _, slot := range group.Members {
		_, err := db.Exec(ctx, `
			INSERT INTO ekub_members (group_id, user_id, spot, has_won, joined_at)
			VALUES ($1, $2, $3, $4, $5)
		`, group.ID, slot.UserID, slot.Spot, slot.HasWon, slot.JoinedAt)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	group := &models.Group{}
	var contribution, total, frequency, status string

	err := row.Scan(
		&group.ID, &group.Name, &group.CreatorID, &contribution, &frequency, &group.MaxMembers,
		&group.MembersCount, &total, &group.NextPayoutDate, &status, &group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if group.ContributionAmount, err = decimal.NewFromString(contribution); err != nil {
		return nil, fmt.Errorf("failed to parse contribution amount: %w", err)
	}
	if group.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("failed to parse total amount: %w", err)
	}
	group.Frequency = models.Frequency(frequency)
	group.Status = models.GroupStatus(status)
	return group, nil
}
