// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/nebaware/temariware/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// Store defines the interface for ledger and group storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the engine or service layers.
type Store interface {
	UserStore
	WalletStore
	GroupStore

	// InTx runs fn against a store bound to a single transaction. The
	// transaction commits if fn returns nil and rolls back otherwise.
	// A store that is already bound to a transaction runs fn in place.
	InTx(ctx context.Context, fn func(tx Store) error) error

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts the user and opens its wallet with a zero balance
	// in the given currency. Returns ErrConflict when the email is taken.
	CreateUser(ctx context.Context, user *models.User, currency string) error

	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs returns a map of user ID to user.
	// Users that don't exist are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
}

// WalletStore persists balances and the transaction history.
type WalletStore interface {
	// GetWallet returns ErrNotFound when the user has no wallet. Inside a
	// transaction the wallet row is locked until commit where the backend
	// supports it.
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// UpdateWalletBalance stores wallet.Balance.
	UpdateWalletBalance(ctx context.Context, wallet *models.Wallet) error

	// CreateTransaction appends a ledger entry. ID and CreatedAt are
	// populated by the store when empty.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// GetTransactionByReference returns ErrNotFound when no entry carries
	// the reference.
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)

	// CompleteTransaction moves a Pending entry to Completed.
	CompleteTransaction(ctx context.Context, id string) error

	// ListTransactions returns a user's entries, newest first.
	ListTransactions(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)
}

// GroupStore persists groups and their rosters.
type GroupStore interface {
	// CreateGroup persists a new group with its initial roster.
	// ID and CreatedAt are populated by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup returns the group with its roster ordered by spot, or
	// ErrNotFound. Inside a transaction the group row is locked until
	// commit where the backend supports it.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// SaveGroup writes the group's mutable state and replaces its roster.
	SaveGroup(ctx context.Context, group *models.Group) error

	// ListGroups returns groups, newest first. An empty status lists all.
	ListGroups(ctx context.Context, status models.GroupStatus) ([]*models.Group, error)

	// ListGroupsByMember returns the groups userID holds a slot in.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// ListGroupsDue returns Active groups whose next payout date is at or
	// before the given Unix timestamp.
	ListGroupsDue(ctx context.Context, before int64) ([]*models.Group, error)
}
