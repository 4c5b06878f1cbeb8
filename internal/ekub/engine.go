// Package ekub implements rotating savings groups: membership admission,
// contributions into a shared pool and deterministic payout rotation, with
// every movement of money going through the wallet Ledger.
//
// Operations on one group are serialized by an in-process lock and run in a
// single storage transaction, so a wallet change and the matching group
// change commit together or not at all.
package ekub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/metrics"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
)

const tracerName = "github.com/nebaware/temariware/internal/ekub"

// Engine runs group operations against a store.
type Engine struct {
	store   storage.Store
	ledger  *Ledger
	locks   *groupLocks
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics records operation outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine backed by store.
func NewEngine(store storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		locks:  newGroupLocks(),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ledger = NewLedger(store, e.metrics)
	return e
}

// Ledger returns the wallet ledger the engine moves money through.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// GetGroup returns a group with its roster.
func (e *Engine) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return loadGroup(ctx, e.store, groupID)
}

// ListGroups returns groups, optionally filtered by status.
func (e *Engine) ListGroups(ctx context.Context, status models.GroupStatus) ([]*models.Group, error) {
	groups, err := e.store.ListGroups(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// ListMemberGroups returns the groups userID holds a slot in.
func (e *Engine) ListMemberGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	groups, err := e.store.ListGroupsByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member groups: %w", err)
	}
	return groups, nil
}

// DueGroups returns Active groups whose payout date is not after at.
func (e *Engine) DueGroups(ctx context.Context, at time.Time) ([]*models.Group, error) {
	groups, err := e.store.ListGroupsDue(ctx, at.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list due groups: %w", err)
	}
	return groups, nil
}

// mutate runs fn on the group under its lock inside one transaction.
func (e *Engine) mutate(ctx context.Context, groupID string, fn func(tx storage.Store, group *models.Group) error) error {
	unlock := e.locks.lock(groupID)
	defer unlock()

	return e.store.InTx(ctx, func(tx storage.Store) error {
		group, err := loadGroup(ctx, tx, groupID)
		if err != nil {
			return err
		}
		return fn(tx, group)
	})
}

func (e *Engine) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, "ekub."+op, trace.WithAttributes(attrs...))
}

// endSpan closes span and counts err against op.
func (e *Engine) endSpan(span trace.Span, op string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		e.metrics.Failure(op, string(apperrors.GetCode(err)))
	}
	span.End()
}

func loadGroup(ctx context.Context, store storage.GroupStore, groupID string) (*models.Group, error) {
	group, err := store.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "group not found", err)
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

func requireActive(group *models.Group) error {
	if group.Status != models.GroupActive {
		return apperrors.WithMetadata(apperrors.CodeGroupNotActive, "group is "+string(group.Status), map[string]string{
			"group_id": group.ID,
		})
	}
	return nil
}

func requireUser(ctx context.Context, store storage.UserStore, userID string) (*models.User, error) {
	user, err := store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	return user, nil
}
