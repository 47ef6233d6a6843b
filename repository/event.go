package repository

import (
	"context"
	"github.com/QuangTung97/crowdfund-escrow/model"
)

// Event ...
type Event interface {
	InsertEvents(ctx context.Context, events []model.Event) error
	ListEvents(ctx context.Context, fromID uint64, limit uint64) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvents ...
func (e *eventImpl) InsertEvents(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	query := `
INSERT INTO escrow_event (type, identity, amount)
VALUES (:type, :identity, :amount)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, events)
	return err
}

// ListEvents returns events with id >= fromID in insertion order
func (e *eventImpl) ListEvents(ctx context.Context, fromID uint64, limit uint64) ([]model.Event, error) {
	query := `
SELECT id, type, identity, amount, created_at
FROM escrow_event
WHERE id >= ?
ORDER BY id
LIMIT ?
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, fromID, limit)
	return result, err
}
