package ledger

import (
	"context"
	"github.com/shopspring/decimal"
)

//go:generate moq -out ledger_mocks.go . Notifier Transferer

// EventType ...
type EventType int

const (
	// EventTypeContributionRecorded ...
	EventTypeContributionRecorded EventType = 1

	// EventTypeFundsWithdrawn ...
	EventTypeFundsWithdrawn EventType = 2

	// EventTypeRefundIssued ...
	EventTypeRefundIssued EventType = 3

	// EventTypeTransferFailed ...
	EventTypeTransferFailed EventType = 4
)

// String ...
func (t EventType) String() string {
	switch t {
	case EventTypeContributionRecorded:
		return "contribution_recorded"
	case EventTypeFundsWithdrawn:
		return "funds_withdrawn"
	case EventTypeRefundIssued:
		return "refund_issued"
	case EventTypeTransferFailed:
		return "transfer_failed"
	default:
		return "unknown"
	}
}

// Event is an advisory notification, state never depends on it
type Event struct {
	Type     EventType
	Identity Identity
	Amount   decimal.Decimal
}

// Notifier receives events after the corresponding state change is committed
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Transferer moves funds out of custody. Implementations may call back into the Ledger.
type Transferer interface {
	Transfer(ctx context.Context, to Identity, amount decimal.Decimal) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Event) {}
