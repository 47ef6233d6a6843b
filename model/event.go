package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Event ...
type Event struct {
	ID       uint64          `db:"id"`
	Type     EventType       `db:"type"`
	Identity string          `db:"identity"`
	Amount   decimal.Decimal `db:"amount"`

	CreatedAt time.Time `db:"created_at"`
}

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
