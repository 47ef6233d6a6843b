package ledger

import (
	"context"
	"github.com/shopspring/decimal"
	"sync"
	"time"
)

// Identity of an account that can pledge, withdraw or reclaim
type Identity string

// DefaultBaseUnitExponent converts whole units to base units (1 unit = 10^18 base units)
const DefaultBaseUnitExponent int32 = 18

// Status is the lazily determined branch of the campaign
type Status int

const (
	// StatusActive before the deadline
	StatusActive Status = 1

	// StatusSuccess at or after the deadline with the goal met
	StatusSuccess Status = 2

	// StatusFailure at or after the deadline with the goal missed
	StatusFailure Status = 3
)

// String ...
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Params for constructing a campaign
type Params struct {
	Owner Identity

	// FundingGoal in whole units
	FundingGoal decimal.Decimal
	Duration    time.Duration

	// BaseUnitExponent is the number of decimal places of one whole unit
	BaseUnitExponent int32
}

// Info is a read-only view of the campaign parameters and totals
type Info struct {
	Owner              Identity
	FundingGoal        decimal.Decimal
	Deadline           time.Time
	TotalContributions decimal.Decimal
	Balance            decimal.Decimal
}

// Ledger holds the state of a single campaign.
// Every state mutation is committed under mu before control passes to the Transferer,
// and mu is never held across a Transfer or Notify call.
type Ledger struct {
	transferer Transferer
	notifier   Notifier

	mu sync.Mutex

	owner       Identity
	fundingGoal decimal.Decimal
	deadline    time.Time

	totalContributions decimal.Decimal
	balance            decimal.Decimal

	contributions map[Identity]decimal.Decimal
	failedRefunds map[Identity]decimal.Decimal

	// ended is set once any call observed now >= deadline, a later call with an older now stays ended
	ended bool

	version uint64
}

// Option ...
type Option func(l *Ledger)

// WithNotifier configures the receiver of ledger events
func WithNotifier(n Notifier) Option {
	return func(l *Ledger) {
		l.notifier = n
	}
}

func newLedger(transferer Transferer, options ...Option) *Ledger {
	l := &Ledger{
		transferer: transferer,
		notifier:   nopNotifier{},

		contributions: map[Identity]decimal.Decimal{},
		failedRefunds: map[Identity]decimal.Decimal{},
	}
	for _, fn := range options {
		fn(l)
	}
	return l
}

// ToBaseUnits converts a whole-unit amount to base units
func ToBaseUnits(amount decimal.Decimal, exponent int32) decimal.Decimal {
	return amount.Shift(exponent)
}

// New constructs a campaign owned by params.Owner with deadline = now + params.Duration
func New(params Params, now time.Time, transferer Transferer, options ...Option) (*Ledger, error) {
	if params.Owner == "" || params.Duration <= 0 || !params.FundingGoal.IsPositive() {
		return nil, ErrInvalidParameters
	}
	if params.BaseUnitExponent < 0 {
		return nil, ErrInvalidParameters
	}

	goal := ToBaseUnits(params.FundingGoal, params.BaseUnitExponent)
	if !goal.IsInteger() {
		return nil, ErrInvalidParameters
	}

	l := newLedger(transferer, options...)
	l.owner = params.Owner
	l.fundingGoal = goal
	l.deadline = now.Add(params.Duration)
	l.version = 1
	return l, nil
}

func (l *Ledger) observeLocked(now time.Time) bool {
	if !now.Before(l.deadline) {
		l.ended = true
	}
	return l.ended
}

func (l *Ledger) statusLocked(now time.Time) Status {
	if !l.observeLocked(now) {
		return StatusActive
	}
	if l.totalContributions.GreaterThanOrEqual(l.fundingGoal) {
		return StatusSuccess
	}
	return StatusFailure
}

// Pledge records amount base units from caller
func (l *Ledger) Pledge(ctx context.Context, caller Identity, amount decimal.Decimal, now time.Time) error {
	l.mu.Lock()

	if l.observeLocked(now) {
		l.mu.Unlock()
		return ErrCampaignEnded
	}
	if !amount.IsPositive() {
		l.mu.Unlock()
		return ErrZeroContribution
	}
	if !amount.IsInteger() {
		l.mu.Unlock()
		return ErrInvalidAmount
	}

	l.contributions[caller] = l.contributions[caller].Add(amount)
	l.totalContributions = l.totalContributions.Add(amount)
	l.balance = l.balance.Add(amount)
	l.version++

	l.mu.Unlock()

	l.notifier.Notify(ctx, Event{
		Type:     EventTypeContributionRecorded,
		Identity: caller,
		Amount:   amount,
	})
	return nil
}

// WithdrawFunds transfers the whole custodied balance to the owner
func (l *Ledger) WithdrawFunds(ctx context.Context, caller Identity, now time.Time) (decimal.Decimal, error) {
	l.mu.Lock()

	if caller != l.owner {
		l.mu.Unlock()
		return decimal.Zero, ErrNotOwner
	}

	switch l.statusLocked(now) {
	case StatusActive:
		l.mu.Unlock()
		return decimal.Zero, ErrCampaignActive
	case StatusFailure:
		l.mu.Unlock()
		return decimal.Zero, ErrGoalNotReached
	}

	amount := l.balance
	if !amount.IsPositive() {
		l.mu.Unlock()
		return decimal.Zero, ErrNothingToWithdraw
	}

	l.balance = decimal.Zero
	l.version++
	owner := l.owner

	l.mu.Unlock()

	l.notifier.Notify(ctx, Event{
		Type:     EventTypeFundsWithdrawn,
		Identity: owner,
		Amount:   amount,
	})

	err := l.transferer.Transfer(ctx, owner, amount)
	if err != nil {
		l.mu.Lock()
		l.balance = l.balance.Add(amount)
		l.version++
		l.mu.Unlock()

		return decimal.Zero, l.transferFailed(ctx, owner, amount, err)
	}
	return amount, nil
}

// ReclaimContribution refunds the whole contribution of caller.
// If the transfer is rejected the contribution stays zeroed and the amount is parked as a failed refund.
func (l *Ledger) ReclaimContribution(ctx context.Context, caller Identity, now time.Time) (decimal.Decimal, error) {
	l.mu.Lock()

	switch l.statusLocked(now) {
	case StatusActive:
		l.mu.Unlock()
		return decimal.Zero, ErrCampaignActive
	case StatusSuccess:
		l.mu.Unlock()
		return decimal.Zero, ErrGoalReached
	}

	amount := l.contributions[caller]
	if !amount.IsPositive() {
		l.mu.Unlock()
		return decimal.Zero, ErrNothingToReclaim
	}

	l.contributions[caller] = decimal.Zero
	l.balance = l.balance.Sub(amount)
	l.version++

	l.mu.Unlock()

	return l.refund(ctx, caller, amount)
}

// RetryRefund re-attempts a refund whose transfer was previously rejected
func (l *Ledger) RetryRefund(ctx context.Context, caller Identity) (decimal.Decimal, error) {
	l.mu.Lock()

	amount := l.failedRefunds[caller]
	if !amount.IsPositive() {
		l.mu.Unlock()
		return decimal.Zero, ErrNoFailedRefund
	}

	delete(l.failedRefunds, caller)
	l.balance = l.balance.Sub(amount)
	l.version++

	l.mu.Unlock()

	return l.refund(ctx, caller, amount)
}

// refund requires amount already debited from both the source entry and the balance
func (l *Ledger) refund(ctx context.Context, to Identity, amount decimal.Decimal) (decimal.Decimal, error) {
	l.notifier.Notify(ctx, Event{
		Type:     EventTypeRefundIssued,
		Identity: to,
		Amount:   amount,
	})

	err := l.transferer.Transfer(ctx, to, amount)
	if err != nil {
		l.mu.Lock()
		l.balance = l.balance.Add(amount)
		l.failedRefunds[to] = l.failedRefunds[to].Add(amount)
		l.version++
		l.mu.Unlock()

		return decimal.Zero, l.transferFailed(ctx, to, amount, err)
	}
	return amount, nil
}

func (l *Ledger) transferFailed(ctx context.Context, to Identity, amount decimal.Decimal, cause error) error {
	l.notifier.Notify(ctx, Event{
		Type:     EventTypeTransferFailed,
		Identity: to,
		Amount:   amount,
	})
	return &TransferError{
		To:     to,
		Amount: amount,
		Err:    cause,
	}
}

// GetBalance returns the custodied balance
func (l *Ledger) GetBalance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Status ...
func (l *Ledger) Status(now time.Time) Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.statusLocked(now)
}

// ContributionOf returns the not yet reclaimed contribution of id
func (l *Ledger) ContributionOf(id Identity) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.contributions[id]
}

// FailedRefundOf returns the amount parked after a rejected refund transfer
func (l *Ledger) FailedRefundOf(id Identity) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failedRefunds[id]
}

// TotalContributions ...
func (l *Ledger) TotalContributions() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalContributions
}

// Info ...
func (l *Ledger) Info() Info {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Info{
		Owner:              l.owner,
		FundingGoal:        l.fundingGoal,
		Deadline:           l.deadline,
		TotalContributions: l.totalContributions,
		Balance:            l.balance,
	}
}
