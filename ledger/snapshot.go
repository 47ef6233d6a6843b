package ledger

import (
	"github.com/shopspring/decimal"
	"time"
)

// Snapshot is a copy of the full ledger state, Version increases on every mutation
type Snapshot struct {
	Owner       Identity
	FundingGoal decimal.Decimal
	Deadline    time.Time

	TotalContributions decimal.Decimal
	Balance            decimal.Decimal

	Contributions map[Identity]decimal.Decimal
	FailedRefunds map[Identity]decimal.Decimal

	Version uint64
}

// Snapshot ...
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Snapshot{
		Owner:       l.owner,
		FundingGoal: l.fundingGoal,
		Deadline:    l.deadline,

		TotalContributions: l.totalContributions,
		Balance:            l.balance,

		Contributions: copyAmounts(l.contributions),
		FailedRefunds: copyAmounts(l.failedRefunds),

		Version: l.version,
	}
}

// Restore rebuilds a Ledger from a snapshot
func Restore(s Snapshot, transferer Transferer, options ...Option) (*Ledger, error) {
	if s.Owner == "" || !s.FundingGoal.IsPositive() || s.Deadline.IsZero() {
		return nil, ErrInvalidParameters
	}

	l := newLedger(transferer, options...)
	l.owner = s.Owner
	l.fundingGoal = s.FundingGoal
	l.deadline = s.Deadline
	l.totalContributions = s.TotalContributions
	l.balance = s.Balance
	l.version = s.Version

	for id, amount := range s.Contributions {
		l.contributions[id] = amount
	}
	for id, amount := range s.FailedRefunds {
		if amount.IsPositive() {
			l.failedRefunds[id] = amount
		}
	}
	return l, nil
}

func copyAmounts(m map[Identity]decimal.Decimal) map[Identity]decimal.Decimal {
	result := make(map[Identity]decimal.Decimal, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
