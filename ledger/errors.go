package ledger

import (
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
)

// ErrInvalidParameters when funding goal or duration is not positive
var ErrInvalidParameters = errors.New("invalid campaign parameters")

// ErrCampaignEnded when pledging at or after the deadline
var ErrCampaignEnded = errors.New("campaign ended")

// ErrCampaignActive when settling before the deadline
var ErrCampaignActive = errors.New("campaign still active")

// ErrZeroContribution ...
var ErrZeroContribution = errors.New("contribution amount must be positive")

// ErrNotOwner ...
var ErrNotOwner = errors.New("caller is not the campaign owner")

// ErrGoalNotReached ...
var ErrGoalNotReached = errors.New("funding goal not reached")

// ErrGoalReached ...
var ErrGoalReached = errors.New("funding goal reached")

// ErrNothingToReclaim when the caller has no contribution left
var ErrNothingToReclaim = errors.New("nothing to reclaim")

// ErrNothingToWithdraw when the custodied balance has already been drained
var ErrNothingToWithdraw = errors.New("nothing to withdraw")

// ErrNoFailedRefund when there is no rejected refund to retry
var ErrNoFailedRefund = errors.New("no failed refund to retry")

// ErrTransferFailed when the recipient rejects the outbound transfer
var ErrTransferFailed = errors.New("transfer failed")

// ErrInvalidAmount when an amount is not a whole number of base units
var ErrInvalidAmount = errors.New("amount must be a whole number of base units")

// TransferError is returned when the Transferer rejects a payout, errors.Is(err, ErrTransferFailed) holds
type TransferError struct {
	To     Identity
	Amount decimal.Decimal
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s to %q failed: %v", e.Amount, e.To, e.Err)
}

// Unwrap ...
func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is ...
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}
