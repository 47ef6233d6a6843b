package model

import "github.com/shopspring/decimal"

// Contribution is the ledger entry of a single contributor
type Contribution struct {
	Contributor  string          `db:"contributor"`
	Amount       decimal.Decimal `db:"amount"`
	FailedRefund decimal.Decimal `db:"failed_refund"`
}
