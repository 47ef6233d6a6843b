package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// CampaignID of the single campaign row
const CampaignID int64 = 1

// Campaign ...
type Campaign struct {
	ID          int64           `db:"id"`
	Owner       string          `db:"owner"`
	FundingGoal decimal.Decimal `db:"funding_goal"`
	Deadline    time.Time       `db:"deadline"`

	TotalContributions decimal.Decimal `db:"total_contributions"`
	Balance            decimal.Decimal `db:"balance"`

	Version uint64 `db:"version"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}
