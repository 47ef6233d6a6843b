package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/crowdfund-escrow/model"
)

// Campaign ...
type Campaign interface {
	GetCampaign(ctx context.Context) (model.NullCampaign, error)
	LockCampaign(ctx context.Context) (model.NullCampaign, error)
	InsertCampaign(ctx context.Context, campaign model.Campaign) error
	UpdateCampaign(ctx context.Context, campaign model.Campaign) error

	ListContributions(ctx context.Context) ([]model.Contribution, error)
	UpsertContributions(ctx context.Context, contributions []model.Contribution) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const selectCampaignQuery = `
SELECT id, owner, funding_goal, deadline, total_contributions, balance, version
FROM escrow_campaign WHERE id = ?`

func toNullCampaign(campaign model.Campaign, err error) (model.NullCampaign, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaign,
	}, nil
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context) (model.NullCampaign, error) {
	var campaign model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &campaign, selectCampaignQuery, model.CampaignID)
	return toNullCampaign(campaign, err)
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context) (model.NullCampaign, error) {
	var campaign model.Campaign
	err := GetTx(ctx).GetContext(ctx, &campaign, selectCampaignQuery+` FOR UPDATE`, model.CampaignID)
	return toNullCampaign(campaign, err)
}

// InsertCampaign ...
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO escrow_campaign (
	id, owner, funding_goal, deadline,
	total_contributions, balance, version
) VALUES (
	:id, :owner, :funding_goal, :deadline,
	:total_contributions, :balance, :version
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// UpdateCampaign ...
func (c *campaignImpl) UpdateCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
UPDATE escrow_campaign SET
	total_contributions = :total_contributions,
	balance = :balance,
	version = :version
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// ListContributions ...
func (c *campaignImpl) ListContributions(ctx context.Context) ([]model.Contribution, error) {
	query := `
SELECT contributor, amount, failed_refund
FROM escrow_contribution
ORDER BY contributor
`
	var result []model.Contribution
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// UpsertContributions ...
func (c *campaignImpl) UpsertContributions(ctx context.Context, contributions []model.Contribution) error {
	if len(contributions) == 0 {
		return nil
	}

	query := `
INSERT INTO escrow_contribution (
	contributor, amount, failed_refund
) VALUES (
	:contributor, :amount, :failed_refund
) AS NEW
ON DUPLICATE KEY UPDATE
	amount = NEW.amount,
	failed_refund = NEW.failed_refund
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, contributions)
	return err
}
