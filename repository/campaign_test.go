package repository

import (
	"context"
	"github.com/QuangTung97/crowdfund-escrow/model"
	"github.com/QuangTung97/crowdfund-escrow/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type campaignTest struct {
	tc       *integration.TestCase
	provider Provider
}

func newCampaignTest(t *testing.T) *campaignTest {
	tc := integration.NewTestCase(t)
	tc.Truncate("escrow_campaign")
	tc.Truncate("escrow_contribution")
	return &campaignTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
	}
}

func assertCampaign(t *testing.T, expected model.Campaign, actual model.NullCampaign) {
	t.Helper()

	assert.Equal(t, true, actual.Valid)
	assert.Equal(t, expected.ID, actual.Campaign.ID)
	assert.Equal(t, expected.Owner, actual.Campaign.Owner)
	assert.Equal(t, expected.FundingGoal.String(), actual.Campaign.FundingGoal.String())
	assert.Equal(t, expected.Deadline, actual.Campaign.Deadline.UTC())
	assert.Equal(t, expected.TotalContributions.String(), actual.Campaign.TotalContributions.String())
	assert.Equal(t, expected.Balance.String(), actual.Campaign.Balance.String())
	assert.Equal(t, expected.Version, actual.Campaign.Version)
}

func TestCampaign(t *testing.T) {
	tc := newCampaignTest(t)

	repo := NewCampaign()

	ctx := tc.provider.Readonly(newContext())

	// Get 1
	nullCampaign, err := repo.GetCampaign(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, nullCampaign)

	campaign01 := model.Campaign{
		ID:          model.CampaignID,
		Owner:       "0xowner",
		FundingGoal: newDecimal("10000000000000000000"),
		Deadline:    newTime("2022-05-14T10:00:00+07:00"),

		TotalContributions: decimal.Zero,
		Balance:            decimal.Zero,
		Version:            1,
	}

	// Insert
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertCampaign(ctx, campaign01)
	})
	assert.Equal(t, nil, err)

	// Get 2
	nullCampaign, err = repo.GetCampaign(ctx)
	assert.Equal(t, nil, err)
	assertCampaign(t, campaign01, nullCampaign)

	// Lock and Update
	campaign01.TotalContributions = newDecimal("8000000000000000000")
	campaign01.Balance = newDecimal("4000000000000000000")
	campaign01.Version = 5

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		locked, err := repo.LockCampaign(ctx)
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(1), locked.Campaign.Version)
		return repo.UpdateCampaign(ctx, campaign01)
	})
	assert.Equal(t, nil, err)

	// Get 3
	nullCampaign, err = repo.GetCampaign(ctx)
	assert.Equal(t, nil, err)
	assertCampaign(t, campaign01, nullCampaign)

	// Insert twice
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertCampaign(ctx, campaign01)
	})
	assert.NotEqual(t, nil, err)
}

func TestCampaign__Upsert_Contributions(t *testing.T) {
	tc := newCampaignTest(t)

	repo := NewCampaign()
	ctx := tc.provider.Readonly(newContext())

	contributions, err := repo.ListContributions(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(contributions))

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertContributions(ctx, nil)
	})
	assert.Equal(t, nil, err)

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertContributions(ctx, []model.Contribution{
			{Contributor: "0xbob", Amount: newDecimal("4"), FailedRefund: decimal.Zero},
			{Contributor: "0xalice", Amount: newDecimal("3"), FailedRefund: decimal.Zero},
		})
	})
	assert.Equal(t, nil, err)

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertContributions(ctx, []model.Contribution{
			{Contributor: "0xalice", Amount: decimal.Zero, FailedRefund: newDecimal("3")},
		})
	})
	assert.Equal(t, nil, err)

	contributions, err = repo.ListContributions(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(contributions))

	assert.Equal(t, "0xalice", contributions[0].Contributor)
	assert.Equal(t, "0", contributions[0].Amount.String())
	assert.Equal(t, "3", contributions[0].FailedRefund.String())

	assert.Equal(t, "0xbob", contributions[1].Contributor)
	assert.Equal(t, "4", contributions[1].Amount.String())
	assert.Equal(t, "0", contributions[1].FailedRefund.String())
}
