package escrow

import (
	"context"
	"errors"
	"github.com/QuangTung97/crowdfund-escrow/ledger"
	"github.com/QuangTung97/crowdfund-escrow/model"
	"github.com/QuangTung97/crowdfund-escrow/pkg/otellib"
	"github.com/QuangTung97/crowdfund-escrow/repository"
	"github.com/shopspring/decimal"
	"sort"
	"sync"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out service_mocks_test.go . IService IdempotencyTable

// IService ...
type IService interface {
	Create(ctx context.Context, input CreateInput) (CampaignOutput, error)
	GetCampaign(ctx context.Context) (CampaignOutput, error)
	GetBalance(ctx context.Context) (decimal.Decimal, error)
	GetContribution(ctx context.Context, contributor ledger.Identity) (ContributionOutput, error)
	ListEvents(ctx context.Context, fromID uint64, limit uint64) ([]model.Event, error)

	Pledge(ctx context.Context, caller ledger.Identity, amount decimal.Decimal) error
	WithdrawFunds(ctx context.Context, caller ledger.Identity) (decimal.Decimal, error)
	ReclaimContribution(ctx context.Context, caller ledger.Identity) (decimal.Decimal, error)
	RetryRefund(ctx context.Context, caller ledger.Identity) (decimal.Decimal, error)
}

// CreateInput ...
type CreateInput struct {
	Owner ledger.Identity

	// FundingGoal in whole units
	FundingGoal decimal.Decimal
	Duration    time.Duration
}

// CampaignOutput ...
type CampaignOutput struct {
	Owner              ledger.Identity
	FundingGoal        decimal.Decimal
	Deadline           time.Time
	TotalContributions decimal.Decimal
	Balance            decimal.Decimal
	Status             ledger.Status
}

// ContributionOutput ...
type ContributionOutput struct {
	Contributor  ledger.Identity
	Amount       decimal.Decimal
	FailedRefund decimal.Decimal
}

// ErrCampaignNotFound when no campaign has been created yet
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrCampaignExists ...
var ErrCampaignExists = errors.New("campaign already exists")

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// Service binds the in-memory ledger to its MySQL snapshot and event table
type Service struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	eventRepo    repository.Event
	transferer   ledger.Transferer
	metrics      *Metrics
	recorder     *eventRecorder

	exponent int32
	now      func() time.Time

	mu     sync.RWMutex
	ledger *ledger.Ledger

	// persistMu serializes snapshot writes, never held during a transfer
	persistMu sync.Mutex
}

// Option ...
type Option func(s *Service)

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithBaseUnitExponent ...
func WithBaseUnitExponent(exponent int32) Option {
	return func(s *Service) {
		s.exponent = exponent
	}
}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	eventRepo repository.Event,
	transferer ledger.Transferer,
	metrics *Metrics,
	options ...Option,
) *Service {
	s := &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		eventRepo:    eventRepo,
		transferer:   transferer,
		metrics:      metrics,
		recorder:     newEventRecorder(metrics),

		exponent: ledger.DefaultBaseUnitExponent,
		now:      time.Now,
	}
	for _, fn := range options {
		fn(s)
	}
	return s
}

// Load restores the ledger from the database, it is a no-op when no campaign was created
// or the ledger is already loaded
func (s *Service) Load(ctx context.Context) error {
	ctx = s.provider.Readonly(ctx)

	nullCampaign, err := s.campaignRepo.GetCampaign(ctx)
	if err != nil {
		return err
	}
	if !nullCampaign.Valid {
		return nil
	}

	contributions, err := s.campaignRepo.ListContributions(ctx)
	if err != nil {
		return err
	}

	l, err := ledger.Restore(toSnapshot(nullCampaign.Campaign, contributions),
		s.transferer, ledger.WithNotifier(s.recorder))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger != nil {
		return nil
	}
	s.ledger = l
	s.metrics.setBalance(l.GetBalance())
	return nil
}

func (s *Service) currentLedger() *ledger.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger
}

// getLedger loads the campaign on first use, it may have been created by another process
func (s *Service) getLedger(ctx context.Context) (*ledger.Ledger, error) {
	if l := s.currentLedger(); l != nil {
		return l, nil
	}

	err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	l := s.currentLedger()
	if l == nil {
		return nil, ErrCampaignNotFound
	}
	return l, nil
}

// Create constructs the campaign with the current time and persists it
func (s *Service) Create(ctx context.Context, input CreateInput) (CampaignOutput, error) {
	now := s.now()

	l, err := ledger.New(ledger.Params{
		Owner:            input.Owner,
		FundingGoal:      input.FundingGoal,
		Duration:         input.Duration,
		BaseUnitExponent: s.exponent,
	}, now, s.transferer, ledger.WithNotifier(s.recorder))
	if err != nil {
		return CampaignOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger != nil {
		return CampaignOutput{}, ErrCampaignExists
	}

	snapshot := l.Snapshot()
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		existing, err := s.campaignRepo.LockCampaign(ctx)
		if err != nil {
			return err
		}
		if existing.Valid {
			return ErrCampaignExists
		}
		return s.campaignRepo.InsertCampaign(ctx, toCampaignModel(snapshot))
	})
	if err != nil {
		return CampaignOutput{}, err
	}

	s.ledger = l
	s.metrics.setBalance(l.GetBalance())

	return toCampaignOutput(l.Info(), l.Status(now)), nil
}

// GetCampaign ...
func (s *Service) GetCampaign(ctx context.Context) (CampaignOutput, error) {
	l, err := s.getLedger(ctx)
	if err != nil {
		return CampaignOutput{}, err
	}
	return toCampaignOutput(l.Info(), l.Status(s.now())), nil
}

// GetBalance ...
func (s *Service) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	l, err := s.getLedger(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return l.GetBalance(), nil
}

// GetContribution ...
func (s *Service) GetContribution(ctx context.Context, contributor ledger.Identity) (ContributionOutput, error) {
	l, err := s.getLedger(ctx)
	if err != nil {
		return ContributionOutput{}, err
	}
	return ContributionOutput{
		Contributor:  contributor,
		Amount:       l.ContributionOf(contributor),
		FailedRefund: l.FailedRefundOf(contributor),
	}, nil
}

// ListEvents ...
func (s *Service) ListEvents(ctx context.Context, fromID uint64, limit uint64) ([]model.Event, error) {
	if limit == 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	return s.eventRepo.ListEvents(s.provider.Readonly(ctx), fromID, limit)
}

// Pledge ...
func (s *Service) Pledge(ctx context.Context, caller ledger.Identity, amount decimal.Decimal) error {
	l, err := s.getLedger(ctx)
	if err != nil {
		return err
	}

	err = l.Pledge(ctx, caller, amount, s.now())
	s.persist(ctx, l)
	return err
}

// WithdrawFunds ...
func (s *Service) WithdrawFunds(ctx context.Context, caller ledger.Identity) (decimal.Decimal, error) {
	l, err := s.getLedger(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := l.WithdrawFunds(ctx, caller, s.now())
	s.persist(ctx, l)
	return amount, err
}

// ReclaimContribution ...
func (s *Service) ReclaimContribution(ctx context.Context, caller ledger.Identity) (decimal.Decimal, error) {
	l, err := s.getLedger(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := l.ReclaimContribution(ctx, caller, s.now())
	s.persist(ctx, l)
	return amount, err
}

// RetryRefund ...
func (s *Service) RetryRefund(ctx context.Context, caller ledger.Identity) (decimal.Decimal, error) {
	l, err := s.getLedger(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := l.RetryRefund(ctx, caller)
	s.persist(ctx, l)
	return amount, err
}

// persist writes the current snapshot with all of its entries and the recorded events.
// Every ledger mutation emits an event after it is committed, so the drained events
// are always covered by the snapshot taken after draining.
// A mutation whose event is not drained yet is still written by the full snapshot.
// A failed write is logged and the events are kept for the next call.
func (s *Service) persist(ctx context.Context, l *ledger.Ledger) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	events := s.recorder.drain()
	if len(events) == 0 {
		return
	}

	snapshot := l.Snapshot()
	s.metrics.setBalance(snapshot.Balance)

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		current, err := s.campaignRepo.LockCampaign(ctx)
		if err != nil {
			return err
		}
		if !current.Valid {
			return ErrCampaignNotFound
		}

		if current.Campaign.Version < snapshot.Version {
			err = s.campaignRepo.UpdateCampaign(ctx, toCampaignModel(snapshot))
			if err != nil {
				return err
			}

			err = s.campaignRepo.UpsertContributions(ctx, toContributionModels(snapshot))
			if err != nil {
				return err
			}
		}

		return s.eventRepo.InsertEvents(ctx, toEventModels(events))
	})
	if err != nil {
		s.recorder.requeue(events)
		s.metrics.persistErrors.Inc()
		otellib.WrapError(ctx, err)
	}
}

func toCampaignOutput(info ledger.Info, status ledger.Status) CampaignOutput {
	return CampaignOutput{
		Owner:              info.Owner,
		FundingGoal:        info.FundingGoal,
		Deadline:           info.Deadline,
		TotalContributions: info.TotalContributions,
		Balance:            info.Balance,
		Status:             status,
	}
}

func toCampaignModel(s ledger.Snapshot) model.Campaign {
	return model.Campaign{
		ID:          model.CampaignID,
		Owner:       string(s.Owner),
		FundingGoal: s.FundingGoal,
		Deadline:    s.Deadline.UTC(),

		TotalContributions: s.TotalContributions,
		Balance:            s.Balance,
		Version:            s.Version,
	}
}

// toContributionModels returns every ledger entry ordered by contributor
func toContributionModels(s ledger.Snapshot) []model.Contribution {
	ids := make([]ledger.Identity, 0, len(s.Contributions)+len(s.FailedRefunds))
	for id := range s.Contributions {
		ids = append(ids, id)
	}
	for id := range s.FailedRefunds {
		if _, existed := s.Contributions[id]; !existed {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]model.Contribution, 0, len(ids))
	for _, id := range ids {
		result = append(result, model.Contribution{
			Contributor:  string(id),
			Amount:       s.Contributions[id],
			FailedRefund: s.FailedRefunds[id],
		})
	}
	return result
}

func toEventModels(events []ledger.Event) []model.Event {
	result := make([]model.Event, 0, len(events))
	for _, e := range events {
		result = append(result, model.Event{
			Type:     model.EventType(e.Type),
			Identity: string(e.Identity),
			Amount:   e.Amount,
		})
	}
	return result
}

func toSnapshot(campaign model.Campaign, contributions []model.Contribution) ledger.Snapshot {
	s := ledger.Snapshot{
		Owner:       ledger.Identity(campaign.Owner),
		FundingGoal: campaign.FundingGoal,
		Deadline:    campaign.Deadline,

		TotalContributions: campaign.TotalContributions,
		Balance:            campaign.Balance,

		Contributions: make(map[ledger.Identity]decimal.Decimal, len(contributions)),
		FailedRefunds: map[ledger.Identity]decimal.Decimal{},

		Version: campaign.Version,
	}

	for _, c := range contributions {
		id := ledger.Identity(c.Contributor)
		s.Contributions[id] = c.Amount
		if c.FailedRefund.IsPositive() {
			s.FailedRefunds[id] = c.FailedRefund
		}
	}
	return s
}
