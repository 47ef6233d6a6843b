package escrow

import (
	"context"
	"github.com/QuangTung97/crowdfund-escrow/ledger"
	"github.com/QuangTung97/crowdfund-escrow/pkg/otellib"
	"go.uber.org/zap"
	"sync"
)

// eventRecorder logs ledger events and keeps them until they are written to the event table
type eventRecorder struct {
	metrics *Metrics

	mu      sync.Mutex
	pending []ledger.Event
}

var _ ledger.Notifier = &eventRecorder{}

func newEventRecorder(metrics *Metrics) *eventRecorder {
	return &eventRecorder{
		metrics: metrics,
	}
}

// Notify ...
func (r *eventRecorder) Notify(ctx context.Context, event ledger.Event) {
	otellib.Extract(ctx).Info("ledger event",
		zap.String("type", event.Type.String()),
		zap.String("identity", string(event.Identity)),
		zap.String("amount", event.Amount.String()),
	)
	r.metrics.observeEvent(event)

	r.mu.Lock()
	r.pending = append(r.pending, event)
	r.mu.Unlock()
}

func (r *eventRecorder) drain() []ledger.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.pending
	r.pending = nil
	return events
}

// requeue puts events back in front of the ones recorded since drain
func (r *eventRecorder) requeue(events []ledger.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(events[:len(events):len(events)], r.pending...)
}
