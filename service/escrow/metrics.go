package escrow

import (
	"github.com/QuangTung97/crowdfund-escrow/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics ...
type Metrics struct {
	events        *prometheus.CounterVec
	amounts       *prometheus.CounterVec
	balance       prometheus.Gauge
	persistErrors prometheus.Counter
}

// NewMetrics registers escrow metrics to reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "escrow",
			Name:      "events_total",
			Help:      "Number of ledger events by type",
		}, []string{"type"}),

		amounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "escrow",
			Name:      "event_amount_total",
			Help:      "Sum of ledger event amounts in base units by type",
		}, []string{"type"}),

		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "escrow",
			Name:      "custodied_balance",
			Help:      "Custodied balance in base units",
		}),

		persistErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "escrow",
			Name:      "persist_errors_total",
			Help:      "Number of failed ledger snapshot writes",
		}),
	}

	reg.MustRegister(m.events, m.amounts, m.balance, m.persistErrors)
	return m
}

func (m *Metrics) observeEvent(event ledger.Event) {
	label := event.Type.String()
	m.events.WithLabelValues(label).Inc()

	f, _ := event.Amount.Float64()
	m.amounts.WithLabelValues(label).Add(f)
}

func (m *Metrics) setBalance(balance decimal.Decimal) {
	f, _ := balance.Float64()
	m.balance.Set(f)
}
