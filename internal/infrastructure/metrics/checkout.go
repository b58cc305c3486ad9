package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"robux_topup/internal/domain/value"
)

const namespace = "robux_topup"

// Quote results.
const (
	QuoteOK       = "ok"
	QuoteRejected = "rejected"
)

// Checkout collects pricing and checkout counters.
type Checkout struct {
	quotes      *prometheus.CounterVec
	transitions *prometheus.CounterVec
	orders      prometheus.Counter
	submit      prometheus.Histogram
}

func NewCheckout(reg prometheus.Registerer) (*Checkout, error) {
	c := &Checkout{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Price quotes computed, by result.",
		}, []string{"result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "transitions_total",
			Help:      "Checkout state transitions.",
		}, []string{"from", "to"}),
		orders: prometheus.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Orders put up for payment.",
		}),
		submit: prometheus.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "submit_duration_seconds",
			Help:      "Time from submit to the payment step.",
			Buckets:   []float64{0.5, 1, 2, 3, 5, 10},
		}),
	}

	for _, collector := range []prometheus.Collector{c.quotes, c.transitions, c.orders, c.submit} {
		if err := reg.Register(collector); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return c, nil
}

func (c *Checkout) QuoteComputed(result string) {
	c.quotes.WithLabelValues(result).Inc()
}

func (c *Checkout) SessionTransition(from, to value.CheckoutState) {
	c.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (c *Checkout) OrderCreated() {
	c.orders.Inc()
}

func (c *Checkout) SubmitDuration(d time.Duration) {
	c.submit.Observe(d.Seconds())
}
