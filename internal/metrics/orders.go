// Package metrics holds the Prometheus collectors for the order flow.
// storekeeper has no network listener, so the registry is written to a
// node_exporter textfile when the session ends (see WriteTextfile).
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order-flow outcomes.
type OrderMetrics struct {
	reservations prometheus.Counter
	placed       prometheus.Counter
	released     prometheus.Counter
	rejected     *prometheus.CounterVec
	revenue      prometheus.Counter
	duration     prometheus.Histogram
}

// NewOrderMetrics registers the order collectors on registerer.
// Registering twice on the same registry returns the existing collectors.
func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		reservations: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storekeeper_reservations_total",
			Help: "Total number of spaceship reservations taken",
		}),
		placed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storekeeper_orders_placed_total",
			Help: "Total number of confirmed orders",
		}),
		released: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storekeeper_reservations_released_total",
			Help: "Total number of reservations given back without an order",
		}),
		rejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storekeeper_orders_rejected_total",
			Help: "Total number of order attempts rejected, by reason",
		}, []string{"reason"}),
		revenue: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storekeeper_order_revenue_cents_total",
			Help: "Sum of confirmed order totals in cents",
		}),
		duration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storekeeper_order_duration_seconds",
			Help:    "Time from reservation to confirmation or release",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := already.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := already.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordReserved counts a reservation.
func (m *OrderMetrics) RecordReserved() {
	m.reservations.Inc()
}

// RecordPlaced counts a confirmed order and its total.
func (m *OrderMetrics) RecordPlaced(totalCents int64, elapsed time.Duration) {
	m.placed.Inc()
	m.revenue.Add(float64(totalCents))
	m.duration.Observe(elapsed.Seconds())
}

// RecordReleased counts a reservation handed back.
func (m *OrderMetrics) RecordReleased(elapsed time.Duration) {
	m.released.Inc()
	m.duration.Observe(elapsed.Seconds())
}

// RecordRejected counts a failed order attempt.
func (m *OrderMetrics) RecordRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}
