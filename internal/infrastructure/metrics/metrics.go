package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers the storefront's business events. All methods are safe on a
// nil receiver so tests can run without a registry.
type Metrics struct {
	OrdersPlaced  *prometheus.CounterVec
	OrderFailures *prometheus.CounterVec
	OrderRevenue  prometheus.Counter
	CartAdds      prometheus.Counter
	CatalogFetch  *prometheus.HistogramVec
	SettingsSaves *prometheus.CounterVec
}

// New registers the metrics with reg; pass prometheus.DefaultRegisterer in main.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OrdersPlaced: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "luxe_orders_placed_total",
			Help: "Orders accepted by the order backend",
		}, []string{"backend"}),

		OrderFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "luxe_order_failures_total",
			Help: "Orders rejected or failed at the order backend",
		}, []string{"backend"}),

		OrderRevenue: factory.NewCounter(prometheus.CounterOpts{
			Name: "luxe_order_revenue_total",
			Help: "Sum of placed order totals in store currency",
		}),

		CartAdds: factory.NewCounter(prometheus.CounterOpts{
			Name: "luxe_cart_adds_total",
			Help: "Add-to-cart operations",
		}),

		CatalogFetch: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "luxe_catalog_fetch_duration_seconds",
			Help:    "Duration of catalog reads by source",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"source"}),

		SettingsSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "luxe_settings_saves_total",
			Help: "Site configuration saves by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) OrderPlaced(backend string, total float64) {
	if m != nil {
		m.OrdersPlaced.WithLabelValues(backend).Inc()
		m.OrderRevenue.Add(total)
	}
}

func (m *Metrics) OrderFailed(backend string) {
	if m != nil {
		m.OrderFailures.WithLabelValues(backend).Inc()
	}
}

func (m *Metrics) CartAdded() {
	if m != nil {
		m.CartAdds.Inc()
	}
}

func (m *Metrics) ObserveCatalogFetch(source string, d time.Duration) {
	if m != nil {
		m.CatalogFetch.WithLabelValues(source).Observe(d.Seconds())
	}
}

func (m *Metrics) SettingsSaved(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.SettingsSaves.WithLabelValues(outcome).Inc()
}
