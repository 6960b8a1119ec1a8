package metrics

import (
	"database/sql"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP and workflow metrics for the contact service.

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactdesk",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route pattern, method and status code",
	}, []string{"route", "method", "code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "contactdesk",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request handling duration",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	PromotionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactdesk",
		Subsystem: "contacts",
		Name:      "promotions_total",
		Help:      "Promotion attempts by outcome (ok, not_found, error)",
	}, []string{"outcome"})
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// RegisterDBStats exposes the pool statistics of db under the
// go_sql_* metric family. Registering the same pool twice is a no-op.
func RegisterDBStats(reg prometheus.Registerer, db *sql.DB, dbName string) error {
	err := reg.Register(collectors.NewDBStatsCollector(db, dbName))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}
