package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the metrics collected during a roster run: how many records
// were displayed and stored, how long the run took and how long each
// database query took.
type Metrics struct {
	RecordsDisplayed prometheus.Counter
	RecordsStored    *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	DBQueryDuration  *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		RecordsDisplayed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffroster_records_displayed_total",
			Help: "Total number of employee records written to the output.",
		}),
		RecordsStored: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffroster_records_stored_total",
			Help: "Total number of employee records handled by the roster store, by result.",
		}, []string{"result"}), // result: 'saved', 'updated', 'skipped'
		RunDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name: "staffroster_run_duration_seconds",
			Help: "Measures how long a full roster run takes.",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffroster_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}),
	}

	metrics.RecordsStored.WithLabelValues("saved")
	metrics.RecordsStored.WithLabelValues("updated")
	metrics.RecordsStored.WithLabelValues("skipped")

	return metrics
}

// Push sends everything gathered by gatherer to the Pushgateway at url under the given job name.
func Push(ctx context.Context, url, job string, gatherer prometheus.Gatherer) error {
	if err := push.New(url, job).Gatherer(gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}

	return nil
}
