package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the salary flows.
type Metrics struct {
	SubmissionsCreated    prometheus.Counter
	SubmissionsDuplicate  prometheus.Counter
	SubmissionsGateDenied prometheus.Counter
	SalariesPublished     prometheus.Counter
	Confirmations         *prometheus.CounterVec
	PendingPurged         prometheus.Counter
}

// New creates and registers all salary metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		SubmissionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salaire_submissions_created_total",
			Help: "Pending submissions accepted into the staging store",
		}),
		SubmissionsDuplicate: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salaire_submissions_duplicate_total",
			Help: "Submissions rejected because an identical one is already pending",
		}),
		SubmissionsGateDenied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salaire_submissions_gate_denied_total",
			Help: "Submissions rejected by the professional-domain gate",
		}),
		SalariesPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salaire_salaries_published_total",
			Help: "Salary entries published to the public dataset",
		}),
		Confirmations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "salaire_confirmations_total",
			Help: "Confirmation runs by terminal outcome",
		}, []string{"outcome"}),
		PendingPurged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salaire_pending_purged_total",
			Help: "Staging rows removed by the retention sweeper",
		}),
	}
}

func (m *Metrics) RecordConfirmation(outcome string) {
	if m == nil {
		return
	}
	m.Confirmations.WithLabelValues(outcome).Inc()
}
