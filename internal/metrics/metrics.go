package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talenthub_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	AssessmentsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talenthub_assessments_total",
			Help: "Total number of resume assessments by outcome.",
		},
		[]string{"outcome"},
	)
	AssessmentDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "talenthub_assessment_duration_seconds",
			Help:    "Duration of each resume assessment in seconds.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "talenthub_applications_submitted_total",
			Help: "Total number of submitted applications.",
		},
	)
	StatusChangesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talenthub_application_status_changes_total",
			Help: "Total number of application status changes by new status.",
		},
		[]string{"status"},
	)
	JobsPostedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "talenthub_jobs_posted_total",
			Help: "Total number of posted jobs.",
		},
	)
	AlertsDispatchedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talenthub_alerts_dispatched_total",
			Help: "Total number of job alert notifications by frequency.",
		},
		[]string{"frequency"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(AssessmentsCounter)
	prometheus.MustRegister(AssessmentDuration)
	prometheus.MustRegister(ApplicationsSubmittedCounter)
	prometheus.MustRegister(StatusChangesCounter)
	prometheus.MustRegister(JobsPostedCounter)
	prometheus.MustRegister(AlertsDispatchedCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
