package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageTransitions *prom.CounterVec
	historyAppended  prom.Counter
	stageOperations  *prom.CounterVec
	rentalCompletion prom.Histogram
	calendarRegens   *prom.CounterVec
	eventsGenerated  prom.Histogram
	reverseSyncs     *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageTransitions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "locations",
			Name:      "stage_transitions_total",
			Help:      "Stage status transitions by previous and new status",
		}, []string{"from", "to"}),
		historyAppended: prom.NewCounter(prom.CounterOpts{
			Namespace: "locations",
			Name:      "stage_history_entries_total",
			Help:      "Stage history entries appended to the ledger",
		}),
		stageOperations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "locations",
			Name:      "stage_operations_total",
			Help:      "Stage lifecycle operations by operation and result",
		}, []string{"operation", "result"}),
		rentalCompletion: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "locations",
			Name:      "rental_completion_percentage",
			Help:      "Rental completion percentage observed after each recompute",
			Buckets:   prom.LinearBuckets(0, 10, 11),
		}),
		calendarRegens: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "locations",
			Name:      "calendar_regenerations_total",
			Help:      "Calendar event regenerations by result",
		}, []string{"result"}),
		eventsGenerated: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "locations",
			Name:      "calendar_events_generated",
			Help:      "Number of calendar events produced per regeneration",
			Buckets:   prom.LinearBuckets(1, 1, 7),
		}),
		reverseSyncs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "locations",
			Name:      "calendar_reverse_syncs_total",
			Help:      "Calendar event to rental syncs by event type and outcome",
		}, []string{"event_type", "outcome"}),
	}
	reg.MustRegister(pr.stageTransitions, pr.historyAppended, pr.stageOperations, pr.rentalCompletion,
		pr.calendarRegens, pr.eventsGenerated, pr.reverseSyncs)
	return pr
}

func (p *PrometheusRecorder) IncStageTransition(from, to string) {
	if p == nil {
		return
	}
	p.stageTransitions.WithLabelValues(from, to).Inc()
}

func (p *PrometheusRecorder) IncHistoryAppended(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.historyAppended.Add(float64(n))
}

func (p *PrometheusRecorder) IncStageOperation(op string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageOperations.WithLabelValues(op, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRentalCompletion(percentage float64) {
	if p == nil {
		return
	}
	p.rentalCompletion.Observe(percentage)
}

func (p *PrometheusRecorder) IncCalendarRegeneration(result ResultLabel) {
	if p == nil {
		return
	}
	p.calendarRegens.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveEventsGenerated(n int) {
	if p == nil {
		return
	}
	p.eventsGenerated.Observe(float64(n))
}

func (p *PrometheusRecorder) IncReverseSync(eventType string, outcome SyncOutcome) {
	if p == nil {
		return
	}
	p.reverseSyncs.WithLabelValues(eventType, string(outcome)).Inc()
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
