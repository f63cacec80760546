// Package metrics records stage lifecycle and calendar sync counters.
//
// Services receive a Recorder and default to NoopRecorder; cmd/server swaps in
// a PrometheusRecorder when METRICS_ENABLED is set.
package metrics

// ResultLabel enumerates operation outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailure ResultLabel = "failure"
)

// SyncOutcome enumerates the outcomes of a reverse calendar sync.
type SyncOutcome string

const (
	SyncChanged   SyncOutcome = "changed"
	SyncUnchanged SyncOutcome = "unchanged"
	SyncIgnored   SyncOutcome = "ignored"
)

// Recorder defines observability hooks for the stage lifecycle and the calendar synchronizer.
type Recorder interface {
	IncStageTransition(from, to string)
	IncHistoryAppended(n int)
	IncStageOperation(op string, result ResultLabel)
	ObserveRentalCompletion(percentage float64)
	IncCalendarRegeneration(result ResultLabel)
	ObserveEventsGenerated(n int)
	IncReverseSync(eventType string, outcome SyncOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncStageTransition(string, string)     {}
func (NoopRecorder) IncHistoryAppended(int)                {}
func (NoopRecorder) IncStageOperation(string, ResultLabel) {}
func (NoopRecorder) ObserveRentalCompletion(float64)       {}
func (NoopRecorder) IncCalendarRegeneration(ResultLabel)   {}
func (NoopRecorder) ObserveEventsGenerated(int)            {}
func (NoopRecorder) IncReverseSync(string, SyncOutcome)    {}

// Result maps an error to a ResultLabel.
func Result(err error) ResultLabel {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
