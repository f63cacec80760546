package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncStageTransition("pending", "in_progress")
	pr.IncStageTransition("pending", "in_progress")
	pr.IncHistoryAppended(3)
	pr.IncHistoryAppended(0)
	pr.IncStageOperation("update", ResultSuccess)
	pr.ObserveRentalCompletion(25)
	pr.IncCalendarRegeneration(ResultSuccess)
	pr.ObserveEventsGenerated(4)
	pr.IncReverseSync("filming_period", SyncChanged)

	assert.Equal(t, 2.0, testutil.ToFloat64(pr.stageTransitions.WithLabelValues("pending", "in_progress")))
	assert.Equal(t, 3.0, testutil.ToFloat64(pr.historyAppended))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.reverseSyncs.WithLabelValues("filming_period", "changed")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncStageTransition("a", "b")
		pr.IncHistoryAppended(1)
		pr.ObserveEventsGenerated(2)
	})
}

func TestHTTPHandlerServesMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncCalendarRegeneration(ResultFailure)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "locations_calendar_regenerations_total")
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultSuccess, Result(nil))
	assert.Equal(t, ResultFailure, Result(errors.New("x")))
}
