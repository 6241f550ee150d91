package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarq/remesa/pkg/domain"
)

func TestMetrics_ObserveTurn(t *testing.T) {
	m := NewMetrics()

	m.ObserveTurn(domain.ActionFieldsUpdated, 5*time.Millisecond)
	m.ObserveTurn(domain.ActionFieldsUpdated, 5*time.Millisecond)
	m.ObserveTurn(domain.ActionExecuted, 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.turns.WithLabelValues("fieldsUpdated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.turns.WithLabelValues("executed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.transfers))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveTurn(domain.ActionExecuted, time.Millisecond)
	m.ObserveError()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "remesa_turns_total")
	assert.Contains(t, body, "remesa_transfers_executed_total 1")
	assert.Contains(t, body, "remesa_turn_errors_total 1")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	a := NewMetrics()
	b := NewMetrics()
	a.ObserveTurn(domain.ActionNone, time.Millisecond)

	assert.Equal(t, float64(0), testutil.ToFloat64(b.turns.WithLabelValues("none")))
}
