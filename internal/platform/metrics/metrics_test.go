package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClientMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClientMetrics(reg)

	m.Observe("list", 200, 10*time.Millisecond)
	m.Observe("list", 200, 20*time.Millisecond)
	m.Observe("get", 404, time.Millisecond)
	m.Observe("delete", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCount("list", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount("get", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount("delete", "network_error")))

	count, err := testutil.GatherAndCount(reg, "product_console_api_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 3, count) // satu series per operation
}

func TestClientMetrics_NilIsNoop(t *testing.T) {
	var m *ClientMetrics
	assert.NotPanics(t, func() { m.Observe("list", 200, time.Millisecond) })
}
