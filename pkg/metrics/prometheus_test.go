package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewWith(reg)

	r.RecordRemoteCall("get_predictions", "not_found", 0.02)
	r.RecordRemoteCall("get_predictions", "not_found", 0.03)
	r.RecordStaleResult("history")
	r.RecordPhase("ready")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.remoteCalls.WithLabelValues("get_predictions", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.staleResults.WithLabelValues("history")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.phases.WithLabelValues("ready")))
}
