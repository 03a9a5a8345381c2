package logger

import (
	"testing"

	"github.com/maxaizer/talenthub/internal/metrics"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, errorType string) float64 {
	var m dto.Metric
	require.NoError(t, metrics.ErrorsCounter.WithLabelValues(errorType).Write(&m))
	return m.GetCounter().GetValue()
}

func Test_PrometheusHook_CountsErrorsByType(t *testing.T) {
	hook := &prometheusHook{}
	before := counterValue(t, ErrorTypeDb)
	beforeUnknown := counterValue(t, "unknown")

	assert.NoError(t, hook.Fire(&log.Entry{Data: log.Fields{ErrorTypeField: ErrorTypeDb}}))
	assert.NoError(t, hook.Fire(&log.Entry{Data: log.Fields{}}))

	assert.Equal(t, before+1, counterValue(t, ErrorTypeDb))
	assert.Equal(t, beforeUnknown+1, counterValue(t, "unknown"))
}
