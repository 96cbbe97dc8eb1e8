package bridge

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	invocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelbridge",
			Subsystem: "bridge",
			Name:      "invocations_total",
			Help:      "Total runtime method invocations",
		},
		[]string{"method", "status"},
	)

	invocationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "modelbridge",
			Subsystem: "bridge",
			Name:      "invocation_duration_seconds",
			Help:      "Duration of runtime method invocations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	tokensGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "modelbridge",
			Subsystem: "bridge",
			Name:      "tokens_generated_total",
			Help:      "Total tokens streamed to listeners",
		},
	)

	generateInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "modelbridge",
			Subsystem: "bridge",
			Name:      "generate_inflight",
			Help:      "In-flight generation calls",
		},
	)
)

func init() {
	prometheus.MustRegister(invocationsTotal, invocationDuration, tokensGeneratedTotal, generateInflight)
}

func statusLabel(code int32) string { return "0x" + strconv.FormatInt(int64(code), 16) }
