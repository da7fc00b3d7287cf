package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Send outcomes used as the "outcome" label.
const (
	OutcomeSuccess        = "success"
	OutcomeRateLimited    = "rate_limited"
	OutcomeDeliveryFailed = "delivery_failed"
	OutcomeTransportError = "transport_error"
)

var (
	once sync.Once

	sendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_sends_total",
			Help: "Webhook send attempts by message kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	sendLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_send_latency_ms",
			Help:    "Outbound webhook call latency in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"kind", "success"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(sendsTotal, sendLatencyMs)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// IncSend counts one send attempt.
func IncSend(kind, outcome string) {
	sendsTotal.WithLabelValues(norm(kind), norm(outcome)).Inc()
}

// ObserveSendLatency records the duration of one outbound call.
func ObserveSendLatency(kind string, d time.Duration, success bool) {
	s := "false"
	if success {
		s = "true"
	}
	sendLatencyMs.WithLabelValues(norm(kind), s).Observe(float64(d.Milliseconds()))
}
