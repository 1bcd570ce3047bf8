package webhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeReplied    = "replied"
	outcomeFallback   = "fallback"
	outcomeSkipped    = "skipped"
	outcomeSendFailed = "send_failed"
)

var eventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "messenger_relay_events_total",
		Help: "Messaging events handled, by outcome.",
	},
	[]string{"outcome"},
)

var responderDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name: "messenger_relay_responder_duration_seconds",
		Help: "Time spent waiting for the AI backend.",
		Buckets: []float64{
			0.25,
			0.5,
			1,
			2,
			5,
			10,
			30,
		},
	},
)
