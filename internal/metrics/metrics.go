// Package metrics holds the Prometheus collectors exposed on the monitoring server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "postback_relay"

// Postback outcomes used as the "outcome" label of PostbackRequests.
const (
	OutcomeForwarded   = "forwarded"
	OutcomeInvalid     = "invalid"
	OutcomeBadHash     = "bad_hash"
	OutcomeUnavailable = "unavailable"
	OutcomeFailed      = "failed"
)

var (
	// PostbackRequests counts handled postbacks by outcome.
	PostbackRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postback_requests_total",
		Help:      "Postback requests handled, partitioned by outcome.",
	}, []string{"outcome"})

	// PostbackReplays counts forwarded postbacks whose transaction id was already forwarded.
	PostbackReplays = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postback_replays_total",
		Help:      "Valid postbacks re-forwarded for an already seen transaction id.",
	})

	// NotifierConnectAttempts counts bot connection attempts by result.
	NotifierConnectAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifier_connect_attempts_total",
		Help:      "Telegram bot connection attempts, partitioned by result.",
	}, []string{"result"})

	// NotifierConnected is 1 while the bot session is established.
	NotifierConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifier_connected",
		Help:      "Whether the Telegram bot session is connected.",
	})
)
