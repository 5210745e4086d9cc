package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "realtime_relay"

const (
	BroadcastRoom   = "room"
	BroadcastDirect = "direct"

	RelaySuccess   = "success"
	RelayFailure   = "failure"
	RelayTimeout   = "timeout"
	RelaySaturated = "saturated"

	MessageHandled  = "handled"
	MessageRejected = "rejected"
	MessagePanicked = "panicked"
	MessageUnknown  = "unknown"
)

var (
	registry = prometheus.NewRegistry()

	socketsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sockets_open",
			Help:      "Number of websocket connections currently open, identified or not.",
		},
	)
	broadcastCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Count of broadcasts by kind (room or direct).",
		},
		[]string{"kind"},
	)
	deliveryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Count of envelopes handed to socket buffers by kind.",
		},
		[]string{"kind"},
	)
	droppedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_dropped_total",
			Help:      "Count of envelopes dropped because a socket buffer was full.",
		},
	)
	relayCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_relay_total",
			Help:      "Count of outbound location relay calls by outcome.",
		},
		[]string{"outcome"},
	)
	relayDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "location_relay_duration_seconds",
			Help:      "Duration of outbound location relay calls.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 3},
		},
	)
	messageCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "socket_messages_total",
			Help:      "Count of inbound websocket messages by event and result.",
		},
		[]string{"event", "result"},
	)
)

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		registry.MustRegister(socketsGauge)
		registry.MustRegister(broadcastCounter)
		registry.MustRegister(deliveryCounter)
		registry.MustRegister(droppedCounter)
		registry.MustRegister(relayCounter)
		registry.MustRegister(relayDuration)
		registry.MustRegister(messageCounter)
	})
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	Register()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func RecordSocketOpened() { socketsGauge.Inc() }

func RecordSocketClosed() { socketsGauge.Dec() }

// RecordBroadcast records one broadcast and the number of sockets it reached.
func RecordBroadcast(kind string, delivered int) {
	broadcastCounter.WithLabelValues(kind).Inc()
	deliveryCounter.WithLabelValues(kind).Add(float64(delivered))
}

func RecordDroppedDelivery() { droppedCounter.Inc() }

func RecordRelay(outcome string, seconds float64) {
	relayCounter.WithLabelValues(outcome).Inc()
	if outcome != RelaySaturated {
		relayDuration.Observe(seconds)
	}
}

func RecordSocketMessage(event, result string) {
	messageCounter.WithLabelValues(event, result).Inc()
}
