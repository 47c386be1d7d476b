package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// RealtimeMetrics tracks the change notification channel.
type RealtimeMetrics struct {
	subscribers     prometheus.Gauge
	published       *prometheus.CounterVec
	publishFailures prometheus.Counter
	delivered       prometheus.Counter
	dropped         prometheus.Counter
}

// NewRealtimeMetrics creates and registers the realtime instruments.
func NewRealtimeMetrics(registry prometheus.Registerer) (*RealtimeMetrics, error) {
	m := &RealtimeMetrics{
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "realtime_subscribers",
			Help: "Connected realtime subscribers",
		}),
		published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "realtime_events_published_total",
				Help: "Events handed to the broker by event type",
			},
			[]string{"type"},
		),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "realtime_publish_failures_total",
			Help: "Events that could not be queued or handed to the broker",
		}),
		delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "realtime_events_delivered_total",
			Help: "Event deliveries to subscriber buffers",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "realtime_events_dropped_total",
			Help: "Event deliveries dropped because a subscriber buffer was full",
		}),
	}

	for _, c := range []prometheus.Collector{m.subscribers, m.published, m.publishFailures, m.delivered, m.dropped} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register realtime metrics: %w", err)
		}
	}
	return m, nil
}

func (m *RealtimeMetrics) SubscriberAdded()   { m.subscribers.Inc() }
func (m *RealtimeMetrics) SubscriberRemoved() { m.subscribers.Dec() }
func (m *RealtimeMetrics) PublishFailed()     { m.publishFailures.Inc() }

func (m *RealtimeMetrics) Published(eventType string) {
	m.published.WithLabelValues(eventType).Inc()
}

func (m *RealtimeMetrics) Delivered(n int) {
	if n > 0 {
		m.delivered.Add(float64(n))
	}
}

func (m *RealtimeMetrics) Dropped(n int) {
	if n > 0 {
		m.dropped.Add(float64(n))
	}
}
