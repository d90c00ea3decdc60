package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	IntakeMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_messages_consumed_total",
			Help: "Number of inventory intake messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	IntakeMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_messages_processed_total",
			Help: "Number of intake messages processed successfully",
		},
		[]string{"topic"},
	)
	IntakeMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_messages_failed_total",
			Help: "Number of intake messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Inventory snapshot cache operations",
		},
		[]string{"op"}, // hit|miss|expired|set|invalidate
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of snapshots currently in cache",
		},
	)
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// MustRegister — регистрирует коллекторы; повторный вызов безопасен
// (AlreadyRegisteredError игнорируется, остальное — паника).
func MustRegister() {
	collectors := []prometheus.Collector{
		IntakeMessagesConsumed, IntakeMessagesProcessed, IntakeMessagesFailed,
		CacheOps, CacheSize, HTTPRequests,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			panic(err)
		}
	}
}
