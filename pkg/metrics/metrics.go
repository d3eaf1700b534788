package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PatternOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_pattern_operations_total",
			Help: "Orchestrator operations by pattern and outcome",
		},
		[]string{"pattern", "outcome"}, // outcome: ok|not_found|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	DeferredWritesEnqueued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deferred_writes_enqueued_total",
			Help: "Deferred write tasks accepted by the queue",
		},
	)
	DeferredWritesApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deferred_writes_applied_total",
			Help: "Deferred write tasks persisted to the store",
		},
	)
	DeferredWritesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deferred_writes_dropped_total",
			Help: "Deferred write tasks dropped after a failed store write",
		},
	)
	DeferredQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "deferred_queue_depth",
			Help: "Deferred write tasks waiting to be applied",
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

// MustRegister — регистрирует метрики; повторная регистрация не считается ошибкой
// (вызывается из bootstrap и из тестов).
func MustRegister() {
	collectors := []prometheus.Collector{
		PatternOps,
		CacheOps, CacheSize,
		DeferredWritesEnqueued, DeferredWritesApplied, DeferredWritesDropped, DeferredQueueDepth,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
