package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var (
	ordersConsumed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kafka_consumer",
		Name:      "orders_consumed_total",
		Help:      "Total number of successfully stored orders from Kafka.",
	})

	ordersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kafka_consumer",
		Name:      "orders_rejected_total",
		Help:      "Total number of messages that failed decoding or validation.",
	})

	ordersDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kafka_consumer",
		Name:      "orders_dlq_total",
		Help:      "Total number of messages written to the DLQ.",
	})

	// Латентность HTTP меряет middleware.Metrics, здесь только исходы.
	orderFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "http",
		Name:      "order_fetches_total",
		Help:      "Total number of order lookups by outcome.",
	}, []string{"outcome"})
)
