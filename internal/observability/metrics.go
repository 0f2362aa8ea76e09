// Package observability provides Prometheus collectors and OpenTelemetry
// tracing setup for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// SwapRequestsCreated counts swap requests created since process start.
	SwapRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_swap_requests_created_total",
		Help: "Total number of swap requests created",
	})

	// SwapStatusTransitions counts lifecycle transitions by target status.
	SwapStatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_status_transitions_total",
		Help: "Total number of swap status transitions by target status",
	}, []string{"to"})

	// UserBans counts ban and unban operations performed by administrators.
	UserBans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_user_ban_operations_total",
		Help: "Total number of ban/unban operations",
	}, []string{"action"})

	// AdminBroadcasts counts platform-wide messages sent by administrators.
	AdminBroadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_admin_broadcasts_total",
		Help: "Total number of admin broadcast messages created",
	})
)
