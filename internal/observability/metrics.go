// Package observability holds the tracing and metrics plumbing shared across
// the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerboard_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// RequestRejections counts requests rejected by the content contract,
	// labeled with the application error code (validation, not found,
	// ownership mismatch).
	RequestRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerboard_request_rejections_total",
		Help: "Total number of requests rejected by the content contract, by error code",
	}, []string{"code"})

	// SeededRecords counts records created by the development seeder.
	SeededRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerboard_seeded_records_total",
		Help: "Total number of records created by the seeder, by model",
	}, []string{"model"})
)
