// internal/metrics/metrics.go
package metrics

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/elnet/electronics-network/internal/models"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Rejected hierarchy and transaction rules, by validation kind
	ValidationFailuresCounter *prometheus.CounterVec

	// Ledger metrics
	DebtClearedTransactionsCounter prometheus.Counter
	DebtReportsCounter             prometheus.Counter

	// Registry writes, by entity and operation
	RegistryOperationsCounter *prometheus.CounterVec

	initOnce sync.Once
)

// InitMetrics registers the collectors with the default registry. Only the
// first call has an effect; the prefix of later calls is ignored.
func InitMetrics(prefix string) {
	initOnce.Do(func() {
		if prefix == "" {
			prefix = "electronics_network"
		}

		HttpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HttpRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		ValidationFailuresCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_validation_failures_total",
				Help: "Total number of rejected hierarchy and transaction writes",
			},
			[]string{"kind"},
		)

		DebtClearedTransactionsCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_debt_cleared_transactions_total",
				Help: "Total number of transactions whose debt was cleared",
			},
		)

		DebtReportsCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_debt_reports_total",
				Help: "Total number of generated debt reports",
			},
		)

		RegistryOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_registry_operations_total",
				Help: "Total number of registry writes",
			},
			[]string{"entity", "operation"},
		)
	})
}

// GinMiddleware records request count and latency per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		if HttpRequestsTotal == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		HttpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		HttpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}

// RecordValidationFailure counts err when it is a domain validation error.
func RecordValidationFailure(err error) {
	if ValidationFailuresCounter == nil {
		return
	}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		ValidationFailuresCounter.WithLabelValues(string(ve.Kind)).Inc()
	}
}

func RecordDebtCleared(rows int64) {
	if DebtClearedTransactionsCounter != nil {
		DebtClearedTransactionsCounter.Add(float64(rows))
	}
}

func RecordDebtReport() {
	if DebtReportsCounter != nil {
		DebtReportsCounter.Inc()
	}
}

func RecordRegistryOperation(entity, operation string) {
	if RegistryOperationsCounter != nil {
		RegistryOperationsCounter.WithLabelValues(entity, operation).Inc()
	}
}
