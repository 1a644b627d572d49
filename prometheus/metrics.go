package prometheus

import (
	"time"

	"casecare-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity operation metrics (client, provider, task, ...)
	EntityOperationsCounter prometheus.CounterVec

	// Form-builder metrics
	FormFieldOperationsCounter prometheus.CounterVec
	CustomFieldSavesCounter    prometheus.CounterVec

	// Degraded-mode metric
	DatabaseUnavailableCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)

	FormFieldOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_form_field_operations_total",
			Help: "Total number of form field registry operations",
		},
		[]string{"form_type", "operation"},
	)

	CustomFieldSavesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_custom_field_saves_total",
			Help: "Total number of custom field value replace-all saves",
		},
		[]string{"form_type"},
	)

	DatabaseUnavailableCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_database_unavailable_total",
			Help: "Total number of requests rejected because the database is unavailable",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the counter for an entity operation
func RecordEntityOperation(entity, operation string) {
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordFormFieldOperation increments the counter for a form field operation
func RecordFormFieldOperation(formType, operation string) {
	FormFieldOperationsCounter.WithLabelValues(formType, operation).Inc()
}

// RecordCustomFieldSave increments the counter for custom field saves
func RecordCustomFieldSave(formType string) {
	CustomFieldSavesCounter.WithLabelValues(formType).Inc()
}
