package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// UsersRegisteredTotal counts successful registrations.
	UsersRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		},
	)

	// RecipesCreatedTotal counts recipes persisted through the API.
	RecipesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Total number of recipes created",
		},
	)
)

var (
	// Recipe and user ids are 24-char hex ObjectIDs in paths.
	objectIDPathSegment = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
	initOnce            sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, UsersRegisteredTotal, RecipesCreatedTotal)
	})
}

// NormalizePath reduces cardinality by replacing ObjectID path segments with {id}.
// E.g. /recipes/64f1b2a3c4d5e6f708091a0b -> /recipes/{id}.
func NormalizePath(path string) string {
	return objectIDPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncUsersRegistered increments the registration counter (call after a 201 register).
func IncUsersRegistered() {
	UsersRegisteredTotal.Inc()
}

// IncRecipesCreated increments the recipe counter (call after a 201 create).
func IncRecipesCreated() {
	RecipesCreatedTotal.Inc()
}
