package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestCounter counts HTTP requests by method, path and status.
	HTTPRequestCounter *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP request latencies.
	HTTPRequestDuration *prometheus.HistogramVec

	// PasswordResetRequests counts reset-request outcomes ("issued", "failed").
	PasswordResetRequests *prometheus.CounterVec

	// AppInfo exposes build information about the application.
	AppInfo *prometheus.GaugeVec

	// AppVersion is read from the APP_VERSION environment variable.
	AppVersion = "unknown"
)

func init() {
	if v := os.Getenv("APP_VERSION"); v != "" {
		AppVersion = v
	}

	HTTPRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ketotrack_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ketotrack_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PasswordResetRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ketotrack_password_reset_requests_total",
			Help: "Total number of password reset requests by outcome.",
		},
		[]string{"outcome"},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ketotrack_app_info",
			Help: "Information about the KetoTrack backend.",
		},
		[]string{"version"},
	)
	AppInfo.With(prometheus.Labels{"version": AppVersion}).Set(1)
}
