package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "umkm",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "umkm",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "umkm",
		Name:      "auth_events_total",
		Help:      "Account lifecycle events by type and outcome.",
	}, []string{"event", "outcome"})
)

// Auth event names
const (
	EventRegister       = "register"
	EventLogin          = "login"
	EventVerifyEmail    = "verify_email"
	EventResend         = "resend_verification"
	EventForgotPassword = "forgot_password"
	EventResetPassword  = "reset_password"
	EventUpdatePassword = "update_password"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// RecordAuth increments the auth event counter.
func RecordAuth(event string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	AuthEvents.WithLabelValues(event, outcome).Inc()
}

func ObserveRequest(method, route string, status int, seconds float64) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
