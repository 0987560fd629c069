package middleware

import (
	"net/http"
	"time"

	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/httprate"
)

const (
	MsgTooManyFeedback = "Too many feedback submissions from this IP, please try again later"
	MsgTooManyRequests = "Too many requests from this IP, please try again after 15 minutes"
	MsgTooManyAttempts = "Too many attempts, please try again after 15 minutes"
)

// RateLimit membatasi request per IP dalam satu window
func RateLimit(limit int, window time.Duration, message string) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseTooManyRequests(w, message)
		}),
	)
}

// FeedbackLimit: default 10 request / 10 menit
func FeedbackLimit(limit int) func(http.Handler) http.Handler {
	return RateLimit(limit, 10*time.Minute, MsgTooManyFeedback)
}

// GeneralLimit: default 50 request / 15 menit
func GeneralLimit(limit int) func(http.Handler) http.Handler {
	return RateLimit(limit, 15*time.Minute, MsgTooManyRequests)
}

// StrictLimit untuk login dan register: default 5 request / 15 menit
func StrictLimit(limit int) func(http.Handler) http.Handler {
	return RateLimit(limit, 15*time.Minute, MsgTooManyAttempts)
}
