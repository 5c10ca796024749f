package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by price tier.",
		},
		[]string{"tier"},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Name:      "booking_rejected_total",
			Help:      "Count of booking attempts rejected by reason.",
		},
		[]string{"reason"},
	)

	bookingTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Name:      "booking_transition_total",
			Help:      "Count of booking status transitions.",
		},
		[]string{"from", "to"},
	)

	facilityDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Name:      "facility_decision_total",
			Help:      "Count of admin decisions over facility approvals.",
		},
		[]string{"decision"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quickcourt",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated, bookingRejected, bookingTransition,
			facilityDecision, httpRequests, httpDuration,
		)
	})
}

func IncBookingCreated(tier string) {
	bookingCreated.WithLabelValues(tier).Inc()
}

func IncBookingRejected(reason string) {
	bookingRejected.WithLabelValues(reason).Inc()
}

func IncBookingTransition(from, to string) {
	bookingTransition.WithLabelValues(from, to).Inc()
}

func IncFacilityDecision(decision string) {
	facilityDecision.WithLabelValues(decision).Inc()
}

func ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
