package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studiobook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studiobook",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		},
	)

	bookingStatusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studiobook",
			Name:      "booking_status_updates_total",
			Help:      "Booking status updates by target status.",
		},
		[]string{"status"},
	)

	paymentOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studiobook",
			Name:      "payment_outcomes_total",
			Help:      "Simulated payment outcomes by resolved status.",
		},
		[]string{"status"},
	)
)

// Register registers all collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingStatusUpdates, paymentOutcomes)
	})
}

func IncHTTP(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingStatusUpdate(status string) {
	bookingStatusUpdates.WithLabelValues(status).Inc()
}

func IncPaymentOutcome(status string) {
	paymentOutcomes.WithLabelValues(status).Inc()
}
