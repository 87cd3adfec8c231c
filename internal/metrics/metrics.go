package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_bookings_total",
			Help: "Total number of booking attempts",
		},
		[]string{"result"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_booking_conflicts_total",
			Help: "Booking attempts rejected because the slot, coach or equipment was taken",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	SlotQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_slot_queries_total",
			Help: "Total number of availability (slot) computations served",
		},
	)

	WaitlistJoinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_waitlist_joins_total",
			Help: "Total number of waitlist entries created",
		},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_cache_hits_total",
			Help: "Reference data cache hits",
		},
		[]string{"key"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_cache_misses_total",
			Help: "Reference data cache misses",
		},
		[]string{"key"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(result string) {
	BookingsTotal.WithLabelValues(result).Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordSlotQuery() {
	SlotQueriesTotal.Inc()
}

func RecordWaitlistJoin() {
	WaitlistJoinsTotal.Inc()
}

func RecordCacheHit(key string) {
	CacheHitsTotal.WithLabelValues(key).Inc()
}

func RecordCacheMiss(key string) {
	CacheMissesTotal.WithLabelValues(key).Inc()
}
