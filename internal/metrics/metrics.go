package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gasthof",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	inquiries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gasthof",
			Name:      "inquiries_total",
			Help:      "Booking inquiries by outcome.",
		},
		[]string{"outcome"},
	)

	confirmations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gasthof",
			Name:      "confirmations_total",
			Help:      "Confirmation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	corruptLedgerRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gasthof",
			Name:      "ledger_corrupt_records_total",
			Help:      "Ledger rows skipped on load because they could not be decoded.",
		},
		[]string{"partition"},
	)

	searchQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gasthof",
			Name:      "search_queries_total",
			Help:      "Semantic search queries by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, inquiries, confirmations, corruptLedgerRecords, searchQueries)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

// IncInquiry counts an inquiry by outcome: pending, validation_error,
// extraction_error or storage_error.
func IncInquiry(outcome string) {
	inquiries.WithLabelValues(outcome).Inc()
}

// IncConfirmation counts a confirmation attempt by outcome.
func IncConfirmation(outcome string) {
	confirmations.WithLabelValues(outcome).Inc()
}

// IncCorruptLedgerRecord counts a skipped undecodable ledger row.
func IncCorruptLedgerRecord(partition string) {
	corruptLedgerRecords.WithLabelValues(partition).Inc()
}

// IncSearchQuery counts a semantic search query by result: hit, miss or error.
func IncSearchQuery(result string) {
	searchQueries.WithLabelValues(result).Inc()
}
